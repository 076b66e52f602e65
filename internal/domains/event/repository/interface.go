package repository

import (
	"context"

	"github.com/google/uuid"

	"jaalakam-backend/internal/domains/event/model"
)

type Repository interface {
	Create(ctx context.Context, e *model.Event) (*model.Event, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error)

	// List returns public events by start date.
	List(ctx context.Context, req model.ListRequest) ([]*model.Event, error)
	ListAttendees(ctx context.Context, eventID uuid.UUID) ([]*model.Attendee, error)

	Update(ctx context.Context, id uuid.UUID, req model.UpdateRequest) (*model.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Attend and Unattend are idempotent; changed is false for a no-op.
	Attend(ctx context.Context, userID, eventID uuid.UUID) (changed bool, err error)
	Unattend(ctx context.Context, userID, eventID uuid.UUID) (changed bool, err error)
}
