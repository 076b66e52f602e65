package service

import (
	"context"

	"github.com/google/uuid"

	"jaalakam-backend/internal/domains/auth"
	"jaalakam-backend/internal/domains/event/model"
)

type ServiceInterface interface {
	List(ctx context.Context, req model.ListRequest) ([]*model.Event, error)

	// Get includes attendees. Private events are visible to the organizer and admins only.
	Get(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) (*model.EventDetail, error)

	Create(ctx context.Context, ac *auth.AuthContext, req model.CreateRequest) (*model.Event, error)
	Update(ctx context.Context, ac *auth.AuthContext, id uuid.UUID, req model.UpdateRequest) (*model.Event, error)
	Delete(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) error

	Attend(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) (*model.EventDetail, error)
	Unattend(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) (*model.EventDetail, error)
}
