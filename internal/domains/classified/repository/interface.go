package repository

import (
	"context"

	"github.com/google/uuid"

	"jaalakam-backend/internal/domains/classified/model"
)

type Repository interface {
	Create(ctx context.Context, c *model.Classified) (*model.Classified, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Classified, error)

	// List returns ACTIVE, unexpired classifieds, newest first.
	List(ctx context.Context, req model.ListRequest) ([]*model.Classified, error)

	Update(ctx context.Context, id uuid.UUID, req model.UpdateRequest) (*model.Classified, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ExpireDue flips ACTIVE classifieds whose expires_at has passed to EXPIRED.
	ExpireDue(ctx context.Context) (int64, error)
}
