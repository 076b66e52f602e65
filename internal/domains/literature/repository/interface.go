package repository

import (
	"context"

	"github.com/google/uuid"

	"jaalakam-backend/internal/domains/literature/model"
)

type Repository interface {
	Create(ctx context.Context, l *model.Literature) (*model.Literature, error)

	// FindByID serves PUBLISHED items from cache when possible.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Literature, error)

	// Load bypasses the cache. Mutation paths must read through it.
	Load(ctx context.Context, id uuid.UUID) (*model.Literature, error)

	// List and Search only ever return PUBLISHED items.
	List(ctx context.Context, req model.ListRequest) ([]*model.Literature, error)
	Search(ctx context.Context, req model.SearchRequest) ([]*model.Literature, error)

	Update(ctx context.Context, id uuid.UUID, req model.UpdateRequest) (*model.Literature, error)

	// ApplyTransition writes the outcome if the row is still in status from.
	// It returns model.ErrStatusChanged when a concurrent transition won and
	// model.ErrLiteratureNotFound when the row was deleted.
	ApplyTransition(ctx context.Context, id uuid.UUID, from model.Status, outcome model.Outcome) (*model.Literature, error)

	Delete(ctx context.Context, id uuid.UUID) error

	// Like and Unlike are idempotent; changed is false for a no-op.
	Like(ctx context.Context, userID, id uuid.UUID) (changed bool, err error)
	Unlike(ctx context.Context, userID, id uuid.UUID) (changed bool, err error)
}
