package repository

import (
	"context"

	"github.com/google/uuid"

	"jaalakam-backend/internal/domains/comment/model"
)

type Repository interface {
	Create(ctx context.Context, comment *model.Comment) (*model.Comment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)

	// ListByLiterature returns every comment on the item, replies included, newest first.
	ListByLiterature(ctx context.Context, literatureID uuid.UUID, req model.ListRequest) ([]*model.Comment, error)

	// UpdateContent replaces the text and marks the comment edited.
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*model.Comment, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
