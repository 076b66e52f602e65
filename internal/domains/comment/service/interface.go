package service

import (
	"context"

	"github.com/google/uuid"

	"jaalakam-backend/internal/domains/auth"
	"jaalakam-backend/internal/domains/comment/model"
	litmodel "jaalakam-backend/internal/domains/literature/model"
)

type ServiceInterface interface {
	// Create attaches the comment to a literature item or replies to a parent comment.
	Create(ctx context.Context, ac *auth.AuthContext, req model.CreateRequest) (*model.Comment, error)

	Update(ctx context.Context, ac *auth.AuthContext, id uuid.UUID, req model.UpdateRequest) (*model.Comment, error)
	Delete(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) error

	ListForLiterature(ctx context.Context, ac *auth.AuthContext, literatureID uuid.UUID, req model.ListRequest) ([]*model.Comment, error)
}

// LiteratureReader returns a literature item the caller is allowed to see.
type LiteratureReader interface {
	Get(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) (*litmodel.Literature, error)
}
