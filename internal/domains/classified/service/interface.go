package service

import (
	"context"

	"github.com/google/uuid"

	"jaalakam-backend/internal/domains/auth"
	"jaalakam-backend/internal/domains/classified/model"
)

type ServiceInterface interface {
	List(ctx context.Context, req model.ListRequest) ([]*model.Classified, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Classified, error)

	Create(ctx context.Context, ac *auth.AuthContext, req model.CreateRequest) (*model.Classified, error)

	// Update and Delete are limited to the poster and admins.
	Update(ctx context.Context, ac *auth.AuthContext, id uuid.UUID, req model.UpdateRequest) (*model.Classified, error)
	Delete(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) error
}
