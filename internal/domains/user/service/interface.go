package service

import (
	"context"

	"github.com/google/uuid"

	"jaalakam-backend/internal/domains/auth"
	"jaalakam-backend/internal/domains/user/model"
)

type ServiceInterface interface {
	// Me returns the caller's own record.
	Me(ctx context.Context, ac *auth.AuthContext) (*model.User, error)

	// GetByID is public.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// UpdateProfile edits the caller's own profile fields.
	UpdateProfile(ctx context.Context, ac *auth.AuthContext, req model.UpdateProfileRequest) (*model.User, error)
}
