package service

import (
	"context"

	"github.com/google/uuid"

	"jaalakam-backend/internal/domains/auth"
	"jaalakam-backend/internal/domains/author/model"
)

type ServiceInterface interface {
	// CreateProfile creates the caller's author profile and promotes them to AUTHOR.
	CreateProfile(ctx context.Context, ac *auth.AuthContext, req model.ProfileRequest) (*model.Author, error)

	// UpdateProfile edits the caller's own profile.
	UpdateProfile(ctx context.Context, ac *auth.AuthContext, req model.ProfileRequest) (*model.Author, error)

	// GetByID returns the profile with its published works.
	GetByID(ctx context.Context, id uuid.UUID) (*model.AuthorDetail, error)

	List(ctx context.Context, req model.ListRequest) ([]*model.Author, error)

	// Verify marks an author as verified (admin only).
	Verify(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) (*model.Author, error)
}
