package repository

import (
	"context"

	"github.com/google/uuid"

	"jaalakam-backend/internal/domains/user/model"
)

type Repository interface {
	// FindByID returns model.ErrUserNotFound when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// FindByClerkID looks a user up by external identity key.
	FindByClerkID(ctx context.Context, clerkID string) (*model.User, error)

	// CreateIfAbsent inserts the user unless one with the same clerk_id exists,
	// then returns the stored row. Concurrent callers converge on a single row.
	CreateIfAbsent(ctx context.Context, user *model.User) (*model.User, error)

	// UpdateProfile applies the non-nil fields and returns the updated row.
	UpdateProfile(ctx context.Context, id uuid.UUID, req model.UpdateProfileRequest) (*model.User, error)

	// PromoteToAuthor moves a MEMBER to AUTHOR. Other roles are left as they are.
	PromoteToAuthor(ctx context.Context, id uuid.UUID) error
}
