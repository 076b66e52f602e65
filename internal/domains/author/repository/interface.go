package repository

import (
	"context"

	"github.com/google/uuid"

	"jaalakam-backend/internal/domains/author/model"
)

type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// FindByUserID returns model.ErrProfileNotFound when the user has no profile.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Author, error)

	List(ctx context.Context, req model.ListRequest) ([]*model.Author, error)

	// ListPublishedWorks returns the author's PUBLISHED literature, newest first.
	ListPublishedWorks(ctx context.Context, authorID uuid.UUID) ([]*model.Work, error)

	// CreateWithPromotion inserts the profile and promotes a MEMBER owner to AUTHOR
	// in one transaction. A second profile for the same user is ErrAuthorAlreadyExists.
	CreateWithPromotion(ctx context.Context, author *model.Author) (*model.Author, error)

	// EnsureForUser returns the user's profile, creating an empty one if absent.
	EnsureForUser(ctx context.Context, userID uuid.UUID) (*model.Author, error)

	Update(ctx context.Context, id uuid.UUID, req model.ProfileRequest) (*model.Author, error)

	SetVerified(ctx context.Context, id uuid.UUID, verified bool) (*model.Author, error)
}
