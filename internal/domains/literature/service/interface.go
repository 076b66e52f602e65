package service

import (
	"context"

	"github.com/google/uuid"

	"jaalakam-backend/internal/domains/auth"
	authormodel "jaalakam-backend/internal/domains/author/model"
	"jaalakam-backend/internal/domains/literature/model"
	reportmodel "jaalakam-backend/internal/domains/report/model"
)

type ServiceInterface interface {
	// Create stores a DRAFT owned by the caller's author profile, creating the profile if needed.
	Create(ctx context.Context, ac *auth.AuthContext, req model.CreateRequest) (*model.Literature, error)

	// Get hides non-PUBLISHED items from everyone but the owner and admins.
	Get(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) (*model.Literature, error)

	List(ctx context.Context, req model.ListRequest) ([]*model.Literature, error)
	Search(ctx context.Context, req model.SearchRequest) ([]*model.Literature, error)

	Update(ctx context.Context, ac *auth.AuthContext, id uuid.UUID, req model.UpdateRequest) (*model.Literature, error)
	Publish(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) (*model.Literature, error)
	Delete(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) error

	// Moderate applies an admin action and settles pending reports on the item.
	Moderate(ctx context.Context, ac *auth.AuthContext, id uuid.UUID, req model.ModerateRequest) (*model.ModerationResult, error)

	Like(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) (*model.Literature, error)
	Unlike(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) (*model.Literature, error)
}

// AuthorProvider resolves the author profile that owns new literature.
type AuthorProvider interface {
	EnsureForUser(ctx context.Context, userID uuid.UUID) (*authormodel.Author, error)
}

// ReportResolver closes the moderation queue entries for a target.
type ReportResolver interface {
	ResolveForTarget(ctx context.Context, targetType reportmodel.TargetType, targetID, resolvedBy uuid.UUID, status reportmodel.Status) (int64, error)
}
