package service

import (
	"context"

	"github.com/google/uuid"

	"jaalakam-backend/internal/domains/auth"
	"jaalakam-backend/internal/domains/report/model"
)

type ServiceInterface interface {
	// Create files a PENDING report from the caller.
	Create(ctx context.Context, ac *auth.AuthContext, req model.CreateRequest) (*model.Report, error)

	List(ctx context.Context, ac *auth.AuthContext, req model.ListRequest) ([]*model.Report, error)
	Get(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) (*model.Report, error)

	// ResolveForTarget is called by moderation after an action has been applied.
	ResolveForTarget(ctx context.Context, targetType model.TargetType, targetID, resolvedBy uuid.UUID, status model.Status) (int64, error)
}
