package repository

import (
	"context"

	"github.com/google/uuid"

	"jaalakam-backend/internal/domains/report/model"
)

type Repository interface {
	Create(ctx context.Context, report *model.Report) (*model.Report, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Report, error)

	// List returns reports newest first.
	List(ctx context.Context, req model.ListRequest) ([]*model.Report, error)

	// ResolveForTarget closes every PENDING report on the target and returns how many changed.
	ResolveForTarget(ctx context.Context, targetType model.TargetType, targetID, resolvedBy uuid.UUID, status model.Status) (int64, error)
}
