package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"jaalakam-backend/internal/domains/auth"
	"jaalakam-backend/internal/domains/report/model"
	"jaalakam-backend/internal/domains/report/repository"
)

type reportService struct {
	repo repository.Repository
}

func NewReportService(repo repository.Repository) ServiceInterface {
	return &reportService{repo: repo}
}

func (s *reportService) Create(ctx context.Context, ac *auth.AuthContext, req model.CreateRequest) (*model.Report, error) {
	if err := auth.RequireAuthenticated(ac); err != nil {
		return nil, err
	}

	targetID, err := uuid.Parse(req.TargetID)
	if err != nil {
		return nil, model.ErrInvalidTarget
	}

	report, err := s.repo.Create(ctx, &model.Report{
		Type:         req.Type,
		TargetType:   req.TargetType,
		TargetID:     targetID,
		Reason:       req.Reason,
		ReportedByID: ac.ID(),
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("report_id", report.ID.String()).
		Str("target_type", string(report.TargetType)).
		Str("target_id", report.TargetID.String()).
		Msg("Report filed")
	return report, nil
}

func (s *reportService) List(ctx context.Context, ac *auth.AuthContext, req model.ListRequest) ([]*model.Report, error) {
	if err := auth.RequireAdmin(ac); err != nil {
		return nil, err
	}
	req.Normalize()
	return s.repo.List(ctx, req)
}

func (s *reportService) Get(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) (*model.Report, error) {
	if err := auth.RequireAdmin(ac); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *reportService) ResolveForTarget(ctx context.Context, targetType model.TargetType, targetID, resolvedBy uuid.UUID, status model.Status) (int64, error) {
	return s.repo.ResolveForTarget(ctx, targetType, targetID, resolvedBy, status)
}
