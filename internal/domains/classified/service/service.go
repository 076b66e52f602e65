package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"jaalakam-backend/internal/domains/auth"
	"jaalakam-backend/internal/domains/classified/model"
	"jaalakam-backend/internal/domains/classified/repository"
)

type classifiedService struct {
	repo repository.Repository
}

func NewClassifiedService(repo repository.Repository) ServiceInterface {
	return &classifiedService{repo: repo}
}

func (s *classifiedService) List(ctx context.Context, req model.ListRequest) ([]*model.Classified, error) {
	req.Normalize()
	return s.repo.List(ctx, req)
}

func (s *classifiedService) Get(ctx context.Context, id uuid.UUID) (*model.Classified, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *classifiedService) Create(ctx context.Context, ac *auth.AuthContext, req model.CreateRequest) (*model.Classified, error) {
	if err := auth.RequireAuthenticated(ac); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &model.Classified{
		PostedByID:  ac.ID(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		ContactInfo: req.ContactInfo,
		Images:      req.Images,
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("classified_id", created.ID.String()).
		Str("category", created.Category).
		Msg("Classified posted")
	return created, nil
}

func (s *classifiedService) owned(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) error {
	if err := auth.RequireAuthenticated(ac); err != nil {
		return err
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return auth.RequireOwnership(ac, c.PostedByID)
}

func (s *classifiedService) Update(ctx context.Context, ac *auth.AuthContext, id uuid.UUID, req model.UpdateRequest) (*model.Classified, error) {
	if err := s.owned(ctx, ac, id); err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return nil, model.ErrNoChanges
	}
	return s.repo.Update(ctx, id, req)
}

func (s *classifiedService) Delete(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) error {
	if err := s.owned(ctx, ac, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
