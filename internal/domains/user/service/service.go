package service

import (
	"context"

	"github.com/google/uuid"

	"jaalakam-backend/internal/domains/auth"
	"jaalakam-backend/internal/domains/user/model"
	"jaalakam-backend/internal/domains/user/repository"
)

type userService struct {
	repo repository.Repository
}

func NewUserService(repo repository.Repository) ServiceInterface {
	return &userService{repo: repo}
}

func (s *userService) Me(ctx context.Context, ac *auth.AuthContext) (*model.User, error) {
	if err := auth.RequireAuthenticated(ac); err != nil {
		return nil, err
	}
	if ac.User != nil {
		return ac.User, nil
	}
	return s.repo.FindByID(ctx, ac.ID())
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) UpdateProfile(ctx context.Context, ac *auth.AuthContext, req model.UpdateProfileRequest) (*model.User, error) {
	if err := auth.RequireAuthenticated(ac); err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return nil, model.ErrNoChanges
	}
	return s.repo.UpdateProfile(ctx, ac.ID(), req)
}
