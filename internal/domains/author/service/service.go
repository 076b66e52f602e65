package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"jaalakam-backend/internal/domains/auth"
	"jaalakam-backend/internal/domains/author/model"
	"jaalakam-backend/internal/domains/author/repository"
)

type authorService struct {
	repo repository.Repository
}

func NewAuthorService(repo repository.Repository) ServiceInterface {
	return &authorService{repo: repo}
}

func (s *authorService) CreateProfile(ctx context.Context, ac *auth.AuthContext, req model.ProfileRequest) (*model.Author, error) {
	if err := auth.RequireAuthenticated(ac); err != nil {
		return nil, err
	}

	_, err := s.repo.FindByUserID(ctx, ac.ID())
	switch {
	case err == nil:
		return nil, model.ErrAuthorAlreadyExists
	case !errors.Is(err, model.ErrProfileNotFound):
		return nil, err
	}

	// the unique index on authors.user_id settles concurrent creates
	created, err := s.repo.CreateWithPromotion(ctx, &model.Author{
		UserID:      ac.ID(),
		PenName:     req.PenName,
		Bio:         req.Bio,
		BioEn:       req.BioEn,
		Avatar:      req.Avatar,
		SocialLinks: req.SocialLinks,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("author_id", created.ID.String()).
		Str("user_id", ac.ID().String()).
		Msg("Author profile created")
	return created, nil
}

func (s *authorService) UpdateProfile(ctx context.Context, ac *auth.AuthContext, req model.ProfileRequest) (*model.Author, error) {
	if err := auth.RequireAuthor(ac); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByUserID(ctx, ac.ID())
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, existing.ID, req)
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*model.AuthorDetail, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	works, err := s.repo.ListPublishedWorks(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.AuthorDetail{Author: a, Works: works}, nil
}

func (s *authorService) List(ctx context.Context, req model.ListRequest) ([]*model.Author, error) {
	req.Normalize()
	return s.repo.List(ctx, req)
}

func (s *authorService) Verify(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) (*model.Author, error) {
	if err := auth.RequireAdmin(ac); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.SetVerified(ctx, id, true)
}
