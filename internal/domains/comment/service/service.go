package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"jaalakam-backend/internal/domains/auth"
	"jaalakam-backend/internal/domains/comment/model"
	"jaalakam-backend/internal/domains/comment/repository"
)

type commentService struct {
	repo       repository.Repository
	literature LiteratureReader
}

func NewCommentService(repo repository.Repository, literature LiteratureReader) ServiceInterface {
	return &commentService{
		repo:       repo,
		literature: literature,
	}
}

func (s *commentService) Create(ctx context.Context, ac *auth.AuthContext, req model.CreateRequest) (*model.Comment, error) {
	if err := auth.RequireAuthenticated(ac); err != nil {
		return nil, err
	}

	literatureID, parentID, err := s.target(ctx, req)
	if err != nil {
		return nil, err
	}

	if _, err := s.literature.Get(ctx, ac, literatureID); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &model.Comment{
		AuthorID:        ac.ID(),
		LiteratureID:    literatureID,
		ParentCommentID: parentID,
		Content:         req.Content,
	})
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("comment_id", created.ID.String()).
		Str("literature_id", literatureID.String()).
		Msg("Comment created")
	return created, nil
}

// target resolves where a new comment lives. A parent wins over a supplied literature id.
func (s *commentService) target(ctx context.Context, req model.CreateRequest) (uuid.UUID, *uuid.UUID, error) {
	if req.ParentCommentID != nil {
		parentID, err := uuid.Parse(*req.ParentCommentID)
		if err != nil {
			return uuid.Nil, nil, model.ErrParentNotFound
		}

		parent, err := s.repo.FindByID(ctx, parentID)
		if err != nil {
			if errors.Is(err, model.ErrCommentNotFound) {
				return uuid.Nil, nil, model.ErrParentNotFound
			}
			return uuid.Nil, nil, err
		}
		return parent.LiteratureID, &parent.ID, nil
	}

	if req.LiteratureID == nil {
		return uuid.Nil, nil, model.ErrMissingTarget
	}
	literatureID, err := uuid.Parse(*req.LiteratureID)
	if err != nil {
		return uuid.Nil, nil, model.ErrMissingTarget
	}
	return literatureID, nil, nil
}

func (s *commentService) owned(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) (*model.Comment, error) {
	if err := auth.RequireAuthenticated(ac); err != nil {
		return nil, err
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireOwnership(ac, c.AuthorID); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *commentService) Update(ctx context.Context, ac *auth.AuthContext, id uuid.UUID, req model.UpdateRequest) (*model.Comment, error) {
	if _, err := s.owned(ctx, ac, id); err != nil {
		return nil, err
	}
	return s.repo.UpdateContent(ctx, id, req.Content)
}

func (s *commentService) Delete(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) error {
	if _, err := s.owned(ctx, ac, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *commentService) ListForLiterature(ctx context.Context, ac *auth.AuthContext, literatureID uuid.UUID, req model.ListRequest) ([]*model.Comment, error) {
	if _, err := s.literature.Get(ctx, ac, literatureID); err != nil {
		return nil, err
	}
	req.Normalize()
	return s.repo.ListByLiterature(ctx, literatureID, req)
}
