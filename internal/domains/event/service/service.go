package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"jaalakam-backend/internal/domains/auth"
	"jaalakam-backend/internal/domains/event/model"
	"jaalakam-backend/internal/domains/event/repository"
)

type eventService struct {
	repo repository.Repository
}

func NewEventService(repo repository.Repository) ServiceInterface {
	return &eventService{repo: repo}
}

func (s *eventService) List(ctx context.Context, req model.ListRequest) ([]*model.Event, error) {
	req.Normalize()
	return s.repo.List(ctx, req)
}

func (s *eventService) visible(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) (*model.Event, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !e.IsPublic && !auth.CanMutate(ac, e.OrganizerID) {
		return nil, model.ErrEventNotFound
	}
	return e, nil
}

func (s *eventService) detail(ctx context.Context, e *model.Event) (*model.EventDetail, error) {
	attendees, err := s.repo.ListAttendees(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	return &model.EventDetail{Event: e, Attendees: attendees}, nil
}

func (s *eventService) Get(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) (*model.EventDetail, error) {
	e, err := s.visible(ctx, ac, id)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, e)
}

func (s *eventService) Create(ctx context.Context, ac *auth.AuthContext, req model.CreateRequest) (*model.Event, error) {
	if err := auth.RequireAuthenticated(ac); err != nil {
		return nil, err
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	created, err := s.repo.Create(ctx, &model.Event{
		OrganizerID:   ac.ID(),
		Title:         req.Title,
		TitleEn:       req.TitleEn,
		Description:   req.Description,
		DescriptionEn: req.DescriptionEn,
		Location:      req.Location,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Image:         req.Image,
		IsPublic:      isPublic,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("event_id", created.ID.String()).
		Time("start_date", created.StartDate).
		Msg("Event created")
	return created, nil
}

func (s *eventService) owned(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) error {
	if err := auth.RequireAuthenticated(ac); err != nil {
		return err
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return auth.RequireOwnership(ac, e.OrganizerID)
}

func (s *eventService) Update(ctx context.Context, ac *auth.AuthContext, id uuid.UUID, req model.UpdateRequest) (*model.Event, error) {
	if err := s.owned(ctx, ac, id); err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return nil, model.ErrNoChanges
	}
	return s.repo.Update(ctx, id, req)
}

func (s *eventService) Delete(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) error {
	if err := s.owned(ctx, ac, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *eventService) Attend(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) (*model.EventDetail, error) {
	return s.engage(ctx, ac, id, s.repo.Attend)
}

func (s *eventService) Unattend(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) (*model.EventDetail, error) {
	return s.engage(ctx, ac, id, s.repo.Unattend)
}

func (s *eventService) engage(ctx context.Context, ac *auth.AuthContext, id uuid.UUID, apply func(context.Context, uuid.UUID, uuid.UUID) (bool, error)) (*model.EventDetail, error) {
	if err := auth.RequireAuthenticated(ac); err != nil {
		return nil, err
	}

	e, err := s.visible(ctx, ac, id)
	if err != nil {
		return nil, err
	}

	changed, err := apply(ctx, ac.ID(), id)
	if err != nil {
		return nil, err
	}
	if changed {
		if e, err = s.repo.FindByID(ctx, id); err != nil {
			return nil, err
		}
	}
	return s.detail(ctx, e)
}
