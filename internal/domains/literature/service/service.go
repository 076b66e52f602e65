package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"jaalakam-backend/internal/domains/auth"
	"jaalakam-backend/internal/domains/literature/model"
	"jaalakam-backend/internal/domains/literature/repository"
	reportmodel "jaalakam-backend/internal/domains/report/model"
)

type literatureService struct {
	repo    repository.Repository
	authors AuthorProvider
	reports ReportResolver
}

func NewLiteratureService(repo repository.Repository, authors AuthorProvider, reports ReportResolver) ServiceInterface {
	return &literatureService{
		repo:    repo,
		authors: authors,
		reports: reports,
	}
}

func (s *literatureService) Create(ctx context.Context, ac *auth.AuthContext, req model.CreateRequest) (*model.Literature, error) {
	if err := auth.RequireAuthor(ac); err != nil {
		return nil, err
	}

	author, err := s.authors.EnsureForUser(ctx, ac.ID())
	if err != nil {
		return nil, err
	}

	language := req.Language
	if language == "" {
		language = model.LanguageMalayalam
	}

	created, err := s.repo.Create(ctx, &model.Literature{
		AuthorID:   author.ID,
		Title:      req.Title,
		TitleEn:    req.TitleEn,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		Type:       req.Type,
		Language:   language,
		Tags:       req.Tags,
		CoverImage: req.CoverImage,
		Status:     model.StatusDraft,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("literature_id", created.ID.String()).
		Str("author_id", author.ID.String()).
		Msg("Literature created")
	return created, nil
}

func (s *literatureService) Get(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) (*model.Literature, error) {
	return s.visible(ctx, ac, id)
}

// visible loads an item the caller is allowed to see.
// Drafts and moderated items look absent to anyone but the owner or an admin.
func (s *literatureService) visible(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) (*model.Literature, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return hideUnpublished(ac, l)
}

func hideUnpublished(ac *auth.AuthContext, l *model.Literature) (*model.Literature, error) {
	if l.Status != model.StatusPublished && !auth.CanMutate(ac, l.AuthorUserID) {
		return nil, model.ErrLiteratureNotFound
	}
	return l, nil
}

// owned loads an item for mutation: existence first, then ownership.
// Mutations never decide on a cached copy.
func (s *literatureService) owned(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) (*model.Literature, error) {
	if err := auth.RequireAuthor(ac); err != nil {
		return nil, err
	}

	l, err := s.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireOwnership(ac, l.AuthorUserID); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *literatureService) List(ctx context.Context, req model.ListRequest) ([]*model.Literature, error) {
	req.Normalize()
	return s.repo.List(ctx, req)
}

func (s *literatureService) Search(ctx context.Context, req model.SearchRequest) ([]*model.Literature, error) {
	req.Normalize()
	return s.repo.Search(ctx, req)
}

func (s *literatureService) Update(ctx context.Context, ac *auth.AuthContext, id uuid.UUID, req model.UpdateRequest) (*model.Literature, error) {
	if _, err := s.owned(ctx, ac, id); err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return nil, model.ErrNoChanges
	}
	return s.repo.Update(ctx, id, req)
}

func (s *literatureService) Publish(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) (*model.Literature, error) {
	l, err := s.owned(ctx, ac, id)
	if err != nil {
		return nil, err
	}

	outcome, err := model.Publish(l.Status)
	if err != nil {
		return nil, err
	}

	published, err := s.repo.ApplyTransition(ctx, id, l.Status, outcome)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("literature_id", id.String()).
		Str("from", string(l.Status)).
		Msg("Literature published")
	return published, nil
}

func (s *literatureService) Delete(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) error {
	if _, err := s.owned(ctx, ac, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *literatureService) Moderate(ctx context.Context, ac *auth.AuthContext, id uuid.UUID, req model.ModerateRequest) (*model.ModerationResult, error) {
	if err := auth.RequireAdmin(ac); err != nil {
		return nil, err
	}

	l, err := s.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	action, err := model.ParseModerationAction(req.Action)
	if err != nil {
		return nil, err
	}

	outcome, err := model.Moderate(l.Status, action)
	if err != nil {
		return nil, err
	}

	result := &model.ModerationResult{Action: action}
	if outcome.Remove {
		if err := s.repo.Delete(ctx, id); err != nil {
			return nil, err
		}
		result.Removed = true
	} else {
		result.Literature, err = s.repo.ApplyTransition(ctx, id, l.Status, outcome)
		if err != nil {
			return nil, err
		}
	}

	event := log.Info().
		Str("literature_id", id.String()).
		Str("action", string(action)).
		Str("admin_id", ac.ID().String())
	if req.Notes != nil {
		event = event.Str("notes", *req.Notes)
	}
	event.Msg("Literature moderated")

	s.settleReports(ctx, ac, id, action)
	return result, nil
}

// settleReports closes pending reports once the action has been applied.
// The action stands even if this fails.
func (s *literatureService) settleReports(ctx context.Context, ac *auth.AuthContext, id uuid.UUID, action model.ModerationAction) {
	if s.reports == nil {
		return
	}

	status := reportmodel.StatusResolved
	if action.Dismisses() {
		status = reportmodel.StatusDismissed
	}

	n, err := s.reports.ResolveForTarget(ctx, reportmodel.TargetLiterature, id, ac.ID(), status)
	if err != nil {
		log.Error().Err(err).Str("literature_id", id.String()).Msg("Failed to settle reports after moderation")
		return
	}
	if n > 0 {
		log.Info().Str("literature_id", id.String()).Int64("reports", n).Str("status", string(status)).Msg("Reports settled")
	}
}

func (s *literatureService) Like(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) (*model.Literature, error) {
	return s.engage(ctx, ac, id, s.repo.Like)
}

func (s *literatureService) Unlike(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) (*model.Literature, error) {
	return s.engage(ctx, ac, id, s.repo.Unlike)
}

func (s *literatureService) engage(ctx context.Context, ac *auth.AuthContext, id uuid.UUID, apply func(context.Context, uuid.UUID, uuid.UUID) (bool, error)) (*model.Literature, error) {
	if err := auth.RequireAuthenticated(ac); err != nil {
		return nil, err
	}

	l, err := s.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	current, err := hideUnpublished(ac, l)
	if err != nil {
		return nil, err
	}

	changed, err := apply(ctx, ac.ID(), id)
	if err != nil {
		return nil, err
	}
	if !changed {
		return current, nil
	}
	return s.repo.Load(ctx, id)
}
