package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jaalakam-backend/internal/domains/auth"
	"jaalakam-backend/internal/domains/comment/model"
	"jaalakam-backend/internal/domains/comment/service"
	litmodel "jaalakam-backend/internal/domains/literature/model"
	usermodel "jaalakam-backend/internal/domains/user/model"
	"jaalakam-backend/internal/shared/apperr"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) comment(args mock.Arguments) (*model.Comment, error) {
	if c := args.Get(0); c != nil {
		return c.(*model.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) Create(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	return m.comment(m.Called(ctx, c))
}

func (m *mockRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	return m.comment(m.Called(ctx, id))
}

func (m *mockRepo) ListByLiterature(ctx context.Context, literatureID uuid.UUID, req model.ListRequest) ([]*model.Comment, error) {
	args := m.Called(ctx, literatureID, req)
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *mockRepo) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*model.Comment, error) {
	return m.comment(m.Called(ctx, id, content))
}

func (m *mockRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockLiterature struct {
	mock.Mock
}

func (m *mockLiterature) Get(ctx context.Context, ac *auth.AuthContext, id uuid.UUID) (*litmodel.Literature, error) {
	args := m.Called(ctx, ac, id)
	if l := args.Get(0); l != nil {
		return l.(*litmodel.Literature), args.Error(1)
	}
	return nil, args.Error(1)
}

func acting(role usermodel.Role) *auth.AuthContext {
	return auth.FromUser(&usermodel.User{ID: uuid.New(), Role: role})
}

func strptr(s string) *string { return &s }

func TestCommentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Should require a literature or a parent", func(t *testing.T) {
		repo := &mockRepo{}
		svc := service.NewCommentService(repo, &mockLiterature{})

		_, err := svc.Create(ctx, acting(usermodel.RoleMember), model.CreateRequest{Content: "Lovely"})
		assert.ErrorIs(t, err, model.ErrMissingTarget)
		assert.True(t, apperr.Is(err, apperr.KindBadRequest))
	})

	t.Run("Should comment on a visible literature item", func(t *testing.T) {
		repo, lit := &mockRepo{}, &mockLiterature{}
		ac := acting(usermodel.RoleMember)
		literatureID := uuid.New()
		lit.On("Get", ctx, ac, literatureID).Return(&litmodel.Literature{ID: literatureID}, nil)
		repo.On("Create", ctx, mock.MatchedBy(func(c *model.Comment) bool {
			return c.LiteratureID == literatureID && c.ParentCommentID == nil && c.AuthorID == ac.ID()
		})).Return(&model.Comment{ID: uuid.New(), LiteratureID: literatureID}, nil)

		got, err := service.NewCommentService(repo, lit).Create(ctx, ac, model.CreateRequest{
			LiteratureID: strptr(literatureID.String()),
			Content:      "Lovely",
		})
		require.NoError(t, err)
		assert.Equal(t, literatureID, got.LiteratureID)
		repo.AssertExpectations(t)
	})

	t.Run("Should inherit the literature from the parent", func(t *testing.T) {
		repo, lit := &mockRepo{}, &mockLiterature{}
		ac := acting(usermodel.RoleMember)
		parent := &model.Comment{ID: uuid.New(), LiteratureID: uuid.New()}
		repo.On("FindByID", ctx, parent.ID).Return(parent, nil)
		lit.On("Get", ctx, ac, parent.LiteratureID).Return(&litmodel.Literature{ID: parent.LiteratureID}, nil)
		repo.On("Create", ctx, mock.MatchedBy(func(c *model.Comment) bool {
			return c.LiteratureID == parent.LiteratureID && *c.ParentCommentID == parent.ID
		})).Return(&model.Comment{ID: uuid.New(), LiteratureID: parent.LiteratureID, ParentCommentID: &parent.ID}, nil)

		got, err := service.NewCommentService(repo, lit).Create(ctx, ac, model.CreateRequest{
			LiteratureID:    strptr(uuid.NewString()),
			ParentCommentID: strptr(parent.ID.String()),
			Content:         "Agreed",
		})
		require.NoError(t, err)
		assert.Equal(t, parent.LiteratureID, got.LiteratureID)
		lit.AssertExpectations(t)
	})

	t.Run("Should report a missing parent", func(t *testing.T) {
		repo := &mockRepo{}
		parentID := uuid.New()
		repo.On("FindByID", ctx, parentID).Return(nil, model.ErrCommentNotFound)

		_, err := service.NewCommentService(repo, &mockLiterature{}).Create(ctx, acting(usermodel.RoleMember), model.CreateRequest{
			ParentCommentID: strptr(parentID.String()),
			Content:         "Agreed",
		})
		assert.ErrorIs(t, err, model.ErrParentNotFound)
	})

	t.Run("Should report a missing literature item", func(t *testing.T) {
		repo, lit := &mockRepo{}, &mockLiterature{}
		ac := acting(usermodel.RoleMember)
		literatureID := uuid.New()
		lit.On("Get", ctx, ac, literatureID).Return(nil, litmodel.ErrLiteratureNotFound)

		_, err := service.NewCommentService(repo, lit).Create(ctx, ac, model.CreateRequest{
			LiteratureID: strptr(literatureID.String()),
			Content:      "Lovely",
		})
		assert.True(t, apperr.Is(err, apperr.KindNotFound))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should require authentication", func(t *testing.T) {
		_, err := service.NewCommentService(&mockRepo{}, &mockLiterature{}).Create(ctx, auth.Guest(), model.CreateRequest{})
		assert.True(t, apperr.Is(err, apperr.KindUnauthenticated))
	})
}

func TestCommentService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Should let the author edit and mark it edited", func(t *testing.T) {
		repo := &mockRepo{}
		ac := acting(usermodel.RoleMember)
		c := &model.Comment{ID: uuid.New(), AuthorID: ac.ID()}
		repo.On("FindByID", ctx, c.ID).Return(c, nil)
		repo.On("UpdateContent", ctx, c.ID, "Edited").Return(&model.Comment{ID: c.ID, Content: "Edited", IsEdited: true}, nil)

		got, err := service.NewCommentService(repo, &mockLiterature{}).Update(ctx, ac, c.ID, model.UpdateRequest{Content: "Edited"})
		require.NoError(t, err)
		assert.True(t, got.IsEdited)
	})

	t.Run("Should forbid other members", func(t *testing.T) {
		repo := &mockRepo{}
		c := &model.Comment{ID: uuid.New(), AuthorID: uuid.New()}
		repo.On("FindByID", ctx, c.ID).Return(c, nil)

		_, err := service.NewCommentService(repo, &mockLiterature{}).Update(ctx, acting(usermodel.RoleAuthor), c.ID, model.UpdateRequest{Content: "x"})
		assert.True(t, apperr.Is(err, apperr.KindForbidden))
		repo.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCommentService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Should let an admin delete any comment", func(t *testing.T) {
		repo := &mockRepo{}
		c := &model.Comment{ID: uuid.New(), AuthorID: uuid.New()}
		repo.On("FindByID", ctx, c.ID).Return(c, nil)
		repo.On("Delete", ctx, c.ID).Return(nil)

		require.NoError(t, service.NewCommentService(repo, &mockLiterature{}).Delete(ctx, acting(usermodel.RoleAdmin), c.ID))
		repo.AssertExpectations(t)
	})

	t.Run("Should check existence before ownership", func(t *testing.T) {
		repo := &mockRepo{}
		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, model.ErrCommentNotFound)

		err := service.NewCommentService(repo, &mockLiterature{}).Delete(ctx, acting(usermodel.RoleMember), id)
		assert.True(t, apperr.Is(err, apperr.KindNotFound))
	})
}

func TestCommentService_ListForLiterature(t *testing.T) {
	ctx := context.Background()
	repo, lit := &mockRepo{}, &mockLiterature{}
	guest := auth.Guest()
	literatureID := uuid.New()
	lit.On("Get", ctx, guest, literatureID).Return(&litmodel.Literature{ID: literatureID}, nil)
	repo.On("ListByLiterature", ctx, literatureID, model.ListRequest{Limit: model.DefaultListLimit}).
		Return([]*model.Comment{{ID: uuid.New()}}, nil)

	comments, err := service.NewCommentService(repo, lit).ListForLiterature(ctx, guest, literatureID, model.ListRequest{})
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}
