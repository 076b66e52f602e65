package auth_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jaalakam-backend/internal/domains/auth"
	usermodel "jaalakam-backend/internal/domains/user/model"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) VerifyToken(ctx context.Context, raw string) (*auth.Claims, error) {
	args := m.Called(ctx, raw)
	if c := args.Get(0); c != nil {
		return c.(*auth.Claims), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProvider) GetProfile(ctx context.Context, subject string) (*auth.Profile, error) {
	args := m.Called(ctx, subject)
	if p := args.Get(0); p != nil {
		return p.(*auth.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) FindByClerkID(ctx context.Context, clerkID string) (*usermodel.User, error) {
	args := m.Called(ctx, clerkID)
	if u := args.Get(0); u != nil {
		return u.(*usermodel.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) CreateIfAbsent(ctx context.Context, u *usermodel.User) (*usermodel.User, error) {
	args := m.Called(ctx, u)
	if out := args.Get(0); out != nil {
		return out.(*usermodel.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func strPtr(s string) *string { return &s }

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return guest without a credential", func(t *testing.T) {
		provider := &mockProvider{}
		store := &mockStore{}
		r := auth.NewResolver(provider, store)

		ac := r.Resolve(ctx, "")
		assert.Equal(t, auth.RoleGuest, ac.Role)
		assert.False(t, ac.IsAuthenticated())
		provider.AssertNotCalled(t, "VerifyToken", mock.Anything, mock.Anything)
	})

	t.Run("Should ignore non-bearer schemes", func(t *testing.T) {
		provider := &mockProvider{}
		r := auth.NewResolver(provider, &mockStore{})

		assert.Equal(t, auth.RoleGuest, r.Resolve(ctx, "Basic dXNlcjpwYXNz").Role)
		assert.Equal(t, auth.RoleGuest, r.Resolve(ctx, "Bearer ").Role)
		provider.AssertNotCalled(t, "VerifyToken", mock.Anything, mock.Anything)
	})

	t.Run("Should degrade to guest when verification fails", func(t *testing.T) {
		provider := &mockProvider{}
		store := &mockStore{}
		provider.On("VerifyToken", ctx, "expired").Return(nil, errors.New("token is expired"))
		r := auth.NewResolver(provider, store)

		ac := r.Resolve(ctx, "Bearer expired")
		assert.Equal(t, auth.RoleGuest, ac.Role)
		store.AssertNotCalled(t, "FindByClerkID", mock.Anything, mock.Anything)
	})

	t.Run("Should resolve an existing user with its stored role", func(t *testing.T) {
		provider := &mockProvider{}
		store := &mockStore{}
		existing := &usermodel.User{ID: uuid.New(), ClerkID: "user_1", Role: usermodel.RoleAuthor, IsVerified: true}
		provider.On("VerifyToken", ctx, "good").Return(&auth.Claims{Subject: "user_1"}, nil)
		store.On("FindByClerkID", ctx, "user_1").Return(existing, nil)
		r := auth.NewResolver(provider, store)

		ac := r.Resolve(ctx, "Bearer good")
		require.True(t, ac.IsAuthenticated())
		assert.Equal(t, existing.ID, ac.ID())
		assert.Equal(t, auth.RoleAuthor, ac.Role)
		assert.True(t, ac.IsVerified)
		provider.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
	})

	t.Run("Should provision a member on first sight", func(t *testing.T) {
		provider := &mockProvider{}
		store := &mockStore{}
		provider.On("VerifyToken", ctx, "new").Return(&auth.Claims{Subject: "user_new"}, nil)
		store.On("FindByClerkID", ctx, "user_new").Return(nil, usermodel.ErrUserNotFound)
		provider.On("GetProfile", ctx, "user_new").Return(&auth.Profile{
			Email:         strPtr("new@example.com"),
			Name:          strPtr("Nila"),
			DisplayName:   strPtr("nila"),
			EmailVerified: true,
		}, nil)
		store.On("CreateIfAbsent", ctx, mock.MatchedBy(func(u *usermodel.User) bool {
			return u.ClerkID == "user_new" && u.Role == usermodel.RoleMember && u.IsVerified && *u.Email == "new@example.com"
		})).Return(&usermodel.User{ID: uuid.New(), ClerkID: "user_new", Role: usermodel.RoleMember, IsVerified: true}, nil)
		r := auth.NewResolver(provider, store)

		ac := r.Resolve(ctx, "Bearer new")
		assert.Equal(t, auth.RoleMember, ac.Role)
		assert.True(t, ac.IsAuthenticated())
		store.AssertExpectations(t)
		provider.AssertExpectations(t)
	})

	t.Run("Should degrade to guest when the profile lookup fails", func(t *testing.T) {
		provider := &mockProvider{}
		store := &mockStore{}
		provider.On("VerifyToken", ctx, "new").Return(&auth.Claims{Subject: "user_new"}, nil)
		store.On("FindByClerkID", ctx, "user_new").Return(nil, usermodel.ErrUserNotFound)
		provider.On("GetProfile", ctx, "user_new").Return(nil, errors.New("503 from provider"))
		r := auth.NewResolver(provider, store)

		assert.Equal(t, auth.RoleGuest, r.Resolve(ctx, "Bearer new").Role)
		store.AssertNotCalled(t, "CreateIfAbsent", mock.Anything, mock.Anything)
	})

	t.Run("Should degrade to guest when the store fails", func(t *testing.T) {
		provider := &mockProvider{}
		store := &mockStore{}
		provider.On("VerifyToken", ctx, "tok").Return(&auth.Claims{Subject: "user_1"}, nil)
		store.On("FindByClerkID", ctx, "user_1").Return(nil, errors.New("connection reset"))
		r := auth.NewResolver(provider, store)

		assert.Equal(t, auth.RoleGuest, r.Resolve(ctx, "Bearer tok").Role)
		provider.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
	})
}

// uniqueStore mimics the unique index on users.clerk_id.
type uniqueStore struct {
	mu    sync.Mutex
	users map[string]*usermodel.User
}

func (s *uniqueStore) FindByClerkID(_ context.Context, clerkID string) (*usermodel.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[clerkID]; ok {
		return u, nil
	}
	return nil, usermodel.ErrUserNotFound
}

func (s *uniqueStore) CreateIfAbsent(_ context.Context, u *usermodel.User) (*usermodel.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.users[u.ClerkID]; ok {
		return existing, nil
	}
	stored := *u
	stored.ID = uuid.New()
	s.users[u.ClerkID] = &stored
	return &stored, nil
}

type staticProvider struct{}

func (staticProvider) VerifyToken(_ context.Context, raw string) (*auth.Claims, error) {
	return &auth.Claims{Subject: raw}, nil
}

func (staticProvider) GetProfile(context.Context, string) (*auth.Profile, error) {
	return &auth.Profile{}, nil
}

func TestResolver_ConcurrentProvisioning(t *testing.T) {
	store := &uniqueStore{users: map[string]*usermodel.User{}}
	r := auth.NewResolver(staticProvider{}, store)

	const workers = 32
	ids := make([]uuid.UUID, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = r.Resolve(context.Background(), "Bearer user_same").ID()
		}(i)
	}
	wg.Wait()

	assert.Len(t, store.users, 1)
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
		assert.NotEqual(t, uuid.Nil, id)
	}
}
