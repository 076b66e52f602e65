package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	usermodel "jaalakam-backend/internal/domains/user/model"
)

// UserStore is the part of the user repository the resolver needs.
type UserStore interface {
	FindByClerkID(ctx context.Context, clerkID string) (*usermodel.User, error)
	CreateIfAbsent(ctx context.Context, user *usermodel.User) (*usermodel.User, error)
}

type Resolver struct {
	provider IdentityProvider
	users    UserStore
}

func NewResolver(provider IdentityProvider, users UserStore) *Resolver {
	return &Resolver{provider: provider, users: users}
}

const bearerPrefix = "Bearer "

// Resolve never fails: anything short of a verified token and a stored user yields a guest context.
func (r *Resolver) Resolve(ctx context.Context, authorization string) *AuthContext {
	token, ok := bearerToken(authorization)
	if !ok {
		return Guest()
	}

	claims, err := r.provider.VerifyToken(ctx, token)
	if err != nil {
		log.Debug().Err(err).Msg("Token verification failed")
		return Guest()
	}
	if claims.Subject == "" {
		log.Debug().Msg("Token has no subject")
		return Guest()
	}

	user, err := r.findOrProvision(ctx, claims.Subject)
	if err != nil {
		log.Error().Err(err).Str("clerk_id", claims.Subject).Msg("Error syncing user")
		return Guest()
	}

	return FromUser(user)
}

func (r *Resolver) findOrProvision(ctx context.Context, clerkID string) (*usermodel.User, error) {
	user, err := r.users.FindByClerkID(ctx, clerkID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, usermodel.ErrUserNotFound) {
		return nil, err
	}

	profile, err := r.provider.GetProfile(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	user, err = r.users.CreateIfAbsent(ctx, &usermodel.User{
		ClerkID:     clerkID,
		Email:       profile.Email,
		Name:        profile.Name,
		DisplayName: profile.DisplayName,
		Avatar:      profile.AvatarURL,
		Role:        usermodel.RoleMember,
		IsVerified:  profile.EmailVerified,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("user_id", user.ID.String()).Str("clerk_id", clerkID).Msg("Provisioned user")
	return user, nil
}

func bearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
