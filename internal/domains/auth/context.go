// Package auth turns a request credential into an AuthContext and decides
// what that context is allowed to do.
package auth

import (
	"context"

	"github.com/google/uuid"

	usermodel "jaalakam-backend/internal/domains/user/model"
)

// Role is the caller's role for one request. GUEST has no stored user.
type Role string

const (
	RoleGuest  Role = "GUEST"
	RoleMember Role = "MEMBER"
	RoleAuthor Role = "AUTHOR"
	RoleAdmin  Role = "ADMIN"
)

// AuthContext is derived once per request and never mutated afterwards.
type AuthContext struct {
	UserID     *uuid.UUID
	User       *usermodel.User
	Role       Role
	IsVerified bool
}

// Guest returns the context used for anonymous or unverifiable requests.
func Guest() *AuthContext {
	return &AuthContext{Role: RoleGuest}
}

// FromUser builds the context from the stored user row. The role is taken as stored.
func FromUser(u *usermodel.User) *AuthContext {
	if u == nil {
		return Guest()
	}
	id := u.ID
	return &AuthContext{
		UserID:     &id,
		User:       u,
		Role:       roleOf(u.Role),
		IsVerified: u.IsVerified,
	}
}

func roleOf(r usermodel.Role) Role {
	switch r {
	case usermodel.RoleAdmin:
		return RoleAdmin
	case usermodel.RoleAuthor:
		return RoleAuthor
	case usermodel.RoleMember:
		return RoleMember
	default:
		// unknown stored roles get the least privilege an authenticated user can have
		return RoleMember
	}
}

func (ac *AuthContext) IsAuthenticated() bool {
	return ac != nil && ac.UserID != nil
}

func (ac *AuthContext) IsAdmin() bool {
	return ac.IsAuthenticated() && ac.Role == RoleAdmin
}

// ID returns the authenticated user id or uuid.Nil for guests.
func (ac *AuthContext) ID() uuid.UUID {
	if !ac.IsAuthenticated() {
		return uuid.Nil
	}
	return *ac.UserID
}

type contextKey struct{}

func WithAuthContext(ctx context.Context, ac *AuthContext) context.Context {
	return context.WithValue(ctx, contextKey{}, ac)
}

// FromContext returns the request's AuthContext, or a guest context if none was stored.
func FromContext(ctx context.Context) *AuthContext {
	if ac, ok := ctx.Value(contextKey{}).(*AuthContext); ok && ac != nil {
		return ac
	}
	return Guest()
}
