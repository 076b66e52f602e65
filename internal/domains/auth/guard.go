package auth

import (
	"github.com/google/uuid"

	"jaalakam-backend/internal/shared/apperr"
)

var (
	ErrAuthenticationRequired = apperr.Unauthenticated("Authentication required")
	ErrAuthorRequired         = apperr.Forbidden("Author role required")
	ErrAdminRequired          = apperr.Forbidden("Admin role required")
	ErrNotOwner               = apperr.Forbidden("Not authorized")
)

// RequireAuthenticated fails unless the context carries a resolved user.
func RequireAuthenticated(ac *AuthContext) error {
	if !ac.IsAuthenticated() {
		return ErrAuthenticationRequired
	}
	return nil
}

// RequireAuthor admits AUTHOR and ADMIN.
func RequireAuthor(ac *AuthContext) error {
	if err := RequireAuthenticated(ac); err != nil {
		return err
	}
	if ac.Role != RoleAuthor && ac.Role != RoleAdmin {
		return ErrAuthorRequired
	}
	return nil
}

func RequireAdmin(ac *AuthContext) error {
	if err := RequireAuthenticated(ac); err != nil {
		return err
	}
	if ac.Role != RoleAdmin {
		return ErrAdminRequired
	}
	return nil
}

// CanMutate reports whether the caller owns the resource or is an admin.
func CanMutate(ac *AuthContext, ownerID uuid.UUID) bool {
	if !ac.IsAuthenticated() {
		return false
	}
	return ac.ID() == ownerID || ac.Role == RoleAdmin
}

// RequireOwnership must be called after the resource is known to exist.
func RequireOwnership(ac *AuthContext, ownerID uuid.UUID) error {
	if err := RequireAuthenticated(ac); err != nil {
		return err
	}
	if !CanMutate(ac, ownerID) {
		return ErrNotOwner
	}
	return nil
}
