package model

import "jaalakam-backend/internal/shared/apperr"

var (
	ErrUserNotFound = apperr.NotFound("User not found")
	ErrNoChanges    = apperr.BadRequest("No profile fields to update")
)
