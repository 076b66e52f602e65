package model

import "jaalakam-backend/internal/shared/apperr"

var (
	ErrEventNotFound = apperr.NotFound("Event not found")
	ErrNoChanges     = apperr.BadRequest("No fields to update")
)
