package model

import "jaalakam-backend/internal/shared/apperr"

var (
	ErrClassifiedNotFound = apperr.NotFound("Classified not found")
	ErrNoChanges          = apperr.BadRequest("No fields to update")
)
