package model

import "jaalakam-backend/internal/shared/apperr"

var (
	ErrLiteratureNotFound = apperr.NotFound("Literature not found")
	ErrStatusChanged      = apperr.BadRequest("Literature status changed, reload and retry")
	ErrNoChanges          = apperr.BadRequest("No fields to update")
)
