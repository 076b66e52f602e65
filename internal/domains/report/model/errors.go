package model

import "jaalakam-backend/internal/shared/apperr"

var (
	ErrReportNotFound    = apperr.NotFound("Report not found")
	ErrInvalidResolution = apperr.BadRequest("Reports can only be resolved or dismissed")
	ErrInvalidTarget     = apperr.BadRequest("Invalid target ID")
)
