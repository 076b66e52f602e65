package model

import "jaalakam-backend/internal/shared/apperr"

var (
	ErrAuthorNotFound      = apperr.NotFound("Author not found")
	ErrProfileNotFound     = apperr.NotFound("Author profile not found")
	ErrAuthorAlreadyExists = apperr.AlreadyExists("Author profile already exists")
)
