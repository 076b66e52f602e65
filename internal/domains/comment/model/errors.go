package model

import "jaalakam-backend/internal/shared/apperr"

var (
	ErrCommentNotFound = apperr.NotFound("Comment not found")
	ErrParentNotFound  = apperr.NotFound("Parent comment not found")
	ErrMissingTarget   = apperr.BadRequest("Either literature_id or parent_comment_id is required")
)
