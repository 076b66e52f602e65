package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment belongs to a literature item either directly or through its parent comment.
// A reply takes its literature from the parent when it is created.
type Comment struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	AuthorID        uuid.UUID  `json:"author_id" db:"author_id"`
	AuthorName      *string    `json:"author_name" db:"author_name"`
	LiteratureID    uuid.UUID  `json:"literature_id" db:"literature_id"`
	ParentCommentID *uuid.UUID `json:"parent_comment_id" db:"parent_comment_id"`
	Content         string     `json:"content" db:"content"`
	IsEdited        bool       `json:"is_edited" db:"is_edited"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

var SelectColumns = []string{
	"c.id", "c.author_id", "COALESCE(u.display_name, u.name) AS author_name",
	"c.literature_id", "c.parent_comment_id", "c.content", "c.is_edited",
	"c.created_at", "c.updated_at",
}
