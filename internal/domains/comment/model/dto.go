package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
	MaxContentLength = 5000
)

type CreateRequest struct {
	LiteratureID    *string `json:"literature_id"`
	ParentCommentID *string `json:"parent_comment_id"`
	Content         string  `json:"content"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.LiteratureID, is.UUID),
		validation.Field(&r.ParentCommentID, is.UUID),
		validation.Field(&r.Content, validation.Required, validation.Length(1, MaxContentLength)),
	)
}

type UpdateRequest struct {
	Content string `json:"content"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required, validation.Length(1, MaxContentLength)),
	)
}

type ListRequest struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (r *ListRequest) Normalize() {
	if r.Limit <= 0 {
		r.Limit = DefaultListLimit
	}
	if r.Limit > MaxListLimit {
		r.Limit = MaxListLimit
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
}
