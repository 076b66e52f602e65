package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	DefaultListLimit   = 20
	MaxListLimit       = 100
	DefaultSearchLimit = 20
	MaxTags            = 20
)

type CreateRequest struct {
	Title      string   `json:"title"`
	TitleEn    *string  `json:"title_en"`
	Content    string   `json:"content"`
	Excerpt    *string  `json:"excerpt"`
	Type       Type     `json:"type"`
	Language   Language `json:"language"`
	Tags       []string `json:"tags"`
	CoverImage *string  `json:"cover_image"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&r.TitleEn, validation.Length(0, 300)),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Excerpt, validation.Length(0, 1000)),
		validation.Field(&r.Type, validation.Required, validation.In(Types...)),
		validation.Field(&r.Language, validation.In(Languages...)),
		validation.Field(&r.Tags, validation.Length(0, MaxTags), validation.Each(validation.Required, validation.Length(1, 50))),
		validation.Field(&r.CoverImage, is.URL),
	)
}

// UpdateRequest edits content fields only. Status moves through publish and moderation.
type UpdateRequest struct {
	Title      *string  `json:"title"`
	TitleEn    *string  `json:"title_en"`
	Content    *string  `json:"content"`
	Excerpt    *string  `json:"excerpt"`
	Tags       []string `json:"tags"`
	CoverImage *string  `json:"cover_image"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 300)),
		validation.Field(&r.TitleEn, validation.Length(0, 300)),
		validation.Field(&r.Content, validation.NilOrNotEmpty),
		validation.Field(&r.Excerpt, validation.Length(0, 1000)),
		validation.Field(&r.Tags, validation.Length(0, MaxTags), validation.Each(validation.Required, validation.Length(1, 50))),
		validation.Field(&r.CoverImage, is.URL),
	)
}

func (r UpdateRequest) IsEmpty() bool {
	return r.Title == nil && r.TitleEn == nil && r.Content == nil &&
		r.Excerpt == nil && r.Tags == nil && r.CoverImage == nil
}

// ListRequest filters the public listing. Only PUBLISHED items are ever listed.
type ListRequest struct {
	Type     Type     `form:"type"`
	Language Language `form:"language"`
	AuthorID string   `form:"author_id"`
	Tags     []string `form:"tags"`
	Featured *bool    `form:"featured"`
	Limit    int      `form:"limit"`
	Offset   int      `form:"offset"`
}

func (r ListRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type, validation.In(Types...)),
		validation.Field(&r.Language, validation.In(Languages...)),
		validation.Field(&r.AuthorID, is.UUID),
	)
}

// Normalize clamps paging and accepts both repeated and comma separated tags.
func (r *ListRequest) Normalize() {
	var tags []string
	for _, t := range r.Tags {
		for _, part := range strings.Split(t, ",") {
			if p := strings.TrimSpace(part); p != "" {
				tags = append(tags, p)
			}
		}
	}
	r.Tags = tags

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

type SearchRequest struct {
	Query string `form:"q"`
	Limit int    `form:"limit"`
}

func (r *SearchRequest) Normalize() {
	r.Query = strings.TrimSpace(r.Query)
	if r.Limit <= 0 {
		r.Limit = DefaultSearchLimit
	}
	if r.Limit > MaxListLimit {
		r.Limit = MaxListLimit
	}
}

func (r SearchRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Query, validation.Required, validation.Length(1, 200)),
	)
}

type ModerateRequest struct {
	Action string  `json:"action"`
	Notes  *string `json:"notes"`
}
