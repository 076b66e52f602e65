package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
	maxImages        = 10
)

type CreateRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Location    *string           `json:"location"`
	ContactInfo map[string]string `json:"contact_info"`
	Images      []string          `json:"images"`
	ExpiresAt   *time.Time        `json:"expires_at"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Required, validation.Length(1, 5000)),
		validation.Field(&r.Category, validation.Required, validation.Length(1, 50)),
		validation.Field(&r.Location, validation.Length(0, 200)),
		validation.Field(&r.ContactInfo, validation.Required),
		validation.Field(&r.Images, validation.Length(0, maxImages), validation.Each(is.URL)),
		validation.Field(&r.ExpiresAt, validation.By(inFuture)),
	)
}

type UpdateRequest struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	Category    *string           `json:"category"`
	Location    *string           `json:"location"`
	ContactInfo map[string]string `json:"contact_info"`
	Images      []string          `json:"images"`
	Status      *Status           `json:"status"`
	ExpiresAt   *time.Time        `json:"expires_at"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.NilOrNotEmpty, validation.Length(1, 5000)),
		validation.Field(&r.Category, validation.NilOrNotEmpty, validation.Length(1, 50)),
		validation.Field(&r.Location, validation.Length(0, 200)),
		validation.Field(&r.Images, validation.Length(0, maxImages), validation.Each(is.URL)),
		validation.Field(&r.Status, validation.In(Statuses...)),
	)
}

func (r UpdateRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Category == nil && r.Location == nil &&
		r.ContactInfo == nil && r.Images == nil && r.Status == nil && r.ExpiresAt == nil
}

// ListRequest filters the public board. Location matches as a case-insensitive substring.
type ListRequest struct {
	Category string `form:"category"`
	Location string `form:"location"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
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

func inFuture(value interface{}) error {
	t, _ := value.(*time.Time)
	if t != nil && !t.After(time.Now()) {
		return validation.NewError("validation_in_future", "must be in the future")
	}
	return nil
}
