package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

type CreateRequest struct {
	Title         string     `json:"title"`
	TitleEn       *string    `json:"title_en"`
	Description   string     `json:"description"`
	DescriptionEn *string    `json:"description_en"`
	Location      string     `json:"location"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	Image         *string    `json:"image"`
	IsPublic      *bool      `json:"is_public"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.TitleEn, validation.Length(0, 200)),
		validation.Field(&r.Description, validation.Required, validation.Length(1, 10000)),
		validation.Field(&r.Location, validation.Required, validation.Length(1, 300)),
		validation.Field(&r.StartDate, validation.Required),
		validation.Field(&r.EndDate, validation.By(notBefore(r.StartDate))),
		validation.Field(&r.Image, is.URL),
	)
}

type UpdateRequest struct {
	Title         *string    `json:"title"`
	TitleEn       *string    `json:"title_en"`
	Description   *string    `json:"description"`
	DescriptionEn *string    `json:"description_en"`
	Location      *string    `json:"location"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	Image         *string    `json:"image"`
	IsPublic      *bool      `json:"is_public"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.NilOrNotEmpty),
		validation.Field(&r.Location, validation.NilOrNotEmpty, validation.Length(1, 300)),
		validation.Field(&r.Image, is.URL),
	)
}

func (r UpdateRequest) IsEmpty() bool {
	return r.Title == nil && r.TitleEn == nil && r.Description == nil && r.DescriptionEn == nil &&
		r.Location == nil && r.StartDate == nil && r.EndDate == nil && r.Image == nil && r.IsPublic == nil
}

type ListRequest struct {
	Upcoming bool `form:"upcoming"`
	Limit    int  `form:"limit"`
	Offset   int  `form:"offset"`
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

func notBefore(start time.Time) validation.RuleFunc {
	return func(value interface{}) error {
		end, _ := value.(*time.Time)
		if end != nil && end.Before(start) {
			return validation.NewError("validation_end_before_start", "must not be before start_date")
		}
		return nil
	}
}
