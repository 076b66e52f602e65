package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
	maxSocialLinks   = 10
)

type ProfileRequest struct {
	PenName     *string           `json:"pen_name"`
	Bio         *string           `json:"bio"`
	BioEn       *string           `json:"bio_en"`
	Avatar      *string           `json:"avatar"`
	SocialLinks map[string]string `json:"social_links"`
}

func (r ProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PenName, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.Bio, validation.Length(0, 5000)),
		validation.Field(&r.BioEn, validation.Length(0, 5000)),
		validation.Field(&r.Avatar, validation.Length(0, 2048), is.URL),
		validation.Field(&r.SocialLinks,
			validation.Length(0, maxSocialLinks),
			validation.Each(is.URL),
		),
	)
}

type ListRequest struct {
	Verified *bool `form:"verified"`
	Limit    int   `form:"limit"`
	Offset   int   `form:"offset"`
}

// Normalize clamps paging to the allowed range.
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
