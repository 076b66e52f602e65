package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// UpdateProfileRequest carries the user-editable profile fields. Nil fields are left unchanged.
type UpdateProfileRequest struct {
	Name        *string `json:"name"`
	DisplayName *string `json:"display_name"`
	Bio         *string `json:"bio"`
	Avatar      *string `json:"avatar"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.DisplayName, validation.NilOrNotEmpty, validation.Length(1, 50)),
		validation.Field(&r.Bio, validation.Length(0, 1000)),
		validation.Field(&r.Avatar, validation.Length(0, 2048), is.URL),
	)
}

func (r UpdateProfileRequest) IsEmpty() bool {
	return r.Name == nil && r.DisplayName == nil && r.Bio == nil && r.Avatar == nil
}
