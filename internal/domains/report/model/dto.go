package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type CreateRequest struct {
	Type       Type       `json:"type"`
	TargetType TargetType `json:"target_type"`
	TargetID   string     `json:"target_id"`
	Reason     string     `json:"reason"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type, validation.Required, validation.In(Types...)),
		validation.Field(&r.TargetType, validation.Required, validation.In(TargetTypes...)),
		validation.Field(&r.TargetID, validation.Required, is.UUID),
		validation.Field(&r.Reason, validation.Required, validation.Length(1, 2000)),
	)
}

type ListRequest struct {
	Status Status `form:"status"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r ListRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.In(Statuses...)),
	)
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
