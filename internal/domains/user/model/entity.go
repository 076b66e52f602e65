package model

import (
	"time"

	"github.com/google/uuid"
)

// Role is the stored role of a user. Roles are only ever promoted.
type Role string

const (
	RoleMember Role = "MEMBER"
	RoleAuthor Role = "AUTHOR"
	RoleAdmin  Role = "ADMIN"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleAuthor, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ClerkID     string    `json:"-" db:"clerk_id"` // external identity key, immutable
	Email       *string   `json:"email" db:"email"`
	Name        *string   `json:"name" db:"name"`
	DisplayName *string   `json:"display_name" db:"display_name"`
	Bio         *string   `json:"bio" db:"bio"`
	Avatar      *string   `json:"avatar" db:"avatar"`
	Role        Role      `json:"role" db:"role"`
	IsVerified  bool      `json:"is_verified" db:"is_verified"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Columns lists the users table columns in scan order.
var Columns = []string{
	"id", "clerk_id", "email", "name", "display_name", "bio",
	"avatar", "role", "is_verified", "created_at", "updated_at",
}
