package model

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusSold    Status = "SOLD"
	StatusExpired Status = "EXPIRED"
	StatusClosed  Status = "CLOSED"
)

var Statuses = []interface{}{StatusActive, StatusSold, StatusExpired, StatusClosed}

type Classified struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	PostedByID  uuid.UUID         `json:"posted_by_id" db:"posted_by_id"`
	Title       string            `json:"title" db:"title"`
	Description string            `json:"description" db:"description"`
	Category    string            `json:"category" db:"category"`
	Location    *string           `json:"location" db:"location"`
	ContactInfo map[string]string `json:"contact_info" db:"contact_info"`
	Images      []string          `json:"images" db:"images"`
	Status      Status            `json:"status" db:"status"`
	ExpiresAt   *time.Time        `json:"expires_at" db:"expires_at"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
}

var Columns = []string{
	"id", "posted_by_id", "title", "description", "category", "location",
	"contact_info", "images", "status", "expires_at", "created_at", "updated_at",
}
