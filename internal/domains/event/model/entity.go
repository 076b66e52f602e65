package model

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	OrganizerID   uuid.UUID  `json:"organizer_id" db:"organizer_id"`
	Title         string     `json:"title" db:"title"`
	TitleEn       *string    `json:"title_en" db:"title_en"`
	Description   string     `json:"description" db:"description"`
	DescriptionEn *string    `json:"description_en" db:"description_en"`
	Location      string     `json:"location" db:"location"`
	StartDate     time.Time  `json:"start_date" db:"start_date"`
	EndDate       *time.Time `json:"end_date" db:"end_date"`
	Image         *string    `json:"image" db:"image"`
	IsPublic      bool       `json:"is_public" db:"is_public"`
	AttendeeCount int        `json:"attendee_count" db:"attendee_count"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// SelectColumns reads an event ("e") with its attendee count.
var SelectColumns = []string{
	"e.id", "e.organizer_id", "e.title", "e.title_en", "e.description", "e.description_en",
	"e.location", "e.start_date", "e.end_date", "e.image", "e.is_public",
	"(SELECT COUNT(*) FROM event_attendees ea WHERE ea.event_id = e.id) AS attendee_count",
	"e.created_at", "e.updated_at",
}

type Attendee struct {
	UserID   uuid.UUID `json:"user_id" db:"user_id"`
	Name     *string   `json:"name" db:"name"`
	Avatar   *string   `json:"avatar" db:"avatar"`
	JoinedAt time.Time `json:"joined_at" db:"joined_at"`
}

type EventDetail struct {
	*Event
	Attendees []*Attendee `json:"attendees"`
}
