package model

import (
	"time"

	"github.com/google/uuid"
)

// Author is the optional 1:1 writing profile of a user.
type Author struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	UserID      uuid.UUID         `json:"user_id" db:"user_id"`
	PenName     *string           `json:"pen_name" db:"pen_name"`
	Bio         *string           `json:"bio" db:"bio"`
	BioEn       *string           `json:"bio_en" db:"bio_en"`
	Avatar      *string           `json:"avatar" db:"avatar"`
	SocialLinks map[string]string `json:"social_links" db:"social_links"`
	IsVerified  bool              `json:"is_verified" db:"is_verified"` // set by admins only
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
}

var Columns = []string{
	"id", "user_id", "pen_name", "bio", "bio_en", "avatar",
	"social_links", "is_verified", "created_at", "updated_at",
}

// Work is a published literature entry shown on an author page.
type Work struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	TitleEn     *string    `json:"title_en" db:"title_en"`
	Type        string     `json:"type" db:"type"`
	Language    string     `json:"language" db:"language"`
	Likes       int        `json:"likes" db:"likes"`
	PublishedAt *time.Time `json:"published_at" db:"published_at"`
}

type AuthorDetail struct {
	*Author
	Works []*Work `json:"works"`
}
