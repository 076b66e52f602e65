package model

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypePoem         Type = "POEM"
	TypeStory        Type = "STORY"
	TypeEssay        Type = "ESSAY"
	TypeArticle      Type = "ARTICLE"
	TypeNovelChapter Type = "NOVEL_CHAPTER"
	TypeOther        Type = "OTHER"
)

var Types = []interface{}{TypePoem, TypeStory, TypeEssay, TypeArticle, TypeNovelChapter, TypeOther}

type Language string

const (
	LanguageMalayalam Language = "MALAYALAM"
	LanguageEnglish   Language = "ENGLISH"
	LanguageBilingual Language = "BILINGUAL"
)

var Languages = []interface{}{LanguageMalayalam, LanguageEnglish, LanguageBilingual}

type Literature struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	AuthorID     uuid.UUID  `json:"author_id" db:"author_id"`
	AuthorUserID uuid.UUID  `json:"author_user_id" db:"author_user_id"` // owning user, for ownership checks
	Title        string     `json:"title" db:"title"`
	TitleEn      *string    `json:"title_en" db:"title_en"`
	Content      string     `json:"content" db:"content"`
	Excerpt      *string    `json:"excerpt" db:"excerpt"`
	Type         Type       `json:"type" db:"type"`
	Language     Language   `json:"language" db:"language"`
	Tags         []string   `json:"tags" db:"tags"`
	CoverImage   *string    `json:"cover_image" db:"cover_image"`
	Status       Status     `json:"status" db:"status"`
	Likes        int        `json:"likes" db:"likes"`
	IsFeatured   bool       `json:"is_featured" db:"is_featured"`
	PublishedAt  *time.Time `json:"published_at" db:"published_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// SelectColumns reads a literature row joined with its author ("l" and "a").
var SelectColumns = []string{
	"l.id", "l.author_id", "a.user_id AS author_user_id", "l.title", "l.title_en",
	"l.content", "l.excerpt", "l.type", "l.language", "l.tags", "l.cover_image",
	"l.status", "l.likes", "l.is_featured", "l.published_at", "l.created_at", "l.updated_at",
}
