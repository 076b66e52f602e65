package model

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeSpam          Type = "SPAM"
	TypeInappropriate Type = "INAPPROPRIATE"
	TypeCopyright     Type = "COPYRIGHT"
	TypeHarassment    Type = "HARASSMENT"
	TypeOther         Type = "OTHER"
)

var Types = []interface{}{TypeSpam, TypeInappropriate, TypeCopyright, TypeHarassment, TypeOther}

// TargetType names the kind of entity a report points at. The target id is not checked against it.
type TargetType string

const (
	TargetLiterature TargetType = "LITERATURE"
	TargetComment    TargetType = "COMMENT"
	TargetClassified TargetType = "CLASSIFIED"
	TargetEvent      TargetType = "EVENT"
	TargetUser       TargetType = "USER"
)

var TargetTypes = []interface{}{TargetLiterature, TargetComment, TargetClassified, TargetEvent, TargetUser}

// Status only moves forward: PENDING to RESOLVED or DISMISSED.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusResolved  Status = "RESOLVED"
	StatusDismissed Status = "DISMISSED"
)

var Statuses = []interface{}{StatusPending, StatusResolved, StatusDismissed}

func (s Status) IsClosed() bool {
	return s == StatusResolved || s == StatusDismissed
}

type Report struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Type         Type       `json:"type" db:"type"`
	TargetType   TargetType `json:"target_type" db:"target_type"`
	TargetID     uuid.UUID  `json:"target_id" db:"target_id"`
	Reason       string     `json:"reason" db:"reason"`
	ReportedByID uuid.UUID  `json:"reported_by_id" db:"reported_by_id"`
	Status       Status     `json:"status" db:"status"`
	ResolvedByID *uuid.UUID `json:"resolved_by_id" db:"resolved_by_id"`
	ResolvedAt   *time.Time `json:"resolved_at" db:"resolved_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

var Columns = []string{
	"id", "type", "target_type", "target_id", "reason", "reported_by_id",
	"status", "resolved_by_id", "resolved_at", "created_at", "updated_at",
}
