package model

import "jaalakam-backend/internal/shared/apperr"

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
	StatusModerated Status = "MODERATED"
	StatusArchived  Status = "ARCHIVED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusModerated, StatusArchived:
		return true
	}
	return false
}

// ModerationAction is the closed set of admin actions on literature.
type ModerationAction string

const (
	ActionApprove ModerationAction = "APPROVE"
	ActionReject  ModerationAction = "REJECT"
	ActionArchive ModerationAction = "ARCHIVE"
	ActionDelete  ModerationAction = "DELETE"
)

var (
	ErrInvalidAction     = apperr.BadRequest("Invalid action")
	ErrInvalidTransition = apperr.BadRequest("Transition not allowed from the current status")
)

func ParseModerationAction(s string) (ModerationAction, error) {
	switch a := ModerationAction(s); a {
	case ActionApprove, ActionReject, ActionArchive, ActionDelete:
		return a, nil
	}
	return "", ErrInvalidAction
}

// Stamp says what a transition does to published_at.
type Stamp int

const (
	StampKeep Stamp = iota
	StampNow
	StampIfUnset
)

// Outcome is the effect of a transition on the stored row.
type Outcome struct {
	Remove bool
	Status Status
	Stamp  Stamp
}

// Publish is the author's transition. A repeated publish stamps published_at again.
// MODERATED and ARCHIVED have no way back to PUBLISHED.
func Publish(from Status) (Outcome, error) {
	switch from {
	case StatusDraft, StatusPublished:
		return Outcome{Status: StatusPublished, Stamp: StampNow}, nil
	default:
		return Outcome{}, ErrInvalidTransition
	}
}

// Moderate maps an admin action to its transition. DELETE removes the row from any status.
func Moderate(from Status, action ModerationAction) (Outcome, error) {
	switch action {
	case ActionApprove:
		if from == StatusDraft || from == StatusPublished {
			return Outcome{Status: StatusPublished, Stamp: StampIfUnset}, nil
		}
		return Outcome{}, ErrInvalidTransition
	case ActionReject:
		return Outcome{Status: StatusModerated}, nil
	case ActionArchive:
		return Outcome{Status: StatusArchived}, nil
	case ActionDelete:
		return Outcome{Remove: true}, nil
	default:
		return Outcome{}, ErrInvalidAction
	}
}

// Dismisses reports whether pending reports on the item are dismissed rather than resolved.
func (a ModerationAction) Dismisses() bool {
	return a == ActionApprove
}

// ModerationResult is what an admin action leaves behind. Literature is nil when the item was removed.
type ModerationResult struct {
	Action     ModerationAction `json:"action"`
	Removed    bool             `json:"removed"`
	Literature *Literature      `json:"literature,omitempty"`
}
