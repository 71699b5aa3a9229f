package notification

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("notification not found")

// Type distinguishes what a notification is about.
type Type string

const (
	TypeNewApplication  Type = "new_application"
	TypeScoringComplete Type = "scoring_complete"
	TypeStatusChange    Type = "status_change"
)

// Notification is an in-app message shown on the recipient's dashboard.
// Data carries identifiers the client needs to link to the subject.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      Type
	Title     string
	Body      string
	Data      map[string]any
	ReadAt    *time.Time
	CreatedAt time.Time
}
