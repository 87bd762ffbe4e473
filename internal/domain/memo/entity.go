package memo

import (
	"time"
)

type Priority string

const (
	PriorityNormal    Priority = "normal"
	PriorityImportant Priority = "important"
	PriorityUrgent    Priority = "urgent"
)

// AudienceAll addresses a memo to the whole organization; any other audience
// value is a department ID.
const AudienceAll = "all"

// Memo is an internal memorandum published to the whole organization or to a
// single department.
type Memo struct {
	ID          string
	Title       string
	Body        string
	AuthorID    string
	Priority    Priority
	Audience    string
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
