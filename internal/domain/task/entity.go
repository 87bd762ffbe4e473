package task

import (
	"time"
)

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

func ValidStatuses() []string {
	return []string{string(StatusTodo), string(StatusInProgress), string(StatusDone)}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func ValidPriorities() []string {
	return []string{string(PriorityLow), string(PriorityMedium), string(PriorityHigh)}
}

// Task is a work item assigned by one employee to another. Status may move
// freely between the three states in any order.
type Task struct {
	ID          string
	Title       string
	Description *string
	AssigneeID  string
	AssignerID  string
	DueDate     *time.Time
	Priority    Priority
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
