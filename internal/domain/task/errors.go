package task

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidStatus   = errors.New("task status must be todo, in_progress or done")
	ErrInvalidPriority = errors.New("task priority must be low, medium or high")
)
