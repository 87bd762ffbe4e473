package memo

import "errors"

var (
	ErrMemoNotFound    = errors.New("memorandum not found")
	ErrInvalidPriority = errors.New("priority must be normal, important or urgent")
)
