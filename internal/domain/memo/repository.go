package memo

import (
	"context"
)

// MemoRepository - data access for the memorandum collection.
type MemoRepository interface {
	Create(ctx context.Context, m Memo) (Memo, error)
	GetByID(ctx context.Context, id string) (Memo, error)

	// List returns memos matching the filter, newest publication first.
	List(ctx context.Context, filter MemoFilter) ([]Memo, error)

	Delete(ctx context.Context, id string) error
}
