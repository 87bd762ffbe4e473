package memo

import (
	"context"
)

type MemoService interface {
	Publish(ctx context.Context, req PublishMemoRequest) (MemoResponse, error)
	List(ctx context.Context, filter MemoFilter) ([]MemoResponse, error)
	Get(ctx context.Context, id string) (MemoResponse, error)
	Delete(ctx context.Context, id string) error
}
