package memory

import (
	"context"
	"sort"

	"github.com/arcadia-hr/hr-portal-go/internal/domain/memo"
)

type memoRepository struct {
	s *Store
}

func NewMemoRepository(s *Store) memo.MemoRepository {
	return &memoRepository{s: s}
}

// Create implements memo.MemoRepository.
func (r *memoRepository) Create(ctx context.Context, m memo.Memo) (memo.Memo, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m.ID = newID()
	m.CreatedAt = now()
	m.UpdatedAt = m.CreatedAt
	if m.PublishedAt.IsZero() {
		m.PublishedAt = m.CreatedAt
	}

	r.s.memos = append(r.s.memos, m)
	return m, nil
}

// GetByID implements memo.MemoRepository.
func (r *memoRepository) GetByID(ctx context.Context, id string) (memo.Memo, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, m := range r.s.memos {
		if m.ID == id {
			return m, nil
		}
	}
	return memo.Memo{}, memo.ErrMemoNotFound
}

// List implements memo.MemoRepository. Organization-wide memos are always
// included; department memos only when the filter names their department.
func (r *memoRepository) List(ctx context.Context, filter memo.MemoFilter) ([]memo.Memo, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]memo.Memo, 0, len(r.s.memos))
	for _, m := range r.s.memos {
		if filter.DepartmentID != nil {
			if m.Audience != memo.AudienceAll && m.Audience != *filter.DepartmentID {
				continue
			}
		}
		result = append(result, m)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].PublishedAt.After(result[j].PublishedAt)
	})
	return result, nil
}

// Delete implements memo.MemoRepository.
func (r *memoRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, existing := range r.s.memos {
		if existing.ID == id {
			r.s.memos = append(r.s.memos[:i], r.s.memos[i+1:]...)
			return nil
		}
	}
	return memo.ErrMemoNotFound
}
