package memory

import (
	"context"
	"sort"

	"github.com/arcadia-hr/hr-portal-go/internal/domain/leave"
)

type leaveRequestRepository struct {
	s *Store
}

func NewLeaveRequestRepository(s *Store) leave.LeaveRequestRepository {
	return &leaveRequestRepository{s: s}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	request.ID = newID()
	request.CreatedAt = now()
	request.UpdatedAt = request.CreatedAt
	if request.SubmittedAt.IsZero() {
		request.SubmittedAt = request.CreatedAt
	}

	r.s.leaveRequests = append(r.s.leaveRequests, request)
	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, request := range r.s.leaveRequests {
		if request.ID == id {
			return request, nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]leave.LeaveRequest, 0, len(r.s.leaveRequests))
	for _, request := range r.s.leaveRequests {
		if filter.Status != nil && string(request.Status) != *filter.Status {
			continue
		}
		if filter.EmployeeID != nil && request.EmployeeID != *filter.EmployeeID {
			continue
		}
		result = append(result, request)
	}

	// Newest submission first.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].SubmittedAt.After(result[j].SubmittedAt)
	})
	return result, nil
}

// Update implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Update(ctx context.Context, request leave.LeaveRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, existing := range r.s.leaveRequests {
		if existing.ID == request.ID {
			request.CreatedAt = existing.CreatedAt
			request.UpdatedAt = now()
			r.s.leaveRequests[i] = request
			return nil
		}
	}
	return leave.ErrLeaveRequestNotFound
}

// UpdateIfPending implements leave.LeaveRequestRepository. The pending check
// and the write share one write lock, so two concurrent decisions cannot both
// land; the loser sees the first decision untouched.
func (r *leaveRequestRepository) UpdateIfPending(ctx context.Context, request leave.LeaveRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, existing := range r.s.leaveRequests {
		if existing.ID == request.ID {
			if existing.Status != leave.RequestStatusPending {
				return leave.ErrLeaveRequestAlreadyProcessed
			}
			request.CreatedAt = existing.CreatedAt
			request.UpdatedAt = now()
			r.s.leaveRequests[i] = request
			return nil
		}
	}
	return leave.ErrLeaveRequestNotFound
}
