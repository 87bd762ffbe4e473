package leave

import (
	"context"
)

// LeaveRequestRepository - data access for the leave request collection.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// List returns requests matching the filter, sorted by submission time
	// descending (newest first).
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)

	Update(ctx context.Context, request LeaveRequest) error

	// UpdateIfPending writes the request only while the stored copy is still
	// pending, checking and writing under the same store lock. A request
	// already decided returns ErrLeaveRequestAlreadyProcessed with the first
	// decision intact.
	UpdateIfPending(ctx context.Context, request LeaveRequest) error
}
