package leave

import (
	"context"
)

// LeaveService defines the leave request workflow.
type LeaveService interface {
	// Submit validates and creates a pending leave request. Date ordering and
	// balance sufficiency are enforced here, not in the caller.
	Submit(ctx context.Context, req SubmitLeaveRequestRequest) (LeaveRequestResponse, error)

	// Decide moves a pending request to approved or rejected and stamps the
	// approver. Deciding a non-pending request is a conflict.
	Decide(ctx context.Context, req DecideLeaveRequestRequest) (LeaveRequestResponse, error)

	// List returns requests matching the filter, newest submission first.
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequestResponse, error)

	// Get retrieves a single request by ID.
	Get(ctx context.Context, id string) (LeaveRequestResponse, error)
}
