package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrInsufficientBalance          = errors.New("insufficient leave balance")
	ErrInvalidDateRange             = errors.New("end date must not be before start date")
	ErrInvalidLeaveType             = errors.New("unknown leave type")
)
