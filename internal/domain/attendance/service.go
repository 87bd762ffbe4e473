package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// ClockIn creates the workday record and fixes its status by the late
	// cutoff rule. A second clock-in on the same workday is rejected.
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut stamps the time-out on the workday record; status is not
	// recomputed.
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)

	// Stats aggregates per-status counts and the attendance rate for a date.
	Stats(ctx context.Context, date string) (StatsResponse, error)

	List(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)
	Get(ctx context.Context, id string) (AttendanceResponse, error)

	// Update fixes wrong records and sets out-of-band statuses (admin).
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	Delete(ctx context.Context, id string) error
}
