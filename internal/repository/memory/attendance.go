package memory

import (
	"context"
	"sort"

	"github.com/arcadia-hr/hr-portal-go/internal/domain/attendance"
)

type attendanceRepository struct {
	s *Store
}

func NewAttendanceRepository(s *Store) attendance.AttendanceRepository {
	return &attendanceRepository{s: s}
}

// Create implements attendance.AttendanceRepository. The uniqueness scan and
// the append run under the same write lock, so two concurrent clock-ins for
// the same workday cannot both insert.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.attendances {
		if existing.EmployeeID == att.EmployeeID && existing.Date == att.Date {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
	}

	att.ID = newID()
	att.CreatedAt = now()
	att.UpdatedAt = att.CreatedAt

	r.s.attendances = append(r.s.attendances, att)
	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, att := range r.s.attendances {
		if att.ID == id {
			return att, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (attendance.Attendance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, att := range r.s.attendances {
		if att.EmployeeID == employeeID && att.Date == date {
			return att, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, existing := range r.s.attendances {
		if existing.ID == att.ID {
			att.CreatedAt = existing.CreatedAt
			att.UpdatedAt = now()
			r.s.attendances[i] = att
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]attendance.Attendance, 0, len(r.s.attendances))
	for _, att := range r.s.attendances {
		if filter.EmployeeID != nil && att.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Date != nil && att.Date != *filter.Date {
			continue
		}
		if filter.StartDate != nil && att.Date < *filter.StartDate {
			continue
		}
		if filter.EndDate != nil && att.Date > *filter.EndDate {
			continue
		}
		if filter.Status != nil && string(att.Status) != *filter.Status {
			continue
		}
		result = append(result, att)
	}

	// Newest workday first.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date > result[j].Date
	})
	return result, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]attendance.Attendance, 0)
	for _, att := range r.s.attendances {
		if att.Date == date {
			result = append(result, att)
		}
	}
	return result, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, existing := range r.s.attendances {
		if existing.ID == id {
			r.s.attendances = append(r.s.attendances[:i], r.s.attendances[i+1:]...)
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}
