package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/arcadia-hr/hr-portal-go/internal/domain/attendance"
	"github.com/arcadia-hr/hr-portal-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository

	lateCutoffHour   int
	lateCutoffMinute int
}

// NewAttendanceService builds the attendance workflow. lateCutoff is the last
// on-time clock-in as HH:MM; it must already be validated by config.
func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	lateCutoff string,
) attendance.AttendanceService {
	cutoff, err := time.Parse("15:04", lateCutoff)
	if err != nil {
		cutoff = time.Date(0, 1, 1, 8, 30, 0, 0, time.UTC)
	}

	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		lateCutoffHour:       cutoff.Hour(),
		lateCutoffMinute:     cutoff.Minute(),
	}
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date := req.At.Format("2006-01-02")

	// Fast-path duplicate check; the repository re-checks under its write
	// lock, so a concurrent clock-in racing past this point still loses.
	if _, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date); err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	} else if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up workday record: %w", err)
	}

	// The cutoff itself is still on time; one second past it is late. Status
	// is fixed here and never recomputed at clock-out.
	cutoff := time.Date(
		req.At.Year(), req.At.Month(), req.At.Day(),
		a.lateCutoffHour, a.lateCutoffMinute, 0, 0,
		req.At.Location(),
	)

	status := attendance.StatusPresent
	if req.At.After(cutoff) {
		status = attendance.StatusLate
	}

	timeIn := req.At
	created, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		TimeIn:     &timeIn,
		Status:     status,
		Location:   req.Location,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return created.ToResponse(), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date := req.Date
	if date == "" {
		date = req.At.Format("2006-01-02")
	}

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if record.TimeOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	timeOut := req.At
	record.TimeOut = &timeOut

	if err := a.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	updated, err := a.AttendanceRepository.GetByID(ctx, record.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to reload attendance record: %w", err)
	}

	return updated.ToResponse(), nil
}

// Stats implements attendance.AttendanceService. Active employees with no
// record for the day count as absent alongside records explicitly marked so.
func (a *AttendanceServiceImpl) Stats(ctx context.Context, date string) (attendance.StatsResponse, error) {
	records, err := a.AttendanceRepository.ListByDate(ctx, date)
	if err != nil {
		return attendance.StatsResponse{}, fmt.Errorf("failed to list attendance for %s: %w", date, err)
	}

	activeStatus := string(employee.StatusActive)
	actives, err := a.EmployeeRepository.List(ctx, employee.EmployeeFilter{Status: &activeStatus})
	if err != nil {
		return attendance.StatsResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	stats := attendance.StatsResponse{
		Date:           date,
		TotalEmployees: len(actives),
	}

	recorded := make(map[string]bool, len(records))
	for _, record := range records {
		recorded[record.EmployeeID] = true

		switch record.Status {
		case attendance.StatusPresent:
			stats.Present++
		case attendance.StatusLate:
			stats.Late++
		case attendance.StatusOnLeave:
			stats.OnLeave++
		case attendance.StatusAbsent:
			stats.Absent++
		}
	}

	for _, emp := range actives {
		if !recorded[emp.ID] {
			stats.Absent++
		}
	}

	if stats.TotalEmployees > 0 {
		rate := float64(stats.Present) / float64(stats.TotalEmployees) * 100
		stats.AttendanceRate = math.Round(rate*100) / 100
	}

	return stats, nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, record.ToResponse())
	}
	return responses, nil
}

// Get implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	record, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return record.ToResponse(), nil
}

// Update implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.Status != nil {
		record.Status = attendance.Status(*req.Status)
	}
	if req.TimeIn != nil {
		timeIn, err := clockOnDate(record.Date, *req.TimeIn)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		record.TimeIn = &timeIn
	}
	if req.TimeOut != nil {
		timeOut, err := clockOnDate(record.Date, *req.TimeOut)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		record.TimeOut = &timeOut
	}
	if req.Location != nil {
		record.Location = req.Location
	}
	if req.OvertimeHours != nil {
		record.OvertimeHours = *req.OvertimeHours
	}
	if req.Remarks != nil {
		record.Remarks = req.Remarks
	}

	if err := a.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	updated, err := a.AttendanceRepository.GetByID(ctx, record.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to reload attendance record: %w", err)
	}

	return updated.ToResponse(), nil
}

// Delete implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return a.AttendanceRepository.Delete(ctx, id)
}

// clockOnDate combines a workday date with an HH:MM:SS wall clock.
func clockOnDate(date string, clock string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04:05", date+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse clock time %q: %w", clock, err)
	}
	return t, nil
}
