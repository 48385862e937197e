package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/attendly-backend/internal/domain/attendance"
	"github.com/attendly/attendly-backend/internal/domain/user"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	user.UserRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		UserRepository:       userRepo,
	}
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string, now time.Time) (attendance.AttendanceResponse, error) {
	date := attendance.DateKey(now)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	checkIn := now
	record := attendance.Attendance{
		EmployeeID:  employeeID,
		Date:        date,
		CheckInTime: &checkIn,
		Status:      attendance.DeriveInitialStatus(now),
	}

	// Two racing check-ins both pass the read above; the UNIQUE
	// (employee_id, date) constraint decides the winner and Create
	// surfaces the loser as ErrAlreadyCheckedIn.
	created, err := a.AttendanceRepository.Create(ctx, record)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return created.ToResponse(), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string, now time.Time) (attendance.AttendanceResponse, error) {
	date := attendance.DateKey(now)

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	if record == nil || record.CheckInTime == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNoCheckInFound
	}
	if record.CheckOutTime != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	checkOut := now
	totalHours := attendance.RoundHours(now.Sub(*record.CheckInTime).Hours())

	record.CheckOutTime = &checkOut
	record.TotalHours = &totalHours

	// A short day downgrades the status; exactly the minimum keeps it.
	// Lateness is never re-evaluated here, so a late short day ends up
	// half-day.
	if totalHours < attendance.MinFullDayHours {
		record.Status = attendance.StatusHalfDay
	}

	if err := a.AttendanceRepository.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return record.ToResponse(), nil
}

// GetToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context, employeeID string, now time.Time) (attendance.AttendanceResponse, error) {
	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, attendance.DateKey(now))
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	if record == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
	}

	return record.ToResponse(), nil
}

// GetMyHistory implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyHistory(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.AttendanceRepository.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	return attendance.ListAttendanceResponse{
		Attendances: toResponses(records),
		Pagination:  buildPagination(total, filter.Page, filter.Limit),
	}, nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	return attendance.ListAttendanceResponse{
		Attendances: toResponses(records),
		Pagination:  buildPagination(total, filter.Page, filter.Limit),
	}, nil
}

// GetEmployeeAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetEmployeeAttendance(ctx context.Context, employeeCode string, filter attendance.MyAttendanceFilter) (attendance.EmployeeAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.EmployeeAttendanceResponse{}, err
	}

	employee, err := a.UserRepository.GetByEmployeeCode(ctx, employeeCode)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return attendance.EmployeeAttendanceResponse{}, attendance.ErrEmployeeNotFound
		}
		return attendance.EmployeeAttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	records, total, err := a.AttendanceRepository.ListByEmployee(ctx, employee.ID, filter)
	if err != nil {
		return attendance.EmployeeAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	return attendance.EmployeeAttendanceResponse{
		Employee: attendance.EmployeeInfo{
			Name:         employee.Name,
			Email:        employee.Email,
			EmployeeCode: employee.EmployeeCode,
			Department:   employee.Department,
		},
		Attendances: toResponses(records),
		Pagination:  buildPagination(total, filter.Page, filter.Limit),
	}, nil
}

func toResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, record.ToResponse())
	}
	return responses
}

func buildPagination(total int64, page, limit int) attendance.Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return attendance.Pagination{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}
}
