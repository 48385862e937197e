package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations.
// The current time is always passed in by the caller so the 09:30
// boundary and day rollover are deterministic under test.
type AttendanceService interface {
	// CheckIn creates today's record for the employee.
	// Fails with ErrAlreadyCheckedIn if a record already exists.
	CheckIn(ctx context.Context, employeeID string, now time.Time) (AttendanceResponse, error)

	// CheckOut closes today's record, computing total hours and applying
	// the half-day downgrade when under MinFullDayHours.
	CheckOut(ctx context.Context, employeeID string, now time.Time) (AttendanceResponse, error)

	// GetToday retrieves the employee's record for today, if any.
	GetToday(ctx context.Context, employeeID string, now time.Time) (AttendanceResponse, error)

	// GetMyHistory retrieves the authenticated employee's records.
	GetMyHistory(ctx context.Context, employeeID string, filter MyAttendanceFilter) (ListAttendanceResponse, error)

	// ListAttendance retrieves records across employees (manager).
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// GetEmployeeAttendance retrieves one employee's records by their
	// public employee code (manager).
	GetEmployeeAttendance(ctx context.Context, employeeCode string, filter MyAttendanceFilter) (EmployeeAttendanceResponse, error)
}

// EmployeeAttendanceResponse pairs an employee's profile header with
// their attendance history.
type EmployeeAttendanceResponse struct {
	Employee    EmployeeInfo         `json:"employee"`
	Attendances []AttendanceResponse `json:"attendance"`
	Pagination  Pagination           `json:"pagination"`
}

type EmployeeInfo struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	EmployeeCode string  `json:"employee_code"`
	Department   *string `json:"department,omitempty"`
}
