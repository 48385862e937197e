package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
// The attendances table carries a UNIQUE (employee_id, date) constraint;
// it is the sole enforcement point for one-record-per-employee-per-day.
type AttendanceRepository interface {
	// Create inserts a new attendance record. A unique violation on
	// (employee_id, date) is returned as ErrAlreadyCheckedIn.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for one employee on one day.
	// Returns nil (not an error) when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*Attendance, error)

	// Update persists checkout fields and status for an existing record.
	Update(ctx context.Context, attendance Attendance) error

	// List retrieves records with filters and pagination, newest first.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// ListByEmployee retrieves one employee's records with filters, newest first.
	ListByEmployee(ctx context.Context, employeeID string, filter MyAttendanceFilter) ([]Attendance, int64, error)

	// ListByDateRange retrieves all records (with employee join) whose date
	// falls in [startDate, endDate]. Used by summaries and exports.
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]Attendance, error)

	// ListByDate retrieves all records for a single day, newest check-in first.
	ListByDate(ctx context.Context, date string) ([]Attendance, error)

	// ListRecentByEmployee retrieves the employee's latest records by date.
	ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]Attendance, error)

	// BulkCreateAbsences inserts absent records produced by the nightly job,
	// skipping any (employee_id, date) pair that already has a record.
	BulkCreateAbsences(ctx context.Context, absences []Attendance) (int, error)
}
