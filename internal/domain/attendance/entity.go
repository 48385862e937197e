package attendance

import (
	"time"
)

// Status classifies one employee-day attendance outcome.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half-day"
)

// ValidStatuses lists every status value the API accepts in filters.
var ValidStatuses = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusLate),
	string(StatusHalfDay),
}

// Attendance is one employee's record for one calendar day.
// Date is a YYYY-MM-DD string so the one-record-per-employee-per-day
// constraint is plain equality, independent of storage timezone.
type Attendance struct {
	ID           string
	EmployeeID   string
	Date         string
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	Status       Status
	TotalHours   *float64
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined employee fields, populated by list queries.
	EmployeeName  *string
	EmployeeCode  *string
	EmployeeEmail *string
	Department    *string
}

// DateKey formats t as the calendar-day key used in Attendance.Date.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
