package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out errors
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNoCheckInFound    = errors.New("no check-in found for today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
)
