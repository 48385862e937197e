package report

import "errors"

var (
	ErrInvalidDateRange = errors.New("end date must be after start date")
	ErrNoDataFound      = errors.New("no data found for the specified criteria")
)
