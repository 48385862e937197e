// Package summary rolls attendance records up into per-status counts.
// It is the single home for the counting/rollup rules shared by the
// attendance endpoints, dashboards, reports, and the chat assistant.
package summary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/attendly/attendly-backend/internal/domain/attendance"
)

// UnknownGroup is the partition key for records whose group membership
// cannot be resolved (e.g. an employee with no department).
const UnknownGroup = "Unknown"

// StatusSummary holds per-status counts and the summed worked hours
// over a set of records.
type StatusSummary struct {
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Late       int     `json:"late"`
	HalfDay    int     `json:"halfDay"`
	TotalHours float64 `json:"totalHours"`
}

// Summarize counts records into exactly one status bucket each and sums
// total hours. Records with an unrecognized status contribute to no
// counter. Empty input yields a zero summary.
func Summarize(records []attendance.Attendance) StatusSummary {
	var s StatusSummary
	for _, record := range records {
		switch record.Status {
		case attendance.StatusPresent:
			s.Present++
		case attendance.StatusAbsent:
			s.Absent++
		case attendance.StatusLate:
			s.Late++
		case attendance.StatusHalfDay:
			s.HalfDay++
		}
		if record.TotalHours != nil {
			s.TotalHours += *record.TotalHours
		}
	}
	s.TotalHours = attendance.RoundHours(s.TotalHours)
	return s
}

// GroupKeyFn derives the partition key for a record.
type GroupKeyFn func(attendance.Attendance) string

// SummarizeByGroup partitions records by key and summarizes each
// partition independently. Groups with zero records never appear in the
// result; callers needing a complete roster must union it themselves.
func SummarizeByGroup(records []attendance.Attendance, keyFn GroupKeyFn) map[string]StatusSummary {
	grouped := make(map[string][]attendance.Attendance)
	for _, record := range records {
		key := keyFn(record)
		grouped[key] = append(grouped[key], record)
	}

	result := make(map[string]StatusSummary, len(grouped))
	for key, group := range grouped {
		result[key] = Summarize(group)
	}
	return result
}

// ByDepartment keys a record by its joined department, falling back to
// UnknownGroup when unresolved.
func ByDepartment(record attendance.Attendance) string {
	if record.Department == nil || *record.Department == "" {
		return UnknownGroup
	}
	return *record.Department
}

// ByEmployee keys a record by its owning employee.
func ByEmployee(record attendance.Attendance) string {
	return record.EmployeeID
}

// ByDate keys a record by its calendar day.
func ByDate(record attendance.Attendance) string {
	return record.Date
}

// FilterByDateRange selects records whose date falls within
// [startInclusive, endInclusive]. Lexical comparison is correct because
// YYYY-MM-DD order equals chronological order.
func FilterByDateRange(records []attendance.Attendance, startInclusive, endInclusive string) []attendance.Attendance {
	filtered := make([]attendance.Attendance, 0, len(records))
	for _, record := range records {
		if record.Date >= startInclusive && record.Date <= endInclusive {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// MonthRange expands a YYYY-MM token into the half-open day range
// [YYYY-MM-01, nextMonth-01). Callers must compare the upper bound with
// < so the first day of the following month is excluded.
func MonthRange(month string) (start, end string, err error) {
	parts := strings.SplitN(month, "-", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid month %q: want YYYY-MM", month)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", "", fmt.Errorf("invalid month %q: want YYYY-MM", month)
	}
	monthNum, err := strconv.Atoi(parts[1])
	if err != nil || monthNum < 1 || monthNum > 12 {
		return "", "", fmt.Errorf("invalid month %q: want YYYY-MM", month)
	}

	start = fmt.Sprintf("%04d-%02d-01", year, monthNum)
	if monthNum == 12 {
		end = fmt.Sprintf("%04d-01-01", year+1)
	} else {
		end = fmt.Sprintf("%04d-%02d-01", year, monthNum+1)
	}
	return start, end, nil
}

// FilterByMonth selects records belonging to the given YYYY-MM month.
func FilterByMonth(records []attendance.Attendance, month string) ([]attendance.Attendance, error) {
	start, end, err := MonthRange(month)
	if err != nil {
		return nil, err
	}

	filtered := make([]attendance.Attendance, 0, len(records))
	for _, record := range records {
		if record.Date >= start && record.Date < end {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}
