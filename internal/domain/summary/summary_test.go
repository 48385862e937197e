package summary

import (
	"math/rand"
	"testing"

	"github.com/attendly/attendly-backend/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hoursPtr(v float64) *float64 {
	return &v
}

func record(date string, status attendance.Status, hours *float64) attendance.Attendance {
	return attendance.Attendance{
		EmployeeID: "emp-1",
		Date:       date,
		Status:     status,
		TotalHours: hours,
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.Present)
	assert.Equal(t, 0, s.Absent)
	assert.Equal(t, 0, s.Late)
	assert.Equal(t, 0, s.HalfDay)
	assert.Equal(t, 0.0, s.TotalHours)
}

func TestSummarize_CountsAndHours(t *testing.T) {
	records := []attendance.Attendance{
		record("2025-01-02", attendance.StatusPresent, hoursPtr(8)),
		record("2025-01-03", attendance.StatusLate, hoursPtr(7)),
		record("2025-01-04", attendance.StatusAbsent, nil),
	}

	s := Summarize(records)

	assert.Equal(t, 1, s.Present)
	assert.Equal(t, 1, s.Absent)
	assert.Equal(t, 1, s.Late)
	assert.Equal(t, 0, s.HalfDay)
	assert.Equal(t, 15.0, s.TotalHours)
}

func TestSummarize_UnrecognizedStatusDropped(t *testing.T) {
	records := []attendance.Attendance{
		record("2025-01-02", attendance.StatusPresent, hoursPtr(8)),
		record("2025-01-03", attendance.Status("on_leave"), hoursPtr(1)),
	}

	s := Summarize(records)

	// The unknown status lands in no counter but its hours still count.
	assert.Equal(t, 1, s.Present)
	assert.Equal(t, 0, s.Absent+s.Late+s.HalfDay)
	assert.Equal(t, 9.0, s.TotalHours)
}

func TestSummarize_RoundsOnceAtTheEnd(t *testing.T) {
	records := []attendance.Attendance{
		record("2025-01-02", attendance.StatusPresent, hoursPtr(3.333)),
		record("2025-01-03", attendance.StatusPresent, hoursPtr(3.333)),
		record("2025-01-04", attendance.StatusPresent, hoursPtr(3.334)),
	}

	s := Summarize(records)

	assert.Equal(t, 10.0, s.TotalHours)
}

func TestSummarize_OrderInvariant(t *testing.T) {
	records := []attendance.Attendance{
		record("2025-01-02", attendance.StatusPresent, hoursPtr(8.25)),
		record("2025-01-03", attendance.StatusLate, hoursPtr(7.5)),
		record("2025-01-04", attendance.StatusHalfDay, hoursPtr(3.75)),
		record("2025-01-05", attendance.StatusAbsent, nil),
		record("2025-01-06", attendance.StatusPresent, hoursPtr(8)),
	}
	want := Summarize(records)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]attendance.Attendance, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		assert.Equal(t, want, Summarize(shuffled))
	}
}

func TestSummarizeByGroup_ByDepartment(t *testing.T) {
	eng := "Engineering"
	records := []attendance.Attendance{
		{EmployeeID: "e1", Date: "2025-01-02", Status: attendance.StatusPresent, TotalHours: hoursPtr(8), Department: &eng},
		{EmployeeID: "e2", Date: "2025-01-02", Status: attendance.StatusLate, TotalHours: hoursPtr(7), Department: &eng},
		{EmployeeID: "e3", Date: "2025-01-02", Status: attendance.StatusAbsent},
	}

	groups := SummarizeByGroup(records, ByDepartment)

	require.Len(t, groups, 2)
	assert.Equal(t, StatusSummary{Present: 1, Late: 1, TotalHours: 15}, groups["Engineering"])
	assert.Equal(t, StatusSummary{Absent: 1}, groups[UnknownGroup])
}

func TestSummarizeByGroup_NoZeroFilledGroups(t *testing.T) {
	groups := SummarizeByGroup(nil, ByDepartment)
	assert.Empty(t, groups)
}

func TestFilterByDateRange_InclusiveBounds(t *testing.T) {
	records := []attendance.Attendance{
		record("2025-01-01", attendance.StatusPresent, nil),
		record("2025-01-15", attendance.StatusPresent, nil),
		record("2025-01-31", attendance.StatusPresent, nil),
		record("2025-02-01", attendance.StatusPresent, nil),
	}

	filtered := FilterByDateRange(records, "2025-01-01", "2025-01-31")

	require.Len(t, filtered, 3)
	for _, r := range filtered {
		assert.LessOrEqual(t, r.Date, "2025-01-31")
	}
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		month     string
		wantStart string
		wantEnd   string
	}{
		{"2025-01", "2025-01-01", "2025-02-01"},
		{"2025-11", "2025-11-01", "2025-12-01"},
		{"2025-12", "2025-12-01", "2026-01-01"},
	}

	for _, tt := range tests {
		start, end, err := MonthRange(tt.month)
		require.NoError(t, err, tt.month)
		assert.Equal(t, tt.wantStart, start)
		assert.Equal(t, tt.wantEnd, end)
	}
}

func TestMonthRange_Invalid(t *testing.T) {
	for _, month := range []string{"", "2025", "2025-13", "2025-00", "jan-2025"} {
		_, _, err := MonthRange(month)
		assert.Error(t, err, month)
	}
}

func TestFilterByMonth_HalfOpenUpperBound(t *testing.T) {
	records := []attendance.Attendance{
		record("2025-01-01", attendance.StatusPresent, nil),
		record("2025-01-31", attendance.StatusPresent, nil),
		record("2025-02-01", attendance.StatusPresent, nil),
	}

	filtered, err := FilterByMonth(records, "2025-01")

	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, "2025-01-01", filtered[0].Date)
	assert.Equal(t, "2025-01-31", filtered[1].Date)
}
