package report

import (
	"context"
	"strings"
	"testing"

	"github.com/attendly/attendly-backend/internal/domain/attendance"
	"github.com/attendly/attendly-backend/internal/domain/report"
	"github.com/attendly/attendly-backend/internal/domain/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository

	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) ListByDateRange(_ context.Context, startDate, endDate string) ([]attendance.Attendance, error) {
	return summary.FilterByDateRange(f.records, startDate, endDate), nil
}

func strPtr(s string) *string { return &s }

func hoursPtr(v float64) *float64 { return &v }

func seedRecords() []attendance.Attendance {
	return []attendance.Attendance{
		{
			EmployeeID: "e1", Date: "2025-01-10", Status: attendance.StatusPresent,
			TotalHours: hoursPtr(8), EmployeeCode: strPtr("EMP001"),
			EmployeeName: strPtr("Ada"), Department: strPtr("Engineering"),
		},
		{
			EmployeeID: "e1", Date: "2025-01-11", Status: attendance.StatusLate,
			TotalHours: hoursPtr(7.5), EmployeeCode: strPtr("EMP001"),
			EmployeeName: strPtr("Ada"), Department: strPtr("Engineering"),
		},
		{
			EmployeeID: "e2", Date: "2025-01-10", Status: attendance.StatusAbsent,
			EmployeeCode: strPtr("EMP002"), EmployeeName: strPtr("Grace"),
		},
		{
			EmployeeID: "e2", Date: "2025-02-01", Status: attendance.StatusPresent,
			TotalHours:   hoursPtr(8), EmployeeCode: strPtr("EMP002"),
			EmployeeName: strPtr("Grace"),
		},
	}
}

func newTestService() report.ReportService {
	return NewReportService(&fakeAttendanceRepo{records: seedRecords()})
}

func TestGetMySummary_ByMonth(t *testing.T) {
	svc := newTestService()

	resp, err := svc.GetMySummary(context.Background(), "e1", report.MySummaryRequest{
		Month: strPtr("2025-01"),
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", resp.PeriodStart)
	assert.Equal(t, "2025-01-31", resp.PeriodEnd)
	assert.Equal(t, 1, resp.Summary.Present)
	assert.Equal(t, 1, resp.Summary.Late)
	assert.Equal(t, 15.5, resp.Summary.TotalHours)
}

func TestGetMySummary_ExcludesOtherEmployees(t *testing.T) {
	svc := newTestService()

	resp, err := svc.GetMySummary(context.Background(), "e2", report.MySummaryRequest{
		Month: strPtr("2025-01"),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Summary.Absent)
	assert.Equal(t, 0, resp.Summary.Present)
}

func TestGetMySummary_RequiresPeriod(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetMySummary(context.Background(), "e1", report.MySummaryRequest{})
	assert.Error(t, err)
}

func TestGetTeamSummary_GroupedByDepartment(t *testing.T) {
	svc := newTestService()

	resp, err := svc.GetTeamSummary(context.Background(), report.TeamSummaryRequest{
		MySummaryRequest: report.MySummaryRequest{
			StartDate: strPtr("2025-01-01"),
			EndDate:   strPtr("2025-01-31"),
		},
		GroupBy: strPtr("department"),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Summary.Present)
	assert.Equal(t, 1, resp.Summary.Late)
	assert.Equal(t, 1, resp.Summary.Absent)

	require.Len(t, resp.Groups, 2)
	assert.Equal(t, 15.5, resp.Groups["Engineering"].TotalHours)

	// Grace has no department; her record lands in the Unknown group.
	assert.Equal(t, 1, resp.Groups[summary.UnknownGroup].Absent)
}

func TestGetTeamSummary_DecemberRollsIntoJanuary(t *testing.T) {
	repo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{EmployeeID: "e1", Date: "2025-12-31", Status: attendance.StatusPresent, TotalHours: hoursPtr(8)},
		{EmployeeID: "e1", Date: "2026-01-01", Status: attendance.StatusPresent, TotalHours: hoursPtr(8)},
	}}
	svc := NewReportService(repo)

	resp, err := svc.GetTeamSummary(context.Background(), report.TeamSummaryRequest{
		MySummaryRequest: report.MySummaryRequest{Month: strPtr("2025-12")},
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-12-01", resp.PeriodStart)
	assert.Equal(t, "2025-12-31", resp.PeriodEnd)
	assert.Equal(t, 1, resp.Summary.Present, "January 1st must stay out of December")
}

func TestExportCSV(t *testing.T) {
	svc := newTestService()

	result, err := svc.ExportCSV(context.Background(), report.ExportRequest{
		MySummaryRequest: report.MySummaryRequest{Month: strPtr("2025-01")},
	})

	require.NoError(t, err)
	assert.Equal(t, "attendance_2025-01-01_2025-01-31.csv", result.Filename)

	lines := strings.Split(strings.TrimSpace(string(result.Content)), "\n")
	require.Len(t, lines, 4, "header plus three January records")
	assert.Equal(t, "date,employee_code,employee_name,department,status,check_in,check_out,total_hours", lines[0])
	assert.Contains(t, lines[1], "EMP001")
}

func TestExportCSV_FilterByEmployeeCode(t *testing.T) {
	svc := newTestService()

	result, err := svc.ExportCSV(context.Background(), report.ExportRequest{
		MySummaryRequest: report.MySummaryRequest{Month: strPtr("2025-01")},
		EmployeeCode:     strPtr("EMP002"),
	})

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(result.Content)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "Grace")
}
