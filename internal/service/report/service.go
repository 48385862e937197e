package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/attendly/attendly-backend/internal/domain/attendance"
	"github.com/attendly/attendly-backend/internal/domain/report"
	"github.com/attendly/attendly-backend/internal/domain/summary"
)

type ReportServiceImpl struct {
	attendance.AttendanceRepository
}

func NewReportService(attendanceRepo attendance.AttendanceRepository) report.ReportService {
	return &ReportServiceImpl{AttendanceRepository: attendanceRepo}
}

// resolvePeriod turns a month or explicit range request into an
// inclusive [start, end] day window.
func resolvePeriod(req report.MySummaryRequest) (start, end string, err error) {
	if req.Month != nil && *req.Month != "" {
		monthStart, monthEnd, err := summary.MonthRange(*req.Month)
		if err != nil {
			return "", "", err
		}
		// MonthRange's upper bound is exclusive; step back one day for
		// an inclusive window.
		endDate, err := time.Parse("2006-01-02", monthEnd)
		if err != nil {
			return "", "", err
		}
		return monthStart, attendance.DateKey(endDate.AddDate(0, 0, -1)), nil
	}
	return *req.StartDate, *req.EndDate, nil
}

// GetMySummary implements report.ReportService.
func (s *ReportServiceImpl) GetMySummary(ctx context.Context, employeeID string, req report.MySummaryRequest) (report.MySummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return report.MySummaryResponse{}, err
	}

	start, end, err := resolvePeriod(req)
	if err != nil {
		return report.MySummaryResponse{}, err
	}

	records, err := s.AttendanceRepository.ListByDateRange(ctx, start, end)
	if err != nil {
		return report.MySummaryResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	var mine []attendance.Attendance
	for _, record := range records {
		if record.EmployeeID == employeeID {
			mine = append(mine, record)
		}
	}

	return report.MySummaryResponse{
		PeriodStart: start,
		PeriodEnd:   end,
		Summary:     summary.Summarize(mine),
	}, nil
}

// GetTeamSummary implements report.ReportService.
func (s *ReportServiceImpl) GetTeamSummary(ctx context.Context, req report.TeamSummaryRequest) (report.TeamSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return report.TeamSummaryResponse{}, err
	}

	start, end, err := resolvePeriod(req.MySummaryRequest)
	if err != nil {
		return report.TeamSummaryResponse{}, err
	}

	records, err := s.AttendanceRepository.ListByDateRange(ctx, start, end)
	if err != nil {
		return report.TeamSummaryResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	resp := report.TeamSummaryResponse{
		PeriodStart: start,
		PeriodEnd:   end,
		Summary:     summary.Summarize(records),
	}

	if req.GroupBy != nil && *req.GroupBy != "" {
		var keyFn summary.GroupKeyFn
		switch *req.GroupBy {
		case "department":
			keyFn = summary.ByDepartment
		case "employee":
			keyFn = summary.ByEmployee
		case "date":
			keyFn = summary.ByDate
		}
		resp.Groups = summary.SummarizeByGroup(records, keyFn)
		resp.GroupBy = req.GroupBy
	}

	return resp, nil
}

// ExportCSV implements report.ReportService.
func (s *ReportServiceImpl) ExportCSV(ctx context.Context, req report.ExportRequest) (report.ExportResult, error) {
	if err := req.Validate(); err != nil {
		return report.ExportResult{}, err
	}

	start, end, err := resolvePeriod(req.MySummaryRequest)
	if err != nil {
		return report.ExportResult{}, err
	}

	records, err := s.AttendanceRepository.ListByDateRange(ctx, start, end)
	if err != nil {
		return report.ExportResult{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	if req.EmployeeCode != nil && *req.EmployeeCode != "" {
		var filtered []attendance.Attendance
		for _, record := range records {
			if record.EmployeeCode != nil && *record.EmployeeCode == *req.EmployeeCode {
				filtered = append(filtered, record)
			}
		}
		records = filtered
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"date", "employee_code", "employee_name", "department", "status", "check_in", "check_out", "total_hours"}
	if err := w.Write(header); err != nil {
		return report.ExportResult{}, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, record := range records {
		if err := w.Write(csvRow(record)); err != nil {
			return report.ExportResult{}, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return report.ExportResult{}, fmt.Errorf("failed to flush csv: %w", err)
	}

	return report.ExportResult{
		Filename: fmt.Sprintf("attendance_%s_%s.csv", start, end),
		Content:  buf.Bytes(),
	}, nil
}

func csvRow(record attendance.Attendance) []string {
	row := []string{record.Date, "", "", "", string(record.Status), "", "", ""}
	if record.EmployeeCode != nil {
		row[1] = *record.EmployeeCode
	}
	if record.EmployeeName != nil {
		row[2] = *record.EmployeeName
	}
	if record.Department != nil {
		row[3] = *record.Department
	}
	if record.CheckInTime != nil {
		row[5] = record.CheckInTime.Format(time.RFC3339)
	}
	if record.CheckOutTime != nil {
		row[6] = record.CheckOutTime.Format(time.RFC3339)
	}
	if record.TotalHours != nil {
		row[7] = strconv.FormatFloat(*record.TotalHours, 'f', 2, 64)
	}
	return row
}
