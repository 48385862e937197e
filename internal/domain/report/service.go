package report

import "context"

// ReportService rolls attendance records up into summaries and exports.
type ReportService interface {
	// GetMySummary rolls up the authenticated employee's own records.
	GetMySummary(ctx context.Context, employeeID string, req MySummaryRequest) (MySummaryResponse, error)

	// GetTeamSummary rolls up every employee's records, optionally
	// partitioned by department, employee, or date (manager only).
	GetTeamSummary(ctx context.Context, req TeamSummaryRequest) (TeamSummaryResponse, error)

	// ExportCSV renders the period's records as a CSV file (manager only).
	ExportCSV(ctx context.Context, req ExportRequest) (ExportResult, error)
}
