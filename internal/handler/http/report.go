package http

import (
	"fmt"
	"net/http"

	"github.com/attendly/attendly-backend/internal/domain/auth"
	"github.com/attendly/attendly-backend/internal/domain/report"
	"github.com/attendly/attendly-backend/internal/handler/http/middleware"
	"github.com/attendly/attendly-backend/internal/handler/http/response"
)

type ReportHandler interface {
	GetMySummary(w http.ResponseWriter, r *http.Request)
	GetTeamSummary(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func summaryRequestFromQuery(r *http.Request) report.MySummaryRequest {
	return report.MySummaryRequest{
		StartDate: queryStringPtr(r, "start_date"),
		EndDate:   queryStringPtr(r, "end_date"),
		Month:     queryStringPtr(r, "month"),
	}
}

// GetMySummary implements ReportHandler.
func (h *reportHandlerImpl) GetMySummary(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.UserID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.reportService.GetMySummary(r.Context(), employeeID, summaryRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTeamSummary implements ReportHandler.
func (h *reportHandlerImpl) GetTeamSummary(w http.ResponseWriter, r *http.Request) {
	req := report.TeamSummaryRequest{
		MySummaryRequest: summaryRequestFromQuery(r),
		GroupBy:          queryStringPtr(r, "group_by"),
	}

	result, err := h.reportService.GetTeamSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportCSV implements ReportHandler.
func (h *reportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	req := report.ExportRequest{
		MySummaryRequest: summaryRequestFromQuery(r),
		EmployeeCode:     queryStringPtr(r, "employee_code"),
	}

	result, err := h.reportService.ExportCSV(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Content)
}
