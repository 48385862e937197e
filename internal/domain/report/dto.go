package report

import (
	"github.com/attendly/attendly-backend/internal/domain/summary"
	"github.com/attendly/attendly-backend/internal/pkg/validator"
)

// ========================================
// PERSONAL SUMMARY
// ========================================

type MySummaryRequest struct {
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Month     *string `json:"month,omitempty"`      // YYYY-MM
}

func (r *MySummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	hasRange := r.StartDate != nil && *r.StartDate != "" && r.EndDate != nil && *r.EndDate != ""
	hasMonth := r.Month != nil && *r.Month != ""

	if !hasRange && !hasMonth {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "either month or start_date and end_date are required",
		})
	}
	if hasRange && hasMonth {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month and date range are mutually exclusive",
		})
	}

	if r.StartDate != nil && *r.StartDate != "" {
		if _, valid := validator.IsValidDate(*r.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != nil && *r.EndDate != "" {
		if _, valid := validator.IsValidDate(*r.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if hasRange && *r.StartDate > *r.EndDate {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if hasMonth && !validator.IsValidMonth(*r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MySummaryResponse struct {
	PeriodStart string                `json:"period_start"`
	PeriodEnd   string                `json:"period_end"`
	Summary     summary.StatusSummary `json:"summary"`
}

// ========================================
// TEAM SUMMARY
// ========================================

type TeamSummaryRequest struct {
	MySummaryRequest

	// GroupBy partitions the rollup: department, employee, or date.
	GroupBy *string `json:"group_by,omitempty"`
}

// ValidGroupBys lists the accepted group_by values.
var ValidGroupBys = []string{"department", "employee", "date"}

func (r *TeamSummaryRequest) Validate() error {
	errs, _ := r.MySummaryRequest.Validate().(validator.ValidationErrors)

	if r.GroupBy != nil && *r.GroupBy != "" {
		if !validator.IsInSlice(*r.GroupBy, ValidGroupBys) {
			errs = append(errs, validator.ValidationError{
				Field:   "group_by",
				Message: "group_by must be one of: department, employee, date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TeamSummaryResponse struct {
	PeriodStart string                `json:"period_start"`
	PeriodEnd   string                `json:"period_end"`
	Summary     summary.StatusSummary `json:"summary"`

	// Groups is present only when group_by was requested. Only groups
	// with at least one record appear.
	Groups  map[string]summary.StatusSummary `json:"groups,omitempty"`
	GroupBy *string                          `json:"group_by,omitempty"`
}

// ========================================
// CSV EXPORT
// ========================================

type ExportRequest struct {
	MySummaryRequest

	// EmployeeCode narrows the export to one employee.
	EmployeeCode *string `json:"employee_code,omitempty"`
}

func (r *ExportRequest) Validate() error {
	errs, _ := r.MySummaryRequest.Validate().(validator.ValidationErrors)

	if r.EmployeeCode != nil && *r.EmployeeCode != "" {
		if !validator.IsValidEmployeeCode(*r.EmployeeCode) {
			errs = append(errs, validator.ValidationError{
				Field:   "employee_code",
				Message: "employee_code must look like EMP001",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ExportResult carries the rendered CSV plus the filename the handler
// should suggest in Content-Disposition.
type ExportResult struct {
	Filename string
	Content  []byte
}
