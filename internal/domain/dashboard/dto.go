package dashboard

import (
	"github.com/attendly/attendly-backend/internal/domain/attendance"
	"github.com/attendly/attendly-backend/internal/domain/summary"
)

// ========== EMPLOYEE DASHBOARD ==========

// EmployeeDashboardResponse is the personal dashboard: today's record,
// the running month rollup, and the last seven days of history.
type EmployeeDashboardResponse struct {
	Today         *attendance.AttendanceResponse  `json:"today"`
	MonthSummary  summary.StatusSummary           `json:"month_summary"`
	Month         string                          `json:"month"` // Format: "YYYY-MM"
	LastSevenDays []attendance.AttendanceResponse `json:"last_seven_days"`
}

// ========== MANAGER DASHBOARD ==========

// ManagerDashboardResponse is the team-wide dashboard for managers.
type ManagerDashboardResponse struct {
	TotalEmployees    int64                            `json:"total_employees"`
	TodayStats        TodayStatsResponse               `json:"today_stats"`
	LateArrivals      []attendance.AttendanceResponse  `json:"late_arrivals"`
	WeeklyTrend       []DailyTrendItem                 `json:"weekly_trend"`
	DepartmentSummary map[string]summary.StatusSummary `json:"department_summary"`
	Month             string                           `json:"month"` // Format: "YYYY-MM"
}

// TodayStatsResponse counts today's statuses plus employees with no
// record yet.
type TodayStatsResponse struct {
	Present      int    `json:"present"`
	Late         int    `json:"late"`
	HalfDay      int    `json:"half_day"`
	Absent       int    `json:"absent"`
	NotCheckedIn int64  `json:"not_checked_in"`
	Date         string `json:"date"` // Format: "YYYY-MM-DD"
}

// DailyTrendItem is one day in the weekly trend chart.
type DailyTrendItem struct {
	Date    string                `json:"date"` // Format: "YYYY-MM-DD"
	Summary summary.StatusSummary `json:"summary"`
}
