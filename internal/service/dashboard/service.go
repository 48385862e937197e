package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendly-backend/internal/domain/attendance"
	"github.com/attendly/attendly-backend/internal/domain/dashboard"
	"github.com/attendly/attendly-backend/internal/domain/summary"
	"github.com/attendly/attendly-backend/internal/domain/user"
	"github.com/attendly/attendly-backend/internal/pkg/cache"
)

type DashboardServiceImpl struct {
	attendance.AttendanceRepository
	user.UserRepository
	cache *cache.Cache
}

// NewDashboardService builds the dashboard service. The cache may be
// nil; the manager dashboard is then computed on every request.
func NewDashboardService(
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	c *cache.Cache,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		AttendanceRepository: attendanceRepo,
		UserRepository:       userRepo,
		cache:                c,
	}
}

// GetEmployeeDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetEmployeeDashboard(ctx context.Context, employeeID string, now time.Time) (*dashboard.EmployeeDashboardResponse, error) {
	today := attendance.DateKey(now)
	month := now.Format("2006-01")

	todayRecord, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	monthStart := month + "-01"
	monthRecords, err := s.AttendanceRepository.ListByDateRange(ctx, monthStart, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list month attendance: %w", err)
	}

	recentRecords, err := s.AttendanceRepository.ListRecentByEmployee(ctx, employeeID, 7)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent attendance: %w", err)
	}

	resp := &dashboard.EmployeeDashboardResponse{
		MonthSummary:  summary.Summarize(ownRecords(monthRecords, employeeID)),
		Month:         month,
		LastSevenDays: []attendance.AttendanceResponse{},
	}
	if todayRecord != nil {
		r := todayRecord.ToResponse()
		resp.Today = &r
	}
	weekStart := attendance.DateKey(now.AddDate(0, 0, -6))
	for _, record := range summary.FilterByDateRange(recentRecords, weekStart, today) {
		resp.LastSevenDays = append(resp.LastSevenDays, record.ToResponse())
	}

	return resp, nil
}

// GetManagerDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetManagerDashboard(ctx context.Context, now time.Time) (*dashboard.ManagerDashboardResponse, error) {
	today := attendance.DateKey(now)

	var resp dashboard.ManagerDashboardResponse
	err := s.cache.FetchJSON(ctx, cache.Key("dashboard", "manager", today), &resp, func(ctx context.Context) (interface{}, error) {
		return s.buildManagerDashboard(ctx, now)
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (s *DashboardServiceImpl) buildManagerDashboard(ctx context.Context, now time.Time) (*dashboard.ManagerDashboardResponse, error) {
	today := attendance.DateKey(now)
	month := now.Format("2006-01")

	totalEmployees, err := s.UserRepository.CountByRole(ctx, user.RoleEmployee)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}

	employees, err := s.UserRepository.ListByRole(ctx, user.RoleEmployee)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	todayRecords, err := s.AttendanceRepository.ListByDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list today's attendance: %w", err)
	}

	// Today's stats cover the employee roster only. A manager's own
	// check-in must neither count as present nor shrink the
	// not-checked-in number.
	roster := make(map[string]struct{}, len(employees))
	for _, emp := range employees {
		roster[emp.ID] = struct{}{}
	}
	var employeeRecords []attendance.Attendance
	recorded := make(map[string]struct{}, len(todayRecords))
	for _, record := range todayRecords {
		if _, ok := roster[record.EmployeeID]; !ok {
			continue
		}
		employeeRecords = append(employeeRecords, record)
		recorded[record.EmployeeID] = struct{}{}
	}

	todaySummary := summary.Summarize(employeeRecords)
	var notCheckedIn int64
	for _, emp := range employees {
		if _, ok := recorded[emp.ID]; !ok {
			notCheckedIn++
		}
	}

	lateArrivals := []attendance.AttendanceResponse{}
	for _, record := range employeeRecords {
		if record.Status == attendance.StatusLate {
			lateArrivals = append(lateArrivals, record.ToResponse())
		}
	}

	weekStart := attendance.DateKey(now.AddDate(0, 0, -6))
	weekRecords, err := s.AttendanceRepository.ListByDateRange(ctx, weekStart, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list week attendance: %w", err)
	}

	// One trend point per calendar day, oldest first. Days without any
	// record chart as zeros.
	byDate := summary.SummarizeByGroup(weekRecords, summary.ByDate)
	trend := make([]dashboard.DailyTrendItem, 0, 7)
	for offset := -6; offset <= 0; offset++ {
		date := attendance.DateKey(now.AddDate(0, 0, offset))
		trend = append(trend, dashboard.DailyTrendItem{
			Date:    date,
			Summary: byDate[date],
		})
	}

	monthRecords, err := s.AttendanceRepository.ListByDateRange(ctx, month+"-01", today)
	if err != nil {
		return nil, fmt.Errorf("failed to list month attendance: %w", err)
	}

	return &dashboard.ManagerDashboardResponse{
		TotalEmployees: totalEmployees,
		TodayStats: dashboard.TodayStatsResponse{
			Present:      todaySummary.Present,
			Late:         todaySummary.Late,
			HalfDay:      todaySummary.HalfDay,
			Absent:       todaySummary.Absent,
			NotCheckedIn: notCheckedIn,
			Date:         today,
		},
		LateArrivals:      lateArrivals,
		WeeklyTrend:       trend,
		DepartmentSummary: summary.SummarizeByGroup(monthRecords, summary.ByDepartment),
		Month:             month,
	}, nil
}

func ownRecords(records []attendance.Attendance, employeeID string) []attendance.Attendance {
	var mine []attendance.Attendance
	for _, record := range records {
		if record.EmployeeID == employeeID {
			mine = append(mine, record)
		}
	}
	return mine
}
