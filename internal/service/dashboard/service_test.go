package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/attendly/attendly-backend/internal/domain/attendance"
	"github.com/attendly/attendly-backend/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository

	byEmployeeAndDate map[string]*attendance.Attendance
	byDate            map[string][]attendance.Attendance
	rangeRecords      []attendance.Attendance
	recentRecords     []attendance.Attendance
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID, date string) (*attendance.Attendance, error) {
	return f.byEmployeeAndDate[employeeID+"|"+date], nil
}

func (f *fakeAttendanceRepo) ListByDate(_ context.Context, date string) ([]attendance.Attendance, error) {
	return f.byDate[date], nil
}

func (f *fakeAttendanceRepo) ListByDateRange(_ context.Context, _, _ string) ([]attendance.Attendance, error) {
	return f.rangeRecords, nil
}

func (f *fakeAttendanceRepo) ListRecentByEmployee(_ context.Context, employeeID string, limit int) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for _, record := range f.recentRecords {
		if record.EmployeeID == employeeID && len(records) < limit {
			records = append(records, record)
		}
	}
	return records, nil
}

type fakeUserRepo struct {
	user.UserRepository

	users []user.User
}

func (f *fakeUserRepo) ListByRole(_ context.Context, role user.Role) ([]user.User, error) {
	var matched []user.User
	for _, u := range f.users {
		if u.Role == role {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, role user.Role) (int64, error) {
	matched, err := f.ListByRole(ctx, role)
	return int64(len(matched)), err
}

var testNow = time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

func TestGetManagerDashboard_TodayStatsCoverEmployeesOnly(t *testing.T) {
	checkIn := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	attendanceRepo := &fakeAttendanceRepo{
		byDate: map[string][]attendance.Attendance{
			"2025-06-10": {
				{EmployeeID: "emp-1", Date: "2025-06-10", CheckInTime: &checkIn, Status: attendance.StatusPresent},
				// The manager's own check-in must not show up in the
				// employee-facing counters.
				{EmployeeID: "mgr-1", Date: "2025-06-10", CheckInTime: &checkIn, Status: attendance.StatusPresent},
			},
		},
	}
	userRepo := &fakeUserRepo{users: []user.User{
		{ID: "emp-1", Role: user.RoleEmployee},
		{ID: "emp-2", Role: user.RoleEmployee},
		{ID: "mgr-1", Role: user.RoleManager},
	}}
	svc := NewDashboardService(attendanceRepo, userRepo, nil)

	resp, err := svc.GetManagerDashboard(context.Background(), testNow)

	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.TotalEmployees)
	assert.Equal(t, 1, resp.TodayStats.Present)
	assert.Equal(t, int64(1), resp.TodayStats.NotCheckedIn, "only emp-2 is missing")
}

func TestGetManagerDashboard_LateArrivals(t *testing.T) {
	lateCheckIn := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	attendanceRepo := &fakeAttendanceRepo{
		byDate: map[string][]attendance.Attendance{
			"2025-06-10": {
				{EmployeeID: "emp-1", Date: "2025-06-10", CheckInTime: &lateCheckIn, Status: attendance.StatusLate},
				{EmployeeID: "mgr-1", Date: "2025-06-10", CheckInTime: &lateCheckIn, Status: attendance.StatusLate},
			},
		},
	}
	userRepo := &fakeUserRepo{users: []user.User{
		{ID: "emp-1", Role: user.RoleEmployee},
		{ID: "mgr-1", Role: user.RoleManager},
	}}
	svc := NewDashboardService(attendanceRepo, userRepo, nil)

	resp, err := svc.GetManagerDashboard(context.Background(), testNow)

	require.NoError(t, err)
	require.Len(t, resp.LateArrivals, 1)
	assert.Equal(t, "emp-1", resp.LateArrivals[0].EmployeeID)
	assert.Equal(t, 1, resp.TodayStats.Late)
}

func TestGetEmployeeDashboard(t *testing.T) {
	checkIn := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	hours := 8.0
	attendanceRepo := &fakeAttendanceRepo{
		byEmployeeAndDate: map[string]*attendance.Attendance{
			"emp-1|2025-06-10": {EmployeeID: "emp-1", Date: "2025-06-10", CheckInTime: &checkIn, Status: attendance.StatusPresent},
		},
		rangeRecords: []attendance.Attendance{
			{EmployeeID: "emp-1", Date: "2025-06-09", Status: attendance.StatusPresent, TotalHours: &hours},
			{EmployeeID: "emp-2", Date: "2025-06-09", Status: attendance.StatusLate, TotalHours: &hours},
		},
		recentRecords: []attendance.Attendance{
			{EmployeeID: "emp-1", Date: "2025-06-09", Status: attendance.StatusPresent, TotalHours: &hours},
		},
	}
	svc := NewDashboardService(attendanceRepo, &fakeUserRepo{}, nil)

	resp, err := svc.GetEmployeeDashboard(context.Background(), "emp-1", testNow)

	require.NoError(t, err)
	require.NotNil(t, resp.Today)
	assert.Equal(t, "present", resp.Today.Status)
	assert.Equal(t, 1, resp.MonthSummary.Present, "other employees' records are excluded")
	require.Len(t, resp.LastSevenDays, 1)
	assert.Equal(t, "2025-06-09", resp.LastSevenDays[0].Date)
}
