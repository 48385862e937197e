package chat

import (
	"context"
	"testing"
	"time"

	"github.com/attendly/attendly-backend/internal/domain/attendance"
	"github.com/attendly/attendly-backend/internal/domain/chat"
	"github.com/attendly/attendly-backend/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceService struct {
	attendance.AttendanceService

	checkInResp  attendance.AttendanceResponse
	checkInErr   error
	checkOutResp attendance.AttendanceResponse
	checkOutErr  error

	checkedIn  []string
	checkedOut []string
}

func (f *fakeAttendanceService) CheckIn(_ context.Context, employeeID string, _ time.Time) (attendance.AttendanceResponse, error) {
	if f.checkInErr != nil {
		return attendance.AttendanceResponse{}, f.checkInErr
	}
	f.checkedIn = append(f.checkedIn, employeeID)
	return f.checkInResp, nil
}

func (f *fakeAttendanceService) CheckOut(_ context.Context, employeeID string, _ time.Time) (attendance.AttendanceResponse, error) {
	if f.checkOutErr != nil {
		return attendance.AttendanceResponse{}, f.checkOutErr
	}
	f.checkedOut = append(f.checkedOut, employeeID)
	return f.checkOutResp, nil
}

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

	users map[string]user.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func strPtr(s string) *string { return &s }

var testNow = time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

func newTestService(attendanceRepo *fakeAttendanceRepo, users map[string]user.User) chat.ChatService {
	if attendanceRepo.byEmployeeAndDate == nil {
		attendanceRepo.byEmployeeAndDate = map[string]*attendance.Attendance{}
	}
	if attendanceRepo.byDate == nil {
		attendanceRepo.byDate = map[string][]attendance.Attendance{}
	}
	return NewChatService(&fakeAttendanceService{}, attendanceRepo, &fakeUserRepo{users: users})
}

func TestQuery_CheckIn(t *testing.T) {
	attendanceSvc := &fakeAttendanceService{
		checkInResp: attendance.AttendanceResponse{Status: string(attendance.StatusPresent)},
	}
	svc := NewChatService(attendanceSvc, &fakeAttendanceRepo{}, &fakeUserRepo{})

	resp, err := svc.Query(context.Background(), "emp-1", chat.QueryRequest{
		Message: "check in please",
	}, testNow)

	require.NoError(t, err)
	assert.Equal(t, "check_in", resp.Intent)
	assert.Contains(t, resp.Reply, "14:00")
	assert.Contains(t, resp.Reply, "present")
	assert.Equal(t, []string{"emp-1"}, attendanceSvc.checkedIn)
}

func TestQuery_CheckIn_AlreadyCheckedIn(t *testing.T) {
	attendanceSvc := &fakeAttendanceService{checkInErr: attendance.ErrAlreadyCheckedIn}
	svc := NewChatService(attendanceSvc, &fakeAttendanceRepo{}, &fakeUserRepo{})

	resp, err := svc.Query(context.Background(), "emp-1", chat.QueryRequest{
		Message: "mark in",
	}, testNow)

	require.NoError(t, err, "the conflict becomes a reply, not an error")
	assert.Contains(t, resp.Reply, "already checked in")
}

func TestQuery_CheckOut(t *testing.T) {
	hours := 7.25
	attendanceSvc := &fakeAttendanceService{
		checkOutResp: attendance.AttendanceResponse{
			Status:     string(attendance.StatusPresent),
			TotalHours: &hours,
		},
	}
	svc := NewChatService(attendanceSvc, &fakeAttendanceRepo{}, &fakeUserRepo{})

	resp, err := svc.Query(context.Background(), "emp-1", chat.QueryRequest{
		Message: "check out for the day",
	}, testNow)

	require.NoError(t, err)
	assert.Equal(t, "check_out", resp.Intent)
	assert.Contains(t, resp.Reply, "7.25 hours")
	assert.Equal(t, []string{"emp-1"}, attendanceSvc.checkedOut)
}

func TestQuery_CheckOut_NoCheckIn(t *testing.T) {
	attendanceSvc := &fakeAttendanceService{checkOutErr: attendance.ErrNoCheckInFound}
	svc := NewChatService(attendanceSvc, &fakeAttendanceRepo{}, &fakeUserRepo{})

	resp, err := svc.Query(context.Background(), "emp-1", chat.QueryRequest{
		Message: "check out",
	}, testNow)

	require.NoError(t, err)
	assert.Contains(t, resp.Reply, "nothing to check out")
}

func TestQuery_History(t *testing.T) {
	hours := 8.0
	repo := &fakeAttendanceRepo{recentRecords: []attendance.Attendance{
		{EmployeeID: "emp-1", Date: "2025-06-10", Status: attendance.StatusPresent, TotalHours: &hours},
		{EmployeeID: "emp-1", Date: "2025-06-09", Status: attendance.StatusLate},
		{EmployeeID: "emp-2", Date: "2025-06-09", Status: attendance.StatusAbsent},
	}}
	svc := newTestService(repo, nil)

	resp, err := svc.Query(context.Background(), "emp-1", chat.QueryRequest{
		Message: "show my attendance history",
	}, testNow)

	require.NoError(t, err)
	assert.Equal(t, "history", resp.Intent)
	assert.Contains(t, resp.Reply, "2025-06-10: present (8.00 hours)")
	assert.Contains(t, resp.Reply, "2025-06-09: late")
	assert.NotContains(t, resp.Reply, "absent", "other employees' records are excluded")
}

func TestQuery_History_Empty(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, nil)

	resp, err := svc.Query(context.Background(), "emp-1", chat.QueryRequest{
		Message: "last 7 days",
	}, testNow)

	require.NoError(t, err)
	assert.Contains(t, resp.Reply, "no attendance records")
}

func TestQuery_TodayStatus_NotCheckedIn(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, nil)

	resp, err := svc.Query(context.Background(), "emp-1", chat.QueryRequest{
		Message: "have I checked in today?",
	}, testNow)

	require.NoError(t, err)
	assert.Equal(t, "today_status", resp.Intent)
	assert.Contains(t, resp.Reply, "not checked in")
}

func TestQuery_TodayStatus_CheckedIn(t *testing.T) {
	checkIn := time.Date(2025, 6, 10, 9, 15, 0, 0, time.UTC)
	repo := &fakeAttendanceRepo{byEmployeeAndDate: map[string]*attendance.Attendance{
		"emp-1|2025-06-10": {
			EmployeeID:  "emp-1",
			Date:        "2025-06-10",
			CheckInTime: &checkIn,
			Status:      attendance.StatusPresent,
		},
	}}
	svc := newTestService(repo, nil)

	resp, err := svc.Query(context.Background(), "emp-1", chat.QueryRequest{
		Message: "what's my status?",
	}, testNow)

	require.NoError(t, err)
	assert.Contains(t, resp.Reply, "09:15")
}

func TestQuery_HoursWorked(t *testing.T) {
	hours := 16.5
	repo := &fakeAttendanceRepo{rangeRecords: []attendance.Attendance{
		{EmployeeID: "emp-1", Date: "2025-06-02", Status: attendance.StatusPresent, TotalHours: &hours},
		{EmployeeID: "emp-2", Date: "2025-06-02", Status: attendance.StatusPresent, TotalHours: &hours},
	}}
	svc := newTestService(repo, nil)

	resp, err := svc.Query(context.Background(), "emp-1", chat.QueryRequest{
		Message: "how many hours did I work this month?",
	}, testNow)

	require.NoError(t, err)
	assert.Equal(t, "hours_worked", resp.Intent)
	assert.Contains(t, resp.Reply, "16.50", "only the caller's records count")
}

func TestQuery_TeamAbsent_AsManager(t *testing.T) {
	repo := &fakeAttendanceRepo{byDate: map[string][]attendance.Attendance{
		"2025-06-10": {
			{EmployeeID: "emp-1", Date: "2025-06-10", Status: attendance.StatusAbsent, EmployeeName: strPtr("Ada")},
			{EmployeeID: "emp-2", Date: "2025-06-10", Status: attendance.StatusPresent, EmployeeName: strPtr("Grace")},
		},
	}}
	svc := newTestService(repo, map[string]user.User{
		"mgr-1": {ID: "mgr-1", Role: user.RoleManager},
	})

	resp, err := svc.Query(context.Background(), "mgr-1", chat.QueryRequest{
		Message: "who is absent today?",
	}, testNow)

	require.NoError(t, err)
	assert.Equal(t, "team_absent_today", resp.Intent)
	assert.Contains(t, resp.Reply, "Ada")
	assert.NotContains(t, resp.Reply, "Grace")
}

func TestQuery_TeamQuestion_AsEmployee(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, map[string]user.User{
		"emp-1": {ID: "emp-1", Role: user.RoleEmployee},
	})

	resp, err := svc.Query(context.Background(), "emp-1", chat.QueryRequest{
		Message: "who is present today?",
	}, testNow)

	require.NoError(t, err)
	assert.Contains(t, resp.Reply, "managers only")
}

func TestQuery_Unknown(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, nil)

	resp, err := svc.Query(context.Background(), "emp-1", chat.QueryRequest{
		Message: "tell me a joke",
	}, testNow)

	require.NoError(t, err)
	assert.Equal(t, "unknown", resp.Intent)
}

func TestQuery_EmptyMessage(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, nil)

	_, err := svc.Query(context.Background(), "emp-1", chat.QueryRequest{}, testNow)
	assert.Error(t, err)
}
