package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/attendly/attendly-backend/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAttendanceRepo keeps records in memory, keyed the same way the
// database constraint does: one record per (employee_id, date).
type fakeAttendanceRepo struct {
	attendance.AttendanceRepository

	records map[string]attendance.Attendance
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func key(employeeID, date string) string {
	return employeeID + "|" + date
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	k := key(att.EmployeeID, att.Date)
	if _, exists := f.records[k]; exists {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}
	f.nextID++
	att.ID = fmt.Sprintf("att-%d", f.nextID)
	f.records[k] = att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID, date string) (*attendance.Attendance, error) {
	att, ok := f.records[key(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &att, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, att attendance.Attendance) error {
	k := key(att.EmployeeID, att.Date)
	if _, ok := f.records[k]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	f.records[k] = att
	return nil
}

func newTestService(repo *fakeAttendanceRepo) attendance.AttendanceService {
	return NewAttendanceService(repo, nil)
}

func clock(hour, minute int) time.Time {
	return time.Date(2025, 6, 10, hour, minute, 0, 0, time.UTC)
}

func TestCheckIn_OnTime(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo())

	resp, err := svc.CheckIn(context.Background(), "emp-1", clock(9, 30))

	require.NoError(t, err)
	assert.Equal(t, "present", resp.Status)
	assert.Equal(t, "2025-06-10", resp.Date)
	require.NotNil(t, resp.CheckInTime)
	assert.Nil(t, resp.TotalHours)
}

func TestCheckIn_Late(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo())

	resp, err := svc.CheckIn(context.Background(), "emp-1", clock(9, 31))

	require.NoError(t, err)
	assert.Equal(t, "late", resp.Status)
}

func TestCheckIn_Twice(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo())
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, "emp-1", clock(9, 0))
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, "emp-1", clock(10, 0))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckIn_SameDayDifferentEmployees(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo())
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, "emp-1", clock(9, 0))
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, "emp-2", clock(9, 0))
	assert.NoError(t, err)
}

func TestCheckIn_RaceLoserGetsAlreadyCheckedIn(t *testing.T) {
	// Simulates both writers passing the existence read: the repo's
	// uniqueness check still rejects the second insert.
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	now := clock(9, 0)
	checkIn := now
	_, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID:  "emp-1",
		Date:        attendance.DateKey(now),
		CheckInTime: &checkIn,
		Status:      attendance.StatusPresent,
	})
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, "emp-1", now)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckOut_FullDay(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo())
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, "emp-1", clock(9, 0))
	require.NoError(t, err)

	resp, err := svc.CheckOut(ctx, "emp-1", clock(17, 30))

	require.NoError(t, err)
	assert.Equal(t, "present", resp.Status)
	require.NotNil(t, resp.TotalHours)
	assert.Equal(t, 8.5, *resp.TotalHours)
	require.NotNil(t, resp.CheckOutTime)
}

func TestCheckOut_ShortDayBecomesHalfDay(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo())
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, "emp-1", clock(9, 0))
	require.NoError(t, err)

	resp, err := svc.CheckOut(ctx, "emp-1", clock(12, 59))

	require.NoError(t, err)
	assert.Equal(t, "half-day", resp.Status)
	require.NotNil(t, resp.TotalHours)
	assert.InDelta(t, 3.98, *resp.TotalHours, 0.001)
}

func TestCheckOut_ExactlyFourHoursKeepsStatus(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo())
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, "emp-1", clock(9, 0))
	require.NoError(t, err)

	resp, err := svc.CheckOut(ctx, "emp-1", clock(13, 0))

	require.NoError(t, err)
	assert.Equal(t, "present", resp.Status)
	require.NotNil(t, resp.TotalHours)
	assert.Equal(t, 4.0, *resp.TotalHours)
}

func TestCheckOut_LateShortDayEndsHalfDay(t *testing.T) {
	// Lateness is not re-evaluated at checkout; the short-day downgrade
	// simply overwrites it.
	svc := newTestService(newFakeAttendanceRepo())
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, "emp-1", clock(10, 0))
	require.NoError(t, err)

	resp, err := svc.CheckOut(ctx, "emp-1", clock(13, 0))

	require.NoError(t, err)
	assert.Equal(t, "half-day", resp.Status)
}

func TestCheckOut_LateFullDayStaysLate(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo())
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, "emp-1", clock(10, 0))
	require.NoError(t, err)

	resp, err := svc.CheckOut(ctx, "emp-1", clock(18, 0))

	require.NoError(t, err)
	assert.Equal(t, "late", resp.Status)
}

func TestCheckOut_WithoutCheckIn(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo())

	_, err := svc.CheckOut(context.Background(), "emp-1", clock(17, 0))
	assert.ErrorIs(t, err, attendance.ErrNoCheckInFound)
}

func TestCheckOut_Twice(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo())
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, "emp-1", clock(9, 0))
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx, "emp-1", clock(17, 0))
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx, "emp-1", clock(18, 0))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestCheckOut_AbsentBackfillHasNoCheckIn(t *testing.T) {
	// A nightly absent record has no check-in time; checking out against
	// it must fail the same way as having no record at all.
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	now := clock(17, 0)
	_, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID: "emp-1",
		Date:       attendance.DateKey(now),
		Status:     attendance.StatusAbsent,
	})
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx, "emp-1", now)
	assert.ErrorIs(t, err, attendance.ErrNoCheckInFound)
}

func TestGetToday(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo())
	ctx := context.Background()

	_, err := svc.GetToday(ctx, "emp-1", clock(9, 0))
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)

	_, err = svc.CheckIn(ctx, "emp-1", clock(9, 0))
	require.NoError(t, err)

	resp, err := svc.GetToday(ctx, "emp-1", clock(15, 0))
	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", resp.Date)
}

func TestCheckIn_NewDayAfterMidnight(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo())
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, "emp-1", time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC))
	require.NoError(t, err)

	resp, err := svc.CheckIn(ctx, "emp-1", time.Date(2025, 6, 11, 0, 1, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2025-06-11", resp.Date)
	assert.Equal(t, "present", resp.Status)
}
