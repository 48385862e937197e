package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/attendly/attendly-backend/internal/domain/attendance"
	"github.com/attendly/attendly-backend/internal/domain/user"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees backfills an absent record for every employee who
// has no record for yesterday. The insert skips conflicting rows, so an
// employee who checked in late in the day is never overwritten.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	now := time.Now().UTC()

	// Only run at midnight (00:00-00:59 UTC)
	if now.Hour() != 0 {
		return nil
	}

	return j.markAbsentFor(ctx, now)
}

func (j *AttendanceJobs) markAbsentFor(ctx context.Context, now time.Time) error {
	slog.Info("Cron: Starting mark absent employees job")

	yesterday := attendance.DateKey(now.AddDate(0, 0, -1))

	employees, err := j.userRepo.ListByRole(ctx, user.RoleEmployee)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	existing, err := j.attendanceRepo.ListByDate(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to list attendance for %s: %w", yesterday, err)
	}

	recorded := make(map[string]struct{}, len(existing))
	for _, record := range existing {
		recorded[record.EmployeeID] = struct{}{}
	}

	var absences []attendance.Attendance
	for _, emp := range employees {
		if _, ok := recorded[emp.ID]; ok {
			continue
		}
		absences = append(absences, attendance.Attendance{
			EmployeeID: emp.ID,
			Date:       yesterday,
			Status:     attendance.StatusAbsent,
		})
	}

	if len(absences) == 0 {
		slog.Info("Cron: No employees to mark absent", "date", yesterday)
		return nil
	}

	inserted, err := j.attendanceRepo.BulkCreateAbsences(ctx, absences)
	if err != nil {
		return fmt.Errorf("failed to bulk create absences: %w", err)
	}

	slog.Info("Cron: Marked absent employees", "date", yesterday, "count", inserted)
	return nil
}
