package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/attendly/attendly-backend/internal/domain/attendance"
	"github.com/attendly/attendly-backend/internal/domain/chat"
	"github.com/attendly/attendly-backend/internal/domain/summary"
	"github.com/attendly/attendly-backend/internal/domain/user"
)

type ChatServiceImpl struct {
	attendance.AttendanceService
	attendance.AttendanceRepository
	user.UserRepository
}

func NewChatService(
	attendanceSvc attendance.AttendanceService,
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
) chat.ChatService {
	return &ChatServiceImpl{
		AttendanceService:    attendanceSvc,
		AttendanceRepository: attendanceRepo,
		UserRepository:       userRepo,
	}
}

// Query implements chat.ChatService.
func (s *ChatServiceImpl) Query(ctx context.Context, employeeID string, req chat.QueryRequest, now time.Time) (chat.QueryResponse, error) {
	if err := req.Validate(); err != nil {
		return chat.QueryResponse{}, err
	}

	intent := chat.DetectIntent(req.Message)

	if intent.IsTeamIntent() {
		account, err := s.UserRepository.GetByID(ctx, employeeID)
		if err != nil {
			return chat.QueryResponse{}, fmt.Errorf("failed to get user: %w", err)
		}
		if !account.IsManager() {
			return chat.QueryResponse{
				Intent: string(intent),
				Reply:  "Team questions are available to managers only.",
			}, nil
		}
		return s.answerTeamQuestion(ctx, intent, now)
	}

	switch intent {
	case chat.IntentCheckIn:
		return s.performCheckIn(ctx, employeeID, now)
	case chat.IntentCheckOut:
		return s.performCheckOut(ctx, employeeID, now)
	case chat.IntentTodayStatus:
		return s.answerTodayStatus(ctx, employeeID, now)
	case chat.IntentHistory:
		return s.answerHistory(ctx, employeeID)
	case chat.IntentHoursWorked, chat.IntentLateCount, chat.IntentAbsentCount, chat.IntentMonthSummary:
		return s.answerMonthQuestion(ctx, employeeID, intent, now)
	default:
		return chat.QueryResponse{
			Intent: string(chat.IntentUnknown),
			Reply:  "I can check you in or out, show your recent attendance, or answer questions about your hours, late days, absences, today's status, or a monthly summary.",
		}, nil
	}
}

// performCheckIn runs the regular check-in flow. The conflict errors
// become conversational replies; anything else propagates.
func (s *ChatServiceImpl) performCheckIn(ctx context.Context, employeeID string, now time.Time) (chat.QueryResponse, error) {
	record, err := s.AttendanceService.CheckIn(ctx, employeeID, now)
	if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
		return chat.QueryResponse{
			Intent: string(chat.IntentCheckIn),
			Reply:  "You have already checked in today.",
		}, nil
	}
	if err != nil {
		return chat.QueryResponse{}, fmt.Errorf("failed to check in: %w", err)
	}

	reply := fmt.Sprintf("Done, checked in at %s with status %q.", now.Format("15:04"), record.Status)
	return chat.QueryResponse{Intent: string(chat.IntentCheckIn), Reply: reply}, nil
}

func (s *ChatServiceImpl) performCheckOut(ctx context.Context, employeeID string, now time.Time) (chat.QueryResponse, error) {
	record, err := s.AttendanceService.CheckOut(ctx, employeeID, now)
	switch {
	case errors.Is(err, attendance.ErrNoCheckInFound):
		return chat.QueryResponse{
			Intent: string(chat.IntentCheckOut),
			Reply:  "You have not checked in today, so there is nothing to check out.",
		}, nil
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		return chat.QueryResponse{
			Intent: string(chat.IntentCheckOut),
			Reply:  "You have already checked out today.",
		}, nil
	case err != nil:
		return chat.QueryResponse{}, fmt.Errorf("failed to check out: %w", err)
	}

	reply := fmt.Sprintf("Done, you are checked out with status %q.", record.Status)
	if record.TotalHours != nil {
		reply = fmt.Sprintf("Done, checked out after %.2f hours with status %q.", *record.TotalHours, record.Status)
	}
	return chat.QueryResponse{Intent: string(chat.IntentCheckOut), Reply: reply}, nil
}

func (s *ChatServiceImpl) answerHistory(ctx context.Context, employeeID string) (chat.QueryResponse, error) {
	records, err := s.AttendanceRepository.ListRecentByEmployee(ctx, employeeID, 7)
	if err != nil {
		return chat.QueryResponse{}, fmt.Errorf("failed to list recent attendance: %w", err)
	}

	if len(records) == 0 {
		return chat.QueryResponse{
			Intent: string(chat.IntentHistory),
			Reply:  "You have no attendance records yet.",
		}, nil
	}

	lines := make([]string, 0, len(records))
	for _, record := range records {
		line := fmt.Sprintf("%s: %s", record.Date, record.Status)
		if record.TotalHours != nil {
			line = fmt.Sprintf("%s (%.2f hours)", line, *record.TotalHours)
		}
		lines = append(lines, line)
	}
	reply := "Your recent attendance:\n" + strings.Join(lines, "\n")

	return chat.QueryResponse{Intent: string(chat.IntentHistory), Reply: reply}, nil
}

func (s *ChatServiceImpl) answerTodayStatus(ctx context.Context, employeeID string, now time.Time) (chat.QueryResponse, error) {
	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, attendance.DateKey(now))
	if err != nil {
		return chat.QueryResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	reply := "You have not checked in today."
	if record != nil {
		switch {
		case record.CheckOutTime != nil && record.TotalHours != nil:
			reply = fmt.Sprintf("You are checked out for today with status %q after %.2f hours.", record.Status, *record.TotalHours)
		case record.CheckInTime != nil:
			reply = fmt.Sprintf("You checked in at %s with status %q.", record.CheckInTime.Format("15:04"), record.Status)
		default:
			reply = fmt.Sprintf("Today's record has status %q.", record.Status)
		}
	}

	return chat.QueryResponse{Intent: string(chat.IntentTodayStatus), Reply: reply}, nil
}

func (s *ChatServiceImpl) answerMonthQuestion(ctx context.Context, employeeID string, intent chat.Intent, now time.Time) (chat.QueryResponse, error) {
	month := now.Format("2006-01")
	records, err := s.AttendanceRepository.ListByDateRange(ctx, month+"-01", attendance.DateKey(now))
	if err != nil {
		return chat.QueryResponse{}, fmt.Errorf("failed to list month attendance: %w", err)
	}

	var mine []attendance.Attendance
	for _, record := range records {
		if record.EmployeeID == employeeID {
			mine = append(mine, record)
		}
	}
	monthSummary := summary.Summarize(mine)

	var reply string
	switch intent {
	case chat.IntentHoursWorked:
		reply = fmt.Sprintf("You worked %.2f hours in %s.", monthSummary.TotalHours, month)
	case chat.IntentLateCount:
		reply = fmt.Sprintf("You were late %d time(s) in %s.", monthSummary.Late, month)
	case chat.IntentAbsentCount:
		reply = fmt.Sprintf("You were absent %d day(s) in %s.", monthSummary.Absent, month)
	default:
		reply = fmt.Sprintf(
			"In %s you were present %d day(s), late %d, absent %d, half-day %d, totalling %.2f hours.",
			month, monthSummary.Present, monthSummary.Late, monthSummary.Absent,
			monthSummary.HalfDay, monthSummary.TotalHours,
		)
	}

	return chat.QueryResponse{Intent: string(intent), Reply: reply}, nil
}

func (s *ChatServiceImpl) answerTeamQuestion(ctx context.Context, intent chat.Intent, now time.Time) (chat.QueryResponse, error) {
	today := attendance.DateKey(now)
	records, err := s.AttendanceRepository.ListByDate(ctx, today)
	if err != nil {
		return chat.QueryResponse{}, fmt.Errorf("failed to list today's attendance: %w", err)
	}

	var reply string
	switch intent {
	case chat.IntentTeamPresent:
		names := namesWithStatus(records, attendance.StatusPresent, attendance.StatusLate, attendance.StatusHalfDay)
		if len(names) == 0 {
			reply = "Nobody has checked in yet today."
		} else {
			reply = fmt.Sprintf("Checked in today (%d): %s.", len(names), strings.Join(names, ", "))
		}
	case chat.IntentTeamAbsent:
		names := namesWithStatus(records, attendance.StatusAbsent)
		if len(names) == 0 {
			reply = "Nobody is marked absent today."
		} else {
			reply = fmt.Sprintf("Marked absent today (%d): %s.", len(names), strings.Join(names, ", "))
		}
	default:
		todaySummary := summary.Summarize(records)
		reply = fmt.Sprintf(
			"Today: %d present, %d late, %d half-day, %d absent.",
			todaySummary.Present, todaySummary.Late, todaySummary.HalfDay, todaySummary.Absent,
		)
	}

	return chat.QueryResponse{Intent: string(intent), Reply: reply}, nil
}

func namesWithStatus(records []attendance.Attendance, statuses ...attendance.Status) []string {
	var names []string
	for _, record := range records {
		for _, status := range statuses {
			if record.Status != status {
				continue
			}
			name := record.EmployeeID
			if record.EmployeeName != nil {
				name = *record.EmployeeName
			}
			names = append(names, name)
			break
		}
	}
	return names
}
