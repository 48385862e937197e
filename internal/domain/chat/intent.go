package chat

import "strings"

// Intent classifies what an assistant message is asking for.
type Intent string

const (
	// Action intents that perform an attendance operation on behalf of
	// the caller instead of answering a question.
	IntentCheckIn  Intent = "check_in"
	IntentCheckOut Intent = "check_out"

	IntentHoursWorked  Intent = "hours_worked"
	IntentLateCount    Intent = "late_count"
	IntentAbsentCount  Intent = "absent_count"
	IntentTodayStatus  Intent = "today_status"
	IntentHistory      Intent = "history"
	IntentMonthSummary Intent = "month_summary"

	// Manager intents about the whole team.
	IntentTeamPresent Intent = "team_present_today"
	IntentTeamAbsent  Intent = "team_absent_today"
	IntentTeamSummary Intent = "team_summary"

	IntentUnknown Intent = "unknown"
)

// IsTeamIntent reports whether the intent asks about the whole team
// rather than the caller's own records.
func (i Intent) IsTeamIntent() bool {
	return i == IntentTeamPresent || i == IntentTeamAbsent || i == IntentTeamSummary
}

// keywordRules maps intents to trigger keywords, checked in order so the
// more specific intents win over the generic summary intent. Team
// questions are phrased about other people ("who is ..."), so they sit
// above the personal rules. Action phrases are present tense ("check
// in"); past-tense questions ("checked in") fall through to the status
// rule.
var keywordRules = []struct {
	intent   Intent
	keywords []string
}{
	{IntentTeamPresent, []string{"who is present", "who's present", "who is in", "who came in"}},
	{IntentTeamAbsent, []string{"who is absent", "who's absent", "who is out", "who is missing"}},
	{IntentTeamSummary, []string{"team summary", "team overview", "everyone"}},
	{IntentCheckOut, []string{"check out", "checkout", "mark out", "clock out"}},
	{IntentCheckIn, []string{"check in", "checkin", "mark in", "clock in"}},
	{IntentHoursWorked, []string{"hours", "worked", "working time"}},
	{IntentLateCount, []string{"late"}},
	{IntentAbsentCount, []string{"absent", "absence", "missed"}},
	{IntentTodayStatus, []string{"today", "status", "checked in"}},
	{IntentHistory, []string{"history", "last 7", "attendance"}},
	{IntentMonthSummary, []string{"summary", "month", "overview"}},
}

// DetectIntent matches a message against the keyword rules,
// case-insensitively. The first rule with any keyword present wins;
// a message matching nothing is IntentUnknown.
func DetectIntent(message string) Intent {
	lowered := strings.ToLower(message)
	for _, rule := range keywordRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.intent
			}
		}
	}
	return IntentUnknown
}
