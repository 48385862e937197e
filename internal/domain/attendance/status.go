package attendance

import (
	"math"
	"time"
)

// Late threshold: checking in at exactly 09:30 is still present,
// 09:31 and later is late.
const (
	LateThresholdHour   = 9
	LateThresholdMinute = 30
)

// MinFullDayHours is the worked-hours floor below which a checkout
// downgrades the day to half-day.
const MinFullDayHours = 4.0

// DeriveInitialStatus classifies a check-in by local time of day only.
// The date component of t is irrelevant.
func DeriveInitialStatus(t time.Time) Status {
	if t.Hour() > LateThresholdHour ||
		(t.Hour() == LateThresholdHour && t.Minute() > LateThresholdMinute) {
		return StatusLate
	}
	return StatusPresent
}

// RoundHours rounds a fractional hour count to two decimal places.
func RoundHours(hours float64) float64 {
	return math.Round(hours*100) / 100
}
