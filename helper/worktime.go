package helper

import (
	"math"
	"time"
)

const (
	minutesPerDay = 24 * 60

	longBreakShiftMinutes   = 8 * 60
	shortBreakShiftMinutes  = 6*60 + 15
	fixedCreditShiftMinutes = 6 * 60
	fixedCreditMinutes      = 6 * 60
	longBreakMinutes        = 60
	shortBreakMinutes       = 45
)

// WorkTimeResult is what a closed shift is credited with.
type WorkTimeResult struct {
	WorkMinutes  int  `json:"work_minutes"`
	BreakMinutes int  `json:"break_minutes"`
	IsOvernight  bool `json:"is_overnight"`
}

// CalculateWorkTime applies the automatic break deduction to the span
// between clockIn and clockOut.
//
//	T <  6h          no break, T credited
//	6h <= T < 6h15m  no break, 6h credited
//	6h15m <= T < 8h  45 minute break
//	T >= 8h          60 minute break
//
// A clockOut earlier than clockIn is read as a shift that crossed midnight
// and gets exactly one day added back. Shifts are assumed to be shorter
// than 24 hours.
func CalculateWorkTime(clockIn, clockOut time.Time) WorkTimeResult {
	total := clockOut.Sub(clockIn).Minutes()

	overnight := total < 0
	if overnight {
		total += minutesPerDay
	}

	var workMinutes, breakMinutes int
	switch {
	case total >= longBreakShiftMinutes:
		breakMinutes = longBreakMinutes
		workMinutes = int(math.Floor(total - longBreakMinutes))
	case total >= shortBreakShiftMinutes:
		breakMinutes = shortBreakMinutes
		workMinutes = int(math.Floor(total - shortBreakMinutes))
	case total >= fixedCreditShiftMinutes:
		workMinutes = fixedCreditMinutes
	default:
		workMinutes = int(math.Floor(total))
	}

	if workMinutes < 0 {
		workMinutes = 0
	}

	return WorkTimeResult{
		WorkMinutes:  workMinutes,
		BreakMinutes: breakMinutes,
		IsOvernight:  overnight,
	}
}

// IsOvertime reports whether a credited duration runs past a full day,
// which only happens on hand-edited records.
func IsOvertime(workMinutes int) bool {
	return workMinutes > minutesPerDay
}
