package service

import (
	"time"

	"mydo/internal/model"
)

// NextDueDate computes the due date of a recurring task's next
// occurrence. Month arithmetic follows time.AddDate roll-over semantics:
// Jan 31 plus one month lands in early March rather than clamping to the
// end of February. CUSTOM and unknown frequencies, and non-positive
// intervals, yield no next occurrence.
func NextDueDate(due time.Time, frequency model.Frequency, interval int) (time.Time, bool) {
	if interval <= 0 {
		return time.Time{}, false
	}
	switch frequency {
	case model.FrequencyDaily:
		return due.AddDate(0, 0, interval), true
	case model.FrequencyWeekly:
		return due.AddDate(0, 0, interval*7), true
	case model.FrequencyMonthly:
		return due.AddDate(0, interval, 0), true
	default:
		return time.Time{}, false
	}
}
