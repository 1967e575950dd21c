package services

import "time"

const (
	PeriodToday = "today"
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// PeriodWindow translates a stats period name into a [from, to] window
// ending at now. Unknown or empty names fall back to a week; the filter is
// lenient on purpose.
func PeriodWindow(period string, now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	switch period {
	case PeriodToday:
		return DayOf(now), now
	case PeriodDay:
		return now.Add(-24 * time.Hour), now
	case PeriodMonth:
		return now.AddDate(0, -1, 0), now
	case PeriodYear:
		return now.AddDate(-1, 0, 0), now
	case PeriodWeek:
		fallthrough
	default:
		return now.AddDate(0, 0, -7), now
	}
}
