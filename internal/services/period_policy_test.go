package services

import (
	"testing"
	"time"
)

func TestPeriodWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		period string
		from   time.Time
	}{
		{PeriodToday, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
		{PeriodDay, now.Add(-24 * time.Hour)},
		{PeriodWeek, now.AddDate(0, 0, -7)},
		{PeriodMonth, now.AddDate(0, -1, 0)},
		{PeriodYear, now.AddDate(-1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			from, to := PeriodWindow(tt.period, now)
			if !from.Equal(tt.from) {
				t.Fatalf("PeriodWindow(%q) from = %v, want %v", tt.period, from, tt.from)
			}
			if !to.Equal(now) {
				t.Fatalf("PeriodWindow(%q) to = %v, want %v", tt.period, to, now)
			}
		})
	}
}

func TestPeriodWindow_UnknownFallsBackToWeek(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	for _, period := range []string{"", "decade", "WEEK"} {
		from, _ := PeriodWindow(period, now)
		if !from.Equal(now.AddDate(0, 0, -7)) {
			t.Fatalf("PeriodWindow(%q) did not fall back to a week, from = %v", period, from)
		}
	}
}
