package services

import (
	"errors"
	"time"

	"github.com/cradlehq/cradle/internal/models"
)

var (
	ErrSleepTypeInvalid      = errors.New("invalid sleep type")
	ErrSleepQualityInvalid   = errors.New("invalid sleep quality")
	ErrSleepAlreadyOpen      = errors.New("an open sleep session already exists")
	ErrSleepAlreadyEnded     = errors.New("sleep session already ended")
	ErrSleepEndNotAfterStart = errors.New("end time not after start time")
)

func ValidateSleep(sleep models.Sleep) error {
	if !models.IsValidSleepType(sleep.SleepType) {
		return ErrSleepTypeInvalid
	}
	if sleep.Quality != "" && !models.IsValidSleepQuality(sleep.Quality) {
		return ErrSleepQualityInvalid
	}
	if sleep.EndTime != nil && !sleep.EndTime.After(sleep.StartTime) {
		return ErrSleepEndNotAfterStart
	}
	return nil
}

// DeriveSleepDuration computes the stored duration in minutes. Clients
// never supply it when both ends are known.
func DeriveSleepDuration(start time.Time, end time.Time) float64 {
	return end.Sub(start).Minutes()
}

// CloseSleep stamps the end time and derives the duration, refusing to
// close an already-ended session.
func CloseSleep(sleep *models.Sleep, end time.Time) error {
	if sleep.EndTime != nil {
		return ErrSleepAlreadyEnded
	}
	if !end.After(sleep.StartTime) {
		return ErrSleepEndNotAfterStart
	}
	duration := DeriveSleepDuration(sleep.StartTime, end)
	sleep.EndTime = &end
	sleep.DurationMinutes = &duration
	return nil
}

type SleepStats struct {
	Period                 string         `json:"period"`
	Total                  int            `json:"total"`
	TotalDurationMinutes   float64        `json:"totalDurationMinutes"`
	AverageDurationMinutes float64        `json:"averageDurationMinutes"`
	Naps                   int            `json:"naps"`
	NightSleeps            int            `json:"nightSleeps"`
	ByQuality              map[string]int `json:"byQuality"`
}

// BuildSleepStats aggregates completed sessions; open ones are counted in
// Total but excluded from every duration figure.
func BuildSleepStats(period string, sleeps []models.Sleep) SleepStats {
	stats := SleepStats{
		Period:    period,
		Total:     len(sleeps),
		ByQuality: map[string]int{},
	}

	completed := 0
	for _, sleep := range sleeps {
		switch sleep.SleepType {
		case models.SleepTypeNap:
			stats.Naps++
		case models.SleepTypeNight:
			stats.NightSleeps++
		}
		if sleep.Quality != "" {
			stats.ByQuality[sleep.Quality]++
		}
		if sleep.EndTime == nil || sleep.DurationMinutes == nil {
			continue
		}
		stats.TotalDurationMinutes += *sleep.DurationMinutes
		completed++
	}
	if completed > 0 {
		stats.AverageDurationMinutes = stats.TotalDurationMinutes / float64(completed)
	}
	return stats
}
