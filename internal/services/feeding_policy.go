package services

import (
	"errors"

	"github.com/cradlehq/cradle/internal/models"
)

const (
	FeedingAmountMinML = 0.0
	FeedingAmountMaxML = 500.0
)

var (
	ErrFeedTypeInvalid         = errors.New("invalid feed type")
	ErrFeedingAmountInvalid    = errors.New("feeding amount out of range")
	ErrFeedingDurationNegative = errors.New("feeding duration negative")
)

func ValidateFeeding(feeding models.Feeding) error {
	if !models.IsValidFeedType(feeding.FeedType) {
		return ErrFeedTypeInvalid
	}
	if feeding.AmountML != nil && (*feeding.AmountML < FeedingAmountMinML || *feeding.AmountML > FeedingAmountMaxML) {
		return ErrFeedingAmountInvalid
	}
	if feeding.DurationMinutes != nil && *feeding.DurationMinutes < 0 {
		return ErrFeedingDurationNegative
	}
	return nil
}

type FeedingStats struct {
	Period          string         `json:"period"`
	Total           int            `json:"total"`
	TotalAmountML   float64        `json:"totalAmountML"`
	AverageAmountML float64        `json:"averageAmountML"`
	ByType          map[string]int `json:"byType"`
	ByHour          map[int]int    `json:"byHour"`
}

// BuildFeedingStats aggregates a window of feedings. The amount average
// only counts records that carry an amount.
func BuildFeedingStats(period string, feedings []models.Feeding) FeedingStats {
	stats := FeedingStats{
		Period: period,
		Total:  len(feedings),
		ByType: map[string]int{},
		ByHour: map[int]int{},
	}

	withAmount := 0
	for _, feeding := range feedings {
		stats.ByType[feeding.FeedType]++
		stats.ByHour[feeding.Time.UTC().Hour()]++
		if feeding.AmountML != nil {
			stats.TotalAmountML += *feeding.AmountML
			withAmount++
		}
	}
	if withAmount > 0 {
		stats.AverageAmountML = stats.TotalAmountML / float64(withAmount)
	}
	return stats
}
