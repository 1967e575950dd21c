package services

import (
	"errors"
	"testing"
	"time"

	"github.com/cradlehq/cradle/internal/models"
)

func floatPtr(value float64) *float64 {
	return &value
}

func TestValidateFeeding(t *testing.T) {
	if err := ValidateFeeding(models.Feeding{FeedType: "juice"}); !errors.Is(err, ErrFeedTypeInvalid) {
		t.Fatalf("expected ErrFeedTypeInvalid, got %v", err)
	}
	if err := ValidateFeeding(models.Feeding{FeedType: models.FeedTypeFormula, AmountML: floatPtr(501)}); !errors.Is(err, ErrFeedingAmountInvalid) {
		t.Fatalf("expected ErrFeedingAmountInvalid, got %v", err)
	}
	if err := ValidateFeeding(models.Feeding{FeedType: models.FeedTypeFormula, AmountML: floatPtr(-1)}); !errors.Is(err, ErrFeedingAmountInvalid) {
		t.Fatalf("expected ErrFeedingAmountInvalid for negative amount, got %v", err)
	}
	if err := ValidateFeeding(models.Feeding{FeedType: models.FeedTypeBreast, DurationMinutes: floatPtr(-5)}); !errors.Is(err, ErrFeedingDurationNegative) {
		t.Fatalf("expected ErrFeedingDurationNegative, got %v", err)
	}
	if err := ValidateFeeding(models.Feeding{FeedType: models.FeedTypeBreast, DurationMinutes: floatPtr(20)}); err != nil {
		t.Fatalf("expected valid feeding, got %v", err)
	}
}

func TestBuildFeedingStats_AveragesOnlyRecordsWithAmount(t *testing.T) {
	at := time.Date(2025, 6, 1, 8, 15, 0, 0, time.UTC)

	feedings := []models.Feeding{
		{FeedType: models.FeedTypeFormula, AmountML: floatPtr(100), Time: at},
		{FeedType: models.FeedTypeFormula, AmountML: floatPtr(140), Time: at.Add(4 * time.Hour)},
		{FeedType: models.FeedTypeBreast, Time: at.Add(8 * time.Hour)},
	}

	stats := BuildFeedingStats(PeriodWeek, feedings)
	if stats.Total != 3 {
		t.Fatalf("expected total 3, got %d", stats.Total)
	}
	if stats.TotalAmountML != 240 {
		t.Fatalf("expected 240 ml total, got %v", stats.TotalAmountML)
	}
	// The breast feeding without an amount must not dilute the average.
	if stats.AverageAmountML != 120 {
		t.Fatalf("expected average 120 ml, got %v", stats.AverageAmountML)
	}
	if stats.ByType[models.FeedTypeFormula] != 2 || stats.ByType[models.FeedTypeBreast] != 1 {
		t.Fatalf("unexpected by-type counts %v", stats.ByType)
	}
	if stats.ByHour[8] != 1 || stats.ByHour[12] != 1 || stats.ByHour[16] != 1 {
		t.Fatalf("unexpected by-hour counts %v", stats.ByHour)
	}
}

func TestBuildFeedingStats_EmptyWindow(t *testing.T) {
	stats := BuildFeedingStats(PeriodToday, nil)
	if stats.Total != 0 || stats.AverageAmountML != 0 {
		t.Fatalf("expected zeroed stats, got %+v", stats)
	}
}
