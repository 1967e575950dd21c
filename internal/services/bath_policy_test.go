package services

import (
	"errors"
	"testing"
	"time"

	"github.com/cradlehq/cradle/internal/models"
)

func TestValidateBath_DurationRange(t *testing.T) {
	if err := ValidateBath(models.Bath{DurationMinutes: 0}); !errors.Is(err, ErrBathDurationInvalid) {
		t.Fatalf("expected ErrBathDurationInvalid for 0, got %v", err)
	}
	if err := ValidateBath(models.Bath{DurationMinutes: 61}); !errors.Is(err, ErrBathDurationInvalid) {
		t.Fatalf("expected ErrBathDurationInvalid for 61, got %v", err)
	}
	if err := ValidateBath(models.Bath{DurationMinutes: 10}); err != nil {
		t.Fatalf("expected valid bath, got %v", err)
	}
}

func TestBuildBathStats_ProductsCaseInsensitiveWithStableTies(t *testing.T) {
	monday := time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC)

	baths := []models.Bath{
		{DurationMinutes: 10, Time: monday, ProductsUsed: []string{"Shampoo", "soap"}},
		{DurationMinutes: 20, Time: monday.AddDate(0, 0, 1), ProductsUsed: []string{"SHAMPOO", "lotion"}},
	}

	stats := BuildBathStats(PeriodWeek, baths)
	if stats.Total != 2 {
		t.Fatalf("expected total 2, got %d", stats.Total)
	}
	if stats.AverageDurationMinutes != 15.0 {
		t.Fatalf("expected average 15 minutes, got %v", stats.AverageDurationMinutes)
	}
	if stats.ByDayOfWeek["Monday"] != 1 || stats.ByDayOfWeek["Tuesday"] != 1 {
		t.Fatalf("unexpected by-day counts %v", stats.ByDayOfWeek)
	}

	if len(stats.MostUsedProducts) != 3 {
		t.Fatalf("expected 3 products, got %v", stats.MostUsedProducts)
	}
	if stats.MostUsedProducts[0].Product != "shampoo" || stats.MostUsedProducts[0].Count != 2 {
		t.Fatalf("expected shampoo counted case-insensitively first, got %v", stats.MostUsedProducts[0])
	}
	// lotion and soap tie at one use each; the tie breaks alphabetically.
	if stats.MostUsedProducts[1].Product != "lotion" || stats.MostUsedProducts[2].Product != "soap" {
		t.Fatalf("expected alphabetical tie-break, got %v", stats.MostUsedProducts)
	}
}

func TestBuildBathStats_CapsProductListAtFive(t *testing.T) {
	bath := models.Bath{
		DurationMinutes: 10,
		Time:            time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC),
		ProductsUsed:    []string{"a", "b", "c", "d", "e", "f", "g"},
	}

	stats := BuildBathStats(PeriodWeek, []models.Bath{bath})
	if len(stats.MostUsedProducts) != 5 {
		t.Fatalf("expected the product list capped at 5, got %d", len(stats.MostUsedProducts))
	}
}
