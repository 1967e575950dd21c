package services

import (
	"errors"
	"testing"

	"github.com/cradlehq/cradle/internal/models"
)

func TestValidateGrowth(t *testing.T) {
	tests := []struct {
		name   string
		growth models.Growth
		want   error
	}{
		{"no measurement", models.Growth{}, ErrGrowthNoMeasurement},
		{"weight too high", models.Growth{WeightKG: floatPtr(60)}, ErrGrowthWeightOutOfRange},
		{"weight too low", models.Growth{WeightKG: floatPtr(0.2)}, ErrGrowthWeightOutOfRange},
		{"height out of range", models.Growth{HeightCM: floatPtr(10)}, ErrGrowthHeightOutOfRange},
		{"head out of range", models.Growth{HeadCircumferenceCM: floatPtr(80)}, ErrGrowthHeadOutOfRange},
		{"percentile out of range", models.Growth{WeightKG: floatPtr(7), WeightPercentile: floatPtr(101)}, ErrGrowthPercentileOutOfRange},
		{"valid", models.Growth{WeightKG: floatPtr(7.4), HeightCM: floatPtr(68)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGrowth(tt.growth)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestEstimatePercentiles_AgeBrackets(t *testing.T) {
	tests := []struct {
		ageMonths  int
		wantWeight float64
		wantHeight float64
	}{
		{6, 75.0, 80.0},
		{12, 75.0, 80.0},
		{18, 65.0, 70.0},
		{36, 50.0, 60.0},
	}

	for _, tt := range tests {
		estimate := EstimatePercentiles(tt.ageMonths, floatPtr(8), floatPtr(70))
		if estimate.WeightPercentile == nil || *estimate.WeightPercentile != tt.wantWeight {
			t.Fatalf("age %d: weight percentile = %v, want %v", tt.ageMonths, estimate.WeightPercentile, tt.wantWeight)
		}
		if estimate.HeightPercentile == nil || *estimate.HeightPercentile != tt.wantHeight {
			t.Fatalf("age %d: height percentile = %v, want %v", tt.ageMonths, estimate.HeightPercentile, tt.wantHeight)
		}
		if estimate.WeightForHeightPercentile == nil || *estimate.WeightForHeightPercentile != 72.5 {
			t.Fatalf("age %d: combined percentile = %v, want 72.5", tt.ageMonths, estimate.WeightForHeightPercentile)
		}
	}
}

func TestEstimatePercentiles_OnlyForProvidedMeasurements(t *testing.T) {
	estimate := EstimatePercentiles(6, floatPtr(8), nil)
	if estimate.HeightPercentile != nil {
		t.Fatalf("expected no height percentile without a height, got %v", estimate.HeightPercentile)
	}
	if estimate.WeightForHeightPercentile != nil {
		t.Fatalf("expected no combined percentile without both measurements, got %v", estimate.WeightForHeightPercentile)
	}
}
