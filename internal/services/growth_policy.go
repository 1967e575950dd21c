package services

import (
	"errors"

	"github.com/cradlehq/cradle/internal/models"
)

var (
	ErrGrowthNoMeasurement        = errors.New("at least one measurement required")
	ErrGrowthWeightOutOfRange     = errors.New("weight out of range")
	ErrGrowthHeightOutOfRange     = errors.New("height out of range")
	ErrGrowthHeadOutOfRange       = errors.New("head circumference out of range")
	ErrGrowthPercentileOutOfRange = errors.New("percentile out of range")
	ErrGrowthDuplicateDay         = errors.New("growth record already exists for that day")
)

// ValidateGrowth enforces the clinical plausibility ranges; values outside
// them are rejected rather than clamped.
func ValidateGrowth(growth models.Growth) error {
	if growth.WeightKG == nil && growth.HeightCM == nil && growth.HeadCircumferenceCM == nil {
		return ErrGrowthNoMeasurement
	}
	if growth.WeightKG != nil && (*growth.WeightKG < models.GrowthWeightMinKG || *growth.WeightKG > models.GrowthWeightMaxKG) {
		return ErrGrowthWeightOutOfRange
	}
	if growth.HeightCM != nil && (*growth.HeightCM < models.GrowthHeightMinCM || *growth.HeightCM > models.GrowthHeightMaxCM) {
		return ErrGrowthHeightOutOfRange
	}
	if growth.HeadCircumferenceCM != nil && (*growth.HeadCircumferenceCM < models.GrowthHeadMinCM || *growth.HeadCircumferenceCM > models.GrowthHeadMaxCM) {
		return ErrGrowthHeadOutOfRange
	}
	if !validPercentile(growth.WeightPercentile) || !validPercentile(growth.HeightPercentile) {
		return ErrGrowthPercentileOutOfRange
	}
	return nil
}

func validPercentile(value *float64) bool {
	return value == nil || (*value >= models.PercentileMin && *value <= models.PercentileMax)
}

// PercentileEstimate is a coarse age-bracket approximation, not a WHO
// growth-chart lookup.
type PercentileEstimate struct {
	AgeMonths                 int      `json:"ageMonths"`
	WeightKG                  *float64 `json:"weight"`
	HeightCM                  *float64 `json:"height"`
	WeightPercentile          *float64 `json:"weightPercentile"`
	HeightPercentile          *float64 `json:"heightPercentile"`
	WeightForHeightPercentile *float64 `json:"weightForHeightPercentile"`
}

func EstimatePercentiles(ageMonths int, weightKG *float64, heightCM *float64) PercentileEstimate {
	estimate := PercentileEstimate{
		AgeMonths: ageMonths,
		WeightKG:  weightKG,
		HeightCM:  heightCM,
	}
	if weightKG != nil {
		estimate.WeightPercentile = bracketPercentile(ageMonths, 75.0, 65.0, 50.0)
	}
	if heightCM != nil {
		estimate.HeightPercentile = bracketPercentile(ageMonths, 80.0, 70.0, 60.0)
	}
	if weightKG != nil && heightCM != nil {
		combined := 72.5
		estimate.WeightForHeightPercentile = &combined
	}
	return estimate
}

func bracketPercentile(ageMonths int, infant, toddler, older float64) *float64 {
	value := older
	switch {
	case ageMonths <= 12:
		value = infant
	case ageMonths <= 24:
		value = toddler
	}
	return &value
}
