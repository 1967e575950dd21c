package services

import (
	"errors"
	"sort"
	"strings"

	"github.com/cradlehq/cradle/internal/models"
)

var ErrBathDurationInvalid = errors.New("bath duration out of range")

func ValidateBath(bath models.Bath) error {
	if bath.DurationMinutes < models.BathDurationMinMinutes || bath.DurationMinutes > models.BathDurationMaxMinutes {
		return ErrBathDurationInvalid
	}
	return nil
}

type ProductCount struct {
	Product string `json:"product"`
	Count   int    `json:"count"`
}

type BathStats struct {
	Period                 string         `json:"period"`
	Total                  int            `json:"total"`
	AverageDurationMinutes float64        `json:"averageDurationMinutes"`
	ByDayOfWeek            map[string]int `json:"byDayOfWeek"`
	MostUsedProducts       []ProductCount `json:"mostUsedProducts"`
}

// BuildBathStats aggregates a window of baths. Products are counted
// case-insensitively and reported as the five most frequent, ties broken
// alphabetically so the order is stable.
func BuildBathStats(period string, baths []models.Bath) BathStats {
	stats := BathStats{
		Period:           period,
		Total:            len(baths),
		ByDayOfWeek:      map[string]int{},
		MostUsedProducts: []ProductCount{},
	}

	totalDuration := 0.0
	productCounts := map[string]int{}
	for _, bath := range baths {
		totalDuration += bath.DurationMinutes
		stats.ByDayOfWeek[bath.Time.UTC().Weekday().String()]++
		for _, product := range bath.ProductsUsed {
			name := strings.ToLower(strings.TrimSpace(product))
			if name != "" {
				productCounts[name]++
			}
		}
	}
	if len(baths) > 0 {
		stats.AverageDurationMinutes = totalDuration / float64(len(baths))
	}

	for product, count := range productCounts {
		stats.MostUsedProducts = append(stats.MostUsedProducts, ProductCount{Product: product, Count: count})
	}
	sort.Slice(stats.MostUsedProducts, func(i, j int) bool {
		if stats.MostUsedProducts[i].Count != stats.MostUsedProducts[j].Count {
			return stats.MostUsedProducts[i].Count > stats.MostUsedProducts[j].Count
		}
		return stats.MostUsedProducts[i].Product < stats.MostUsedProducts[j].Product
	})
	if len(stats.MostUsedProducts) > 5 {
		stats.MostUsedProducts = stats.MostUsedProducts[:5]
	}
	return stats
}
