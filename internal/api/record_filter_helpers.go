package api

import (
	"time"

	"github.com/cradlehq/cradle/internal/db"
	"github.com/cradlehq/cradle/internal/services"
	"github.com/gofiber/fiber/v2"
)

// buildRecordFilter assembles the lenient listing filter for an event
// resource. A babyId the caller does not own, or any malformed value, is
// silently dropped rather than rejected. categoryQuery names the query
// parameter holding the resource's type filter ("" disables it).
func (handler *Handler) buildRecordFilter(c *fiber.Ctx, userID uint, categoryQuery string) (db.RecordFilter, error) {
	ownedIDs, err := handler.ownership.OwnedBabyIDs(userID)
	if err != nil {
		return db.RecordFilter{}, err
	}

	filter := db.RecordFilter{BabyIDs: ownedIDs, Limit: parseLimitQuery(c)}

	if babyID := parseUintQuery(c, "babyId"); babyID != nil {
		for _, owned := range ownedIDs {
			if owned == *babyID {
				filter.BabyIDs = []uint{*babyID}
				break
			}
		}
	}
	if from, err := services.ParseTimestamp(c.Query("from")); err == nil {
		filter.From = &from
	}
	if to, err := services.ParseTimestamp(c.Query("to")); err == nil {
		filter.To = &to
	}
	if categoryQuery != "" {
		filter.Category = c.Query(categoryQuery)
	}
	return filter, nil
}

// statsWindow resolves the owned-baby set and the requested stats period.
func (handler *Handler) statsWindow(c *fiber.Ctx, userID uint) ([]uint, string, time.Time, time.Time, error) {
	ownedIDs, err := handler.ownership.OwnedBabyIDs(userID)
	if err != nil {
		return nil, "", time.Time{}, time.Time{}, err
	}
	period := c.Query("period", services.PeriodWeek)
	switch period {
	case services.PeriodToday, services.PeriodDay, services.PeriodWeek, services.PeriodMonth, services.PeriodYear:
	default:
		period = services.PeriodWeek
	}
	from, to := services.PeriodWindow(period, time.Now())

	if babyID := parseUintQuery(c, "babyId"); babyID != nil {
		for _, owned := range ownedIDs {
			if owned == *babyID {
				ownedIDs = []uint{*babyID}
				break
			}
		}
	}
	return ownedIDs, period, from, to, nil
}
