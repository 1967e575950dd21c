package api

import (
	"time"

	"github.com/cradlehq/cradle/internal/db"
	"github.com/cradlehq/cradle/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Dashboard is the read-only rollup: today's counts, unread notifications,
// and a merged recent-activity feed.
func (handler *Handler) Dashboard(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	ownedIDs, err := handler.ownership.OwnedBabyIDs(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	now := time.Now().UTC()
	dayStart := services.DayOf(now)

	todayFeedings, err := handler.repositories.Feedings.ListInWindow(ownedIDs, dayStart, now)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	todayDiapers, err := handler.repositories.Diapers.ListInWindow(ownedIDs, dayStart, now)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	todaySleeps, err := handler.repositories.Sleeps.ListInWindow(ownedIDs, dayStart, now)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	unread, err := handler.repositories.Notifications.CountUnread(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	recentFilter := db.RecordFilter{BabyIDs: ownedIDs, Limit: 10}
	recentFeedings, err := handler.repositories.Feedings.ListFiltered(recentFilter)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	recentSleeps, err := handler.repositories.Sleeps.ListFiltered(recentFilter)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	recentDiapers, err := handler.repositories.Diapers.ListFiltered(recentFilter)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	recentBaths, err := handler.repositories.Baths.ListFiltered(recentFilter)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	recentNotifications, err := handler.repositories.Notifications.ListForUser(user.ID, db.NotificationFilter{Limit: 10})
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	summary := services.DashboardSummary{
		TodayFeedings:       len(todayFeedings),
		TodayDiapers:        len(todayDiapers),
		TodaySleepSessions:  len(todaySleeps),
		UnreadNotifications: unread,
		RecentActivity: services.BuildRecentActivity(
			recentFeedings, recentSleeps, recentDiapers, recentBaths, recentNotifications,
		),
	}
	return c.JSON(summary)
}
