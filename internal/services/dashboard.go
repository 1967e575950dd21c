package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/cradlehq/cradle/internal/models"
)

const recentActivityLimit = 10

// ActivityItem is one row of the dashboard's merged recent-activity feed.
type ActivityItem struct {
	Kind      string    `json:"kind"`
	ID        uint      `json:"id"`
	BabyID    *uint     `json:"babyId,omitempty"`
	Summary   string    `json:"summary"`
	Timestamp time.Time `json:"timestamp"`
}

type DashboardSummary struct {
	TodayFeedings       int            `json:"todayFeedings"`
	TodayDiapers        int            `json:"todayDiapers"`
	TodaySleepSessions  int            `json:"todaySleepSessions"`
	UnreadNotifications int64          `json:"unreadNotifications"`
	RecentActivity      []ActivityItem `json:"recentActivity"`
}

// BuildRecentActivity merges the newest records of each kind into one feed
// sorted newest first and truncated to the ten most recent.
func BuildRecentActivity(
	feedings []models.Feeding,
	sleeps []models.Sleep,
	diapers []models.Diaper,
	baths []models.Bath,
	notifications []models.Notification,
) []ActivityItem {
	items := make([]ActivityItem, 0, len(feedings)+len(sleeps)+len(diapers)+len(baths)+len(notifications))

	for _, feeding := range feedings {
		babyID := feeding.BabyID
		items = append(items, ActivityItem{
			Kind:      "feeding",
			ID:        feeding.ID,
			BabyID:    &babyID,
			Summary:   fmt.Sprintf("%s feeding", feeding.FeedType),
			Timestamp: feeding.Time,
		})
	}
	for _, sleep := range sleeps {
		babyID := sleep.BabyID
		items = append(items, ActivityItem{
			Kind:      "sleep",
			ID:        sleep.ID,
			BabyID:    &babyID,
			Summary:   fmt.Sprintf("%s sleep", sleep.SleepType),
			Timestamp: sleep.StartTime,
		})
	}
	for _, diaper := range diapers {
		babyID := diaper.BabyID
		items = append(items, ActivityItem{
			Kind:      "diaper",
			ID:        diaper.ID,
			BabyID:    &babyID,
			Summary:   fmt.Sprintf("%s diaper", diaper.DiaperType),
			Timestamp: diaper.Time,
		})
	}
	for _, bath := range baths {
		babyID := bath.BabyID
		items = append(items, ActivityItem{
			Kind:      "bath",
			ID:        bath.ID,
			BabyID:    &babyID,
			Summary:   "bath",
			Timestamp: bath.Time,
		})
	}
	for _, notification := range notifications {
		items = append(items, ActivityItem{
			Kind:      "notification",
			ID:        notification.ID,
			BabyID:    notification.BabyID,
			Summary:   notification.Title,
			Timestamp: notification.CreatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	if len(items) > recentActivityLimit {
		items = items[:recentActivityLimit]
	}
	return items
}
