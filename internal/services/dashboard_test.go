package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/cradlehq/cradle/internal/models"
)

func TestBuildRecentActivity_MergesSortedNewestFirst(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	feedings := []models.Feeding{{ID: 1, BabyID: 1, FeedType: models.FeedTypeFormula, Time: base.Add(2 * time.Hour)}}
	sleeps := []models.Sleep{{ID: 2, BabyID: 1, SleepType: models.SleepTypeNap, StartTime: base.Add(3 * time.Hour)}}
	diapers := []models.Diaper{{ID: 3, BabyID: 1, DiaperType: "wet", Time: base.Add(1 * time.Hour)}}
	baths := []models.Bath{{ID: 4, BabyID: 1, DurationMinutes: 10, Time: base}}
	notifications := []models.Notification{{ID: 5, Title: "reminder", CreatedAt: base.Add(4 * time.Hour)}}

	items := BuildRecentActivity(feedings, sleeps, diapers, baths, notifications)
	if len(items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(items))
	}

	wantKinds := []string{"notification", "sleep", "feeding", "diaper", "bath"}
	for index, kind := range wantKinds {
		if items[index].Kind != kind {
			t.Fatalf("position %d: expected %s, got %s", index, kind, items[index].Kind)
		}
	}
	for index := 1; index < len(items); index++ {
		if items[index].Timestamp.After(items[index-1].Timestamp) {
			t.Fatalf("expected newest-first ordering at position %d", index)
		}
	}
}

func TestBuildRecentActivity_TruncatesToTen(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	feedings := make([]models.Feeding, 0, 12)
	for index := 0; index < 12; index++ {
		feedings = append(feedings, models.Feeding{
			ID:       uint(index + 1),
			BabyID:   1,
			FeedType: models.FeedTypeBreast,
			Time:     base.Add(time.Duration(index) * time.Hour),
		})
	}

	items := BuildRecentActivity(feedings, nil, nil, nil, nil)
	if len(items) != 10 {
		t.Fatalf("expected the feed capped at 10, got %d", len(items))
	}
	// The two oldest feedings fall off the end.
	if items[0].ID != 12 || items[9].ID != 3 {
		t.Fatalf("expected items 12..3, got first=%d last=%d", items[0].ID, items[9].ID)
	}
}

func TestBuildRecentActivity_Summaries(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	items := BuildRecentActivity(
		[]models.Feeding{{ID: 1, BabyID: 1, FeedType: models.FeedTypeFormula, Time: base}},
		nil, nil, nil, nil,
	)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if want := fmt.Sprintf("%s feeding", models.FeedTypeFormula); items[0].Summary != want {
		t.Fatalf("expected summary %q, got %q", want, items[0].Summary)
	}
	if items[0].BabyID == nil || *items[0].BabyID != 1 {
		t.Fatalf("expected baby id carried through, got %v", items[0].BabyID)
	}
}
