package services

import (
	"testing"
	"time"

	"github.com/cradlehq/cradle/internal/models"
)

func TestBuildExportCSVRows_OldestFirst(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	amount := 120.0
	duration := 45.0
	end := base.Add(3*time.Hour + 45*time.Minute)

	document := ExportDocument{
		Feedings: []models.Feeding{
			{FeedType: models.FeedTypeFormula, AmountML: &amount, Time: base.Add(2 * time.Hour), Notes: "after walk"},
		},
		Sleeps: []models.Sleep{
			{SleepType: models.SleepTypeNap, StartTime: base.Add(3 * time.Hour), EndTime: &end, DurationMinutes: &duration},
		},
		Diapers: []models.Diaper{
			{DiaperType: "wet", Time: base},
		},
	}

	rows := BuildExportCSVRows(document)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	wantKinds := []string{"diaper", "feeding", "sleep"}
	for index, kind := range wantKinds {
		if rows[index][1] != kind {
			t.Fatalf("row %d: expected kind %s, got %s", index, kind, rows[index][1])
		}
	}
	for index := 1; index < len(rows); index++ {
		if rows[index][0] < rows[index-1][0] {
			t.Fatalf("expected chronological rows, got %s before %s", rows[index-1][0], rows[index][0])
		}
	}

	if rows[1][2] != "formula 120 ml" {
		t.Fatalf("unexpected feeding details %q", rows[1][2])
	}
	if rows[1][3] != "after walk" {
		t.Fatalf("expected notes carried through, got %q", rows[1][3])
	}
	if rows[2][2] != "nap 45 min" {
		t.Fatalf("unexpected sleep details %q", rows[2][2])
	}
}

func TestBuildExportCSVRows_TimestampsAreRFC3339UTC(t *testing.T) {
	at := time.Date(2025, 6, 1, 10, 30, 0, 0, time.FixedZone("CEST", 2*3600))
	document := ExportDocument{
		Diapers: []models.Diaper{{DiaperType: "dirty", Time: at}},
	}

	rows := BuildExportCSVRows(document)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0][0] != "2025-06-01T08:30:00Z" {
		t.Fatalf("expected UTC RFC3339 timestamp, got %q", rows[0][0])
	}
}

func TestBuildExportCSVRows_EmptyDocument(t *testing.T) {
	rows := BuildExportCSVRows(ExportDocument{})
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}
