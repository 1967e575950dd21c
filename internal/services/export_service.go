package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cradlehq/cradle/internal/models"
)

const exportTimeLayout = time.RFC3339

// ExportCSVHeaders is the column order of the merged-timeline CSV.
var ExportCSVHeaders = []string{"Timestamp", "Kind", "Details", "Notes"}

// ExportDocument is the JSON portability dump for one baby.
type ExportDocument struct {
	GeneratedAt  time.Time            `json:"generatedAt"`
	Baby         models.BabyProfile   `json:"baby"`
	Feedings     []models.Feeding     `json:"feedings"`
	Sleeps       []models.Sleep       `json:"sleeps"`
	Diapers      []models.Diaper      `json:"diapers"`
	Baths        []models.Bath        `json:"baths"`
	Checkups     []models.Checkup     `json:"checkups"`
	Growth       []models.Growth      `json:"growth"`
	Allergies    []models.Allergy     `json:"allergies"`
	Vaccinations []models.Vaccination `json:"vaccinations"`
	Milestones   []models.Milestone   `json:"milestones"`
}

type exportRow struct {
	timestamp time.Time
	kind      string
	details   string
	notes     string
}

// BuildExportCSVRows flattens the document into timeline rows, oldest
// first, ready for an encoding/csv writer.
func BuildExportCSVRows(document ExportDocument) [][]string {
	rows := make([]exportRow, 0)

	for _, feeding := range document.Feedings {
		details := feeding.FeedType
		if feeding.AmountML != nil {
			details = fmt.Sprintf("%s %.0f ml", details, *feeding.AmountML)
		}
		rows = append(rows, exportRow{feeding.Time, "feeding", details, feeding.Notes})
	}
	for _, sleep := range document.Sleeps {
		details := sleep.SleepType
		if sleep.DurationMinutes != nil {
			details = fmt.Sprintf("%s %.0f min", details, *sleep.DurationMinutes)
		}
		rows = append(rows, exportRow{sleep.StartTime, "sleep", details, sleep.Notes})
	}
	for _, diaper := range document.Diapers {
		rows = append(rows, exportRow{diaper.Time, "diaper", diaper.DiaperType, diaper.Notes})
	}
	for _, bath := range document.Baths {
		details := fmt.Sprintf("%.0f min", bath.DurationMinutes)
		if len(bath.ProductsUsed) > 0 {
			details = details + " " + strings.Join(bath.ProductsUsed, "; ")
		}
		rows = append(rows, exportRow{bath.Time, "bath", details, bath.Notes})
	}
	for _, checkup := range document.Checkups {
		details := checkup.CheckupType
		if checkup.DoctorName != "" {
			details = details + " with " + checkup.DoctorName
		}
		rows = append(rows, exportRow{checkup.Date, "checkup", details, checkup.Notes})
	}
	for _, growth := range document.Growth {
		parts := make([]string, 0, 3)
		if growth.WeightKG != nil {
			parts = append(parts, fmt.Sprintf("weight %.2f kg", *growth.WeightKG))
		}
		if growth.HeightCM != nil {
			parts = append(parts, fmt.Sprintf("height %.1f cm", *growth.HeightCM))
		}
		if growth.HeadCircumferenceCM != nil {
			parts = append(parts, fmt.Sprintf("head %.1f cm", *growth.HeadCircumferenceCM))
		}
		rows = append(rows, exportRow{growth.Date, "growth", strings.Join(parts, "; "), growth.Notes})
	}
	for _, allergy := range document.Allergies {
		timestamp := allergy.CreatedAt
		if allergy.DiagnosedDate != nil {
			timestamp = *allergy.DiagnosedDate
		}
		rows = append(rows, exportRow{timestamp, "allergy", allergy.Name + " (" + allergy.Severity + ")", allergy.Notes})
	}
	for _, vaccination := range document.Vaccinations {
		timestamp := vaccination.CreatedAt
		if vaccination.Date != nil {
			timestamp = *vaccination.Date
		}
		rows = append(rows, exportRow{timestamp, "vaccination", vaccination.Name + " (" + vaccination.Status + ")", vaccination.Notes})
	}
	for _, milestone := range document.Milestones {
		timestamp := milestone.CreatedAt
		if milestone.Date != nil {
			timestamp = *milestone.Date
		}
		rows = append(rows, exportRow{timestamp, "milestone", milestone.Title, milestone.Description})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].timestamp.Before(rows[j].timestamp)
	})

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			row.timestamp.UTC().Format(exportTimeLayout),
			row.kind,
			row.details,
			row.notes,
		})
	}
	return records
}
