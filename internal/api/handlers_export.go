package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/cradlehq/cradle/internal/db"
	"github.com/cradlehq/cradle/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	document, err := handler.buildExportDocument(c)
	if err != nil || document == nil {
		return err
	}
	c.Set(fiber.HeaderContentDisposition, exportAttachment(document.Baby.Name, "json"))
	return c.JSON(document)
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	document, err := handler.buildExportDocument(c)
	if err != nil || document == nil {
		return err
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := writer.WriteAll(services.BuildExportCSVRows(*document)); err != nil {
		return handler.respondServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, exportAttachment(document.Baby.Name, "csv"))
	return c.Send(buffer.Bytes())
}

// buildExportDocument resolves ownership and loads every record category
// for the requested baby. A nil document with a nil error means the error
// response has already been written.
func (handler *Handler) buildExportDocument(c *fiber.Ctx) (*services.ExportDocument, error) {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return nil, err
	}
	babyID := parseUintQuery(c, "babyId")
	if babyID == nil {
		return nil, apiError(c, fiber.StatusBadRequest, "babyId query parameter required")
	}
	baby, err := handler.ownership.ResolveOwnedBaby(user.ID, *babyID)
	if err != nil {
		return nil, handler.respondServiceError(c, err)
	}

	filter := db.RecordFilter{BabyIDs: []uint{baby.ID}}
	document := services.ExportDocument{GeneratedAt: time.Now().UTC(), Baby: baby}

	if document.Feedings, err = handler.repositories.Feedings.ListFiltered(filter); err != nil {
		return nil, handler.respondServiceError(c, err)
	}
	if document.Sleeps, err = handler.repositories.Sleeps.ListFiltered(filter); err != nil {
		return nil, handler.respondServiceError(c, err)
	}
	if document.Diapers, err = handler.repositories.Diapers.ListFiltered(filter); err != nil {
		return nil, handler.respondServiceError(c, err)
	}
	if document.Baths, err = handler.repositories.Baths.ListFiltered(filter); err != nil {
		return nil, handler.respondServiceError(c, err)
	}
	if document.Checkups, err = handler.repositories.Checkups.ListFiltered(filter); err != nil {
		return nil, handler.respondServiceError(c, err)
	}
	if document.Growth, err = handler.repositories.Growth.ListByBabyAsc(baby.ID); err != nil {
		return nil, handler.respondServiceError(c, err)
	}
	if document.Allergies, err = handler.repositories.Allergies.ListFiltered(filter); err != nil {
		return nil, handler.respondServiceError(c, err)
	}
	if document.Vaccinations, err = handler.repositories.Vaccinations.ListFiltered(filter); err != nil {
		return nil, handler.respondServiceError(c, err)
	}
	if document.Milestones, err = handler.repositories.Milestones.ListFiltered(filter); err != nil {
		return nil, handler.respondServiceError(c, err)
	}
	return &document, nil
}

func exportAttachment(babyName string, extension string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, babyName)
	return fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("cradle-export-%s.%s", slug, extension))
}
