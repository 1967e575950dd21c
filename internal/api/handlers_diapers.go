package api

import (
	"time"

	"github.com/cradlehq/cradle/internal/models"
	"github.com/cradlehq/cradle/internal/services"
	"github.com/gofiber/fiber/v2"
)

type diaperInput struct {
	BabyID      *uint   `json:"babyId"`
	DiaperType  *string `json:"diaperType"`
	Consistency *string `json:"consistency"`
	Color       *string `json:"color"`
	Notes       *string `json:"notes"`
	Time        *string `json:"time"`
}

func (handler *Handler) ListDiapers(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	filter, err := handler.buildRecordFilter(c, user.ID, "type")
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	diapers, err := handler.repositories.Diapers.ListFiltered(filter)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(diapers)
}

func (handler *Handler) GetDiaper(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	diaper, err := handler.repositories.Diapers.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, diaper.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(diaper)
}

func (handler *Handler) CreateDiaper(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	var input diaperInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.BabyID == nil || input.DiaperType == nil || input.Time == nil {
		return apiError(c, fiber.StatusBadRequest, "babyId, diaperType and time are required")
	}
	if _, err := handler.ownership.ResolveOwnedBaby(user.ID, *input.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}

	at, err := services.ParseTimestamp(*input.Time)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := services.ValidateNotFuture(at, time.Now()); err != nil {
		return handler.respondServiceError(c, err)
	}

	diaper := models.Diaper{
		BabyID:     *input.BabyID,
		DiaperType: *input.DiaperType,
		Time:       at,
	}
	if input.Consistency != nil {
		diaper.Consistency = *input.Consistency
	}
	if input.Color != nil {
		diaper.Color = *input.Color
	}
	if input.Notes != nil {
		diaper.Notes = *input.Notes
	}
	if err := services.ValidateDiaper(diaper); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Diapers.Create(&diaper); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(diaper)
}

func (handler *Handler) UpdateDiaper(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	diaper, err := handler.repositories.Diapers.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, diaper.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}

	var input diaperInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.DiaperType != nil {
		diaper.DiaperType = *input.DiaperType
	}
	if input.Consistency != nil {
		diaper.Consistency = *input.Consistency
	}
	if input.Color != nil {
		diaper.Color = *input.Color
	}
	if input.Notes != nil {
		diaper.Notes = *input.Notes
	}
	if input.Time != nil {
		at, err := services.ParseTimestamp(*input.Time)
		if err != nil {
			return handler.respondServiceError(c, err)
		}
		if err := services.ValidateNotFuture(at, time.Now()); err != nil {
			return handler.respondServiceError(c, err)
		}
		diaper.Time = at
	}
	if err := services.ValidateDiaper(diaper); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Diapers.Save(&diaper); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(diaper)
}

func (handler *Handler) DeleteDiaper(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	diaper, err := handler.repositories.Diapers.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, diaper.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Diapers.Delete(id); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DiaperStats(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	babyIDs, period, from, to, err := handler.statsWindow(c, user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	diapers, err := handler.repositories.Diapers.ListInWindow(babyIDs, from, to)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(services.BuildDiaperStats(period, diapers))
}
