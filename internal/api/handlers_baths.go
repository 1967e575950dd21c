package api

import (
	"github.com/cradlehq/cradle/internal/models"
	"github.com/cradlehq/cradle/internal/services"
	"github.com/gofiber/fiber/v2"
)

type bathInput struct {
	BabyID           *uint     `json:"babyId"`
	Time             *string   `json:"time"`
	Duration         *float64  `json:"duration"`
	ProductsUsed     *[]string `json:"productsUsed"`
	WaterTemperature *float64  `json:"waterTemperature"`
	MoodBefore       *string   `json:"moodBefore"`
	MoodAfter        *string   `json:"moodAfter"`
	Notes            *string   `json:"notes"`
}

func (handler *Handler) ListBaths(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	filter, err := handler.buildRecordFilter(c, user.ID, "")
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	baths, err := handler.repositories.Baths.ListFiltered(filter)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(baths)
}

func (handler *Handler) GetBath(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	bath, err := handler.repositories.Baths.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, bath.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(bath)
}

func (handler *Handler) CreateBath(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	var input bathInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.BabyID == nil || input.Time == nil || input.Duration == nil {
		return apiError(c, fiber.StatusBadRequest, "babyId, time and duration are required")
	}
	if _, err := handler.ownership.ResolveOwnedBaby(user.ID, *input.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}

	at, err := services.ParseTimestamp(*input.Time)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	bath := models.Bath{
		BabyID:            *input.BabyID,
		Time:              at,
		DurationMinutes:   *input.Duration,
		WaterTemperatureC: input.WaterTemperature,
	}
	if input.ProductsUsed != nil {
		bath.ProductsUsed = *input.ProductsUsed
	}
	if input.MoodBefore != nil {
		bath.MoodBefore = *input.MoodBefore
	}
	if input.MoodAfter != nil {
		bath.MoodAfter = *input.MoodAfter
	}
	if input.Notes != nil {
		bath.Notes = *input.Notes
	}
	if err := services.ValidateBath(bath); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Baths.Create(&bath); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(bath)
}

func (handler *Handler) UpdateBath(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	bath, err := handler.repositories.Baths.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, bath.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}

	var input bathInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.Time != nil {
		at, err := services.ParseTimestamp(*input.Time)
		if err != nil {
			return handler.respondServiceError(c, err)
		}
		bath.Time = at
	}
	if input.Duration != nil {
		bath.DurationMinutes = *input.Duration
	}
	if input.ProductsUsed != nil {
		bath.ProductsUsed = *input.ProductsUsed
	}
	if input.WaterTemperature != nil {
		bath.WaterTemperatureC = input.WaterTemperature
	}
	if input.MoodBefore != nil {
		bath.MoodBefore = *input.MoodBefore
	}
	if input.MoodAfter != nil {
		bath.MoodAfter = *input.MoodAfter
	}
	if input.Notes != nil {
		bath.Notes = *input.Notes
	}
	if err := services.ValidateBath(bath); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Baths.Save(&bath); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(bath)
}

func (handler *Handler) DeleteBath(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	bath, err := handler.repositories.Baths.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, bath.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Baths.Delete(id); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) BathStats(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	babyIDs, period, from, to, err := handler.statsWindow(c, user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	baths, err := handler.repositories.Baths.ListInWindow(babyIDs, from, to)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(services.BuildBathStats(period, baths))
}
