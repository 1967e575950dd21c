package api

import (
	"github.com/cradlehq/cradle/internal/models"
	"github.com/cradlehq/cradle/internal/services"
	"github.com/gofiber/fiber/v2"
)

type growthInput struct {
	BabyID            *uint    `json:"babyId"`
	Date              *string  `json:"date"`
	WeightKG          *float64 `json:"weight"`
	HeightCM          *float64 `json:"height"`
	HeadCircumference *float64 `json:"headCircumference"`
	WeightPercentile  *float64 `json:"weightPercentile"`
	HeightPercentile  *float64 `json:"heightPercentile"`
	Notes             *string  `json:"notes"`
}

func (handler *Handler) ListGrowth(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	filter, err := handler.buildRecordFilter(c, user.ID, "")
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	growths, err := handler.repositories.Growth.ListFiltered(filter)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(growths)
}

func (handler *Handler) GetGrowth(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	growth, err := handler.repositories.Growth.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, growth.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(growth)
}

// CreateGrowth stores one measurement per baby per calendar day; the
// unique index turns a second write for the same day into a 409.
func (handler *Handler) CreateGrowth(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	var input growthInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.BabyID == nil || input.Date == nil {
		return apiError(c, fiber.StatusBadRequest, "babyId and date are required")
	}
	if _, err := handler.ownership.ResolveOwnedBaby(user.ID, *input.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}

	date, err := services.ParseTimestamp(*input.Date)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	growth := models.Growth{
		BabyID:              *input.BabyID,
		Date:                services.DayOf(date),
		WeightKG:            input.WeightKG,
		HeightCM:            input.HeightCM,
		HeadCircumferenceCM: input.HeadCircumference,
		WeightPercentile:    input.WeightPercentile,
		HeightPercentile:    input.HeightPercentile,
	}
	if input.Notes != nil {
		growth.Notes = *input.Notes
	}
	if err := services.ValidateGrowth(growth); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Growth.Create(&growth); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(growth)
}

func (handler *Handler) UpdateGrowth(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	growth, err := handler.repositories.Growth.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, growth.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}

	var input growthInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.Date != nil {
		date, err := services.ParseTimestamp(*input.Date)
		if err != nil {
			return handler.respondServiceError(c, err)
		}
		growth.Date = services.DayOf(date)
	}
	if input.WeightKG != nil {
		growth.WeightKG = input.WeightKG
	}
	if input.HeightCM != nil {
		growth.HeightCM = input.HeightCM
	}
	if input.HeadCircumference != nil {
		growth.HeadCircumferenceCM = input.HeadCircumference
	}
	if input.WeightPercentile != nil {
		growth.WeightPercentile = input.WeightPercentile
	}
	if input.HeightPercentile != nil {
		growth.HeightPercentile = input.HeightPercentile
	}
	if input.Notes != nil {
		growth.Notes = *input.Notes
	}
	if err := services.ValidateGrowth(growth); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Growth.Save(&growth); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(growth)
}

func (handler *Handler) DeleteGrowth(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	growth, err := handler.repositories.Growth.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, growth.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Growth.Delete(id); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
