package api

import (
	"time"

	"github.com/cradlehq/cradle/internal/models"
	"github.com/cradlehq/cradle/internal/services"
	"github.com/gofiber/fiber/v2"
)

type feedingInput struct {
	BabyID   *uint    `json:"babyId"`
	FeedType *string  `json:"feedType"`
	AmountML *float64 `json:"amount"`
	Duration *float64 `json:"duration"`
	Notes    *string  `json:"notes"`
	Time     *string  `json:"time"`
}

func (handler *Handler) ListFeedings(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	filter, err := handler.buildRecordFilter(c, user.ID, "type")
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	feedings, err := handler.repositories.Feedings.ListFiltered(filter)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(feedings)
}

func (handler *Handler) GetFeeding(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	feeding, err := handler.repositories.Feedings.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, feeding.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(feeding)
}

func (handler *Handler) CreateFeeding(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	var input feedingInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.BabyID == nil || input.FeedType == nil || input.Time == nil {
		return apiError(c, fiber.StatusBadRequest, "babyId, feedType and time are required")
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

	feeding := models.Feeding{
		BabyID:          *input.BabyID,
		FeedType:        *input.FeedType,
		AmountML:        input.AmountML,
		DurationMinutes: input.Duration,
		Time:            at,
	}
	if input.Notes != nil {
		feeding.Notes = *input.Notes
	}
	if err := services.ValidateFeeding(feeding); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Feedings.Create(&feeding); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(feeding)
}

func (handler *Handler) UpdateFeeding(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	feeding, err := handler.repositories.Feedings.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, feeding.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}

	var input feedingInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.FeedType != nil {
		feeding.FeedType = *input.FeedType
	}
	if input.AmountML != nil {
		feeding.AmountML = input.AmountML
	}
	if input.Duration != nil {
		feeding.DurationMinutes = input.Duration
	}
	if input.Notes != nil {
		feeding.Notes = *input.Notes
	}
	if input.Time != nil {
		at, err := services.ParseTimestamp(*input.Time)
		if err != nil {
			return handler.respondServiceError(c, err)
		}
		if err := services.ValidateNotFuture(at, time.Now()); err != nil {
			return handler.respondServiceError(c, err)
		}
		feeding.Time = at
	}
	if err := services.ValidateFeeding(feeding); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Feedings.Save(&feeding); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(feeding)
}

func (handler *Handler) DeleteFeeding(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	feeding, err := handler.repositories.Feedings.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, feeding.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Feedings.Delete(id); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) FeedingStats(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	babyIDs, period, from, to, err := handler.statsWindow(c, user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	feedings, err := handler.repositories.Feedings.ListInWindow(babyIDs, from, to)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(services.BuildFeedingStats(period, feedings))
}
