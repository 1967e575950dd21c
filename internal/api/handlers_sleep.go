package api

import (
	"github.com/cradlehq/cradle/internal/models"
	"github.com/cradlehq/cradle/internal/services"
	"github.com/gofiber/fiber/v2"
)

type sleepInput struct {
	BabyID    *uint   `json:"babyId"`
	SleepType *string `json:"sleepType"`
	Quality   *string `json:"quality"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Notes     *string `json:"notes"`
}

type endSleepInput struct {
	EndTime *string `json:"endTime"`
	Quality *string `json:"quality"`
}

func (handler *Handler) ListSleeps(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	filter, err := handler.buildRecordFilter(c, user.ID, "type")
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	sleeps, err := handler.repositories.Sleeps.ListFiltered(filter)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(sleeps)
}

func (handler *Handler) GetSleep(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	sleep, err := handler.repositories.Sleeps.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, sleep.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(sleep)
}

// CurrentSleep returns the caller's open session across all owned babies,
// or null when everything is closed.
func (handler *Handler) CurrentSleep(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	ownedIDs, err := handler.ownership.OwnedBabyIDs(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if babyID := parseUintQuery(c, "babyId"); babyID != nil {
		for _, owned := range ownedIDs {
			if owned == *babyID {
				ownedIDs = []uint{*babyID}
				break
			}
		}
	}
	sleep, err := handler.repositories.Sleeps.FindOpenForBabies(ownedIDs)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(sleep)
}

func (handler *Handler) CreateSleep(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	var input sleepInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.BabyID == nil || input.SleepType == nil || input.StartTime == nil {
		return apiError(c, fiber.StatusBadRequest, "babyId, sleepType and startTime are required")
	}
	if _, err := handler.ownership.ResolveOwnedBaby(user.ID, *input.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}

	start, err := services.ParseTimestamp(*input.StartTime)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	sleep := models.Sleep{
		BabyID:    *input.BabyID,
		SleepType: *input.SleepType,
		StartTime: start,
	}
	if input.Quality != nil {
		sleep.Quality = *input.Quality
	}
	if input.Notes != nil {
		sleep.Notes = *input.Notes
	}
	if input.EndTime != nil {
		end, err := services.ParseTimestamp(*input.EndTime)
		if err != nil {
			return handler.respondServiceError(c, err)
		}
		duration := services.DeriveSleepDuration(start, end)
		sleep.EndTime = &end
		sleep.DurationMinutes = &duration
	} else {
		open, err := handler.repositories.Sleeps.FindOpenByBaby(*input.BabyID)
		if err != nil {
			return handler.respondServiceError(c, err)
		}
		if open != nil {
			return handler.respondServiceError(c, services.ErrSleepAlreadyOpen)
		}
	}

	if err := services.ValidateSleep(sleep); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Sleeps.Create(&sleep); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sleep)
}

// EndSleep closes an open session; the duration is derived server side.
func (handler *Handler) EndSleep(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	sleep, err := handler.repositories.Sleeps.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, sleep.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}

	var input endSleepInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.EndTime == nil {
		return apiError(c, fiber.StatusBadRequest, "endTime is required")
	}
	end, err := services.ParseTimestamp(*input.EndTime)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := services.CloseSleep(&sleep, end); err != nil {
		return handler.respondServiceError(c, err)
	}
	if input.Quality != nil {
		sleep.Quality = *input.Quality
	}
	if err := services.ValidateSleep(sleep); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Sleeps.Save(&sleep); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(sleep)
}

func (handler *Handler) UpdateSleep(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	sleep, err := handler.repositories.Sleeps.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, sleep.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}

	var input sleepInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.SleepType != nil {
		sleep.SleepType = *input.SleepType
	}
	if input.Quality != nil {
		sleep.Quality = *input.Quality
	}
	if input.Notes != nil {
		sleep.Notes = *input.Notes
	}
	if input.StartTime != nil {
		start, err := services.ParseTimestamp(*input.StartTime)
		if err != nil {
			return handler.respondServiceError(c, err)
		}
		sleep.StartTime = start
	}
	if input.EndTime != nil {
		end, err := services.ParseTimestamp(*input.EndTime)
		if err != nil {
			return handler.respondServiceError(c, err)
		}
		sleep.EndTime = &end
	}
	if sleep.EndTime != nil {
		duration := services.DeriveSleepDuration(sleep.StartTime, *sleep.EndTime)
		sleep.DurationMinutes = &duration
	}
	if err := services.ValidateSleep(sleep); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Sleeps.Save(&sleep); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(sleep)
}

func (handler *Handler) DeleteSleep(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	sleep, err := handler.repositories.Sleeps.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, sleep.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Sleeps.Delete(id); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) SleepStats(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	babyIDs, period, from, to, err := handler.statsWindow(c, user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	sleeps, err := handler.repositories.Sleeps.ListInWindow(babyIDs, from, to)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(services.BuildSleepStats(period, sleeps))
}
