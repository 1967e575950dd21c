package api

import (
	"github.com/cradlehq/cradle/internal/models"
	"github.com/cradlehq/cradle/internal/services"
	"github.com/gofiber/fiber/v2"
)

type milestoneInput struct {
	BabyID      *uint   `json:"babyId"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Category    *string `json:"category"`
	Achieved    *bool   `json:"achieved"`
}

func (handler *Handler) ListMilestones(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	filter, err := handler.buildRecordFilter(c, user.ID, "category")
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	milestones, err := handler.repositories.Milestones.ListFiltered(filter)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(milestones)
}

func (handler *Handler) GetMilestone(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	milestone, err := handler.repositories.Milestones.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, milestone.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(milestone)
}

func (handler *Handler) CreateMilestone(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	var input milestoneInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.BabyID == nil || input.Title == nil {
		return apiError(c, fiber.StatusBadRequest, "babyId and title are required")
	}
	if _, err := handler.ownership.ResolveOwnedBaby(user.ID, *input.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}

	milestone := models.Milestone{
		BabyID:   *input.BabyID,
		Title:    *input.Title,
		Category: models.MilestoneCategoryGeneral,
	}
	if input.Description != nil {
		milestone.Description = *input.Description
	}
	if input.Category != nil {
		milestone.Category = *input.Category
	}
	if input.Achieved != nil {
		milestone.Achieved = *input.Achieved
	}
	if input.Date != nil {
		date, err := services.ParseTimestamp(*input.Date)
		if err != nil {
			return handler.respondServiceError(c, err)
		}
		milestone.Date = &date
	}
	if err := services.ValidateMilestone(milestone); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Milestones.Create(&milestone); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(milestone)
}

func (handler *Handler) UpdateMilestone(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	milestone, err := handler.repositories.Milestones.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, milestone.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}

	var input milestoneInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.Title != nil {
		milestone.Title = *input.Title
	}
	if input.Description != nil {
		milestone.Description = *input.Description
	}
	if input.Category != nil {
		milestone.Category = *input.Category
	}
	if input.Achieved != nil {
		milestone.Achieved = *input.Achieved
	}
	if input.Date != nil {
		date, err := services.ParseTimestamp(*input.Date)
		if err != nil {
			return handler.respondServiceError(c, err)
		}
		milestone.Date = &date
	}
	if err := services.ValidateMilestone(milestone); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Milestones.Save(&milestone); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(milestone)
}

func (handler *Handler) DeleteMilestone(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	milestone, err := handler.repositories.Milestones.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, milestone.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Milestones.Delete(id); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
