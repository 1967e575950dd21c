package api

import (
	"github.com/cradlehq/cradle/internal/models"
	"github.com/cradlehq/cradle/internal/services"
	"github.com/gofiber/fiber/v2"
)

type vaccinationInput struct {
	BabyID      *uint   `json:"babyId"`
	Name        *string `json:"name"`
	Date        *string `json:"date"`
	NextDueDate *string `json:"nextDueDate"`
	Status      *string `json:"status"`
	Notes       *string `json:"notes"`
}

func (handler *Handler) ListVaccinations(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	filter, err := handler.buildRecordFilter(c, user.ID, "status")
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	vaccinations, err := handler.repositories.Vaccinations.ListFiltered(filter)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(vaccinations)
}

func (handler *Handler) GetVaccination(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	vaccination, err := handler.repositories.Vaccinations.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, vaccination.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(vaccination)
}

func (handler *Handler) CreateVaccination(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	var input vaccinationInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.BabyID == nil || input.Name == nil {
		return apiError(c, fiber.StatusBadRequest, "babyId and name are required")
	}
	if _, err := handler.ownership.ResolveOwnedBaby(user.ID, *input.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}

	vaccination := models.Vaccination{
		BabyID: *input.BabyID,
		Name:   *input.Name,
		Status: models.VaccinationStatusPending,
	}
	if input.Status != nil {
		vaccination.Status = *input.Status
	}
	if input.Notes != nil {
		vaccination.Notes = *input.Notes
	}
	if input.Date != nil {
		date, err := services.ParseTimestamp(*input.Date)
		if err != nil {
			return handler.respondServiceError(c, err)
		}
		vaccination.Date = &date
	}
	if input.NextDueDate != nil {
		next, err := services.ParseTimestamp(*input.NextDueDate)
		if err != nil {
			return handler.respondServiceError(c, err)
		}
		vaccination.NextDueDate = &next
	}
	if err := services.ValidateVaccination(vaccination); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Vaccinations.Create(&vaccination); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(vaccination)
}

func (handler *Handler) UpdateVaccination(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	vaccination, err := handler.repositories.Vaccinations.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, vaccination.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}

	var input vaccinationInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.Name != nil {
		vaccination.Name = *input.Name
	}
	if input.Status != nil {
		vaccination.Status = *input.Status
	}
	if input.Notes != nil {
		vaccination.Notes = *input.Notes
	}
	if input.Date != nil {
		date, err := services.ParseTimestamp(*input.Date)
		if err != nil {
			return handler.respondServiceError(c, err)
		}
		vaccination.Date = &date
	}
	if input.NextDueDate != nil {
		next, err := services.ParseTimestamp(*input.NextDueDate)
		if err != nil {
			return handler.respondServiceError(c, err)
		}
		vaccination.NextDueDate = &next
	}
	if err := services.ValidateVaccination(vaccination); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Vaccinations.Save(&vaccination); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(vaccination)
}

func (handler *Handler) DeleteVaccination(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	vaccination, err := handler.repositories.Vaccinations.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, vaccination.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Vaccinations.Delete(id); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
