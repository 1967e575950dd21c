package api

import (
	"github.com/cradlehq/cradle/internal/models"
	"github.com/cradlehq/cradle/internal/services"
	"github.com/gofiber/fiber/v2"
)

type allergyInput struct {
	BabyID        *uint   `json:"babyId"`
	Name          *string `json:"name"`
	Severity      *string `json:"severity"`
	Reaction      *string `json:"reaction"`
	Notes         *string `json:"notes"`
	DiagnosedDate *string `json:"diagnosedDate"`
}

func (handler *Handler) ListAllergies(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	filter, err := handler.buildRecordFilter(c, user.ID, "severity")
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	allergies, err := handler.repositories.Allergies.ListFiltered(filter)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(allergies)
}

func (handler *Handler) GetAllergy(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	allergy, err := handler.repositories.Allergies.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, allergy.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(allergy)
}

func (handler *Handler) CreateAllergy(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	var input allergyInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.BabyID == nil || input.Name == nil || input.Severity == nil {
		return apiError(c, fiber.StatusBadRequest, "babyId, name and severity are required")
	}
	if _, err := handler.ownership.ResolveOwnedBaby(user.ID, *input.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}

	allergy := models.Allergy{
		BabyID:   *input.BabyID,
		Name:     *input.Name,
		Severity: *input.Severity,
	}
	if input.Reaction != nil {
		allergy.Reaction = *input.Reaction
	}
	if input.Notes != nil {
		allergy.Notes = *input.Notes
	}
	if input.DiagnosedDate != nil {
		diagnosed, err := services.ParseTimestamp(*input.DiagnosedDate)
		if err != nil {
			return handler.respondServiceError(c, err)
		}
		allergy.DiagnosedDate = &diagnosed
	}
	if err := services.ValidateAllergy(allergy); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Allergies.Create(&allergy); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(allergy)
}

func (handler *Handler) UpdateAllergy(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	allergy, err := handler.repositories.Allergies.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, allergy.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}

	var input allergyInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.Name != nil {
		allergy.Name = *input.Name
	}
	if input.Severity != nil {
		allergy.Severity = *input.Severity
	}
	if input.Reaction != nil {
		allergy.Reaction = *input.Reaction
	}
	if input.Notes != nil {
		allergy.Notes = *input.Notes
	}
	if input.DiagnosedDate != nil {
		diagnosed, err := services.ParseTimestamp(*input.DiagnosedDate)
		if err != nil {
			return handler.respondServiceError(c, err)
		}
		allergy.DiagnosedDate = &diagnosed
	}
	if err := services.ValidateAllergy(allergy); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Allergies.Save(&allergy); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(allergy)
}

func (handler *Handler) DeleteAllergy(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	allergy, err := handler.repositories.Allergies.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, allergy.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Allergies.Delete(id); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// AllergyStats is not windowed by period; allergies are a living list, not
// an event log.
func (handler *Handler) AllergyStats(c *fiber.Ctx) error {
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
	allergies, err := handler.repositories.Allergies.ListByBabies(ownedIDs)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(services.BuildAllergyStats(allergies))
}
