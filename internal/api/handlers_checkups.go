package api

import (
	"time"

	"github.com/cradlehq/cradle/internal/models"
	"github.com/cradlehq/cradle/internal/services"
	"github.com/gofiber/fiber/v2"
)

type checkupInput struct {
	BabyID          *uint   `json:"babyId"`
	CheckupType     *string `json:"checkupType"`
	DoctorName      *string `json:"doctorName"`
	Reason          *string `json:"reason"`
	Date            *string `json:"date"`
	NextAppointment *string `json:"nextAppointment"`
	Notes           *string `json:"notes"`
}

func (handler *Handler) ListCheckups(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	filter, err := handler.buildRecordFilter(c, user.ID, "type")
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	checkups, err := handler.repositories.Checkups.ListFiltered(filter)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(checkups)
}

func (handler *Handler) GetCheckup(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	checkup, err := handler.repositories.Checkups.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, checkup.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(checkup)
}

// UpcomingCheckups lists the caller's future follow-up appointments,
// soonest first.
func (handler *Handler) UpcomingCheckups(c *fiber.Ctx) error {
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
	checkups, err := handler.repositories.Checkups.ListUpcoming(ownedIDs, time.Now())
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(checkups)
}

func (handler *Handler) CreateCheckup(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	var input checkupInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.BabyID == nil || input.CheckupType == nil || input.Date == nil {
		return apiError(c, fiber.StatusBadRequest, "babyId, checkupType and date are required")
	}
	if _, err := handler.ownership.ResolveOwnedBaby(user.ID, *input.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}

	date, err := services.ParseTimestamp(*input.Date)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	checkup := models.Checkup{
		BabyID:      *input.BabyID,
		CheckupType: *input.CheckupType,
		Date:        date,
	}
	if input.DoctorName != nil {
		checkup.DoctorName = *input.DoctorName
	}
	if input.Reason != nil {
		checkup.Reason = *input.Reason
	}
	if input.Notes != nil {
		checkup.Notes = *input.Notes
	}
	if input.NextAppointment != nil {
		next, err := services.ParseTimestamp(*input.NextAppointment)
		if err != nil {
			return handler.respondServiceError(c, err)
		}
		checkup.NextAppointment = &next
	}
	if err := services.ValidateCheckup(checkup); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Checkups.Create(&checkup); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(checkup)
}

func (handler *Handler) UpdateCheckup(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	checkup, err := handler.repositories.Checkups.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, checkup.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}

	var input checkupInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.CheckupType != nil {
		checkup.CheckupType = *input.CheckupType
	}
	if input.DoctorName != nil {
		checkup.DoctorName = *input.DoctorName
	}
	if input.Reason != nil {
		checkup.Reason = *input.Reason
	}
	if input.Notes != nil {
		checkup.Notes = *input.Notes
	}
	if input.Date != nil {
		date, err := services.ParseTimestamp(*input.Date)
		if err != nil {
			return handler.respondServiceError(c, err)
		}
		checkup.Date = date
	}
	if input.NextAppointment != nil {
		next, err := services.ParseTimestamp(*input.NextAppointment)
		if err != nil {
			return handler.respondServiceError(c, err)
		}
		checkup.NextAppointment = &next
	}
	if err := services.ValidateCheckup(checkup); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Checkups.Save(&checkup); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(checkup)
}

func (handler *Handler) DeleteCheckup(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	checkup, err := handler.repositories.Checkups.FindByID(id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.ownership.CheckRecordAccess(user.ID, checkup.BabyID); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Checkups.Delete(id); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) CheckupStats(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	babyIDs, period, from, to, err := handler.statsWindow(c, user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	checkups, err := handler.repositories.Checkups.ListInWindow(babyIDs, from, to)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(services.BuildCheckupStats(period, checkups))
}
