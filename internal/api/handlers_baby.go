package api

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cradlehq/cradle/internal/models"
	"github.com/cradlehq/cradle/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const babyPhotoURLPrefix = "/uploads/baby_photos/"

type babyInput struct {
	Name              *string  `json:"name"`
	DateOfBirth       *string  `json:"dateOfBirth"`
	Gender            *string  `json:"gender"`
	WeightKG          *float64 `json:"weight"`
	HeightCM          *float64 `json:"height"`
	HeadCircumference *float64 `json:"headCircumference"`
	Notes             *string  `json:"notes"`
}

type percentileInput struct {
	AgeInMonths *int     `json:"ageInMonths"`
	WeightKG    *float64 `json:"weight"`
	HeightCM    *float64 `json:"height"`
}

// babyView is the wire shape of a profile: model fields plus the served
// photo URL.
func babyView(baby models.BabyProfile) fiber.Map {
	view := fiber.Map{
		"id":          baby.ID,
		"name":        baby.Name,
		"dateOfBirth": baby.DateOfBirth,
		"gender":      baby.Gender,
		"notes":       baby.Notes,
		"createdAt":   baby.CreatedAt,
		"updatedAt":   baby.UpdatedAt,
	}
	if baby.WeightKG != nil {
		view["weight"] = *baby.WeightKG
	}
	if baby.HeightCM != nil {
		view["height"] = *baby.HeightCM
	}
	if baby.HeadCircumferenceCM != nil {
		view["headCircumference"] = *baby.HeadCircumferenceCM
	}
	if baby.Photo != "" {
		view["photoUrl"] = babyPhotoURLPrefix + baby.Photo
	}
	return view
}

func (handler *Handler) ListBabies(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	babies, err := handler.repositories.Babies.ListByUser(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	views := make([]fiber.Map, 0, len(babies))
	for _, baby := range babies {
		views = append(views, babyView(baby))
	}
	return c.JSON(views)
}

func (handler *Handler) GetBaby(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	baby, err := handler.ownership.ResolveOwnedBaby(user.ID, id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(babyView(baby))
}

// CreateBaby accepts JSON or multipart form data; the multipart path may
// carry the photo in the same request.
func (handler *Handler) CreateBaby(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}

	var input babyInput
	var photo *multipart.FileHeader
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		input = babyInputFromForm(c)
		photo, _ = c.FormFile("photo")
	} else if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if input.Name == nil || strings.TrimSpace(*input.Name) == "" || input.DateOfBirth == nil {
		return apiError(c, fiber.StatusBadRequest, "name and dateOfBirth are required")
	}
	dateOfBirth, err := services.ParseTimestamp(*input.DateOfBirth)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid dateOfBirth")
	}

	name := strings.TrimSpace(*input.Name)
	// Pre-check before any photo lands on disk; the unique index still
	// backstops concurrent creates.
	taken, err := handler.repositories.Babies.ExistsByUserAndName(user.ID, name)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if taken {
		return apiError(c, fiber.StatusConflict, "a baby with that name already exists")
	}

	baby := models.BabyProfile{
		UserID:              user.ID,
		Name:                name,
		DateOfBirth:         dateOfBirth,
		WeightKG:            input.WeightKG,
		HeightCM:            input.HeightCM,
		HeadCircumferenceCM: input.HeadCircumference,
	}
	if input.Gender != nil {
		if !models.IsValidGender(*input.Gender) {
			return apiError(c, fiber.StatusBadRequest, "invalid gender")
		}
		baby.Gender = *input.Gender
	}
	if input.Notes != nil {
		baby.Notes = *input.Notes
	}

	if photo != nil {
		filename, err := handler.storeBabyPhoto(c, photo)
		if err != nil {
			return handler.respondServiceError(c, err)
		}
		baby.Photo = filename
	}

	if err := handler.repositories.Babies.Create(&baby); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apiError(c, fiber.StatusConflict, "a baby with that name already exists")
		}
		return handler.respondServiceError(c, err)
	}
	handler.logger.Info("baby profile created", zapUserID(user.ID), zap.Uint("baby_id", baby.ID))
	return c.Status(fiber.StatusCreated).JSON(babyView(baby))
}

func (handler *Handler) UpdateBaby(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	baby, err := handler.ownership.ResolveOwnedBaby(user.ID, id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	var input babyInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return apiError(c, fiber.StatusBadRequest, "name cannot be empty")
		}
		baby.Name = name
	}
	if input.DateOfBirth != nil {
		dateOfBirth, err := services.ParseTimestamp(*input.DateOfBirth)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid dateOfBirth")
		}
		baby.DateOfBirth = dateOfBirth
	}
	if input.Gender != nil {
		if !models.IsValidGender(*input.Gender) {
			return apiError(c, fiber.StatusBadRequest, "invalid gender")
		}
		baby.Gender = *input.Gender
	}
	if input.WeightKG != nil {
		baby.WeightKG = input.WeightKG
	}
	if input.HeightCM != nil {
		baby.HeightCM = input.HeightCM
	}
	if input.HeadCircumference != nil {
		baby.HeadCircumferenceCM = input.HeadCircumference
	}
	if input.Notes != nil {
		baby.Notes = *input.Notes
	}

	if err := handler.repositories.Babies.Save(&baby); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apiError(c, fiber.StatusConflict, "a baby with that name already exists")
		}
		return handler.respondServiceError(c, err)
	}
	return c.JSON(babyView(baby))
}

// DeleteBaby removes the profile and every event record hanging off it in
// one transaction.
func (handler *Handler) DeleteBaby(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	baby, err := handler.ownership.ResolveOwnedBaby(user.ID, id)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repositories.Babies.DeleteCascade(baby.ID); err != nil {
		return handler.respondServiceError(c, err)
	}
	if baby.Photo != "" {
		handler.removeStoredPhoto(baby.Photo)
	}
	handler.logger.Info("baby profile deleted", zapUserID(user.ID), zap.Uint("baby_id", baby.ID))
	return c.JSON(fiber.Map{"ok": true})
}

// UploadBabyPhoto replaces the stored photo and removes the old file.
func (handler *Handler) UploadBabyPhoto(c *fiber.Ctx) error {
	user, err := currentUserOrUnauthorized(c)
	if err != nil {
		return err
	}

	babyIDRaw := c.FormValue("babyId")
	babyID, parseErr := strconv.ParseUint(babyIDRaw, 10, 64)
	if parseErr != nil || babyID == 0 {
		return apiError(c, fiber.StatusBadRequest, "babyId is required")
	}
	baby, err := handler.ownership.ResolveOwnedBaby(user.ID, uint(babyID))
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	photo, err := c.FormFile("photo")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "photo file is required")
	}
	filename, err := handler.storeBabyPhoto(c, photo)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	previous := baby.Photo
	baby.Photo = filename
	if err := handler.repositories.Babies.Save(&baby); err != nil {
		handler.removeStoredPhoto(filename)
		return handler.respondServiceError(c, err)
	}
	if previous != "" {
		handler.removeStoredPhoto(previous)
	}
	return c.JSON(fiber.Map{"photoUrl": babyPhotoURLPrefix + filename})
}

func (handler *Handler) CalculatePercentile(c *fiber.Ctx) error {
	if _, err := currentUserOrUnauthorized(c); err != nil {
		return err
	}
	var input percentileInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.WeightKG == nil && input.HeightCM == nil {
		return apiError(c, fiber.StatusBadRequest, "weight or height is required")
	}
	if input.AgeInMonths == nil {
		return apiError(c, fiber.StatusBadRequest, "ageInMonths is required")
	}
	return c.JSON(services.EstimatePercentiles(*input.AgeInMonths, input.WeightKG, input.HeightCM))
}

func (handler *Handler) storeBabyPhoto(c *fiber.Ctx, photo *multipart.FileHeader) (string, error) {
	filename, err := services.BuildPhotoFilename(photo.Filename)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(handler.uploadDir, 0o755); err != nil {
		return "", err
	}
	if err := c.SaveFile(photo, filepath.Join(handler.uploadDir, filename)); err != nil {
		return "", err
	}
	return filename, nil
}

func (handler *Handler) removeStoredPhoto(filename string) {
	if err := os.Remove(filepath.Join(handler.uploadDir, filename)); err != nil && !os.IsNotExist(err) {
		handler.logger.Warn("stale photo not removed", zap.String("photo", filename), zap.Error(err))
	}
}

func babyInputFromForm(c *fiber.Ctx) babyInput {
	var input babyInput
	if value := c.FormValue("name"); value != "" {
		input.Name = &value
	}
	if value := c.FormValue("dateOfBirth"); value != "" {
		input.DateOfBirth = &value
	}
	if value := c.FormValue("gender"); value != "" {
		input.Gender = &value
	}
	if value := c.FormValue("notes"); value != "" {
		input.Notes = &value
	}
	for name, target := range map[string]**float64{
		"weight":            &input.WeightKG,
		"height":            &input.HeightCM,
		"headCircumference": &input.HeadCircumference,
	} {
		if value := c.FormValue(name); value != "" {
			if parsed, err := strconv.ParseFloat(value, 64); err == nil {
				*target = &parsed
			}
		}
	}
	return input
}
