package api

import (
	"errors"

	"github.com/cradlehq/cradle/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// respondServiceError maps a policy or persistence error onto the uniform
// JSON error envelope. Unknown errors are logged and become an opaque 500.
func (handler *Handler) respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrBabyNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return apiError(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, services.ErrNotOwned):
		return apiError(c, fiber.StatusForbidden, "forbidden")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apiError(c, fiber.StatusConflict, "already exists")
	case errors.Is(err, services.ErrSleepAlreadyOpen),
		errors.Is(err, services.ErrSleepAlreadyEnded),
		errors.Is(err, services.ErrGrowthDuplicateDay):
		return apiError(c, fiber.StatusConflict, err.Error())
	case isValidationError(err):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		handler.logger.Error("request failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}

var validationErrors = []error{
	services.ErrTimestampInvalid,
	services.ErrTimestampFuture,
	services.ErrFeedTypeInvalid,
	services.ErrFeedingAmountInvalid,
	services.ErrFeedingDurationNegative,
	services.ErrSleepTypeInvalid,
	services.ErrSleepQualityInvalid,
	services.ErrSleepEndNotAfterStart,
	services.ErrDiaperTypeInvalid,
	services.ErrDiaperConsistencyInvalid,
	services.ErrDiaperColorInvalid,
	services.ErrBathDurationInvalid,
	services.ErrCheckupTypeInvalid,
	services.ErrNextAppointmentNotAfterDate,
	services.ErrGrowthNoMeasurement,
	services.ErrGrowthWeightOutOfRange,
	services.ErrGrowthHeightOutOfRange,
	services.ErrGrowthHeadOutOfRange,
	services.ErrGrowthPercentileOutOfRange,
	services.ErrAllergyNameRequired,
	services.ErrAllergySeverityInvalid,
	services.ErrVaccinationNameRequired,
	services.ErrVaccinationStatusInvalid,
	services.ErrMilestoneTitleRequired,
	services.ErrMilestoneCategoryInvalid,
	services.ErrNotificationTitleRequired,
	services.ErrNotificationMessageRequired,
	services.ErrNotificationTypeInvalid,
	services.ErrNotificationPriorityInvalid,
	services.ErrSettingsValueInvalid,
	services.ErrUsernameInvalid,
	services.ErrEmailInvalid,
	services.ErrPasswordMismatch,
	services.ErrPhotoExtensionInvalid,
}

func isValidationError(err error) bool {
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
