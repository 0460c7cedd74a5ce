package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/shopexperts/rewards/internal/constants"
	"github.com/shopexperts/rewards/internal/service"
)

func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"code":    constants.ErrCodeValidationFailed,
				"message": fiberErr.Message,
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal server error",
			"message": "Could not process the request",
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	statusMap := map[string]int{
		constants.ErrCodeAccountExists:       fiber.StatusConflict,
		constants.ErrCodeAccountNotFound:     fiber.StatusNotFound,
		constants.ErrCodeUserNotFound:        fiber.StatusNotFound,
		constants.ErrCodeInvalidAmount:       fiber.StatusBadRequest,
		constants.ErrCodeInsufficientPoints:  fiber.StatusConflict,
		constants.ErrCodeReferralCodeFormat:  fiber.StatusBadRequest,
		constants.ErrCodeInvalidReferralCode: fiber.StatusBadRequest,
		constants.ErrCodeSelfReferral:        fiber.StatusBadRequest,
		constants.ErrCodeOperationFailed:     fiber.StatusInternalServerError,
	}

	status, ok := statusMap[err.Code]
	if !ok {
		status = fiber.StatusInternalServerError
	}

	return c.Status(status).JSON(fiber.Map{
		"code":    err.Code,
		"message": constants.GetErrorMessage(err.Code),
	})
}
