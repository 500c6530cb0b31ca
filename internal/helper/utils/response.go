package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mplarena/registration_service/internal/domain"
)

func ResponseError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}

func ResponseSuccess(ctx *fiber.Ctx, status int, data interface{}) error {
	return ctx.Status(status).JSON(fiber.Map{"data": data})
}

// ResponseDomainError translates the registration error taxonomy into an
// HTTP status so handlers stay thin.
func ResponseDomainError(ctx *fiber.Ctx, err error) error {
	var missing *domain.MissingFieldError
	var duplicate *domain.DuplicateKeyError
	var badType *domain.InvalidAttachmentTypeError
	var tooLarge *domain.AttachmentTooLargeError

	switch {
	case errors.As(err, &missing), errors.As(err, &badType), errors.As(err, &tooLarge):
		return ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	case errors.As(err, &duplicate):
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
			"key":   duplicate.Key,
		})
	case errors.Is(err, domain.ErrPlayerNotFound):
		return ResponseError(ctx, fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		return ResponseError(ctx, fiber.StatusConflict, err.Error())
	default:
		return ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
}
