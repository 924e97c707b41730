package controllers

import (
	"errors"

	"project/backend/services"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// serviceError maps engine failures onto HTTP statuses.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrAlreadyEnrolled):
		return utils.Error(c, fiber.StatusConflict, err)
	case errors.Is(err, services.ErrCourseUnavailable):
		return utils.Error(c, fiber.StatusUnprocessableEntity, err)
	case errors.Is(err, services.ErrNotEnrolled),
		errors.Is(err, services.ErrLessonNotFound),
		errors.Is(err, services.ErrNotFound):
		return utils.Error(c, fiber.StatusNotFound, err)
	case errors.Is(err, services.ErrForbidden):
		return utils.Error(c, fiber.StatusForbidden, err)
	case errors.Is(err, services.ErrInvalidArgument):
		return utils.Error(c, fiber.StatusBadRequest, err)
	case errors.Is(err, services.ErrConflict):
		return utils.Error(c, fiber.StatusConflict, err)
	default:
		return utils.Error(c, fiber.StatusInternalServerError, err)
	}
}
