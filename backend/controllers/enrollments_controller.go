package controllers

import (
	"strconv"

	"project/backend/config"
	"project/backend/services"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type EnrollmentsController struct {
	Service *services.EnrollmentService
	Cfg     *config.Config
}

func NewEnrollmentsController(service *services.EnrollmentService, cfg *config.Config) *EnrollmentsController {
	return &EnrollmentsController{Service: service, Cfg: cfg}
}

// Enroll enrolls the authenticated user into the course from the path.
func (ec *EnrollmentsController) Enroll(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	enrollment, err := ec.Service.Enroll(userID, uint(courseID))
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Created(c, enrollment)
}

// Cancel removes the authenticated user's own enrollment.
func (ec *EnrollmentsController) Cancel(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	enrollmentID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid enrollment ID")
	}

	if err := ec.Service.Cancel(uint(enrollmentID), userID); err != nil {
		return serviceError(c, err)
	}

	return utils.NoContent(c)
}

// List returns the authenticated user's enrollments, most recently
// active first.
func (ec *EnrollmentsController) List(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	enrollments, err := ec.Service.ListByUser(userID)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, enrollments)
}
