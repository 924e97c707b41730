package controllers

import (
	"strconv"

	"project/backend/config"
	"project/backend/services"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ProgressController struct {
	Service *services.ProgressService
	Cfg     *config.Config
}

func NewProgressController(service *services.ProgressService, cfg *config.Config) *ProgressController {
	return &ProgressController{Service: service, Cfg: cfg}
}

// UpdateLessonProgress records a completion toggle plus a time-spent
// increment for the lesson in the path.
func (pc *ProgressController) UpdateLessonProgress(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson ID")
	}

	var input struct {
		Completed bool  `json:"completed"`
		TimeSpent int64 `json:"time_spent"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	enrollment, err := pc.Service.RecordLessonCompletion(uint(lessonID), userID, input.Completed, input.TimeSpent)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, enrollment)
}

// RecordTime adds time spent on a lesson without touching its
// completion state.
func (pc *ProgressController) RecordTime(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson ID")
	}

	var input struct {
		TimeSpent int64 `json:"time_spent"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	enrollment, err := pc.Service.RecordTime(uint(lessonID), userID, input.TimeSpent)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, enrollment)
}

// GetCourseProgress returns the enrollment aggregate for a course.
func (pc *ProgressController) GetCourseProgress(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	enrollment, err := pc.Service.GetCourseProgress(uint(courseID), userID)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, enrollment)
}

// GetDetailedCourseProgress returns the annotated chapter/lesson tree.
func (pc *ProgressController) GetDetailedCourseProgress(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	detail, err := pc.Service.GetDetailedCourseProgress(uint(courseID), userID)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, detail)
}
