package controllers

import (
	"project/backend/config"
	"project/backend/services"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
)

const defaultRecommendationLimit = 5

type RecommendationsController struct {
	Service *services.RecommendationService
	Cfg     *config.Config
}

func NewRecommendationsController(service *services.RecommendationService, cfg *config.Config) *RecommendationsController {
	return &RecommendationsController{Service: service, Cfg: cfg}
}

// NextLesson suggests the lesson to resume. Data is null when there is
// nothing to recommend.
func (rc *RecommendationsController) NextLesson(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	recommendation, err := rc.Service.NextLesson(userID)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, recommendation)
}

// Courses suggests published courses sharing skills with the user's
// completed ones.
func (rc *RecommendationsController) Courses(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	limit := c.QueryInt("limit", defaultRecommendationLimit)

	recommendations, err := rc.Service.RecommendCourses(userID, limit)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, recommendations)
}
