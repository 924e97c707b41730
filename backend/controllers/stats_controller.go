package controllers

import (
	"project/backend/config"
	"project/backend/services"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type StatsController struct {
	Service *services.StatsService
	Cfg     *config.Config
}

func NewStatsController(service *services.StatsService, cfg *config.Config) *StatsController {
	return &StatsController{Service: service, Cfg: cfg}
}

// GetLearningStats returns the dashboard roll-up for the authenticated
// user.
func (sc *StatsController) GetLearningStats(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	stats, err := sc.Service.LearningStats(userID)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, stats)
}
