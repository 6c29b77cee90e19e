package controllers

import (
	"questboard/backend/services"
	"questboard/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type StatsController struct {
	Stats *services.StatsService
}

func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{Stats: stats}
}

// UserRate godoc
// @Summary Task completion rate of a user
// @Tags stats
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} utils.SuccessResponse
// @Router /rate/{user_id} [get]
func (sc *StatsController) UserRate(c *fiber.Ctx) error {
	userID, err := utils.ParamID(c, "user_id")
	if err != nil {
		return err
	}
	rate, err := sc.Stats.UserCompletionRate(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return utils.OK(c, fiber.Map{"user_id": userID, "rate": rate})
}

// GlobalRate godoc
// @Summary Task completion rate over all users
// @Tags stats
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /rate [get]
func (sc *StatsController) GlobalRate(c *fiber.Ctx) error {
	rate, err := sc.Stats.GlobalCompletionRate(c.UserContext())
	if err != nil {
		return err
	}
	return utils.OK(c, fiber.Map{"rate": rate})
}
