package controllers

import (
	"questboard/backend/services"
	"questboard/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type QuestController struct {
	Quests *services.QuestService
}

func NewQuestController(quests *services.QuestService) *QuestController {
	return &QuestController{Quests: quests}
}

// ListQuests godoc
// @Summary Quest catalogue
// @Tags quests
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /quests [get]
func (qc *QuestController) ListQuests(c *fiber.Ctx) error {
	quests, err := qc.Quests.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return utils.OK(c, quests)
}

// ListOutstanding godoc
// @Summary Quests a user has not completed
// @Tags quests
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} utils.SuccessResponse
// @Router /quests/{user_id} [get]
func (qc *QuestController) ListOutstanding(c *fiber.Ctx) error {
	userID, err := utils.ParamID(c, "user_id")
	if err != nil {
		return err
	}
	quests, err := qc.Quests.ListOutstanding(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return utils.OK(c, quests)
}

// CheckQuests godoc
// @Summary Evaluate quests
// @Description Records newly satisfied quests and pays their reward once
// @Tags quests
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /checkquests/{user_id} [get]
func (qc *QuestController) CheckQuests(c *fiber.Ctx) error {
	userID, err := utils.ParamID(c, "user_id")
	if err != nil {
		return err
	}
	status, err := qc.Quests.Evaluate(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return utils.OK(c, status)
}

// InitQuests godoc
// @Summary Seed the quest catalogue
// @Tags quests
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /init [post]
func (qc *QuestController) InitQuests(c *fiber.Ctx) error {
	inserted, err := qc.Quests.SeedCatalogue(c.UserContext())
	if err != nil {
		return err
	}
	return utils.OK(c, fiber.Map{"inserted": inserted})
}
