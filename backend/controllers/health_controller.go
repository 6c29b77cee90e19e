package controllers

import "github.com/gofiber/fiber/v2"

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (hc *HealthController) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "UP"})
}
