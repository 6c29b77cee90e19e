package controllers

import (
	"questboard/backend/apperror"
	"questboard/backend/config"
	"questboard/backend/services"
	"questboard/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Auth *services.AuthService
	Cfg  *config.Config
}

func NewAuthController(auth *services.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{Auth: auth, Cfg: cfg}
}

type RegisterRequest struct {
	Name     string  `json:"name" validate:"max=255" example:"Guest"`
	Email    string  `json:"email" validate:"required,email,max=255" example:"user@example.com"`
	Password string  `json:"password" validate:"required" example:"password123"`
	Icon     *string `json:"icon" validate:"omitempty,max=255"`
	Profile  *string `json:"profile"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required" example:"user@example.com"`
	Password string `json:"password" validate:"required" example:"password123"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user account and starts a session
// @Tags auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "User registration data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /users [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return err
	}

	user, err := ac.Auth.Register(c.UserContext(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Icon:     req.Icon,
		Profile:  req.Profile,
	})
	if err != nil {
		return err
	}

	if err := utils.SetSessionCookie(c, user.ID, ac.Cfg); err != nil {
		return apperror.NewInternal("Could not start session", err)
	}
	return utils.Created(c, user)
}

// Login godoc
// @Summary User login
// @Description Checks credentials and sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return err
	}

	user, err := ac.Auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	if err := utils.SetSessionCookie(c, user.ID, ac.Cfg); err != nil {
		return apperror.NewInternal("Could not start session", err)
	}
	return utils.OK(c, user)
}

// Logout godoc
// @Summary End the session
// @Tags auth
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /logout [post]
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	utils.ClearSessionCookie(c, ac.Cfg)
	return utils.OK(c, fiber.Map{"message": "Logged out"})
}
