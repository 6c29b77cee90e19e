package controllers

import (
	"questboard/backend/apperror"
	"questboard/backend/middleware"
	"questboard/backend/models"
	"questboard/backend/services"
	"questboard/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

type UpdateProfileRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=255" example:"john"`
	Email    *string `json:"email" validate:"omitempty,email,max=255" example:"user@example.com"`
	Password *string `json:"password" validate:"omitempty,min=1"`
	Icon     *string `json:"icon" validate:"omitempty,max=255"`
	Profile  *string `json:"profile"`
}

func (r UpdateProfileRequest) patch() models.UserPatch {
	return models.UserPatch{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Icon:     r.Icon,
		Profile:  r.Profile,
	}
}

type UpdateUserRequest struct {
	UpdateProfileRequest
	Point *int `json:"point"`
}

type AddPointRequest struct {
	UserID uint `json:"user_id" validate:"required"`
	Point  int  `json:"point"`
}

// ListUsers godoc
// @Summary List users
// @Description Users ranked by point, highest first
// @Tags users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.PaginatedResponse
// @Router /users [get]
func (uc *UserController) ListUsers(c *fiber.Ctx) error {
	page, pageSize := utils.Pagination(c)
	users, total, err := uc.Users.List(c.UserContext(), page, pageSize)
	if err != nil {
		return err
	}
	return utils.Paginate(c, users, total, page, pageSize)
}

// GetUser godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /users/{id} [get]
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return err
	}
	user, err := uc.Users.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return utils.OK(c, user)
}

// UpdateUser godoc
// @Summary Update a user
// @Description Only the fields present in the body are changed
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param input body UpdateUserRequest true "Fields to change"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /users/{id} [put]
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req UpdateUserRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return err
	}

	patch := req.patch()
	patch.Point = req.Point
	user, err := uc.Users.Update(c.UserContext(), id, patch)
	if err != nil {
		return err
	}
	return utils.OK(c, user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Tasks, posts and quest records of the user are kept
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /users/{id} [delete]
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return err
	}
	user, err := uc.Users.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return utils.OK(c, user)
}

// UpdateProfile godoc
// @Summary Update own profile
// @Description Updates the user identified by the session cookie
// @Tags users
// @Accept json
// @Produce json
// @Param input body UpdateProfileRequest true "Profile update data"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /profile [put]
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return apperror.NewUnauthorized("Unauthorized")
	}
	var req UpdateProfileRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return err
	}

	user, err := uc.Users.Update(c.UserContext(), userID, req.patch())
	if err != nil {
		return err
	}
	return utils.OK(c, user)
}

// AddPoint godoc
// @Summary Add points
// @Description Adds a positive or negative delta to a user's point total
// @Tags users
// @Accept json
// @Produce json
// @Param input body AddPointRequest true "User and delta"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /point [post]
func (uc *UserController) AddPoint(c *fiber.Ctx) error {
	var req AddPointRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return err
	}
	user, err := uc.Users.AddPoints(c.UserContext(), req.UserID, req.Point)
	if err != nil {
		return err
	}
	return utils.OK(c, user)
}
