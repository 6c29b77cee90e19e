package controllers

import (
	"questboard/backend/models"
	"questboard/backend/services"
	"questboard/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type BoardController struct {
	Boards *services.BoardService
}

func NewBoardController(boards *services.BoardService) *BoardController {
	return &BoardController{Boards: boards}
}

type CreateBoardRequest struct {
	UserID  uint   `json:"user_id" validate:"required"`
	Content string `json:"content" validate:"required,max=255" example:"Hello everyone"`
}

type UpdateBoardRequest struct {
	Content *string `json:"content" validate:"omitempty,max=255"`
}

// CreatePost godoc
// @Summary Post to the board
// @Tags boards
// @Accept json
// @Produce json
// @Param input body CreateBoardRequest true "Post"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /boards [post]
func (bc *BoardController) CreatePost(c *fiber.Ctx) error {
	var req CreateBoardRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return err
	}
	post, err := bc.Boards.Create(c.UserContext(), req.UserID, req.Content)
	if err != nil {
		return err
	}
	return utils.Created(c, post)
}

// ListPosts godoc
// @Summary List board posts
// @Description Newest first, each with the author's name
// @Tags boards
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.PaginatedResponse
// @Router /boards [get]
func (bc *BoardController) ListPosts(c *fiber.Ctx) error {
	page, pageSize := utils.Pagination(c)
	posts, total, err := bc.Boards.List(c.UserContext(), page, pageSize)
	if err != nil {
		return err
	}
	return utils.Paginate(c, posts, total, page, pageSize)
}

// UpdatePost godoc
// @Summary Edit a board post
// @Tags boards
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param input body UpdateBoardRequest true "Fields to change"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /boards/{id} [put]
func (bc *BoardController) UpdatePost(c *fiber.Ctx) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req UpdateBoardRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return err
	}
	post, err := bc.Boards.Update(c.UserContext(), id, models.BoardPatch{Content: req.Content})
	if err != nil {
		return err
	}
	return utils.OK(c, post)
}

// DeletePost godoc
// @Summary Delete a board post
// @Tags boards
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /boards/{id} [delete]
func (bc *BoardController) DeletePost(c *fiber.Ctx) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return err
	}
	post, err := bc.Boards.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return utils.OK(c, post)
}
