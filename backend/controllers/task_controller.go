package controllers

import (
	"questboard/backend/models"
	"questboard/backend/services"
	"questboard/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type TaskController struct {
	Tasks *services.TaskService
}

func NewTaskController(tasks *services.TaskService) *TaskController {
	return &TaskController{Tasks: tasks}
}

type CreateTaskRequest struct {
	UserID   uint            `json:"user_id" validate:"required"`
	Name     string          `json:"name" validate:"required,max=255" example:"Water the plants"`
	Priority models.Priority `json:"priority" validate:"omitempty,oneof=low medium high" example:"low"`
}

type UpdateTaskRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Priority *models.Priority `json:"priority" validate:"omitempty,oneof=low medium high"`
	IsDone   *bool            `json:"is_done"`
}

// CreateTask godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param input body CreateTaskRequest true "Task data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /tasks [post]
func (tc *TaskController) CreateTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return err
	}
	task, err := tc.Tasks.Create(c.UserContext(), req.UserID, req.Name, req.Priority)
	if err != nil {
		return err
	}
	return utils.Created(c, task)
}

// ListUserTasks godoc
// @Summary List a user's tasks
// @Tags tasks
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} utils.SuccessResponse
// @Router /tasks/{user_id} [get]
func (tc *TaskController) ListUserTasks(c *fiber.Ctx) error {
	userID, err := utils.ParamID(c, "user_id")
	if err != nil {
		return err
	}
	tasks, err := tc.Tasks.ListByUser(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return utils.OK(c, tasks)
}

// UpdateTask godoc
// @Summary Update a task
// @Description Only the fields present in the body are changed
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param input body UpdateTaskRequest true "Fields to change"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /tasks/{id} [put]
func (tc *TaskController) UpdateTask(c *fiber.Ctx) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req UpdateTaskRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return err
	}
	task, err := tc.Tasks.Update(c.UserContext(), id, models.TaskPatch{
		Name:     req.Name,
		Priority: req.Priority,
		IsDone:   req.IsDone,
	})
	if err != nil {
		return err
	}
	return utils.OK(c, task)
}

// ToggleTask godoc
// @Summary Flip a task's done flag
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /tasks/{id}/done [put]
func (tc *TaskController) ToggleTask(c *fiber.Ctx) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return err
	}
	task, err := tc.Tasks.ToggleDone(c.UserContext(), id)
	if err != nil {
		return err
	}
	return utils.OK(c, task)
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /tasks/{id} [delete]
func (tc *TaskController) DeleteTask(c *fiber.Ctx) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return err
	}
	task, err := tc.Tasks.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return utils.OK(c, task)
}
