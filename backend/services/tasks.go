package services

import (
	"context"

	"questboard/backend/apperror"
	"questboard/backend/models"
	"questboard/backend/repository"
)

type TaskService struct {
	tasks *repository.TaskRepository
}

func NewTaskService(tasks *repository.TaskRepository) *TaskService {
	if tasks == nil {
		panic("TaskRepository cannot be nil for TaskService")
	}
	return &TaskService{tasks: tasks}
}

// Create stores a task for userID. An empty priority means low. The user is not looked up.
func (s *TaskService) Create(ctx context.Context, userID uint, name string, priority models.Priority) (*models.Task, error) {
	if priority == "" {
		priority = models.PriorityLow
	}
	if !priority.Valid() {
		return nil, apperror.NewValidation("priority must be one of [low medium high]", nil)
	}

	task := &models.Task{UserID: userID, Name: name, Priority: priority}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, mapRepoError(err, "task")
	}
	return task, nil
}

func (s *TaskService) ListByUser(ctx context.Context, userID uint) ([]models.Task, error) {
	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, "task")
	}
	return tasks, nil
}

func (s *TaskService) Update(ctx context.Context, id uint, patch models.TaskPatch) (*models.Task, error) {
	if patch.Priority != nil && !patch.Priority.Valid() {
		return nil, apperror.NewValidation("priority must be one of [low medium high]", nil)
	}
	task, err := s.tasks.Update(ctx, id, patch)
	if err != nil {
		return nil, mapRepoError(err, "task")
	}
	return task, nil
}

func (s *TaskService) ToggleDone(ctx context.Context, id uint) (*models.Task, error) {
	task, err := s.tasks.ToggleDone(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "task")
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id uint) (*models.Task, error) {
	task, err := s.tasks.Delete(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "task")
	}
	return task, nil
}
