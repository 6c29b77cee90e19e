package repository

import (
	"context"

	"questboard/backend/models"

	"gorm.io/gorm"
)

// TaskCounts is the number of tasks and of completed tasks in some scope.
type TaskCounts struct {
	Total int64
	Done  int64
}

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	if db == nil {
		panic("database connection cannot be nil for TaskRepository")
	}
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	if task.Priority == "" {
		task.Priority = models.PriorityLow
	}
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return translate(err, "create task for user %d", task.UserID)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, translate(err, "find task %d", id)
	}
	return &task, nil
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID uint) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&tasks).Error
	if err != nil {
		return nil, translate(err, "list tasks of user %d", userID)
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, id uint, patch models.TaskPatch) (*models.Task, error) {
	var updated models.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Task
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}
		if changes := patch.Changes(); len(changes) > 0 {
			if err := tx.Model(&models.Task{}).Where("id = ?", id).Updates(changes).Error; err != nil {
				return err
			}
		}
		return tx.First(&updated, id).Error
	})
	if err != nil {
		return nil, translate(err, "update task %d", id)
	}
	return &updated, nil
}

// ToggleDone flips is_done in a single UPDATE.
func (r *TaskRepository) ToggleDone(ctx context.Context, id uint) (*models.Task, error) {
	var updated models.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Task{}).Where("id = ?", id).
			Update("is_done", gorm.Expr("NOT is_done"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.First(&updated, id).Error
	})
	if err != nil {
		return nil, translate(err, "toggle task %d", id)
	}
	return &updated, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) (*models.Task, error) {
	var deleted models.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deleted, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Task{}, id).Error
	})
	if err != nil {
		return nil, translate(err, "delete task %d", id)
	}
	return &deleted, nil
}

func (r *TaskRepository) CountByUser(ctx context.Context, userID uint) (TaskCounts, error) {
	counts, err := r.count(r.db.WithContext(ctx).Where("user_id = ?", userID))
	if err != nil {
		return TaskCounts{}, translate(err, "count tasks of user %d", userID)
	}
	return counts, nil
}

func (r *TaskRepository) CountAll(ctx context.Context) (TaskCounts, error) {
	counts, err := r.count(r.db.WithContext(ctx))
	if err != nil {
		return TaskCounts{}, translate(err, "count tasks")
	}
	return counts, nil
}

func (r *TaskRepository) count(scope *gorm.DB) (TaskCounts, error) {
	var counts TaskCounts
	err := scope.Model(&models.Task{}).
		Select("COUNT(*) AS total, CAST(COALESCE(SUM(CASE WHEN is_done THEN 1 ELSE 0 END), 0) AS BIGINT) AS done").
		Scan(&counts).Error
	return counts, err
}
