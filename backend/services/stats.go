package services

import (
	"context"

	"questboard/backend/repository"
)

// CompletionPercent is done/total as a whole percentage, truncated. It is 0 when total is 0.
func CompletionPercent(done, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(done * 100 / total)
}

type StatsService struct {
	tasks *repository.TaskRepository
}

func NewStatsService(tasks *repository.TaskRepository) *StatsService {
	if tasks == nil {
		panic("TaskRepository cannot be nil for StatsService")
	}
	return &StatsService{tasks: tasks}
}

func (s *StatsService) UserCompletionRate(ctx context.Context, userID uint) (int, error) {
	counts, err := s.tasks.CountByUser(ctx, userID)
	if err != nil {
		return 0, mapRepoError(err, "task")
	}
	return CompletionPercent(counts.Done, counts.Total), nil
}

func (s *StatsService) GlobalCompletionRate(ctx context.Context) (int, error) {
	counts, err := s.tasks.CountAll(ctx)
	if err != nil {
		return 0, mapRepoError(err, "task")
	}
	return CompletionPercent(counts.Done, counts.Total), nil
}
