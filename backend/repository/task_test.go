package repository_test

import (
	"context"
	"testing"

	"questboard/backend/models"
	"questboard/backend/repository"
	"questboard/backend/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepository_CreateDefaults(t *testing.T) {
	repo := repository.NewTaskRepository(testutil.NewDB(t))

	task := &models.Task{UserID: 1, Name: "water plants"}
	require.NoError(t, repo.Create(context.Background(), task))

	found, err := repo.FindByID(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PriorityLow, found.Priority)
	assert.False(t, found.IsDone)
}

func TestTaskRepository_UpdatePriorityOnly(t *testing.T) {
	repo := repository.NewTaskRepository(testutil.NewDB(t))
	ctx := context.Background()

	task := &models.Task{UserID: 1, Name: "write report", IsDone: true}
	require.NoError(t, repo.Create(ctx, task))

	high := models.PriorityHigh
	updated, err := repo.Update(ctx, task.ID, models.TaskPatch{Priority: &high})
	require.NoError(t, err)

	assert.Equal(t, models.PriorityHigh, updated.Priority)
	assert.Equal(t, "write report", updated.Name)
	assert.True(t, updated.IsDone)
}

func TestTaskRepository_ToggleDone(t *testing.T) {
	repo := repository.NewTaskRepository(testutil.NewDB(t))
	ctx := context.Background()

	task := &models.Task{UserID: 1, Name: "stretch"}
	require.NoError(t, repo.Create(ctx, task))

	toggled, err := repo.ToggleDone(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsDone)

	toggled, err = repo.ToggleDone(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsDone)

	_, err = repo.ToggleDone(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskRepository_ListAndCount(t *testing.T) {
	repo := repository.NewTaskRepository(testutil.NewDB(t))
	ctx := context.Background()

	for i, done := range []bool{true, false, true} {
		require.NoError(t, repo.Create(ctx, &models.Task{UserID: 1, Name: "t", IsDone: done}), i)
	}
	require.NoError(t, repo.Create(ctx, &models.Task{UserID: 2, Name: "other"}))

	tasks, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, tasks, 3)

	counts, err := repo.CountByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, repository.TaskCounts{Total: 3, Done: 2}, counts)

	counts, err = repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, repository.TaskCounts{Total: 4, Done: 2}, counts)

	counts, err = repo.CountByUser(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, repository.TaskCounts{}, counts)
}

func TestTaskRepository_DeleteMissingLeavesRowsAlone(t *testing.T) {
	repo := repository.NewTaskRepository(testutil.NewDB(t))
	ctx := context.Background()

	task := &models.Task{UserID: 1, Name: "keep me"}
	require.NoError(t, repo.Create(ctx, task))

	_, err := repo.Delete(ctx, task.ID+1)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	tasks, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	deleted, err := repo.Delete(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "keep me", deleted.Name)
}
