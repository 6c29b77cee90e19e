package services_test

import (
	"context"
	"testing"

	"questboard/backend/apperror"
	"questboard/backend/models"
	"questboard/backend/repository"
	"questboard/backend/services"
	"questboard/backend/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	first, err := services.HashPassword("s3cret")
	require.NoError(t, err)
	second, err := services.HashPassword("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", first)
	assert.NotEqual(t, first, second, "each hash gets a fresh salt")
	assert.True(t, services.CheckPassword("s3cret", first))
	assert.True(t, services.CheckPassword("s3cret", second))
	assert.False(t, services.CheckPassword("wrong", first))
}

func TestAuthService_Register(t *testing.T) {
	auth := services.NewAuthService(repository.NewUserRepository(testutil.NewDB(t)))
	ctx := context.Background()

	user, err := auth.Register(ctx, services.RegisterInput{Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, models.DefaultUserName, user.Name)
	assert.Equal(t, 0, user.Point)
	assert.NotEqual(t, "pw", user.Password)

	_, err = auth.Register(ctx, services.RegisterInput{Name: "bob", Email: "alice@example.com", Password: "pw"})
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
}

func TestAuthService_Login(t *testing.T) {
	auth := services.NewAuthService(repository.NewUserRepository(testutil.NewDB(t)))
	ctx := context.Background()

	registered, err := auth.Register(ctx, services.RegisterInput{Name: "alice", Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)

	user, err := auth.Login(ctx, "alice@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, wrongPassword := auth.Login(ctx, "alice@example.com", "nope")
	_, unknownEmail := auth.Login(ctx, "nobody@example.com", "pw")

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.True(t, apperror.IsAuth(wrongPassword))
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}
