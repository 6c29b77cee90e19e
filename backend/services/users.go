package services

import (
	"context"
	"errors"

	"questboard/backend/apperror"
	"questboard/backend/models"
	"questboard/backend/repository"

	"github.com/sirupsen/logrus"
)

type UserService struct {
	users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	if users == nil {
		panic("UserRepository cannot be nil for UserService")
	}
	return &UserService{users: users}
}

// List returns one page of users ranked by point.
func (s *UserService) List(ctx context.Context, page, pageSize int) ([]models.User, int64, error) {
	users, total, err := s.users.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, mapRepoError(err, "user")
	}
	return users, total, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "user")
	}
	return user, nil
}

// Update applies patch to the user. patch.Password is the plain password and
// is hashed before it is stored.
func (s *UserService) Update(ctx context.Context, id uint, patch models.UserPatch) (*models.User, error) {
	if patch.Password != nil {
		hashed, err := HashPassword(*patch.Password)
		if err != nil {
			return nil, apperror.NewInternal("could not hash password", err)
		}
		patch.Password = &hashed
	}

	user, err := s.users.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil, apperror.NewConflict("email already registered", err)
		}
		return nil, mapRepoError(err, "user")
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.Delete(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "user")
	}
	logrus.WithField("user_id", id).Info("User deleted")
	return user, nil
}

// AddPoints adds delta, which may be negative, to the user's total.
func (s *UserService) AddPoints(ctx context.Context, id uint, delta int) (*models.User, error) {
	user, err := s.users.AddPoints(ctx, id, delta)
	if err != nil {
		return nil, mapRepoError(err, "user")
	}
	logrus.WithFields(logrus.Fields{"user_id": id, "delta": delta, "point": user.Point}).Debug("Points added")
	return user, nil
}
