package services

import (
	"context"
	"errors"
	"fmt"

	"questboard/backend/apperror"
	"questboard/backend/models"
	"questboard/backend/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned by Login for an unknown email and for a wrong password alike.
var ErrInvalidCredentials = apperror.NewAuth("invalid email or password")

// HashPassword returns a bcrypt hash of password with a fresh salt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to generate hash from password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword reports whether password matches hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Icon     *string
	Profile  *string
}

type AuthService struct {
	users *repository.UserRepository
}

func NewAuthService(users *repository.UserRepository) *AuthService {
	if users == nil {
		panic("UserRepository cannot be nil for AuthService")
	}
	return &AuthService{users: users}
}

// Register creates a user with a hashed password. An empty name becomes "Guest".
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	logCtx := logrus.WithField("email", in.Email)

	hashed, err := HashPassword(in.Password)
	if err != nil {
		logCtx.WithError(err).Error("Failed to hash password during registration")
		return nil, apperror.NewInternal("could not hash password", err)
	}

	name := in.Name
	if name == "" {
		name = models.DefaultUserName
	}
	user := &models.User{
		Name:     name,
		Email:    in.Email,
		Password: hashed,
		Icon:     in.Icon,
		Profile:  in.Profile,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			logCtx.Warn("Registration failed: email already registered")
			return nil, apperror.NewConflict("email already registered", err)
		}
		logCtx.WithError(err).Error("Database error during user creation")
		return nil, mapRepoError(err, "user")
	}

	logCtx.WithField("user_id", user.ID).Info("User registered")
	return user, nil
}

// Login returns the user owning email if password matches.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	logCtx := logrus.WithField("email", email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logCtx.WithError(err).Error("Login failed: error finding user")
			return nil, mapRepoError(err, "user")
		}
		logCtx.Warn("Login failed: unknown email")
		return nil, ErrInvalidCredentials
	}

	if !CheckPassword(password, user.Password) {
		logCtx.WithField("user_id", user.ID).Warn("Login failed: wrong password")
		return nil, ErrInvalidCredentials
	}

	logCtx.WithField("user_id", user.ID).Info("User logged in")
	return user, nil
}
