package repository

import (
	"context"

	"questboard/backend/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	if db == nil {
		panic("database connection cannot be nil for UserRepository")
	}
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return translate(err, "create user %q", user.Email)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err, "find user %d", id)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err, "find user by email")
	}
	return &user, nil
}

// List returns one page of users ordered by point, highest first.
func (r *UserRepository) List(ctx context.Context, page, pageSize int) ([]models.User, int64, error) {
	db := r.db.WithContext(ctx)

	var total int64
	if err := db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err, "count users")
	}

	users := make([]models.User, 0, pageSize)
	err := db.Order("point DESC").Order("id ASC").
		Offset(offset(page, pageSize)).Limit(pageSize).
		Find(&users).Error
	if err != nil {
		return nil, 0, translate(err, "list users")
	}
	return users, total, nil
}

func (r *UserRepository) Update(ctx context.Context, id uint, patch models.UserPatch) (*models.User, error) {
	var updated models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.User
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}
		if changes := patch.Changes(); len(changes) > 0 {
			if err := tx.Model(&models.User{}).Where("id = ?", id).Updates(changes).Error; err != nil {
				return err
			}
		}
		return tx.First(&updated, id).Error
	})
	if err != nil {
		return nil, translate(err, "update user %d", id)
	}
	return &updated, nil
}

// Delete removes the user and returns it as it was. Owned rows are left in place.
func (r *UserRepository) Delete(ctx context.Context, id uint) (*models.User, error) {
	var deleted models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deleted, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
	if err != nil {
		return nil, translate(err, "delete user %d", id)
	}
	return &deleted, nil
}

// AddPoints adds delta (possibly negative) to the user's point total in one statement.
func (r *UserRepository) AddPoints(ctx context.Context, id uint, delta int) (*models.User, error) {
	var updated models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).Where("id = ?", id).
			Update("point", gorm.Expr("point + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.First(&updated, id).Error
	})
	if err != nil {
		return nil, translate(err, "add %d points to user %d", delta, id)
	}
	return &updated, nil
}
