package repository

import (
	"context"

	"questboard/backend/models"

	"gorm.io/gorm"
)

type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	if db == nil {
		panic("database connection cannot be nil for BoardRepository")
	}
	return &BoardRepository{db: db}
}

func (r *BoardRepository) Create(ctx context.Context, board *models.Board) error {
	if err := r.db.WithContext(ctx).Create(board).Error; err != nil {
		return translate(err, "create board post for user %d", board.UserID)
	}
	return nil
}

func (r *BoardRepository) FindByID(ctx context.Context, id uint) (*models.Board, error) {
	var board models.Board
	if err := r.db.WithContext(ctx).First(&board, id).Error; err != nil {
		return nil, translate(err, "find board post %d", id)
	}
	return &board, nil
}

// ListWithAuthor returns one page of posts, newest first, each with its author's name.
// Posts whose author no longer exists get an empty name.
func (r *BoardRepository) ListWithAuthor(ctx context.Context, page, pageSize int) ([]models.BoardView, int64, error) {
	db := r.db.WithContext(ctx)

	var total int64
	if err := db.Model(&models.Board{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err, "count board posts")
	}

	views := make([]models.BoardView, 0, pageSize)
	err := db.Table("boards").
		Select("boards.id, boards.user_id, boards.content, boards.created_at, COALESCE(users.name, '') AS user_name").
		Joins("LEFT JOIN users ON users.id = boards.user_id").
		Order("boards.created_at DESC").Order("boards.id DESC").
		Offset(offset(page, pageSize)).Limit(pageSize).
		Scan(&views).Error
	if err != nil {
		return nil, 0, translate(err, "list board posts")
	}
	return views, total, nil
}

func (r *BoardRepository) Update(ctx context.Context, id uint, patch models.BoardPatch) (*models.Board, error) {
	var updated models.Board
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Board
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}
		if changes := patch.Changes(); len(changes) > 0 {
			if err := tx.Model(&models.Board{}).Where("id = ?", id).Updates(changes).Error; err != nil {
				return err
			}
		}
		return tx.First(&updated, id).Error
	})
	if err != nil {
		return nil, translate(err, "update board post %d", id)
	}
	return &updated, nil
}

func (r *BoardRepository) Delete(ctx context.Context, id uint) (*models.Board, error) {
	var deleted models.Board
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deleted, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Board{}, id).Error
	})
	if err != nil {
		return nil, translate(err, "delete board post %d", id)
	}
	return &deleted, nil
}

func (r *BoardRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Board{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return 0, translate(err, "count board posts of user %d", userID)
	}
	return n, nil
}
