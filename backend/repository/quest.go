package repository

import (
	"context"
	"errors"

	"questboard/backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuestRepository struct {
	db *gorm.DB
}

func NewQuestRepository(db *gorm.DB) *QuestRepository {
	if db == nil {
		panic("database connection cannot be nil for QuestRepository")
	}
	return &QuestRepository{db: db}
}

func (r *QuestRepository) List(ctx context.Context) ([]models.Quest, error) {
	quests := make([]models.Quest, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&quests).Error; err != nil {
		return nil, translate(err, "list quests")
	}
	return quests, nil
}

// ListOutstanding returns the quests the user has no completion record for.
func (r *QuestRepository) ListOutstanding(ctx context.Context, userID uint) ([]models.Quest, error) {
	db := r.db.WithContext(ctx)
	done := db.Model(&models.UserQuest{}).Select("quest_id").Where("user_id = ?", userID)

	quests := make([]models.Quest, 0)
	if err := db.Where("id NOT IN (?)", done).Order("id ASC").Find(&quests).Error; err != nil {
		return nil, translate(err, "list outstanding quests of user %d", userID)
	}
	return quests, nil
}

// CreateIfTitleAbsent inserts quest unless a quest with the same title exists.
// It reports whether a row was inserted.
func (r *QuestRepository) CreateIfTitleAbsent(ctx context.Context, quest *models.Quest) (bool, error) {
	db := r.db.WithContext(ctx)

	var existing models.Quest
	err := db.Where("title = ?", quest.Title).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, translate(err, "look up quest %q", quest.Title)
	}

	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(quest)
	if res.Error != nil {
		return false, translate(res.Error, "create quest %q", quest.Title)
	}
	return res.RowsAffected == 1, nil
}

// Grant records that userID completed questID. It reports false, without error,
// when the record already existed.
func (r *QuestRepository) Grant(ctx context.Context, userID, questID uint) (bool, error) {
	record := models.UserQuest{UserID: userID, QuestID: questID, IsDone: true}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&record)
	if res.Error != nil {
		return false, translate(res.Error, "grant quest %d to user %d", questID, userID)
	}
	return res.RowsAffected == 1, nil
}
