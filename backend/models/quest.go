package models

import "time"

type Quest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;uniqueIndex:idx_quests_title;not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime;<-:create" json:"created_at"`
}

// UserQuest records that a user satisfied a quest. One row per (user, quest).
type UserQuest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_quest" json:"user_id"`
	QuestID   uint      `gorm:"not null;uniqueIndex:idx_user_quest" json:"quest_id"`
	IsDone    bool      `gorm:"not null;default:true" json:"is_done"`
	CreatedAt time.Time `gorm:"autoCreateTime;<-:create" json:"created_at"`
}

// All lists every persisted model in migration order.
func All() []interface{} {
	return []interface{}{&User{}, &Task{}, &Board{}, &Quest{}, &UserQuest{}}
}
