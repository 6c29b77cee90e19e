package models

import "time"

const MaxBoardContentLength = 255

type Board struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Content   string    `gorm:"size:255;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime;<-:create;index" json:"created_at"`
}

// BoardView is a board post with the author's display name joined in at read time.
type BoardView struct {
	Board
	UserName string `json:"user_name"`
}

type BoardPatch struct {
	Content *string
}

func (p BoardPatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if p.Content != nil {
		changes["content"] = *p.Content
	}
	return changes
}
