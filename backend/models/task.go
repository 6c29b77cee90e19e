package models

import (
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Priority  Priority  `gorm:"size:16;not null;default:low" json:"priority"`
	IsDone    bool      `gorm:"not null;default:false" json:"is_done"`
	CreatedAt time.Time `gorm:"autoCreateTime;<-:create" json:"created_at"`
}

type TaskPatch struct {
	Name     *string
	Priority *Priority
	IsDone   *bool
}

func (p TaskPatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if p.Name != nil {
		changes["name"] = *p.Name
	}
	if p.Priority != nil {
		changes["priority"] = string(*p.Priority)
	}
	if p.IsDone != nil {
		changes["is_done"] = *p.IsDone
	}
	return changes
}
