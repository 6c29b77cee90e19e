package models

import (
	"time"
)

const DefaultUserName = "Guest"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;default:Guest" json:"name"`
	Email     string    `gorm:"size:255;uniqueIndex:idx_users_email;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"` // bcrypt hash
	Point     int       `gorm:"not null;default:0" json:"point"`
	Icon      *string   `gorm:"size:255" json:"icon"`
	Profile   *string   `gorm:"type:text" json:"profile"`
	CreatedAt time.Time `gorm:"autoCreateTime;<-:create" json:"created_at"`
}

// UserPatch lists the user attributes a client may change. Nil fields are left as they are.
// Password carries the already-hashed value.
type UserPatch struct {
	Name     *string
	Email    *string
	Password *string
	Icon     *string
	Profile  *string
	Point    *int
}

func (p UserPatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if p.Name != nil {
		changes["name"] = *p.Name
	}
	if p.Email != nil {
		changes["email"] = *p.Email
	}
	if p.Password != nil {
		changes["password"] = *p.Password
	}
	if p.Icon != nil {
		changes["icon"] = *p.Icon
	}
	if p.Profile != nil {
		changes["profile"] = *p.Profile
	}
	if p.Point != nil {
		changes["point"] = *p.Point
	}
	return changes
}
