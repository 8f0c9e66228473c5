package models

import "time"

// Comment belongs to an act and, when the author was authenticated at
// creation time, to a user. Authorless comments are allowed.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ActID  uint  `gorm:"not null;index" json:"act_id"`
	Act    Act   `gorm:"foreignKey:ActID" json:"-"`
	UserID *uint `gorm:"index" json:"user_id,omitempty"`
	User   *User `gorm:"foreignKey:UserID" json:"-"`
}
