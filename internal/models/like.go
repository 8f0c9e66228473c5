package models

import "time"

// Like records that a user liked an act. The composite unique index enforces
// at most one like per (user, act) pair at the storage level.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_act" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	ActID     uint      `gorm:"not null;uniqueIndex:idx_likes_user_act" json:"act_id"`
	Act       Act       `gorm:"foreignKey:ActID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
