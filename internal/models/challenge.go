package models

import "time"

// Challenge is a goal with a numeric objective. Progress advances as a side
// effect of act creation and is not clamped at the objective.
type Challenge struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Objective int       `gorm:"not null" json:"objective"`
	Progress  int       `gorm:"not null;default:0" json:"progress"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Acts []Act `gorm:"foreignKey:ChallengeID" json:"-"`
}
