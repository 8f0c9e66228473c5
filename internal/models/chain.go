package models

import "time"

// Chain is an invitation-token record owned 1:1 by an act, supporting
// referral flows.
type Chain struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	InvitationToken string    `gorm:"size:255;not null;uniqueIndex" json:"invitation_token"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
