package models

import (
	"time"
)

// Act is a published good deed. It is the aggregation root for its optional
// Location and Chain: deleting the act deletes both, along with its comments
// and likes.
type Act struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Category    string    `gorm:"size:255;not null" json:"category"`
	ImgURL      *string   `gorm:"size:255" json:"img_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	UserID      uint       `gorm:"not null;index" json:"user_id"`
	User        User       `gorm:"foreignKey:UserID" json:"-"`
	ChallengeID *uint      `gorm:"index" json:"challenge_id,omitempty"`
	Challenge   *Challenge `gorm:"foreignKey:ChallengeID" json:"-"`
	LocationID  *uint      `json:"location_id,omitempty"`
	Location    *Location  `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	ChainID     *uint      `json:"chain_id,omitempty"`
	Chain       *Chain     `gorm:"foreignKey:ChainID" json:"chain,omitempty"`

	Comments []Comment `gorm:"foreignKey:ActID;constraint:OnDelete:CASCADE" json:"-"`
	Likes    []Like    `gorm:"foreignKey:ActID;constraint:OnDelete:CASCADE" json:"-"`
}
