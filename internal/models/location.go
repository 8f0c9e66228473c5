package models

import "time"

// Location is a geographic point owned 1:1 by an act.
type Location struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	City      string    `gorm:"size:100;not null" json:"city"`
	Country   string    `gorm:"size:100;not null" json:"country"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
