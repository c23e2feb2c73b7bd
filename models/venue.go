// Package models contains domain entities and business models for the booking system
package models

import "time"

// Venue represents a bookable location that hosts shows
// Table: venues
// Genres holds the encoded genre set (see EncodeGenres/DecodeGenres)
// Timestamps default to UTC at DB level
type Venue struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"size:255;not null;index:idx_venues_name" json:"name"`
	City               string    `gorm:"size:120;index:idx_venues_city" json:"city"`
	State              string    `gorm:"size:120;index:idx_venues_state" json:"state"`
	Address            string    `gorm:"size:120" json:"address"`
	Phone              string    `gorm:"size:120" json:"phone"`
	ImageLink          string    `gorm:"size:500" json:"image_link"`
	FacebookLink       string    `gorm:"size:120" json:"facebook_link"`
	Website            string    `gorm:"size:120" json:"website"`
	SeekingTalent      bool      `gorm:"not null;default:false" json:"seeking_talent"`
	SeekingDescription string    `gorm:"size:500" json:"seeking_description"`
	Genres             string    `gorm:"size:255" json:"genres"`
	CreatedAt          time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Shows []Show `gorm:"foreignKey:VenueID;references:ID" json:"shows,omitempty"`
}

func (Venue) TableName() string { return "venues" }

// VenueFilter represents filter criteria for venue queries
type VenueFilter struct {
	ID            *uint
	Name          *string
	City          *string
	State         *string
	SeekingTalent *bool
}
