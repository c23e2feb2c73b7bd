package models

import "time"

// Show pairs one artist with one venue at a start time
// Table: shows
// Pure join entity: no identity beyond the artist/venue/time triple
type Show struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ArtistID  uint      `gorm:"not null;index:idx_shows_artist_id" json:"artist_id"`
	VenueID   uint      `gorm:"not null;index:idx_shows_venue_id" json:"venue_id"`
	StartTime time.Time `gorm:"not null;index:idx_shows_start_time" json:"start_time"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relations
	Artist *Artist `gorm:"foreignKey:ArtistID;references:ID" json:"artist,omitempty"`
	Venue  *Venue  `gorm:"foreignKey:VenueID;references:ID;constraint:OnDelete:CASCADE" json:"venue,omitempty"`
}

func (Show) TableName() string { return "shows" }

// ShowFilter represents filter criteria for show queries
type ShowFilter struct {
	ID           *uint
	ArtistID     *uint
	VenueID      *uint
	StartsAfter  *time.Time
	StartsBefore *time.Time
}
