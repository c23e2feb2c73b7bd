package models

import "time"

// Artist represents a performer that can be booked for shows
// Table: artists
// VenueImageLink is shown for venues listed on the artist's page when
// the venue carries no image of its own
type Artist struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"size:255;not null;index:idx_artists_name" json:"name"`
	City               string    `gorm:"size:120;index:idx_artists_city" json:"city"`
	State              string    `gorm:"size:120" json:"state"`
	Phone              string    `gorm:"size:120" json:"phone"`
	ImageLink          string    `gorm:"size:500" json:"image_link"`
	VenueImageLink     string    `gorm:"size:500" json:"venue_image_link"`
	FacebookLink       string    `gorm:"size:120" json:"facebook_link"`
	Website            string    `gorm:"size:120" json:"website"`
	SeekingVenue       bool      `gorm:"not null;default:false" json:"seeking_venue"`
	SeekingDescription string    `gorm:"size:500" json:"seeking_description"`
	Genres             string    `gorm:"size:255" json:"genres"`
	CreatedAt          time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Shows []Show `gorm:"foreignKey:ArtistID;references:ID" json:"shows,omitempty"`
}

func (Artist) TableName() string { return "artists" }

// ArtistFilter represents filter criteria for artist queries
type ArtistFilter struct {
	ID           *uint
	Name         *string
	City         *string
	State        *string
	SeekingVenue *bool
}
