package testing

import (
	"fmt"
	"time"

	"github.com/stagedoor/stagedoor/models"
)

// CreateTestVenue inserts a venue with sensible defaults. The name is
// made unique by seq.
func (tdb *TestDB) CreateTestVenue(seq int) (*models.Venue, error) {
	venue := &models.Venue{
		Name:          fmt.Sprintf("Test Venue %d", seq),
		City:          "San Francisco",
		State:         "CA",
		Address:       fmt.Sprintf("%d Mission St", 100+seq),
		Phone:         "415-000-0000",
		ImageLink:     "https://example.com/venue.jpg",
		FacebookLink:  "https://facebook.com/testvenue",
		Website:       "https://testvenue.example.com",
		SeekingTalent: false,
		Genres:        models.EncodeGenres([]string{"Jazz", "Folk"}),
	}
	if err := tdb.DB.Create(venue).Error; err != nil {
		return nil, fmt.Errorf("failed to create test venue: %w", err)
	}
	return venue, nil
}

// CreateTestArtist inserts an artist with sensible defaults
func (tdb *TestDB) CreateTestArtist(seq int) (*models.Artist, error) {
	artist := &models.Artist{
		Name:         fmt.Sprintf("Test Artist %d", seq),
		City:         "New York",
		State:        "NY",
		Phone:        "212-000-0000",
		ImageLink:    "https://example.com/artist.jpg",
		FacebookLink: "https://facebook.com/testartist",
		Website:      "https://testartist.example.com",
		SeekingVenue: true,
		Genres:       models.EncodeGenres([]string{"Rock n Roll"}),
	}
	if err := tdb.DB.Create(artist).Error; err != nil {
		return nil, fmt.Errorf("failed to create test artist: %w", err)
	}
	return artist, nil
}

// CreateTestShow books artist at venue at the given start time
func (tdb *TestDB) CreateTestShow(artistID, venueID uint, startTime time.Time) (*models.Show, error) {
	show := &models.Show{
		ArtistID:  artistID,
		VenueID:   venueID,
		StartTime: startTime.UTC(),
	}
	if err := tdb.DB.Create(show).Error; err != nil {
		return nil, fmt.Errorf("failed to create test show: %w", err)
	}
	return show, nil
}
