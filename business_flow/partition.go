package businessflow

import (
	"time"

	"github.com/stagedoor/stagedoor/app/dto"
	"github.com/stagedoor/stagedoor/models"
)

// showTimeLayout is the display format for show start times. Times are
// rendered in UTC.
const showTimeLayout = "2006-01-02 15:04:05"

func formatShowTime(t time.Time) string {
	return t.UTC().Format(showTimeLayout)
}

// isUpcoming reports whether a show starts strictly after now. A show
// starting exactly at now counts as past.
func isUpcoming(show *models.Show, now time.Time) bool {
	return show.StartTime.After(now)
}

// artistImageLink resolves the image shown for an artist appearance
func artistImageLink(artist *models.Artist) string {
	if artist == nil {
		return DefaultArtistImageLink
	}
	if artist.ImageLink != "" {
		return artist.ImageLink
	}
	return DefaultArtistImageLink
}

// venueImageLink resolves the image shown for a venue appearance on an
// artist page. A venue without an image falls back to the artist's
// preferred venue image, then to the site default.
func venueImageLink(venue *models.Venue, artist *models.Artist) string {
	if venue != nil && venue.ImageLink != "" {
		return venue.ImageLink
	}
	if artist != nil && artist.VenueImageLink != "" {
		return artist.VenueImageLink
	}
	return DefaultVenueImageLink
}

// partitionVenueShows splits a venue's shows into past and upcoming
// appearance records relative to now. Input order is preserved within
// each half. Both halves are non-nil.
func partitionVenueShows(shows []*models.Show, now time.Time) (past, upcoming []dto.ArtistAppearance) {
	past = []dto.ArtistAppearance{}
	upcoming = []dto.ArtistAppearance{}
	for _, show := range shows {
		entry := dto.ArtistAppearance{
			ArtistID:        show.ArtistID,
			ArtistImageLink: artistImageLink(show.Artist),
			StartTime:       formatShowTime(show.StartTime),
		}
		if show.Artist != nil {
			entry.ArtistName = show.Artist.Name
		}
		if isUpcoming(show, now) {
			upcoming = append(upcoming, entry)
		} else {
			past = append(past, entry)
		}
	}
	return past, upcoming
}

// partitionArtistShows splits an artist's shows into past and upcoming
// appearance records relative to now
func partitionArtistShows(artist *models.Artist, shows []*models.Show, now time.Time) (past, upcoming []dto.VenueAppearance) {
	past = []dto.VenueAppearance{}
	upcoming = []dto.VenueAppearance{}
	for _, show := range shows {
		entry := dto.VenueAppearance{
			VenueID:        show.VenueID,
			VenueImageLink: venueImageLink(show.Venue, artist),
			StartTime:      formatShowTime(show.StartTime),
		}
		if show.Venue != nil {
			entry.VenueName = show.Venue.Name
		}
		if isUpcoming(show, now) {
			upcoming = append(upcoming, entry)
		} else {
			past = append(past, entry)
		}
	}
	return past, upcoming
}
