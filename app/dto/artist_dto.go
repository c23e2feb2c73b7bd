package dto

// ArtistListItem is one row of the artist index
type ArtistListItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ListArtistsResponse is the body of the artist index endpoint
type ListArtistsResponse struct {
	Artists []ArtistListItem `json:"artists"`
}

// VenueAppearance is one show as rendered on an artist page
type VenueAppearance struct {
	VenueID        uint   `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// ArtistDetailResponse is the body of the artist detail endpoint
type ArtistDetailResponse struct {
	ID                 uint              `json:"id"`
	Name               string            `json:"name"`
	Genres             []string          `json:"genres"`
	City               string            `json:"city"`
	State              string            `json:"state"`
	Phone              string            `json:"phone"`
	Website            string            `json:"website"`
	FacebookLink       string            `json:"facebook_link"`
	SeekingVenue       bool              `json:"seeking_venue"`
	SeekingDescription string            `json:"seeking_description"`
	ImageLink          string            `json:"image_link"`
	VenueImageLink     string            `json:"venue_image_link"`
	PastShows          []VenueAppearance `json:"past_shows"`
	UpcomingShows      []VenueAppearance `json:"upcoming_shows"`
	PastShowsCount     int               `json:"past_shows_count"`
	UpcomingShowsCount int               `json:"upcoming_shows_count"`
}
