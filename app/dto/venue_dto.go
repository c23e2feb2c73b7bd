package dto

// VenueListItem is one venue row inside a city group
type VenueListItem struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// CityVenues groups the venues of one (city, state) pair. Groups appear
// in order of the lowest venue id they contain.
type CityVenues struct {
	City   string          `json:"city"`
	State  string          `json:"state"`
	Venues []VenueListItem `json:"venues"`
}

// ListVenuesResponse is the body of the venue index endpoint
type ListVenuesResponse struct {
	Areas []CityVenues `json:"areas"`
}

// ArtistAppearance is one show as rendered on a venue page
type ArtistAppearance struct {
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueDetailResponse is the body of the venue detail endpoint
type VenueDetailResponse struct {
	ID                 uint               `json:"id"`
	Name               string             `json:"name"`
	Genres             []string           `json:"genres"`
	Address            string             `json:"address"`
	City               string             `json:"city"`
	State              string             `json:"state"`
	Phone              string             `json:"phone"`
	Website            string             `json:"website"`
	FacebookLink       string             `json:"facebook_link"`
	SeekingTalent      bool               `json:"seeking_talent"`
	SeekingDescription string             `json:"seeking_description"`
	ImageLink          string             `json:"image_link"`
	PastShows          []ArtistAppearance `json:"past_shows"`
	UpcomingShows      []ArtistAppearance `json:"upcoming_shows"`
	PastShowsCount     int                `json:"past_shows_count"`
	UpcomingShowsCount int                `json:"upcoming_shows_count"`
}
