package dto

// ShowListItem is one row of the show index, flattened across the
// show's venue and artist
type ShowListItem struct {
	ID              uint   `json:"id"`
	VenueID         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ListShowsResponse is the body of the show index endpoint. The show
// detail endpoint reuses it with a single-element list.
type ListShowsResponse struct {
	Shows []ShowListItem `json:"shows"`
}
