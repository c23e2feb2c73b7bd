package dto

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeVenueForm(t *testing.T) {
	t.Run("FullForm", func(t *testing.T) {
		form := url.Values{
			"name":                {"The Fillmore"},
			"city":                {"San Francisco"},
			"state":               {"CA"},
			"address":             {"1805 Geary Blvd"},
			"phone":               {"415-346-6000"},
			"genres":              {"Jazz", "Classical", "Folk"},
			"image_link":          {"https://example.com/img.jpg"},
			"facebook_link":       {"https://facebook.com/fillmore"},
			"website":             {"https://thefillmore.com"},
			"seeking_talent":      {"True"},
			"seeking_description": {"Always booking"},
		}

		payload := NormalizeVenueForm(form)
		assert.Equal(t, "The Fillmore", payload.Name)
		assert.Equal(t, []string{"Jazz", "Classical", "Folk"}, payload.Genres)
		assert.True(t, payload.SeekingTalent)
		assert.Equal(t, "Always booking", payload.SeekingDescription)
	})

	t.Run("EmptyForm", func(t *testing.T) {
		payload := NormalizeVenueForm(url.Values{})
		assert.Equal(t, "", payload.Name)
		assert.Equal(t, "", payload.City)
		assert.NotNil(t, payload.Genres)
		assert.Empty(t, payload.Genres)
		assert.False(t, payload.SeekingTalent)
	})

	t.Run("SeekingFlagIsCaseSensitive", func(t *testing.T) {
		for _, value := range []string{"true", "TRUE", "on", "yes", "1", "False", ""} {
			form := url.Values{"seeking_talent": {value}}
			assert.False(t, NormalizeVenueForm(form).SeekingTalent, "value %q", value)
		}
		form := url.Values{"seeking_talent": {"True"}}
		assert.True(t, NormalizeVenueForm(form).SeekingTalent)
	})

	t.Run("GenresPreserveSubmissionOrder", func(t *testing.T) {
		form := url.Values{"genres": {"Folk", "Jazz", "Blues"}}
		assert.Equal(t, []string{"Folk", "Jazz", "Blues"}, NormalizeVenueForm(form).Genres)
	})

	t.Run("UnknownFieldsIgnored", func(t *testing.T) {
		form := url.Values{"name": {"V"}, "csrf_token": {"abc"}}
		payload := NormalizeVenueForm(form)
		assert.Equal(t, "V", payload.Name)
	})
}

func TestNormalizeArtistForm(t *testing.T) {
	form := url.Values{
		"name":             {"Guns N Petals"},
		"city":             {"San Francisco"},
		"state":            {"CA"},
		"genres":           {"Rock n Roll"},
		"seeking_venue":    {"True"},
		"venue_image_link": {"https://example.com/hall.jpg"},
	}

	payload := NormalizeArtistForm(form)
	assert.Equal(t, "Guns N Petals", payload.Name)
	assert.Equal(t, []string{"Rock n Roll"}, payload.Genres)
	assert.True(t, payload.SeekingVenue)
	assert.Equal(t, "https://example.com/hall.jpg", payload.VenueImageLink)
	assert.Equal(t, "", payload.Phone)

	assert.Equal(t, "", NormalizeArtistForm(url.Values{}).VenueImageLink)
}

func TestNormalizeShowForm(t *testing.T) {
	t.Run("RFC3339StartTime", func(t *testing.T) {
		form := url.Values{
			"artist_id":  {"4"},
			"venue_id":   {"1"},
			"start_time": {"2026-10-01T20:00:00Z"},
		}
		payload, vErr := NormalizeShowForm(form)
		require.Nil(t, vErr)
		assert.Equal(t, uint(4), payload.ArtistID)
		assert.Equal(t, uint(1), payload.VenueID)
		assert.Equal(t, time.Date(2026, 10, 1, 20, 0, 0, 0, time.UTC), payload.StartTime)
	})

	t.Run("SpaceSeparatedStartTime", func(t *testing.T) {
		form := url.Values{
			"artist_id":  {"4"},
			"venue_id":   {"1"},
			"start_time": {"2026-10-01 20:00:00"},
		}
		payload, vErr := NormalizeShowForm(form)
		require.Nil(t, vErr)
		assert.Equal(t, time.Date(2026, 10, 1, 20, 0, 0, 0, time.UTC), payload.StartTime)
	})

	t.Run("MissingFields", func(t *testing.T) {
		payload, vErr := NormalizeShowForm(url.Values{})
		assert.Nil(t, payload)
		require.NotNil(t, vErr)
		assert.Contains(t, vErr.Fields, "artist_id")
		assert.Contains(t, vErr.Fields, "venue_id")
		assert.Contains(t, vErr.Fields, "start_time")
	})

	t.Run("NonNumericID", func(t *testing.T) {
		form := url.Values{
			"artist_id":  {"abc"},
			"venue_id":   {"1"},
			"start_time": {"2026-10-01 20:00:00"},
		}
		payload, vErr := NormalizeShowForm(form)
		assert.Nil(t, payload)
		require.NotNil(t, vErr)
		assert.Contains(t, vErr.Fields, "artist_id")
		assert.NotContains(t, vErr.Fields, "venue_id")
	})

	t.Run("ZeroID", func(t *testing.T) {
		form := url.Values{
			"artist_id":  {"0"},
			"venue_id":   {"1"},
			"start_time": {"2026-10-01 20:00:00"},
		}
		_, vErr := NormalizeShowForm(form)
		require.NotNil(t, vErr)
		assert.Contains(t, vErr.Fields, "artist_id")
	})

	t.Run("BadStartTime", func(t *testing.T) {
		form := url.Values{
			"artist_id":  {"4"},
			"venue_id":   {"1"},
			"start_time": {"next tuesday"},
		}
		_, vErr := NormalizeShowForm(form)
		require.NotNil(t, vErr)
		assert.Contains(t, vErr.Fields, "start_time")
	})
}

func TestSeekingFlagRoundTrip(t *testing.T) {
	assert.Equal(t, "True", FormatSeekingFlag(true))
	assert.Equal(t, "False", FormatSeekingFlag(false))
	assert.True(t, ParseSeekingFlag(FormatSeekingFlag(true)))
	assert.False(t, ParseSeekingFlag(FormatSeekingFlag(false)))
}

func TestValidationErrorMessage(t *testing.T) {
	vErr := &ValidationError{Fields: map[string]string{
		"venue_id":  "required",
		"artist_id": "required",
	}}
	assert.Equal(t, "invalid form fields: artist_id, venue_id", vErr.Error())
}
