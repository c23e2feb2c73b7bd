package dto

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Field kinds understood by the form normalizer
const (
	FieldText    = "text"
	FieldSeeking = "seeking"
	FieldGenres  = "genres"
)

// SeekingFlagTrue is the exact literal an enabled seeking flag carries
// across the form boundary. Comparison is case-sensitive: any other
// value, including "true" or "on", normalizes to false.
const SeekingFlagTrue = "True"

// SeekingFlagFalse is the literal written back for a disabled flag
const SeekingFlagFalse = "False"

// FormField describes one field of an entity form: its name, how its
// submitted value is decoded, and the default applied when absent
type FormField struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Default string `json:"default,omitempty"`
}

// VenueFormSchema drives normalization of venue create and edit forms
var VenueFormSchema = []FormField{
	{Name: "name", Kind: FieldText},
	{Name: "city", Kind: FieldText},
	{Name: "state", Kind: FieldText},
	{Name: "address", Kind: FieldText},
	{Name: "phone", Kind: FieldText},
	{Name: "genres", Kind: FieldGenres},
	{Name: "image_link", Kind: FieldText},
	{Name: "facebook_link", Kind: FieldText},
	{Name: "website", Kind: FieldText},
	{Name: "seeking_talent", Kind: FieldSeeking},
	{Name: "seeking_description", Kind: FieldText},
}

// ArtistFormSchema drives normalization of artist create and edit forms
var ArtistFormSchema = []FormField{
	{Name: "name", Kind: FieldText},
	{Name: "city", Kind: FieldText},
	{Name: "state", Kind: FieldText},
	{Name: "phone", Kind: FieldText},
	{Name: "genres", Kind: FieldGenres},
	{Name: "image_link", Kind: FieldText},
	{Name: "venue_image_link", Kind: FieldText},
	{Name: "facebook_link", Kind: FieldText},
	{Name: "website", Kind: FieldText},
	{Name: "seeking_venue", Kind: FieldSeeking},
	{Name: "seeking_description", Kind: FieldText},
}

// ShowFormSchema lists the show form fields; all three are required
var ShowFormSchema = []FormField{
	{Name: "artist_id", Kind: FieldText},
	{Name: "venue_id", Kind: FieldText},
	{Name: "start_time", Kind: FieldText},
}

// showTimeLayouts are accepted start_time encodings, tried in order
var showTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// ValidationError reports missing or malformed form fields by name
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid form fields: %s", strings.Join(names, ", "))
}

// ParseSeekingFlag decodes a submitted seeking flag value
func ParseSeekingFlag(value string) bool {
	return value == SeekingFlagTrue
}

// FormatSeekingFlag encodes a seeking flag for the form boundary
func FormatSeekingFlag(enabled bool) string {
	if enabled {
		return SeekingFlagTrue
	}
	return SeekingFlagFalse
}

// VenuePayload is a normalized venue form ready for persistence
type VenuePayload struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	Genres             []string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingTalent      bool
	SeekingDescription string
}

// ArtistPayload is a normalized artist form ready for persistence.
// VenueImageLink is the artist's preferred stand-in image for venues
// that carry none of their own.
type ArtistPayload struct {
	Name               string
	City               string
	State              string
	Phone              string
	Genres             []string
	ImageLink          string
	VenueImageLink     string
	FacebookLink       string
	Website            string
	SeekingVenue       bool
	SeekingDescription string
}

// ShowPayload is a normalized show form ready for persistence
type ShowPayload struct {
	ArtistID  uint
	VenueID   uint
	StartTime time.Time
}

// normalizedForm holds decoded values keyed by field name. Genre fields
// keep every submitted value in submission order.
type normalizedForm struct {
	text   map[string]string
	flags  map[string]bool
	genres map[string][]string
}

// normalizeForm decodes form against schema. Absent text fields take
// the schema default (empty string unless stated), absent flags decode
// to false, and absent genre fields decode to an empty list. Fields not
// named by the schema are ignored.
func normalizeForm(form url.Values, schema []FormField) normalizedForm {
	out := normalizedForm{
		text:   make(map[string]string),
		flags:  make(map[string]bool),
		genres: make(map[string][]string),
	}
	for _, field := range schema {
		switch field.Kind {
		case FieldSeeking:
			out.flags[field.Name] = ParseSeekingFlag(form.Get(field.Name))
		case FieldGenres:
			tags := []string{}
			if values, ok := form[field.Name]; ok {
				tags = append(tags, values...)
			}
			out.genres[field.Name] = tags
		default:
			value := form.Get(field.Name)
			if value == "" {
				value = field.Default
			}
			out.text[field.Name] = value
		}
	}
	return out
}

// NormalizeVenueForm decodes a submitted venue form. It never fails:
// every field has a well-defined value for any input.
func NormalizeVenueForm(form url.Values) *VenuePayload {
	n := normalizeForm(form, VenueFormSchema)
	return &VenuePayload{
		Name:               n.text["name"],
		City:               n.text["city"],
		State:              n.text["state"],
		Address:            n.text["address"],
		Phone:              n.text["phone"],
		Genres:             n.genres["genres"],
		ImageLink:          n.text["image_link"],
		FacebookLink:       n.text["facebook_link"],
		Website:            n.text["website"],
		SeekingTalent:      n.flags["seeking_talent"],
		SeekingDescription: n.text["seeking_description"],
	}
}

// NormalizeArtistForm decodes a submitted artist form
func NormalizeArtistForm(form url.Values) *ArtistPayload {
	n := normalizeForm(form, ArtistFormSchema)
	return &ArtistPayload{
		Name:               n.text["name"],
		City:               n.text["city"],
		State:              n.text["state"],
		Phone:              n.text["phone"],
		Genres:             n.genres["genres"],
		ImageLink:          n.text["image_link"],
		VenueImageLink:     n.text["venue_image_link"],
		FacebookLink:       n.text["facebook_link"],
		Website:            n.text["website"],
		SeekingVenue:       n.flags["seeking_venue"],
		SeekingDescription: n.text["seeking_description"],
	}
}

// NormalizeShowForm decodes a submitted show form. Unlike the venue and
// artist forms, a show form has no usable defaults: artist_id and
// venue_id must be positive integers and start_time must parse.
func NormalizeShowForm(form url.Values) (*ShowPayload, *ValidationError) {
	n := normalizeForm(form, ShowFormSchema)
	invalid := make(map[string]string)

	artistID, err := parseEntityID(n.text["artist_id"])
	if err != nil {
		invalid["artist_id"] = err.Error()
	}
	venueID, err := parseEntityID(n.text["venue_id"])
	if err != nil {
		invalid["venue_id"] = err.Error()
	}
	startTime, err := parseShowTime(n.text["start_time"])
	if err != nil {
		invalid["start_time"] = err.Error()
	}

	if len(invalid) > 0 {
		return nil, &ValidationError{Fields: invalid}
	}
	return &ShowPayload{ArtistID: artistID, VenueID: venueID, StartTime: startTime}, nil
}

func parseEntityID(value string) (uint, error) {
	if value == "" {
		return 0, fmt.Errorf("required")
	}
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("must be a positive integer")
	}
	return uint(id), nil
}

func parseShowTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("required")
	}
	for _, layout := range showTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("must be an RFC3339 or %q timestamp", showTimeLayouts[1])
}
