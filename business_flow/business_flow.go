// Package businessflow coordinates booking operations across the
// repositories: listing, search, detail assembly, and transactional
// create, update, and delete of venues, artists, and shows.
package businessflow

import (
	"context"

	"github.com/lib/pq"
	"github.com/stagedoor/stagedoor/app/dto"
	"github.com/stagedoor/stagedoor/models"
	"github.com/stagedoor/stagedoor/repository"
	"github.com/stagedoor/stagedoor/utils"
)

// Placeholder images served when an entity has no image link of its own.
// Overridable at startup via SetDefaultImageLinks.
var (
	DefaultArtistImageLink = "https://images.unsplash.com/photo-1569437061238-3cf61084f487?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=634&q=80"
	DefaultVenueImageLink  = "https://assets.entrepreneur.com/content/3x2/2000/20190705133921-shutterstock-208432186.jpeg?width=700&crop=2:1"
)

// SetDefaultImageLinks overrides the placeholder image links. Empty
// arguments leave the current value in place.
func SetDefaultImageLinks(artist, venue string) {
	if artist != "" {
		DefaultArtistImageLink = artist
	}
	if venue != "" {
		DefaultVenueImageLink = venue
	}
}

// ClientMetadata carries request-scoped client information into flows
type ClientMetadata struct {
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
	RequestID string `json:"request_id"`
}

func metadataFromContext(ctx context.Context) *ClientMetadata {
	md := &ClientMetadata{}
	if v, ok := ctx.Value(utils.IPAddressKey).(string); ok {
		md.IPAddress = v
	}
	if v, ok := ctx.Value(utils.UserAgentKey).(string); ok {
		md.UserAgent = v
	}
	if v, ok := ctx.Value(utils.RequestIDKey).(string); ok {
		md.RequestID = v
	}
	return md
}

// recordAudit writes one audit row describing a mutation attempt. Audit
// failures are swallowed: an unavailable audit trail must not fail the
// mutation it describes.
func recordAudit(ctx context.Context, repo repository.AuditLogRepository, entityKind string, entityID *uint, action, description string, changed []string, opErr error) {
	md := metadataFromContext(ctx)
	row := &models.AuditLog{
		EntityKind:    entityKind,
		EntityID:      entityID,
		Action:        action,
		Description:   utils.ToPtr(description),
		ChangedFields: pq.StringArray(changed),
		IPAddress:     utils.ToPtr(md.IPAddress),
		UserAgent:     utils.ToPtr(md.UserAgent),
		RequestID:     utils.ToPtr(md.RequestID),
		Success:       utils.ToPtr(opErr == nil),
		CreatedAt:     utils.UTCNow(),
	}
	if opErr != nil {
		row.ErrorMessage = utils.ToPtr(opErr.Error())
	}
	_ = repo.Save(ctx, row)
}

func venueFromPayload(payload *dto.VenuePayload) *models.Venue {
	return &models.Venue{
		Name:               payload.Name,
		City:               payload.City,
		State:              payload.State,
		Address:            payload.Address,
		Phone:              payload.Phone,
		ImageLink:          payload.ImageLink,
		FacebookLink:       payload.FacebookLink,
		Website:            payload.Website,
		SeekingTalent:      payload.SeekingTalent,
		SeekingDescription: payload.SeekingDescription,
		Genres:             models.EncodeGenres(payload.Genres),
	}
}

func artistFromPayload(payload *dto.ArtistPayload) *models.Artist {
	return &models.Artist{
		Name:               payload.Name,
		City:               payload.City,
		State:              payload.State,
		Phone:              payload.Phone,
		ImageLink:          payload.ImageLink,
		VenueImageLink:     payload.VenueImageLink,
		FacebookLink:       payload.FacebookLink,
		Website:            payload.Website,
		SeekingVenue:       payload.SeekingVenue,
		SeekingDescription: payload.SeekingDescription,
		Genres:             models.EncodeGenres(payload.Genres),
	}
}

// venueFieldNames and artistFieldNames feed the audit trail's
// changed-fields column. Updates are full replacements, so every field
// is reported as changed.
var venueFieldNames = []string{
	"name", "city", "state", "address", "phone", "genres",
	"image_link", "facebook_link", "website",
	"seeking_talent", "seeking_description",
}

var artistFieldNames = []string{
	"name", "city", "state", "phone", "genres",
	"image_link", "venue_image_link", "facebook_link", "website",
	"seeking_venue", "seeking_description",
}

var showFieldNames = []string{"artist_id", "venue_id", "start_time"}
