package businessflow

import (
	"context"
	"fmt"

	"github.com/stagedoor/stagedoor/app/dto"
	"github.com/stagedoor/stagedoor/models"
	"github.com/stagedoor/stagedoor/repository"
	"github.com/stagedoor/stagedoor/utils"
	"gorm.io/gorm"
)

// ArtistFlow defines artist business operations. Artists cannot be
// deleted; only venues carry a delete operation.
type ArtistFlow interface {
	ListArtists(ctx context.Context) (*dto.ListArtistsResponse, error)
	SearchArtists(ctx context.Context, term string) (*dto.SearchResultsResponse, error)
	GetArtist(ctx context.Context, id uint) (*dto.ArtistDetailResponse, error)
	ArtistFormValues(ctx context.Context, id uint) (map[string]interface{}, error)
	CreateArtist(ctx context.Context, payload *dto.ArtistPayload) (*dto.MutationResponse, error)
	UpdateArtist(ctx context.Context, id uint, payload *dto.ArtistPayload) (*dto.MutationResponse, error)
}

// ArtistFlowImpl implements ArtistFlow
type ArtistFlowImpl struct {
	db         *gorm.DB
	artistRepo repository.ArtistRepository
	showRepo   repository.ShowRepository
	auditRepo  repository.AuditLogRepository
}

// NewArtistFlow creates a new artist flow
func NewArtistFlow(db *gorm.DB, artistRepo repository.ArtistRepository, showRepo repository.ShowRepository, auditRepo repository.AuditLogRepository) ArtistFlow {
	return &ArtistFlowImpl{
		db:         db,
		artistRepo: artistRepo,
		showRepo:   showRepo,
		auditRepo:  auditRepo,
	}
}

// ListArtists returns every artist as a flat id and name listing,
// ordered by ascending id
func (f *ArtistFlowImpl) ListArtists(ctx context.Context) (*dto.ListArtistsResponse, error) {
	artists, err := f.artistRepo.ListAll(ctx)
	if err != nil {
		return nil, NewBusinessError("LIST_ARTISTS_FAILED", "could not list artists", err)
	}
	items := make([]dto.ArtistListItem, 0, len(artists))
	for _, artist := range artists {
		items = append(items, dto.ArtistListItem{ID: artist.ID, Name: artist.Name})
	}
	return &dto.ListArtistsResponse{Artists: items}, nil
}

// SearchArtists performs a case-insensitive substring search on artist names
func (f *ArtistFlowImpl) SearchArtists(ctx context.Context, term string) (*dto.SearchResultsResponse, error) {
	artists, err := f.artistRepo.SearchByName(ctx, term)
	if err != nil {
		return nil, NewBusinessError("SEARCH_ARTISTS_FAILED", "could not search artists", err)
	}
	results := make([]dto.SearchResult, 0, len(artists))
	for _, artist := range artists {
		results = append(results, dto.SearchResult{ID: artist.ID, Name: artist.Name})
	}
	return &dto.SearchResultsResponse{Count: len(results), Data: results}, nil
}

// GetArtist assembles the artist detail page: decoded genres plus past
// and upcoming shows with their venues
func (f *ArtistFlowImpl) GetArtist(ctx context.Context, id uint) (*dto.ArtistDetailResponse, error) {
	artist, err := f.artistRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("GET_ARTIST_FAILED", "could not load artist", err)
	}
	if artist == nil {
		return nil, NewBusinessError("ARTIST_NOT_FOUND", "artist not found", ErrArtistNotFound)
	}

	shows, err := f.showRepo.ListByArtist(ctx, id)
	if err != nil {
		return nil, NewBusinessError("GET_ARTIST_FAILED", "could not load artist shows", err)
	}
	past, upcoming := partitionArtistShows(artist, shows, utils.UTCNow())

	return &dto.ArtistDetailResponse{
		ID:                 artist.ID,
		Name:               artist.Name,
		Genres:             models.DecodeGenres(artist.Genres),
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Website:            artist.Website,
		FacebookLink:       artist.FacebookLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		ImageLink:          artistImageLink(artist),
		VenueImageLink:     artist.VenueImageLink,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// ArtistFormValues returns the artist's stored fields encoded for the
// edit form
func (f *ArtistFlowImpl) ArtistFormValues(ctx context.Context, id uint) (map[string]interface{}, error) {
	artist, err := f.artistRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("GET_ARTIST_FAILED", "could not load artist", err)
	}
	if artist == nil {
		return nil, NewBusinessError("ARTIST_NOT_FOUND", "artist not found", ErrArtistNotFound)
	}
	return map[string]interface{}{
		"name":                artist.Name,
		"city":                artist.City,
		"state":               artist.State,
		"phone":               artist.Phone,
		"genres":              models.DecodeGenres(artist.Genres),
		"image_link":          artist.ImageLink,
		"venue_image_link":    artist.VenueImageLink,
		"facebook_link":       artist.FacebookLink,
		"website":             artist.Website,
		"seeking_venue":       dto.FormatSeekingFlag(artist.SeekingVenue),
		"seeking_description": artist.SeekingDescription,
	}, nil
}

// CreateArtist persists a new artist inside a transaction
func (f *ArtistFlowImpl) CreateArtist(ctx context.Context, payload *dto.ArtistPayload) (*dto.MutationResponse, error) {
	artist := artistFromPayload(payload)

	err := repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		return f.artistRepo.Save(txCtx, artist)
	})
	if err != nil {
		recordAudit(ctx, f.auditRepo, models.EntityKindArtist, nil, models.AuditActionArtistCreated, "create artist "+payload.Name, artistFieldNames, err)
		return nil, NewBusinessError("CREATE_ARTIST_FAILED",
			fmt.Sprintf("An error occurred. Artist %s could not be listed.", payload.Name), ErrStoreFailure)
	}

	recordAudit(ctx, f.auditRepo, models.EntityKindArtist, &artist.ID, models.AuditActionArtistCreated, "create artist "+artist.Name, artistFieldNames, nil)
	return &dto.MutationResponse{
		ID:      artist.ID,
		Message: fmt.Sprintf("Artist %s was successfully listed!", artist.Name),
	}, nil
}

// UpdateArtist replaces every stored field of an existing artist with
// the normalized payload
func (f *ArtistFlowImpl) UpdateArtist(ctx context.Context, id uint, payload *dto.ArtistPayload) (*dto.MutationResponse, error) {
	existing, err := f.artistRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("UPDATE_ARTIST_FAILED", "could not load artist", err)
	}
	if existing == nil {
		return nil, NewBusinessError("ARTIST_NOT_FOUND", "artist not found", ErrArtistNotFound)
	}

	updated := artistFromPayload(payload)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	err = repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		return f.artistRepo.Replace(txCtx, updated)
	})
	if err != nil {
		recordAudit(ctx, f.auditRepo, models.EntityKindArtist, &id, models.AuditActionArtistUpdated, "update artist "+payload.Name, artistFieldNames, err)
		return nil, NewBusinessError("UPDATE_ARTIST_FAILED",
			fmt.Sprintf("An error occurred. Artist %s could not be updated.", payload.Name), ErrStoreFailure)
	}

	recordAudit(ctx, f.auditRepo, models.EntityKindArtist, &id, models.AuditActionArtistUpdated, "update artist "+updated.Name, artistFieldNames, nil)
	return &dto.MutationResponse{
		ID:      updated.ID,
		Message: fmt.Sprintf("Artist %s was successfully updated!", updated.Name),
	}, nil
}
