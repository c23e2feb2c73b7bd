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

// VenueFlow defines venue business operations
type VenueFlow interface {
	ListVenues(ctx context.Context) (*dto.ListVenuesResponse, error)
	SearchVenues(ctx context.Context, term string) (*dto.SearchResultsResponse, error)
	GetVenue(ctx context.Context, id uint) (*dto.VenueDetailResponse, error)
	VenueFormValues(ctx context.Context, id uint) (map[string]interface{}, error)
	CreateVenue(ctx context.Context, payload *dto.VenuePayload) (*dto.MutationResponse, error)
	UpdateVenue(ctx context.Context, id uint, payload *dto.VenuePayload) (*dto.MutationResponse, error)
	DeleteVenue(ctx context.Context, id uint) (*dto.MutationResponse, error)
}

// VenueFlowImpl implements VenueFlow
type VenueFlowImpl struct {
	db        *gorm.DB
	venueRepo repository.VenueRepository
	showRepo  repository.ShowRepository
	auditRepo repository.AuditLogRepository
}

// NewVenueFlow creates a new venue flow
func NewVenueFlow(db *gorm.DB, venueRepo repository.VenueRepository, showRepo repository.ShowRepository, auditRepo repository.AuditLogRepository) VenueFlow {
	return &VenueFlowImpl{
		db:        db,
		venueRepo: venueRepo,
		showRepo:  showRepo,
		auditRepo: auditRepo,
	}
}

// ListVenues returns every venue grouped by (city, state). Groups and
// the venues inside them follow ascending venue id, so a group appears
// at the position of the first venue it contains.
func (f *VenueFlowImpl) ListVenues(ctx context.Context) (*dto.ListVenuesResponse, error) {
	venues, err := f.venueRepo.ListAll(ctx)
	if err != nil {
		return nil, NewBusinessError("LIST_VENUES_FAILED", "could not list venues", err)
	}

	upcoming, err := f.upcomingCountByVenue(ctx)
	if err != nil {
		return nil, NewBusinessError("LIST_VENUES_FAILED", "could not count upcoming shows", err)
	}

	type areaKey struct{ city, state string }
	order := []areaKey{}
	grouped := map[areaKey][]dto.VenueListItem{}
	for _, venue := range venues {
		key := areaKey{venue.City, venue.State}
		if _, seen := grouped[key]; !seen {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], dto.VenueListItem{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: upcoming[venue.ID],
		})
	}

	areas := make([]dto.CityVenues, 0, len(order))
	for _, key := range order {
		areas = append(areas, dto.CityVenues{
			City:   key.city,
			State:  key.state,
			Venues: grouped[key],
		})
	}
	return &dto.ListVenuesResponse{Areas: areas}, nil
}

func (f *VenueFlowImpl) upcomingCountByVenue(ctx context.Context) (map[uint]int, error) {
	now := utils.UTCNow()
	shows, err := f.showRepo.ByFilter(ctx, models.ShowFilter{StartsAfter: &now}, "", 0, 0)
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int, len(shows))
	for _, show := range shows {
		counts[show.VenueID]++
	}
	return counts, nil
}

// SearchVenues performs a case-insensitive substring search on venue names
func (f *VenueFlowImpl) SearchVenues(ctx context.Context, term string) (*dto.SearchResultsResponse, error) {
	venues, err := f.venueRepo.SearchByName(ctx, term)
	if err != nil {
		return nil, NewBusinessError("SEARCH_VENUES_FAILED", "could not search venues", err)
	}
	results := make([]dto.SearchResult, 0, len(venues))
	for _, venue := range venues {
		results = append(results, dto.SearchResult{ID: venue.ID, Name: venue.Name})
	}
	return &dto.SearchResultsResponse{Count: len(results), Data: results}, nil
}

// GetVenue assembles the venue detail page: decoded genres plus past
// and upcoming shows with their artists
func (f *VenueFlowImpl) GetVenue(ctx context.Context, id uint) (*dto.VenueDetailResponse, error) {
	venue, err := f.venueRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("GET_VENUE_FAILED", "could not load venue", err)
	}
	if venue == nil {
		return nil, NewBusinessError("VENUE_NOT_FOUND", "venue not found", ErrVenueNotFound)
	}

	shows, err := f.showRepo.ListByVenue(ctx, id)
	if err != nil {
		return nil, NewBusinessError("GET_VENUE_FAILED", "could not load venue shows", err)
	}
	past, upcoming := partitionVenueShows(shows, utils.UTCNow())

	return &dto.VenueDetailResponse{
		ID:                 venue.ID,
		Name:               venue.Name,
		Genres:             models.DecodeGenres(venue.Genres),
		Address:            venue.Address,
		City:               venue.City,
		State:              venue.State,
		Phone:              venue.Phone,
		Website:            venue.Website,
		FacebookLink:       venue.FacebookLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		ImageLink:          venueImageLink(venue, nil),
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// VenueFormValues returns the venue's stored fields encoded for the
// edit form: genres as a tag list and the seeking flag as "True"/"False"
func (f *VenueFlowImpl) VenueFormValues(ctx context.Context, id uint) (map[string]interface{}, error) {
	venue, err := f.venueRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("GET_VENUE_FAILED", "could not load venue", err)
	}
	if venue == nil {
		return nil, NewBusinessError("VENUE_NOT_FOUND", "venue not found", ErrVenueNotFound)
	}
	return map[string]interface{}{
		"name":                venue.Name,
		"city":                venue.City,
		"state":               venue.State,
		"address":             venue.Address,
		"phone":               venue.Phone,
		"genres":              models.DecodeGenres(venue.Genres),
		"image_link":          venue.ImageLink,
		"facebook_link":       venue.FacebookLink,
		"website":             venue.Website,
		"seeking_talent":      dto.FormatSeekingFlag(venue.SeekingTalent),
		"seeking_description": venue.SeekingDescription,
	}, nil
}

// CreateVenue persists a new venue inside a transaction
func (f *VenueFlowImpl) CreateVenue(ctx context.Context, payload *dto.VenuePayload) (*dto.MutationResponse, error) {
	venue := venueFromPayload(payload)

	err := repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		return f.venueRepo.Save(txCtx, venue)
	})
	if err != nil {
		recordAudit(ctx, f.auditRepo, models.EntityKindVenue, nil, models.AuditActionVenueCreated, "create venue "+payload.Name, venueFieldNames, err)
		return nil, NewBusinessError("CREATE_VENUE_FAILED",
			fmt.Sprintf("An error occurred. Venue %s could not be listed.", payload.Name), ErrStoreFailure)
	}

	recordAudit(ctx, f.auditRepo, models.EntityKindVenue, &venue.ID, models.AuditActionVenueCreated, "create venue "+venue.Name, venueFieldNames, nil)
	return &dto.MutationResponse{
		ID:      venue.ID,
		Message: fmt.Sprintf("Venue %s was successfully listed!", venue.Name),
	}, nil
}

// UpdateVenue replaces every stored field of an existing venue with the
// normalized payload
func (f *VenueFlowImpl) UpdateVenue(ctx context.Context, id uint, payload *dto.VenuePayload) (*dto.MutationResponse, error) {
	existing, err := f.venueRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("UPDATE_VENUE_FAILED", "could not load venue", err)
	}
	if existing == nil {
		return nil, NewBusinessError("VENUE_NOT_FOUND", "venue not found", ErrVenueNotFound)
	}

	updated := venueFromPayload(payload)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	err = repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		return f.venueRepo.Replace(txCtx, updated)
	})
	if err != nil {
		recordAudit(ctx, f.auditRepo, models.EntityKindVenue, &id, models.AuditActionVenueUpdated, "update venue "+payload.Name, venueFieldNames, err)
		return nil, NewBusinessError("UPDATE_VENUE_FAILED",
			fmt.Sprintf("An error occurred. Venue %s could not be updated.", payload.Name), ErrStoreFailure)
	}

	recordAudit(ctx, f.auditRepo, models.EntityKindVenue, &id, models.AuditActionVenueUpdated, "update venue "+updated.Name, venueFieldNames, nil)
	return &dto.MutationResponse{
		ID:      updated.ID,
		Message: fmt.Sprintf("Venue %s was successfully updated!", updated.Name),
	}, nil
}

// DeleteVenue removes a venue and every show booked at it in a single
// transaction. Artists referenced by those shows are untouched.
func (f *VenueFlowImpl) DeleteVenue(ctx context.Context, id uint) (*dto.MutationResponse, error) {
	venue, err := f.venueRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("DELETE_VENUE_FAILED", "could not load venue", err)
	}
	if venue == nil {
		return nil, NewBusinessError("VENUE_NOT_FOUND", "venue not found", ErrVenueNotFound)
	}

	err = repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.showRepo.DeleteByVenue(txCtx, id); err != nil {
			return err
		}
		return f.venueRepo.DeleteByID(txCtx, id)
	})
	if err != nil {
		recordAudit(ctx, f.auditRepo, models.EntityKindVenue, &id, models.AuditActionVenueDeleted, "delete venue "+venue.Name, nil, err)
		return nil, NewBusinessError("DELETE_VENUE_FAILED",
			fmt.Sprintf("An error occurred. Venue %s could not be deleted.", venue.Name), ErrStoreFailure)
	}

	recordAudit(ctx, f.auditRepo, models.EntityKindVenue, &id, models.AuditActionVenueDeleted, "delete venue "+venue.Name, nil, nil)
	return &dto.MutationResponse{
		ID:      venue.ID,
		Message: fmt.Sprintf("Venue %s was successfully deleted.", venue.Name),
	}, nil
}
