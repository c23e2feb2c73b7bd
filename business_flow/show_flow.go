package businessflow

import (
	"context"

	"github.com/stagedoor/stagedoor/app/dto"
	"github.com/stagedoor/stagedoor/models"
	"github.com/stagedoor/stagedoor/repository"
	"github.com/stagedoor/stagedoor/utils"
	"gorm.io/gorm"
)

// ShowFlow defines show business operations. Shows are immutable once
// booked; there is no update or delete.
type ShowFlow interface {
	ListShows(ctx context.Context) (*dto.ListShowsResponse, error)
	GetShow(ctx context.Context, id uint) (*dto.ListShowsResponse, error)
	CreateShow(ctx context.Context, payload *dto.ShowPayload) (*dto.MutationResponse, error)
}

// ShowFlowImpl implements ShowFlow
type ShowFlowImpl struct {
	db         *gorm.DB
	showRepo   repository.ShowRepository
	artistRepo repository.ArtistRepository
	venueRepo  repository.VenueRepository
	auditRepo  repository.AuditLogRepository
}

// NewShowFlow creates a new show flow
func NewShowFlow(db *gorm.DB, showRepo repository.ShowRepository, artistRepo repository.ArtistRepository, venueRepo repository.VenueRepository, auditRepo repository.AuditLogRepository) ShowFlow {
	return &ShowFlowImpl{
		db:         db,
		showRepo:   showRepo,
		artistRepo: artistRepo,
		venueRepo:  venueRepo,
		auditRepo:  auditRepo,
	}
}

func showListItem(show *models.Show) dto.ShowListItem {
	item := dto.ShowListItem{
		ID:              show.ID,
		VenueID:         show.VenueID,
		ArtistID:        show.ArtistID,
		ArtistImageLink: artistImageLink(show.Artist),
		StartTime:       formatShowTime(show.StartTime),
	}
	if show.Venue != nil {
		item.VenueName = show.Venue.Name
	}
	if show.Artist != nil {
		item.ArtistName = show.Artist.Name
	}
	return item
}

// ListShows returns every show, past and upcoming alike, flattened
// across its venue and artist
func (f *ShowFlowImpl) ListShows(ctx context.Context) (*dto.ListShowsResponse, error) {
	shows, err := f.showRepo.ListAll(ctx)
	if err != nil {
		return nil, NewBusinessError("LIST_SHOWS_FAILED", "could not list shows", err)
	}
	items := make([]dto.ShowListItem, 0, len(shows))
	for _, show := range shows {
		items = append(items, showListItem(show))
	}
	return &dto.ListShowsResponse{Shows: items}, nil
}

// GetShow returns a single show as a one-element listing
func (f *ShowFlowImpl) GetShow(ctx context.Context, id uint) (*dto.ListShowsResponse, error) {
	filter := models.ShowFilter{ID: &id}
	shows, err := f.showRepo.ByFilter(ctx, filter, "", 1, 0)
	if err != nil {
		return nil, NewBusinessError("GET_SHOW_FAILED", "could not load show", err)
	}
	if len(shows) == 0 {
		return nil, NewBusinessError("SHOW_NOT_FOUND", "show not found", ErrShowNotFound)
	}

	show := shows[0]
	// ByFilter does not preload relations; resolve them explicitly
	if show.Artist == nil {
		artist, err := f.artistRepo.ByID(ctx, show.ArtistID)
		if err != nil {
			return nil, NewBusinessError("GET_SHOW_FAILED", "could not load show artist", err)
		}
		show.Artist = artist
	}
	if show.Venue == nil {
		venue, err := f.venueRepo.ByID(ctx, show.VenueID)
		if err != nil {
			return nil, NewBusinessError("GET_SHOW_FAILED", "could not load show venue", err)
		}
		show.Venue = venue
	}

	return &dto.ListShowsResponse{Shows: []dto.ShowListItem{showListItem(show)}}, nil
}

// CreateShow books an artist at a venue. Both referenced entities must
// exist; a dangling reference fails before anything is written.
func (f *ShowFlowImpl) CreateShow(ctx context.Context, payload *dto.ShowPayload) (*dto.MutationResponse, error) {
	artist, err := f.artistRepo.ByID(ctx, payload.ArtistID)
	if err != nil {
		return nil, NewBusinessError("CREATE_SHOW_FAILED", "could not verify artist", err)
	}
	if artist == nil {
		return nil, NewBusinessError("ARTIST_NOT_FOUND", "artist not found", ErrArtistNotFound)
	}

	venue, err := f.venueRepo.ByID(ctx, payload.VenueID)
	if err != nil {
		return nil, NewBusinessError("CREATE_SHOW_FAILED", "could not verify venue", err)
	}
	if venue == nil {
		return nil, NewBusinessError("VENUE_NOT_FOUND", "venue not found", ErrVenueNotFound)
	}

	show := &models.Show{
		ArtistID:  payload.ArtistID,
		VenueID:   payload.VenueID,
		StartTime: utils.TimeToUTC(payload.StartTime),
	}
	err = repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		return f.showRepo.Save(txCtx, show)
	})
	if err != nil {
		recordAudit(ctx, f.auditRepo, models.EntityKindShow, nil, models.AuditActionShowCreated, "create show", showFieldNames, err)
		return nil, NewBusinessError("CREATE_SHOW_FAILED",
			"An error occurred. Show could not be listed.", ErrStoreFailure)
	}

	recordAudit(ctx, f.auditRepo, models.EntityKindShow, &show.ID, models.AuditActionShowCreated, "create show", showFieldNames, nil)
	return &dto.MutationResponse{
		ID:      show.ID,
		Message: "Show was successfully listed!",
	}, nil
}
