// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"

	"github.com/stagedoor/stagedoor/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	Count(ctx context.Context, filter F) (int64, error)
}

// VenueRepository defines operations for venues
type VenueRepository interface {
	Repository[models.Venue, models.VenueFilter]
	ListAll(ctx context.Context) ([]*models.Venue, error)
	SearchByName(ctx context.Context, term string) ([]*models.Venue, error)
	Replace(ctx context.Context, venue *models.Venue) error
	DeleteByID(ctx context.Context, id uint) error
}

// ArtistRepository defines operations for artists
type ArtistRepository interface {
	Repository[models.Artist, models.ArtistFilter]
	ListAll(ctx context.Context) ([]*models.Artist, error)
	SearchByName(ctx context.Context, term string) ([]*models.Artist, error)
	Replace(ctx context.Context, artist *models.Artist) error
}

// ShowRepository defines operations for shows
type ShowRepository interface {
	Repository[models.Show, models.ShowFilter]
	ListAll(ctx context.Context) ([]*models.Show, error)
	ListByVenue(ctx context.Context, venueID uint) ([]*models.Show, error)
	ListByArtist(ctx context.Context, artistID uint) ([]*models.Show, error)
	DeleteByVenue(ctx context.Context, venueID uint) error
}

// AuditLogRepository defines operations for audit logs
type AuditLogRepository interface {
	Repository[models.AuditLog, models.AuditLogFilter]
	ListByEntity(ctx context.Context, entityKind string, entityID uint, limit, offset int) ([]*models.AuditLog, error)
}
