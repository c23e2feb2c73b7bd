package repository

import (
	"context"

	"github.com/stagedoor/stagedoor/models"
	"gorm.io/gorm"
)

// ArtistRepositoryImpl implements ArtistRepository interface
type ArtistRepositoryImpl struct {
	*BaseRepository[models.Artist, models.ArtistFilter]
}

// NewArtistRepository creates a new artist repository
func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &ArtistRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Artist, models.ArtistFilter](db),
	}
}

// ListAll retrieves every artist ordered by id ascending
func (r *ArtistRepositoryImpl) ListAll(ctx context.Context) ([]*models.Artist, error) {
	db := r.getDB(ctx)
	var rows []*models.Artist
	if err := db.Model(&models.Artist{}).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SearchByName retrieves artists whose name contains term, case-insensitively.
// An empty term matches every artist.
func (r *ArtistRepositoryImpl) SearchByName(ctx context.Context, term string) ([]*models.Artist, error) {
	db := r.getDB(ctx)
	var rows []*models.Artist
	if err := db.Model(&models.Artist{}).
		Where("name ILIKE ?", "%"+term+"%").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// applyFilter applies filter criteria to a GORM query
func (r *ArtistRepositoryImpl) applyFilter(query *gorm.DB, filter models.ArtistFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Name != nil {
		query = query.Where("name = ?", *filter.Name)
	}
	if filter.City != nil {
		query = query.Where("city = ?", *filter.City)
	}
	if filter.State != nil {
		query = query.Where("state = ?", *filter.State)
	}
	if filter.SeekingVenue != nil {
		query = query.Where("seeking_venue = ?", *filter.SeekingVenue)
	}
	return query
}

// ByFilter retrieves artists based on filter criteria
func (r *ArtistRepositoryImpl) ByFilter(ctx context.Context, filter models.ArtistFilter, orderBy string, limit, offset int) ([]*models.Artist, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Artist{}), filter)

	if orderBy == "" {
		orderBy = "id ASC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.Artist
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of artists matching the filter
func (r *ArtistRepositoryImpl) Count(ctx context.Context, filter models.ArtistFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Artist{}), filter)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
