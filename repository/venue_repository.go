package repository

import (
	"context"

	"github.com/stagedoor/stagedoor/models"
	"gorm.io/gorm"
)

// VenueRepositoryImpl implements VenueRepository interface
type VenueRepositoryImpl struct {
	*BaseRepository[models.Venue, models.VenueFilter]
}

// NewVenueRepository creates a new venue repository
func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &VenueRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Venue, models.VenueFilter](db),
	}
}

// ListAll retrieves every venue ordered by id ascending
func (r *VenueRepositoryImpl) ListAll(ctx context.Context) ([]*models.Venue, error) {
	db := r.getDB(ctx)
	var rows []*models.Venue
	if err := db.Model(&models.Venue{}).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SearchByName retrieves venues whose name contains term, case-insensitively.
// An empty term matches every venue.
func (r *VenueRepositoryImpl) SearchByName(ctx context.Context, term string) ([]*models.Venue, error) {
	db := r.getDB(ctx)
	var rows []*models.Venue
	if err := db.Model(&models.Venue{}).
		Where("name ILIKE ?", "%"+term+"%").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// applyFilter applies filter criteria to a GORM query
func (r *VenueRepositoryImpl) applyFilter(query *gorm.DB, filter models.VenueFilter) *gorm.DB {
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
	if filter.SeekingTalent != nil {
		query = query.Where("seeking_talent = ?", *filter.SeekingTalent)
	}
	return query
}

// ByFilter retrieves venues based on filter criteria
func (r *VenueRepositoryImpl) ByFilter(ctx context.Context, filter models.VenueFilter, orderBy string, limit, offset int) ([]*models.Venue, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Venue{}), filter)

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

	var rows []*models.Venue
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of venues matching the filter
func (r *VenueRepositoryImpl) Count(ctx context.Context, filter models.VenueFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Venue{}), filter)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
