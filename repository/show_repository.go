package repository

import (
	"context"
	"fmt"

	"github.com/stagedoor/stagedoor/models"
	"gorm.io/gorm"
)

// ShowRepositoryImpl implements ShowRepository interface
type ShowRepositoryImpl struct {
	*BaseRepository[models.Show, models.ShowFilter]
}

// NewShowRepository creates a new show repository
func NewShowRepository(db *gorm.DB) ShowRepository {
	return &ShowRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Show, models.ShowFilter](db),
	}
}

// ListAll retrieves every show with its artist and venue preloaded,
// ordered by id ascending
func (r *ShowRepositoryImpl) ListAll(ctx context.Context) ([]*models.Show, error) {
	db := r.getDB(ctx)
	var rows []*models.Show
	if err := db.Model(&models.Show{}).
		Preload("Artist").
		Preload("Venue").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByVenue retrieves all shows booked at the given venue with the
// performing artist preloaded
func (r *ShowRepositoryImpl) ListByVenue(ctx context.Context, venueID uint) ([]*models.Show, error) {
	db := r.getDB(ctx)
	var rows []*models.Show
	if err := db.Model(&models.Show{}).
		Preload("Artist").
		Where("venue_id = ?", venueID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByArtist retrieves all shows performed by the given artist with
// the hosting venue preloaded
func (r *ShowRepositoryImpl) ListByArtist(ctx context.Context, artistID uint) ([]*models.Show, error) {
	db := r.getDB(ctx)
	var rows []*models.Show
	if err := db.Model(&models.Show{}).
		Preload("Venue").
		Where("artist_id = ?", artistID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteByVenue removes every show referencing the given venue. Used by
// the cascading venue delete; must run inside the caller's transaction.
func (r *ShowRepositoryImpl) DeleteByVenue(ctx context.Context, venueID uint) error {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	err = db.Where("venue_id = ?", venueID).Delete(&models.Show{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete shows for venue %d: %w", venueID, err)
	}

	return nil
}

// applyFilter applies filter criteria to a GORM query
func (r *ShowRepositoryImpl) applyFilter(query *gorm.DB, filter models.ShowFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.ArtistID != nil {
		query = query.Where("artist_id = ?", *filter.ArtistID)
	}
	if filter.VenueID != nil {
		query = query.Where("venue_id = ?", *filter.VenueID)
	}
	if filter.StartsAfter != nil {
		query = query.Where("start_time > ?", *filter.StartsAfter)
	}
	if filter.StartsBefore != nil {
		query = query.Where("start_time <= ?", *filter.StartsBefore)
	}
	return query
}

// ByFilter retrieves shows based on filter criteria
func (r *ShowRepositoryImpl) ByFilter(ctx context.Context, filter models.ShowFilter, orderBy string, limit, offset int) ([]*models.Show, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Show{}), filter)

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

	var rows []*models.Show
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of shows matching the filter
func (r *ShowRepositoryImpl) Count(ctx context.Context, filter models.ShowFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Show{}), filter)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
