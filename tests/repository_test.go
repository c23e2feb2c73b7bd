package tests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagedoor/stagedoor/models"
	"github.com/stagedoor/stagedoor/repository"
	testingutil "github.com/stagedoor/stagedoor/testing"
	"github.com/stagedoor/stagedoor/utils"
)

func TestVenueRepository(t *testing.T) {
	withTestDB(t, func(testDB *testingutil.TestDB) {
		repo := repository.NewVenueRepository(testDB.DB)
		ctx := testingutil.CreateTestContext()

		t.Run("SaveAndByID", func(t *testing.T) {
			venue, err := testDB.CreateTestVenue(1)
			require.NoError(t, err)
			assert.NotZero(t, venue.ID)

			found, err := repo.ByID(ctx, venue.ID)
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, venue.Name, found.Name)
			assert.Equal(t, venue.Genres, found.Genres)
		})

		t.Run("ByIDNotFound", func(t *testing.T) {
			found, err := repo.ByID(ctx, 99999)
			assert.NoError(t, err)
			assert.Nil(t, found)
		})

		t.Run("ListAllOrdersByID", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())
			for i := 1; i <= 3; i++ {
				_, err := testDB.CreateTestVenue(i)
				require.NoError(t, err)
			}

			venues, err := repo.ListAll(ctx)
			require.NoError(t, err)
			require.Len(t, venues, 3)
			for i := 1; i < len(venues); i++ {
				assert.Less(t, venues[i-1].ID, venues[i].ID)
			}
		})

		t.Run("SearchByNameCaseInsensitive", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())
			v1, err := testDB.CreateTestVenue(1)
			require.NoError(t, err)
			_, err = testDB.CreateTestVenue(2)
			require.NoError(t, err)

			results, err := repo.SearchByName(ctx, "test venue 1")
			require.NoError(t, err)
			require.Len(t, results, 1)
			assert.Equal(t, v1.ID, results[0].ID)

			// Empty term matches everything
			results, err = repo.SearchByName(ctx, "")
			require.NoError(t, err)
			assert.Len(t, results, 2)
		})

		t.Run("Replace", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())
			venue, err := testDB.CreateTestVenue(1)
			require.NoError(t, err)

			venue.Name = "Renamed Venue"
			venue.SeekingTalent = true
			venue.SeekingDescription = "Looking for jazz trios"
			require.NoError(t, repo.Replace(ctx, venue))

			found, err := repo.ByID(ctx, venue.ID)
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, "Renamed Venue", found.Name)
			assert.True(t, found.SeekingTalent)

			count, err := repo.Count(ctx, models.VenueFilter{})
			require.NoError(t, err)
			assert.Equal(t, int64(1), count)
		})

		t.Run("DeleteByID", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())
			venue, err := testDB.CreateTestVenue(1)
			require.NoError(t, err)

			require.NoError(t, repo.DeleteByID(ctx, venue.ID))

			found, err := repo.ByID(ctx, venue.ID)
			require.NoError(t, err)
			assert.Nil(t, found)
		})
	})
}

func TestArtistRepository(t *testing.T) {
	withTestDB(t, func(testDB *testingutil.TestDB) {
		repo := repository.NewArtistRepository(testDB.DB)
		ctx := testingutil.CreateTestContext()

		t.Run("SaveAndByID", func(t *testing.T) {
			artist, err := testDB.CreateTestArtist(1)
			require.NoError(t, err)
			assert.NotZero(t, artist.ID)

			found, err := repo.ByID(ctx, artist.ID)
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, artist.Name, found.Name)
			assert.True(t, found.SeekingVenue)
		})

		t.Run("SearchByName", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())
			a1, err := testDB.CreateTestArtist(1)
			require.NoError(t, err)
			_, err = testDB.CreateTestArtist(2)
			require.NoError(t, err)

			results, err := repo.SearchByName(ctx, "ARTIST 1")
			require.NoError(t, err)
			require.Len(t, results, 1)
			assert.Equal(t, a1.ID, results[0].ID)
		})

		t.Run("ByFilter", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())
			artist, err := testDB.CreateTestArtist(1)
			require.NoError(t, err)

			city := artist.City
			results, err := repo.ByFilter(ctx, models.ArtistFilter{City: &city}, "", 0, 0)
			require.NoError(t, err)
			assert.Len(t, results, 1)
		})
	})
}

func TestShowRepository(t *testing.T) {
	withTestDB(t, func(testDB *testingutil.TestDB) {
		repo := repository.NewShowRepository(testDB.DB)
		ctx := testingutil.CreateTestContext()

		venue, err := testDB.CreateTestVenue(1)
		require.NoError(t, err)
		artist, err := testDB.CreateTestArtist(1)
		require.NoError(t, err)

		past := time.Now().UTC().Add(-48 * time.Hour)
		future := time.Now().UTC().Add(48 * time.Hour)

		_, err = testDB.CreateTestShow(artist.ID, venue.ID, past)
		require.NoError(t, err)
		_, err = testDB.CreateTestShow(artist.ID, venue.ID, future)
		require.NoError(t, err)

		t.Run("ListAllPreloadsRelations", func(t *testing.T) {
			shows, err := repo.ListAll(ctx)
			require.NoError(t, err)
			require.Len(t, shows, 2)
			for _, show := range shows {
				require.NotNil(t, show.Artist)
				require.NotNil(t, show.Venue)
				assert.Equal(t, artist.Name, show.Artist.Name)
				assert.Equal(t, venue.Name, show.Venue.Name)
			}
		})

		t.Run("ListByVenue", func(t *testing.T) {
			shows, err := repo.ListByVenue(ctx, venue.ID)
			require.NoError(t, err)
			assert.Len(t, shows, 2)
			for _, show := range shows {
				require.NotNil(t, show.Artist)
			}
		})

		t.Run("ListByArtist", func(t *testing.T) {
			shows, err := repo.ListByArtist(ctx, artist.ID)
			require.NoError(t, err)
			assert.Len(t, shows, 2)
			for _, show := range shows {
				require.NotNil(t, show.Venue)
			}
		})

		t.Run("FilterByStartsAfter", func(t *testing.T) {
			now := time.Now().UTC()
			shows, err := repo.ByFilter(ctx, models.ShowFilter{StartsAfter: &now}, "", 0, 0)
			require.NoError(t, err)
			require.Len(t, shows, 1)
			assert.True(t, shows[0].StartTime.After(now))
		})

		t.Run("FilterByStartsBefore", func(t *testing.T) {
			now := time.Now().UTC()
			shows, err := repo.ByFilter(ctx, models.ShowFilter{StartsBefore: &now}, "", 0, 0)
			require.NoError(t, err)
			require.Len(t, shows, 1)
			assert.False(t, shows[0].StartTime.After(now))
		})

		t.Run("DeleteByVenue", func(t *testing.T) {
			require.NoError(t, repo.DeleteByVenue(ctx, venue.ID))

			count, err := repo.Count(ctx, models.ShowFilter{VenueID: &venue.ID})
			require.NoError(t, err)
			assert.Equal(t, int64(0), count)
		})
	})
}

func TestAuditLogRepository(t *testing.T) {
	withTestDB(t, func(testDB *testingutil.TestDB) {
		repo := repository.NewAuditLogRepository(testDB.DB)
		ctx := testingutil.CreateTestContext()

		entityID := uint(42)
		desc := "create venue Test Venue"
		success := true
		row := &models.AuditLog{
			EntityKind:    models.EntityKindVenue,
			EntityID:      &entityID,
			Action:        models.AuditActionVenueCreated,
			Description:   &desc,
			ChangedFields: []string{"name", "city"},
			Success:       &success,
		}
		require.NoError(t, repo.Save(ctx, row))
		assert.NotZero(t, row.ID)

		t.Run("ListByEntity", func(t *testing.T) {
			rows, err := repo.ListByEntity(ctx, models.EntityKindVenue, entityID, 10, 0)
			require.NoError(t, err)
			require.Len(t, rows, 1)
			assert.Equal(t, models.AuditActionVenueCreated, rows[0].Action)
			assert.Equal(t, []string{"name", "city"}, []string(rows[0].ChangedFields))
			assert.Equal(t, desc, utils.FromPtr(rows[0].Description))
			assert.True(t, utils.FromPtr(rows[0].Success))
			assert.False(t, rows[0].IsFailed())
		})

		t.Run("FilterBySuccess", func(t *testing.T) {
			failed := false
			rows, err := repo.ByFilter(ctx, models.AuditLogFilter{Success: &failed}, "", 0, 0)
			require.NoError(t, err)
			assert.Empty(t, rows)
		})
	})
}
