package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagedoor/stagedoor/app/dto"
	businessflow "github.com/stagedoor/stagedoor/business_flow"
	"github.com/stagedoor/stagedoor/models"
	"github.com/stagedoor/stagedoor/repository"
	testingutil "github.com/stagedoor/stagedoor/testing"
)

func newVenueFlow(testDB *testingutil.TestDB) businessflow.VenueFlow {
	return businessflow.NewVenueFlow(
		testDB.DB,
		repository.NewVenueRepository(testDB.DB),
		repository.NewShowRepository(testDB.DB),
		repository.NewAuditLogRepository(testDB.DB),
	)
}

func venuePayload(name string) *dto.VenuePayload {
	return &dto.VenuePayload{
		Name:    name,
		City:    "San Francisco",
		State:   "CA",
		Address: "1 Mission St",
		Phone:   "415-000-0000",
		Genres:  []string{"Jazz", "Classical"},
	}
}

func TestVenueFlowCreateAndGet(t *testing.T) {
	withTestDB(t, func(testDB *testingutil.TestDB) {
		flow := newVenueFlow(testDB)
		ctx := testingutil.CreateTestContext()

		created, err := flow.CreateVenue(ctx, venuePayload("The Fillmore"))
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "Venue The Fillmore was successfully listed!", created.Message)

		detail, err := flow.GetVenue(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "The Fillmore", detail.Name)
		assert.Equal(t, []string{"Jazz", "Classical"}, detail.Genres)
		assert.Empty(t, detail.PastShows)
		assert.Empty(t, detail.UpcomingShows)

		// Mutation is recorded in the audit trail
		auditRepo := repository.NewAuditLogRepository(testDB.DB)
		rows, err := auditRepo.ListByEntity(ctx, models.EntityKindVenue, created.ID, 10, 0)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, models.AuditActionVenueCreated, rows[0].Action)
	})
}

func TestVenueFlowGetNotFound(t *testing.T) {
	withTestDB(t, func(testDB *testingutil.TestDB) {
		flow := newVenueFlow(testDB)
		ctx := testingutil.CreateTestContext()

		_, err := flow.GetVenue(ctx, 12345)
		require.Error(t, err)
		assert.True(t, businessflow.IsVenueNotFound(err))
	})
}

func TestVenueFlowListGroupsByCityState(t *testing.T) {
	withTestDB(t, func(testDB *testingutil.TestDB) {
		flow := newVenueFlow(testDB)
		ctx := testingutil.CreateTestContext()

		_, err := flow.CreateVenue(ctx, &dto.VenuePayload{Name: "A", City: "San Francisco", State: "CA"})
		require.NoError(t, err)
		_, err = flow.CreateVenue(ctx, &dto.VenuePayload{Name: "B", City: "New York", State: "NY"})
		require.NoError(t, err)
		_, err = flow.CreateVenue(ctx, &dto.VenuePayload{Name: "C", City: "San Francisco", State: "CA"})
		require.NoError(t, err)

		resp, err := flow.ListVenues(ctx)
		require.NoError(t, err)
		require.Len(t, resp.Areas, 2)

		// Groups appear at the position of their first venue
		assert.Equal(t, "San Francisco", resp.Areas[0].City)
		require.Len(t, resp.Areas[0].Venues, 2)
		assert.Equal(t, "A", resp.Areas[0].Venues[0].Name)
		assert.Equal(t, "C", resp.Areas[0].Venues[1].Name)
		assert.Equal(t, "New York", resp.Areas[1].City)
	})
}

func TestVenueFlowSearch(t *testing.T) {
	withTestDB(t, func(testDB *testingutil.TestDB) {
		flow := newVenueFlow(testDB)
		ctx := testingutil.CreateTestContext()

		_, err := flow.CreateVenue(ctx, venuePayload("The Dueling Pianos Bar"))
		require.NoError(t, err)
		_, err = flow.CreateVenue(ctx, venuePayload("Park Square Live Music"))
		require.NoError(t, err)

		resp, err := flow.SearchVenues(ctx, "MUSIC")
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Count)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "Park Square Live Music", resp.Data[0].Name)

		resp, err = flow.SearchVenues(ctx, "zzzz")
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Count)
		assert.Empty(t, resp.Data)
	})
}

func TestVenueFlowUpdateReplacesAllFields(t *testing.T) {
	withTestDB(t, func(testDB *testingutil.TestDB) {
		flow := newVenueFlow(testDB)
		ctx := testingutil.CreateTestContext()

		created, err := flow.CreateVenue(ctx, venuePayload("Old Name"))
		require.NoError(t, err)

		update := &dto.VenuePayload{
			Name:               "New Name",
			City:               "Oakland",
			State:              "CA",
			Genres:             []string{"Hip-Hop"},
			SeekingTalent:      true,
			SeekingDescription: "Always looking",
		}
		resp, err := flow.UpdateVenue(ctx, created.ID, update)
		require.NoError(t, err)
		assert.Equal(t, created.ID, resp.ID)
		assert.Equal(t, "Venue New Name was successfully updated!", resp.Message)

		detail, err := flow.GetVenue(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "New Name", detail.Name)
		assert.Equal(t, "Oakland", detail.City)
		assert.Equal(t, []string{"Hip-Hop"}, detail.Genres)
		assert.True(t, detail.SeekingTalent)
		// Fields absent from the payload are cleared, not preserved
		assert.Empty(t, detail.Address)
		assert.Empty(t, detail.Phone)
	})
}

func TestVenueFlowUpdateNotFound(t *testing.T) {
	withTestDB(t, func(testDB *testingutil.TestDB) {
		flow := newVenueFlow(testDB)
		ctx := testingutil.CreateTestContext()

		_, err := flow.UpdateVenue(ctx, 999, venuePayload("Ghost"))
		require.Error(t, err)
		assert.True(t, businessflow.IsVenueNotFound(err))
	})
}

func TestVenueFlowDeleteCascadesShows(t *testing.T) {
	withTestDB(t, func(testDB *testingutil.TestDB) {
		flow := newVenueFlow(testDB)
		ctx := testingutil.CreateTestContext()

		venue, err := testDB.CreateTestVenue(1)
		require.NoError(t, err)
		artist, err := testDB.CreateTestArtist(1)
		require.NoError(t, err)
		_, err = testDB.CreateTestShow(artist.ID, venue.ID, time.Now().UTC().Add(24*time.Hour))
		require.NoError(t, err)

		resp, err := flow.DeleteVenue(ctx, venue.ID)
		require.NoError(t, err)
		assert.Equal(t, venue.ID, resp.ID)

		// Venue and its shows are gone, the artist survives
		showRepo := repository.NewShowRepository(testDB.DB)
		count, err := showRepo.Count(ctx, models.ShowFilter{VenueID: &venue.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)

		artistRepo := repository.NewArtistRepository(testDB.DB)
		survivor, err := artistRepo.ByID(ctx, artist.ID)
		require.NoError(t, err)
		assert.NotNil(t, survivor)

		_, err = flow.GetVenue(ctx, venue.ID)
		assert.True(t, businessflow.IsVenueNotFound(err))
	})
}

func TestVenueDeleteRollsBackOnFailure(t *testing.T) {
	withTestDB(t, func(testDB *testingutil.TestDB) {
		ctx := testingutil.CreateTestContext()

		venue, err := testDB.CreateTestVenue(1)
		require.NoError(t, err)
		artist, err := testDB.CreateTestArtist(1)
		require.NoError(t, err)
		_, err = testDB.CreateTestShow(artist.ID, venue.ID, time.Now().UTC().Add(24*time.Hour))
		require.NoError(t, err)

		venueRepo := repository.NewVenueRepository(testDB.DB)
		showRepo := repository.NewShowRepository(testDB.DB)

		// Run the cascading delete steps but fail before the commit
		boom := errors.New("storage gave out")
		err = repository.WithTransaction(ctx, testDB.DB, func(txCtx context.Context) error {
			if err := showRepo.DeleteByVenue(txCtx, venue.ID); err != nil {
				return err
			}
			if err := venueRepo.DeleteByID(txCtx, venue.ID); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		// The rollback restores both the venue and its shows
		survivor, err := venueRepo.ByID(ctx, venue.ID)
		require.NoError(t, err)
		assert.NotNil(t, survivor)

		count, err := showRepo.Count(ctx, models.ShowFilter{VenueID: &venue.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestVenueFlowDetailDefaultImage(t *testing.T) {
	withTestDB(t, func(testDB *testingutil.TestDB) {
		flow := newVenueFlow(testDB)
		ctx := testingutil.CreateTestContext()

		created, err := flow.CreateVenue(ctx, &dto.VenuePayload{Name: "Bare Walls", City: "Oakland", State: "CA"})
		require.NoError(t, err)

		detail, err := flow.GetVenue(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, businessflow.DefaultVenueImageLink, detail.ImageLink)
	})
}

func TestVenueFlowFormValues(t *testing.T) {
	withTestDB(t, func(testDB *testingutil.TestDB) {
		flow := newVenueFlow(testDB)
		ctx := testingutil.CreateTestContext()

		payload := venuePayload("Form Venue")
		payload.SeekingTalent = true
		created, err := flow.CreateVenue(ctx, payload)
		require.NoError(t, err)

		values, err := flow.VenueFormValues(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Form Venue", values["name"])
		assert.Equal(t, dto.SeekingFlagTrue, values["seeking_talent"])
		assert.Equal(t, []string{"Jazz", "Classical"}, values["genres"])
	})
}

func TestVenueFlowShowPartition(t *testing.T) {
	withTestDB(t, func(testDB *testingutil.TestDB) {
		flow := newVenueFlow(testDB)
		ctx := testingutil.CreateTestContext()

		venue, err := testDB.CreateTestVenue(1)
		require.NoError(t, err)
		artist, err := testDB.CreateTestArtist(1)
		require.NoError(t, err)

		_, err = testDB.CreateTestShow(artist.ID, venue.ID, time.Now().UTC().Add(-24*time.Hour))
		require.NoError(t, err)
		_, err = testDB.CreateTestShow(artist.ID, venue.ID, time.Now().UTC().Add(24*time.Hour))
		require.NoError(t, err)

		detail, err := flow.GetVenue(ctx, venue.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, detail.PastShowsCount)
		assert.Equal(t, 1, detail.UpcomingShowsCount)
		require.Len(t, detail.PastShows, 1)
		assert.Equal(t, artist.ID, detail.PastShows[0].ArtistID)
		assert.Equal(t, artist.Name, detail.PastShows[0].ArtistName)
	})
}
