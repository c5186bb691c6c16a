package repository_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	errorvalues "github.com/lmk2k5/itinerary-backend-email-services/internal/error_values"
	"github.com/lmk2k5/itinerary-backend-email-services/internal/repository"
	"github.com/lmk2k5/itinerary-backend-email-services/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runTripsRepositoryContract checks behaviour every TripsRepositoryI implementation must share.
func runTripsRepositoryContract(t *testing.T, repo repository.TripsRepositoryI) {
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	japan := &entity.Trip{UserID: alice.String(), TripName: "Japan"}
	require.NoError(t, repo.Create(ctx, japan))
	require.Len(t, japan.ID, 24)
	assert.Equal(t, []entity.Day{}, japan.Days)
	italy := &entity.Trip{UserID: alice.String(), TripName: "Italy", Description: "summer"}
	require.NoError(t, repo.Create(ctx, italy))
	bobs := &entity.Trip{UserID: bob.String(), TripName: "Peru"}
	require.NoError(t, repo.Create(ctx, bobs))

	t.Run("list is scoped by owner", func(t *testing.T) {
		trips, err := repo.ListByUser(ctx, alice)
		require.NoError(t, err)
		require.Len(t, trips, 2)
		assert.Equal(t, "Japan", trips[0].TripName)
		assert.Equal(t, "Italy", trips[1].TripName)

		trips, err = repo.ListByUser(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, trips)
	})

	t.Run("foreign trip is not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, alice, bobs.ID)
		assert.ErrorIs(t, err, errorvalues.ErrTripNotFound)

		res, err := repo.AppendDay(ctx, alice, bobs.ID, entity.Day{DayNumber: 1, Date: "2024-05-01"})
		require.NoError(t, err)
		assert.Zero(t, res.Matched)

		n, err := repo.Delete(ctx, alice, bobs.ID)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("append day once per number", func(t *testing.T) {
		day := entity.Day{DayNumber: 1, Date: "2024-05-01", Places: []entity.Activity{{Activity: "Arrival", Time: "09:00"}}}
		res, err := repo.AppendDay(ctx, alice, japan.ID, day)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.Matched)

		res, err = repo.AppendDay(ctx, alice, japan.ID, entity.Day{DayNumber: 1, Date: "2024-05-09"})
		require.NoError(t, err)
		assert.Zero(t, res.Matched)

		exists, err := repo.DayExists(ctx, alice, japan.ID, 1)
		require.NoError(t, err)
		assert.True(t, exists)
		exists, err = repo.DayExists(ctx, alice, japan.ID, 2)
		require.NoError(t, err)
		assert.False(t, exists)

		trip, err := repo.GetByID(ctx, alice, japan.ID)
		require.NoError(t, err)
		require.Len(t, trip.Days, 1)
		assert.Equal(t, "2024-05-01", trip.Days[0].Date)
	})

	t.Run("activities of a day", func(t *testing.T) {
		_, err := repo.AppendDay(ctx, alice, japan.ID, entity.Day{DayNumber: 2, Date: "2024-05-02"})
		require.NoError(t, err)
		for _, name := range []string{"Museum", "Park", "Dinner"} {
			res, err := repo.AppendActivity(ctx, alice, japan.ID, 2, entity.Activity{Activity: name, Time: "10:00"})
			require.NoError(t, err)
			require.Equal(t, int64(1), res.Matched)
		}
		res, err := repo.AppendActivity(ctx, alice, japan.ID, 7, entity.Activity{Activity: "Nowhere", Time: "10:00"})
		require.NoError(t, err)
		assert.Zero(t, res.Matched)

		res, err = repo.RemoveActivity(ctx, alice, japan.ID, 2, "Park")
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.Modified)
		res, err = repo.RemoveActivity(ctx, alice, japan.ID, 2, "Park")
		require.NoError(t, err)
		assert.Zero(t, res.Matched)
		// Arrival lives on day 1, not day 2
		res, err = repo.RemoveActivity(ctx, alice, japan.ID, 2, "Arrival")
		require.NoError(t, err)
		assert.Zero(t, res.Matched)

		trip, err := repo.GetByID(ctx, alice, japan.ID)
		require.NoError(t, err)
		assert.Equal(t, []entity.Activity{
			{Activity: "Museum", Time: "10:00"},
			{Activity: "Dinner", Time: "10:00"},
		}, trip.Days[1].Places)
		assert.Len(t, trip.Days[0].Places, 1)
	})

	t.Run("replace activities respects revision", func(t *testing.T) {
		trip, err := repo.GetByID(ctx, alice, japan.ID)
		require.NoError(t, err)
		reordered := []entity.Activity{
			{Activity: "Dinner", Time: "19:00"},
			{Activity: "Museum", Time: "10:00", Location: "Ueno"},
		}
		res, err := repo.ReplaceActivitiesAtRevision(ctx, alice, japan.ID, 2, trip.Revision-1, reordered)
		require.NoError(t, err)
		assert.Zero(t, res.Matched)

		res, err = repo.ReplaceActivitiesAtRevision(ctx, alice, japan.ID, 2, trip.Revision, reordered)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.Matched)

		after, err := repo.GetByID(ctx, alice, japan.ID)
		require.NoError(t, err)
		assert.Equal(t, reordered, after.Days[1].Places)
		assert.Equal(t, trip.Revision+1, after.Revision)
		assert.False(t, after.UpdatedAt.Before(trip.UpdatedAt))

		res, err = repo.ReplaceActivities(ctx, alice, japan.ID, 2, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.Matched)
		after, err = repo.GetByID(ctx, alice, japan.ID)
		require.NoError(t, err)
		assert.Equal(t, []entity.Activity{}, after.Days[1].Places)
	})

	t.Run("update day date", func(t *testing.T) {
		res, err := repo.UpdateDayDate(ctx, alice, japan.ID, 2, "2024-05-03")
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.Modified)
		res, err = repo.UpdateDayDate(ctx, alice, japan.ID, 3, "2024-05-03")
		require.NoError(t, err)
		assert.Zero(t, res.Matched)
	})

	t.Run("remove day", func(t *testing.T) {
		res, err := repo.RemoveDay(ctx, alice, japan.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.Modified)
		res, err = repo.RemoveDay(ctx, alice, japan.ID, 1)
		require.NoError(t, err)
		assert.Zero(t, res.Matched)

		trip, err := repo.GetByID(ctx, alice, japan.ID)
		require.NoError(t, err)
		require.Len(t, trip.Days, 1)
		assert.Equal(t, 2, trip.Days[0].DayNumber)
		assert.Equal(t, "2024-05-03", trip.Days[0].Date)
	})

	t.Run("upper case id", func(t *testing.T) {
		upper := strings.ToUpper(japan.ID)
		trip, err := repo.GetByID(ctx, alice, upper)
		require.NoError(t, err)
		assert.Equal(t, japan.ID, trip.ID)

		exists, err := repo.DayExists(ctx, alice, upper, 2)
		require.NoError(t, err)
		assert.True(t, exists)

		res, err := repo.AppendActivity(ctx, alice, upper, 2, entity.Activity{Activity: "Onsen", Time: "21:00"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.Matched)

		_, err = repo.GetByID(ctx, bob, upper)
		assert.ErrorIs(t, err, errorvalues.ErrTripNotFound)
	})

	t.Run("update fields", func(t *testing.T) {
		name := "Italy 2025"
		res, err := repo.UpdateFields(ctx, alice, italy.ID, entity.TripFields{TripName: &name})
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.Matched)
		trip, err := repo.GetByID(ctx, alice, italy.ID)
		require.NoError(t, err)
		assert.Equal(t, "Italy 2025", trip.TripName)
		assert.Equal(t, "summer", trip.Description)
	})

	t.Run("delete", func(t *testing.T) {
		n, err := repo.Delete(ctx, bob, strings.ToUpper(italy.ID))
		require.NoError(t, err)
		assert.Zero(t, n)
		n, err = repo.Delete(ctx, alice, strings.ToUpper(italy.ID))
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		n, err = repo.Delete(ctx, alice, italy.ID)
		require.NoError(t, err)
		assert.Zero(t, n)
		_, err = repo.GetByID(ctx, alice, italy.ID)
		assert.ErrorIs(t, err, errorvalues.ErrTripNotFound)

		trips, err := repo.ListByUser(ctx, alice)
		require.NoError(t, err)
		require.Len(t, trips, 1)
		assert.Equal(t, japan.ID, trips[0].ID)
	})
}
