package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/lmk2k5/itinerary-backend-email-services/internal/error_values"
	"github.com/lmk2k5/itinerary-backend-email-services/internal/repository"
	"github.com/lmk2k5/itinerary-backend-email-services/internal/repository/mocks"
	"github.com/lmk2k5/itinerary-backend-email-services/internal/service"
	"github.com/lmk2k5/itinerary-backend-email-services/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func newTripWithDays(t *testing.T, ts *service.TripsService, uid uuid.UUID) *entity.Trip {
	t.Helper()
	ctx := context.Background()
	trip, err := ts.CreateTrip(ctx, uid, &service.CreateTripRequest{TripName: "Japan"})
	require.NoError(t, err)
	require.NoError(t, ts.AddDay(ctx, uid, trip.ID, &service.AddDayRequest{
		DayNumber: 1,
		Date:      "2024-05-01",
		Places:    []service.ActivityRequest{{Activity: "Arrival", Time: "09:00"}},
	}))
	require.NoError(t, ts.AddDay(ctx, uid, trip.ID, &service.AddDayRequest{
		DayNumber: 2,
		Date:      "2024-05-02",
		Places: []service.ActivityRequest{
			{Activity: "Breakfast", Time: "08:00"},
			{Activity: "Museum", Time: "10:00", Location: "Ueno"},
			{Activity: "Dinner", Time: "19:00"},
		},
	}))
	return trip
}

func TestTripLifecycle(t *testing.T) {
	ts := service.NewTripsService(repository.NewMemoryTripsRepo())
	ctx := context.Background()
	uid := uuid.New()

	trip, err := ts.CreateTrip(ctx, uid, &service.CreateTripRequest{TripName: "Japan"})
	require.NoError(t, err)
	assert.Equal(t, []entity.Day{}, trip.Days)
	assert.Equal(t, uid.String(), trip.UserID)

	require.NoError(t, ts.AddDay(ctx, uid, trip.ID, &service.AddDayRequest{
		DayNumber: 1,
		Date:      "2024-05-01",
		Places:    []service.ActivityRequest{{Activity: "Arrival", Time: "09:00"}},
	}))
	got, err := ts.GetTrip(ctx, uid, trip.ID)
	require.NoError(t, err)
	require.Len(t, got.Days, 1)
	assert.Equal(t, "Arrival", got.Days[0].Places[0].Activity)

	require.NoError(t, ts.DeleteDay(ctx, uid, trip.ID, 1))
	got, err = ts.GetTrip(ctx, uid, trip.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Days)

	require.NoError(t, ts.DeleteTrip(ctx, uid, trip.ID))
	_, err = ts.GetTrip(ctx, uid, trip.ID)
	assert.ErrorIs(t, err, errorvalues.ErrTripNotFound)
	assert.ErrorIs(t, ts.DeleteTrip(ctx, uid, trip.ID), errorvalues.ErrTripNotFound)
}

func TestAddDayDuplicate(t *testing.T) {
	ts := service.NewTripsService(repository.NewMemoryTripsRepo())
	ctx := context.Background()
	uid := uuid.New()
	trip := newTripWithDays(t, ts, uid)

	err := ts.AddDay(ctx, uid, trip.ID, &service.AddDayRequest{
		DayNumber: 2,
		Date:      "2024-06-01",
		Places:    []service.ActivityRequest{},
	})
	assert.ErrorIs(t, err, errorvalues.ErrDayExists)

	got, err := ts.GetTrip(ctx, uid, trip.ID)
	require.NoError(t, err)
	assert.Len(t, got.Days, 2)
	assert.Equal(t, "2024-05-02", got.Days[1].Date)
}

func TestAddDayValidation(t *testing.T) {
	ts := service.NewTripsService(repository.NewMemoryTripsRepo())
	ctx := context.Background()
	uid := uuid.New()
	trip := newTripWithDays(t, ts, uid)

	cases := []struct {
		Name    string
		TripID  string
		Req     *service.AddDayRequest
		WantErr error
		WantMsg string
	}{
		{
			Name:    "invalid trip id",
			TripID:  "abc",
			Req:     &service.AddDayRequest{DayNumber: 3, Date: "d", Places: []service.ActivityRequest{}},
			WantErr: errorvalues.ErrInvalidTripID,
		},
		{
			Name:    "missing places",
			TripID:  trip.ID,
			Req:     &service.AddDayRequest{DayNumber: 3, Date: "d"},
			WantErr: errorvalues.ErrValidation,
			WantMsg: "places is required",
		},
		{
			Name:    "day number out of range",
			TripID:  trip.ID,
			Req:     &service.AddDayRequest{DayNumber: 366, Date: "d", Places: []service.ActivityRequest{}},
			WantErr: errorvalues.ErrValidation,
			WantMsg: "dayNumber must be at most 365",
		},
		{
			Name:   "place without time",
			TripID: trip.ID,
			Req: &service.AddDayRequest{DayNumber: 3, Date: "d", Places: []service.ActivityRequest{
				{Activity: "Museum", Time: "10:00"},
				{Activity: "Park"},
			}},
			WantErr: errorvalues.ErrValidation,
			WantMsg: "places[1].time is required",
		},
		{
			Name:    "unknown trip",
			TripID:  "65f1c2a9e4b0a1b2c3d4e5f6",
			Req:     &service.AddDayRequest{DayNumber: 3, Date: "d", Places: []service.ActivityRequest{}},
			WantErr: errorvalues.ErrTripNotFound,
		},
	}
	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			err := ts.AddDay(ctx, uid, c.TripID, c.Req)
			assert.ErrorIs(t, err, c.WantErr)
			if c.WantMsg != "" {
				assert.Contains(t, err.Error(), c.WantMsg)
			}
		})
	}
}

func TestUpdateActivityRenameThenDelete(t *testing.T) {
	ts := service.NewTripsService(repository.NewMemoryTripsRepo())
	ctx := context.Background()
	uid := uuid.New()
	trip := newTripWithDays(t, ts, uid)
	before, err := ts.GetTrip(ctx, uid, trip.ID)
	require.NoError(t, err)

	err = ts.UpdateActivity(ctx, uid, trip.ID, 2, "Museum", &service.UpdateActivityRequest{
		Activity: strPtr("Art Museum"),
	})
	require.NoError(t, err)

	after, err := ts.GetTrip(ctx, uid, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, before.Days[0], after.Days[0])
	assert.Equal(t, []entity.Activity{
		{Activity: "Breakfast", Time: "08:00"},
		{Activity: "Art Museum", Time: "10:00", Location: "Ueno"},
		{Activity: "Dinner", Time: "19:00"},
	}, after.Days[1].Places)

	require.NoError(t, ts.DeleteActivity(ctx, uid, trip.ID, 2, "Art Museum"))
	assert.ErrorIs(t, ts.DeleteActivity(ctx, uid, trip.ID, 2, "Museum"), errorvalues.ErrActivityNotFound)
	assert.ErrorIs(t, ts.DeleteActivity(ctx, uid, trip.ID, 9, "Museum"), errorvalues.ErrDayNotFound)
}

func TestTripIDAnyCase(t *testing.T) {
	ts := service.NewTripsService(repository.NewMemoryTripsRepo())
	ctx := context.Background()
	uid := uuid.New()
	trip := newTripWithDays(t, ts, uid)
	upper := strings.ToUpper(trip.ID)

	got, err := ts.GetTrip(ctx, uid, upper)
	require.NoError(t, err)
	assert.Equal(t, trip.ID, got.ID)
	require.NoError(t, ts.DeleteActivity(ctx, uid, upper, 2, "Dinner"))
	require.NoError(t, ts.DeleteTrip(ctx, uid, upper))
	_, err = ts.GetTrip(ctx, uid, trip.ID)
	assert.ErrorIs(t, err, errorvalues.ErrTripNotFound)
}

func TestUpdateActivityErrors(t *testing.T) {
	ts := service.NewTripsService(repository.NewMemoryTripsRepo())
	ctx := context.Background()
	uid := uuid.New()
	trip := newTripWithDays(t, ts, uid)

	t.Run("empty patch", func(t *testing.T) {
		err := ts.UpdateActivity(ctx, uid, trip.ID, 2, "Museum", &service.UpdateActivityRequest{})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("blank name", func(t *testing.T) {
		err := ts.UpdateActivity(ctx, uid, trip.ID, 2, "Museum", &service.UpdateActivityRequest{Activity: strPtr(" ")})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("too long", func(t *testing.T) {
		err := ts.UpdateActivity(ctx, uid, trip.ID, 2, "Museum", &service.UpdateActivityRequest{Location: strPtr(strings.Repeat("x", 501))})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
		err = ts.UpdateActivity(ctx, uid, trip.ID, 2, "Museum", &service.UpdateActivityRequest{Activity: strPtr(strings.Repeat("x", 201))})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)

		got, err := ts.GetTrip(ctx, uid, trip.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ueno", got.Days[1].Places[1].Location)
	})
	t.Run("missing activity", func(t *testing.T) {
		err := ts.UpdateActivity(ctx, uid, trip.ID, 2, "Zoo", &service.UpdateActivityRequest{Time: strPtr("11:00")})
		assert.ErrorIs(t, err, errorvalues.ErrActivityNotFound)
	})
	t.Run("missing day", func(t *testing.T) {
		err := ts.UpdateActivity(ctx, uid, trip.ID, 5, "Museum", &service.UpdateActivityRequest{Time: strPtr("11:00")})
		assert.ErrorIs(t, err, errorvalues.ErrDayNotFound)
	})
	t.Run("day out of range", func(t *testing.T) {
		err := ts.UpdateActivity(ctx, uid, trip.ID, 0, "Museum", &service.UpdateActivityRequest{Time: strPtr("11:00")})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidDayNumber)
	})
	t.Run("foreign trip", func(t *testing.T) {
		err := ts.UpdateActivity(ctx, uuid.New(), trip.ID, 2, "Museum", &service.UpdateActivityRequest{Time: strPtr("11:00")})
		assert.ErrorIs(t, err, errorvalues.ErrTripNotFound)
	})
	t.Run("notes only", func(t *testing.T) {
		require.NoError(t, ts.UpdateActivity(ctx, uid, trip.ID, 2, "Dinner", &service.UpdateActivityRequest{Notes: strPtr("book a table")}))
		got, err := ts.GetTrip(ctx, uid, trip.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.Activity{Activity: "Dinner", Time: "19:00", Notes: "book a table"}, got.Days[1].Places[2])
	})
}

func TestReorderActivities(t *testing.T) {
	ts := service.NewTripsService(repository.NewMemoryTripsRepo())
	ctx := context.Background()
	uid := uuid.New()
	trip := newTripWithDays(t, ts, uid)

	t.Run("new order is stored exactly", func(t *testing.T) {
		err := ts.ReorderActivities(ctx, uid, trip.ID, 2, &service.ReorderRequest{Activities: []service.ActivityRequest{
			{Activity: "Museum", Time: "10:00", Location: "Ueno"},
			{Activity: "Breakfast", Time: "08:00"},
			{Activity: "Dinner", Time: "19:00"},
		}})
		require.NoError(t, err)
		got, err := ts.GetTrip(ctx, uid, trip.ID)
		require.NoError(t, err)
		names := []string{}
		for _, p := range got.Days[1].Places {
			names = append(names, p.Activity)
		}
		assert.Equal(t, []string{"Museum", "Breakfast", "Dinner"}, names)
	})
	t.Run("list that is not a permutation is accepted", func(t *testing.T) {
		err := ts.ReorderActivities(ctx, uid, trip.ID, 2, &service.ReorderRequest{Activities: []service.ActivityRequest{
			{Activity: "Karaoke", Time: "22:00"},
		}})
		require.NoError(t, err)
		got, err := ts.GetTrip(ctx, uid, trip.ID)
		require.NoError(t, err)
		assert.Equal(t, []entity.Activity{{Activity: "Karaoke", Time: "22:00"}}, got.Days[1].Places)
	})
	t.Run("entries still need activity and time", func(t *testing.T) {
		err := ts.ReorderActivities(ctx, uid, trip.ID, 2, &service.ReorderRequest{Activities: []service.ActivityRequest{{Activity: "Karaoke"}}})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("missing activities field", func(t *testing.T) {
		err := ts.ReorderActivities(ctx, uid, trip.ID, 2, &service.ReorderRequest{})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("missing day", func(t *testing.T) {
		err := ts.ReorderActivities(ctx, uid, trip.ID, 30, &service.ReorderRequest{Activities: []service.ActivityRequest{}})
		assert.ErrorIs(t, err, errorvalues.ErrTripOrDayNotFound)
	})
}

func TestTenantIsolation(t *testing.T) {
	ts := service.NewTripsService(repository.NewMemoryTripsRepo())
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()
	trip := newTripWithDays(t, ts, alice)

	trips, err := ts.ListTrips(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, trips)

	_, err = ts.GetTrip(ctx, bob, trip.ID)
	assert.ErrorIs(t, err, errorvalues.ErrTripNotFound)
	assert.ErrorIs(t, ts.UpdateTrip(ctx, bob, trip.ID, &service.UpdateTripRequest{TripName: strPtr("mine")}), errorvalues.ErrTripNotFound)
	assert.ErrorIs(t, ts.DeleteTrip(ctx, bob, trip.ID), errorvalues.ErrTripNotFound)
	assert.ErrorIs(t, ts.AddDay(ctx, bob, trip.ID, &service.AddDayRequest{DayNumber: 9, Date: "d", Places: []service.ActivityRequest{}}), errorvalues.ErrTripNotFound)
	assert.ErrorIs(t, ts.UpdateDay(ctx, bob, trip.ID, 1, &service.UpdateDayRequest{Date: "d"}), errorvalues.ErrTripOrDayNotFound)
	assert.ErrorIs(t, ts.DeleteDay(ctx, bob, trip.ID, 1), errorvalues.ErrTripOrDayNotFound)
	assert.ErrorIs(t, ts.AddActivity(ctx, bob, trip.ID, 1, &service.ActivityRequest{Activity: "x", Time: "y"}), errorvalues.ErrTripOrDayNotFound)
	assert.ErrorIs(t, ts.DeleteActivity(ctx, bob, trip.ID, 1, "Arrival"), errorvalues.ErrTripNotFound)
	assert.ErrorIs(t, ts.ReorderActivities(ctx, bob, trip.ID, 1, &service.ReorderRequest{Activities: []service.ActivityRequest{}}), errorvalues.ErrTripOrDayNotFound)

	got, err := ts.GetTrip(ctx, alice, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "Japan", got.TripName)
	assert.Len(t, got.Days, 2)
	assert.Len(t, got.Days[0].Places, 1)
}

func TestUpdateTripAndDay(t *testing.T) {
	ts := service.NewTripsService(repository.NewMemoryTripsRepo())
	ctx := context.Background()
	uid := uuid.New()
	trip := newTripWithDays(t, ts, uid)

	assert.ErrorIs(t, ts.UpdateTrip(ctx, uid, trip.ID, &service.UpdateTripRequest{}), errorvalues.ErrValidation)
	assert.ErrorIs(t, ts.UpdateTrip(ctx, uid, trip.ID, &service.UpdateTripRequest{TripName: strPtr("")}), errorvalues.ErrValidation)
	require.NoError(t, ts.UpdateTrip(ctx, uid, trip.ID, &service.UpdateTripRequest{Description: strPtr("cherry blossoms")}))

	assert.ErrorIs(t, ts.UpdateDay(ctx, uid, trip.ID, 1, &service.UpdateDayRequest{}), errorvalues.ErrValidation)
	require.NoError(t, ts.UpdateDay(ctx, uid, trip.ID, 1, &service.UpdateDayRequest{Date: "2024-05-05"}))
	assert.ErrorIs(t, ts.UpdateDay(ctx, uid, trip.ID, 3, &service.UpdateDayRequest{Date: "2024-05-05"}), errorvalues.ErrTripOrDayNotFound)

	require.NoError(t, ts.AddActivity(ctx, uid, trip.ID, 1, &service.ActivityRequest{Activity: "Hotel", Time: "15:00", Notes: "late check-in"}))

	got, err := ts.GetTrip(ctx, uid, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "Japan", got.TripName)
	assert.Equal(t, "cherry blossoms", got.Description)
	assert.Equal(t, "2024-05-05", got.Days[0].Date)
	assert.Equal(t, entity.Activity{Activity: "Hotel", Time: "15:00", Notes: "late check-in"}, got.Days[0].Places[1])
	assert.True(t, got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))
}

func TestTripsServiceCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTripsRepositoryI(ctrl)
	ts := service.NewTripsService(repo)
	ctx := context.Background()
	uid := uuid.New()
	tripID := "65f1c2a9e4b0a1b2c3d4e5f6"
	dbErr := errors.New("db error")

	t.Run("update day matched but not modified", func(t *testing.T) {
		repo.EXPECT().UpdateDayDate(gomock.Any(), uid, tripID, 1, "d").Return(repository.UpdateResult{Matched: 1}, nil)
		err := ts.UpdateDay(ctx, uid, tripID, 1, &service.UpdateDayRequest{Date: "d"})
		assert.ErrorIs(t, err, errorvalues.ErrDayNotFound)
	})
	t.Run("reorder matched but not modified", func(t *testing.T) {
		repo.EXPECT().ReplaceActivities(gomock.Any(), uid, tripID, 1, []entity.Activity{}).Return(repository.UpdateResult{Matched: 1}, nil)
		err := ts.ReorderActivities(ctx, uid, tripID, 1, &service.ReorderRequest{Activities: []service.ActivityRequest{}})
		assert.ErrorIs(t, err, errorvalues.ErrDayNotFound)
	})
	t.Run("add day lost race reports conflict", func(t *testing.T) {
		gomock.InOrder(
			repo.EXPECT().AppendDay(gomock.Any(), uid, tripID, gomock.Any()).Return(repository.UpdateResult{}, nil),
			repo.EXPECT().DayExists(gomock.Any(), uid, tripID, 4).Return(true, nil),
		)
		err := ts.AddDay(ctx, uid, tripID, &service.AddDayRequest{DayNumber: 4, Date: "d", Places: []service.ActivityRequest{}})
		assert.ErrorIs(t, err, errorvalues.ErrDayExists)
	})
	t.Run("store failure is internal", func(t *testing.T) {
		repo.EXPECT().RemoveDay(gomock.Any(), uid, tripID, 1).Return(repository.UpdateResult{}, dbErr)
		err := ts.DeleteDay(ctx, uid, tripID, 1)
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, errorvalues.ErrTripOrDayNotFound)
	})
	t.Run("validation happens before store", func(t *testing.T) {
		assert.ErrorIs(t, ts.DeleteDay(ctx, uid, "nope", 1), errorvalues.ErrInvalidTripID)
		assert.ErrorIs(t, ts.DeleteDay(ctx, uid, tripID, 400), errorvalues.ErrInvalidDayNumber)
		assert.ErrorIs(t, ts.DeleteActivity(ctx, uid, tripID, 1, ""), errorvalues.ErrValidation)
	})
}

func TestUpdateActivityRetriesOnRevisionChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTripsRepositoryI(ctrl)
	ts := service.NewTripsService(repo)
	ctx := context.Background()
	uid := uuid.New()
	tripID := "65f1c2a9e4b0a1b2c3d4e5f6"

	stale := &entity.Trip{ID: tripID, Revision: 4, Days: []entity.Day{{DayNumber: 1, Places: []entity.Activity{
		{Activity: "Museum", Time: "10:00"},
	}}}}
	fresh := &entity.Trip{ID: tripID, Revision: 5, Days: []entity.Day{{DayNumber: 1, Places: []entity.Activity{
		{Activity: "Museum", Time: "10:00"},
		{Activity: "Lunch", Time: "12:00"},
	}}}}

	t.Run("second attempt keeps concurrent insert", func(t *testing.T) {
		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), uid, tripID).Return(stale, nil),
			repo.EXPECT().ReplaceActivitiesAtRevision(gomock.Any(), uid, tripID, 1, int64(4), gomock.Any()).
				Return(repository.UpdateResult{}, nil),
			repo.EXPECT().GetByID(gomock.Any(), uid, tripID).Return(fresh, nil),
			repo.EXPECT().ReplaceActivitiesAtRevision(gomock.Any(), uid, tripID, 1, int64(5), []entity.Activity{
				{Activity: "Museum", Time: "09:30"},
				{Activity: "Lunch", Time: "12:00"},
			}).Return(repository.UpdateResult{Matched: 1, Modified: 1}, nil),
		)
		err := ts.UpdateActivity(ctx, uid, tripID, 1, "Museum", &service.UpdateActivityRequest{Time: strPtr("09:30")})
		assert.NoError(t, err)
		assert.Equal(t, "10:00", fresh.Days[0].Places[0].Time)
	})
	t.Run("gives up with conflict", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), uid, tripID).Return(stale, nil).Times(3)
		repo.EXPECT().ReplaceActivitiesAtRevision(gomock.Any(), uid, tripID, 1, int64(4), gomock.Any()).
			Return(repository.UpdateResult{}, nil).Times(3)
		err := ts.UpdateActivity(ctx, uid, tripID, 1, "Museum", &service.UpdateActivityRequest{Time: strPtr("09:30")})
		assert.ErrorIs(t, err, errorvalues.ErrRevisionConflict)
	})
}
