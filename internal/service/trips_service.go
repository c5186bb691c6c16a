package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/lmk2k5/itinerary-backend-email-services/internal/error_values"
	"github.com/lmk2k5/itinerary-backend-email-services/internal/repository"
	"github.com/lmk2k5/itinerary-backend-email-services/pkg/entity"
)

const defaultUpdateAttempts = 3

// TripsService validates itinerary operations and turns repository
// matched/modified counts into not-found and conflict errors.
type TripsService struct {
	repo        repository.TripsRepositoryI
	maxAttempts int
}

func NewTripsService(tripsRepo repository.TripsRepositoryI) *TripsService {
	if tripsRepo == nil {
		log.Fatal("provided nil tripsRepo")
	}
	return &TripsService{
		repo:        tripsRepo,
		maxAttempts: defaultUpdateAttempts,
	}
}

func repoError(err error) error {
	return fmt.Errorf("trips repository error: %w", err)
}

func checkTripID(tripID string) error {
	if !IsValidTripID(tripID) {
		return errorvalues.ErrInvalidTripID
	}
	return nil
}

func checkDay(tripID string, dayNumber int) error {
	if err := checkTripID(tripID); err != nil {
		return err
	}
	if !isDayInRange(dayNumber) {
		return errorvalues.ErrInvalidDayNumber
	}
	return nil
}

func toActivity(req ActivityRequest) entity.Activity {
	return entity.Activity{
		Activity: req.Activity,
		Time:     req.Time,
		Location: req.Location,
		Notes:    req.Notes,
	}
}

func toActivities(reqs []ActivityRequest) []entity.Activity {
	places := make([]entity.Activity, 0, len(reqs))
	for _, r := range reqs {
		places = append(places, toActivity(r))
	}
	return places
}

func (ts *TripsService) ListTrips(ctx context.Context, uid uuid.UUID) ([]*entity.Trip, error) {
	trips, err := ts.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, repoError(err)
	}
	return trips, nil
}

func (ts *TripsService) CreateTrip(ctx context.Context, uid uuid.UUID, req *CreateTripRequest) (*entity.Trip, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.TripName) == "" {
		return nil, validationError("tripName is required")
	}
	trip := &entity.Trip{
		UserID:      uid.String(),
		TripName:    req.TripName,
		Description: req.Description,
		Days:        []entity.Day{},
	}
	if err := ts.repo.Create(ctx, trip); err != nil {
		return nil, repoError(err)
	}
	return trip, nil
}

func (ts *TripsService) GetTrip(ctx context.Context, uid uuid.UUID, tripID string) (*entity.Trip, error) {
	if err := checkTripID(tripID); err != nil {
		return nil, err
	}
	trip, err := ts.repo.GetByID(ctx, uid, tripID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTripNotFound) {
			return nil, errorvalues.ErrTripNotFound
		}
		return nil, repoError(err)
	}
	return trip, nil
}

func (ts *TripsService) UpdateTrip(ctx context.Context, uid uuid.UUID, tripID string, req *UpdateTripRequest) error {
	if err := checkTripID(tripID); err != nil {
		return err
	}
	if req.TripName == nil && req.Description == nil {
		return validationError("at least one of tripName or description must be provided")
	}
	if req.TripName != nil && strings.TrimSpace(*req.TripName) == "" {
		return validationError("tripName must not be empty")
	}
	if err := validateStruct(req); err != nil {
		return err
	}
	res, err := ts.repo.UpdateFields(ctx, uid, tripID, entity.TripFields{
		TripName:    req.TripName,
		Description: req.Description,
	})
	if err != nil {
		return repoError(err)
	}
	if res.Matched == 0 {
		return errorvalues.ErrTripNotFound
	}
	return nil
}

func (ts *TripsService) DeleteTrip(ctx context.Context, uid uuid.UUID, tripID string) error {
	if err := checkTripID(tripID); err != nil {
		return err
	}
	deleted, err := ts.repo.Delete(ctx, uid, tripID)
	if err != nil {
		return repoError(err)
	}
	if deleted == 0 {
		return errorvalues.ErrTripNotFound
	}
	return nil
}

func (ts *TripsService) AddDay(ctx context.Context, uid uuid.UUID, tripID string, req *AddDayRequest) error {
	if err := checkTripID(tripID); err != nil {
		return err
	}
	if err := validateStruct(req); err != nil {
		return err
	}
	res, err := ts.repo.AppendDay(ctx, uid, tripID, entity.Day{
		DayNumber: req.DayNumber,
		Date:      req.Date,
		Places:    toActivities(req.Places),
	})
	if err != nil {
		return repoError(err)
	}
	if res.Matched > 0 {
		return nil
	}
	// Nothing matched: either the trip is missing or the day number is taken.
	exists, err := ts.repo.DayExists(ctx, uid, tripID, req.DayNumber)
	if err != nil {
		return repoError(err)
	}
	if exists {
		return errorvalues.ErrDayExists
	}
	return errorvalues.ErrTripNotFound
}

func (ts *TripsService) UpdateDay(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int, req *UpdateDayRequest) error {
	if err := checkDay(tripID, dayNumber); err != nil {
		return err
	}
	if err := validateStruct(req); err != nil {
		return err
	}
	res, err := ts.repo.UpdateDayDate(ctx, uid, tripID, dayNumber, req.Date)
	if err != nil {
		return repoError(err)
	}
	switch {
	case res.Matched == 0:
		return errorvalues.ErrTripOrDayNotFound
	case res.Modified == 0:
		return errorvalues.ErrDayNotFound
	}
	return nil
}

func (ts *TripsService) DeleteDay(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int) error {
	if err := checkDay(tripID, dayNumber); err != nil {
		return err
	}
	res, err := ts.repo.RemoveDay(ctx, uid, tripID, dayNumber)
	if err != nil {
		return repoError(err)
	}
	if res.Modified == 0 {
		return errorvalues.ErrTripOrDayNotFound
	}
	return nil
}

func (ts *TripsService) AddActivity(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int, req *ActivityRequest) error {
	if err := checkDay(tripID, dayNumber); err != nil {
		return err
	}
	if err := validateStruct(req); err != nil {
		return err
	}
	res, err := ts.repo.AppendActivity(ctx, uid, tripID, dayNumber, toActivity(*req))
	if err != nil {
		return repoError(err)
	}
	if res.Matched == 0 {
		return errorvalues.ErrTripOrDayNotFound
	}
	return nil
}

func (req *UpdateActivityRequest) patch() (entity.ActivityPatch, error) {
	p := entity.ActivityPatch{
		Activity: req.Activity,
		Time:     req.Time,
		Location: req.Location,
		Notes:    req.Notes,
	}
	if p.Empty() {
		return p, validationError("at least one field must be provided")
	}
	if err := validateStruct(req); err != nil {
		return p, err
	}
	if p.Activity != nil && strings.TrimSpace(*p.Activity) == "" {
		return p, validationError("activity must not be empty")
	}
	if p.Time != nil && strings.TrimSpace(*p.Time) == "" {
		return p, validationError("time must not be empty")
	}
	return p, nil
}

// UpdateActivity does read-modify-write of the day's places. The write only
// matches while the trip revision is unchanged, otherwise it is retried on
// fresh state.
func (ts *TripsService) UpdateActivity(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int, name string, req *UpdateActivityRequest) error {
	if err := checkDay(tripID, dayNumber); err != nil {
		return err
	}
	p, err := req.patch()
	if err != nil {
		return err
	}
	for attempt := 0; attempt < ts.maxAttempts; attempt++ {
		trip, err := ts.repo.GetByID(ctx, uid, tripID)
		if err != nil {
			if errors.Is(err, errorvalues.ErrTripNotFound) {
				return errorvalues.ErrTripNotFound
			}
			return repoError(err)
		}
		di := trip.FindDay(dayNumber)
		if di < 0 {
			return errorvalues.ErrDayNotFound
		}
		day := trip.Days[di]
		ai := day.FindActivity(name)
		if ai < 0 {
			return errorvalues.ErrActivityNotFound
		}
		places := append([]entity.Activity{}, day.Places...)
		p.Apply(&places[ai])

		res, err := ts.repo.ReplaceActivitiesAtRevision(ctx, uid, tripID, dayNumber, trip.Revision, places)
		if err != nil {
			return repoError(err)
		}
		if res.Matched > 0 {
			return nil
		}
	}
	return errorvalues.ErrRevisionConflict
}

func (ts *TripsService) DeleteActivity(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int, name string) error {
	if err := checkDay(tripID, dayNumber); err != nil {
		return err
	}
	if name == "" {
		return validationError("activity name is required")
	}
	res, err := ts.repo.RemoveActivity(ctx, uid, tripID, dayNumber, name)
	if err != nil {
		return repoError(err)
	}
	if res.Modified > 0 {
		return nil
	}
	return ts.explainMissingActivity(ctx, uid, tripID, dayNumber)
}

// explainMissingActivity finds out which level of trip/day/activity was missing.
func (ts *TripsService) explainMissingActivity(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int) error {
	trip, err := ts.repo.GetByID(ctx, uid, tripID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTripNotFound) {
			return errorvalues.ErrTripNotFound
		}
		return repoError(err)
	}
	if trip.FindDay(dayNumber) < 0 {
		return errorvalues.ErrDayNotFound
	}
	return errorvalues.ErrActivityNotFound
}

func (ts *TripsService) ReorderActivities(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int, req *ReorderRequest) error {
	if err := checkDay(tripID, dayNumber); err != nil {
		return err
	}
	if err := validateStruct(req); err != nil {
		return err
	}
	res, err := ts.repo.ReplaceActivities(ctx, uid, tripID, dayNumber, toActivities(req.Activities))
	if err != nil {
		return repoError(err)
	}
	switch {
	case res.Matched == 0:
		return errorvalues.ErrTripOrDayNotFound
	case res.Modified == 0:
		return errorvalues.ErrDayNotFound
	}
	return nil
}
