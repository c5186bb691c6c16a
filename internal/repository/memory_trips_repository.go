package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/lmk2k5/itinerary-backend-email-services/internal/error_values"
	"github.com/lmk2k5/itinerary-backend-email-services/pkg/entity"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryTripsRepository keeps trips in process memory. Counts follow the
// document store: Matched means owner, trip and day filters all matched.
type MemoryTripsRepository struct {
	mu    sync.RWMutex
	trips map[string]*entity.Trip
	order []string
	now   func() time.Time
}

func NewMemoryTripsRepo() *MemoryTripsRepository {
	return &MemoryTripsRepository{
		trips: make(map[string]*entity.Trip),
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// tripKey maps any accepted spelling of an object id to the stored key.
func tripKey(tripID string) string {
	if oid, err := bson.ObjectIDFromHex(tripID); err == nil {
		return oid.Hex()
	}
	return tripID
}

// owned must be called with the lock held.
func (mr *MemoryTripsRepository) owned(uid uuid.UUID, tripID string) *entity.Trip {
	t, ok := mr.trips[tripKey(tripID)]
	if !ok || t.UserID != uid.String() {
		return nil
	}
	return t
}

// mutate runs f on the owned trip and bumps its revision when f reports a match.
func (mr *MemoryTripsRepository) mutate(uid uuid.UUID, tripID string, f func(t *entity.Trip) bool) UpdateResult {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	t := mr.owned(uid, tripID)
	if t == nil || !f(t) {
		return UpdateResult{}
	}
	t.UpdatedAt = mr.now()
	t.Revision++
	return UpdateResult{Matched: 1, Modified: 1}
}

func (mr *MemoryTripsRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Trip, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	trips := make([]*entity.Trip, 0)
	for _, id := range mr.order {
		if t := mr.owned(uid, id); t != nil {
			trips = append(trips, t.Clone())
		}
	}
	return trips, nil
}

func (mr *MemoryTripsRepository) Create(ctx context.Context, trip *entity.Trip) error {
	if trip == nil {
		return errors.New("trip is nil")
	}
	mr.mu.Lock()
	defer mr.mu.Unlock()
	now := mr.now()
	stored := trip.Clone()
	stored.ID = bson.NewObjectID().Hex()
	stored.Revision = 0
	stored.CreatedAt = now
	stored.UpdatedAt = now
	mr.trips[stored.ID] = stored
	mr.order = append(mr.order, stored.ID)
	*trip = *stored.Clone()
	return nil
}

func (mr *MemoryTripsRepository) GetByID(ctx context.Context, uid uuid.UUID, tripID string) (*entity.Trip, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	t := mr.owned(uid, tripID)
	if t == nil {
		return nil, errorvalues.ErrTripNotFound
	}
	return t.Clone(), nil
}

func (mr *MemoryTripsRepository) UpdateFields(ctx context.Context, uid uuid.UUID, tripID string, fields entity.TripFields) (UpdateResult, error) {
	return mr.mutate(uid, tripID, func(t *entity.Trip) bool {
		if fields.TripName != nil {
			t.TripName = *fields.TripName
		}
		if fields.Description != nil {
			t.Description = *fields.Description
		}
		return true
	}), nil
}

func (mr *MemoryTripsRepository) Delete(ctx context.Context, uid uuid.UUID, tripID string) (int64, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	t := mr.owned(uid, tripID)
	if t == nil {
		return 0, nil
	}
	delete(mr.trips, t.ID)
	for i, id := range mr.order {
		if id == t.ID {
			mr.order = append(mr.order[:i], mr.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

func (mr *MemoryTripsRepository) DayExists(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int) (bool, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	t := mr.owned(uid, tripID)
	return t != nil && t.FindDay(dayNumber) >= 0, nil
}

func (mr *MemoryTripsRepository) AppendDay(ctx context.Context, uid uuid.UUID, tripID string, day entity.Day) (UpdateResult, error) {
	day.Places = append([]entity.Activity{}, day.Places...)
	return mr.mutate(uid, tripID, func(t *entity.Trip) bool {
		if t.FindDay(day.DayNumber) >= 0 {
			return false
		}
		t.Days = append(t.Days, day)
		return true
	}), nil
}

func (mr *MemoryTripsRepository) UpdateDayDate(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int, date string) (UpdateResult, error) {
	return mr.mutate(uid, tripID, func(t *entity.Trip) bool {
		i := t.FindDay(dayNumber)
		if i < 0 {
			return false
		}
		t.Days[i].Date = date
		return true
	}), nil
}

func (mr *MemoryTripsRepository) RemoveDay(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int) (UpdateResult, error) {
	return mr.mutate(uid, tripID, func(t *entity.Trip) bool {
		if t.FindDay(dayNumber) < 0 {
			return false
		}
		kept := t.Days[:0]
		for _, d := range t.Days {
			if d.DayNumber != dayNumber {
				kept = append(kept, d)
			}
		}
		t.Days = kept
		return true
	}), nil
}

func (mr *MemoryTripsRepository) AppendActivity(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int, activity entity.Activity) (UpdateResult, error) {
	return mr.mutate(uid, tripID, func(t *entity.Trip) bool {
		i := t.FindDay(dayNumber)
		if i < 0 {
			return false
		}
		t.Days[i].Places = append(t.Days[i].Places, activity)
		return true
	}), nil
}

func (mr *MemoryTripsRepository) ReplaceActivities(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int, places []entity.Activity) (UpdateResult, error) {
	return mr.replace(uid, tripID, dayNumber, places, nil), nil
}

func (mr *MemoryTripsRepository) ReplaceActivitiesAtRevision(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int, revision int64, places []entity.Activity) (UpdateResult, error) {
	return mr.replace(uid, tripID, dayNumber, places, &revision), nil
}

func (mr *MemoryTripsRepository) replace(uid uuid.UUID, tripID string, dayNumber int, places []entity.Activity, revision *int64) UpdateResult {
	places = append([]entity.Activity{}, places...)
	return mr.mutate(uid, tripID, func(t *entity.Trip) bool {
		if revision != nil && t.Revision != *revision {
			return false
		}
		i := t.FindDay(dayNumber)
		if i < 0 {
			return false
		}
		t.Days[i].Places = places
		return true
	})
}

func (mr *MemoryTripsRepository) RemoveActivity(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int, name string) (UpdateResult, error) {
	return mr.mutate(uid, tripID, func(t *entity.Trip) bool {
		for i := range t.Days {
			d := &t.Days[i]
			if d.DayNumber != dayNumber || d.FindActivity(name) < 0 {
				continue
			}
			kept := make([]entity.Activity, 0, len(d.Places))
			for _, a := range d.Places {
				if a.Activity != name {
					kept = append(kept, a)
				}
			}
			d.Places = kept
			return true
		}
		return false
	}), nil
}
