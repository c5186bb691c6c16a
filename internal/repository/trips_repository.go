package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/lmk2k5/itinerary-backend-email-services/internal/error_values"
	"github.com/lmk2k5/itinerary-backend-email-services/pkg/entity"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type tripDocument struct {
	ID          bson.ObjectID `bson:"_id"`
	UserID      string        `bson:"userId"`
	TripName    string        `bson:"tripName"`
	Description string        `bson:"description"`
	Days        []entity.Day  `bson:"days"`
	Revision    int64         `bson:"revision"`
	CreatedAt   time.Time     `bson:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt"`
}

func (d *tripDocument) toEntity() *entity.Trip {
	t := &entity.Trip{
		ID:          d.ID.Hex(),
		UserID:      d.UserID,
		TripName:    d.TripName,
		Description: d.Description,
		Days:        d.Days,
		Revision:    d.Revision,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	normalizeDays(t)
	return t
}

// normalizeDays replaces nil slices so trips always serialize with [] instead of null.
func normalizeDays(t *entity.Trip) {
	if t.Days == nil {
		t.Days = []entity.Day{}
	}
	for i := range t.Days {
		if t.Days[i].Places == nil {
			t.Days[i].Places = []entity.Activity{}
		}
	}
}

// TripsRepository keeps trips as documents with embedded days and places.
type TripsRepository struct {
	store DocumentStore
	now   func() time.Time
}

func NewTripsRepo(cfg *MongoCfg) *TripsRepository {
	dbName, collName := cfg.DB, cfg.Collection
	if dbName == "" {
		dbName = defaultMongoDB
	}
	if collName == "" {
		collName = defaultTripsCollection
	}
	coll := NewMongoClient(cfg).Database(dbName).Collection(collName)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := EnsureTripIndexes(ctx, coll); err != nil {
		log.Fatal(err.Error())
	}
	return NewTripsRepoWithStore(NewMongoStore(coll))
}

func NewTripsRepoWithStore(store DocumentStore) *TripsRepository {
	return &TripsRepository{
		store: store,
		now: func() time.Time {
			return time.Now().UTC().Truncate(time.Millisecond)
		},
	}
}

func parseTripID(tripID string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(tripID)
	if err != nil {
		return bson.ObjectID{}, errorvalues.ErrTripNotFound
	}
	return oid, nil
}

func ownerFilter(uid uuid.UUID, oid bson.ObjectID, extra ...bson.E) bson.D {
	return append(bson.D{
		{Key: "_id", Value: oid},
		{Key: "userId", Value: uid.String()},
	}, extra...)
}

func dayMatch(dayNumber int) bson.E {
	return bson.E{Key: "days.dayNumber", Value: dayNumber}
}

// Documents written before revisions were introduced have no revision field.
func revisionMatch(revision int64) bson.E {
	if revision == 0 {
		return bson.E{Key: "revision", Value: bson.D{{Key: "$in", Value: bson.A{int64(0), nil}}}}
	}
	return bson.E{Key: "revision", Value: revision}
}

// mutation builds update document that also bumps updatedAt and revision.
func (tr *TripsRepository) mutation(set bson.D, ops ...bson.E) bson.D {
	set = append(set, bson.E{Key: "updatedAt", Value: tr.now()})
	return append(bson.D{
		{Key: "$set", Value: set},
		{Key: "$inc", Value: bson.D{{Key: "revision", Value: 1}}},
	}, ops...)
}

func (tr *TripsRepository) update(ctx context.Context, uid uuid.UUID, tripID string, op string, filter []bson.E, set bson.D, ops ...bson.E) (UpdateResult, error) {
	oid, err := parseTripID(tripID)
	if err != nil {
		return UpdateResult{}, nil
	}
	res, err := tr.store.UpdateOne(ctx, ownerFilter(uid, oid, filter...), tr.mutation(set, ops...))
	if err != nil {
		return UpdateResult{}, fmt.Errorf("trips repository %s error: %w", op, err)
	}
	return res, nil
}

func (tr *TripsRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Trip, error) {
	var docs []tripDocument
	if err := tr.store.Find(ctx, bson.D{{Key: "userId", Value: uid.String()}}, &docs); err != nil {
		return nil, fmt.Errorf("trips repository list error: %w", err)
	}
	trips := make([]*entity.Trip, 0, len(docs))
	for i := range docs {
		trips = append(trips, docs[i].toEntity())
	}
	return trips, nil
}

func (tr *TripsRepository) Create(ctx context.Context, trip *entity.Trip) error {
	if trip == nil {
		return errors.New("trip is nil")
	}
	now := tr.now()
	doc := tripDocument{
		ID:          bson.NewObjectID(),
		UserID:      trip.UserID,
		TripName:    trip.TripName,
		Description: trip.Description,
		Days:        trip.Days,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if doc.Days == nil {
		doc.Days = []entity.Day{}
	}
	if err := tr.store.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("trips repository create error: %w", err)
	}
	*trip = *doc.toEntity()
	return nil
}

func (tr *TripsRepository) GetByID(ctx context.Context, uid uuid.UUID, tripID string) (*entity.Trip, error) {
	oid, err := parseTripID(tripID)
	if err != nil {
		return nil, err
	}
	var doc tripDocument
	if err = tr.store.FindOne(ctx, ownerFilter(uid, oid), &doc); err != nil {
		if errors.Is(err, errorvalues.ErrDocumentNotFound) {
			return nil, errorvalues.ErrTripNotFound
		}
		return nil, fmt.Errorf("trips repository get error: %w", err)
	}
	return doc.toEntity(), nil
}

func (tr *TripsRepository) UpdateFields(ctx context.Context, uid uuid.UUID, tripID string, fields entity.TripFields) (UpdateResult, error) {
	var set bson.D
	if fields.TripName != nil {
		set = append(set, bson.E{Key: "tripName", Value: *fields.TripName})
	}
	if fields.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *fields.Description})
	}
	return tr.update(ctx, uid, tripID, "update fields", nil, set)
}

func (tr *TripsRepository) Delete(ctx context.Context, uid uuid.UUID, tripID string) (int64, error) {
	oid, err := parseTripID(tripID)
	if err != nil {
		return 0, nil
	}
	n, err := tr.store.DeleteOne(ctx, ownerFilter(uid, oid))
	if err != nil {
		return 0, fmt.Errorf("trips repository delete error: %w", err)
	}
	return n, nil
}

func (tr *TripsRepository) DayExists(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int) (bool, error) {
	oid, err := parseTripID(tripID)
	if err != nil {
		return false, nil
	}
	n, err := tr.store.Count(ctx, ownerFilter(uid, oid, dayMatch(dayNumber)))
	if err != nil {
		return false, fmt.Errorf("trips repository day lookup error: %w", err)
	}
	return n > 0, nil
}

func (tr *TripsRepository) AppendDay(ctx context.Context, uid uuid.UUID, tripID string, day entity.Day) (UpdateResult, error) {
	if day.Places == nil {
		day.Places = []entity.Activity{}
	}
	// The $ne guard makes check-and-append a single atomic write.
	absent := bson.E{Key: "days.dayNumber", Value: bson.D{{Key: "$ne", Value: day.DayNumber}}}
	return tr.update(ctx, uid, tripID, "append day", []bson.E{absent}, nil,
		bson.E{Key: "$push", Value: bson.D{{Key: "days", Value: day}}})
}

func (tr *TripsRepository) UpdateDayDate(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int, date string) (UpdateResult, error) {
	return tr.update(ctx, uid, tripID, "update day", []bson.E{dayMatch(dayNumber)},
		bson.D{{Key: "days.$.date", Value: date}})
}

func (tr *TripsRepository) RemoveDay(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int) (UpdateResult, error) {
	return tr.update(ctx, uid, tripID, "remove day", []bson.E{dayMatch(dayNumber)}, nil,
		bson.E{Key: "$pull", Value: bson.D{{Key: "days", Value: bson.D{{Key: "dayNumber", Value: dayNumber}}}}})
}

func (tr *TripsRepository) AppendActivity(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int, activity entity.Activity) (UpdateResult, error) {
	return tr.update(ctx, uid, tripID, "append activity", []bson.E{dayMatch(dayNumber)}, nil,
		bson.E{Key: "$push", Value: bson.D{{Key: "days.$.places", Value: activity}}})
}

func (tr *TripsRepository) ReplaceActivities(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int, places []entity.Activity) (UpdateResult, error) {
	if places == nil {
		places = []entity.Activity{}
	}
	return tr.update(ctx, uid, tripID, "replace activities", []bson.E{dayMatch(dayNumber)},
		bson.D{{Key: "days.$.places", Value: places}})
}

func (tr *TripsRepository) ReplaceActivitiesAtRevision(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int, revision int64, places []entity.Activity) (UpdateResult, error) {
	if places == nil {
		places = []entity.Activity{}
	}
	return tr.update(ctx, uid, tripID, "replace activities", []bson.E{dayMatch(dayNumber), revisionMatch(revision)},
		bson.D{{Key: "days.$.places", Value: places}})
}

func (tr *TripsRepository) RemoveActivity(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int, name string) (UpdateResult, error) {
	// $elemMatch binds the positional operator to the day that holds the activity.
	elem := bson.E{Key: "days", Value: bson.D{{Key: "$elemMatch", Value: bson.D{
		{Key: "dayNumber", Value: dayNumber},
		{Key: "places.activity", Value: name},
	}}}}
	return tr.update(ctx, uid, tripID, "remove activity", []bson.E{elem}, nil,
		bson.E{Key: "$pull", Value: bson.D{{Key: "days.$.places", Value: bson.D{{Key: "activity", Value: name}}}}})
}
