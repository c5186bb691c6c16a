package repository

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . UsersRepositoryI,TripsRepositoryI,DocumentStore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lmk2k5/itinerary-backend-email-services/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database. Fills generated ID and CreatedAt
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
}

// UpdateResult reports how many trip documents matched the filter and how many were changed.
type UpdateResult struct {
	Matched  int64
	Modified int64
}

// TripsRepositoryI works on trips owned by uid. Every query is scoped by owner,
// positional updates additionally match the day by its number.
type TripsRepositoryI interface {
	// Lists trips owned by user in store's natural order
	ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Trip, error)
	// Inserts trip. ID, revision and timestamps are set by repository
	Create(ctx context.Context, trip *entity.Trip) error
	// Returns trip or ErrTripNotFound
	GetByID(ctx context.Context, uid uuid.UUID, tripID string) (*entity.Trip, error)
	// Sets non-nil top-level fields
	UpdateFields(ctx context.Context, uid uuid.UUID, tripID string, fields entity.TripFields) (UpdateResult, error)
	// Removes trip, returns deleted count
	Delete(ctx context.Context, uid uuid.UUID, tripID string) (int64, error)
	// Checks if trip has a day with given number
	DayExists(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int) (bool, error)
	// Appends day only if trip has no day with the same number
	AppendDay(ctx context.Context, uid uuid.UUID, tripID string, day entity.Day) (UpdateResult, error)
	// Sets date of the day
	UpdateDayDate(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int, date string) (UpdateResult, error)
	// Pulls day with its activities
	RemoveDay(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int) (UpdateResult, error)
	// Pushes activity to the end of day's places
	AppendActivity(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int, activity entity.Activity) (UpdateResult, error)
	// Overwrites day's places with given list
	ReplaceActivities(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int, places []entity.Activity) (UpdateResult, error)
	// Same as ReplaceActivities, but matches only while trip still has given revision
	ReplaceActivitiesAtRevision(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int, revision int64, places []entity.Activity) (UpdateResult, error)
	// Pulls activities with given name from the day
	RemoveActivity(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int, name string) (UpdateResult, error)
}

// DocumentStore is a single collection of a document database.
type DocumentStore interface {
	// Decodes first matching document into out. Returns ErrDocumentNotFound if nothing matched
	FindOne(ctx context.Context, filter any, out any) error
	// Decodes all matching documents into out, which must be a pointer to slice
	Find(ctx context.Context, filter any, out any) error
	// Counts matching documents
	Count(ctx context.Context, filter any) (int64, error)
	InsertOne(ctx context.Context, doc any) error
	UpdateOne(ctx context.Context, filter any, update any) (UpdateResult, error)
	// Returns deleted count
	DeleteOne(ctx context.Context, filter any) (int64, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

type MongoCfg struct {
	URI        string
	DB         string
	Collection string
}

func (mcfg *MongoCfg) ConnString() string {
	return mcfg.URI
}
