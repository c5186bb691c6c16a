package service

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . UserServiceI,TripsServiceI

import (
	"context"

	"github.com/google/uuid"
	"github.com/lmk2k5/itinerary-backend-email-services/pkg/entity"
)

type RegisterRequest struct {
	Name     string `json:"username" validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type CreateTripRequest struct {
	TripName    string `json:"tripName" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

// UpdateTripRequest needs at least one field. Absent fields keep their values.
type UpdateTripRequest struct {
	TripName    *string `json:"tripName" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

type ActivityRequest struct {
	Activity string `json:"activity" validate:"required,max=200"`
	Time     string `json:"time" validate:"required,max=50"`
	Location string `json:"location,omitempty" validate:"max=500"`
	Notes    string `json:"notes,omitempty" validate:"max=2000"`
}

type AddDayRequest struct {
	DayNumber int               `json:"dayNumber" validate:"required,min=1,max=365"`
	Date      string            `json:"date" validate:"required"`
	Places    []ActivityRequest `json:"places" validate:"required,dive"`
}

type UpdateDayRequest struct {
	Date string `json:"date" validate:"required"`
}

// UpdateActivityRequest needs at least one field. Absent fields keep their values.
type UpdateActivityRequest struct {
	Activity *string `json:"activity" validate:"omitempty,max=200"`
	Time     *string `json:"time" validate:"omitempty,max=50"`
	Location *string `json:"location" validate:"omitempty,max=500"`
	Notes    *string `json:"notes" validate:"omitempty,max=2000"`
}

type ReorderRequest struct {
	Activities []ActivityRequest `json:"activities" validate:"required,dive"`
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Returns errorvalues.ErrWrongCredentials on mismatch
	Compare(hash, password string) error
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

// TripsServiceI applies itinerary operations on trips owned by uid.
type TripsServiceI interface {
	ListTrips(ctx context.Context, uid uuid.UUID) ([]*entity.Trip, error)
	CreateTrip(ctx context.Context, uid uuid.UUID, req *CreateTripRequest) (*entity.Trip, error)
	GetTrip(ctx context.Context, uid uuid.UUID, tripID string) (*entity.Trip, error)
	UpdateTrip(ctx context.Context, uid uuid.UUID, tripID string, req *UpdateTripRequest) error
	DeleteTrip(ctx context.Context, uid uuid.UUID, tripID string) error
	// Appends day. Fails with ErrDayExists if trip already has a day with the same number
	AddDay(ctx context.Context, uid uuid.UUID, tripID string, req *AddDayRequest) error
	UpdateDay(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int, req *UpdateDayRequest) error
	DeleteDay(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int) error
	AddActivity(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int, req *ActivityRequest) error
	// Patches the first activity of the day with given name
	UpdateActivity(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int, name string, req *UpdateActivityRequest) error
	// Removes every activity of the day with given name
	DeleteActivity(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int, name string) error
	// Replaces day's activities with the given list as is
	ReorderActivities(ctx context.Context, uid uuid.UUID, tripID string, dayNumber int, req *ReorderRequest) error
}
