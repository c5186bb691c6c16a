package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("invalid username or password")
	ErrInvalidToken     = errors.New("invalid token")
)

// Trip document errors
var (
	ErrTripNotFound      = errors.New("trip not found")
	ErrDayNotFound       = errors.New("day not found")
	ErrTripOrDayNotFound = errors.New("trip or day not found")
	ErrActivityNotFound  = errors.New("activity not found")
	ErrDayExists         = errors.New("day number already exists for this trip")
	ErrRevisionConflict  = errors.New("trip was modified concurrently")
	ErrDocumentNotFound  = errors.New("document not found")
)

// Request validation errors
var (
	ErrValidation       = errors.New("validation error")
	ErrInvalidTripID    = errors.New("invalid trip id")
	ErrInvalidDayNumber = errors.New("invalid day number")
)
