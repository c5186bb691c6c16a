package service

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/lmk2k5/itinerary-backend-email-services/internal/error_values"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	minDayNumber = 1
	maxDayNumber = 365
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// Report fields by their json names
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
	})
}

// validateStruct returns error wrapping ErrValidation with a readable list of failed fields.
func validateStruct(s any) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validation unexpected error: %w", err)
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", errorvalues.ErrValidation, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param()
	case "alphanum_underscore":
		return field + " may contain only letters, digits and underscores and must start with a letter"
	default:
		return field + " is invalid"
	}
}

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", errorvalues.ErrValidation, msg)
}

// IsValidTripID reports whether id has the shape of a store-native object id.
func IsValidTripID(id string) bool {
	_, err := bson.ObjectIDFromHex(id)
	return err == nil
}

// IsValidDayNumber reports whether raw is an integer in 1..365.
func IsValidDayNumber(raw string) bool {
	n, err := strconv.Atoi(raw)
	return err == nil && isDayInRange(n)
}

func ParseDayNumber(raw string) (int, error) {
	if !IsValidDayNumber(raw) {
		return 0, errorvalues.ErrInvalidDayNumber
	}
	n, _ := strconv.Atoi(raw)
	return n, nil
}

func isDayInRange(n int) bool {
	return n >= minDayNumber && n <= maxDayNumber
}
