package hasher

import (
	"errors"
	"fmt"

	errorvalues "github.com/lmk2k5/itinerary-backend-email-services/internal/error_values"
	"golang.org/x/crypto/bcrypt"
)

type BcryptHasher struct {
	cost int
}

// New returns hasher with given bcrypt cost. Zero means bcrypt.DefaultCost.
func New(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{
		cost: cost,
	}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password error: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return errorvalues.ErrWrongCredentials
		}
		return fmt.Errorf("comparing password error: %w", err)
	}
	return nil
}
