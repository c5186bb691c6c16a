package api

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . JWTServiceI

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/lmk2k5/itinerary-backend-email-services/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	// Returns error wrapping errorvalues.ErrInvalidToken for any bad token
	ParseToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims carries user id in "sub" claim.
type JWTClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}
