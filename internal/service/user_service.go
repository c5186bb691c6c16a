package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/lmk2k5/itinerary-backend-email-services/internal/error_values"
	"github.com/lmk2k5/itinerary-backend-email-services/internal/repository"
	"github.com/lmk2k5/itinerary-backend-email-services/pkg/entity"
)

type UserService struct {
	repo   repository.UsersRepositoryI
	hasher PasswordHasher
}

func NewUserService(usersRepo repository.UsersRepositoryI, hasher PasswordHasher) *UserService {
	if usersRepo == nil || hasher == nil {
		log.Fatal("provided nil usersRepo or hasher")
	}
	return &UserService{
		repo:   usersRepo,
		hasher: hasher,
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	passwordHash, err := us.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password error: %w", err)
	}
	user := &entity.User{
		Name:         req.Name,
		PasswordHash: passwordHash,
	}
	err = us.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, errorvalues.ErrUserExists
		}
		return nil, fmt.Errorf("repository creating error: %w", err)
	}
	return user, nil
}

// Login reports unknown user and wrong password with the same error.
func (us *UserService) Login(ctx context.Context, name, password string) (*entity.User, error) {
	if name == "" || password == "" {
		return nil, validationError("username and password are required")
	}
	user, err := us.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	if err = us.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, errorvalues.ErrWrongCredentials) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	return user, nil
}
