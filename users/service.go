// Package users exposes the authenticated user's own profile.
package users

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/user/inventory-go/apperror"
	"github.com/user/inventory-go/auth"
)

// ProfileStore is the subset of auth.UserStore this package reads from.
type ProfileStore interface {
	GetByID(ctx context.Context, id int64) (*auth.User, error)
}

// UserService provides methods for user profile management.
type UserService struct {
	store ProfileStore
	log   *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(store ProfileStore, log *zap.Logger) *UserService {
	return &UserService{store: store, log: log}
}

// GetUserProfile retrieves a user's profile by their ID.
func (s *UserService) GetUserProfile(ctx context.Context, userID int64) (*UserProfileResponse, error) {
	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			// The token outlived its account.
			return nil, apperror.NewNotFoundError("User not found.", nil)
		}
		return nil, apperror.NewDatabaseError("Failed to get user profile.", err)
	}

	return &UserProfileResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}
