package service

import (
	"context"
	"encoding/json"

	"github.com/rgsuhas/fitness-buddy-sub001/internal/common"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/domain"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/repository"
	"github.com/rgsuhas/fitness-buddy-sub001/pkg/cache"
	"github.com/rs/zerolog/log"
)

// UserService user profile business logic interface
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*domain.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *domain.UpdateProfileRequest) (*domain.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	cache    cache.Service
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, cacheService cache.Service) UserService {
	return &userService{
		userRepo: userRepo,
		cache:    cacheService,
	}
}

// GetProfile returns a user's public profile, cache first
func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.UserResponse, error) {
	if s.cache.IsAvailable() {
		if data, err := s.cache.GetUser(ctx, userID); err == nil && data != nil {
			var resp domain.UserResponse
			if err := json.Unmarshal(data, &resp); err == nil {
				return &resp, nil
			}
		}
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil || user == nil {
		return nil, common.ErrUserNotFound
	}

	resp := user.ToResponse()

	if s.cache.IsAvailable() {
		if err := s.cache.SetUser(ctx, userID, resp); err != nil {
			log.Warn().Err(err).Str("user_id", userID).Msg("Failed to cache user profile")
		}
	}

	return resp, nil
}

// UpdateProfile updates name, avatar and bio. Conversations and messages keep
// the snapshots taken when they were created; only the profile itself moves.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req *domain.UpdateProfileRequest) (*domain.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil || user == nil {
		return nil, common.ErrUserNotFound
	}

	fields := map[string]interface{}{}
	if req.Name != "" {
		fields["name"] = req.Name
		user.Name = req.Name
	}
	if req.Avatar != "" {
		fields["avatar"] = req.Avatar
		user.Avatar = req.Avatar
	}
	if req.Bio != "" {
		fields["bio"] = req.Bio
		user.Bio = req.Bio
	}

	if len(fields) > 0 {
		if err := s.userRepo.Update(userID, fields); err != nil {
			return nil, err
		}
	}

	if s.cache.IsAvailable() {
		if err := s.cache.InvalidateUser(ctx, userID); err != nil {
			log.Warn().Err(err).Str("user_id", userID).Msg("Failed to invalidate user cache")
		}
	}

	return user.ToResponse(), nil
}
