package service

import (
	"context"
	"errors"

	"github.com/rgsuhas/fitness-buddy-sub001/internal/common"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/domain"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/repository"
	"github.com/rgsuhas/fitness-buddy-sub001/pkg/cache"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// LikeService post like business logic interface
type LikeService interface {
	ToggleLike(ctx context.Context, postID int, userID string) (*domain.LikeResponse, error)
}

type likeService struct {
	likeRepo repository.LikeRepository
	postRepo repository.PostRepository
	cache    cache.Service
}

// NewLikeService creates a new LikeService
func NewLikeService(likeRepo repository.LikeRepository, postRepo repository.PostRepository, cacheService cache.Service) LikeService {
	return &likeService{
		likeRepo: likeRepo,
		postRepo: postRepo,
		cache:    cacheService,
	}
}

// ToggleLike flips the user's like on a post and returns the resulting state
func (s *likeService) ToggleLike(ctx context.Context, postID int, userID string) (*domain.LikeResponse, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPostNotFound
		}
		return nil, err
	}

	liked, err := s.likeRepo.Toggle(postID, userID)
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}

	if s.cache.IsAvailable() {
		if err := s.cache.InvalidatePosts(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to invalidate post cache")
		}
	}

	return &domain.LikeResponse{Liked: liked, LikeCount: post.LikeCount}, nil
}
