package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rgsuhas/fitness-buddy-sub001/internal/common"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/domain"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/repository"
	"github.com/rgsuhas/fitness-buddy-sub001/pkg/cache"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ExerciseList paginated exercise catalog page
type ExerciseList struct {
	Exercises []*domain.Exercise `json:"exercises"`
	Total     int64              `json:"total"`
}

// ExerciseService exercise catalog business logic interface
type ExerciseService interface {
	ListExercises(ctx context.Context, filter domain.ExerciseFilter, page, limit int) (*ExerciseList, error)
	GetExercise(id int) (*domain.Exercise, error)
	CreateExercise(req *domain.CreateExerciseRequest) (*domain.Exercise, error)
	UpdateExercise(id int, req *domain.UpdateExerciseRequest) (*domain.Exercise, error)
}

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	cache        cache.Service
}

// NewExerciseService creates a new ExerciseService
func NewExerciseService(exerciseRepo repository.ExerciseRepository, cacheService cache.Service) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		cache:        cacheService,
	}
}

// ListExercises returns a filtered catalog page, cache first. The catalog
// changes rarely so pages cache well.
func (s *exerciseService) ListExercises(ctx context.Context, filter domain.ExerciseFilter, page, limit int) (*ExerciseList, error) {
	key := fmt.Sprintf("%s:%s:%s:%d:%d", filter.MuscleGroup, filter.Difficulty, filter.Keyword, page, limit)

	if s.cache.IsAvailable() {
		if data, err := s.cache.GetExercises(ctx, key); err == nil && data != nil {
			var cached ExerciseList
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	exercises, total, err := s.exerciseRepo.List(filter, page, limit)
	if err != nil {
		return nil, err
	}

	list := &ExerciseList{Exercises: exercises, Total: total}

	if s.cache.IsAvailable() {
		if err := s.cache.SetExercises(ctx, key, list); err != nil {
			log.Warn().Err(err).Msg("Failed to cache exercise list")
		}
	}

	return list, nil
}

// GetExercise returns one catalog exercise
func (s *exerciseService) GetExercise(id int) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// CreateExercise adds an exercise to the catalog (admin only, enforced at the
// route level)
func (s *exerciseService) CreateExercise(req *domain.CreateExerciseRequest) (*domain.Exercise, error) {
	exercise := &domain.Exercise{
		Name:        req.Name,
		MuscleGroup: req.MuscleGroup,
		Equipment:   req.Equipment,
		Difficulty:  req.Difficulty,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	if err := s.exerciseRepo.Create(exercise); err != nil {
		return nil, err
	}

	if s.cache.IsAvailable() {
		if err := s.cache.InvalidateExercises(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Failed to invalidate exercise cache")
		}
	}

	return exercise, nil
}

// UpdateExercise replaces a catalog exercise's fields (admin only, enforced at
// the route level)
func (s *exerciseService) UpdateExercise(id int, req *domain.UpdateExerciseRequest) (*domain.Exercise, error) {
	if _, err := s.exerciseRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrExerciseNotFound
		}
		return nil, err
	}

	exercise := &domain.Exercise{
		Name:        req.Name,
		MuscleGroup: req.MuscleGroup,
		Equipment:   req.Equipment,
		Difficulty:  req.Difficulty,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := s.exerciseRepo.Update(id, exercise); err != nil {
		return nil, err
	}

	if s.cache.IsAvailable() {
		if err := s.cache.InvalidateExercises(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Failed to invalidate exercise cache")
		}
	}

	return s.exerciseRepo.FindByID(id)
}
