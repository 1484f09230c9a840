package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rgsuhas/fitness-buddy-sub001/internal/common"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/domain"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// WorkoutList paginated workout plan list
type WorkoutList struct {
	Workouts []*domain.WorkoutResponse `json:"workouts"`
	Total    int64                     `json:"total"`
}

// WorkoutService workout plan business logic interface
type WorkoutService interface {
	CreateWorkout(ownerID string, req *domain.CreateWorkoutRequest) (*domain.WorkoutResponse, error)
	GetWorkout(id int, viewerID string) (*domain.WorkoutResponse, error)
	ListWorkouts(ownerID string, page, limit int) (*WorkoutList, error)
	DeleteWorkout(id int, ownerID string) error
	GenerateWorkout(ctx context.Context, ownerID string, req *domain.GeneratePlanRequest) (*domain.WorkoutResponse, error)
}

type workoutService struct {
	workoutRepo  repository.WorkoutRepository
	exerciseRepo repository.ExerciseRepository
	generator    PlanGenerator
}

// NewWorkoutService creates a new WorkoutService. generator may be nil when
// AI plan generation is disabled.
func NewWorkoutService(
	workoutRepo repository.WorkoutRepository,
	exerciseRepo repository.ExerciseRepository,
	generator PlanGenerator,
) WorkoutService {
	return &workoutService{
		workoutRepo:  workoutRepo,
		exerciseRepo: exerciseRepo,
		generator:    generator,
	}
}

// CreateWorkout saves a manually composed workout plan
func (s *workoutService) CreateWorkout(ownerID string, req *domain.CreateWorkoutRequest) (*domain.WorkoutResponse, error) {
	if len(req.Items) == 0 {
		return nil, common.ErrInvalidInput
	}

	items, err := json.Marshal(req.Items)
	if err != nil {
		return nil, err
	}

	workout := &domain.Workout{
		OwnerID:   ownerID,
		Title:     req.Title,
		Goal:      req.Goal,
		Level:     req.Level,
		ItemsJSON: string(items),
	}

	if err := s.workoutRepo.Create(workout); err != nil {
		return nil, err
	}

	return toWorkoutResponse(workout)
}

// GetWorkout returns one workout plan. Plans are private to their owner.
func (s *workoutService) GetWorkout(id int, viewerID string) (*domain.WorkoutResponse, error) {
	workout, err := s.workoutRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrWorkoutNotFound
		}
		return nil, err
	}
	if workout.OwnerID != viewerID {
		return nil, common.ErrForbidden
	}
	return toWorkoutResponse(workout)
}

// ListWorkouts returns the owner's plans, newest first
func (s *workoutService) ListWorkouts(ownerID string, page, limit int) (*WorkoutList, error) {
	workouts, total, err := s.workoutRepo.ListByOwner(ownerID, page, limit)
	if err != nil {
		return nil, err
	}

	list := &WorkoutList{Workouts: make([]*domain.WorkoutResponse, 0, len(workouts)), Total: total}
	for _, workout := range workouts {
		resp, err := toWorkoutResponse(workout)
		if err != nil {
			log.Warn().Err(err).Int("workout_id", workout.ID).Msg("Skipping workout with malformed items")
			continue
		}
		list.Workouts = append(list.Workouts, resp)
	}
	return list, nil
}

// DeleteWorkout removes a plan owned by the user
func (s *workoutService) DeleteWorkout(id int, ownerID string) error {
	err := s.workoutRepo.Delete(id, ownerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.ErrWorkoutNotFound
	}
	return err
}

// GenerateWorkout asks the plan generator for a plan, links generated items
// to catalog exercises by name where possible, and saves the result.
func (s *workoutService) GenerateWorkout(ctx context.Context, ownerID string, req *domain.GeneratePlanRequest) (*domain.WorkoutResponse, error) {
	if s.generator == nil {
		return nil, fmt.Errorf("plan generation is not configured")
	}

	plan, err := s.generator.GeneratePlan(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("owner_id", ownerID).Msg("Plan generation failed")
		return nil, err
	}

	s.linkCatalogExercises(plan.Items)

	items, err := json.Marshal(plan.Items)
	if err != nil {
		return nil, err
	}

	workout := &domain.Workout{
		OwnerID:     ownerID,
		Title:       plan.Title,
		Goal:        req.Goal,
		Level:       req.Level,
		ItemsJSON:   string(items),
		IsGenerated: true,
	}

	if err := s.workoutRepo.Create(workout); err != nil {
		return nil, err
	}

	return toWorkoutResponse(workout)
}

// linkCatalogExercises fills in exercise IDs for generated items whose names
// match the catalog. Unmatched items keep a zero ID and stay name-only.
func (s *workoutService) linkCatalogExercises(items []domain.WorkoutItem) {
	for i := range items {
		if items[i].ExerciseName == "" {
			continue
		}
		matches, _, err := s.exerciseRepo.List(domain.ExerciseFilter{Keyword: items[i].ExerciseName}, 1, 1)
		if err != nil || len(matches) == 0 {
			continue
		}
		items[i].ExerciseID = matches[0].ID
	}
}

func toWorkoutResponse(workout *domain.Workout) (*domain.WorkoutResponse, error) {
	var items []domain.WorkoutItem
	if workout.ItemsJSON != "" {
		if err := json.Unmarshal([]byte(workout.ItemsJSON), &items); err != nil {
			return nil, err
		}
	}
	return &domain.WorkoutResponse{
		ID:          workout.ID,
		OwnerID:     workout.OwnerID,
		Title:       workout.Title,
		Goal:        workout.Goal,
		Level:       workout.Level,
		Items:       items,
		IsGenerated: workout.IsGenerated,
		CreatedAt:   workout.CreatedAt,
	}, nil
}
