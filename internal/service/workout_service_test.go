package service

import (
	"context"
	"testing"

	"github.com/rgsuhas/fitness-buddy-sub001/internal/common"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mock WorkoutRepository ---

type mockWorkoutRepo struct {
	mock.Mock
}

func (m *mockWorkoutRepo) Create(workout *domain.Workout) error {
	return m.Called(workout).Error(0)
}

func (m *mockWorkoutRepo) FindByID(id int) (*domain.Workout, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workout), args.Error(1)
}

func (m *mockWorkoutRepo) ListByOwner(ownerID string, page, limit int) ([]*domain.Workout, int64, error) {
	args := m.Called(ownerID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Workout), args.Get(1).(int64), args.Error(2)
}

func (m *mockWorkoutRepo) Delete(id int, ownerID string) error {
	return m.Called(id, ownerID).Error(0)
}

// --- Mock ExerciseRepository ---

type mockExerciseRepo struct {
	mock.Mock
}

func (m *mockExerciseRepo) Create(exercise *domain.Exercise) error {
	return m.Called(exercise).Error(0)
}

func (m *mockExerciseRepo) FindByID(id int) (*domain.Exercise, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exercise), args.Error(1)
}

func (m *mockExerciseRepo) FindByIDs(ids []int) ([]*domain.Exercise, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Exercise), args.Error(1)
}

func (m *mockExerciseRepo) List(filter domain.ExerciseFilter, page, limit int) ([]*domain.Exercise, int64, error) {
	args := m.Called(filter, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Exercise), args.Get(1).(int64), args.Error(2)
}

func (m *mockExerciseRepo) Update(id int, exercise *domain.Exercise) error {
	return m.Called(id, exercise).Error(0)
}

// --- Mock PlanGenerator ---

type mockPlanGenerator struct {
	mock.Mock
}

func (m *mockPlanGenerator) GeneratePlan(ctx context.Context, req *domain.GeneratePlanRequest) (*GeneratedPlan, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GeneratedPlan), args.Error(1)
}

// --- Tests ---

func TestCreateWorkout_SerializesItems(t *testing.T) {
	workoutRepo := new(mockWorkoutRepo)
	svc := NewWorkoutService(workoutRepo, new(mockExerciseRepo), nil)

	workoutRepo.On("Create", mock.AnythingOfType("*domain.Workout")).Return(nil)

	resp, err := svc.CreateWorkout("u1", &domain.CreateWorkoutRequest{
		Title: "Push day",
		Items: []domain.WorkoutItem{
			{ExerciseName: "Bench press", Sets: 4, Reps: 6},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Push day", resp.Title)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, "Bench press", resp.Items[0].ExerciseName)

	created := workoutRepo.Calls[0].Arguments.Get(0).(*domain.Workout)
	assert.Contains(t, created.ItemsJSON, "Bench press")
	assert.False(t, created.IsGenerated)
}

func TestCreateWorkout_RejectsEmptyItems(t *testing.T) {
	svc := NewWorkoutService(new(mockWorkoutRepo), new(mockExerciseRepo), nil)

	_, err := svc.CreateWorkout("u1", &domain.CreateWorkoutRequest{Title: "Empty"})

	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestGetWorkout_OwnerOnly(t *testing.T) {
	workoutRepo := new(mockWorkoutRepo)
	svc := NewWorkoutService(workoutRepo, new(mockExerciseRepo), nil)

	workoutRepo.On("FindByID", 7).Return(&domain.Workout{
		ID: 7, OwnerID: "u1", Title: "Private", ItemsJSON: `[{"exercise_name":"Squat","sets":3,"reps":8}]`,
	}, nil)

	resp, err := svc.GetWorkout(7, "u1")
	assert.NoError(t, err)
	assert.Equal(t, "Private", resp.Title)
	assert.Len(t, resp.Items, 1)

	_, err = svc.GetWorkout(7, "intruder")
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestGenerateWorkout_LinksCatalogAndPersists(t *testing.T) {
	workoutRepo := new(mockWorkoutRepo)
	exerciseRepo := new(mockExerciseRepo)
	generator := new(mockPlanGenerator)
	svc := NewWorkoutService(workoutRepo, exerciseRepo, generator)

	req := &domain.GeneratePlanRequest{Goal: "strength", Level: "beginner", DaysPerWk: 3}
	generator.On("GeneratePlan", mock.Anything, req).Return(&GeneratedPlan{
		Title: "Starting strength",
		Items: []domain.WorkoutItem{
			{ExerciseName: "Squat", Sets: 3, Reps: 5},
			{ExerciseName: "Made-up move", Sets: 3, Reps: 10},
		},
	}, nil)

	exerciseRepo.On("List", domain.ExerciseFilter{Keyword: "Squat"}, 1, 1).
		Return([]*domain.Exercise{{ID: 42, Name: "Squat"}}, int64(1), nil)
	exerciseRepo.On("List", domain.ExerciseFilter{Keyword: "Made-up move"}, 1, 1).
		Return([]*domain.Exercise{}, int64(0), nil)

	workoutRepo.On("Create", mock.AnythingOfType("*domain.Workout")).Return(nil)

	resp, err := svc.GenerateWorkout(context.Background(), "u1", req)

	assert.NoError(t, err)
	assert.True(t, resp.IsGenerated)
	assert.Equal(t, 42, resp.Items[0].ExerciseID)
	assert.Zero(t, resp.Items[1].ExerciseID)
	assert.Equal(t, "strength", resp.Goal)
}

func TestGenerateWorkout_GeneratorDisabled(t *testing.T) {
	svc := NewWorkoutService(new(mockWorkoutRepo), new(mockExerciseRepo), nil)

	_, err := svc.GenerateWorkout(context.Background(), "u1", &domain.GeneratePlanRequest{Goal: "x", Level: "y"})

	assert.Error(t, err)
}
