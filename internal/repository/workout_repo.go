package repository

import (
	"github.com/rgsuhas/fitness-buddy-sub001/internal/domain"
	"gorm.io/gorm"
)

// WorkoutRepository workout plan data access interface
type WorkoutRepository interface {
	Create(workout *domain.Workout) error
	FindByID(id int) (*domain.Workout, error)
	ListByOwner(ownerID string, page, limit int) ([]*domain.Workout, int64, error)
	Delete(id int, ownerID string) error
}

type workoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository creates a new WorkoutRepository
func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db: db}
}

// Create creates a workout plan
func (r *workoutRepository) Create(workout *domain.Workout) error {
	return r.db.Create(workout).Error
}

// FindByID finds a workout plan by ID
func (r *workoutRepository) FindByID(id int) (*domain.Workout, error) {
	var workout domain.Workout
	err := r.db.Where("id = ?", id).First(&workout).Error
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

// ListByOwner returns a user's workout plans, newest first
func (r *workoutRepository) ListByOwner(ownerID string, page, limit int) ([]*domain.Workout, int64, error) {
	query := r.db.Model(&domain.Workout{}).Where("owner_id = ?", ownerID)

	var total int64
	query.Count(&total)

	var workouts []*domain.Workout
	offset := (page - 1) * limit
	err := query.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&workouts).Error
	return workouts, total, err
}

// Delete removes a workout plan owned by the given user.
// Scoping the delete by owner keeps the ownership check and the
// removal in a single statement.
func (r *workoutRepository) Delete(id int, ownerID string) error {
	result := r.db.Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&domain.Workout{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
