package repository

import (
	"github.com/rgsuhas/fitness-buddy-sub001/internal/domain"
	"gorm.io/gorm"
)

// ExerciseRepository exercise catalog data access interface
type ExerciseRepository interface {
	Create(exercise *domain.Exercise) error
	FindByID(id int) (*domain.Exercise, error)
	FindByIDs(ids []int) ([]*domain.Exercise, error)
	List(filter domain.ExerciseFilter, page, limit int) ([]*domain.Exercise, int64, error)
	Update(id int, exercise *domain.Exercise) error
}

type exerciseRepository struct {
	db *gorm.DB
}

// NewExerciseRepository creates a new ExerciseRepository
func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &exerciseRepository{db: db}
}

// Create creates a catalog exercise
func (r *exerciseRepository) Create(exercise *domain.Exercise) error {
	return r.db.Create(exercise).Error
}

// FindByID finds an exercise by ID
func (r *exerciseRepository) FindByID(id int) (*domain.Exercise, error) {
	var exercise domain.Exercise
	err := r.db.Where("id = ?", id).First(&exercise).Error
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

// FindByIDs returns the exercises matching the given IDs
func (r *exerciseRepository) FindByIDs(ids []int) ([]*domain.Exercise, error) {
	var exercises []*domain.Exercise
	if len(ids) == 0 {
		return exercises, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&exercises).Error
	return exercises, err
}

// List returns paginated exercises with optional filters
func (r *exerciseRepository) List(filter domain.ExerciseFilter, page, limit int) ([]*domain.Exercise, int64, error) {
	query := r.db.Model(&domain.Exercise{})
	if filter.MuscleGroup != "" {
		query = query.Where("muscle_group = ?", filter.MuscleGroup)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Keyword != "" {
		query = query.Where("name LIKE ?", "%"+filter.Keyword+"%")
	}

	var total int64
	query.Count(&total)

	var exercises []*domain.Exercise
	offset := (page - 1) * limit
	err := query.Order("name ASC").
		Offset(offset).Limit(limit).
		Find(&exercises).Error
	return exercises, total, err
}

// Update updates a catalog exercise
func (r *exerciseRepository) Update(id int, exercise *domain.Exercise) error {
	return r.db.Model(&domain.Exercise{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":         exercise.Name,
			"muscle_group": exercise.MuscleGroup,
			"equipment":    exercise.Equipment,
			"difficulty":   exercise.Difficulty,
			"description":  exercise.Description,
			"image_url":    exercise.ImageURL,
		}).Error
}
