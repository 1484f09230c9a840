package domain

import "time"

// Exercise represents one catalog exercise (exercises table)
type Exercise struct {
	ID          int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;size:150;index" json:"name"`
	MuscleGroup string    `gorm:"column:muscle_group;size:50;index" json:"muscle_group"`
	Equipment   string    `gorm:"column:equipment;size:100" json:"equipment,omitempty"`
	Difficulty  string    `gorm:"column:difficulty;size:20;index" json:"difficulty"`
	Description string    `gorm:"column:description;type:text" json:"description,omitempty"`
	ImageURL    string    `gorm:"column:image_url;size:512" json:"image_url,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Exercise) TableName() string {
	return "exercises"
}

// ExerciseFilter narrows catalog listings
type ExerciseFilter struct {
	MuscleGroup string
	Difficulty  string
	Keyword     string
}

// CreateExerciseRequest represents an admin exercise creation request
type CreateExerciseRequest struct {
	Name        string `json:"name" binding:"required"`
	MuscleGroup string `json:"muscle_group" binding:"required"`
	Equipment   string `json:"equipment"`
	Difficulty  string `json:"difficulty" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// UpdateExerciseRequest represents an admin exercise update request
type UpdateExerciseRequest struct {
	Name        string `json:"name" binding:"required"`
	MuscleGroup string `json:"muscle_group" binding:"required"`
	Equipment   string `json:"equipment"`
	Difficulty  string `json:"difficulty" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}
