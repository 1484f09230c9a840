package domain

import "time"

// Workout represents a workout plan (workouts table). Items are stored as a
// JSON column: plans are read and written whole, never queried per item.
type Workout struct {
	ID          int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OwnerID     string    `gorm:"column:owner_id;size:36;index" json:"owner_id"`
	Title       string    `gorm:"column:title;size:200" json:"title"`
	Goal        string    `gorm:"column:goal;size:50" json:"goal,omitempty"`
	Level       string    `gorm:"column:level;size:20" json:"level,omitempty"`
	ItemsJSON   string    `gorm:"column:items;type:text" json:"-"`
	IsGenerated bool      `gorm:"column:is_generated" json:"is_generated"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Workout) TableName() string {
	return "workouts"
}

// WorkoutItem is one exercise prescription inside a workout
type WorkoutItem struct {
	ExerciseID   int    `json:"exercise_id,omitempty"`
	ExerciseName string `json:"exercise_name"`
	Sets         int    `json:"sets"`
	Reps         int    `json:"reps"`
	RestSeconds  int    `json:"rest_seconds,omitempty"`
	Day          int    `json:"day,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// CreateWorkoutRequest represents a workout creation request
type CreateWorkoutRequest struct {
	Title string        `json:"title" binding:"required"`
	Goal  string        `json:"goal"`
	Level string        `json:"level"`
	Items []WorkoutItem `json:"items" binding:"required"`
}

// GeneratePlanRequest asks the AI generator for a workout plan
type GeneratePlanRequest struct {
	Goal      string   `json:"goal" binding:"required"`
	Level     string   `json:"level" binding:"required"`
	DaysPerWk int      `json:"days_per_week"`
	Equipment []string `json:"equipment"`
}

// WorkoutResponse represents a workout in API responses
type WorkoutResponse struct {
	ID          int           `json:"id"`
	OwnerID     string        `json:"owner_id"`
	Title       string        `json:"title"`
	Goal        string        `json:"goal,omitempty"`
	Level       string        `json:"level,omitempty"`
	Items       []WorkoutItem `json:"items"`
	IsGenerated bool          `json:"is_generated"`
	CreatedAt   time.Time     `json:"created_at"`
}
