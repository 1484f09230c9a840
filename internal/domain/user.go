package domain

import "time"

// User domain model (users table)
type User struct {
	ID        string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Name      string    `gorm:"column:name;size:100" json:"name"`
	Email     string    `gorm:"column:email;size:255;uniqueIndex" json:"email"`
	Password  string    `gorm:"column:password;size:255" json:"-"`
	Avatar    string    `gorm:"column:avatar;size:512" json:"avatar,omitempty"`
	Bio       string    `gorm:"column:bio;type:text" json:"bio,omitempty"`
	Role      string    `gorm:"column:role;size:20;default:user" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserSnapshot is the denormalized {id, name, avatar} triple embedded into
// conversations and messages. Captured once at creation time, never
// refreshed: names and avatars reflect the moment of the snapshot, not the
// user's current profile.
type UserSnapshot struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Snapshot captures the user's current denormalized identity
func (u *User) Snapshot() UserSnapshot {
	return UserSnapshot{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.Avatar,
		Bio:       u.Bio,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// UpdateProfileRequest represents a profile update request
type UpdateProfileRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Bio    string `json:"bio"`
}
