package domain

import "time"

// Post represents a community feed post (posts table)
type Post struct {
	ID           int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AuthorID     string    `gorm:"column:author_id;size:36;index" json:"author_id"`
	AuthorName   string    `gorm:"column:author_name;size:100" json:"author_name"`
	AuthorAvatar string    `gorm:"column:author_avatar;size:512" json:"-"`
	Content      string    `gorm:"column:content;type:text" json:"content"`
	MediaURL     string    `gorm:"column:media_url;size:512" json:"media_url,omitempty"`
	LikeCount    int       `gorm:"column:like_count" json:"like_count"`
	CommentCount int       `gorm:"column:comment_count" json:"comment_count"`
	CreatedAt    time.Time `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}

// CreatePostRequest represents a post creation request
type CreatePostRequest struct {
	Content  string `json:"content" binding:"required"`
	MediaURL string `json:"media_url"`
}

// UpdatePostRequest represents a post update request
type UpdatePostRequest struct {
	Content  string `json:"content" binding:"required"`
	MediaURL string `json:"media_url"`
}

// PostResponse represents a post in API responses
type PostResponse struct {
	ID           int          `json:"id"`
	Author       UserSnapshot `json:"author"`
	Content      string       `json:"content"`
	MediaURL     string       `json:"media_url,omitempty"`
	LikeCount    int          `json:"like_count"`
	CommentCount int          `json:"comment_count"`
	Liked        bool         `json:"liked,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// ToResponse converts Post to PostResponse
func (p *Post) ToResponse() *PostResponse {
	return &PostResponse{
		ID:           p.ID,
		Author:       UserSnapshot{ID: p.AuthorID, Name: p.AuthorName, Avatar: p.AuthorAvatar},
		Content:      p.Content,
		MediaURL:     p.MediaURL,
		LikeCount:    p.LikeCount,
		CommentCount: p.CommentCount,
		CreatedAt:    p.CreatedAt,
	}
}
