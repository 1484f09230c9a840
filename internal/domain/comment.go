package domain

import "time"

// Comment represents a comment on a post (comments table)
type Comment struct {
	ID           int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PostID       int       `gorm:"column:post_id;index" json:"post_id"`
	AuthorID     string    `gorm:"column:author_id;size:36;index" json:"author_id"`
	AuthorName   string    `gorm:"column:author_name;size:100" json:"author_name"`
	AuthorAvatar string    `gorm:"column:author_avatar;size:512" json:"-"`
	Content      string    `gorm:"column:content;type:text" json:"content"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}

// CreateCommentRequest represents a comment creation request
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CommentResponse represents a comment in API responses
type CommentResponse struct {
	ID        int          `json:"id"`
	PostID    int          `json:"post_id"`
	Author    UserSnapshot `json:"author"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"created_at"`
}

// ToResponse converts Comment to CommentResponse
func (c *Comment) ToResponse() *CommentResponse {
	return &CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		Author:    UserSnapshot{ID: c.AuthorID, Name: c.AuthorName, Avatar: c.AuthorAvatar},
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

// Like represents a user's like on a post (likes table).
// The (post_id, user_id) pair is unique; liking twice toggles the like off.
type Like struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PostID    int       `gorm:"column:post_id;uniqueIndex:idx_likes_post_user" json:"post_id"`
	UserID    string    `gorm:"column:user_id;size:36;uniqueIndex:idx_likes_post_user" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}

// LikeResponse reports the state after a like toggle
type LikeResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}
