package repository

import (
	"github.com/rgsuhas/fitness-buddy-sub001/internal/domain"
	"gorm.io/gorm"
)

// CommentRepository comment data access interface
type CommentRepository interface {
	Create(comment *domain.Comment) error
	FindByID(id int) (*domain.Comment, error)
	ListByPost(postID int) ([]*domain.Comment, error)
	Delete(id int) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create creates a comment and bumps the post's comment counter
func (r *commentRepository) Create(comment *domain.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Post{}).Where("id = ?", comment.PostID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).Error
	})
}

// FindByID finds a comment by ID
func (r *commentRepository) FindByID(id int) (*domain.Comment, error) {
	var comment domain.Comment
	err := r.db.Where("id = ?", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByPost returns a post's comments, oldest first
func (r *commentRepository) ListByPost(postID int) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	err := r.db.Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// Delete removes a comment and decrements the post's comment counter
func (r *commentRepository) Delete(id int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var comment domain.Comment
		if err := tx.Where("id = ?", id).First(&comment).Error; err != nil {
			return err
		}
		if err := tx.Delete(&comment).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Post{}).
			Where("id = ? AND comment_count > 0", comment.PostID).
			UpdateColumn("comment_count", gorm.Expr("comment_count - 1")).Error
	})
}
