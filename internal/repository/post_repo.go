package repository

import (
	"github.com/rgsuhas/fitness-buddy-sub001/internal/domain"
	"gorm.io/gorm"
)

// PostRepository post data access interface
type PostRepository interface {
	Create(post *domain.Post) error
	FindByID(id int) (*domain.Post, error)
	List(page, limit int) ([]*domain.Post, int64, error)
	ListByAuthor(authorID string, page, limit int) ([]*domain.Post, int64, error)
	Update(id int, post *domain.Post) error
	Delete(id int) error
	Search(keyword string, page, limit int) ([]*domain.Post, int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create creates a new post
func (r *postRepository) Create(post *domain.Post) error {
	return r.db.Create(post).Error
}

// FindByID finds a post by ID
func (r *postRepository) FindByID(id int) (*domain.Post, error) {
	var post domain.Post
	err := r.db.Where("id = ?", id).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns paginated posts, newest first
func (r *postRepository) List(page, limit int) ([]*domain.Post, int64, error) {
	var posts []*domain.Post
	var total int64

	r.db.Model(&domain.Post{}).Count(&total)

	offset := (page - 1) * limit
	err := r.db.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

// ListByAuthor returns a single author's posts, newest first
func (r *postRepository) ListByAuthor(authorID string, page, limit int) ([]*domain.Post, int64, error) {
	var posts []*domain.Post
	var total int64

	r.db.Model(&domain.Post{}).Where("author_id = ?", authorID).Count(&total)

	offset := (page - 1) * limit
	err := r.db.Where("author_id = ?", authorID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

// Update updates a post's content fields
func (r *postRepository) Update(id int, post *domain.Post) error {
	return r.db.Model(&domain.Post{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"content":   post.Content,
			"media_url": post.MediaURL,
		}).Error
}

// Delete deletes a post and its comments and likes
func (r *postRepository) Delete(id int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&domain.Like{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&domain.Post{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Search finds posts whose content matches the keyword (LIKE fallback when
// Elasticsearch is not configured)
func (r *postRepository) Search(keyword string, page, limit int) ([]*domain.Post, int64, error) {
	var posts []*domain.Post
	var total int64

	pattern := "%" + keyword + "%"
	r.db.Model(&domain.Post{}).Where("content LIKE ?", pattern).Count(&total)

	offset := (page - 1) * limit
	err := r.db.Where("content LIKE ?", pattern).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, total, err
}
