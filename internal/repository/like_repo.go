package repository

import (
	"errors"
	"time"

	"github.com/rgsuhas/fitness-buddy-sub001/internal/domain"
	"gorm.io/gorm"
)

// LikeRepository like data access interface
type LikeRepository interface {
	Toggle(postID int, userID string) (liked bool, err error)
	Exists(postID int, userID string) (bool, error)
	LikedPostIDs(userID string, postIDs []int) (map[int]bool, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Toggle likes the post when no like exists, otherwise removes the existing
// like. The post's like counter moves with it in the same transaction.
func (r *likeRepository) Toggle(postID int, userID string) (bool, error) {
	var liked bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var like domain.Like
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).First(&like).Error

		switch {
		case err == nil:
			// Unlike
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			liked = false
			return tx.Model(&domain.Post{}).
				Where("id = ? AND like_count > 0", postID).
				UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error

		case errors.Is(err, gorm.ErrRecordNotFound):
			// Like
			newLike := &domain.Like{PostID: postID, UserID: userID, CreatedAt: time.Now()}
			if err := tx.Create(newLike).Error; err != nil {
				return err
			}
			liked = true
			return tx.Model(&domain.Post{}).Where("id = ?", postID).
				UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error

		default:
			return err
		}
	})
	return liked, err
}

// Exists reports whether the user has liked the post
func (r *likeRepository) Exists(postID int, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}

// LikedPostIDs returns which of the given posts the user has liked
func (r *likeRepository) LikedPostIDs(userID string, postIDs []int) (map[int]bool, error) {
	result := make(map[int]bool, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}

	var likes []domain.Like
	err := r.db.Where("user_id = ? AND post_id IN ?", userID, postIDs).Find(&likes).Error
	if err != nil {
		return nil, err
	}

	for _, l := range likes {
		result[l.PostID] = true
	}
	return result, nil
}
