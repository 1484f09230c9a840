package repository

import (
	"testing"
	"time"

	"github.com/rgsuhas/fitness-buddy-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func seedPost(t *testing.T, db *gorm.DB, authorID, content string, at time.Time) *domain.Post {
	t.Helper()
	post := &domain.Post{
		AuthorID:   authorID,
		AuthorName: "User " + authorID,
		Content:    content,
		CreatedAt:  at,
		UpdatedAt:  at,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("failed to seed post: %v", err)
	}
	return post
}

func TestPostList_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	base := time.Now()
	seedPost(t, db, "u1", "older", base.Add(-time.Hour))
	seedPost(t, db, "u2", "newer", base)

	posts, total, err := repo.List(1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, "newer", posts[0].Content)
	assert.Equal(t, "older", posts[1].Content)
}

func TestPostDelete_CascadesCommentsAndLikes(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)
	likeRepo := NewLikeRepository(db)

	post := seedPost(t, db, "u1", "bye", time.Now())
	assert.NoError(t, commentRepo.Create(&domain.Comment{PostID: post.ID, AuthorID: "u2", Content: "nice"}))
	_, err := likeRepo.Toggle(post.ID, "u2")
	assert.NoError(t, err)

	assert.NoError(t, postRepo.Delete(post.ID))

	var commentCount, likeCount int64
	db.Model(&domain.Comment{}).Where("post_id = ?", post.ID).Count(&commentCount)
	db.Model(&domain.Like{}).Where("post_id = ?", post.ID).Count(&likeCount)
	assert.Zero(t, commentCount)
	assert.Zero(t, likeCount)

	assert.ErrorIs(t, postRepo.Delete(post.ID), gorm.ErrRecordNotFound)
}

func TestCommentCreate_BumpsCounter(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)

	post := seedPost(t, db, "u1", "hello", time.Now())

	assert.NoError(t, commentRepo.Create(&domain.Comment{PostID: post.ID, AuthorID: "u2", Content: "first"}))
	assert.NoError(t, commentRepo.Create(&domain.Comment{PostID: post.ID, AuthorID: "u3", Content: "second"}))

	got, err := postRepo.FindByID(post.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, got.CommentCount)
}

func TestCommentDelete_DecrementsCounter(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)

	post := seedPost(t, db, "u1", "hello", time.Now())
	comment := &domain.Comment{PostID: post.ID, AuthorID: "u2", Content: "bye"}
	assert.NoError(t, commentRepo.Create(comment))

	assert.NoError(t, commentRepo.Delete(comment.ID))

	got, err := postRepo.FindByID(post.ID)
	assert.NoError(t, err)
	assert.Zero(t, got.CommentCount)
}

func TestLikeToggle_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostRepository(db)
	likeRepo := NewLikeRepository(db)

	post := seedPost(t, db, "u1", "like me", time.Now())

	liked, err := likeRepo.Toggle(post.ID, "u2")
	assert.NoError(t, err)
	assert.True(t, liked)

	got, _ := postRepo.FindByID(post.ID)
	assert.Equal(t, 1, got.LikeCount)

	exists, err := likeRepo.Exists(post.ID, "u2")
	assert.NoError(t, err)
	assert.True(t, exists)

	liked, err = likeRepo.Toggle(post.ID, "u2")
	assert.NoError(t, err)
	assert.False(t, liked)

	got, _ = postRepo.FindByID(post.ID)
	assert.Zero(t, got.LikeCount)
}

func TestLikedPostIDs(t *testing.T) {
	db := setupTestDB(t)
	likeRepo := NewLikeRepository(db)

	p1 := seedPost(t, db, "u1", "one", time.Now())
	p2 := seedPost(t, db, "u1", "two", time.Now())

	_, err := likeRepo.Toggle(p1.ID, "u2")
	assert.NoError(t, err)

	likedMap, err := likeRepo.LikedPostIDs("u2", []int{p1.ID, p2.ID})
	assert.NoError(t, err)
	assert.True(t, likedMap[p1.ID])
	assert.False(t, likedMap[p2.ID])
}

func TestPostSearch_KeywordMatch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	seedPost(t, db, "u1", "leg day was brutal", time.Now())
	seedPost(t, db, "u2", "rest day", time.Now())

	posts, total, err := repo.Search("leg", 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, posts, 1)
	assert.Contains(t, posts[0].Content, "leg day")
}
