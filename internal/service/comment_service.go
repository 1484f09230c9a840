package service

import (
	"errors"

	"github.com/rgsuhas/fitness-buddy-sub001/internal/common"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/domain"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/repository"
	"gorm.io/gorm"
)

// CommentService post comment business logic interface
type CommentService interface {
	CreateComment(postID int, authorID string, req *domain.CreateCommentRequest) (*domain.CommentResponse, error)
	ListComments(postID int) ([]*domain.CommentResponse, error)
	DeleteComment(commentID int, userID string) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// CreateComment adds a comment to a post. The post's comment counter moves in
// the same transaction as the insert.
func (s *commentService) CreateComment(postID int, authorID string, req *domain.CreateCommentRequest) (*domain.CommentResponse, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPostNotFound
		}
		return nil, err
	}

	author, err := s.userRepo.FindByID(authorID)
	if err != nil || author == nil {
		return nil, common.ErrUserNotFound
	}

	comment := &domain.Comment{
		PostID:       postID,
		AuthorID:     author.ID,
		AuthorName:   author.Name,
		AuthorAvatar: author.Avatar,
		Content:      req.Content,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	return comment.ToResponse(), nil
}

// ListComments returns a post's comments, oldest first
func (s *commentService) ListComments(postID int) ([]*domain.CommentResponse, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPostNotFound
		}
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(postID)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, comment.ToResponse())
	}
	return responses, nil
}

// DeleteComment removes a comment. Allowed for the comment author or the
// post author.
func (s *commentService) DeleteComment(commentID int, userID string) error {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrCommentNotFound
		}
		return err
	}

	if comment.AuthorID != userID {
		post, err := s.postRepo.FindByID(comment.PostID)
		if err != nil || post.AuthorID != userID {
			return common.ErrForbidden
		}
	}

	return s.commentRepo.Delete(commentID)
}
