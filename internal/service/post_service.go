package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rgsuhas/fitness-buddy-sub001/internal/common"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/domain"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/repository"
	"github.com/rgsuhas/fitness-buddy-sub001/pkg/cache"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// PostList paginated post list
type PostList struct {
	Posts []*domain.PostResponse `json:"posts"`
	Total int64                  `json:"total"`
}

// PostService community feed business logic interface
type PostService interface {
	CreatePost(ctx context.Context, authorID string, req *domain.CreatePostRequest) (*domain.PostResponse, error)
	GetPost(ctx context.Context, id int, viewerID string) (*domain.PostResponse, error)
	ListPosts(ctx context.Context, page, limit int, viewerID string) (*PostList, error)
	ListPostsByAuthor(ctx context.Context, authorID string, page, limit int) (*PostList, error)
	UpdatePost(ctx context.Context, id int, authorID string, req *domain.UpdatePostRequest) (*domain.PostResponse, error)
	DeletePost(ctx context.Context, id int, authorID string) error
}

type postService struct {
	postRepo repository.PostRepository
	likeRepo repository.LikeRepository
	userRepo repository.UserRepository
	cache    cache.Service
	indexer  SearchIndexer
}

// NewPostService creates a new PostService. indexer may be nil when search
// indexing is disabled.
func NewPostService(
	postRepo repository.PostRepository,
	likeRepo repository.LikeRepository,
	userRepo repository.UserRepository,
	cacheService cache.Service,
	indexer SearchIndexer,
) PostService {
	return &postService{
		postRepo: postRepo,
		likeRepo: likeRepo,
		userRepo: userRepo,
		cache:    cacheService,
		indexer:  indexer,
	}
}

// CreatePost creates a post stamped with the author's current snapshot
func (s *postService) CreatePost(ctx context.Context, authorID string, req *domain.CreatePostRequest) (*domain.PostResponse, error) {
	author, err := s.userRepo.FindByID(authorID)
	if err != nil || author == nil {
		return nil, common.ErrUserNotFound
	}

	post := &domain.Post{
		AuthorID:     author.ID,
		AuthorName:   author.Name,
		AuthorAvatar: author.Avatar,
		Content:      req.Content,
		MediaURL:     req.MediaURL,
	}

	if err := s.postRepo.Create(post); err != nil {
		log.Error().Err(err).Str("author_id", authorID).Msg("Failed to create post")
		return nil, err
	}

	s.invalidateListCache(ctx)
	s.indexPost(ctx, post)

	return post.ToResponse(), nil
}

// GetPost returns a single post, with the viewer's like state when known
func (s *postService) GetPost(ctx context.Context, id int, viewerID string) (*domain.PostResponse, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPostNotFound
		}
		return nil, err
	}

	resp := post.ToResponse()
	if viewerID != "" {
		liked, err := s.likeRepo.Exists(id, viewerID)
		if err == nil {
			resp.Liked = liked
		}
	}
	return resp, nil
}

// ListPosts returns the paginated feed, cache first. Cached pages omit
// viewer-specific like state; it is layered on after the cache read.
func (s *postService) ListPosts(ctx context.Context, page, limit int, viewerID string) (*PostList, error) {
	var list *PostList

	if s.cache.IsAvailable() {
		if data, err := s.cache.GetPosts(ctx, page, limit); err == nil && data != nil {
			var cached PostList
			if err := json.Unmarshal(data, &cached); err == nil {
				list = &cached
			}
		}
	}

	if list == nil {
		posts, total, err := s.postRepo.List(page, limit)
		if err != nil {
			return nil, err
		}
		list = &PostList{Posts: make([]*domain.PostResponse, 0, len(posts)), Total: total}
		for _, post := range posts {
			list.Posts = append(list.Posts, post.ToResponse())
		}

		if s.cache.IsAvailable() {
			if err := s.cache.SetPosts(ctx, page, limit, list); err != nil {
				log.Warn().Err(err).Msg("Failed to cache post list")
			}
		}
	}

	if viewerID != "" && len(list.Posts) > 0 {
		ids := make([]int, 0, len(list.Posts))
		for _, p := range list.Posts {
			ids = append(ids, p.ID)
		}
		if likedMap, err := s.likeRepo.LikedPostIDs(viewerID, ids); err == nil {
			for _, p := range list.Posts {
				p.Liked = likedMap[p.ID]
			}
		}
	}

	return list, nil
}

// ListPostsByAuthor returns one author's posts, newest first
func (s *postService) ListPostsByAuthor(ctx context.Context, authorID string, page, limit int) (*PostList, error) {
	posts, total, err := s.postRepo.ListByAuthor(authorID, page, limit)
	if err != nil {
		return nil, err
	}

	list := &PostList{Posts: make([]*domain.PostResponse, 0, len(posts)), Total: total}
	for _, post := range posts {
		list.Posts = append(list.Posts, post.ToResponse())
	}
	return list, nil
}

// UpdatePost updates a post's content. Only the author may update.
func (s *postService) UpdatePost(ctx context.Context, id int, authorID string, req *domain.UpdatePostRequest) (*domain.PostResponse, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPostNotFound
		}
		return nil, err
	}
	if post.AuthorID != authorID {
		return nil, common.ErrForbidden
	}

	post.Content = req.Content
	post.MediaURL = req.MediaURL
	if err := s.postRepo.Update(id, post); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	s.indexPost(ctx, post)

	return post.ToResponse(), nil
}

// DeletePost removes a post and its comments and likes. Only the author may
// delete.
func (s *postService) DeletePost(ctx context.Context, id int, authorID string) error {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrPostNotFound
		}
		return err
	}
	if post.AuthorID != authorID {
		return common.ErrForbidden
	}

	if err := s.postRepo.Delete(id); err != nil {
		return err
	}

	s.invalidateListCache(ctx)
	if s.indexer != nil {
		if err := s.indexer.RemovePost(ctx, id); err != nil {
			log.Warn().Err(err).Int("post_id", id).Msg("Failed to remove post from search index")
		}
	}
	return nil
}

func (s *postService) invalidateListCache(ctx context.Context) {
	if !s.cache.IsAvailable() {
		return
	}
	if err := s.cache.InvalidatePosts(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate post cache")
	}
}

func (s *postService) indexPost(ctx context.Context, post *domain.Post) {
	if s.indexer == nil {
		return
	}
	if err := s.indexer.IndexPost(ctx, post); err != nil {
		log.Warn().Err(err).Int("post_id", post.ID).Msg("Failed to index post")
	}
}
