package service

import (
	"context"
	"strconv"

	"github.com/rgsuhas/fitness-buddy-sub001/internal/domain"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/repository"
	"github.com/rgsuhas/fitness-buddy-sub001/pkg/elasticsearch"
	"github.com/rs/zerolog/log"
)

// PostIndexName Elasticsearch index for community posts
const PostIndexName = "fitness_posts"

// SearchIndexer pushes post changes into the search index
type SearchIndexer interface {
	IndexPost(ctx context.Context, post *domain.Post) error
	RemovePost(ctx context.Context, postID int) error
}

// SearchService full-text post search interface
type SearchService interface {
	SearchIndexer
	EnsurePostIndex(ctx context.Context) error
	SearchPosts(ctx context.Context, keyword string, page, limit int) (*PostList, error)
}

type searchService struct {
	es       *elasticsearch.Client
	postRepo repository.PostRepository
}

// NewSearchService creates a new SearchService. es may be nil; every search
// then falls back to a database LIKE query and indexing becomes a no-op.
func NewSearchService(es *elasticsearch.Client, postRepo repository.PostRepository) SearchService {
	return &searchService{es: es, postRepo: postRepo}
}

// EnsurePostIndex creates the post index if it does not exist
func (s *searchService) EnsurePostIndex(ctx context.Context) error {
	if s.es == nil {
		return nil
	}
	mapping := map[string]interface{}{
		"mappings": map[string]interface{}{
			"properties": map[string]interface{}{
				"content":     map[string]interface{}{"type": "text"},
				"author_name": map[string]interface{}{"type": "keyword"},
				"created_at":  map[string]interface{}{"type": "date"},
			},
		},
	}
	return s.es.CreateIndex(ctx, PostIndexName, mapping)
}

// IndexPost indexes a post document
func (s *searchService) IndexPost(ctx context.Context, post *domain.Post) error {
	if s.es == nil {
		return nil
	}
	doc := map[string]interface{}{
		"id":          post.ID,
		"content":     post.Content,
		"author_name": post.AuthorName,
		"created_at":  post.CreatedAt,
	}
	return s.es.IndexDocument(ctx, PostIndexName, strconv.Itoa(post.ID), doc)
}

// RemovePost removes a post document
func (s *searchService) RemovePost(ctx context.Context, postID int) error {
	if s.es == nil {
		return nil
	}
	return s.es.DeleteDocument(ctx, PostIndexName, strconv.Itoa(postID))
}

// SearchPosts finds posts matching the keyword. Elasticsearch when available,
// database LIKE otherwise. Hits are rehydrated from the database so responses
// always carry current like and comment counts.
func (s *searchService) SearchPosts(ctx context.Context, keyword string, page, limit int) (*PostList, error) {
	if s.es == nil {
		return s.searchDatabase(keyword, page, limit)
	}

	query := map[string]interface{}{
		"query": map[string]interface{}{
			"match": map[string]interface{}{
				"content": keyword,
			},
		},
	}

	from := (page - 1) * limit
	result, err := s.es.Search(ctx, PostIndexName, query, from, limit)
	if err != nil {
		log.Warn().Err(err).Str("keyword", keyword).Msg("Elasticsearch query failed, falling back to database")
		return s.searchDatabase(keyword, page, limit)
	}

	list := &PostList{Posts: make([]*domain.PostResponse, 0, len(result.Results)), Total: result.Total}
	for _, hit := range result.Results {
		id, err := strconv.Atoi(hit.ID)
		if err != nil {
			continue
		}
		post, err := s.postRepo.FindByID(id)
		if err != nil {
			// Deleted since it was indexed
			continue
		}
		list.Posts = append(list.Posts, post.ToResponse())
	}
	return list, nil
}

func (s *searchService) searchDatabase(keyword string, page, limit int) (*PostList, error) {
	posts, total, err := s.postRepo.Search(keyword, page, limit)
	if err != nil {
		return nil, err
	}
	list := &PostList{Posts: make([]*domain.PostResponse, 0, len(posts)), Total: total}
	for _, post := range posts {
		list.Posts = append(list.Posts, post.ToResponse())
	}
	return list, nil
}
