package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/common"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/domain"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/middleware"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/service"
	"github.com/rgsuhas/fitness-buddy-sub001/pkg/ginutil"
)

// PostHandler community feed HTTP handlers
type PostHandler struct {
	postService    service.PostService
	commentService service.CommentService
	likeService    service.LikeService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(
	postService service.PostService,
	commentService service.CommentService,
	likeService service.LikeService,
) *PostHandler {
	return &PostHandler{
		postService:    postService,
		commentService: commentService,
		likeService:    likeService,
	}
}

// ListPosts godoc
// @Summary List feed posts
// @Tags posts
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} common.APIResponse
// @Router /api/posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	page, limit := clampPaging(
		ginutil.QueryInt(c, "page", 1),
		ginutil.QueryInt(c, "limit", 20),
	)

	list, err := h.postService.ListPosts(c.Request.Context(), page, limit, middleware.GetUserID(c))
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	common.SuccessResponse(c, list.Posts, &common.Meta{Page: page, Limit: limit, Total: list.Total})
}

// GetPost godoc
// @Summary Get a single post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} map[string]string
// @Router /api/posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid post id")
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), id, middleware.GetUserID(c))
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	common.SuccessResponse(c, post, nil)
}

// CreatePost godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.CreatePostRequest true "Post content"
// @Success 201 {object} common.APIResponse
// @Failure 400 {object} map[string]string
// @Router /api/posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req domain.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "content is required")
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, common.APIResponse{Data: post})
}

// UpdatePost godoc
// @Summary Update a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} common.APIResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid post id")
		return
	}

	var req domain.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "content is required")
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), id, middleware.GetUserID(c), &req)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	common.SuccessResponse(c, post, nil)
}

// DeletePost godoc
// @Summary Delete a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} common.APIResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid post id")
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), id, middleware.GetUserID(c)); err != nil {
		common.AbortWithError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}

// ToggleLike godoc
// @Summary Toggle a like on a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} map[string]string
// @Router /api/posts/{id}/like [post]
func (h *PostHandler) ToggleLike(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid post id")
		return
	}

	result, err := h.likeService.ToggleLike(c.Request.Context(), id, middleware.GetUserID(c))
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	common.SuccessResponse(c, result, nil)
}

// ListComments godoc
// @Summary List a post's comments
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} map[string]string
// @Router /api/posts/{id}/comments [get]
func (h *PostHandler) ListComments(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid post id")
		return
	}

	comments, err := h.commentService.ListComments(id)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	common.SuccessResponse(c, comments, nil)
}

// CreateComment godoc
// @Summary Comment on a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body domain.CreateCommentRequest true "Comment content"
// @Success 201 {object} common.APIResponse
// @Failure 404 {object} map[string]string
// @Router /api/posts/{id}/comments [post]
func (h *PostHandler) CreateComment(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid post id")
		return
	}

	var req domain.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "content is required")
		return
	}

	comment, err := h.commentService.CreateComment(id, middleware.GetUserID(c), &req)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, common.APIResponse{Data: comment})
}

// DeleteComment godoc
// @Summary Delete a comment
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param commentId path int true "Comment ID"
// @Success 200 {object} common.APIResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/comments/{commentId} [delete]
func (h *PostHandler) DeleteComment(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "commentId")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid comment id")
		return
	}

	if err := h.commentService.DeleteComment(id, middleware.GetUserID(c)); err != nil {
		common.AbortWithError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}
