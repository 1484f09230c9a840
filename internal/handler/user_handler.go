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

// UserHandler user profile HTTP handlers
type UserHandler struct {
	userService service.UserService
	postService service.PostService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService service.UserService, postService service.PostService) *UserHandler {
	return &UserHandler{
		userService: userService,
		postService: postService,
	}
}

// GetProfile godoc
// @Summary Get a user's public profile
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} map[string]string
// @Router /api/users/{id} [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.userService.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	common.SuccessResponse(c, user, nil)
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Description Updates name, avatar and bio. Existing conversation and message snapshots keep the old values.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} common.APIResponse
// @Failure 401 {object} map[string]string
// @Router /api/users/me [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req domain.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	common.SuccessResponse(c, user, nil)
}

// GetUserPosts godoc
// @Summary List a user's posts
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} common.APIResponse
// @Router /api/users/{id}/posts [get]
func (h *UserHandler) GetUserPosts(c *gin.Context) {
	page, limit := clampPaging(
		ginutil.QueryInt(c, "page", 1),
		ginutil.QueryInt(c, "limit", 20),
	)

	list, err := h.postService.ListPostsByAuthor(c.Request.Context(), c.Param("id"), page, limit)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	common.SuccessResponse(c, list.Posts, &common.Meta{Page: page, Limit: limit, Total: list.Total})
}

// clampPaging keeps page and limit inside sane bounds
func clampPaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
