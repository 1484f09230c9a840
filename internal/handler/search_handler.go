package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/common"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/service"
	"github.com/rgsuhas/fitness-buddy-sub001/pkg/ginutil"
)

// SearchHandler full-text search HTTP handlers
type SearchHandler struct {
	searchService service.SearchService
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(searchService service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchPosts godoc
// @Summary Search feed posts
// @Tags search
// @Produce json
// @Param q query string true "Search keyword"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} common.APIResponse
// @Failure 400 {object} map[string]string
// @Router /api/search/posts [get]
func (h *SearchHandler) SearchPosts(c *gin.Context) {
	keyword := c.Query("q")
	if keyword == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "q is required")
		return
	}

	page, limit := clampPaging(
		ginutil.QueryInt(c, "page", 1),
		ginutil.QueryInt(c, "limit", 20),
	)

	list, err := h.searchService.SearchPosts(c.Request.Context(), keyword, page, limit)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	common.SuccessResponse(c, list.Posts, &common.Meta{Page: page, Limit: limit, Total: list.Total})
}
