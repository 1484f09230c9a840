package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/common"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/middleware"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/service"
)

// MediaHandler media upload HTTP handlers
type MediaHandler struct {
	mediaService service.MediaService
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// UploadImage godoc
// @Summary Upload an image
// @Description Stores an image for use as an avatar, post media or message attachment
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 201 {object} common.APIResponse
// @Failure 400 {object} map[string]string
// @Router /api/media [post]
func (h *MediaHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "file is required")
		return
	}

	result, err := h.mediaService.UploadImage(c.Request.Context(), middleware.GetUserID(c), file)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusCreated, common.APIResponse{Data: result})
}

// GetDownloadURL godoc
// @Summary Get a short-lived download link for a stored object
// @Tags media
// @Produce json
// @Security BearerAuth
// @Param key query string true "Object key"
// @Success 200 {object} common.APIResponse
// @Failure 400 {object} map[string]string
// @Router /api/media/url [get]
func (h *MediaHandler) GetDownloadURL(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "key is required")
		return
	}

	url, err := h.mediaService.DownloadURL(c.Request.Context(), key)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	common.SuccessResponse(c, gin.H{"url": url}, nil)
}
