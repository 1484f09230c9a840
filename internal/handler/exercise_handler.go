package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/common"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/domain"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/service"
	"github.com/rgsuhas/fitness-buddy-sub001/pkg/ginutil"
)

// ExerciseHandler exercise catalog HTTP handlers
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// ListExercises godoc
// @Summary List catalog exercises
// @Tags exercises
// @Produce json
// @Param muscle_group query string false "Muscle group filter"
// @Param difficulty query string false "Difficulty filter"
// @Param q query string false "Name keyword"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} common.APIResponse
// @Router /api/exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	page, limit := clampPaging(
		ginutil.QueryInt(c, "page", 1),
		ginutil.QueryInt(c, "limit", 50),
	)

	filter := domain.ExerciseFilter{
		MuscleGroup: c.Query("muscle_group"),
		Difficulty:  c.Query("difficulty"),
		Keyword:     c.Query("q"),
	}

	list, err := h.exerciseService.ListExercises(c.Request.Context(), filter, page, limit)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	common.SuccessResponse(c, list.Exercises, &common.Meta{Page: page, Limit: limit, Total: list.Total})
}

// GetExercise godoc
// @Summary Get one catalog exercise
// @Tags exercises
// @Produce json
// @Param id path int true "Exercise ID"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} map[string]string
// @Router /api/exercises/{id} [get]
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid exercise id")
		return
	}

	exercise, err := h.exerciseService.GetExercise(id)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	common.SuccessResponse(c, exercise, nil)
}

// CreateExercise godoc
// @Summary Add an exercise to the catalog
// @Tags exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.CreateExerciseRequest true "Exercise"
// @Success 201 {object} common.APIResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/exercises [post]
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req domain.CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "name, muscle_group and difficulty are required")
		return
	}

	exercise, err := h.exerciseService.CreateExercise(&req)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, common.APIResponse{Data: exercise})
}

// UpdateExercise godoc
// @Summary Update a catalog exercise
// @Tags exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exercise ID"
// @Param request body domain.UpdateExerciseRequest true "Exercise"
// @Success 200 {object} common.APIResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/exercises/{id} [put]
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid exercise id")
		return
	}

	var req domain.UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "name, muscle_group and difficulty are required")
		return
	}

	exercise, err := h.exerciseService.UpdateExercise(id, &req)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	common.SuccessResponse(c, exercise, nil)
}
