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

// WorkoutHandler workout plan HTTP handlers
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// ListWorkouts godoc
// @Summary List the authenticated user's workout plans
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} common.APIResponse
// @Router /api/workouts [get]
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	page, limit := clampPaging(
		ginutil.QueryInt(c, "page", 1),
		ginutil.QueryInt(c, "limit", 20),
	)

	list, err := h.workoutService.ListWorkouts(middleware.GetUserID(c), page, limit)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	common.SuccessResponse(c, list.Workouts, &common.Meta{Page: page, Limit: limit, Total: list.Total})
}

// GetWorkout godoc
// @Summary Get one workout plan
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Workout ID"
// @Success 200 {object} common.APIResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/workouts/{id} [get]
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid workout id")
		return
	}

	workout, err := h.workoutService.GetWorkout(id, middleware.GetUserID(c))
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	common.SuccessResponse(c, workout, nil)
}

// CreateWorkout godoc
// @Summary Save a workout plan
// @Tags workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.CreateWorkoutRequest true "Workout plan"
// @Success 201 {object} common.APIResponse
// @Failure 400 {object} map[string]string
// @Router /api/workouts [post]
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req domain.CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "title and items are required")
		return
	}

	workout, err := h.workoutService.CreateWorkout(middleware.GetUserID(c), &req)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, common.APIResponse{Data: workout})
}

// GenerateWorkout godoc
// @Summary Generate a workout plan
// @Description Builds a plan for the stated goal and level with the AI generator and saves it
// @Tags workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.GeneratePlanRequest true "Plan parameters"
// @Success 201 {object} common.APIResponse
// @Failure 400 {object} map[string]string
// @Router /api/workouts/generate [post]
func (h *WorkoutHandler) GenerateWorkout(c *gin.Context) {
	var req domain.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "goal and level are required")
		return
	}

	workout, err := h.workoutService.GenerateWorkout(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, common.APIResponse{Data: workout})
}

// DeleteWorkout godoc
// @Summary Delete a workout plan
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Workout ID"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} map[string]string
// @Router /api/workouts/{id} [delete]
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid workout id")
		return
	}

	if err := h.workoutService.DeleteWorkout(id, middleware.GetUserID(c)); err != nil {
		common.AbortWithError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}
