package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/willythepapi/FITART-v1/internal/models"
	"github.com/willythepapi/FITART-v1/internal/types"
	"github.com/willythepapi/FITART-v1/internal/usecase"
)

// WorkoutHandler serves the workout library.
type WorkoutHandler struct {
	uc *usecase.UseCases
}

func NewWorkoutHandler(uc *usecase.UseCases) *WorkoutHandler {
	return &WorkoutHandler{uc: uc}
}

func (h *WorkoutHandler) RegisterRoutes(router *gin.RouterGroup) {
	workouts := router.Group("/workouts")
	{
		workouts.GET("", h.ListWorkouts)
		workouts.POST("", h.CreateWorkout)
		workouts.GET("/today", h.GetTodayWorkout)
		workouts.PUT("/:id", h.UpdateWorkout)
		workouts.POST("/:id/complete", h.CompleteWorkout)
	}
}

// ListWorkouts returns all workouts, optionally narrowed by ?exercise=.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	filters := models.WorkoutFilters{ExerciseName: c.Query("exercise")}
	workouts, err := h.uc.GetWorkouts.Execute(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var in models.WorkoutInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	workout, err := h.uc.AddWorkout.Execute(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	var in models.WorkoutInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	workout, err := h.uc.UpdateWorkout.Execute(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// GetTodayWorkout answers 204 on a rest day.
func (h *WorkoutHandler) GetTodayWorkout(c *gin.Context) {
	workout, err := h.uc.GetTodayWorkout.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if workout == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, workout)
}

func (h *WorkoutHandler) CompleteWorkout(c *gin.Context) {
	var req types.CompleteWorkoutRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
	}
	if req.Date == "" {
		req.Date = h.uc.Today()
	}

	progress, err := h.uc.CompleteWorkout.Execute(c.Request.Context(), req.Date, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}
