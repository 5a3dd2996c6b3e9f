package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/willythepapi/FITART-v1/internal/types"
	"github.com/willythepapi/FITART-v1/internal/usecase"
)

// PlanHandler serves the weekly workout plan.
type PlanHandler struct {
	uc *usecase.UseCases
}

func NewPlanHandler(uc *usecase.UseCases) *PlanHandler {
	return &PlanHandler{uc: uc}
}

func (h *PlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plan := router.Group("/weekly-plan")
	{
		plan.GET("", h.GetWeeklyPlan)
		plan.GET("/:day", h.GetDay)
		plan.PUT("/:day", h.SetDay)
		plan.DELETE("/:day", h.ClearDay)
	}
}

func (h *PlanHandler) GetWeeklyPlan(c *gin.Context) {
	plan, err := h.uc.GetWeeklyPlan.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) GetDay(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	plan, err := h.uc.GetPlanByDay.Execute(c.Request.Context(), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) SetDay(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	var req types.WeeklyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	plan, err := h.uc.SetWeeklyWorkoutForDay.Execute(c.Request.Context(), day, req.WorkoutID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) ClearDay(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	if err := h.uc.ClearWeeklyWorkoutForDay.Execute(c.Request.Context(), day); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func dayParam(c *gin.Context) (int, bool) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		respondError(c, usecase.ErrInvalidDay)
		return 0, false
	}
	return day, true
}
