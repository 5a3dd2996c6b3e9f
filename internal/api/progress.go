package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/willythepapi/FITART-v1/internal/types"
	"github.com/willythepapi/FITART-v1/internal/usecase"
)

// historyStart is the default lower bound of GET /progress.
const historyStart = "1970-01-01"

// ProgressHandler serves daily progress.
type ProgressHandler struct {
	uc *usecase.UseCases
}

func NewProgressHandler(uc *usecase.UseCases) *ProgressHandler {
	return &ProgressHandler{uc: uc}
}

func (h *ProgressHandler) RegisterRoutes(router *gin.RouterGroup) {
	progress := router.Group("/progress")
	{
		progress.GET("", h.GetHistory)
		progress.GET("/:date", h.GetDay)
		progress.POST("/:date/water", h.AddWater)
	}
}

// GetHistory returns the days between ?from= and ?to=, both inclusive.
func (h *ProgressHandler) GetHistory(c *gin.Context) {
	from := c.DefaultQuery("from", historyStart)
	to := c.DefaultQuery("to", h.uc.Today())

	history, err := h.uc.GetProgressHistory.Execute(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func (h *ProgressHandler) GetDay(c *gin.Context) {
	progress, err := h.uc.GetDailyProgress.Execute(c.Request.Context(), c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (h *ProgressHandler) AddWater(c *gin.Context) {
	var req types.WaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	progress, err := h.uc.AddWaterIntake.Execute(c.Request.Context(), c.Param("date"), req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}
