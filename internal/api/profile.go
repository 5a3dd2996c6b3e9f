package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/willythepapi/FITART-v1/internal/models"
	"github.com/willythepapi/FITART-v1/internal/usecase"
)

// ProfileHandler serves the user profile and body metrics.
type ProfileHandler struct {
	uc *usecase.UseCases
}

func NewProfileHandler(uc *usecase.UseCases) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.GET("/weight-history", h.GetWeightHistory)
		profile.POST("/targets", h.CalculateTargets)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, err := h.uc.GetUserProfile.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var patch models.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	user, err := h.uc.UpdateUserProfile.Execute(c.Request.Context(), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *ProfileHandler) GetWeightHistory(c *gin.Context) {
	history, err := h.uc.GetWeightHistory.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// CalculateTargets computes daily targets from the posted metrics, or from
// the stored profile when the body is empty.
func (h *ProfileHandler) CalculateTargets(c *gin.Context) {
	var in usecase.TargetsInput
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "invalid request body")
			return
		}
	} else {
		user, err := h.uc.GetUserProfile.Execute(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		in = usecase.TargetsFromUser(user)
	}
	c.JSON(http.StatusOK, h.uc.CalculateDailyTargets.Execute(in))
}
