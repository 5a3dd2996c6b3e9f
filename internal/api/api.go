package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/willythepapi/FITART-v1/internal/middleware"
	"github.com/willythepapi/FITART-v1/internal/service"
	"github.com/willythepapi/FITART-v1/internal/usecase"
)

// Pinger reports whether the storage backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators RegisterRoutes needs besides the use cases.
type Deps struct {
	// Auth issues and validates session tokens. When it is disabled every
	// request is attributed to UserID.
	Auth   service.IAuthService
	UserID string
	// CoachLimiter is optional.
	CoachLimiter *middleware.RateLimiter
	Store        Pinger
}

// HealthCheck returns the health status of the API
func HealthCheck(store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "ZenithFit API is running",
			"version": "v1.0.0",
		})
	}
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, uc *usecase.UseCases, deps Deps) {
	router.GET("/health", HealthCheck(deps.Store))

	v1 := router.Group("/api/v1")
	NewAuthHandler(deps.Auth).RegisterRoutes(v1)

	protected := v1.Group("")
	if deps.Auth != nil && deps.Auth.Enabled() {
		protected.Use(middleware.AuthMiddleware(deps.Auth))
	} else {
		protected.Use(middleware.StaticUser(deps.UserID))
	}

	NewProfileHandler(uc).RegisterRoutes(protected)
	NewWorkoutHandler(uc).RegisterRoutes(protected)
	NewMealHandler(uc).RegisterRoutes(protected)
	NewProgressHandler(uc).RegisterRoutes(protected)
	NewPlanHandler(uc).RegisterRoutes(protected)
	NewSettingsHandler(uc).RegisterRoutes(protected)
	NewPhotoHandler(uc).RegisterRoutes(protected)
	NewDataHandler(uc).RegisterRoutes(protected)
	NewCoachHandler(uc, deps.CoachLimiter).RegisterRoutes(protected)
}
