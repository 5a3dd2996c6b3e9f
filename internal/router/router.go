package router

import (
	"github.com/gin-gonic/gin"

	"github.com/willythepapi/FITART-v1/config"
	"github.com/willythepapi/FITART-v1/internal/api"
	"github.com/willythepapi/FITART-v1/internal/middleware"
	"github.com/willythepapi/FITART-v1/internal/usecase"
)

// SetupRouter configures the application routes
func SetupRouter(cfg *config.Config, uc *usecase.UseCases, deps api.Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(middleware.CORS(cfg.CORSOrigins))

	api.RegisterRoutes(router, uc, deps)

	return router
}
