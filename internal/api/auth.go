package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/willythepapi/FITART-v1/internal/service"
	"github.com/willythepapi/FITART-v1/internal/types"
)

// AuthHandler exchanges the passcode for a session token.
type AuthHandler struct {
	authService service.IAuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers the auth routes
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/token", h.Login)
	}
}

// Login handles passcode login
func (h *AuthHandler) Login(c *gin.Context) {
	if h.authService == nil || !h.authService.Enabled() {
		respondError(c, service.ErrAuthDisabled)
		return
	}

	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	token, claims, err := h.authService.Login(req.Passcode)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.LoginResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	})
}
