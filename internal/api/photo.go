package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/willythepapi/FITART-v1/internal/models"
	"github.com/willythepapi/FITART-v1/internal/usecase"
)

// PhotoHandler serves progress photos.
type PhotoHandler struct {
	uc *usecase.UseCases
}

func NewPhotoHandler(uc *usecase.UseCases) *PhotoHandler {
	return &PhotoHandler{uc: uc}
}

func (h *PhotoHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/photos", h.ListPhotos)
	router.POST("/photos", h.AddPhoto)
}

func (h *PhotoHandler) ListPhotos(c *gin.Context) {
	photos, err := h.uc.GetProgressPhotos.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

func (h *PhotoHandler) AddPhoto(c *gin.Context) {
	var in models.ProgressPhotoInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	photo, err := h.uc.AddProgressPhoto.Execute(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, photo)
}
