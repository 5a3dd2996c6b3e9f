package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/willythepapi/FITART-v1/internal/middleware"
	"github.com/willythepapi/FITART-v1/internal/usecase"
)

// DataHandler exports and erases all user data.
type DataHandler struct {
	uc *usecase.UseCases
}

func NewDataHandler(uc *usecase.UseCases) *DataHandler {
	return &DataHandler{uc: uc}
}

func (h *DataHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/export", h.Export)
	router.DELETE("/data", h.ClearAll)
}

// Export renders the selected data sets. An empty body exports everything.
func (h *DataHandler) Export(c *gin.Context) {
	opts := usecase.ExportOptions{Meals: true, Workouts: true, Progress: true}
	if c.Request.ContentLength != 0 {
		opts = usecase.ExportOptions{}
		if err := c.ShouldBindJSON(&opts); err != nil {
			badRequest(c, "invalid request body")
			return
		}
	}

	files, err := h.uc.ExportUserData.Execute(c.Request.Context(), opts)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"files": files})
}

func (h *DataHandler) ClearAll(c *gin.Context) {
	if err := h.uc.ClearAllData.Execute(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	log.Printf("[Data] All data cleared by %s", c.GetString(middleware.ContextUserID))
	c.Status(http.StatusNoContent)
}
