package api

import (
	"encoding/json"
	"fmt"
	"iter"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/willythepapi/FITART-v1/internal/middleware"
	"github.com/willythepapi/FITART-v1/internal/types"
	"github.com/willythepapi/FITART-v1/internal/usecase"
)

// CoachHandler streams AI coach replies as server-sent events.
type CoachHandler struct {
	uc      *usecase.UseCases
	limiter *middleware.RateLimiter
}

func NewCoachHandler(uc *usecase.UseCases, limiter *middleware.RateLimiter) *CoachHandler {
	return &CoachHandler{uc: uc, limiter: limiter}
}

func (h *CoachHandler) RegisterRoutes(router *gin.RouterGroup) {
	coach := router.Group("/coach")
	if h.limiter != nil {
		coach.POST("/chat", h.limiter.Handler(), h.Chat)
		return
	}
	coach.POST("/chat", h.Chat)
}

type sseWriter struct {
	w http.ResponseWriter
	f http.Flusher
}

func (s *sseWriter) event(name string, data any) {
	j, _ := json.Marshal(data)
	fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", name, j)
	s.f.Flush()
}

// Chat answers with "token" events, then "done", or "error" when the
// reply fails after streaming started.
func (h *CoachHandler) Chat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	next, stop := iter.Pull2(h.uc.GetAICoachResponse.ExecuteStream(c.Request.Context(), req.History, req.Message))
	defer stop()

	// Errors before the first chunk are answered with a plain status.
	chunk, err, ok := next()
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	sse := &sseWriter{w: c.Writer, f: c.Writer}

	for ok {
		if err != nil {
			log.Printf("[Coach] Stream failed: %v", err)
			sse.event("error", gin.H{"error": "the coach is unavailable, please try again later"})
			return
		}
		sse.event("token", gin.H{"token": chunk})
		chunk, err, ok = next()
	}
	sse.event("done", gin.H{})
}
