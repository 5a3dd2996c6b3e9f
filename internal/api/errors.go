package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/willythepapi/FITART-v1/internal/middleware"
	"github.com/willythepapi/FITART-v1/internal/repository"
	"github.com/willythepapi/FITART-v1/internal/service"
	"github.com/willythepapi/FITART-v1/internal/usecase"
)

var badRequestErrors = []error{
	usecase.ErrInvalidDay,
	usecase.ErrUnknownFood,
	usecase.ErrInvalidGrams,
	usecase.ErrInvalidCategory,
	usecase.ErrInvalidSettings,
	usecase.ErrEmptyMessage,
	service.ErrInvalidDataURL,
}

// statusFor maps a use case error to an HTTP status.
func statusFor(err error) int {
	var parseErr *time.ParseError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrCoachDisabled), errors.Is(err, service.ErrAuthDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.As(err, &parseErr):
		return http.StatusBadRequest
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// respondError writes err as a JSON error. Internal errors are logged and
// reported with a generic message.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("[API] %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, middleware.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(status, middleware.ErrorResponse{Error: err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: msg})
}
