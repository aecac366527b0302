package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/coinfolio/coinfolio-sync/internal/api/shared/dto"
	apierrors "github.com/coinfolio/coinfolio-sync/internal/api/shared/errors"
	"github.com/coinfolio/coinfolio-sync/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, apierrors.NewValidationError(message))
}

// respondError responds with the status carried by an executor error
func respondError(c *gin.Context, err error, message string) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		apiErr = apierrors.NewInternalError(message)
	}

	status := apiErr.StatusCode()
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
	}
	c.JSON(status, apiErr)
}

// respondJobError responds with the plain error body of the job endpoints
func respondJobError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.JobErrorResponse{Error: message})
}
