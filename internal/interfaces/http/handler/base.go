// Package handler contains the gin handlers of the customer API.
package handler

import (
	"errors"
	"net/http"

	"github.com/clientes/backend/internal/domain/shared"
	"github.com/clientes/backend/internal/infrastructure/logger"
	"github.com/clientes/backend/internal/interfaces/http/dto"
	"github.com/clientes/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a 200 response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, middleware.GetRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// ValidationError sends a 400 validation error response with details
func (h *BaseHandler) ValidationError(c *gin.Context, details []dto.ValidationDetail) {
	c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
		"Request validation failed",
		middleware.GetRequestID(c),
		details,
	))
}

// HandleError maps any error returned by a service to the response envelope.
// Unknown errors become a 500 whose message hides the cause.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	if details, ok := middleware.ValidationDetails(err); ok {
		h.ValidationError(c, details)
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.Error(c, dto.GetHTTPStatus(domainErr.Code), domainErr.Code, domainErr.Message)
		return
	}

	_ = c.Error(err)
	logger.L(c.Request.Context()).Error("Unhandled error",
		zap.String("route", c.FullPath()),
		zap.Error(err),
	)
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, "An unexpected error occurred")
}

// bindID parses the :id path parameter, answering 400 when it is not a positive integer
func (h *BaseHandler) bindID(c *gin.Context) (uint, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid id")
		return 0, false
	}
	return req.ID, true
}

// checkBodyID compares the body "id" with the path id before the rest of the
// body is decoded, so a mismatch wins over any other payload error. A body
// that cannot be read this far is left for bindJSON to report.
func (h *BaseHandler) checkBodyID(c *gin.Context, id uint) bool {
	var body struct {
		ID *uint `json:"id"`
	}
	if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
		return true
	}
	if body.ID == nil || *body.ID != id {
		h.HandleError(c, shared.ErrIDMismatch)
		return false
	}
	return true
}

// bindJSON decodes the body into obj, answering 400 or 413 on failure.
// The body is cached on the context so it can be bound more than once.
func (h *BaseHandler) bindJSON(c *gin.Context, obj any) bool {
	err := c.ShouldBindBodyWith(obj, binding.JSON)
	if err == nil {
		return true
	}

	if details, ok := middleware.ValidationDetails(err); ok {
		h.ValidationError(c, details)
		return false
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeRequestTooLarge, "Request body exceeds maximum allowed size")
		return false
	}

	h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Malformed request body")
	return false
}
