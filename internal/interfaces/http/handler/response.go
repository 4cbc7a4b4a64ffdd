package handler

import "github.com/clientes/backend/internal/interfaces/http/dto"

// APIResponse documents the success envelope with a typed data field
// @Description Envelope returned by every endpoint; data is set on success
type APIResponse[T any] struct {
	Success bool           `json:"success" example:"true"`
	Data    T              `json:"data,omitempty"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}

// ErrorResponse documents the failure envelope
// @Description Failure envelope; details lists field violations for VALIDATION_ERROR
type ErrorResponse struct {
	Success bool          `json:"success" example:"false"`
	Error   dto.ErrorInfo `json:"error"`
}
