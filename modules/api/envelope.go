package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Public messages for errors whose detail is only logged.
const (
	msgInternal          = "Internal server error occurred"
	msgValidationFailure = "Validation error occurred"
	msgAIUnavailable     = "AI service is unavailable. Please try again later."
	msgRouteNotFound     = "Route not found"
)

// SuccessResponse is the envelope of a successful request.
type SuccessResponse struct {
	IsSuccess     bool   `json:"is_success"`
	OfficialEmail string `json:"official_email"`
	Data          any    `json:"data"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	IsSuccess     bool   `json:"is_success"`
	OfficialEmail string `json:"official_email"`
}

// ErrorResponse is the envelope of a failed request.
type ErrorResponse struct {
	IsSuccess bool   `json:"is_success"`
	Error     string `json:"error"`
}

// Success builds a success envelope.
func Success(email string, data any) SuccessResponse {
	return SuccessResponse{IsSuccess: true, OfficialEmail: email, Data: data}
}

// Failure builds an error envelope.
func Failure(message string) ErrorResponse {
	return ErrorResponse{IsSuccess: false, Error: message}
}

// ErrorStatus maps err to an HTTP status and the message safe to expose.
func ErrorStatus(err error) (int, string) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		if verr.Kind == KindMalformed {
			return fiber.StatusBadRequest, verr.Message
		}
		return fiber.StatusUnprocessableEntity, verr.Message
	}

	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		if ferr.Code == fiber.StatusNotFound {
			return ferr.Code, msgRouteNotFound
		}
		if ferr.Code >= fiber.StatusInternalServerError {
			return ferr.Code, msgInternal
		}
		return ferr.Code, ferr.Message
	}

	switch {
	case errors.Is(err, ErrAIUnavailable):
		return fiber.StatusInternalServerError, msgAIUnavailable
	case errors.Is(err, ErrValidationPanic):
		return fiber.StatusInternalServerError, msgValidationFailure
	default:
		return fiber.StatusInternalServerError, msgInternal
	}
}
