package api

import "errors"

// Sentinel errors for request processing.
var (
	// ErrUnknownOperation is returned when the dispatcher meets an
	// operation it has no route for.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrAIUnavailable is returned when the AI branch could not produce an
	// answer.
	ErrAIUnavailable = errors.New("AI service is unavailable")

	// ErrValidationPanic is returned when validation itself failed
	// unexpectedly.
	ErrValidationPanic = errors.New("validation error occurred")
)

// Kind classifies a validation failure.
type Kind string

const (
	// KindMalformed is a body that is not a usable request (400).
	KindMalformed Kind = "malformed"
	// KindWrongType is a value of the wrong JSON type (422).
	KindWrongType Kind = "wrong-type"
	// KindOutOfRange is a well-typed value outside the accepted range (422).
	KindOutOfRange Kind = "out-of-range"
)

// ValidationError describes why a request was rejected.
type ValidationError struct {
	Kind    Kind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func malformed(message string) *ValidationError {
	return &ValidationError{Kind: KindMalformed, Message: message}
}

func wrongType(message string) *ValidationError {
	return &ValidationError{Kind: KindWrongType, Message: message}
}

func outOfRange(message string) *ValidationError {
	return &ValidationError{Kind: KindOutOfRange, Message: message}
}
