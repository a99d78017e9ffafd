package answer

import "errors"

var (
	// ErrEmptyAnswer is returned when the live tier produced no usable word.
	ErrEmptyAnswer = errors.New("empty response from generator")

	// ErrUnexpectedResponse is returned when an inference API answers with
	// a body of unknown shape.
	ErrUnexpectedResponse = errors.New("unexpected API response format")

	// ErrUnknownProvider is returned for an unsupported AI_PROVIDER value.
	ErrUnknownProvider = errors.New("unknown AI provider")
)
