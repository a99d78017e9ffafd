package numeric

import "errors"

// Sentinel errors for numeric operations.
var (
	// ErrEmptyInput is returned when a reduction receives no values.
	ErrEmptyInput = errors.New("cannot reduce an empty list")

	// ErrOverflow is returned when a result does not fit in an int64.
	ErrOverflow = errors.New("result exceeds the 64-bit integer range")
)

// Error codes carried in service responses. Errors lose their identity on
// the bus, so the code is used to restore the sentinel on the caller side.
const (
	codeEmptyInput = "empty_input"
	codeOverflow   = "overflow"
	codeInternal   = "internal"
)

// errorCode returns the wire code for err.
func errorCode(err error) string {
	switch {
	case errors.Is(err, ErrEmptyInput):
		return codeEmptyInput
	case errors.Is(err, ErrOverflow):
		return codeOverflow
	default:
		return codeInternal
	}
}

// errorFromCode restores the sentinel error for a wire code.
func errorFromCode(code, message string) error {
	switch code {
	case codeEmptyInput:
		return ErrEmptyInput
	case codeOverflow:
		return ErrOverflow
	default:
		return errors.New(message)
	}
}
