package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"strings"

	"github.com/example/bfhl-service/domain/operation"
)

const (
	msgBodyRequired   = "Request body is required"
	msgInvalidJSON    = "Invalid JSON body"
	msgNotObject      = "Request body must be a JSON object"
	msgExactlyOneKey  = "Exactly one operation key must be present in request body"
	msgInvalidKeyBase = "Invalid operation key. Must be one of: "
)

var (
	maxInt64 = new(big.Float).SetInt64(math.MaxInt64)
	minInt64 = new(big.Float).SetInt64(-math.MaxInt64)
)

// Validate turns a raw request body into an operation request. It performs
// no computation and never panics; failures are *ValidationError or
// ErrValidationPanic.
func Validate(body []byte) (operation.Request, error) {
	return guard(func() (operation.Request, error) {
		return validate(body)
	})
}

func guard(fn func() (operation.Request, error)) (req operation.Request, err error) {
	defer func() {
		if r := recover(); r != nil {
			req = operation.Request{}
			err = fmt.Errorf("%w: %v", ErrValidationPanic, r)
		}
	}()
	return fn()
}

func validate(body []byte) (operation.Request, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return operation.Request{}, malformed(msgBodyRequired)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return operation.Request{}, malformed(msgInvalidJSON)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return operation.Request{}, malformed(msgInvalidJSON)
	}

	if doc == nil {
		return operation.Request{}, malformed(msgBodyRequired)
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return operation.Request{}, malformed(msgNotObject)
	}
	if len(obj) == 0 {
		return operation.Request{}, malformed(msgBodyRequired)
	}
	if len(obj) != 1 {
		return operation.Request{}, malformed(msgExactlyOneKey)
	}

	var key string
	var raw any
	for k, v := range obj {
		key, raw = k, v
	}

	op, ok := operation.Parse(key)
	if !ok {
		return operation.Request{}, malformed(msgInvalidKeyBase + strings.Join(operation.Keys(), ", "))
	}

	value, verr := validateValue(op, raw)
	if verr != nil {
		return operation.Request{}, verr
	}
	return operation.Request{Operation: op, Value: value}, nil
}

func validateValue(op operation.Operation, raw any) (operation.Value, *ValidationError) {
	switch op {
	case operation.OpSequence:
		return validateCount(op, raw)
	case operation.OpPrimeFilter, operation.OpLCM, operation.OpHCF:
		return validateNumbers(op, raw)
	case operation.OpAnswerQuestion:
		return validateQuestion(op, raw)
	default:
		return operation.Value{}, malformed(msgInvalidKeyBase + strings.Join(operation.Keys(), ", "))
	}
}

func validateCount(op operation.Operation, raw any) (operation.Value, *ValidationError) {
	f, ok := integral(raw)
	if !ok {
		return operation.Value{}, wrongType(fmt.Sprintf("%s must be a single integer", op))
	}
	if f.Sign() < 0 {
		return operation.Value{}, outOfRange(fmt.Sprintf("%s input must be non-negative", op))
	}
	if f.Cmp(big.NewFloat(operation.MaxSequenceTerms)) > 0 {
		return operation.Value{}, outOfRange(fmt.Sprintf("%s input must not exceed %d", op, operation.MaxSequenceTerms))
	}
	n, _ := f.Int64()
	return operation.Value{Count: n}, nil
}

func validateNumbers(op operation.Operation, raw any) (operation.Value, *ValidationError) {
	items, ok := raw.([]any)
	if !ok {
		return operation.Value{}, wrongType(fmt.Sprintf("%s must be an array of integers", op))
	}
	if len(items) == 0 {
		return operation.Value{}, outOfRange(fmt.Sprintf("%s array cannot be empty", op))
	}

	values := make([]*big.Float, len(items))
	for i, item := range items {
		f, ok := integral(item)
		if !ok {
			return operation.Value{}, wrongType(fmt.Sprintf("%s array must contain only integers", op))
		}
		values[i] = f
	}

	numbers := make([]int64, len(values))
	for i, f := range values {
		if f.Cmp(maxInt64) > 0 || f.Cmp(minInt64) < 0 {
			return operation.Value{}, outOfRange(fmt.Sprintf("%s array values must fit in a 64-bit integer", op))
		}
		numbers[i], _ = f.Int64()
	}
	return operation.Value{Numbers: numbers}, nil
}

func validateQuestion(op operation.Operation, raw any) (operation.Value, *ValidationError) {
	question, ok := raw.(string)
	if !ok {
		return operation.Value{}, wrongType(fmt.Sprintf("%s must be a string question", op))
	}
	if strings.TrimSpace(question) == "" {
		return operation.Value{}, outOfRange(fmt.Sprintf("%s question cannot be empty", op))
	}
	return operation.Value{Question: question}, nil
}

// integral reports whether raw is a JSON number with no fractional part,
// returning it at a precision wide enough to compare against int64 bounds.
func integral(raw any) (*big.Float, bool) {
	n, ok := raw.(json.Number)
	if !ok {
		return nil, false
	}
	f, _, err := big.ParseFloat(string(n), 10, 256, big.ToNearestEven)
	if err != nil || !f.IsInt() {
		return nil, false
	}
	return f, true
}
