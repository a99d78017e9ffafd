package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/bfhl-service/domain/operation"
	"github.com/example/bfhl-service/modules/answer"
	"github.com/example/bfhl-service/modules/numeric"
)

// answerCallMargin leaves the answer module time to fall back after its own
// live-tier timeout expires.
const answerCallMargin = 2 * time.Second

// Dispatcher routes a validated request to the module that computes it.
type Dispatcher struct {
	numeric       numeric.NumericPort
	answer        answer.AnswerPort
	answerTimeout time.Duration
	metrics       *Metrics
}

// NewDispatcher creates a Dispatcher. aiTimeout is the live-tier timeout
// configured on the answer module.
func NewDispatcher(numericPort numeric.NumericPort, answerPort answer.AnswerPort, aiTimeout time.Duration, metrics *Metrics) *Dispatcher {
	if aiTimeout <= 0 {
		aiTimeout = answer.DefaultTimeout
	}
	return &Dispatcher{
		numeric:       numericPort,
		answer:        answerPort,
		answerTimeout: aiTimeout + answerCallMargin,
		metrics:       metrics,
	}
}

// Dispatch computes req and returns the value for the envelope's data field.
func (d *Dispatcher) Dispatch(ctx context.Context, req operation.Request) (any, error) {
	switch req.Operation {
	case operation.OpSequence:
		terms, err := d.numeric.Sequence(ctx, req.Value.Count)
		if err != nil {
			return nil, numericError(req.Operation, err)
		}
		return terms, nil

	case operation.OpPrimeFilter:
		primes, err := d.numeric.PrimeFilter(ctx, req.Value.Numbers)
		if err != nil {
			return nil, numericError(req.Operation, err)
		}
		return primes, nil

	case operation.OpLCM:
		result, err := d.numeric.LCM(ctx, req.Value.Numbers)
		if err != nil {
			return nil, numericError(req.Operation, err)
		}
		return result, nil

	case operation.OpHCF:
		result, err := d.numeric.HCF(ctx, req.Value.Numbers)
		if err != nil {
			return nil, numericError(req.Operation, err)
		}
		return result, nil

	case operation.OpAnswerQuestion:
		return d.answerQuestion(ctx, req.Value.Question)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, req.Operation)
	}
}

func (d *Dispatcher) answerQuestion(ctx context.Context, question string) (any, error) {
	ctx, cancel := context.WithTimeout(ctx, d.answerTimeout)
	defer cancel()

	a, err := d.answer.Answer(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAIUnavailable, err)
	}
	if a.Text == "" {
		return nil, fmt.Errorf("%w: empty answer", ErrAIUnavailable)
	}

	d.metrics.ObserveAnswer(a.Source)
	return a.Text, nil
}

// numericError turns an int64 overflow into a client error; everything
// else stays internal.
func numericError(op operation.Operation, err error) error {
	if errors.Is(err, numeric.ErrOverflow) {
		return outOfRange(fmt.Sprintf("%s result exceeds the 64-bit integer range", op))
	}
	return fmt.Errorf("%s: %w", op, err)
}
