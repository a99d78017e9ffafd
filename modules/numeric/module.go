package numeric

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
)

// NumericModule exposes the numeric engine as request-reply services.
type NumericModule struct {
	logger types.Logger
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*NumericModule)(nil)
	_ mono.ServiceProviderModule = (*NumericModule)(nil)
)

// NewModule creates a new NumericModule.
func NewModule(logger types.Logger) *NumericModule {
	return &NumericModule{
		logger: logger.WithModule("numeric"),
	}
}

// Name returns the module name.
func (m *NumericModule) Name() string {
	return "numeric"
}

// RegisterServices registers the fibonacci, prime, lcm and hcf services.
func (m *NumericModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceFibonacci, json.Unmarshal, json.Marshal, m.fibonacci,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceFibonacci, err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, ServicePrime, json.Unmarshal, json.Marshal, m.prime,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServicePrime, err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceLCM, json.Unmarshal, json.Marshal, m.lcm,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceLCM, err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceHCF, json.Unmarshal, json.Marshal, m.hcf,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceHCF, err)
	}

	m.logger.Info("Registered numeric services",
		"services", []string{ServiceFibonacci, ServicePrime, ServiceLCM, ServiceHCF})
	return nil
}

// Start initializes the numeric module.
func (m *NumericModule) Start(_ context.Context) error {
	m.logger.Info("Numeric module started")
	return nil
}

// Stop shuts down the numeric module.
func (m *NumericModule) Stop(_ context.Context) error {
	m.logger.Info("Numeric module stopped")
	return nil
}

// Engine failures are returned in the response body, not as Go errors.

func (m *NumericModule) fibonacci(_ context.Context, req SequenceRequest, _ *mono.Msg) (SequenceResponse, error) {
	terms, err := Sequence(req.Count)
	if err != nil {
		m.logger.Warn("fibonacci failed", "count", req.Count, "error", err)
		return SequenceResponse{Code: errorCode(err), Error: err.Error()}, nil
	}
	return SequenceResponse{Terms: terms}, nil
}

func (m *NumericModule) prime(_ context.Context, req NumbersRequest, _ *mono.Msg) (PrimeResponse, error) {
	return PrimeResponse{Primes: PrimeFilter(req.Numbers)}, nil
}

func (m *NumericModule) lcm(_ context.Context, req NumbersRequest, _ *mono.Msg) (ReduceResponse, error) {
	return m.reduce(ServiceLCM, ReduceLCM, req.Numbers), nil
}

func (m *NumericModule) hcf(_ context.Context, req NumbersRequest, _ *mono.Msg) (ReduceResponse, error) {
	return m.reduce(ServiceHCF, ReduceHCF, req.Numbers), nil
}

func (m *NumericModule) reduce(name string, fn func([]int64) (int64, error), xs []int64) ReduceResponse {
	result, err := fn(xs)
	if err != nil {
		m.logger.Warn(name+" failed", "count", len(xs), "error", err)
		return ReduceResponse{Code: errorCode(err), Error: err.Error()}
	}
	return ReduceResponse{Result: result}
}
