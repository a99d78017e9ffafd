package numeric

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// NumericPort defines the numeric operations available to other modules.
type NumericPort interface {
	Sequence(ctx context.Context, n int64) ([]int64, error)
	PrimeFilter(ctx context.Context, xs []int64) ([]int64, error)
	LCM(ctx context.Context, xs []int64) (int64, error)
	HCF(ctx context.Context, xs []int64) (int64, error)
}

// numericAdapter implements NumericPort on top of the service container.
type numericAdapter struct {
	container mono.ServiceContainer
}

// NewNumericAdapter creates a NumericPort backed by the numeric module's
// service container.
func NewNumericAdapter(container mono.ServiceContainer) NumericPort {
	if container == nil {
		panic("numeric adapter requires non-nil ServiceContainer")
	}
	return &numericAdapter{container: container}
}

// Sequence calls the fibonacci service.
func (a *numericAdapter) Sequence(ctx context.Context, n int64) ([]int64, error) {
	req := SequenceRequest{Count: n}
	var resp SequenceResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceFibonacci,
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("fibonacci service call failed: %w", err)
	}

	if resp.Error != "" {
		return nil, errorFromCode(resp.Code, resp.Error)
	}
	return resp.Terms, nil
}

// PrimeFilter calls the prime service.
func (a *numericAdapter) PrimeFilter(ctx context.Context, xs []int64) ([]int64, error) {
	req := NumbersRequest{Numbers: xs}
	var resp PrimeResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServicePrime,
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("prime service call failed: %w", err)
	}

	if resp.Error != "" {
		return nil, errorFromCode(resp.Code, resp.Error)
	}
	if resp.Primes == nil {
		resp.Primes = []int64{}
	}
	return resp.Primes, nil
}

// LCM calls the lcm service.
func (a *numericAdapter) LCM(ctx context.Context, xs []int64) (int64, error) {
	return a.reduce(ctx, ServiceLCM, xs)
}

// HCF calls the hcf service.
func (a *numericAdapter) HCF(ctx context.Context, xs []int64) (int64, error) {
	return a.reduce(ctx, ServiceHCF, xs)
}

func (a *numericAdapter) reduce(ctx context.Context, service string, xs []int64) (int64, error) {
	req := NumbersRequest{Numbers: xs}
	var resp ReduceResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		service,
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return 0, fmt.Errorf("%s service call failed: %w", service, err)
	}

	if resp.Error != "" {
		return 0, errorFromCode(resp.Code, resp.Error)
	}
	return resp.Result, nil
}
