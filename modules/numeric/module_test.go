package numeric

import (
	"context"
	"testing"

	"github.com/go-monolith/mono/pkg/types"
	"github.com/stretchr/testify/assert"
)

// mockLogger implements types.Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(_ string, _ ...any)         {}
func (m *mockLogger) Info(_ string, _ ...any)          {}
func (m *mockLogger) Warn(_ string, _ ...any)          {}
func (m *mockLogger) Error(_ string, _ ...any)         {}
func (m *mockLogger) With(_ ...any) types.Logger       { return m }
func (m *mockLogger) WithModule(_ string) types.Logger { return m }
func (m *mockLogger) WithError(_ error) types.Logger   { return m }

func TestModule_Name(t *testing.T) {
	m := NewModule(&mockLogger{})
	assert.Equal(t, "numeric", m.Name())
}

func TestModule_StartStop(t *testing.T) {
	m := NewModule(&mockLogger{})
	ctx := context.Background()

	assert.NoError(t, m.Start(ctx))
	assert.NoError(t, m.Stop(ctx))
}

func TestModule_fibonacci(t *testing.T) {
	m := NewModule(&mockLogger{})

	resp, err := m.fibonacci(context.Background(), SequenceRequest{Count: 5}, nil)
	assert.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 1, 2, 3}, resp.Terms)
	assert.Empty(t, resp.Error)

	resp, err = m.fibonacci(context.Background(), SequenceRequest{Count: 500}, nil)
	assert.NoError(t, err, "engine failures are returned in the response")
	assert.Equal(t, codeOverflow, resp.Code)
	assert.NotEmpty(t, resp.Error)
}

func TestModule_prime(t *testing.T) {
	m := NewModule(&mockLogger{})

	resp, err := m.prime(context.Background(), NumbersRequest{Numbers: []int64{2, 4, 5, 9, 11}}, nil)
	assert.NoError(t, err)
	assert.Equal(t, []int64{2, 5, 11}, resp.Primes)
}

func TestModule_reductions(t *testing.T) {
	m := NewModule(&mockLogger{})
	ctx := context.Background()

	tests := []struct {
		name     string
		call     func(context.Context, NumbersRequest) (ReduceResponse, error)
		numbers  []int64
		want     int64
		wantCode string
	}{
		{name: "hcf", call: func(ctx context.Context, r NumbersRequest) (ReduceResponse, error) { return m.hcf(ctx, r, nil) }, numbers: []int64{8, 12}, want: 4},
		{name: "lcm", call: func(ctx context.Context, r NumbersRequest) (ReduceResponse, error) { return m.lcm(ctx, r, nil) }, numbers: []int64{4, 6, 8}, want: 24},
		{name: "hcf empty", call: func(ctx context.Context, r NumbersRequest) (ReduceResponse, error) { return m.hcf(ctx, r, nil) }, numbers: nil, wantCode: codeEmptyInput},
		{name: "lcm overflow", call: func(ctx context.Context, r NumbersRequest) (ReduceResponse, error) { return m.lcm(ctx, r, nil) }, numbers: []int64{9223372036854775807, 2}, wantCode: codeOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := tt.call(ctx, NumbersRequest{Numbers: tt.numbers})
			assert.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.Code)
			if tt.wantCode == "" {
				assert.Equal(t, tt.want, resp.Result)
				assert.Empty(t, resp.Error)
			}
		})
	}
}

func TestErrorCodeRoundTrip(t *testing.T) {
	for _, sentinel := range []error{ErrEmptyInput, ErrOverflow} {
		code := errorCode(sentinel)
		assert.ErrorIs(t, errorFromCode(code, sentinel.Error()), sentinel)
	}

	err := errorFromCode(codeInternal, "boom")
	assert.EqualError(t, err, "boom")
}

func TestNewNumericAdapter_NilContainer(t *testing.T) {
	assert.Panics(t, func() { NewNumericAdapter(nil) })
}
