package api

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/bfhl-service/domain/operation"
	"github.com/example/bfhl-service/modules/answer"
	"github.com/example/bfhl-service/modules/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockNumericPort implements numeric.NumericPort for testing
type mockNumericPort struct {
	sequenceFunc    func(ctx context.Context, n int64) ([]int64, error)
	primeFilterFunc func(ctx context.Context, xs []int64) ([]int64, error)
	lcmFunc         func(ctx context.Context, xs []int64) (int64, error)
	hcfFunc         func(ctx context.Context, xs []int64) (int64, error)
}

func (m *mockNumericPort) Sequence(ctx context.Context, n int64) ([]int64, error) {
	if m.sequenceFunc != nil {
		return m.sequenceFunc(ctx, n)
	}
	return numeric.Sequence(n)
}

func (m *mockNumericPort) PrimeFilter(ctx context.Context, xs []int64) ([]int64, error) {
	if m.primeFilterFunc != nil {
		return m.primeFilterFunc(ctx, xs)
	}
	return numeric.PrimeFilter(xs), nil
}

func (m *mockNumericPort) LCM(ctx context.Context, xs []int64) (int64, error) {
	if m.lcmFunc != nil {
		return m.lcmFunc(ctx, xs)
	}
	return numeric.ReduceLCM(xs)
}

func (m *mockNumericPort) HCF(ctx context.Context, xs []int64) (int64, error) {
	if m.hcfFunc != nil {
		return m.hcfFunc(ctx, xs)
	}
	return numeric.ReduceHCF(xs)
}

// mockAnswerPort implements answer.AnswerPort for testing
type mockAnswerPort struct {
	answerFunc func(ctx context.Context, question string) (answer.Answer, error)
}

func (m *mockAnswerPort) Answer(ctx context.Context, question string) (answer.Answer, error) {
	if m.answerFunc != nil {
		return m.answerFunc(ctx, question)
	}
	return answer.Answer{Text: answer.Fallback(question), Source: answer.SourceFallback}, nil
}

func request(op operation.Operation, v operation.Value) operation.Request {
	return operation.Request{Operation: op, Value: v}
}

func TestDispatch(t *testing.T) {
	d := NewDispatcher(&mockNumericPort{}, &mockAnswerPort{}, time.Second, nil)
	ctx := context.Background()

	tests := []struct {
		name string
		req  operation.Request
		want any
	}{
		{name: "fibonacci", req: request(operation.OpSequence, operation.Value{Count: 7}), want: []int64{0, 1, 1, 2, 3, 5, 8}},
		{name: "fibonacci zero", req: request(operation.OpSequence, operation.Value{Count: 0}), want: []int64{}},
		{name: "prime", req: request(operation.OpPrimeFilter, operation.Value{Numbers: []int64{2, 4, 7, 9, 11}}), want: []int64{2, 7, 11}},
		{name: "prime none", req: request(operation.OpPrimeFilter, operation.Value{Numbers: []int64{1, 4}}), want: []int64{}},
		{name: "lcm", req: request(operation.OpLCM, operation.Value{Numbers: []int64{12, 18, 24}}), want: int64(72)},
		{name: "hcf", req: request(operation.OpHCF, operation.Value{Numbers: []int64{24, 36, 60}}), want: int64(12)},
		{name: "AI", req: request(operation.OpAnswerQuestion, operation.Value{Question: "What is the capital city of Maharashtra?"}), want: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Dispatch(ctx, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDispatch_UnknownOperation(t *testing.T) {
	d := NewDispatcher(&mockNumericPort{}, &mockAnswerPort{}, time.Second, nil)

	_, err := d.Dispatch(context.Background(), request("sum", operation.Value{}))
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

func TestDispatch_AIFailures(t *testing.T) {
	tests := []struct {
		name string
		port *mockAnswerPort
	}{
		{
			name: "transport error",
			port: &mockAnswerPort{answerFunc: func(context.Context, string) (answer.Answer, error) {
				return answer.Answer{}, errors.New("nats: no responders available for request")
			}},
		},
		{
			name: "empty answer",
			port: &mockAnswerPort{answerFunc: func(context.Context, string) (answer.Answer, error) {
				return answer.Answer{Source: answer.SourceLive}, nil
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDispatcher(&mockNumericPort{}, tt.port, time.Second, nil)

			_, err := d.Dispatch(context.Background(), request(operation.OpAnswerQuestion, operation.Value{Question: "q"}))
			assert.ErrorIs(t, err, ErrAIUnavailable)
		})
	}
}

func TestDispatch_AICallHasDeadline(t *testing.T) {
	var deadline time.Time
	port := &mockAnswerPort{answerFunc: func(ctx context.Context, _ string) (answer.Answer, error) {
		deadline, _ = ctx.Deadline()
		return answer.Answer{Text: "Paris", Source: answer.SourceLive}, nil
	}}
	d := NewDispatcher(&mockNumericPort{}, port, time.Second, nil)

	start := time.Now()
	got, err := d.Dispatch(context.Background(), request(operation.OpAnswerQuestion, operation.Value{Question: "q"}))
	require.NoError(t, err)
	assert.Equal(t, "Paris", got)
	require.False(t, deadline.IsZero())
	assert.WithinDuration(t, start.Add(time.Second+answerCallMargin), deadline, time.Second)
}

func TestDispatch_NumericErrors(t *testing.T) {
	overflow := &mockNumericPort{lcmFunc: func(context.Context, []int64) (int64, error) {
		return 0, numeric.ErrOverflow
	}}
	d := NewDispatcher(overflow, &mockAnswerPort{}, time.Second, nil)

	_, err := d.Dispatch(context.Background(), request(operation.OpLCM, operation.Value{Numbers: []int64{1}}))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, KindOutOfRange, verr.Kind)
	assert.Equal(t, "lcm result exceeds the 64-bit integer range", verr.Message)

	broken := &mockNumericPort{hcfFunc: func(context.Context, []int64) (int64, error) {
		return 0, errors.New("hcf service call failed: timeout")
	}}
	d = NewDispatcher(broken, &mockAnswerPort{}, time.Second, nil)

	_, err = d.Dispatch(context.Background(), request(operation.OpHCF, operation.Value{Numbers: []int64{1}}))
	require.Error(t, err)
	status, msg := ErrorStatus(err)
	assert.Equal(t, 500, status)
	assert.Equal(t, "Internal server error occurred", msg)
}
