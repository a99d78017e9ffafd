package answer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
)

// AnswerModule exposes the answer strategy as a request-reply service.
type AnswerModule struct {
	strategy *Strategy
	provider string
	logger   types.Logger
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*AnswerModule)(nil)
	_ mono.ServiceProviderModule = (*AnswerModule)(nil)
	_ mono.HealthCheckableModule = (*AnswerModule)(nil)
)

// NewModule creates a new AnswerModule with the live tier selected by cfg.
func NewModule(ctx context.Context, logger types.Logger, cfg Config) (*AnswerModule, error) {
	generator, err := NewGenerator(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}
	return NewModuleWithGenerator(logger, generator, cfg.Timeout), nil
}

// NewModuleWithGenerator creates an AnswerModule around an existing
// generator, which may be nil.
func NewModuleWithGenerator(logger types.Logger, generator Generator, timeout time.Duration) *AnswerModule {
	logger = logger.WithModule("answer")
	provider := "none"
	if generator != nil {
		provider = generator.Name()
	}
	return &AnswerModule{
		strategy: NewStrategy(generator, timeout, logger),
		provider: provider,
		logger:   logger,
	}
}

// Name returns the module name.
func (m *AnswerModule) Name() string {
	return "answer"
}

// RegisterServices registers the answer-question service.
func (m *AnswerModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container,
		ServiceAnswerQuestion,
		json.Unmarshal,
		json.Marshal,
		m.answerQuestion,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceAnswerQuestion, err)
	}

	m.logger.Info("Registered answer services", "services", []string{ServiceAnswerQuestion})
	return nil
}

// Start initializes the answer module.
func (m *AnswerModule) Start(_ context.Context) error {
	if !m.strategy.Live() {
		m.logger.Warn("No AI API key configured, answering from fallback rules only")
	}
	m.logger.Info("Answer module started", "provider", m.provider)
	return nil
}

// Stop shuts down the answer module.
func (m *AnswerModule) Stop(_ context.Context) error {
	m.logger.Info("Answer module stopped")
	return nil
}

// Health reports the configured provider. The fallback tier keeps the
// module healthy without one.
func (m *AnswerModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"provider":  m.provider,
			"live_tier": m.strategy.Live(),
		},
	}
}

func (m *AnswerModule) answerQuestion(ctx context.Context, req QuestionRequest, _ *mono.Msg) (QuestionResponse, error) {
	a := m.strategy.Resolve(ctx, req.Question)
	return QuestionResponse{Answer: a.Text, Source: a.Source}, nil
}
