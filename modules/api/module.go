package api

import (
	"context"
	"fmt"
	"time"

	"github.com/example/bfhl-service/modules/answer"
	"github.com/example/bfhl-service/modules/numeric"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// MaxBusPayload is the NATS max payload the mono application must be
// created with (mono.WithNATSMaxPayload); 8 MiB is mono's upper bound.
const MaxBusPayload = 8 << 20

// bodyLimit caps request bodies. Re-encoding a body for the bus can grow it
// up to six times ("<" becomes "\u003c", "1e18" becomes nineteen digits),
// so a body within the limit always fits in MaxBusPayload.
const bodyLimit = 1 << 20

// Config holds the settings of the HTTP surface.
type Config struct {
	Addr          string
	OfficialEmail string
	AITimeout     time.Duration
}

// APIModule is the driving adapter that exposes POST /bfhl using Fiber.
type APIModule struct {
	app            *fiber.App
	dispatcher     *Dispatcher
	numericAdapter numeric.NumericPort
	answerAdapter  answer.AnswerPort
	metrics        *Metrics
	logger         types.Logger
	cfg            Config
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*APIModule)(nil)
	_ mono.DependentModule       = (*APIModule)(nil)
	_ mono.HealthCheckableModule = (*APIModule)(nil)
)

// NewModule creates a new APIModule.
func NewModule(log types.Logger, cfg Config) *APIModule {
	if cfg.Addr == "" {
		cfg.Addr = ":3000"
	}
	return &APIModule{
		metrics: NewMetrics(),
		logger:  log.WithModule("api"),
		cfg:     cfg,
	}
}

// Name returns the module name.
func (m *APIModule) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies.
func (m *APIModule) Dependencies() []string {
	return []string{"numeric", "answer"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *APIModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "numeric":
		m.numericAdapter = numeric.NewNumericAdapter(container)
	case "answer":
		m.answerAdapter = answer.NewAnswerAdapter(container)
	}
}

// Start builds the Fiber app and starts listening.
func (m *APIModule) Start(_ context.Context) error {
	if m.numericAdapter == nil {
		return fmt.Errorf("numericAdapter dependency not set")
	}
	if m.answerAdapter == nil {
		return fmt.Errorf("answerAdapter dependency not set")
	}

	m.setupApp()

	errCh := make(chan error, 1)
	go func() {
		if err := m.app.Listen(m.cfg.Addr); err != nil {
			errCh <- err
		}
	}()

	// Catch immediate startup errors such as a port already in use.
	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server failed to start: %w", err)
	case <-time.After(100 * time.Millisecond):
	}

	m.logger.Info("HTTP server started", "addr", m.cfg.Addr)
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (m *APIModule) Stop(ctx context.Context) error {
	if m.app == nil {
		return nil
	}
	m.logger.Info("Shutting down HTTP server...")
	if err := m.app.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

// Health returns the health status of the module.
func (m *APIModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"addr": m.cfg.Addr,
		},
	}
}

// setupApp creates the dispatcher and the Fiber app with its middleware
// and routes. The adapters must already be set.
func (m *APIModule) setupApp() {
	m.dispatcher = NewDispatcher(m.numericAdapter, m.answerAdapter, m.cfg.AITimeout, m.metrics)

	m.app = fiber.New(fiber.Config{
		AppName:               "BFHL Service",
		DisableStartupMessage: true,
		BodyLimit:             bodyLimit,
		ErrorHandler:          m.errorHandler,
	})

	m.app.Use(recover.New())
	m.app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	m.app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	m.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization",
	}))

	m.setupRoutes()
}
