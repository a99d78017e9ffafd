package main

import (
	"context"
	"log"
	"os"

	"github.com/example/bfhl-service/config"
	"github.com/example/bfhl-service/modules/answer"
	"github.com/example/bfhl-service/modules/api"
	"github.com/example/bfhl-service/modules/numeric"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

func main() {
	log.Println("=== BFHL Service ===")

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(cfg.ShutdownTimeout),
		mono.WithNATSMaxPayload(api.MaxBusPayload),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	logger := app.Logger()

	answerModule, err := answer.NewModule(context.Background(), logger, answer.Config{
		Provider: cfg.AIProvider,
		APIKey:   cfg.AIAPIKey,
		Model:    cfg.AIModel,
		BaseURL:  cfg.AIBaseURL,
		Timeout:  cfg.AITimeout,
	})
	if err != nil {
		log.Fatalf("Failed to create answer module: %v", err)
	}

	// Register modules with the framework.
	// Order: independent modules first, then modules with dependencies
	// - numeric: Fibonacci, primes, LCM and HCF services
	// - answer: single-word answers (live inference with rule fallback)
	// - api: Fiber HTTP server, depends on numeric and answer
	for _, m := range []mono.Module{
		numeric.NewModule(logger),
		answerModule,
		api.NewModule(logger, api.Config{
			Addr:          cfg.Addr(),
			OfficialEmail: cfg.OfficialEmail,
			AITimeout:     cfg.AITimeout,
		}),
	} {
		if err := app.Register(m); err != nil {
			log.Fatalf("Failed to register module %s: %v", m.Name(), err)
		}
	}

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo(cfg)

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo(cfg *config.Config) {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Printf("  - Official email: %s", cfg.OfficialEmail)
	log.Printf("  - AI provider: %s", cfg.AIProvider)
	log.Printf("  - AI timeout: %s", cfg.AITimeout)
	if cfg.AIAPIKey == "" {
		log.Println("  WARNING: AI_API_KEY is not set, AI answers come from fallback rules only")
	}
	if !cfg.EmailConfigured() {
		log.Println("  WARNING: OFFICIAL_EMAIL is not set, responses carry the placeholder address")
	}
	log.Println("")
	log.Printf("REST API Endpoints (http://localhost%s):", cfg.Addr())
	log.Println("  POST   /bfhl      - fibonacci | prime | lcm | hcf | AI")
	log.Println("  GET    /health    - Health check")
	log.Println("  GET    /metrics   - Prometheus metrics")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
