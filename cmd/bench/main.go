package main

import (
	"context"
	"fmt"
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"

	"fetchbench/internal/config"
	"fetchbench/internal/fetch"
	"fetchbench/internal/otel"
	"fetchbench/internal/runner"
	"fetchbench/internal/timer"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()
	shutdown, err := otel.Init(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdown(ctx)

	reg := prometheus.NewRegistry()
	metrics, err := runner.NewMetrics(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}

	// One timed run per batch size, each with its own scoped session, matching
	// the original per-script runs.
	for i, n := range cfg.BatchSizes {
		t := timer.New(cfg.TimerReps, i+1)
		if err := runBatch(ctx, cfg, metrics, t, n); err != nil {
			log.Fatalf("batch of %d failed: %v", n, err)
		}
	}
}

// runBatch times one fan-out of n fetches. The session is released on every
// exit path.
func runBatch(ctx context.Context, cfg *config.AppConfig, metrics *runner.Metrics, t *timer.Timer, n int) error {
	session := fetch.NewSession(cfg.Client)
	defer session.Close()

	r := runner.New(session, cfg.TargetURL, os.Stdout, metrics)

	return t.Run(fmt.Sprintf("fetch_%d", n), func() error {
		_, err := r.Run(ctx, n)
		return err
	})
}
