package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"fetchbench/internal/fetch"
)

var (
	ErrBatchSize = errors.New("batch size must be positive")
)

// BatchResult summarizes one fan-out/fan-in run.
type BatchResult struct {
	// Requested is the number of fetches launched.
	Requested int
	// Completed is the number of fetches that produced a uuid line.
	Completed int
	Elapsed   time.Duration
}

// Runner issues batches of concurrent fetches against one target URL and
// streams each uuid to the output writer as soon as its response decodes.
type Runner struct {
	fetcher fetch.Fetcher
	url     string
	out     io.Writer
	metrics *Metrics
}

// New constructs a Runner. metrics may be nil.
func New(fetcher fetch.Fetcher, url string, out io.Writer, metrics *Metrics) *Runner {
	return &Runner{fetcher: fetcher, url: url, out: out, metrics: metrics}
}

// Run launches n concurrent fetches sharing the runner's session and waits for
// all of them. Completion order between fetches is non-deterministic. A failed
// fetch does not cancel its siblings: every fetch runs to completion and the
// first error is returned afterwards, alongside the partial result.
func (r *Runner) Run(ctx context.Context, n int) (*BatchResult, error) {
	if n <= 0 {
		return nil, ErrBatchSize
	}

	ctx, span := otel.Tracer("fetchbench/runner").Start(ctx, "bench.batch",
		trace.WithAttributes(attribute.Int("batch.size", n)))
	defer span.End()

	start := time.Now()

	// Successful fetches hand their uuid to a single printer goroutine, so
	// output lines never interleave.
	results := make(chan string, n)
	done := make(chan struct{})
	completed := 0
	go func() {
		defer close(done)
		for u := range results {
			fmt.Fprintln(r.out, u)
			completed++
		}
	}()

	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			fetchStart := time.Now()
			payload, err := r.fetcher.Fetch(ctx, r.url)
			if err != nil {
				r.metrics.observe(outcomeError, time.Since(fetchStart))
				return err
			}
			r.metrics.observe(outcomeOK, time.Since(fetchStart))
			results <- payload.UUID
			return nil
		})
	}

	err := g.Wait()
	close(results)
	<-done

	res := &BatchResult{
		Requested: n,
		Completed: completed,
		Elapsed:   time.Since(start),
	}
	if err != nil {
		span.RecordError(err)
		return res, err
	}
	return res, nil
}
