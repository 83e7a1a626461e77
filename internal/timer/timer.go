package timer

import (
	"encoding/json"
	"io"
	"os"
	"time"
)

// Timer measures wall-clock time of a function over a fixed number of
// repetitions and reports each measurement as one JSON line. Reports go to
// stderr by default so benchmark payload output on stdout stays clean.
type Timer struct {
	reps  int
	runID int
	enc   *json.Encoder
}

// New builds a Timer for the given repetition count and run identifier.
// A repetition count below one is treated as one.
func New(reps, runID int) *Timer {
	return NewWithWriter(reps, runID, os.Stderr)
}

// NewWithWriter is New with an explicit report destination, used in tests.
func NewWithWriter(reps, runID int, w io.Writer) *Timer {
	if reps < 1 {
		reps = 1
	}
	return &Timer{reps: reps, runID: runID, enc: json.NewEncoder(w)}
}

// Run executes fn t.reps times, reporting elapsed time after each repetition.
// The first error stops the remaining repetitions and is returned.
func (t *Timer) Run(name string, fn func() error) error {
	var total time.Duration

	for rep := 1; rep <= t.reps; rep++ {
		start := time.Now()
		err := fn()
		elapsed := time.Since(start)
		total += elapsed

		entry := map[string]any{
			"ts":         time.Now().UTC().Format(time.RFC3339Nano),
			"level":      "info",
			"msg":        "timed_run",
			"name":       name,
			"run_id":     t.runID,
			"rep":        rep,
			"elapsed_ms": float64(elapsed.Microseconds()) / 1000.0,
		}
		if err != nil {
			entry["level"] = "error"
			entry["error"] = err.Error()
		}
		_ = t.enc.Encode(entry)

		if err != nil {
			return err
		}
	}

	if t.reps > 1 {
		_ = t.enc.Encode(map[string]any{
			"ts":       time.Now().UTC().Format(time.RFC3339Nano),
			"level":    "info",
			"msg":      "timed_run_summary",
			"name":     name,
			"run_id":   t.runID,
			"reps":     t.reps,
			"total_ms": float64(total.Microseconds()) / 1000.0,
			"avg_ms":   float64(total.Microseconds()) / 1000.0 / float64(t.reps),
		})
	}

	return nil
}
