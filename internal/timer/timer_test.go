package timer

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var e map[string]any
		assert.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		entries = append(entries, e)
	}
	return entries
}

func TestTimer_Run(t *testing.T) {
	var buf bytes.Buffer
	tm := NewWithWriter(1, 1, &buf)

	calls := 0
	err := tm.Run("fetch_100", func() error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)

	entries := decodeLines(t, &buf)
	assert.Len(t, entries, 1)
	assert.Equal(t, "timed_run", entries[0]["msg"])
	assert.Equal(t, "fetch_100", entries[0]["name"])
	assert.Equal(t, float64(1), entries[0]["run_id"])
	assert.Equal(t, float64(1), entries[0]["rep"])
	assert.Contains(t, entries[0], "elapsed_ms")
}

func TestTimer_RunRepetitions(t *testing.T) {
	var buf bytes.Buffer
	tm := NewWithWriter(3, 2, &buf)

	calls := 0
	err := tm.Run("fetch_1000", func() error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)

	entries := decodeLines(t, &buf)
	// three per-rep lines plus one summary
	assert.Len(t, entries, 4)
	assert.Equal(t, "timed_run_summary", entries[3]["msg"])
	assert.Equal(t, float64(2), entries[3]["run_id"])
	assert.Equal(t, float64(3), entries[3]["reps"])
}

func TestTimer_RunErrorStopsRepetitions(t *testing.T) {
	var buf bytes.Buffer
	tm := NewWithWriter(5, 1, &buf)

	wantErr := errors.New("batch failed")
	calls := 0
	err := tm.Run("fetch_100", func() error {
		calls++
		if calls == 2 {
			return wantErr
		}
		return nil
	})

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 2, calls)

	entries := decodeLines(t, &buf)
	assert.Len(t, entries, 2)
	assert.Equal(t, "error", entries[1]["level"])
	assert.Equal(t, "batch failed", entries[1]["error"])
}

func TestTimer_NormalizesReps(t *testing.T) {
	var buf bytes.Buffer
	tm := NewWithWriter(0, 1, &buf)

	calls := 0
	assert.NoError(t, tm.Run("fetch_100", func() error {
		calls++
		return nil
	}))
	assert.Equal(t, 1, calls)
}
