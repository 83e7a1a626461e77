package config

import (
	"os"
	"strconv"
	"strings"
)

// ClientConfig holds settings for the shared HTTP fetch session.
type ClientConfig struct {
	// RequestTimeoutSec bounds each request end to end. Zero disables the
	// timeout, restoring the original unbounded behavior.
	RequestTimeoutSec   int
	MaxIdleConnsPerHost int
}

// ServerConfig holds settings for the embedded target server.
type ServerConfig struct {
	Port string
}

// AppConfig is the centralized configuration struct for the benchmark.
// It is populated from environment variables.
type AppConfig struct {
	// TargetURL is the endpoint every fetch hits. It must return a JSON body
	// with a uuid field.
	TargetURL string
	// BatchSizes lists the concurrent request counts to benchmark, one timed
	// run per entry.
	BatchSizes []int
	// TimerReps is how many times each batch is repeated by the timer.
	TimerReps int
	Client    ClientConfig
	Server    ServerConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		TargetURL:  getEnv("TARGET_URL", "https://httpbin.org/uuid"),
		BatchSizes: getEnvInts("BATCH_SIZES", []int{100, 1000}),
		TimerReps:  getEnvInt("TIMER_REPS", 1),
		Client: ClientConfig{
			RequestTimeoutSec:   getEnvInt("REQUEST_TIMEOUT_SEC", 30),
			MaxIdleConnsPerHost: getEnvInt("MAX_IDLE_CONNS_PER_HOST", 100),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

// getEnvInts parses a comma-separated list of positive integers.
// Any malformed entry invalidates the whole list and the default is used.
func getEnvInts(key string, def []int) []int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		i, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || i <= 0 {
			return def
		}
		out = append(out, i)
	}
	return out
}
