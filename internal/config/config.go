package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr              string
	BackendURL        string
	BackendTimeout    time.Duration
	DBPath            string
	LogLevel          string
	TickInterval      time.Duration
	BatchAnalyzeDelay time.Duration
	JobWorkerCount    int
	JobQueueSize      int
	HistoryPageSize   int
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:              envOr("ADDR", ":8080"),
		BackendURL:        envOr("BACKEND_URL", "http://localhost:5000"),
		BackendTimeout:    time.Duration(envIntOr("BACKEND_TIMEOUT_SECONDS", 30)) * time.Second,
		DBPath:            envOr("DB_PATH", "file:prepdeck.db"),
		LogLevel:          envOr("LOG_LEVEL", "INFO"),
		TickInterval:      time.Duration(envIntOr("QUIZ_TICK_MS", 1000)) * time.Millisecond,
		BatchAnalyzeDelay: time.Duration(envIntOr("BATCH_ANALYZE_DELAY_MS", 500)) * time.Millisecond,
		JobWorkerCount:    envIntOr("JOB_WORKER_COUNT", 2),
		JobQueueSize:      envIntOr("JOB_QUEUE_SIZE", 64),
		HistoryPageSize:   envIntOr("HISTORY_PAGE_SIZE", 20),
	}
}

// Validate checks the configuration and returns all problems found.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.BackendURL == "" {
		problems = append(problems, "BACKEND_URL cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	if c.BackendTimeout <= 0 {
		problems = append(problems, "BACKEND_TIMEOUT_SECONDS must be positive")
	}
	if c.TickInterval <= 0 {
		problems = append(problems, "QUIZ_TICK_MS must be positive")
	}
	if c.BatchAnalyzeDelay < 0 {
		problems = append(problems, "BATCH_ANALYZE_DELAY_MS cannot be negative")
	}
	if c.JobWorkerCount <= 0 {
		problems = append(problems, "JOB_WORKER_COUNT must be positive")
	}
	if c.JobQueueSize <= 0 {
		problems = append(problems, "JOB_QUEUE_SIZE must be positive")
	}
	if c.HistoryPageSize <= 0 {
		problems = append(problems, "HISTORY_PAGE_SIZE must be positive")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not a valid level", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
