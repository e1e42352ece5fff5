// Package config loads runtime settings from the environment, with an
// optional .env file for development.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// HistoryPath is the saved-documents file.
	HistoryPath string

	// ParseDebounce is the quiet interval before reparsing interactively
	// edited text.
	ParseDebounce time.Duration

	// SearchDebounce is the quiet interval before running a changed query.
	SearchDebounce time.Duration

	// FeedbackURL receives fire-and-forget feedback submissions; empty
	// disables them.
	FeedbackURL string

	LogLevel string
	LogFile  string

	// NoColor disables ANSI color regardless of TTY detection.
	NoColor bool
}

// Load reads JA_* environment variables, loading a .env file first if one
// exists in the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HistoryPath:    stringEnv("JA_HISTORY", defaultHistoryPath()),
		FeedbackURL:    stringEnv("JA_FEEDBACK_URL", ""),
		LogLevel:       stringEnv("JA_LOG_LEVEL", "info"),
		LogFile:        stringEnv("JA_LOG_FILE", ""),
		NoColor:        os.Getenv("NO_COLOR") != "" || boolEnv("JA_NO_COLOR"),
		ParseDebounce:  500 * time.Millisecond,
		SearchDebounce: 300 * time.Millisecond,
	}
	var err error
	if cfg.ParseDebounce, err = durationEnv("JA_PARSE_DEBOUNCE", cfg.ParseDebounce); err != nil {
		return nil, err
	}
	if cfg.SearchDebounce, err = durationEnv("JA_SEARCH_DEBOUNCE", cfg.SearchDebounce); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultHistoryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "ja-history.json"
	}
	return filepath.Join(dir, "ja", "history.json")
}

func stringEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func boolEnv(key string) bool {
	v := os.Getenv(key)
	if v == "" {
		return false
	}
	b, _ := strconv.ParseBool(v)
	return b
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("bad duration in $%s: %w", key, err)
	}
	return d, nil
}
