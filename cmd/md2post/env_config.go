package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alnah/go-md2post/internal/config"
)

// envPrefix starts every environment variable read by md2post.
const envPrefix = "MD2POST_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2POST_CONFIG: config file name or path
	Locale     string // MD2POST_LOCALE: post locale
	Bullet     string // MD2POST_BULLET: bullet glyph
	OutputDir  string // MD2POST_OUTPUT_DIR: default output directory
	Workers    int    // MD2POST_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2POST_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2POST_CONFIG":     true,
	"MD2POST_LOCALE":     true,
	"MD2POST_BULLET":     true,
	"MD2POST_OUTPUT_DIR": true,
	"MD2POST_WORKERS":    true,
}

// loadDotEnv loads a .env file from the working directory into the process
// environment. Variables already set are not overridden; a missing file is ignored.
func loadDotEnv(logger *slog.Logger) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("ignoring .env file", "error", err)
	}
}

// loadEnvConfig reads configuration from environment variables.
// Invalid MD2POST_WORKERS values are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MD2POST_CONFIG"),
		Locale:     os.Getenv("MD2POST_LOCALE"),
		Bullet:     os.Getenv("MD2POST_BULLET"),
		OutputDir:  os.Getenv("MD2POST_OUTPUT_DIR"),
	}

	if workers := os.Getenv("MD2POST_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2POST_* variables.
// Helps catch typos like MD2POST_LOCAL instead of MD2POST_LOCALE.
func warnUnknownEnvVars(logger *slog.Logger) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvConfig overrides config file values with set environment variables.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later by the command).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Locale != "" {
		cfg.Post.Locale = env.Locale
	}
	if env.Bullet != "" {
		cfg.Post.BulletGlyph = env.Bullet
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
}
