// Command eisx batch-converts MultiStat .mdat archives to CSV/TSV artifacts.
//
// Directories default to the shipped layout (./Input_Data_MDAT and
// ./Output_Data) and can be overridden by flags, environment variables
// (EISX_INPUT, EISX_OUTPUT, EISX_CATALOG) or a .env file.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/tsawler/eisx/batch"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr *os.File) int {
	fs := flag.NewFlagSet("eisx", flag.ContinueOnError)
	fs.SetOutput(stderr)

	input := fs.String("input", "", "directory of .mdat archives (default ./Input_Data_MDAT)")
	output := fs.String("output", "", "directory for extracted artifacts (default ./Output_Data)")
	catalogPath := fs.String("catalog", "", "optional SQLite run catalog path")
	envFile := fs.String("env", "", "optional .env file with EISX_* settings")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn, error")
	logFormat := fs.String("log-format", "text", "log format: text or json")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			fmt.Fprintf(stderr, "eisx: loading %s: %v\n", *envFile, err)
			return 2
		}
	}

	logger := newLogger(*logLevel, *logFormat, stderr)

	cfg := batch.DefaultConfig()
	cfg.Logger = logger
	if v := firstOf(*input, os.Getenv("EISX_INPUT")); v != "" {
		cfg.InputDir = v
	}
	if v := firstOf(*output, os.Getenv("EISX_OUTPUT")); v != "" {
		cfg.OutputDir = v
	}
	cfg.CatalogPath = firstOf(*catalogPath, os.Getenv("EISX_CATALOG"))

	if _, err := batch.Run(cfg); err != nil {
		logger.Error("batch failed", "error", err)
		return 1
	}
	return 0
}

// newLogger configures a slog logger for operator output.
func newLogger(level, format string, w *os.File) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// firstOf returns the first non-empty value.
func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
