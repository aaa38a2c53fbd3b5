package batch

import (
	"log/slog"

	"github.com/tsawler/eisx/extract"
)

// Config holds everything one batch run needs. There is no process-wide
// state: callers build a Config and hand it to Run.
type Config struct {
	// InputDir is scanned for .mdat archives (case-insensitive extension).
	// Created if missing, in which case the run ends with nothing to do.
	InputDir string

	// OutputDir receives the extracted artifacts. Created if missing.
	OutputDir string

	// CatalogPath, when non-empty, enables the SQLite run catalog at that
	// path.
	CatalogPath string

	// Columns is the target column map. Defaults to extract.DefaultColumns().
	Columns []extract.ColumnMapping

	// Logger receives operator diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns a Config with the shipped directory layout and
// column map.
func DefaultConfig() Config {
	return Config{
		InputDir:  "./Input_Data_MDAT",
		OutputDir: "./Output_Data",
		Columns:   extract.DefaultColumns(),
	}
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.Columns == nil {
		c.Columns = extract.DefaultColumns()
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}
