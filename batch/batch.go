// Package batch converts whole directories of .mdat archives to CSV/TSV
// artifacts. Failures are isolated per archive and per member: one bad
// input never stops the rest of the batch.
package batch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/tsawler/eisx"
	"github.com/tsawler/eisx/catalog"
	"github.com/tsawler/eisx/export"
	"github.com/tsawler/eisx/format"
)

// Summary reports what one batch run did.
type Summary struct {
	// Archives is the number of archives processed, including failed ones.
	Archives int
	// FailedArchives is the number of archives that could not be opened.
	FailedArchives int
	// Runs is the number of members extracted to artifacts.
	Runs int
	// Rows is the total number of data rows written.
	Rows int
	// Warnings is the number of member-level diagnostics emitted.
	Warnings int
}

// Run executes one batch conversion. The returned error covers setup
// failures only (directories that cannot be created, a catalog that cannot
// be opened); everything downstream is reported through the configured
// logger and the Summary.
func Run(cfg Config) (Summary, error) {
	cfg = cfg.withDefaults()
	log := cfg.Logger

	created, err := ensureDir(cfg.InputDir)
	if err != nil {
		return Summary{}, fmt.Errorf("preparing input directory: %w", err)
	}
	if created {
		log.Info("input directory created; place .mdat archives there and rerun",
			"dir", cfg.InputDir)
		return Summary{}, nil
	}

	if _, err := ensureDir(cfg.OutputDir); err != nil {
		return Summary{}, fmt.Errorf("preparing output directory: %w", err)
	}

	archives, err := discover(cfg.InputDir)
	if err != nil {
		return Summary{}, fmt.Errorf("scanning input directory: %w", err)
	}
	if len(archives) == 0 {
		log.Warn("no .mdat archives found", "dir", cfg.InputDir)
		return Summary{}, nil
	}

	var store *catalog.Store
	if cfg.CatalogPath != "" {
		store, err = catalog.Open(cfg.CatalogPath)
		if err != nil {
			return Summary{}, fmt.Errorf("opening catalog: %w", err)
		}
		defer store.Close()
	}

	log.Info("starting batch", "archives", len(archives), "input", cfg.InputDir, "output", cfg.OutputDir)

	var summary Summary
	for _, archive := range archives {
		summary.Archives++
		processArchive(cfg, archive, store, &summary, log)
	}

	log.Info("batch complete",
		"archives", summary.Archives,
		"failed_archives", summary.FailedArchives,
		"runs", summary.Runs,
		"rows", summary.Rows,
		"warnings", summary.Warnings)

	return summary, nil
}

// processArchive converts one archive end to end. Member failures surface
// as warnings; only a container-level failure marks the archive failed.
func processArchive(cfg Config, archive string, store *catalog.Store, summary *Summary, log *slog.Logger) {
	log.Info("processing archive", "archive", filepath.Base(archive))

	runs, warnings, err := eisx.Open(archive).Columns(cfg.Columns...).Runs()
	if err != nil {
		summary.FailedArchives++
		log.Error("skipping archive", "archive", filepath.Base(archive), "error", err)
		return
	}

	for _, w := range warnings {
		summary.Warnings++
		log.Warn("member diagnostic", "archive", filepath.Base(archive), "detail", w.String())
	}
	if len(runs) == 0 && len(warnings) == 0 {
		log.Info("no AC data members in archive", "archive", filepath.Base(archive))
		return
	}

	for _, run := range runs {
		artifact, err := export.WriteArtifacts(run.Table, cfg.OutputDir, run.BaseName)
		if err != nil {
			summary.Warnings++
			log.Warn("skipping member, write failed",
				"archive", filepath.Base(archive), "member", run.Member, "error", err)
			continue
		}

		summary.Runs++
		summary.Rows += artifact.Rows
		log.Info("extracted run",
			"member", run.Member,
			"rows", artifact.Rows,
			"csv", filepath.Base(artifact.CSVPath))

		if store != nil {
			_, err := store.RecordRun(catalog.RunRecord{
				Archive:  filepath.Base(archive),
				Member:   run.Member,
				BaseName: run.BaseName,
				CSVPath:  artifact.CSVPath,
				TSVPath:  artifact.TSVPath,
			}, run.Table)
			if err != nil {
				summary.Warnings++
				log.Warn("catalog record failed", "member", run.Member, "error", err)
			}
		}
	}
}

// discover returns the .mdat archives in dir, case-insensitively and in
// deterministic order. Name comparison handles the case-variant duplicates
// a case-insensitive filesystem can surface.
func discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var archives []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if format.Detect(entry.Name()) != format.MDAT {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if seen[path] {
			continue
		}
		seen[path] = true
		archives = append(archives, path)
	}

	sort.Strings(archives)
	return archives, nil
}

// ensureDir creates dir if missing and reports whether it had to.
func ensureDir(dir string) (bool, error) {
	if _, err := os.Stat(dir); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, err
	}
	return true, nil
}
