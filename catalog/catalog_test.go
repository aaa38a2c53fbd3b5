package catalog

import (
	"path/filepath"
	"testing"

	"github.com/tsawler/eisx/extract"
)

func testTable() extract.Table {
	return extract.Table{
		Columns: []string{"frequency (Hz)", "Z_real (Ohm)", "Z_imag (Ohm)"},
		Rows: [][]float64{
			{100, 50.0, -20.0},
			{200, 45.5, -18.2},
		},
	}
}

func TestRecordRun(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	id, err := store.RecordRun(RunRecord{
		Archive:  "sample.mdat",
		Member:   "Run02/test.z",
		BaseName: "sample-Run02",
		CSVPath:  "out/sample-Run02_extracted.csv",
		TSVPath:  "out/sample-Run02_extracted.txt",
	}, testTable())
	if err != nil {
		t.Fatalf("RecordRun() error: %v", err)
	}
	if id <= 0 {
		t.Errorf("run id = %d, want positive", id)
	}

	n, err := store.RunCount()
	if err != nil {
		t.Fatalf("RunCount() error: %v", err)
	}
	if n != 1 {
		t.Errorf("RunCount() = %d, want 1", n)
	}

	var samples int
	if err := store.db.QueryRow(`SELECT COUNT(*) FROM samples WHERE run_id = ?`, id).Scan(&samples); err != nil {
		t.Fatalf("counting samples: %v", err)
	}
	if samples != 2 {
		t.Errorf("samples = %d, want 2", samples)
	}

	var zImag float64
	if err := store.db.QueryRow(`SELECT z_imag FROM samples WHERE run_id = ? AND row_number = 0`, id).Scan(&zImag); err != nil {
		t.Fatalf("reading sample: %v", err)
	}
	if zImag != -20.0 {
		t.Errorf("z_imag = %v, want -20.0", zImag)
	}
}

func TestRecordRunPartialColumns(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	table := extract.Table{
		Columns: []string{"frequency (Hz)"},
		Rows:    [][]float64{{100}},
	}
	id, err := store.RecordRun(RunRecord{Archive: "a.mdat", Member: "b.z", BaseName: "b"}, table)
	if err != nil {
		t.Fatalf("RecordRun() error: %v", err)
	}

	var zReal *float64
	if err := store.db.QueryRow(`SELECT z_real FROM samples WHERE run_id = ?`, id).Scan(&zReal); err != nil {
		t.Fatalf("reading sample: %v", err)
	}
	if zReal != nil {
		t.Errorf("z_real = %v, want NULL", *zReal)
	}
}

func TestRecordRunFailureLeavesNoRunRow(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	// Break the sample inserts so RecordRun fails partway through.
	if _, err := store.db.Exec(`DROP TABLE samples`); err != nil {
		t.Fatal(err)
	}

	if _, err := store.RecordRun(RunRecord{
		Archive:  "sample.mdat",
		Member:   "Run01/a.z",
		BaseName: "sample-Run01",
	}, testTable()); err == nil {
		t.Fatal("RecordRun() succeeded without a samples table")
	}

	n, err := store.RunCount()
	if err != nil {
		t.Fatalf("RunCount() error: %v", err)
	}
	if n != 0 {
		t.Errorf("RunCount() after failed RecordRun = %d, want 0", n)
	}
}

func TestReopenKeepsRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	store, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.RecordRun(RunRecord{Archive: "a.mdat", Member: "a.z", BaseName: "a"}, testTable()); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer store.Close()

	n, err := store.RunCount()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("RunCount() after reopen = %d, want 1", n)
	}
}
