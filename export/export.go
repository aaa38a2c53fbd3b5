// Package export serializes extracted tables to delimited text artifacts.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tsawler/eisx/extract"
)

// Format defines the available export formats.
type Format int

const (
	// CSV exports as comma-separated values.
	CSV Format = iota
	// TSV exports as tab-separated values.
	TSV
)

// String returns a human-readable representation of the export format.
func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case TSV:
		return "tsv"
	default:
		return "unknown"
	}
}

// FileExtension returns the artifact file extension for this format.
// Tab-delimited artifacts ship as .txt, matching the established output
// naming downstream tooling consumes.
func (f Format) FileExtension() string {
	switch f {
	case CSV:
		return ".csv"
	case TSV:
		return ".txt"
	default:
		return ".txt"
	}
}

// delimiter returns the cell delimiter for the format.
func (f Format) delimiter() rune {
	if f == TSV {
		return '\t'
	}
	return ','
}

// Artifact describes the files written for one extracted table.
type Artifact struct {
	CSVPath string
	TSVPath string
	Rows    int
}

// Write serializes the table to w: a header row of the output column names
// followed by the data rows in table order. Both formats emit identical
// values; only the delimiter differs.
func Write(t extract.Table, w io.Writer, f Format) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = f.delimiter()

	if err := csvWriter.Write(t.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	row := make([]string, len(t.Columns))
	for i, values := range t.Rows {
		for j, v := range values {
			row[j] = formatValue(v)
		}
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// WriteToFile serializes the table to a file, overwriting any existing file
// at that path.
func WriteToFile(t extract.Table, filename string, f Format) error {
	out, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}

	if err := Write(t, out, f); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// WriteArtifacts writes both artifacts for one table into dir:
// <base>_extracted.csv and <base>_extracted.txt.
func WriteArtifacts(t extract.Table, dir, base string) (Artifact, error) {
	a := Artifact{
		CSVPath: filepath.Join(dir, base+"_extracted"+CSV.FileExtension()),
		TSVPath: filepath.Join(dir, base+"_extracted"+TSV.FileExtension()),
		Rows:    len(t.Rows),
	}

	if err := WriteToFile(t, a.CSVPath, CSV); err != nil {
		return Artifact{}, err
	}
	if err := WriteToFile(t, a.TSVPath, TSV); err != nil {
		return Artifact{}, err
	}
	return a, nil
}

// formatValue renders a sample value. The shortest exact decimal form is
// used, with a decimal point guaranteed so integral samples read as floats
// (100 renders as 100.0).
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
