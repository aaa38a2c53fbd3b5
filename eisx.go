// Package eisx provides a fluent API for extracting electrochemical
// impedance spectroscopy (EIS) run data from MultiStat .mdat archives.
//
// Basic usage:
//
//	runs, warnings, err := eisx.Open("sample.mdat").Runs()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", eisx.FormatWarnings(warnings))
//	}
//
// With a custom column map:
//
//	runs, _, err := eisx.Open("sample.mdat").
//	    Columns(extract.ColumnMapping{From: "Freq(Hz)", To: "f"}).
//	    Runs()
//
// For batch conversion of whole directories, see the batch package.
package eisx

import (
	"github.com/tsawler/eisx/mdat"
)

// Open opens an .mdat archive and returns an Extractor for fluent
// configuration. The underlying archive is opened lazily by terminal
// operations such as Runs() and closed again before they return, unless the
// Extractor was created with FromReader.
//
// Example:
//
//	runs, warnings, err := eisx.Open("sample.mdat").Runs()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates an Extractor from an already-opened mdat.Reader.
// This is useful when you need more control over the reader lifecycle.
// Note: The caller is responsible for closing the reader.
func FromReader(r *mdat.Reader) *Extractor {
	return &Extractor{
		reader:       r,
		ownsReader:   false,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustRuns is a helper that wraps a call to Runs() and panics if the error
// is non-nil. It discards warnings and returns just the runs.
func MustRuns[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
