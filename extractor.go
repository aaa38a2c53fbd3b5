package eisx

import (
	"fmt"
	"io"
	"os"

	"github.com/tsawler/eisx/extract"
	"github.com/tsawler/eisx/format"
	"github.com/tsawler/eisx/instrument"
	"github.com/tsawler/eisx/mdat"
)

// Run holds the extracted table of one AC data member.
type Run struct {
	// Member is the archive-internal path of the source member.
	Member string

	// BaseName is the derived output base name for the member
	// (<archive>-<RunNN>, or the sanitized member path).
	BaseName string

	// Table is the extracted numeric data.
	Table extract.Table
}

// Extractor provides a fluent interface for extracting run data from an
// .mdat archive. Each configuration method returns a new Extractor
// instance, making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string

	// Reader
	reader *mdat.Reader

	// Lifecycle
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool // true if reader has been opened

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		reader:       e.reader,
		ownsReader:   e.ownsReader,
		readerOpened: e.readerOpened,
		options:      e.options.clone(),
		err:          e.err,
	}
}

// Columns overrides the target column map used by terminal operations.
// Mappings apply in the given order; source columns not present in a member
// degrade the output rather than failing it.
func (e *Extractor) Columns(mappings ...extract.ColumnMapping) *Extractor {
	newExt := e.clone()
	newExt.options.columns = make([]extract.ColumnMapping, len(mappings))
	copy(newExt.options.columns, mappings)
	return newExt
}

// ensureReader opens the reader if not already open.
func (e *Extractor) ensureReader() error {
	if e.readerOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}
	if f := format.Detect(e.filename); f != format.MDAT {
		return fmt.Errorf("unsupported file format: %s", f)
	}
	if err := checkMagic(e.filename); err != nil {
		return err
	}

	r, err := mdat.Open(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open MDAT: %w", err)
	}
	e.reader = r
	e.ownsReader = true
	e.readerOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsReader && e.reader != nil {
		err := e.reader.Close()
		e.reader = nil
		e.ownsReader = false
		e.readerOpened = false
		return err
	}
	return nil
}

// checkMagic verifies the file starts with the ZIP signature before the
// archive is opened, so a renamed text file gets a clear diagnostic instead
// of a ZIP parse error.
func checkMagic(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open MDAT: %w", err)
	}
	defer f.Close()

	magic := make([]byte, 4)
	n, _ := io.ReadFull(f, magic)
	if format.DetectFromMagic(magic[:n]) != format.MDAT {
		return fmt.Errorf("%s is not a valid ZIP (.mdat) container", filename)
	}
	return nil
}

// Runs extracts every AC data member of the archive and returns the
// per-member tables, any warnings, and an error. The error is archive-level
// only (unreadable or corrupt container); members that cannot be decoded,
// parsed or extracted are skipped with a warning, never aborting the rest.
//
// An archive without AC data members yields an empty slice, no warnings and
// no error.
func (e *Extractor) Runs() ([]Run, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	if e.ownsReader {
		defer e.Close()
	}

	var runs []Run
	var warnings []Warning

	for _, member := range e.reader.Members() {
		run, warns, ok := e.extractMember(member)
		warnings = append(warnings, warns...)
		if ok {
			runs = append(runs, run)
		}
	}

	return runs, warnings, nil
}

// extractMember runs the decode, parse and select pipeline for one member.
// A false result means the member was skipped; the warnings say why.
func (e *Extractor) extractMember(member string) (Run, []Warning, bool) {
	var warnings []Warning

	data, err := e.reader.ReadMember(member)
	if err != nil {
		return Run{}, []Warning{{Member: member, Message: fmt.Sprintf("read failed: %v", err)}}, false
	}

	text, err := instrument.Decode(data)
	if err != nil {
		return Run{}, []Warning{{Member: member, Message: fmt.Sprintf("decode failed: %v", err)}}, false
	}

	parsed, err := instrument.Parse(text)
	if err != nil {
		// Every parse failure is a member-scoped skip reason.
		return Run{}, []Warning{{Member: member, Message: err.Error()}}, false
	}

	table, missing := extract.Select(parsed, e.options.columns)
	for _, name := range missing {
		warnings = append(warnings, Warning{Member: member, Message: fmt.Sprintf("column not found: %s", name)})
	}
	if table.Empty() {
		warnings = append(warnings, Warning{Member: member, Message: "no valid numeric data in target columns"})
		return Run{}, warnings, false
	}

	run := Run{
		Member:   member,
		BaseName: mdat.BaseName(e.filename, member),
		Table:    table,
	}
	return run, warnings, true
}
