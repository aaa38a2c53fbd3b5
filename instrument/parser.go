// Package instrument decodes and parses the MultiStat AC impedance ASCII
// dialect found inside .mdat archive members.
//
// The dialect is fixed and undocumented: a free-form metadata block
// terminated by a line containing "End Header:", a whitespace-delimited
// column-name line exactly two lines above that terminator, and
// whitespace-delimited numeric data rows from the line after the terminator
// to end of file. The marker-relative offset is a property of the file
// format and is preserved exactly rather than generalized.
package instrument

import (
	"errors"
	"strings"
)

// headerTerminator delimits the metadata block from the data block.
const headerTerminator = "End Header:"

// headerOffset is the line distance from the terminator up to the
// column-name line.
const headerOffset = 2

// Member-level parse failures. Each maps to one skip reason in the
// diagnostic output; callers skip the member and continue.
var (
	// ErrNoHeaderTerminator means no line contains "End Header:".
	ErrNoHeaderTerminator = errors.New("no header terminator")
	// ErrHeaderTooShort means the terminator sits too close to the top of
	// the file for a column-name line to exist above it.
	ErrHeaderTooShort = errors.New("header too short")
	// ErrNoData means the terminator is the last line of the file.
	ErrNoData = errors.New("no data after header terminator")
	// ErrNoRows means the data block yielded no parseable rows at all.
	ErrNoRows = errors.New("no parseable rows")
)

// Parse extracts the raw data table from decoded member text.
//
// Data rows whose token count differs from the column count are skipped
// rather than failing the parse; the instrument occasionally truncates its
// final row mid-write. Blank lines are skipped likewise.
func Parse(text string) (Table, error) {
	lines := splitLines(text)

	markerIdx := -1
	for i, line := range lines {
		if strings.Contains(line, headerTerminator) {
			markerIdx = i
			break
		}
	}
	if markerIdx == -1 {
		return Table{}, ErrNoHeaderTerminator
	}

	headerIdx := markerIdx - headerOffset
	if headerIdx < 0 {
		return Table{}, ErrHeaderTooShort
	}
	columns := strings.Fields(lines[headerIdx])

	dataStart := markerIdx + 1
	if dataStart >= len(lines) {
		return Table{}, ErrNoData
	}

	var rows [][]string
	for _, line := range lines[dataStart:] {
		tokens := strings.Fields(line)
		if len(tokens) == 0 || len(tokens) != len(columns) {
			continue
		}
		rows = append(rows, tokens)
	}
	if len(rows) == 0 {
		return Table{}, ErrNoRows
	}

	return Table{Columns: columns, Rows: rows}, nil
}

// splitLines splits text into lines, keeping line terminators attached so
// that line indices match the raw file exactly. Tokenization with
// strings.Fields discards the terminators afterwards.
func splitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}
