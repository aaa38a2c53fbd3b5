package eisx

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal issue encountered while processing one
// archive: a member that had to be skipped, a missing target column, and the
// like. Warnings never abort extraction of the remaining members.
type Warning struct {
	// Member is the archive-internal path of the affected member, or empty
	// for archive-level warnings.
	Member string

	// Message is a human-readable description of the issue.
	Message string
}

// String returns the warning as a single diagnostic line.
func (w Warning) String() string {
	if w.Member == "" {
		return w.Message
	}
	return fmt.Sprintf("%s: %s", w.Member, w.Message)
}

// FormatWarnings joins warnings into a multi-line string for operator
// output.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
