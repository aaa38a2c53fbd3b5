package mdat

import (
	"path/filepath"
	"regexp"
	"strings"
)

// runPattern matches a run identifier such as Run01 or RUN12 anywhere in a
// member path.
var runPattern = regexp.MustCompile(`(?i)Run\d+`)

// BaseName derives the output base name for one member of an archive.
//
// When the member path contains a RunNN token, the result is
// "<archive base>-<RunNN>", which disambiguates multiple runs stored in one
// archive. Otherwise the member path itself is sanitized: path separators
// become underscores and the extension is stripped.
func BaseName(archivePath, member string) string {
	if run := runPattern.FindString(member); run != "" {
		if base := archiveBase(archivePath); base != "" && base != "." {
			return base + "-" + run
		}
	}

	sanitized := strings.ReplaceAll(member, "/", "_")
	sanitized = strings.ReplaceAll(sanitized, "\\", "_")
	return strings.TrimSuffix(sanitized, filepath.Ext(sanitized))
}

// archiveBase returns the archive filename without directory or extension.
func archiveBase(archivePath string) string {
	base := filepath.Base(archivePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
