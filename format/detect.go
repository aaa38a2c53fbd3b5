// Package format provides input file format detection for the eisx library.
package format

import (
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// MDAT indicates a MultiStat measurement archive (.mdat), a ZIP container.
	MDAT
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case MDAT:
		return "MDAT"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case MDAT:
		return ".mdat"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
// The match is case-insensitive: instrument software writes both
// .mdat and .MDAT.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".mdat":
		return MDAT
	default:
		return Unknown
	}
}

// DetectFromMagic checks file magic bytes to determine format.
// An .mdat archive is a ZIP container, so the check is the ZIP local
// file header signature: PK\x03\x04. Returns Unknown for anything else.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	if data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		return MDAT
	}

	return Unknown
}
