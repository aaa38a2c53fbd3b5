// Package mdat provides read access to MultiStat .mdat measurement archives.
//
// An .mdat file is a ZIP container. The entries of interest are the AC
// impedance data members, named with a .z or .Z extension; each holds one
// instrument run as Latin-1 encoded ASCII text.
package mdat

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
)

// Reader provides access to the AC data members of an .mdat archive.
type Reader struct {
	filename  string
	zipReader *zip.ReadCloser
}

// Open opens an .mdat archive for reading. It fails if the file is not a
// well-formed ZIP container.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	return &Reader{
		filename:  filename,
		zipReader: zr,
	}, nil
}

// Close releases resources associated with the Reader.
// It is safe to call Close multiple times.
func (r *Reader) Close() error {
	if r.zipReader != nil {
		err := r.zipReader.Close()
		r.zipReader = nil
		return err
	}
	return nil
}

// Members returns the names of all AC data members, in archive order.
// A member qualifies when its name ends with .z, case-insensitively.
func (r *Reader) Members() []string {
	var members []string
	for _, f := range r.zipR().File {
		if strings.HasSuffix(strings.ToLower(f.Name), ".z") {
			members = append(members, f.Name)
		}
	}
	return members
}

// ReadMember returns the raw byte content of the named member.
func (r *Reader) ReadMember(name string) ([]byte, error) {
	for _, f := range r.zipR().File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("opening member %s: %w", name, err)
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("member not found: %s", name)
}

func (r *Reader) zipR() *zip.ReadCloser {
	if r.zipReader == nil {
		// Reader was closed; behave as an empty archive rather than panic.
		return &zip.ReadCloser{}
	}
	return r.zipReader
}
