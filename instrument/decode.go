package instrument

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Decode converts raw member bytes to text.
//
// Instrument files are written as Latin-1 (ISO 8859-1), which maps every
// byte value, so the primary decode cannot fail on any input. The UTF-8
// fallback is kept for files produced by post-processing tools that re-saved
// a member.
func Decode(data []byte) (string, error) {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err == nil {
		return string(decoded), nil
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	return "", fmt.Errorf("content is neither Latin-1 nor UTF-8 decodable: %w", err)
}
