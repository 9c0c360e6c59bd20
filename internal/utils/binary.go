package utils

import (
	"unicode/utf8"
)

// IsValidUTF8 reports whether data decodes as UTF-8 text.
// No other binary heuristics apply: NUL bytes are valid UTF-8 and are reported as text.
func IsValidUTF8(data []byte) bool {
	return utf8.Valid(data)
}
