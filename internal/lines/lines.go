// Package lines turns raw OCR export bytes into cleaned text lines.
package lines

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const bom = "\ufeff"

// Decode interprets data as UTF-8, replacing every ill-formed byte
// sequence with U+FFFD. It never fails.
func Decode(data []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		// The UTF-8 decoder substitutes rather than erroring; this is a last resort.
		return strings.ToValidUTF8(string(data), string(utf8.RuneError))
	}
	return string(out)
}

// Split breaks text at line boundaries. A trailing boundary does not
// produce a final empty line, and "\r\n" counts as one boundary.
func Split(text string) []string {
	var out []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isBreak(r) {
			i += size
			continue
		}
		out = append(out, text[start:i])
		i += size
		if r == '\r' && i < len(text) && text[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}

func isBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// Clean strips byte-order marks from both ends of a line.
func Clean(line string) string {
	return strings.Trim(line, bom)
}

// IsBlank reports whether line is empty or whitespace only.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Options control which lines Extract keeps.
type Options struct {
	SkipEmpty bool
}

// Extract decodes data and returns its cleaned lines along with the
// number of blank lines dropped.
func Extract(data []byte, opts Options) (kept []string, skipped int) {
	for _, raw := range Split(Decode(data)) {
		line := Clean(raw)
		if opts.SkipEmpty && IsBlank(line) {
			skipped++
			continue
		}
		kept = append(kept, line)
	}
	return kept, skipped
}
