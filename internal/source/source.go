package source

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultPrefix is prepended to derived receipt sources.
const DefaultPrefix = "receipt_"

// receiptPattern finds an embedded receipt number such as "Receipt-07".
var receiptPattern = regexp.MustCompile(`(?i)receipt[_-]?([0-9]+)`)

// Deriver computes the receipt source for each input file.
type Deriver struct {
	Forced string // when non-empty, used for every file
	Prefix string
}

// NewDeriver returns a Deriver. An empty forced value means "derive".
func NewDeriver(forced, prefix string) *Deriver {
	return &Deriver{Forced: forced, Prefix: prefix}
}

// Derive returns the receipt source for path, the index-th file (1-based) of the run.
func (d *Deriver) Derive(path string, index int) string {
	if d.Forced != "" {
		return d.Forced
	}
	if digits, ok := ReceiptNumber(Stem(path)); ok {
		return d.Prefix + digits
	}
	return FormatSeq(d.Prefix, index)
}

// FormatSeq returns a source like "receipt_002".
func FormatSeq(prefix string, seq int) string {
	return fmt.Sprintf("%s%03d", prefix, seq)
}

// ReceiptNumber extracts the first receipt number embedded in name and
// returns it as a decimal integer padded to at least three digits.
// "scan_receipt_7" -> "007", "RECEIPT-0042" -> "042", "receipt1234" -> "1234"
func ReceiptNumber(name string) (string, bool) {
	m := receiptPattern.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return padDigits(m[1]), true
}

// padDigits normalizes a digit run the way integer formatting would,
// without overflowing on arbitrarily long runs.
func padDigits(digits string) string {
	n := strings.TrimLeft(digits, "0")
	if len(n) < 3 {
		n = strings.Repeat("0", 3-len(n)) + n
	}
	return n
}

// Stem returns the base name of path without its final extension.
// "exports/receipt_7.txt" -> "receipt_7", ".hidden" -> ".hidden"
func Stem(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return base
	}
	return strings.TrimSuffix(base, ext)
}
