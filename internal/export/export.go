package export

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/receipto/ocrlabel/internal/model"
)

// Header lists the columns of the labeling sheet.
const Header = "line_text,label,receipt_source,notes"

const (
	numFields        = 4
	colLineText      = 0
	colLabel         = 1
	colReceiptSource = 2
	colNotes         = 3
)

// ErrUnknownFormat is returned by Lookup for an unregistered format name.
var ErrUnknownFormat = errors.New("unknown output format")

// RowWriter receives the header and rows of one labeling sheet.
// Close flushes buffered output but does not close the underlying writer.
type RowWriter interface {
	WriteHeader() error
	WriteRow(row model.Row) error
	Close() error
}

// Format creates RowWriters for one output encoding.
type Format interface {
	Name() string
	NewWriter(w io.Writer) (RowWriter, error)
}

// Registry holds named output formats.
type Registry struct {
	formats map[string]Format
}

// NewRegistry creates an empty format registry.
func NewRegistry() *Registry {
	return &Registry{formats: make(map[string]Format)}
}

// Register adds a format. Panics on duplicate name.
func (r *Registry) Register(f Format) {
	key := strings.ToLower(f.Name())
	if _, ok := r.formats[key]; ok {
		panic("duplicate output format: " + key)
	}
	r.formats[key] = f
}

// Get returns the format for name, or nil.
func (r *Registry) Get(name string) Format {
	return r.formats[strings.ToLower(name)]
}

// Lookup is Get with an error naming the known formats.
func (r *Registry) Lookup(name string) (Format, error) {
	if f := r.Get(name); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownFormat, name, strings.Join(r.Names(), ", "))
}

// Names returns the registered format names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.formats))
	for k := range r.formats {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry with all built-in formats.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(CSV{})
	r.Register(XLSX{})
	return r
}

// DefaultFormat is used when no format is configured.
const DefaultFormat = "csv"

func headerFields() []string {
	return strings.Split(Header, ",")
}

// MarshalFields converts a Row to its column values.
func MarshalFields(row model.Row) []string {
	fields := make([]string, numFields)
	fields[colLineText] = row.LineText
	fields[colLabel] = row.Label
	fields[colReceiptSource] = row.ReceiptSource
	fields[colNotes] = row.Notes
	return fields
}

// UnmarshalFields converts column values to a Row.
// Missing trailing columns are treated as empty.
func UnmarshalFields(fields []string) (model.Row, error) {
	if len(fields) > numFields {
		return model.Row{}, fmt.Errorf("expected %d fields, got %d", numFields, len(fields))
	}
	padded := make([]string, numFields)
	copy(padded, fields)
	return model.Row{
		LineText:      padded[colLineText],
		Label:         padded[colLabel],
		ReceiptSource: padded[colReceiptSource],
		Notes:         padded[colNotes],
	}, nil
}
