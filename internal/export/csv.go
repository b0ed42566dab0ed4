package export

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/receipto/ocrlabel/internal/model"
)

// CSV writes the labeling sheet as CSV. The line text is always quoted;
// the other columns are written verbatim.
type CSV struct{}

// Name returns the format name.
func (CSV) Name() string { return "csv" }

// NewWriter returns a RowWriter producing CSV on w.
func (CSV) NewWriter(w io.Writer) (RowWriter, error) {
	return &csvWriter{w: bufio.NewWriter(w)}, nil
}

type csvWriter struct {
	w *bufio.Writer
}

func (c *csvWriter) WriteHeader() error {
	if _, err := c.w.WriteString(Header + "\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return nil
}

func (c *csvWriter) WriteRow(row model.Row) error {
	if _, err := c.w.WriteString(MarshalRow(row)); err != nil {
		return fmt.Errorf("writing row: %w", err)
	}
	return nil
}

func (c *csvWriter) Close() error {
	return c.w.Flush()
}

// Quote wraps value in double quotes, doubling any quotes inside it.
func Quote(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// MarshalRow renders a row as one CSV line, including the trailing newline.
// `b"c` from receipt_001 -> "b""c",,receipt_001,
func MarshalRow(row model.Row) string {
	fields := MarshalFields(row)
	fields[colLineText] = Quote(fields[colLineText])
	return strings.Join(fields, ",") + "\n"
}

// ReadCSV parses a labeling sheet produced by the CSV format.
func ReadCSV(r io.Reader) ([]model.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading labeling CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}
	if strings.Join(records[0], ",") != Header {
		return nil, fmt.Errorf("unexpected header %q", strings.Join(records[0], ","))
	}

	var rows []model.Row
	for i, rec := range records[1:] {
		row, err := UnmarshalFields(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
