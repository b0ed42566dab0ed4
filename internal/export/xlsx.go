package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/receipto/ocrlabel/internal/model"
)

// SheetName is the worksheet holding the labeling rows.
const SheetName = "Sheet1"

// XLSX writes the labeling sheet as an Excel workbook. The workbook is
// assembled in memory and written to the destination on Close.
type XLSX struct{}

// Name returns the format name.
func (XLSX) Name() string { return "xlsx" }

// NewWriter returns a RowWriter producing a workbook on w.
func (XLSX) NewWriter(w io.Writer) (RowWriter, error) {
	f := excelize.NewFile()
	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("creating stream writer: %w", err)
	}
	return &xlsxWriter{out: w, file: f, sw: sw, next: 1}, nil
}

type xlsxWriter struct {
	out  io.Writer
	file *excelize.File
	sw   *excelize.StreamWriter
	next int // next 1-based row number
}

func (x *xlsxWriter) WriteHeader() error {
	if err := x.setRow(headerFields()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return nil
}

func (x *xlsxWriter) WriteRow(row model.Row) error {
	if err := x.setRow(MarshalFields(row)); err != nil {
		return fmt.Errorf("writing row %d: %w", x.next, err)
	}
	return nil
}

func (x *xlsxWriter) setRow(fields []string) error {
	cell, err := excelize.CoordinatesToCellName(1, x.next)
	if err != nil {
		return err
	}
	values := make([]interface{}, len(fields))
	for i, v := range fields {
		values[i] = v
	}
	if err := x.sw.SetRow(cell, values); err != nil {
		return err
	}
	x.next++
	return nil
}

func (x *xlsxWriter) Close() error {
	defer x.file.Close()
	if err := x.sw.Flush(); err != nil {
		return fmt.Errorf("flushing sheet: %w", err)
	}
	if err := x.file.Write(x.out); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// ReadXLSX parses a labeling sheet produced by the XLSX format.
func ReadXLSX(r io.Reader) ([]model.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	records, err := f.GetRows(SheetName)
	if err != nil {
		return nil, fmt.Errorf("reading sheet: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
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
