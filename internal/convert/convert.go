// Package convert runs one OCR-export-to-labeling-sheet conversion.
package convert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/receipto/ocrlabel/internal/export"
	"github.com/receipto/ocrlabel/internal/inputs"
	"github.com/receipto/ocrlabel/internal/lines"
	"github.com/receipto/ocrlabel/internal/model"
	"github.com/receipto/ocrlabel/internal/source"
)

// Options holds the parameters of one run.
type Options struct {
	Input         string
	Output        string
	Glob          string
	ReceiptSource string // forced source; empty derives one per file
	ReceiptPrefix string
	SkipEmpty     bool
	Format        string
}

// Converter turns resolved input files into a labeling sheet.
type Converter struct {
	formats *export.Registry
	log     zerolog.Logger
}

// New creates a Converter.
func New(formats *export.Registry, log zerolog.Logger) *Converter {
	return &Converter{formats: formats, log: log}
}

// Run resolves inputs, then writes every line of every file to opts.Output.
// Nothing is written when resolution fails. The destination is replaced only
// once the whole sheet has been written.
func (c *Converter) Run(opts Options) (*model.Result, error) {
	if opts.Output == "" {
		return nil, errors.New("output path is required")
	}

	formatName := opts.Format
	if formatName == "" {
		formatName = export.DefaultFormat
	}
	format, err := c.formats.Lookup(formatName)
	if err != nil {
		return nil, err
	}

	files, err := inputs.Resolve(opts.Input, opts.Glob)
	if err != nil {
		return nil, err
	}
	c.log.Debug().Int("files", len(files)).Str("input", opts.Input).Msg("resolved inputs")

	result := &model.Result{Output: opts.Output, Format: format.Name()}
	err = writeAtomic(opts.Output, func(f *os.File) error {
		w, err := format.NewWriter(f)
		if err != nil {
			return err
		}
		if err := w.WriteHeader(); err != nil {
			return err
		}

		deriver := source.NewDeriver(opts.ReceiptSource, opts.ReceiptPrefix)
		for i, path := range files {
			stat, err := convertFile(w, path, deriver.Derive(path, i+1), lines.Options{SkipEmpty: opts.SkipEmpty})
			if err != nil {
				return err
			}
			c.log.Debug().
				Str("file", stat.Path).
				Str("receipt_source", stat.ReceiptSource).
				Int("rows", stat.Rows).
				Int("skipped", stat.Skipped).
				Msg("converted file")
			result.Files = append(result.Files, stat)
		}
		return w.Close()
	})
	if err != nil {
		return nil, err
	}

	c.log.Debug().
		Int("rows", result.Rows()).
		Int("skipped", result.Skipped()).
		Str("output", result.Output).
		Str("format", result.Format).
		Msg("conversion complete")
	return result, nil
}

func convertFile(w export.RowWriter, path, receiptSource string, opts lines.Options) (model.FileStat, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.FileStat{}, fmt.Errorf("reading %s: %w", path, err)
	}

	kept, skipped := lines.Extract(data, opts)
	for _, line := range kept {
		if err := w.WriteRow(model.NewRow(line, receiptSource)); err != nil {
			return model.FileStat{}, fmt.Errorf("%s: %w", path, err)
		}
	}
	return model.FileStat{
		Path:          path,
		ReceiptSource: receiptSource,
		Rows:          len(kept),
		Skipped:       skipped,
	}, nil
}

// writeAtomic creates the parent directories of dst, lets write fill a
// temporary file beside it, and renames the result over dst.
func writeAtomic(dst string, write func(f *os.File) error) (err error) {
	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dst)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := write(tmp); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("setting output mode: %w", err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("moving output into place: %w", err)
	}
	return nil
}
