package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/receipto/ocrlabel/internal/config"
	"github.com/receipto/ocrlabel/internal/convert"
	"github.com/receipto/ocrlabel/internal/export"
	"github.com/receipto/ocrlabel/internal/logging"
)

type convertFlags struct {
	input         string
	output        string
	glob          string
	receiptSource string
	receiptPrefix string
	skipEmpty     bool
	format        string
	configPath    string
	verbose       bool
}

func newConvertCommand() *cobra.Command {
	var flags convertFlags
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "ocrlabel",
		Short: "Convert OCR line exports into a CSV ready for manual labeling",
		Long: `Convert OCR line exports (text files, one recognized line per line) into a
CSV with the columns line_text,label,receipt_source,notes. The label and notes
columns are left empty for manual filling.`,
		Example: `  ocrlabel --input exports/ --output data/unlabeled_lines.csv --skip-empty
  ocrlabel --input receipt_7.txt --output lines.csv --receipt-source store-a`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd, flags)
			if err != nil {
				return err
			}
			return runConvert(cmd, opts, flags.verbose)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.input, "input", "", "path to a .txt export file or a folder of export files (required)")
	f.StringVar(&flags.output, "output", "", "output path, e.g. data/unlabeled_lines.csv (required)")
	f.StringVar(&flags.glob, "glob", defaults.Input.Glob, "files to include when --input is a folder")
	f.StringVar(&flags.receiptSource, "receipt-source", "", "force a single receipt_source value for all lines")
	f.StringVar(&flags.receiptPrefix, "receipt-prefix", defaults.Receipt.Prefix, "prefix for auto-generated receipt_source values")
	f.BoolVar(&flags.skipEmpty, "skip-empty", defaults.Input.SkipEmpty, "skip empty and whitespace-only lines")
	f.StringVar(&flags.format, "format", defaults.Output.Format, "output format (csv, xlsx)")
	f.StringVar(&flags.configPath, "config", "", "YAML file with default settings")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "log per-file details to stderr")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// resolveOptions merges flags over the config file over built-in defaults.
func resolveOptions(cmd *cobra.Command, flags convertFlags) (convert.Options, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return convert.Options{}, err
		}
		cfg = loaded
	}

	set := cmd.Flags().Changed
	if set("glob") {
		cfg.Input.Glob = flags.glob
	}
	if set("skip-empty") {
		cfg.Input.SkipEmpty = flags.skipEmpty
	}
	if set("receipt-source") {
		cfg.Receipt.Source = flags.receiptSource
	}
	if set("receipt-prefix") {
		cfg.Receipt.Prefix = flags.receiptPrefix
	}
	if set("format") {
		cfg.Output.Format = flags.format
	}

	return convert.Options{
		Input:         flags.input,
		Output:        flags.output,
		Glob:          cfg.Input.Glob,
		ReceiptSource: cfg.Receipt.Source,
		ReceiptPrefix: cfg.Receipt.Prefix,
		SkipEmpty:     cfg.Input.SkipEmpty,
		Format:        cfg.Output.Format,
	}, nil
}

func runConvert(cmd *cobra.Command, opts convert.Options, verbose bool) error {
	log := logging.New(cmd.ErrOrStderr(), verbose)
	conv := convert.New(export.DefaultRegistry(), log)

	res, err := conv.Run(opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d lines to %s\n", res.Rows(), res.Output)
	return nil
}
