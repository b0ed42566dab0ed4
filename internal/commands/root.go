package commands

import (
	"github.com/spf13/cobra"

	"github.com/receipto/ocrlabel/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
// The root command itself performs the conversion.
func NewRootCommand() *cobra.Command {
	rootCmd := newConvertCommand()
	rootCmd.Version = buildinfo.String()
	rootCmd.CompletionOptions = cobra.CompletionOptions{
		DisableDefaultCmd: true,
	}
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(newInitConfigCommand())

	return rootCmd
}
