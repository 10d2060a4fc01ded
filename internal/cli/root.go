// Package cli provides the command-line interface for AutoTheme.
package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/autotheme/internal/version"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	verbose    bool
	quiet      bool
	configPath string
}

// NewRootCmd builds the autotheme command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "autotheme",
		Short: "An accessible colour theme generator",
		Long: `AutoTheme derives a complete design system palette from a single primary colour.

It builds a colour harmony, tint/shade/tone ramps for every harmony colour,
accessible text colours for each ramp step, semantic light and dark tokens and
shadcn/ui variables, then writes them as CSS, Tailwind v4, JSON or a PNG swatch.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file (default: autotheme.json, .autothemerc.json or .autothemerc)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newPreviewCmd(opts))
	rootCmd.AddCommand(newContrastCmd())
	rootCmd.AddCommand(newHarmoniesCmd())
	rootCmd.AddCommand(newInitCmd(opts))
	rootCmd.AddCommand(newTemplatesCmd(opts))

	return rootCmd
}

// logger builds the command logger writing to the command's error stream.
func (o *rootOptions) logger(cmd *cobra.Command) hclog.Logger {
	return newLogger(cmd.ErrOrStderr(), o.verbose, o.quiet)
}

// newLogger returns an hclog logger named autotheme. Quiet wins over verbose.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Info
	switch {
	case quiet:
		level = hclog.Error
	case verbose:
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "autotheme",
		Output: w,
		Level:  level,
		Color:  hclog.AutoColor,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
