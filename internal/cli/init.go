package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/autotheme/internal/config"
)

func newInitCmd(root *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Write a starter config file",
		Long: `Write a starter autotheme.json to the current directory, or to PATH.

An existing file is left untouched unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultFile
			if len(args) == 1 {
				path = args[0]
			}

			if err := config.Init(path, force); err != nil {
				return err
			}
			root.logger(cmd).Debug("wrote config", "path", path)
			if !root.quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")

	return cmd
}
