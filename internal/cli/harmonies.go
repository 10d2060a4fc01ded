package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/autotheme/internal/colour"
)

func newHarmoniesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "harmonies",
		Short: "List the available color harmonies",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			table := NewTable([]string{"Type", "Name", "Colors", "Description"})
			table.SetColumnMaxWidth(3, 50)
			table.SetColumnRightAlign(2)
			for _, meta := range colour.AllHarmonyInfo() {
				name := meta.Name
				if meta.Type == colour.DefaultHarmony {
					name += " (default)"
				}
				table.AddRow([]string{
					string(meta.Type),
					name,
					strconv.Itoa(meta.ColourCount),
					meta.Description,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
		},
	}
}
