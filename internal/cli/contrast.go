package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/autotheme/internal/colour"
)

func newContrastCmd() *cobra.Command {
	var target float64

	cmd := &cobra.Command{
		Use:   "contrast FOREGROUND BACKGROUND",
		Short: "Check the WCAG contrast of two colors",
		Long: `Report the WCAG 2.0 contrast ratio between two colors, the levels it passes,
and an accessible text color for the background.

Examples:
  autotheme contrast "#ffffff" "#6439ff"
  autotheme contrast "rgb(20, 20, 20)" "hsl(50, 90%, 60%)" --target 4.5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if target < 1 || target > 21 {
				return fmt.Errorf("target must be between 1 and 21, got %v", target)
			}

			fg, err := colour.Parse(args[0])
			if err != nil {
				return fmt.Errorf("foreground: %w", err)
			}
			bg, err := colour.Parse(args[1])
			if err != nil {
				return fmt.Errorf("background: %w", err)
			}

			result := colour.CheckWCAG(fg, bg)
			suggested := colour.FindAccessibleTextColour(bg, target, colour.DefaultMaxIterations)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Foreground:  %s\n", fg.Hex())
			fmt.Fprintf(out, "Background:  %s\n", bg.Hex())
			fmt.Fprintf(out, "Ratio:       %.2f:1\n", result.Ratio)
			fmt.Fprintf(out, "Level:       %s\n", result.Level)
			fmt.Fprintf(out, "AA:          %s\n", passFail(result.PassesAA))
			fmt.Fprintf(out, "AAA:         %s\n", passFail(result.PassesAAA))
			fmt.Fprintf(out, "AA large:    %s\n", passFail(result.PassesAALarge))
			fmt.Fprintf(out, "AAA large:   %s\n", passFail(result.PassesAAALarge))
			fmt.Fprintf(out, "Suggested:   %s (%.2f:1)\n", suggested.Hex(), colour.ContrastRatio(suggested, bg))
			return nil
		},
	}

	cmd.Flags().Float64Var(&target, "target", colour.DefaultContrastTarget, "contrast ratio the suggested text color aims for")

	return cmd
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
