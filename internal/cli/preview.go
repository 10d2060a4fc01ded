package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/autotheme/internal/colour"
	"github.com/jmylchreest/autotheme/internal/output/swatch"
)

type previewOptions struct {
	root  *rootOptions
	plain bool
}

func newPreviewCmd(root *rootOptions) *cobra.Command {
	opts := &previewOptions{root: root}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview a theme in the terminal",
		Long: `Render the palette in the terminal without writing any files.

Each harmony color is shown as a row of swatches (tints, base, shades, tones)
labelled with its text color key in the accessible text color. When stdout is
not a terminal, or with --plain, a table of hex values and contrast ratios is
printed instead.

Examples:
  autotheme preview -c "#6439ff"
  autotheme preview -c "#6439ff" -a square --plain`,
		Args: cobra.NoArgs,
		RunE: opts.run,
	}

	addThemeFlags(cmd.Flags())
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print a plain table even on a terminal")

	return cmd
}

func (o *previewOptions) run(cmd *cobra.Command, args []string) error {
	logger := o.root.logger(cmd)

	cfg, err := o.root.loadConfig(cmd.Context(), logger, cmd.Flags())
	if err != nil {
		return err
	}

	theme, err := colour.GenerateTheme(cfg.Primary, cfg.Harmony, colour.ThemeOptions{ContrastTarget: cfg.ContrastTarget})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	return renderPreview(out, theme, !o.plain && isTerminal(out))
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// renderPreview writes coloured swatches when styled is set, otherwise
// plain tables.
func renderPreview(w io.Writer, theme *colour.Theme, styled bool) error {
	meta, _ := colour.HarmonyInfo(theme.Harmony)
	fmt.Fprintf(w, "Primary: %s  Harmony: %s (%d colors)\n\n", theme.Primary.Hex(), meta.Name, len(theme.Palette.Palettes))

	if styled {
		renderSwatches(w, lipgloss.NewRenderer(w), theme)
		return nil
	}

	table := NewTable([]string{"Name", "Key", "Background", "Text", "Ratio", "Level"})
	table.SetColumnRightAlign(4)
	for i, v := range theme.Palette.Palettes {
		for _, key := range swatch.RowKeys(i, v) {
			bg, _ := theme.Palette.Background(key)
			fg, _ := theme.Palette.TextColour(key)
			result := colour.CheckWCAG(fg, bg)
			table.AddRow([]string{
				colour.HarmonyName(i),
				key.String(),
				bg.Hex(),
				fg.Hex(),
				fmt.Sprintf("%.2f", result.Ratio),
				string(result.Level),
			})
		}
	}
	fmt.Fprint(w, table.Render())

	for _, sem := range []colour.SemanticColours{theme.Semantic.Light, theme.Semantic.Dark} {
		fmt.Fprintf(w, "\nSemantic tokens (%s):\n", sem.Mode)
		table := NewTable([]string{"Token", "Background", "Foreground", "Ratio", "Level"})
		table.SetColumnRightAlign(3)
		for _, pair := range sem.ForegroundPairs() {
			result := colour.CheckWCAG(pair.Foreground, pair.Background)
			table.AddRow([]string{
				pair.Name,
				pair.Background.Hex(),
				pair.Foreground.Hex(),
				fmt.Sprintf("%.2f", result.Ratio),
				string(result.Level),
			})
		}
		fmt.Fprint(w, table.Render())
	}
	return nil
}

// tokensPerRow is how many semantic swatches share a line.
const tokensPerRow = 4

func swatchStyle(r *lipgloss.Renderer, bg, fg colour.Colour) lipgloss.Style {
	return r.NewStyle().
		Background(lipgloss.Color(bg.Hex())).
		Foreground(lipgloss.Color(fg.Hex())).
		Padding(0, 1)
}

func renderSwatches(w io.Writer, r *lipgloss.Renderer, theme *colour.Theme) {
	label := r.NewStyle().Bold(true).Width(12)

	for i, v := range theme.Palette.Palettes {
		cells := []string{label.Render(colour.HarmonyName(i))}
		for _, key := range swatch.RowKeys(i, v) {
			bg, _ := theme.Palette.Background(key)
			fg, _ := theme.Palette.TextColour(key)
			text := strings.TrimPrefix(key.String(), fmt.Sprintf("c%d-", i))
			cells = append(cells, swatchStyle(r, bg, fg).Render(text))
		}
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	for _, sem := range []colour.SemanticColours{theme.Semantic.Light, theme.Semantic.Dark} {
		fmt.Fprintf(w, "\n%s\n", label.Render(string(sem.Mode)))
		var cells []string
		for _, pair := range sem.ForegroundPairs() {
			cells = append(cells, swatchStyle(r, pair.Background, pair.Foreground).Render(pair.Name))
		}
		for start := 0; start < len(cells); start += tokensPerRow {
			end := min(start+tokensPerRow, len(cells))
			fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, cells[start:end]...))
		}
	}
}
