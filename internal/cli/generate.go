package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/autotheme/internal/colour"
	"github.com/jmylchreest/autotheme/internal/config"
	"github.com/jmylchreest/autotheme/internal/output"
	"github.com/jmylchreest/autotheme/internal/output/css"
	"github.com/jmylchreest/autotheme/internal/output/json"
	"github.com/jmylchreest/autotheme/internal/output/preview"
	"github.com/jmylchreest/autotheme/internal/output/script"
	"github.com/jmylchreest/autotheme/internal/output/swatch"
	"github.com/jmylchreest/autotheme/internal/output/tailwind"
)

// newRegistry registers every built-in output plugin.
func newRegistry() *output.Registry {
	registry := output.NewRegistry()
	registry.Register(css.New())
	registry.Register(tailwind.New())
	registry.Register(preview.New())
	registry.Register(script.New())
	registry.Register(json.New())
	registry.Register(swatch.New())
	return registry
}

type generateOptions struct {
	root     *rootOptions
	registry *output.Registry
	dryRun   bool
	stdout   bool
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{
		root:     root,
		registry: newRegistry(),
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate theme files from a primary color",
		Long: `Generate a theme from a primary color and write it as CSS custom properties.

The main stylesheet is always written. A Tailwind v4 stylesheet, an HTML
preview page, the darkmode.js initialisation script, JSON and a PNG swatch are
added with --tailwind, --preview, --dark-mode-script, --json and --swatch.
Settings are read from the config file, AUTOTHEME_* environment variables and
flags, in increasing order of precedence.

Examples:
  # Random primary, analogous harmony
  autotheme generate

  # Triadic theme with Tailwind integration
  autotheme generate -c "#6439ff" -a triadic --tailwind

  # Stylesheet plus a browsable preview and the dark mode script
  autotheme generate -c "#6439ff" --preview --dark-mode-script

  # Everything, into a custom location
  autotheme generate -c "hsl(220, 80%, 50%)" -o styles/theme.css --json --swatch

  # Primary color taken from a wallpaper
  autotheme generate -i ~/Pictures/wallpaper.jpg

  # Print the stylesheet instead of writing it
  autotheme generate -c "#6439ff" --stdout

  # Show what would be written
  autotheme generate --dry-run --json`,
		Args: cobra.NoArgs,
		RunE: opts.run,
	}

	addThemeFlags(cmd.Flags())
	addOutputFlags(cmd.Flags())
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "show the files that would be written without writing them")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "print the stylesheet to stdout instead of writing files")

	for _, name := range opts.registry.List() {
		plugin, _ := opts.registry.Get(name)
		plugin.RegisterFlags(cmd)
	}

	return cmd
}

// selectedPlugins returns the plugins a config enables, css first.
func selectedPlugins(cfg *config.Resolved) []string {
	names := []string{"css"}
	if cfg.Tailwind {
		names = append(names, "tailwind")
	}
	if cfg.Preview {
		names = append(names, "preview")
	}
	if cfg.DarkModeScript {
		names = append(names, "script")
	}
	if cfg.JSON {
		names = append(names, "json")
	}
	if cfg.Swatch {
		names = append(names, "swatch")
	}
	return names
}

func (o *generateOptions) run(cmd *cobra.Command, args []string) error {
	logger := o.root.logger(cmd)

	cfg, err := o.root.loadConfig(cmd.Context(), logger, cmd.Flags())
	if err != nil {
		return err
	}

	theme, err := colour.GenerateTheme(cfg.Primary, cfg.Harmony, colour.ThemeOptions{ContrastTarget: cfg.ContrastTarget})
	if err != nil {
		return err
	}
	logger.Info("generating theme", "harmony", cfg.Harmony, "primary", cfg.Primary.Hex(), "colors", len(theme.Palette.Palettes))
	reportContrast(logger, theme, cfg.ContrastTarget)

	data := output.NewThemeData(theme, outputOptions(cfg))

	if o.stdout {
		content, err := css.Render(data, logger)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(content)
		return err
	}

	var written []string
	for _, name := range selectedPlugins(cfg) {
		plugin, ok := o.registry.Get(name)
		if !ok {
			return fmt.Errorf("unknown output plugin: %s", name)
		}
		if err := plugin.Validate(); err != nil {
			return fmt.Errorf("%s plugin validation failed: %w", name, err)
		}
		if ls, ok := plugin.(output.LoggerSetter); ok {
			ls.SetLogger(logger.Named(name))
		}

		files, err := plugin.Generate(data)
		if err != nil {
			return fmt.Errorf("%s plugin failed: %w", name, err)
		}
		paths, err := output.Write(logger, output.OutputDir(plugin, data.Options), files, o.dryRun)
		written = append(written, paths...)
		if err != nil {
			return err
		}
	}

	if !o.root.quiet {
		out := cmd.OutOrStdout()
		verb := "Generated"
		if o.dryRun {
			verb = "Would generate"
		}
		fmt.Fprintf(out, "%s %d %s:\n", verb, len(written), plural(len(written), "file", "files"))
		for _, path := range written {
			fmt.Fprintf(out, "  %s\n", path)
		}
	}
	return nil
}

// reportContrast warns about semantic foregrounds that fell short of target.
// The accessible text search is best effort, so this is not an error.
func reportContrast(logger hclog.Logger, theme *colour.Theme, target float64) {
	for _, sem := range []colour.SemanticColours{theme.Semantic.Light, theme.Semantic.Dark} {
		for _, pair := range sem.ForegroundPairs() {
			ratio := colour.ContrastRatio(pair.Foreground, pair.Background)
			if ratio < target {
				logger.Warn("foreground below contrast target",
					"mode", sem.Mode,
					"token", pair.Name,
					"ratio", fmt.Sprintf("%.2f", ratio),
					"target", target)
			}
		}
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
