package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/autotheme/internal/colour"
	"github.com/jmylchreest/autotheme/internal/config"
	"github.com/jmylchreest/autotheme/internal/image"
	"github.com/jmylchreest/autotheme/internal/output"
)

// addThemeFlags registers the flags that shape the generated theme. Their
// names match the keys config.Load binds, so only changed flags override
// the config file and environment.
func addThemeFlags(flags *pflag.FlagSet) {
	d := config.Default()

	flags.StringP("color", "c", "", "primary color (hex, rgb(), hsl(); random when unset)")
	flags.StringP("image", "i", "", "image file, directory or URL to take the primary color from when --color is unset")
	flags.Duration("image-timeout", d.ImageTimeout, "how long to wait when --image is a URL")
	flags.StringP("harmony", "a", d.Harmony, "color harmony type (see 'autotheme harmonies')")
	flags.Float64("contrast-target", d.ContrastTarget, "contrast ratio text colors aim for (3-21)")
}

// addOutputFlags registers the flags that select and shape output files.
func addOutputFlags(flags *pflag.FlagSet) {
	d := config.Default()

	flags.StringP("output", "o", d.Output, "output CSS file path")
	flags.Bool("preview", false, "also write an HTML preview page")
	flags.Bool("tailwind", false, "also write a Tailwind v4 stylesheet")
	flags.Bool("dark-mode-script", false, "also write darkmode.js")
	flags.Bool("json", false, "also write palette.json")
	flags.Bool("swatch", false, "also write palette.png")

	flags.Float64("scalar", d.Scalar, "ratio between typography and spacing steps")
	flags.String("radius", d.Radius, "base border radius for shadcn variables")
	flags.String("prefix", d.Prefix, "CSS variable prefix for color scales")
	flags.Float64("font-size", d.FontSize, "base font size in rem")

	flags.Bool("no-gradients", false, "skip gradient variables")
	flags.Bool("no-spacing", false, "skip the spacing scale")
	flags.Bool("no-noise", false, "skip the noise texture")
	flags.Bool("no-shadcn", false, "skip shadcn/ui variables")
	flags.Bool("no-utilities", false, "skip utility classes")
}

// outputOptions maps a resolved config onto plugin options.
func outputOptions(cfg *config.Resolved) output.Options {
	return output.Options{
		Output:    cfg.Output,
		Prefix:    cfg.Prefix,
		Radius:    cfg.Radius,
		Scalar:    cfg.Scalar,
		FontSize:  cfg.FontSize,
		Gradients: cfg.Gradients,
		Spacing:   cfg.Spacing,
		Noise:     cfg.Noise,
		Shadcn:    cfg.Shadcn,
		Utilities: cfg.Utilities,
	}
}

// loadConfig layers defaults, config file, environment and changed flags,
// validates the result and settles the primary colour.
func (o *rootOptions) loadConfig(ctx context.Context, logger hclog.Logger, flags *pflag.FlagSet) (*config.Resolved, error) {
	loaded, err := config.Load(config.LoadOptions{
		Path:  o.configPath,
		Flags: flags,
	})
	if err != nil {
		return nil, err
	}
	cfg, err := loaded.Resolve()
	if err != nil {
		return nil, err
	}

	if cfg.File != "" {
		logger.Debug("loaded config file", "path", cfg.File)
	}
	switch {
	case cfg.FromImage != "":
		primary, err := primaryFromImage(ctx, logger, cfg.FromImage, cfg.ImageTimeout)
		if err != nil {
			return nil, err
		}
		cfg.Primary = primary
	case cfg.Random:
		logger.Info("no color configured, using a random primary", "color", cfg.Primary.Hex())
	}
	return cfg, nil
}

// primaryFromImage extracts a primary colour from an image file, a random
// image in a directory, or a URL fetched within timeout.
func primaryFromImage(ctx context.Context, logger hclog.Logger, source string, timeout time.Duration) (colour.Colour, error) {
	path, err := image.ResolveImagePath(source)
	if err != nil {
		return colour.Colour{}, fmt.Errorf("image: %w", err)
	}
	img, err := image.NewSmartLoader().WithTimeout(timeout).Load(ctx, path)
	if err != nil {
		return colour.Colour{}, fmt.Errorf("image: %w", err)
	}
	primary, err := image.Primary(img)
	if err != nil {
		return colour.Colour{}, fmt.Errorf("image %s: %w", path, err)
	}
	logger.Info("extracted primary color from image", "path", path, "color", primary.Hex())
	return primary, nil
}
