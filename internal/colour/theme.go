package colour

// Theme bundles everything derived from one primary colour and harmony.
type Theme struct {
	Primary     Colour
	Harmony     Harmony
	Palette     *FullPalette
	Semantic    SemanticPair
	Shadcn      ShadcnPair
	Backgrounds Backgrounds
}

// ThemeOptions tunes theme generation.
type ThemeOptions struct {
	// ContrastTarget is the ratio foregrounds aim for. Zero means
	// DefaultContrastTarget.
	ContrastTarget float64
}

// GenerateTheme derives a full theme. It fails only for an unknown harmony.
func GenerateTheme(primary Colour, h Harmony, opts ThemeOptions) (*Theme, error) {
	target := opts.ContrastTarget
	if target <= 0 {
		target = DefaultContrastTarget
	}

	result, err := GenerateHarmony(primary, h)
	if err != nil {
		return nil, err
	}
	palette := GenerateFullPaletteFromHarmony(result, target)
	semantic := GenerateSemanticColoursWithOptions(palette, SemanticOptions{ContrastTarget: target})

	return &Theme{
		Primary:     primary,
		Harmony:     h,
		Palette:     palette,
		Semantic:    semantic,
		Shadcn:      GenerateShadcn(palette, semantic),
		Backgrounds: GenerateBackgrounds(primary),
	}, nil
}
