package colour

import "math"

// Mode is a colour scheme appearance.
type Mode string

const (
	// ModeLight is the light appearance.
	ModeLight Mode = "light"
	// ModeDark is the dark appearance.
	ModeDark Mode = "dark"
)

// SemanticColours maps a palette onto design-system roles for one mode.
type SemanticColours struct {
	Mode Mode `json:"mode"`

	// Surface system.
	Surface                    Colour `json:"surface"`
	SurfaceForeground          Colour `json:"surfaceForeground"`
	SurfaceDim                 Colour `json:"surfaceDim"`
	SurfaceBright              Colour `json:"surfaceBright"`
	SurfaceContainer           Colour `json:"surfaceContainer"`
	SurfaceContainerForeground Colour `json:"surfaceContainerForeground"`
	SurfaceContainerHigh       Colour `json:"surfaceContainerHigh"`
	SurfaceContainerLow        Colour `json:"surfaceContainerLow"`

	Primary                    Colour `json:"primary"`
	PrimaryForeground          Colour `json:"primaryForeground"`
	PrimaryContainer           Colour `json:"primaryContainer"`
	PrimaryContainerForeground Colour `json:"primaryContainerForeground"`

	Secondary                    Colour `json:"secondary"`
	SecondaryForeground          Colour `json:"secondaryForeground"`
	SecondaryContainer           Colour `json:"secondaryContainer"`
	SecondaryContainerForeground Colour `json:"secondaryContainerForeground"`

	Tertiary                    Colour `json:"tertiary"`
	TertiaryForeground          Colour `json:"tertiaryForeground"`
	TertiaryContainer           Colour `json:"tertiaryContainer"`
	TertiaryContainerForeground Colour `json:"tertiaryContainerForeground"`

	Accent                    Colour `json:"accent"`
	AccentForeground          Colour `json:"accentForeground"`
	AccentContainer           Colour `json:"accentContainer"`
	AccentContainerForeground Colour `json:"accentContainerForeground"`

	Muted           Colour `json:"muted"`
	MutedForeground Colour `json:"mutedForeground"`
	MutedContainer  Colour `json:"mutedContainer"`

	Error                    Colour `json:"error"`
	ErrorForeground          Colour `json:"errorForeground"`
	ErrorContainer           Colour `json:"errorContainer"`
	ErrorContainerForeground Colour `json:"errorContainerForeground"`

	Outline        Colour `json:"outline"`
	OutlineVariant Colour `json:"outlineVariant"`

	// Inverse roles for tooltips and snackbars.
	InverseSurface           Colour `json:"inverseSurface"`
	InverseSurfaceForeground Colour `json:"inverseSurfaceForeground"`
	InversePrimary           Colour `json:"inversePrimary"`
}

// ForegroundPair is a background and the text colour chosen for it.
type ForegroundPair struct {
	Name       string
	Background Colour
	Foreground Colour
}

// ForegroundPairs lists every background/foreground pair in s, for contrast
// reporting.
func (s SemanticColours) ForegroundPairs() []ForegroundPair {
	return []ForegroundPair{
		{"surface", s.Surface, s.SurfaceForeground},
		{"surface-container", s.SurfaceContainer, s.SurfaceContainerForeground},
		{"primary", s.Primary, s.PrimaryForeground},
		{"primary-container", s.PrimaryContainer, s.PrimaryContainerForeground},
		{"secondary", s.Secondary, s.SecondaryForeground},
		{"secondary-container", s.SecondaryContainer, s.SecondaryContainerForeground},
		{"tertiary", s.Tertiary, s.TertiaryForeground},
		{"tertiary-container", s.TertiaryContainer, s.TertiaryContainerForeground},
		{"accent", s.Accent, s.AccentForeground},
		{"accent-container", s.AccentContainer, s.AccentContainerForeground},
		{"muted", s.Muted, s.MutedForeground},
		{"error", s.Error, s.ErrorForeground},
		{"error-container", s.ErrorContainer, s.ErrorContainerForeground},
		{"inverse-surface", s.InverseSurface, s.InverseSurfaceForeground},
	}
}

// SemanticPair holds the light and dark token sets.
type SemanticPair struct {
	Light SemanticColours `json:"light"`
	Dark  SemanticColours `json:"dark"`
}

// SemanticOptions tunes semantic derivation.
type SemanticOptions struct {
	// ContrastTarget is the ratio every foreground aims for. Zero means
	// DefaultContrastTarget.
	ContrastTarget float64
}

// GenerateSemanticColours derives both modes at the default contrast target.
func GenerateSemanticColours(p *FullPalette) SemanticPair {
	return GenerateSemanticColoursWithOptions(p, SemanticOptions{})
}

// GenerateSemanticColoursWithOptions derives both modes.
func GenerateSemanticColoursWithOptions(p *FullPalette, opts SemanticOptions) SemanticPair {
	return SemanticPair{
		Light: GenerateSemanticColoursForMode(p, ModeLight, opts),
		Dark:  GenerateSemanticColoursForMode(p, ModeDark, opts),
	}
}

// GenerateSemanticColoursForMode derives the tokens for a single mode.
// A palette without harmony colours is derived from its harmony primary
// alone.
func GenerateSemanticColoursForMode(p *FullPalette, mode Mode, opts SemanticOptions) SemanticColours {
	if len(p.Palettes) == 0 {
		p = &FullPalette{
			Harmony:     p.Harmony,
			Palettes:    []Variations{GenerateVariations(p.Harmony.Primary)},
			TargetRatio: p.TargetRatio,
		}
	}
	d := semanticDeriver{target: opts.ContrastTarget}
	if d.target <= 0 {
		d.target = DefaultContrastTarget
	}
	if mode == ModeDark {
		return d.dark(p)
	}
	return d.light(p)
}

type semanticDeriver struct {
	target float64
}

func (d semanticDeriver) fg(bg Colour) Colour {
	return FindAccessibleTextColour(bg, d.target, DefaultMaxIterations)
}

// rampAt returns ramp[i] or the result of fallback when the ramp is too short.
func rampAt(ramp []Colour, i int, fallback func() Colour) Colour {
	if i >= 0 && i < len(ramp) {
		return ramp[i]
	}
	return fallback()
}

// SelectAccent returns the index of the harmony colour furthest in hue from
// the primary. Ties keep the earliest index; a single colour palette yields 0.
func SelectAccent(p *FullPalette) int {
	if len(p.Palettes) < 2 {
		return 0
	}
	primaryHue := p.Palettes[0].Base.HSL().H
	best, bestDist := 1, -1.0
	for i := 1; i < len(p.Palettes); i++ {
		dist := HueDistance(primaryHue, p.Palettes[i].Base.HSL().H)
		if dist > bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}

// secondaryVariations falls back to the primary when the harmony has one colour.
func secondaryVariations(p *FullPalette) Variations {
	if len(p.Palettes) >= 2 {
		return p.Palettes[1]
	}
	return p.Palettes[0]
}

// tertiaryVariations returns harmony colour 2, or a pseudo ramp around the
// primary rotated by 120 degrees.
func tertiaryVariations(p *FullPalette) Variations {
	if len(p.Palettes) >= 3 {
		return p.Palettes[2]
	}
	rotated := p.Palettes[0].Base.Rotate(120)
	return Variations{
		Base: rotated,
		Tints: []Colour{
			rotated.Lighten(10), rotated.Lighten(20), rotated.Lighten(30),
			rotated.Lighten(40), rotated.Lighten(45),
		},
		Shades: []Colour{
			rotated.Darken(10), rotated.Darken(20), rotated.Darken(30),
			rotated.Darken(40), rotated.Darken(45),
		},
		Tones: []Colour{
			rotated.Desaturate(20), rotated.Desaturate(40),
			rotated.Desaturate(60), rotated.Desaturate(80),
		},
	}
}

// ErrorColour synthesises the light mode error colour. It sits at hue 0
// unless the primary is itself reddish, in which case it moves to 15.
func ErrorColour(primaryHue float64) Colour {
	h := NormaliseHue(primaryHue)
	errorHue := 0.0
	if h < 40 || h > 340 {
		errorHue = 15
	}
	return NewHSL(errorHue, 85, 45)
}

func lightContainer(v Variations) Colour {
	return rampAt(v.Tints, 2, func() Colour { return v.Base.Lighten(30) }).Desaturate(10)
}

func darkContainer(v Variations) Colour {
	return rampAt(v.Shades, 3, func() Colour { return v.Base.Darken(40) }).Desaturate(30)
}

func (d semanticDeriver) light(p *FullPalette) SemanticColours {
	pv := p.Palettes[0]
	primary := pv.Base
	hsl := primary.HSL()

	secondary := secondaryVariations(p)
	tertiary := tertiaryVariations(p)
	accent := p.Palettes[SelectAccent(p)]

	errColour := ErrorColour(hsl.H)
	errContainer := errColour.Lighten(40).Desaturate(40)

	lightest := rampAt(pv.Tints, 4, func() Colour { return primary.Lighten(45) })
	nextLightest := rampAt(pv.Tints, 3, func() Colour { return primary.Lighten(35) })

	surfaceContainer := lightest.Desaturate(15)
	muted := rampAt(pv.Tones, 1, func() Colour { return primary.Desaturate(40) })
	inverseSurface := rampAt(pv.Shades, 3, func() Colour { return primary.Darken(40) })

	s := SemanticColours{
		Mode: ModeLight,

		Surface:                    lightest,
		SurfaceForeground:          d.fg(lightest),
		SurfaceDim:                 nextLightest,
		SurfaceBright:              NewHSL(hsl.H, math.Min(hsl.S, 10), 99),
		SurfaceContainer:           surfaceContainer,
		SurfaceContainerForeground: d.fg(surfaceContainer),
		SurfaceContainerHigh:       nextLightest.Desaturate(10),
		SurfaceContainerLow:        lightest.Desaturate(25),

		Primary:   primary,
		Secondary: secondary.Base,
		Tertiary:  tertiary.Base,
		Accent:    accent.Base,

		PrimaryContainer:   lightContainer(pv),
		SecondaryContainer: lightContainer(secondary),
		TertiaryContainer:  lightContainer(tertiary),
		AccentContainer:    lightContainer(accent),

		Muted:           muted,
		MutedForeground: d.fg(muted),
		MutedContainer:  rampAt(pv.Tones, 2, func() Colour { return primary.Desaturate(60) }),

		Error:                    errColour,
		ErrorForeground:          d.fg(errColour),
		ErrorContainer:           errContainer,
		ErrorContainerForeground: d.fg(errContainer),

		Outline:        NewHSL(hsl.H, 10, 55),
		OutlineVariant: NewHSL(hsl.H, 8, 80),

		InverseSurface:           inverseSurface,
		InverseSurfaceForeground: d.fg(inverseSurface),
		InversePrimary:           rampAt(pv.Tints, 1, func() Colour { return primary.Lighten(20) }),
	}
	d.fillRoleForegrounds(&s)
	return s
}

func (d semanticDeriver) dark(p *FullPalette) SemanticColours {
	pv := p.Palettes[0]
	primary := pv.Base
	hsl := primary.HSL()

	secondary := secondaryVariations(p)
	tertiary := tertiaryVariations(p)
	accent := p.Palettes[SelectAccent(p)]

	errColour := ErrorColour(hsl.H).Lighten(10).Saturate(10)
	errContainer := errColour.Darken(25).Desaturate(30)

	// Dark surfaces sit in a fixed low lightness band rather than reusing shades.
	surface := NewHSL(hsl.H, math.Min(20, hsl.S*0.3), 10)
	surfaceContainer := NewHSL(hsl.H, math.Min(15, hsl.S*0.25), 14)
	muted := NewHSL(hsl.H, math.Min(15, hsl.S*0.3), 22)
	inverseSurface := rampAt(pv.Tints, 3, func() Colour { return primary.Lighten(35) })

	s := SemanticColours{
		Mode: ModeDark,

		Surface:                    surface,
		SurfaceForeground:          d.fg(surface),
		SurfaceDim:                 NewHSL(hsl.H, math.Min(15, hsl.S*0.2), 6),
		SurfaceBright:              NewHSL(hsl.H, math.Min(20, hsl.S*0.3), 22),
		SurfaceContainer:           surfaceContainer,
		SurfaceContainerForeground: d.fg(surfaceContainer),
		SurfaceContainerHigh:       NewHSL(hsl.H, math.Min(15, hsl.S*0.25), 18),
		SurfaceContainerLow:        NewHSL(hsl.H, math.Min(10, hsl.S*0.15), 8),

		Primary:   primary.Lighten(10),
		Secondary: secondary.Base.Lighten(10),
		Tertiary:  tertiary.Base.Lighten(10),
		Accent:    accent.Base.Lighten(10),

		PrimaryContainer:   darkContainer(pv),
		SecondaryContainer: darkContainer(secondary),
		TertiaryContainer:  darkContainer(tertiary),
		AccentContainer:    darkContainer(accent),

		Muted:           muted,
		MutedForeground: d.fg(muted),
		MutedContainer:  NewHSL(hsl.H, math.Min(12, hsl.S*0.2), 18),

		Error:                    errColour,
		ErrorForeground:          d.fg(errColour),
		ErrorContainer:           errContainer,
		ErrorContainerForeground: d.fg(errContainer),

		Outline:        NewHSL(hsl.H, 10, 45),
		OutlineVariant: NewHSL(hsl.H, 8, 30),

		InverseSurface:           inverseSurface,
		InverseSurfaceForeground: d.fg(inverseSurface),
		InversePrimary:           rampAt(pv.Shades, 1, func() Colour { return primary.Darken(20) }),
	}
	d.fillRoleForegrounds(&s)
	return s
}

// fillRoleForegrounds sets the foregrounds of the four colour roles and their
// containers from the already chosen backgrounds.
func (d semanticDeriver) fillRoleForegrounds(s *SemanticColours) {
	s.PrimaryForeground = d.fg(s.Primary)
	s.PrimaryContainerForeground = d.fg(s.PrimaryContainer)
	s.SecondaryForeground = d.fg(s.Secondary)
	s.SecondaryContainerForeground = d.fg(s.SecondaryContainer)
	s.TertiaryForeground = d.fg(s.Tertiary)
	s.TertiaryContainerForeground = d.fg(s.TertiaryContainer)
	s.AccentForeground = d.fg(s.Accent)
	s.AccentContainerForeground = d.fg(s.AccentContainer)
}

// Tokens returns the semantic variable names (without the leading "--") and
// their colours in stylesheet order.
func (s SemanticColours) Tokens() []NamedColour {
	return []NamedColour{
		{"surface", s.Surface},
		{"surface-foreground", s.SurfaceForeground},
		{"surface-dim", s.SurfaceDim},
		{"surface-bright", s.SurfaceBright},
		{"surface-container", s.SurfaceContainer},
		{"surface-container-foreground", s.SurfaceContainerForeground},
		{"surface-container-high", s.SurfaceContainerHigh},
		{"surface-container-low", s.SurfaceContainerLow},
		{"primary", s.Primary},
		{"primary-foreground", s.PrimaryForeground},
		{"primary-container", s.PrimaryContainer},
		{"primary-container-foreground", s.PrimaryContainerForeground},
		{"secondary", s.Secondary},
		{"secondary-foreground", s.SecondaryForeground},
		{"secondary-container", s.SecondaryContainer},
		{"secondary-container-foreground", s.SecondaryContainerForeground},
		{"tertiary", s.Tertiary},
		{"tertiary-foreground", s.TertiaryForeground},
		{"tertiary-container", s.TertiaryContainer},
		{"tertiary-container-foreground", s.TertiaryContainerForeground},
		{"accent", s.Accent},
		{"accent-foreground", s.AccentForeground},
		{"accent-container", s.AccentContainer},
		{"accent-container-foreground", s.AccentContainerForeground},
		{"muted", s.Muted},
		{"muted-foreground", s.MutedForeground},
		{"muted-container", s.MutedContainer},
		{"error", s.Error},
		{"error-foreground", s.ErrorForeground},
		{"error-container", s.ErrorContainer},
		{"error-container-foreground", s.ErrorContainerForeground},
		{"outline", s.Outline},
		{"outline-variant", s.OutlineVariant},
		{"inverse-surface", s.InverseSurface},
		{"inverse-surface-foreground", s.InverseSurfaceForeground},
		{"inverse-primary", s.InversePrimary},
	}
}
