package colour

import (
	"math"
	"slices"
	"strings"
)

// Harmony represents a colour harmony strategy.
type Harmony string

const (
	// HarmonyComplementary pairs the primary with its opposite.
	HarmonyComplementary Harmony = "complementary"

	// HarmonyAnalogous uses the primary and its neighbours 30° either side.
	HarmonyAnalogous Harmony = "analogous"

	// HarmonyTriadic spaces three colours 120° apart.
	HarmonyTriadic Harmony = "triadic"

	// HarmonySplitComplementary uses the two hues adjacent to the complement.
	HarmonySplitComplementary Harmony = "split-complementary"

	// HarmonyPiroku is a four colour scheme with a non-uniform angular offset.
	HarmonyPiroku Harmony = "piroku"

	// HarmonySquare spaces four colours 90° apart.
	HarmonySquare Harmony = "square"

	// HarmonyRectangle forms two complementary pairs 60° apart.
	HarmonyRectangle Harmony = "rectangle"

	// HarmonyAurelian steps by the golden angle (137.5°).
	HarmonyAurelian Harmony = "aurelian"

	// HarmonyBiPolar pairs the primary with the hue 90° away.
	HarmonyBiPolar Harmony = "bi-polar"

	// HarmonyRetrograde is a reversed triadic arrangement.
	HarmonyRetrograde Harmony = "retrograde"

	// HarmonyCustom tags results from GenerateCustomHarmony. It is not
	// accepted by GenerateHarmony.
	HarmonyCustom Harmony = "custom"

	// DefaultHarmony is used when none is configured.
	DefaultHarmony = HarmonyAnalogous
)

// OffsetFunc returns the hue offset in degrees for the colour at index i.
type OffsetFunc func(i int) float64

// HarmonyDefinition describes how many colours a harmony produces and the
// hue offset of each one relative to the primary.
type HarmonyDefinition struct {
	Count  int
	Offset OffsetFunc
}

// HarmonyResult is the output of a harmony generator. Colours[i] has the
// primary hue shifted by the harmony's offset for i, so Colours[0] is not the
// primary itself when that offset is non-zero (analogous).
type HarmonyResult struct {
	Type    Harmony
	Primary Colour
	Colours []Colour
}

// HarmonyMeta is display metadata for a harmony.
type HarmonyMeta struct {
	Type        Harmony `json:"type"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ColourCount int     `json:"colorCount"`
}

var harmonyDefinitions = map[Harmony]HarmonyDefinition{
	HarmonyComplementary: {Count: 2, Offset: func(i int) float64 { return float64(i) * 180 }},
	HarmonyAnalogous:     {Count: 3, Offset: func(i int) float64 { return float64(i-1) * 30 }},
	HarmonyTriadic:       {Count: 3, Offset: func(i int) float64 { return float64(i) * 120 }},
	HarmonySplitComplementary: {Count: 3, Offset: func(i int) float64 {
		switch i {
		case 0:
			return 0
		case 1:
			return 150
		default:
			return 210
		}
	}},
	// The piroku offsets are irregular on purpose: ((i*pi)/6)*90.
	HarmonyPiroku:    {Count: 4, Offset: func(i int) float64 { return (float64(i) * math.Pi / 6) * 90 }},
	HarmonySquare:    {Count: 4, Offset: func(i int) float64 { return float64(i) * 90 }},
	HarmonyRectangle: {Count: 4, Offset: func(i int) float64 { return float64(i%2)*60 + float64(i/2)*180 }},
	HarmonyAurelian:  {Count: 3, Offset: func(i int) float64 { return float64(i) * 137.5 }},
	HarmonyBiPolar:   {Count: 2, Offset: func(i int) float64 { return float64(i) * 90 }},
	HarmonyRetrograde: {Count: 3, Offset: func(i int) float64 {
		switch i {
		case 0:
			return 0
		case 1:
			return -120
		default:
			return 120
		}
	}},
}

var harmonyMeta = []HarmonyMeta{
	{HarmonyComplementary, "Complementary", "Two colors opposite on the color wheel. High contrast, vibrant.", 2},
	{HarmonyAnalogous, "Analogous", "Three adjacent colors. Harmonious, serene feel.", 3},
	{HarmonyTriadic, "Triadic", "Three colors equally spaced (120°). Balanced, vibrant.", 3},
	{HarmonySplitComplementary, "Split-Complementary", "Base color plus two adjacent to its complement. Less tension than complementary.", 3},
	{HarmonyPiroku, "Piroku", "Four colors based on a unique angular offset. Dynamic and intriguing.", 4},
	{HarmonySquare, "Square", "Four colors equally spaced (90°). Bold, dynamic.", 4},
	{HarmonyRectangle, "Rectangle", "Two complementary pairs. Versatile, balanced.", 4},
	{HarmonyAurelian, "Aurelian", "Based on the golden angle (137.5°). Naturally harmonious.", 3},
	{HarmonyBiPolar, "Bi-Polar", "Two dominant colors at 90°. Strong, focused.", 2},
	{HarmonyRetrograde, "Retrograde", "Reverse triadic arrangement. Unique perspective.", 3},
}

// Harmonies returns every built-in harmony in display order.
func Harmonies() []Harmony {
	out := make([]Harmony, len(harmonyMeta))
	for i, m := range harmonyMeta {
		out[i] = m.Type
	}
	return out
}

// IsValidHarmony reports whether h names a built-in harmony.
func IsValidHarmony(h Harmony) bool {
	_, ok := harmonyDefinitions[h]
	return ok
}

// ParseHarmony resolves a harmony name, case-insensitively.
// "tetradic" is accepted as an alias for piroku.
func ParseHarmony(name string) (Harmony, error) {
	h := Harmony(strings.ToLower(strings.TrimSpace(name)))
	if h == "tetradic" {
		h = HarmonyPiroku
	}
	if !IsValidHarmony(h) {
		return "", &UnknownHarmonyError{Name: name}
	}
	return h, nil
}

// Definition returns the count and offset function for h.
func (h Harmony) Definition() (HarmonyDefinition, bool) {
	def, ok := harmonyDefinitions[h]
	return def, ok
}

// HarmonyInfo returns display metadata for h.
func HarmonyInfo(h Harmony) (HarmonyMeta, bool) {
	i := slices.IndexFunc(harmonyMeta, func(m HarmonyMeta) bool { return m.Type == h })
	if i < 0 {
		return HarmonyMeta{}, false
	}
	return harmonyMeta[i], true
}

// AllHarmonyInfo returns metadata for every built-in harmony.
func AllHarmonyInfo() []HarmonyMeta {
	return slices.Clone(harmonyMeta)
}

// NormaliseHue maps any angle into [0, 360).
func NormaliseHue(h float64) float64 {
	n := math.Mod(math.Mod(h, 360)+360, 360)
	if n >= 360 {
		// math.Mod of a tiny negative can round up to exactly 360.
		n = 0
	}
	return n
}

// GenerateHarmony derives the colours of a named harmony from primary.
// Every colour keeps the primary's saturation, lightness and alpha.
func GenerateHarmony(primary Colour, h Harmony) (HarmonyResult, error) {
	def, ok := harmonyDefinitions[h]
	if !ok {
		return HarmonyResult{}, &UnknownHarmonyError{Name: string(h)}
	}
	return HarmonyResult{
		Type:    h,
		Primary: primary,
		Colours: coloursFromOffsets(primary, def.Count, def.Offset),
	}, nil
}

// GenerateCustomHarmony derives count colours using a caller supplied offset
// function. A count below 1 yields no colours.
func GenerateCustomHarmony(primary Colour, count int, offset OffsetFunc) HarmonyResult {
	return HarmonyResult{
		Type:    HarmonyCustom,
		Primary: primary,
		Colours: coloursFromOffsets(primary, count, offset),
	}
}

func coloursFromOffsets(primary Colour, count int, offset OffsetFunc) []Colour {
	if count < 1 {
		return []Colour{}
	}
	base := primary.HSL()
	colours := make([]Colour, count)
	for i := range colours {
		hsl := base
		hsl.H = NormaliseHue(base.H + offset(i))
		colours[i] = FromHSL(hsl)
	}
	return colours
}
