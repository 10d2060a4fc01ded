package colour

import (
	"fmt"
	"strconv"
	"strings"
)

// VariationKind identifies which ramp a palette entry belongs to.
type VariationKind int

const (
	// VariationBase is the harmony colour itself.
	VariationBase VariationKind = iota
	// VariationTint is a lighter step (l1..).
	VariationTint
	// VariationShade is a darker step (d1..).
	VariationShade
	// VariationTone is a desaturated step (g1..).
	VariationTone
)

var variationPrefix = map[VariationKind]string{
	VariationTint:  "l",
	VariationShade: "d",
	VariationTone:  "g",
}

// TextColourKey addresses one background in a full palette.
// Step is 1-based and ignored for VariationBase.
type TextColourKey struct {
	Index int
	Kind  VariationKind
	Step  int
}

// String encodes the key as "c{index}-{base|lN|dN|gN}".
func (k TextColourKey) String() string {
	if k.Kind == VariationBase {
		return fmt.Sprintf("c%d-base", k.Index)
	}
	return fmt.Sprintf("c%d-%s%d", k.Index, variationPrefix[k.Kind], k.Step)
}

// ParseTextColourKey decodes the string form produced by TextColourKey.String.
func ParseTextColourKey(s string) (TextColourKey, error) {
	head, variation, ok := strings.Cut(s, "-")
	if !ok || !strings.HasPrefix(head, "c") {
		return TextColourKey{}, fmt.Errorf("invalid text colour key %q", s)
	}
	index, err := strconv.Atoi(head[1:])
	if err != nil || index < 0 {
		return TextColourKey{}, fmt.Errorf("invalid text colour key %q: bad index", s)
	}
	if variation == "base" {
		return TextColourKey{Index: index, Kind: VariationBase}, nil
	}
	if len(variation) < 2 {
		return TextColourKey{}, fmt.Errorf("invalid text colour key %q: bad variation", s)
	}

	var kind VariationKind
	switch variation[0] {
	case 'l':
		kind = VariationTint
	case 'd':
		kind = VariationShade
	case 'g':
		kind = VariationTone
	default:
		return TextColourKey{}, fmt.Errorf("invalid text colour key %q: bad variation", s)
	}
	step, err := strconv.Atoi(variation[1:])
	if err != nil || step < 1 {
		return TextColourKey{}, fmt.Errorf("invalid text colour key %q: bad step", s)
	}
	return TextColourKey{Index: index, Kind: kind, Step: step}, nil
}

// FullPalette is a harmony with ramps for every colour and an accessible text
// colour for every ramp entry.
type FullPalette struct {
	Harmony     HarmonyResult
	Palettes    []Variations
	TargetRatio float64

	keys        []TextColourKey
	textColours map[TextColourKey]Colour
}

// GenerateFullPalette builds a full palette at the default AAA target.
func GenerateFullPalette(primary Colour, h Harmony) (*FullPalette, error) {
	result, err := GenerateHarmony(primary, h)
	if err != nil {
		return nil, err
	}
	return GenerateFullPaletteFromHarmony(result, DefaultContrastTarget), nil
}

// GenerateFullPaletteFromHarmony builds ramps and text colours for an
// existing harmony result.
func GenerateFullPaletteFromHarmony(result HarmonyResult, targetRatio float64) *FullPalette {
	p := &FullPalette{
		Harmony:     result,
		Palettes:    make([]Variations, 0, len(result.Colours)),
		TargetRatio: targetRatio,
		textColours: make(map[TextColourKey]Colour),
	}

	for i, c := range result.Colours {
		v := GenerateVariations(c)
		p.Palettes = append(p.Palettes, v)

		p.add(TextColourKey{Index: i, Kind: VariationBase}, v.Base)
		for step, tint := range v.Tints {
			p.add(TextColourKey{Index: i, Kind: VariationTint, Step: step + 1}, tint)
		}
		for step, shade := range v.Shades {
			p.add(TextColourKey{Index: i, Kind: VariationShade, Step: step + 1}, shade)
		}
		for step, tone := range v.Tones {
			p.add(TextColourKey{Index: i, Kind: VariationTone, Step: step + 1}, tone)
		}
	}

	return p
}

func (p *FullPalette) add(key TextColourKey, bg Colour) {
	p.keys = append(p.keys, key)
	p.textColours[key] = FindAccessibleTextColour(bg, p.TargetRatio, DefaultMaxIterations)
}

// Len returns the number of text colour entries.
func (p *FullPalette) Len() int {
	return len(p.textColours)
}

// Primary returns the first harmony colour.
func (p *FullPalette) Primary() Colour {
	return p.Harmony.Primary
}

// Keys returns the text colour keys in generation order: per harmony colour,
// base then tints, shades and tones.
func (p *FullPalette) Keys() []TextColourKey {
	out := make([]TextColourKey, len(p.keys))
	copy(out, p.keys)
	return out
}

// Background returns the ramp colour addressed by key.
func (p *FullPalette) Background(key TextColourKey) (Colour, bool) {
	if key.Index < 0 || key.Index >= len(p.Palettes) {
		return Colour{}, false
	}
	v := p.Palettes[key.Index]
	var ramp []Colour
	switch key.Kind {
	case VariationBase:
		return v.Base, true
	case VariationTint:
		ramp = v.Tints
	case VariationShade:
		ramp = v.Shades
	case VariationTone:
		ramp = v.Tones
	}
	if key.Step < 1 || key.Step > len(ramp) {
		return Colour{}, false
	}
	return ramp[key.Step-1], true
}

// TextColour returns the accessible text colour for key.
func (p *FullPalette) TextColour(key TextColourKey) (Colour, bool) {
	c, ok := p.textColours[key]
	return c, ok
}

// TextColourByName looks up a text colour by its string key, e.g. "c0-l3".
func (p *FullPalette) TextColourByName(name string) (Colour, bool) {
	key, err := ParseTextColourKey(name)
	if err != nil {
		return Colour{}, false
	}
	return p.TextColour(key)
}

// TextColourMap returns the text colours keyed by their string encoding.
func (p *FullPalette) TextColourMap() map[string]Colour {
	out := make(map[string]Colour, len(p.textColours))
	for k, c := range p.textColours {
		out[k.String()] = c
	}
	return out
}

var harmonyNames = []string{"primary", "secondary", "tertiary", "quaternary"}

// HarmonyName returns the role name of the harmony colour at index:
// primary, secondary, tertiary, quaternary, then color-N (1-based).
func HarmonyName(index int) string {
	if index >= 0 && index < len(harmonyNames) {
		return harmonyNames[index]
	}
	return fmt.Sprintf("color-%d", index+1)
}
