package colour

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultTolerance is the per-component HSL tolerance used by Equal callers
// that have no stronger opinion.
const DefaultTolerance = 1.0

// Colour is an immutable colour value stored as HSL.
// All transforms return a new Colour; the receiver is never modified.
type Colour struct {
	hsl HSL
}

// Compile-time check that Colour can be handed to image code.
var _ color.Color = Colour{}

// FromHSL creates a Colour from an HSL value. Components are stored as given.
func FromHSL(hsl HSL) Colour {
	return Colour{hsl: hsl}
}

// FromRGB creates a Colour from an RGB value.
func FromRGB(rgb RGB) Colour {
	return Colour{hsl: RGBToHSL(rgb)}
}

// NewHSL creates an opaque Colour from hue, saturation and lightness.
func NewHSL(h, s, l float64) Colour {
	return Colour{hsl: HSL{H: h, S: s, L: l, A: 1}}
}

// NewRGB creates an opaque Colour from 8-bit channels.
func NewRGB(r, g, b int) Colour {
	return FromRGB(RGB{R: r, G: g, B: b, A: 1})
}

// FromColorful converts a go-colorful colour into a Colour.
// The colour is clamped into gamut first.
func FromColorful(c colorful.Color) Colour {
	r, g, b := c.Clamped().RGB255()
	return NewRGB(int(r), int(g), int(b))
}

// HSL returns a copy of the underlying HSL components.
func (c Colour) HSL() HSL {
	return c.hsl
}

// RGB returns the colour as rounded 8-bit channels.
func (c Colour) RGB() RGB {
	return HSLToRGB(c.hsl)
}

// Hex returns the lowercase hex form.
func (c Colour) Hex() string {
	return RGBToHex(c.RGB())
}

// OKLCH returns the colour in OKLCH space.
func (c Colour) OKLCH() OKLCH {
	return HSLToOKLCH(c.hsl)
}

// Luminance returns the WCAG relative luminance in [0, 1].
func (c Colour) Luminance() float64 {
	return RelativeLuminance(c.RGB())
}

// Alpha returns the alpha channel.
func (c Colour) Alpha() float64 {
	return c.hsl.A
}

// Lighten increases lightness by amount percentage points, clamped to [0, 100].
func (c Colour) Lighten(amount float64) Colour {
	hsl := c.hsl
	hsl.L = clampPercent(hsl.L + amount)
	return Colour{hsl: hsl}
}

// Darken decreases lightness by amount percentage points, clamped to [0, 100].
func (c Colour) Darken(amount float64) Colour {
	hsl := c.hsl
	hsl.L = clampPercent(hsl.L - amount)
	return Colour{hsl: hsl}
}

// Saturate increases saturation by amount percentage points, clamped to [0, 100].
func (c Colour) Saturate(amount float64) Colour {
	hsl := c.hsl
	hsl.S = clampPercent(hsl.S + amount)
	return Colour{hsl: hsl}
}

// Desaturate decreases saturation by amount percentage points, clamped to [0, 100].
func (c Colour) Desaturate(amount float64) Colour {
	hsl := c.hsl
	hsl.S = clampPercent(hsl.S - amount)
	return Colour{hsl: hsl}
}

// Rotate shifts the hue by degrees (which may be negative).
func (c Colour) Rotate(degrees float64) Colour {
	hsl := c.hsl
	hsl.H = NormaliseHue(hsl.H + degrees)
	return Colour{hsl: hsl}
}

// WithAlpha returns the colour with its alpha replaced, clamped to [0, 1].
func (c Colour) WithAlpha(alpha float64) Colour {
	hsl := c.hsl
	hsl.A = math.Max(0, math.Min(1, alpha))
	return Colour{hsl: hsl}
}

// WithLightness returns the colour with its lightness replaced.
func (c Colour) WithLightness(l float64) Colour {
	hsl := c.hsl
	hsl.L = clampPercent(l)
	return Colour{hsl: hsl}
}

// ToHex formats the colour as a hex string.
func (c Colour) ToHex() string {
	return c.Hex()
}

// ToRGB formats the colour as a CSS rgb() or rgba() string.
func (c Colour) ToRGB() string {
	return c.RGB().String()
}

// ToHSL formats the colour as a CSS hsl() or hsla() string with rounded components.
func (c Colour) ToHSL() string {
	h := math.Round(c.hsl.H)
	s := math.Round(c.hsl.S)
	l := math.Round(c.hsl.L)
	if c.hsl.A < 1 {
		return fmt.Sprintf("hsla(%.0f, %.0f%%, %.0f%%, %s)", h, s, l, formatFloat(c.hsl.A))
	}
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h, s, l)
}

// ToOKLCH formats the colour as a CSS oklch() string.
func (c Colour) ToOKLCH() string {
	return FormatOKLCH(c.OKLCH())
}

// RGBValues returns space-separated channels ("r g b") for CSS custom
// properties consumed as rgb(var(--x)).
func (c Colour) RGBValues() string {
	rgb := c.RGB()
	return fmt.Sprintf("%d %d %d", rgb.R, rgb.G, rgb.B)
}

// String returns the hex form.
func (c Colour) String() string {
	return c.Hex()
}

// Equal reports whether every HSL component of c and other lies within
// tolerance and their alpha values differ by at most 0.01.
func (c Colour) Equal(other Colour, tolerance float64) bool {
	a, b := c.hsl, other.hsl
	return math.Abs(a.H-b.H) <= tolerance &&
		math.Abs(a.S-b.S) <= tolerance &&
		math.Abs(a.L-b.L) <= tolerance &&
		math.Abs(a.A-b.A) <= 0.01
}

// RGBA implements color.Color with alpha-premultiplied 16-bit channels.
func (c Colour) RGBA() (r, g, b, a uint32) {
	rgb := c.RGB()
	alpha := uint8(math.Round(math.Max(0, math.Min(1, rgb.A)) * 255))
	return color.NRGBA{
		R: uint8(clampByte(rgb.R)),
		G: uint8(clampByte(rgb.G)),
		B: uint8(clampByte(rgb.B)),
		A: alpha,
	}.RGBA()
}

// Colorful converts the colour into a go-colorful value, discarding alpha.
func (c Colour) Colorful() colorful.Color {
	rgb := c.RGB()
	return colorful.Color{
		R: float64(clampByte(rgb.R)) / 255,
		G: float64(clampByte(rgb.G)) / 255,
		B: float64(clampByte(rgb.B)) / 255,
	}
}

// MarshalJSON encodes the colour as its hex string.
func (c Colour) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Hex())
}

// UnmarshalJSON accepts any string form understood by Parse.
func (c *Colour) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("colour must be a string: %w", err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
