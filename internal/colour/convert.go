package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB represents a colour in RGB format.
// Channels are nominally 0-255 and alpha 0-1; out of range values are carried
// through conversions untouched.
type RGB struct {
	R int     `json:"r"`
	G int     `json:"g"`
	B int     `json:"b"`
	A float64 `json:"a"`
}

// String returns the RGB colour as a CSS rgb()/rgba() string.
func (rgb RGB) String() string {
	if rgb.A < 1 {
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", rgb.R, rgb.G, rgb.B, formatFloat(rgb.A))
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return RGBToHex(rgb)
}

// HSL represents a colour in HSL format.
// Hue is in degrees (0-360), saturation and lightness are percentages (0-100)
// and alpha is 0-1.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
	A float64 `json:"a"`
}

// OKLCH represents a colour in the OKLCH space.
// L is 0-1, C is chroma (typically 0-0.4), H is hue in degrees (0-360).
type OKLCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
	A float64 `json:"a"`
}

// String formats the OKLCH value as a CSS oklch() function.
func (o OKLCH) String() string {
	return FormatOKLCH(o)
}

// HexToRGB converts a hex string to RGB.
// Accepts 3, 6 and 8 digit forms with or without the leading '#'. Three digit
// values have each channel doubled; the trailing byte of an eight digit value
// is alpha. Input must already be validated; malformed digits decode as zero.
func HexToRGB(hex string) RGB {
	clean := strings.TrimPrefix(hex, "#")

	if len(clean) == 3 {
		var b strings.Builder
		for _, c := range clean {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		clean = b.String()
	}

	rgb := RGB{
		R: hexByte(clean, 0),
		G: hexByte(clean, 2),
		B: hexByte(clean, 4),
		A: 1,
	}
	if len(clean) == 8 {
		rgb.A = float64(hexByte(clean, 6)) / 255
	}
	return rgb
}

func hexByte(s string, offset int) int {
	if len(s) < offset+2 {
		return 0
	}
	v, err := strconv.ParseUint(s[offset:offset+2], 16, 8)
	if err != nil {
		return 0
	}
	return int(v)
}

// RGBToHex converts RGB to a lowercase hex string.
// The alpha byte is appended only when alpha is below 1. Channels are clamped
// into 0-255 so the result is always well formed.
func RGBToHex(rgb RGB) string {
	hex := fmt.Sprintf("#%02x%02x%02x", clampByte(rgb.R), clampByte(rgb.G), clampByte(rgb.B))
	if rgb.A < 1 {
		hex += fmt.Sprintf("%02x", clampByte(int(math.Round(rgb.A*255))))
	}
	return hex
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// RGBToHSL converts RGB to HSL.
// Achromatic input (max == min) yields hue 0 and saturation 0.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	l := (maxVal + minVal) / 2.0

	if maxVal == minVal {
		return HSL{H: 0, S: 0, L: l * 100, A: rgb.A}
	}

	d := maxVal - minVal
	var s float64
	if l > 0.5 {
		s = d / (2.0 - maxVal - minVal)
	} else {
		s = d / (maxVal + minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}

	return HSL{
		H: h * 60,
		S: s * 100,
		L: l * 100,
		A: rgb.A,
	}
}

// HSLToRGB converts HSL to RGB, rounding each channel to the nearest integer.
func HSLToRGB(hsl HSL) RGB {
	h := hsl.H / 360
	s := hsl.S / 100
	l := hsl.L / 100

	if s == 0 {
		// Achromatic (grey).
		v := int(math.Round(l * 255))
		return RGB{R: v, G: v, B: v, A: hsl.A}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: int(math.Round(hueToRGB(p, q, h+1.0/3) * 255)),
		G: int(math.Round(hueToRGB(p, q, h) * 255)),
		B: int(math.Round(hueToRGB(p, q, h-1.0/3) * 255)),
		A: hsl.A,
	}
}

// hueToRGB is a helper for HSL to RGB conversion. t is a fraction of a turn.
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// HexToHSL converts a hex string directly to HSL.
func HexToHSL(hex string) HSL {
	return RGBToHSL(HexToRGB(hex))
}

// HSLToHex converts HSL directly to a hex string.
func HSLToHex(hsl HSL) string {
	return RGBToHex(HSLToRGB(hsl))
}

// srgbToLinear applies sRGB gamma expansion to an 8-bit channel.
func srgbToLinear(c int) float64 {
	v := float64(c) / 255
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// rgbToOKLab converts RGB to OKLab via the LMS cone response.
func rgbToOKLab(rgb RGB) (lightness, a, b float64) {
	r := srgbToLinear(rgb.R)
	g := srgbToLinear(rgb.G)
	bl := srgbToLinear(rgb.B)

	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*bl
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*bl
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*bl

	l, m, s = math.Cbrt(l), math.Cbrt(m), math.Cbrt(s)

	lightness = 0.2104542553*l + 0.793617785*m - 0.0040720468*s
	a = 1.9779984951*l - 2.428592205*m + 0.4505937099*s
	b = 0.0259040371*l + 0.7827717662*m - 0.808675766*s
	return lightness, a, b
}

// RGBToOKLCH converts RGB to OKLCH.
// Hue is forced to 0 when chroma is below 0.0001 since it carries no meaning.
func RGBToOKLCH(rgb RGB) OKLCH {
	l, a, b := rgbToOKLab(rgb)

	c := math.Sqrt(a*a + b*b)
	h := math.Atan2(b, a) * (180 / math.Pi)
	if h < 0 {
		h += 360
	}
	if c < 0.0001 {
		h = 0
	}

	return OKLCH{L: l, C: c, H: h, A: rgb.A}
}

// HSLToOKLCH converts HSL to OKLCH.
func HSLToOKLCH(hsl HSL) OKLCH {
	return RGBToOKLCH(HSLToRGB(hsl))
}

// FormatOKLCH formats an OKLCH value as a CSS string, e.g. "oklch(0.628 0.258 29.234)".
// Alpha is appended as a percentage only when below 1.
func FormatOKLCH(o OKLCH) string {
	if o.A < 1 {
		return fmt.Sprintf("oklch(%.3f %.3f %.3f / %.0f%%)", o.L, o.C, o.H, o.A*100)
	}
	return fmt.Sprintf("oklch(%.3f %.3f %.3f)", o.L, o.C, o.H)
}

// formatFloat renders a float with the shortest exact representation.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
