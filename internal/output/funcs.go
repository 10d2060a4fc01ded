package output

import (
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/jmylchreest/autotheme/internal/colour"
)

// TextSizeNames label the typography scale steps, smallest first.
var TextSizeNames = []string{"xs", "sm", "md", "lg", "xl", "2xl", "3xl", "4xl"}

// SpacingBase is the first step of the spacing scale, in rem.
const SpacingBase = 0.155

// SpacingSteps is the number of spacing scale steps.
const SpacingSteps = 10

// ScaledValues returns count values starting at base, each the previous
// multiplied by scalar.
func ScaledValues(base, scalar float64, count int) []float64 {
	values := make([]float64, 0, max(count, 0))
	current := base
	for range max(count, 0) {
		values = append(values, current)
		current *= scalar
	}
	return values
}

// TemplateFuncs returns standard template functions for all output plugins.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		// Format conversion.
		"hex":       hexFunc,
		"rgb":       rgbFunc,
		"hsl":       hslFunc,
		"oklch":     oklchFunc,
		"rgbSpaces": rgbSpacesFunc,

		// Alpha manipulation.
		"withAlpha": withAlphaFunc,

		// Palette metadata.
		"harmonyName": colour.HarmonyName,

		// Scales.
		"scaled": ScaledValues,

		// String manipulation (custom wrappers for pipe-friendly argument order).
		"title":      titleFunc,
		"trimPrefix": trimPrefixFunc,
		"trimSuffix": trimSuffixFunc,
		"replace":    replaceFunc,
		"toLower":    strings.ToLower,
		"toUpper":    strings.ToUpper,
	}
}

// hexFunc returns color in #rrggbb format, or #rrggbbaa when translucent.
func hexFunc(c colour.Colour) string {
	return c.ToHex()
}

// rgbFunc returns color in CSS rgb(r, g, b) or rgba(r, g, b, a) format.
func rgbFunc(c colour.Colour) string {
	return c.ToRGB()
}

// hslFunc returns color in CSS hsl() format.
func hslFunc(c colour.Colour) string {
	return c.ToHSL()
}

// oklchFunc returns color in CSS oklch() format.
func oklchFunc(c colour.Colour) string {
	return c.ToOKLCH()
}

// rgbSpacesFunc returns color in "r g b" space-separated format.
func rgbSpacesFunc(c colour.Colour) string {
	return c.RGBValues()
}

// withAlphaFunc returns a copy of the color with custom alpha (0.0-1.0).
func withAlphaFunc(alpha float64, c colour.Colour) colour.Colour {
	return c.WithAlpha(alpha)
}

// titleFunc upper-cases the first letter: "primary" becomes "Primary".
func titleFunc(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// trimPrefixFunc removes a prefix from a string (pipe-friendly argument order).
//
//	{{ value | trimPrefix "#" }}
func trimPrefixFunc(prefix, s string) string {
	return strings.TrimPrefix(s, prefix)
}

// trimSuffixFunc removes a suffix from a string (pipe-friendly argument order).
//
//	{{ value | trimSuffix ".css" }}
func trimSuffixFunc(suffix, s string) string {
	return strings.TrimSuffix(s, suffix)
}

// replaceFunc replaces all occurrences of old with new (pipe-friendly argument order).
//
//	{{ value | replace "_" "-" }}
func replaceFunc(old, new, s string) string {
	return strings.ReplaceAll(s, old, new)
}
