package colour

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	hexPattern = regexp.MustCompile(`^#([0-9a-f]{3}|[0-9a-f]{6}|[0-9a-f]{8})$`)
	rgbPattern = regexp.MustCompile(`^rgba?\s*\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*(?:,\s*([\d.]+))?\s*\)$`)
	hslPattern = regexp.MustCompile(`^hsla?\s*\(\s*([\d.]+)\s*,\s*([\d.]+)%?\s*,\s*([\d.]+)%?\s*(?:,\s*([\d.]+))?\s*\)$`)
)

// Parse parses a colour string.
// Supported forms are "#rgb", "#rrggbb", "#rrggbbaa", "rgb(r, g, b)",
// "rgba(r, g, b, a)", "hsl(h, s%, l%)" and "hsla(h, s%, l%, a)". Matching is
// case-insensitive and surrounding whitespace is ignored.
func Parse(s string) (Colour, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))

	switch {
	case strings.HasPrefix(trimmed, "#"):
		if !hexPattern.MatchString(trimmed) {
			return Colour{}, &ColourFormatError{Input: s, Reason: "hex must have 3, 6 or 8 digits"}
		}
		return FromRGB(HexToRGB(trimmed)), nil

	case strings.HasPrefix(trimmed, "rgb"):
		m := rgbPattern.FindStringSubmatch(trimmed)
		if m == nil {
			return Colour{}, &ColourFormatError{Input: s, Reason: "expected rgb(r, g, b) or rgba(r, g, b, a)"}
		}
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		a, err := parseAlpha(m[4])
		if err != nil {
			return Colour{}, &ColourFormatError{Input: s, Reason: err.Error()}
		}
		return FromRGB(RGB{R: r, G: g, B: b, A: a}), nil

	case strings.HasPrefix(trimmed, "hsl"):
		m := hslPattern.FindStringSubmatch(trimmed)
		if m == nil {
			return Colour{}, &ColourFormatError{Input: s, Reason: "expected hsl(h, s%, l%) or hsla(h, s%, l%, a)"}
		}
		var vals [3]float64
		for i := range vals {
			v, err := strconv.ParseFloat(m[i+1], 64)
			if err != nil {
				return Colour{}, &ColourFormatError{Input: s, Reason: err.Error()}
			}
			vals[i] = v
		}
		a, err := parseAlpha(m[4])
		if err != nil {
			return Colour{}, &ColourFormatError{Input: s, Reason: err.Error()}
		}
		return FromHSL(HSL{H: vals[0], S: vals[1], L: vals[2], A: a}), nil
	}

	return Colour{}, &ColourFormatError{Input: s}
}

func parseAlpha(s string) (float64, error) {
	if s == "" {
		return 1, nil
	}
	a, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad alpha %q", s)
	}
	return a, nil
}

// MustParse is like Parse but panics on error.
// Intended for package-level values with literal input.
func MustParse(s string) Colour {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseMap builds a Colour from an object with either r, g, b or h, s, l keys
// and an optional a (default 1). Values may be any Go numeric type.
func ParseMap(m map[string]any) (Colour, error) {
	if hasKeys(m, "r", "g", "b") {
		vals, err := numbers(m, "r", "g", "b")
		if err != nil {
			return Colour{}, err
		}
		a, err := optionalAlpha(m)
		if err != nil {
			return Colour{}, err
		}
		return FromRGB(RGB{R: int(vals[0]), G: int(vals[1]), B: int(vals[2]), A: a}), nil
	}

	if hasKeys(m, "h", "s", "l") {
		vals, err := numbers(m, "h", "s", "l")
		if err != nil {
			return Colour{}, err
		}
		a, err := optionalAlpha(m)
		if err != nil {
			return Colour{}, err
		}
		return FromHSL(HSL{H: vals[0], S: vals[1], L: vals[2], A: a}), nil
	}

	return Colour{}, &ColourFormatError{Input: fmt.Sprint(m), Reason: "object needs r, g, b or h, s, l"}
}

// ParseInput accepts any supported colour representation: a string, a map,
// an RGB or HSL value, or an existing Colour.
func ParseInput(v any) (Colour, error) {
	switch in := v.(type) {
	case Colour:
		return in, nil
	case *Colour:
		if in == nil {
			return Colour{}, &ColourFormatError{Input: "<nil>"}
		}
		return *in, nil
	case string:
		return Parse(in)
	case RGB:
		return FromRGB(in), nil
	case HSL:
		return FromHSL(in), nil
	case map[string]any:
		return ParseMap(in)
	case map[string]float64:
		m := make(map[string]any, len(in))
		for k, val := range in {
			m[k] = val
		}
		return ParseMap(m)
	case nil:
		return Colour{}, &ColourFormatError{Input: "<nil>", Reason: "no colour given"}
	}
	return Colour{}, &ColourFormatError{Input: fmt.Sprint(v), Reason: fmt.Sprintf("unsupported type %T", v)}
}

func hasKeys(m map[string]any, keys ...string) bool {
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return false
		}
	}
	return true
}

func numbers(m map[string]any, keys ...string) ([]float64, error) {
	out := make([]float64, len(keys))
	for i, k := range keys {
		v, ok := toFloat(m[k])
		if !ok {
			return nil, &ColourFormatError{Input: fmt.Sprint(m), Reason: fmt.Sprintf("%s is not a number", k)}
		}
		out[i] = v
	}
	return out, nil
}

func optionalAlpha(m map[string]any) (float64, error) {
	raw, ok := m["a"]
	if !ok || raw == nil {
		return 1, nil
	}
	a, ok := toFloat(raw)
	if !ok {
		return 0, &ColourFormatError{Input: fmt.Sprint(m), Reason: "a is not a number"}
	}
	return a, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
