package colour

import (
	"math"
)

// WCAG contrast thresholds.
const (
	RatioAAA      = 7.0
	RatioAA       = 4.5
	RatioAALarge  = 3.0
	RatioAAALarge = 4.5

	// DefaultContrastTarget is the ratio foregrounds aim for unless configured.
	DefaultContrastTarget = RatioAAA

	// DefaultMaxIterations bounds the grey walk in FindAccessibleTextColour.
	DefaultMaxIterations = 50

	accessibleStep = 2.0
)

var (
	// Black is opaque #000000.
	Black = NewRGB(0, 0, 0)
	// White is opaque #ffffff.
	White = NewRGB(255, 255, 255)
)

// Level is a WCAG conformance level.
type Level string

// WCAG levels, highest first.
const (
	LevelAAA  Level = "AAA"
	LevelAA   Level = "AA"
	LevelA    Level = "A"
	LevelFail Level = "FAIL"
)

// LevelFor maps a contrast ratio onto a WCAG level.
func LevelFor(ratio float64) Level {
	switch {
	case ratio >= RatioAAA:
		return LevelAAA
	case ratio >= RatioAA:
		return LevelAA
	case ratio >= RatioAALarge:
		return LevelA
	default:
		return LevelFail
	}
}

// WCAGResult summarises a foreground/background pair.
type WCAGResult struct {
	Ratio          float64 `json:"ratio"`
	Level          Level   `json:"level"`
	PassesAA       bool    `json:"passesAA"`
	PassesAAA      bool    `json:"passesAAA"`
	PassesAALarge  bool    `json:"passesAALarge"`
	PassesAAALarge bool    `json:"passesAAALarge"`
}

// RelativeLuminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(rgb RGB) float64 {
	r := gammaCorrect(float64(rgb.R) / 255.0)
	g := gammaCorrect(float64(rgb.G) / 255.0)
	b := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// The result is symmetric in its arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 Colour) float64 {
	l1 := c1.Luminance()
	l2 := c2.Luminance()

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// CheckWCAG reports the contrast ratio and the levels it passes.
func CheckWCAG(fg, bg Colour) WCAGResult {
	ratio := ContrastRatio(fg, bg)
	return WCAGResult{
		Ratio:          ratio,
		Level:          LevelFor(ratio),
		PassesAA:       ratio >= RatioAA,
		PassesAAA:      ratio >= RatioAAA,
		PassesAALarge:  ratio >= RatioAALarge,
		PassesAAALarge: ratio >= RatioAAALarge,
	}
}

// FindAccessibleTextColour returns a text colour for bg that meets targetRatio.
//
// Pure black or white is preferred whenever either meets the target (the
// higher ratio wins, black on a tie). Otherwise it walks greys from the better
// extreme towards the other in steps of 2 lightness, for at most
// maxIterations steps, and returns the first grey meeting the target. When
// nothing meets the target the highest-contrast candidate seen is returned.
func FindAccessibleTextColour(bg Colour, targetRatio float64, maxIterations int) Colour {
	blackRatio := ContrastRatio(Black, bg)
	whiteRatio := ContrastRatio(White, bg)

	if blackRatio >= targetRatio || whiteRatio >= targetRatio {
		if blackRatio >= whiteRatio {
			return Black
		}
		return White
	}

	fromWhite := whiteRatio > blackRatio
	best, bestRatio := Black, blackRatio
	l, step := 0.0, accessibleStep
	if fromWhite {
		best, bestRatio = White, whiteRatio
		l, step = 100, -accessibleStep
	}

	for range max(maxIterations, 0) {
		l += step
		if l < 0 || l > 100 {
			break
		}

		candidate := NewHSL(0, 0, l)
		ratio := ContrastRatio(candidate, bg)
		if ratio > bestRatio {
			best, bestRatio = candidate, ratio
		}
		if ratio >= targetRatio {
			return candidate
		}
	}

	return best
}

// AccessibleTextColour is FindAccessibleTextColour with the default AAA target
// and iteration budget.
func AccessibleTextColour(bg Colour) Colour {
	return FindAccessibleTextColour(bg, DefaultContrastTarget, DefaultMaxIterations)
}

// BestContrastColour returns black or white, whichever contrasts more with bg.
// Ties favour black.
func BestContrastColour(bg Colour) Colour {
	if ContrastRatio(Black, bg) >= ContrastRatio(White, bg) {
		return Black
	}
	return White
}

// ContrastColour returns a hue-tinted near-black for light backgrounds and a
// hue-tinted near-white for dark ones.
func ContrastColour(bg Colour) Colour {
	h := bg.HSL().H
	if bg.Luminance() > 0.5 {
		return NewHSL(h, 100, 5)
	}
	return NewHSL(h, 20, 95)
}

// DarkModeTextColour derives the dark-mode counterpart of a text colour:
// same hue, saturation scaled by 0.8, lightness reduced by 40.
func DarkModeTextColour(c Colour) Colour {
	hsl := c.HSL()
	return FromHSL(HSL{
		H: hsl.H,
		S: math.Min(100, hsl.S*0.8),
		L: math.Max(0, hsl.L-40),
		A: hsl.A,
	})
}

// HueDistance calculates the angular distance between two hues on the colour wheel.
// Returns a value between 0 and 180 degrees (shortest path around the wheel).
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(NormaliseHue(h1) - NormaliseHue(h2))
	if diff > 180 {
		diff = 360 - diff // Handle wraparound
	}
	return diff
}
