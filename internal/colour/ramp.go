package colour

import "math"

// Ramp increments.
const (
	TintIncrement  = 10.0 // lightness added per tint step
	ShadeIncrement = 10.0 // lightness removed per shade step
	ToneIncrement  = 20.0 // saturation removed per tone step
)

// RampOptions sets how many steps each ramp produces.
type RampOptions struct {
	TintSteps  int
	ShadeSteps int
	ToneSteps  int
}

// DefaultRampOptions returns five tints, five shades and four tones.
func DefaultRampOptions() RampOptions {
	return RampOptions{TintSteps: 5, ShadeSteps: 5, ToneSteps: 4}
}

// Variations holds a base colour and its ramps.
// Tints[i] is step i+1 (l1..), likewise for Shades (d1..) and Tones (g1..).
type Variations struct {
	Base   Colour   `json:"base"`
	Tints  []Colour `json:"tints"`
	Shades []Colour `json:"shades"`
	Tones  []Colour `json:"tones"`
}

// Tints returns progressively lighter versions of c, capped at lightness 100.
func Tints(c Colour, steps int) []Colour {
	hsl := c.HSL()
	out := make([]Colour, 0, max(steps, 0))
	for i := 1; i <= steps; i++ {
		step := hsl
		step.L = math.Min(100, hsl.L+TintIncrement*float64(i))
		out = append(out, FromHSL(step))
	}
	return out
}

// Shades returns progressively darker versions of c, floored at lightness 0.
func Shades(c Colour, steps int) []Colour {
	hsl := c.HSL()
	out := make([]Colour, 0, max(steps, 0))
	for i := 1; i <= steps; i++ {
		step := hsl
		step.L = math.Max(0, hsl.L-ShadeIncrement*float64(i))
		out = append(out, FromHSL(step))
	}
	return out
}

// Tones returns progressively desaturated versions of c, floored at saturation 0.
func Tones(c Colour, steps int) []Colour {
	hsl := c.HSL()
	out := make([]Colour, 0, max(steps, 0))
	for i := 1; i <= steps; i++ {
		step := hsl
		step.S = math.Max(0, hsl.S-ToneIncrement*float64(i))
		out = append(out, FromHSL(step))
	}
	return out
}

// GenerateVariations builds the default ramps for c.
func GenerateVariations(c Colour) Variations {
	return GenerateVariationsWithOptions(c, DefaultRampOptions())
}

// GenerateVariationsWithOptions builds ramps for c with custom step counts.
func GenerateVariationsWithOptions(c Colour, opts RampOptions) Variations {
	return Variations{
		Base:   c,
		Tints:  Tints(c, opts.TintSteps),
		Shades: Shades(c, opts.ShadeSteps),
		Tones:  Tones(c, opts.ToneSteps),
	}
}

// ScaleStep is one stop on the 50..950 scale.
type ScaleStep struct {
	Scale  int
	Colour Colour
}

// tailwindScale lists the scale stops from lightest to darkest.
var tailwindScale = []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

// TailwindScale returns the stop numbers of the 50..950 scale.
func TailwindScale() []int {
	out := make([]int, len(tailwindScale))
	copy(out, tailwindScale)
	return out
}

// ScaleSteps maps the variations onto the 50..950 scale: tints 5..1 become
// 50..400, the base is 500 and shades 1..5 become 600..950. Missing ramp
// steps are skipped.
func (v Variations) ScaleSteps() []ScaleStep {
	steps := make([]ScaleStep, 0, len(tailwindScale))
	idx := 0
	for i := 5; i >= 1; i-- {
		if i <= len(v.Tints) {
			steps = append(steps, ScaleStep{Scale: tailwindScale[idx], Colour: v.Tints[i-1]})
		}
		idx++
	}
	steps = append(steps, ScaleStep{Scale: 500, Colour: v.Base})
	idx++
	for i := 1; i <= 5; i++ {
		if i <= len(v.Shades) {
			steps = append(steps, ScaleStep{Scale: tailwindScale[idx], Colour: v.Shades[i-1]})
		}
		idx++
	}
	return steps
}
