package colour

import "github.com/lucasb-eyer/go-colorful"

// Bounds of the vibrant band random seeds are mapped into.
const (
	randomMinSaturation = 70.0
	randomMaxSaturation = 100.0
	randomMinLightness  = 45.0
	randomMaxLightness  = 65.0
)

// RandomColour returns a random vibrant colour for use as a primary when none
// is configured. Saturation lands in 70-100 and lightness in 45-65.
func RandomColour() Colour {
	h, s, l := colorful.FastHappyColor().Hsl()
	return NewHSL(
		NormaliseHue(h),
		randomMinSaturation+s*(randomMaxSaturation-randomMinSaturation),
		randomMinLightness+l*(randomMaxLightness-randomMinLightness),
	)
}
