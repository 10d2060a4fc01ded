package colour

import "math"

// Backgrounds holds page background colours for each mode.
type Backgrounds struct {
	Light Colour `json:"light"`
	Dark  Colour `json:"dark"`
}

// GenerateBackgrounds derives near-white and near-black page backgrounds
// tinted towards the primary hue.
func GenerateBackgrounds(primary Colour) Backgrounds {
	hsl := primary.HSL()
	return Backgrounds{
		Light: NewHSL(hsl.H, math.Min(20, hsl.S*0.3), 96),
		Dark:  NewHSL(hsl.H, math.Min(30, hsl.S*0.4), 5),
	}
}
