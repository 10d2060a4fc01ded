package css

import (
	"fmt"
	"net/url"
)

// DefaultNoiseFrequency is the feTurbulence base frequency of the noise
// texture.
const DefaultNoiseFrequency = 0.7

// NoiseDataURL returns a CSS url() holding an inline SVG fractal noise
// texture. Path escaping encodes quotes, parentheses, spaces and '#', so the
// data stays intact inside url("").
func NoiseDataURL(frequency float64) string {
	svg := fmt.Sprintf("<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 500 500'>"+
		"<filter id='noise'><feTurbulence type='fractalNoise' baseFrequency='%g' numOctaves='3' stitchTiles='stitch' /></filter>"+
		"<rect width='100%%' height='100%%' filter='url(%%23noise)' /></svg>", frequency)

	return `url("data:image/svg+xml,` + url.PathEscape(svg) + `")`
}
