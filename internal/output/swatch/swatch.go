// Package swatch renders the palette as a PNG swatch sheet.
package swatch

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/autotheme/internal/colour"
	"github.com/jmylchreest/autotheme/internal/output"
)

// FileName is the file written by the plugin.
const FileName = "palette.png"

// DefaultCellHeight is the default cell height in pixels. Cells are twice as
// wide as they are high.
const DefaultCellHeight = 48

// MinCellHeight fits one line of the label face with some padding.
const MinCellHeight = 20

// LabelWidth is the width of the harmony name column.
const LabelWidth = 104

// Plugin implements the output.Plugin interface for PNG swatches.
type Plugin struct {
	outputDir  string
	cellHeight int
}

// New creates a new swatch output plugin.
func New() *Plugin {
	return &Plugin{cellHeight: DefaultCellHeight}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "swatch"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "PNG swatch sheet with one labelled row per harmony colour"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.outputDir, "swatch.output-dir", "", "Output directory (default: directory of --output)")
	cmd.Flags().IntVar(&p.cellHeight, "swatch.cell-height", DefaultCellHeight, "Swatch cell height in pixels")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if p.cellHeight < MinCellHeight {
		return fmt.Errorf("swatch.cell-height must be at least %d, got %d", MinCellHeight, p.cellHeight)
	}
	return nil
}

// DefaultOutputDir returns the default output directory for this plugin.
func (p *Plugin) DefaultOutputDir() string {
	return p.outputDir
}

// RowKeys returns the cells of one swatch row in display order: tints
// lightest first, the base, shades, then tones.
func RowKeys(index int, v colour.Variations) []colour.TextColourKey {
	keys := make([]colour.TextColourKey, 0, 1+len(v.Tints)+len(v.Shades)+len(v.Tones))
	for step := len(v.Tints); step >= 1; step-- {
		keys = append(keys, colour.TextColourKey{Index: index, Kind: colour.VariationTint, Step: step})
	}
	keys = append(keys, colour.TextColourKey{Index: index, Kind: colour.VariationBase})
	for step := 1; step <= len(v.Shades); step++ {
		keys = append(keys, colour.TextColourKey{Index: index, Kind: colour.VariationShade, Step: step})
	}
	for step := 1; step <= len(v.Tones); step++ {
		keys = append(keys, colour.TextColourKey{Index: index, Kind: colour.VariationTone, Step: step})
	}
	return keys
}

// Render draws the swatch sheet for theme.
func Render(theme *colour.Theme, cellHeight int) *image.RGBA {
	cellWidth := cellHeight * 2
	palette := theme.Palette

	columns := 0
	for i, v := range palette.Palettes {
		columns = max(columns, len(RowKeys(i, v)))
	}

	img := image.NewRGBA(image.Rect(0, 0, LabelWidth+columns*cellWidth, len(palette.Palettes)*cellHeight))

	labelBg := theme.Backgrounds.Light
	draw.Draw(img, image.Rect(0, 0, LabelWidth, img.Bounds().Dy()), image.NewUniform(labelBg), image.Point{}, draw.Src)
	labelFg := colour.AccessibleTextColour(labelBg)

	for row, v := range palette.Palettes {
		top := row * cellHeight
		drawLabel(img, image.Rect(0, top, LabelWidth, top+cellHeight), colour.HarmonyName(row), labelFg)

		for col, key := range RowKeys(row, v) {
			bg, ok := palette.Background(key)
			if !ok {
				continue
			}
			fg, ok := palette.TextColour(key)
			if !ok {
				fg = colour.AccessibleTextColour(bg)
			}

			left := LabelWidth + col*cellWidth
			cell := image.Rect(left, top, left+cellWidth, top+cellHeight)
			draw.Draw(img, cell, image.NewUniform(bg), image.Point{}, draw.Src)
			drawLabel(img, cell, key.String(), fg)
		}
	}

	return img
}

// drawLabel centres text in r.
func drawLabel(img draw.Image, r image.Rectangle, text string, c colour.Colour) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	metrics := face.Metrics()
	textHeight := (metrics.Ascent + metrics.Descent).Ceil()

	x := r.Min.X + (r.Dx()-width)/2
	y := r.Min.Y + (r.Dy()-textHeight)/2 + metrics.Ascent.Ceil()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// Generate creates palette.png.
func (p *Plugin) Generate(data *output.ThemeData) (map[string][]byte, error) {
	if data == nil || data.Theme == nil {
		return nil, output.ErrNilTheme
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, Render(data.Theme, p.cellHeight)); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return map[string][]byte{
		FileName: buf.Bytes(),
	}, nil
}
