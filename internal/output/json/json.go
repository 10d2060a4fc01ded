// Package json provides a machine readable palette export.
package json

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/autotheme/internal/colour"
	"github.com/jmylchreest/autotheme/internal/output"
)

// FileName is the file written by the plugin.
const FileName = "palette.json"

// Plugin implements the output.Plugin interface for JSON export.
type Plugin struct {
	outputDir string
	compact   bool
}

// New creates a new JSON output plugin.
func New() *Plugin {
	return &Plugin{}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "json"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Palette export with ramps, text colours and semantic tokens as JSON"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.outputDir, "json.output-dir", "", "Output directory (default: directory of --output)")
	cmd.Flags().BoolVar(&p.compact, "json.compact", false, "Write JSON without indentation")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	return nil
}

// DefaultOutputDir returns the default output directory for this plugin.
func (p *Plugin) DefaultOutputDir() string {
	return p.outputDir
}

// ColourJSON represents a colour in every supported notation.
type ColourJSON struct {
	Hex   string     `json:"hex"`
	RGB   colour.RGB `json:"rgb"`
	HSL   string     `json:"hsl"`
	OKLCH string     `json:"oklch"`
}

// RampJSON is one harmony colour with its ramps.
type RampJSON struct {
	Name   string            `json:"name"`
	Base   ColourJSON        `json:"base"`
	Tints  []ColourJSON      `json:"tints"`
	Shades []ColourJSON      `json:"shades"`
	Tones  []ColourJSON      `json:"tones"`
	Scale  map[string]string `json:"scale"`
}

// PaletteJSON is the document written to palette.json.
type PaletteJSON struct {
	Primary        ColourJSON          `json:"primary"`
	Harmony        colour.HarmonyMeta  `json:"harmony"`
	ContrastTarget float64             `json:"contrastTarget"`
	Palettes       []RampJSON          `json:"palettes"`
	TextColors     map[string]string   `json:"textColors"`
	Semantic       colour.SemanticPair `json:"semantic"`
	Shadcn         colour.ShadcnPair   `json:"shadcn"`
	Backgrounds    colour.Backgrounds  `json:"backgrounds"`
}

// NewColourJSON converts c into its JSON form.
func NewColourJSON(c colour.Colour) ColourJSON {
	return ColourJSON{
		Hex:   c.ToHex(),
		RGB:   c.RGB(),
		HSL:   c.ToHSL(),
		OKLCH: c.ToOKLCH(),
	}
}

func coloursJSON(cs []colour.Colour) []ColourJSON {
	out := make([]ColourJSON, len(cs))
	for i, c := range cs {
		out[i] = NewColourJSON(c)
	}
	return out
}

// Build assembles the export document for theme.
func Build(theme *colour.Theme) PaletteJSON {
	meta, ok := colour.HarmonyInfo(theme.Harmony)
	if !ok {
		meta = colour.HarmonyMeta{
			Type:        theme.Harmony,
			Name:        string(theme.Harmony),
			ColourCount: len(theme.Palette.Palettes),
		}
	}

	doc := PaletteJSON{
		Primary:        NewColourJSON(theme.Primary),
		Harmony:        meta,
		ContrastTarget: theme.Palette.TargetRatio,
		Palettes:       make([]RampJSON, 0, len(theme.Palette.Palettes)),
		TextColors:     make(map[string]string, theme.Palette.Len()),
		Semantic:       theme.Semantic,
		Shadcn:         theme.Shadcn,
		Backgrounds:    theme.Backgrounds,
	}

	for i, v := range theme.Palette.Palettes {
		ramp := RampJSON{
			Name:   colour.HarmonyName(i),
			Base:   NewColourJSON(v.Base),
			Tints:  coloursJSON(v.Tints),
			Shades: coloursJSON(v.Shades),
			Tones:  coloursJSON(v.Tones),
			Scale:  make(map[string]string),
		}
		for _, step := range v.ScaleSteps() {
			ramp.Scale[strconv.Itoa(step.Scale)] = step.Colour.ToHex()
		}
		doc.Palettes = append(doc.Palettes, ramp)
	}

	for key, c := range theme.Palette.TextColourMap() {
		doc.TextColors[key] = c.ToHex()
	}

	return doc
}

// Generate creates palette.json.
func (p *Plugin) Generate(data *output.ThemeData) (map[string][]byte, error) {
	if data == nil || data.Theme == nil {
		return nil, output.ErrNilTheme
	}

	doc := Build(data.Theme)

	var (
		content []byte
		err     error
	)
	if p.compact {
		content, err = json.Marshal(doc)
	} else {
		content, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode palette: %w", err)
	}

	return map[string][]byte{
		FileName: append(content, '\n'),
	}, nil
}
