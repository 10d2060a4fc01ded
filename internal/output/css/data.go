package css

import (
	"strconv"

	"github.com/jmylchreest/autotheme/internal/colour"
	"github.com/jmylchreest/autotheme/internal/output"
)

// TemplateData is the view of a theme the stylesheet template renders.
type TemplateData struct {
	Prefix  string
	Radius  string
	Options output.Options

	Shadcn   ShadcnData
	Semantic SemanticData
	Scales   []Scale

	TextSizes       []Size
	Spacing         []Size
	Noise           string
	GradientTargets []string
	Rainbow         []string
}

// ShadcnData holds the shadcn variables for both modes.
type ShadcnData struct {
	Light ShadcnVars
	Dark  ShadcnVars
}

// ShadcnVars splits one mode's shadcn variables into their stylesheet
// sections.
type ShadcnVars struct {
	Core    []colour.NamedColour
	Charts  []colour.NamedColour
	Sidebar []colour.NamedColour
}

// SemanticData holds the semantic token groups for both modes.
type SemanticData struct {
	Light []TokenGroup
	Dark  []TokenGroup
}

// TokenGroup is a commented run of semantic tokens.
type TokenGroup struct {
	Title  string
	Tokens []colour.NamedColour
}

// Scale is one harmony colour's ramp and its text colours.
type Scale struct {
	Name  string
	Steps []colour.ScaleStep
	Tones []colour.NamedColour

	Foreground     colour.Colour
	Contrast       colour.Colour
	DarkForeground colour.Colour
	DarkContrast   colour.Colour
}

// Size is a named rem value.
type Size struct {
	Name  string
	Value float64
}

// semanticSections lists the token group titles and how many consecutive
// entries of SemanticColours.Tokens each one covers.
var semanticSections = []struct {
	title string
	count int
}{
	{"Surface System", 8},
	{"Primary", 4},
	{"Secondary", 4},
	{"Tertiary", 4},
	{"Accent", 4},
	{"Muted", 3},
	{"Error", 4},
	{"Outline", 2},
	{"Inverse", 3},
}

// rainbowStops are the fixed OKLCH stops of the rainbow gradient.
var rainbowStops = []string{
	"oklch(0.628 0.258 29.234)",
	"oklch(0.792 0.176 70.067)",
	"oklch(0.968 0.211 109.769)",
	"oklch(0.866 0.295 142.495)",
	"oklch(0.452 0.313 264.052)",
	"oklch(0.318 0.175 303.108)",
	"oklch(0.491 0.319 303.108)",
}

// BuildData flattens a theme into template data.
func BuildData(data *output.ThemeData) TemplateData {
	theme := data.Theme
	opts := data.Options

	td := TemplateData{
		Prefix:  opts.Prefix,
		Radius:  opts.Radius,
		Options: opts,
		Shadcn: ShadcnData{
			Light: splitShadcn(theme.Shadcn.Light),
			Dark:  splitShadcn(theme.Shadcn.Dark),
		},
		Semantic: SemanticData{
			Light: groupTokens(theme.Semantic.Light),
			Dark:  groupTokens(theme.Semantic.Dark),
		},
		Rainbow: rainbowStops,
	}

	for i, v := range theme.Palette.Palettes {
		name := colour.HarmonyName(i)
		fg, ok := theme.Palette.TextColour(colour.TextColourKey{Index: i, Kind: colour.VariationBase})
		if !ok {
			fg = colour.AccessibleTextColour(v.Base)
		}
		td.Scales = append(td.Scales, Scale{
			Name:           name,
			Steps:          v.ScaleSteps(),
			Tones:          namedTones(v.Tones),
			Foreground:     fg,
			Contrast:       colour.ContrastColour(v.Base),
			DarkForeground: colour.DarkModeTextColour(v.Base),
			DarkContrast:   colour.ContrastColour(v.Base),
		})
		if i > 0 {
			td.GradientTargets = append(td.GradientTargets, name)
		}
	}

	for i, size := range output.ScaledValues(opts.FontSize, opts.Scalar, len(output.TextSizeNames)) {
		td.TextSizes = append(td.TextSizes, Size{Name: output.TextSizeNames[i], Value: size})
	}
	if opts.Spacing {
		for i, space := range output.ScaledValues(output.SpacingBase, opts.Scalar, output.SpacingSteps) {
			td.Spacing = append(td.Spacing, Size{Name: strconv.Itoa(i + 1), Value: space})
		}
	}
	if opts.Noise {
		td.Noise = NoiseDataURL(DefaultNoiseFrequency)
	}

	return td
}

func namedTones(tones []colour.Colour) []colour.NamedColour {
	named := make([]colour.NamedColour, len(tones))
	for i, tone := range tones {
		named[i] = colour.NamedColour{Name: "tone-" + strconv.Itoa(i+1), Colour: tone}
	}
	return named
}

func splitShadcn(s colour.ShadcnColours) ShadcnVars {
	vars := s.Variables()
	return ShadcnVars{
		Core:    vars[:19],
		Charts:  vars[19:24],
		Sidebar: vars[24:],
	}
}

func groupTokens(s colour.SemanticColours) []TokenGroup {
	tokens := s.Tokens()
	groups := make([]TokenGroup, 0, len(semanticSections))
	start := 0
	for _, sec := range semanticSections {
		end := min(start+sec.count, len(tokens))
		groups = append(groups, TokenGroup{Title: sec.title, Tokens: tokens[start:end]})
		start = end
	}
	return groups
}
