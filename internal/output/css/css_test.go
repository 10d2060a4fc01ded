package css

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/autotheme/internal/colour"
	"github.com/jmylchreest/autotheme/internal/output"
	outputtesting "github.com/jmylchreest/autotheme/internal/output/testing"
)

func TestCSSPlugin(t *testing.T) {
	outputtesting.RunAllTests(t, New(), outputtesting.TestConfig{
		ExpectedName:  "css",
		ExpectedFiles: []string{"autotheme.css"},
	})
}

func render(t *testing.T, h colour.Harmony, opts output.Options) string {
	t.Helper()
	data := output.NewThemeData(outputtesting.CreateTestTheme(t, h), opts)
	content, err := Render(data, nil)
	require.NoError(t, err)
	return string(content)
}

func TestRenderDefaults(t *testing.T) {
	theme := outputtesting.CreateTestTheme(t, colour.HarmonyComplementary)
	css := render(t, colour.HarmonyComplementary, output.DefaultOptions())

	outputtesting.AssertContainsAll(t, css,
		"Shadcn UI Compatible Theme Variables",
		"--radius: 0.625rem;",
		"--background: "+theme.Shadcn.Light.Background.ToOKLCH()+";",
		"--chart-5: ",
		"--sidebar-ring: ",
		"/* Surface System */",
		"--surface-container-high: ",
		"--inverse-primary: ",
		"/* Primary Color Scale */",
		"/* Secondary Color Scale */",
		"--color-primary-50: ",
		"--color-primary-500: "+theme.Palette.Palettes[0].Base.ToOKLCH()+";",
		"--color-secondary-950: ",
		"--color-primary-tone-4: ",
		"--color-primary-contrast: ",
		"--text-xs: 1.000rem;",
		"--text-sm: 1.618rem;",
		"--spacing-1: 0.155rem;",
		"--spacing-10: ",
		`--background-image-noise: url("data:image/svg+xml,`,
		"--gradient-linear-secondary: linear-gradient(",
		"--gradient-linear-rainbow: linear-gradient(",
		"oklch(0.491 0.319 303.108)\n    );",
		"/* Primary Dark Mode */",
		"/* Utility Classes */",
		".surface-noise {",
	)
	assert.Equal(t, 3, strings.Count(css, ":root {"))
	assert.Equal(t, 3, strings.Count(css, ".dark {"))
	assert.True(t, strings.HasSuffix(css, "}\n"), "output should end with a single newline")
	assert.False(t, strings.HasSuffix(css, "\n\n"))
}

func TestRenderForeground(t *testing.T) {
	theme := outputtesting.CreateTestTheme(t, colour.HarmonyTriadic)
	css := render(t, colour.HarmonyTriadic, output.DefaultOptions())

	fg, ok := theme.Palette.TextColourByName("c2-base")
	require.True(t, ok)
	assert.Contains(t, css, "--color-tertiary-foreground: "+fg.ToOKLCH()+";")

	dark := colour.DarkModeTextColour(theme.Palette.Palettes[2].Base)
	darkBlock := css[strings.LastIndex(css, "/* Dark Mode Color Overrides */"):]
	assert.Contains(t, darkBlock, "--color-tertiary-foreground: "+dark.ToOKLCH()+";")
}

func TestRenderToggles(t *testing.T) {
	opts := output.DefaultOptions()
	opts.Shadcn = false
	opts.Spacing = false
	opts.Noise = false
	opts.Gradients = false
	opts.Utilities = false
	opts.Prefix = "brand"

	css := render(t, colour.HarmonyAnalogous, opts)

	assert.True(t, strings.HasPrefix(css, "/* ========================================\n   Semantic Design Tokens"))
	outputtesting.AssertContainsNone(t, css,
		"Shadcn UI",
		"--radius",
		"--spacing-",
		"--background-image-noise",
		"--gradient-",
		"Utility Classes",
		"--color-primary-",
	)
	outputtesting.AssertContainsAll(t, css,
		"--brand-primary-500: ",
		"--brand-tertiary-500: ",
		"--text-4xl: ",
	)
}

func TestRenderTypographyScale(t *testing.T) {
	opts := output.DefaultOptions()
	opts.FontSize = 0.875
	opts.Scalar = 1.25

	css := render(t, colour.HarmonyComplementary, opts)
	outputtesting.AssertContainsAll(t, css,
		"--text-xs: 0.875rem;",
		"--text-sm: 1.094rem;",
		"--spacing-2: 0.194rem;",
	)
}

func TestGenerateFileName(t *testing.T) {
	opts := output.DefaultOptions()
	opts.Output = "styles/theme.css"

	files, err := New().Generate(output.NewThemeData(outputtesting.CreateTestTheme(t, colour.HarmonySquare), opts))
	require.NoError(t, err)
	assert.Contains(t, files, "theme.css")
	assert.Equal(t, "styles", output.OutputDir(New(), opts))
}

func TestBuildData(t *testing.T) {
	data := outputtesting.CreateTestData(t)
	td := BuildData(data)

	assert.Len(t, td.Scales, 2)
	assert.Equal(t, []string{"secondary"}, td.GradientTargets)
	assert.Len(t, td.Shadcn.Light.Core, 19)
	assert.Len(t, td.Shadcn.Light.Charts, 5)
	assert.Len(t, td.Shadcn.Light.Sidebar, 8)
	assert.Len(t, td.TextSizes, 8)
	assert.Len(t, td.Spacing, 10)

	require.Len(t, td.Semantic.Light, 9)
	total := 0
	for _, g := range td.Semantic.Light {
		total += len(g.Tokens)
	}
	assert.Equal(t, 36, total)
	assert.Equal(t, "surface", td.Semantic.Light[0].Tokens[0].Name)
	assert.Equal(t, "inverse-primary", td.Semantic.Light[8].Tokens[2].Name)

	scale := td.Scales[0]
	assert.Len(t, scale.Steps, 11)
	assert.Equal(t, "tone-1", scale.Tones[0].Name)
}

func TestNoiseDataURL(t *testing.T) {
	url := NoiseDataURL(0.7)

	assert.True(t, strings.HasPrefix(url, `url("data:image/svg+xml,%3Csvg%20xmlns=%27http:%2F%2Fwww.w3.org%2F2000%2Fsvg%27`))
	assert.True(t, strings.HasSuffix(url, `%3C%2Fsvg%3E")`))
	assert.Contains(t, url, "baseFrequency=%270.7%27")
	assert.Contains(t, url, "width=%27100%25%27")
	assert.Contains(t, url, "url%28%2523noise%29")

	body := strings.TrimSuffix(strings.TrimPrefix(url, `url("`), `")`)
	assert.NotContains(t, body, "'")
	assert.NotContains(t, body, `"`)
	assert.NotContains(t, body, "(")
	assert.NotContains(t, body, ")")
	assert.NotContains(t, body, " ")
	assert.NotContains(t, body, "#")
}
