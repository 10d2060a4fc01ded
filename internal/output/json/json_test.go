package json

import (
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/autotheme/internal/colour"
	"github.com/jmylchreest/autotheme/internal/output"
	outputtesting "github.com/jmylchreest/autotheme/internal/output/testing"
)

func TestJSONPlugin(t *testing.T) {
	outputtesting.RunAllTests(t, New(), outputtesting.TestConfig{
		ExpectedName:  "json",
		ExpectedFiles: []string{FileName},
	})
}

func decode(t *testing.T, content []byte) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal(content, &doc))
	return doc
}

func TestGenerateDocument(t *testing.T) {
	theme := outputtesting.CreateTestTheme(t, colour.HarmonyComplementary)
	files, err := New().Generate(output.NewThemeData(theme, output.DefaultOptions()))
	require.NoError(t, err)

	content := files[FileName]
	assert.Equal(t, byte('\n'), content[len(content)-1])
	assert.Contains(t, string(content), "\n  \"primary\": {")

	doc := decode(t, content)

	harmony := doc["harmony"].(map[string]any)
	assert.Equal(t, "complementary", harmony["type"])
	assert.Equal(t, "Complementary", harmony["name"])
	assert.EqualValues(t, 2, harmony["colorCount"])
	assert.EqualValues(t, 7, doc["contrastTarget"])

	palettes := doc["palettes"].([]any)
	require.Len(t, palettes, 2)
	primary := palettes[0].(map[string]any)
	assert.Equal(t, "primary", primary["name"])
	assert.Len(t, primary["tints"], 5)
	assert.Len(t, primary["shades"], 5)
	assert.Len(t, primary["tones"], 4)

	base := primary["base"].(map[string]any)
	assert.Equal(t, "#6439ff", base["hex"])
	assert.Equal(t, theme.Primary.ToOKLCH(), base["oklch"])
	assert.Equal(t, theme.Primary.ToHSL(), base["hsl"])
	rgb := base["rgb"].(map[string]any)
	assert.EqualValues(t, 100, rgb["r"])
	assert.EqualValues(t, 57, rgb["g"])
	assert.EqualValues(t, 255, rgb["b"])

	scale := primary["scale"].(map[string]any)
	assert.Len(t, scale, 11)
	assert.Equal(t, "#6439ff", scale["500"])

	text := doc["textColors"].(map[string]any)
	assert.Len(t, text, 30)
	want, ok := theme.Palette.TextColourByName("c1-d3")
	require.True(t, ok)
	assert.Equal(t, want.ToHex(), text["c1-d3"])

	semantic := doc["semantic"].(map[string]any)
	light := semantic["light"].(map[string]any)
	dark := semantic["dark"].(map[string]any)
	assert.Equal(t, "light", light["mode"])
	assert.Equal(t, "dark", dark["mode"])
	assert.Equal(t, theme.Semantic.Light.Surface.Hex(), light["surface"])

	shadcn := doc["shadcn"].(map[string]any)
	assert.Len(t, shadcn["light"].(map[string]any)["charts"], 5)
}

func TestGenerateCompact(t *testing.T) {
	p := New()
	cmd := &cobra.Command{Use: "test"}
	p.RegisterFlags(cmd)
	require.NoError(t, cmd.Flags().Set("json.compact", "true"))

	files, err := p.Generate(outputtesting.CreateTestData(t))
	require.NoError(t, err)

	content := files[FileName]
	assert.NotContains(t, string(content[:len(content)-1]), "\n")
	decode(t, content)
}

func TestBuildFourColourHarmony(t *testing.T) {
	doc := Build(outputtesting.CreateTestTheme(t, colour.HarmonySquare))

	require.Len(t, doc.Palettes, 4)
	assert.Equal(t, "quaternary", doc.Palettes[3].Name)
	assert.Len(t, doc.TextColors, 60)
	assert.Equal(t, 4, doc.Harmony.ColourCount)
}
