package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/autotheme/internal/colour"
)

func testTheme(t *testing.T, h colour.Harmony) *colour.Theme {
	t.Helper()
	theme, err := colour.GenerateTheme(colour.MustParse("#6439ff"), h, colour.ThemeOptions{})
	require.NoError(t, err)
	return theme
}

func TestRenderPreviewStyled(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderPreview(&buf, testTheme(t, colour.HarmonySquare), true))

	out := buf.String()
	assert.Contains(t, out, "Harmony: Square (4 colors)")
	for _, name := range []string{"primary", "secondary", "tertiary", "quaternary", "light", "dark"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, " base ")
	assert.Contains(t, out, " g4 ")
	assert.NotContains(t, out, "c0-base")
}

func TestRenderPreviewPlain(t *testing.T) {
	var buf bytes.Buffer
	theme := testTheme(t, colour.HarmonyComplementary)
	require.NoError(t, renderPreview(&buf, theme, false))

	out := buf.String()
	fg, ok := theme.Palette.TextColourByName("c0-l5")
	require.True(t, ok)
	assert.Contains(t, out, fg.Hex())
	// title and blank line, table header and separator, 2 colours x 15 keys
	table := out[:strings.Index(out, "\nSemantic tokens")]
	assert.Equal(t, 2+2+30, strings.Count(table, "\n"))
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    hclog.Level
	}{
		{"default", false, false, hclog.Info},
		{"verbose", true, false, hclog.Debug},
		{"quiet", false, true, hclog.Error},
		{"quiet wins", true, true, hclog.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := newLogger(&bytes.Buffer{}, tt.verbose, tt.quiet)
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestReportContrast(t *testing.T) {
	theme := testTheme(t, colour.HarmonyTriadic)

	var buf bytes.Buffer
	reportContrast(newLogger(&buf, false, false), theme, 21)
	assert.Contains(t, buf.String(), "foreground below contrast target")
	assert.Contains(t, buf.String(), "token=surface")

	buf.Reset()
	reportContrast(newLogger(&buf, false, false), theme, 1)
	assert.Empty(t, buf.String())
}
