// Package testing provides shared test utilities for output plugins.
package testing

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/autotheme/internal/colour"
	"github.com/jmylchreest/autotheme/internal/output"
)

// TestPrimary is the primary colour of CreateTestTheme.
const TestPrimary = "#6439ff"

// CreateTestTheme builds a theme from TestPrimary with the given harmony.
func CreateTestTheme(t *testing.T, h colour.Harmony) *colour.Theme {
	t.Helper()
	theme, err := colour.GenerateTheme(colour.MustParse(TestPrimary), h, colour.ThemeOptions{})
	require.NoError(t, err)
	return theme
}

// CreateTestData wraps a complementary test theme with default options.
func CreateTestData(t *testing.T) *output.ThemeData {
	t.Helper()
	return output.NewThemeData(CreateTestTheme(t, colour.HarmonyComplementary), output.DefaultOptions())
}

// TestBasicInterface tests the basic plugin interface methods that all plugins must implement.
func TestBasicInterface(t *testing.T, p output.Plugin, expectedName string) {
	t.Run("Name", func(t *testing.T) {
		assert.Equal(t, expectedName, p.Name())
	})

	t.Run("Description", func(t *testing.T) {
		assert.NotEmpty(t, p.Description())
	})

	t.Run("Validate", func(t *testing.T) {
		assert.NoError(t, p.Validate())
	})
}

// TestGeneration tests the Generate method with default options and every
// harmony.
func TestGeneration(t *testing.T, p output.Plugin, expectedFiles []string) {
	t.Run("Generate", func(t *testing.T) {
		files, err := p.Generate(CreateTestData(t))
		require.NoError(t, err)
		require.Len(t, files, len(expectedFiles))
		for _, name := range expectedFiles {
			content, ok := files[name]
			if assert.True(t, ok, "Generate() did not return %s", name) {
				assert.NotEmpty(t, content, "%s is empty", name)
			}
		}
	})

	t.Run("GenerateNilTheme", func(t *testing.T) {
		_, err := p.Generate(nil)
		assert.ErrorIs(t, err, output.ErrNilTheme)

		_, err = p.Generate(&output.ThemeData{Options: output.DefaultOptions()})
		assert.ErrorIs(t, err, output.ErrNilTheme)
	})

	t.Run("GenerateAllHarmonies", func(t *testing.T) {
		for _, h := range colour.Harmonies() {
			data := output.NewThemeData(CreateTestTheme(t, h), output.DefaultOptions())
			files, err := p.Generate(data)
			require.NoError(t, err, "harmony %s", h)
			assert.NotEmpty(t, files, "harmony %s", h)
		}
	})
}

// TestFlags tests plugin-specific flag registration.
func TestFlags(t *testing.T, p output.Plugin, expectedFlagPrefix string) {
	t.Run("RegisterFlags", func(t *testing.T) {
		cmd := &cobra.Command{Use: "test"}
		p.RegisterFlags(cmd)

		expectedFlag := expectedFlagPrefix + ".output-dir"
		assert.NotNil(t, cmd.Flags().Lookup(expectedFlag), "RegisterFlags() did not register %s", expectedFlag)

		require.NoError(t, cmd.Flags().Set(expectedFlag, "custom-dir"))
		assert.Equal(t, "custom-dir", p.DefaultOutputDir())
		assert.Equal(t, "custom-dir", output.OutputDir(p, output.DefaultOptions()))
	})
}

// AssertContainsAll fails for each want missing from content.
func AssertContainsAll(t *testing.T, content string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		assert.True(t, strings.Contains(content, want), "output missing %q", want)
	}
}

// AssertContainsNone fails for each unwanted string present in content.
func AssertContainsNone(t *testing.T, content string, unwanted ...string) {
	t.Helper()
	for _, s := range unwanted {
		assert.False(t, strings.Contains(content, s), "output unexpectedly contains %q", s)
	}
}

// RunAllTests runs all standard tests for a plugin.
func RunAllTests(t *testing.T, p output.Plugin, config TestConfig) {
	TestBasicInterface(t, p, config.ExpectedName)
	TestGeneration(t, p, config.ExpectedFiles)
	TestFlags(t, p, config.ExpectedName)
}

// TestConfig holds configuration for running plugin tests.
type TestConfig struct {
	ExpectedName  string   // Plugin name
	ExpectedFiles []string // Files that Generate() should return for default options
}
