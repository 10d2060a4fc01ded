// Package tailwind provides a Tailwind CSS v4 output plugin.
package tailwind

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/autotheme/internal/colour"
	"github.com/jmylchreest/autotheme/internal/output"
	"github.com/jmylchreest/autotheme/internal/output/css"
	tmplloader "github.com/jmylchreest/autotheme/internal/output/template"
)

//go:embed *.tmpl
var templates embed.FS

// TemplateName is the embedded @theme template.
const TemplateName = "tailwind.css.tmpl"

// Suffix replaces ".css" on the main output path to name this plugin's file.
const Suffix = ".tailwind.css"

// Plugin implements the output.Plugin interface for Tailwind CSS v4.
type Plugin struct {
	outputDir string
	logger    hclog.Logger
}

// New creates a new Tailwind CSS output plugin.
func New() *Plugin {
	return &Plugin{logger: hclog.NewNullLogger()}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "tailwind"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Tailwind CSS v4 stylesheet with an @theme block mapping every token"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.outputDir, "tailwind.output-dir", "", "Output directory (default: directory of --output)")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	return nil
}

// DefaultOutputDir returns the default output directory for this plugin.
func (p *Plugin) DefaultOutputDir() string {
	return p.outputDir
}

// SetLogger sets the logger used while rendering.
func (p *Plugin) SetLogger(logger hclog.Logger) {
	if logger != nil {
		p.logger = logger
	}
}

// FileName derives the Tailwind file name from the main output path:
// "autotheme.css" becomes "autotheme.tailwind.css".
func FileName(outputPath string) string {
	base := filepath.Base(outputPath)
	if strings.HasSuffix(base, ".css") {
		return strings.TrimSuffix(base, ".css") + Suffix
	}
	return base + Suffix
}

// Generate creates the full stylesheet followed by the @theme integration.
func (p *Plugin) Generate(data *output.ThemeData) (map[string][]byte, error) {
	if data == nil || data.Theme == nil {
		return nil, output.ErrNilTheme
	}

	variables, err := css.Render(data, p.logger)
	if err != nil {
		return nil, err
	}
	integration, err := p.renderTheme(data)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("/* AutoTheme Variables (Tailwind v4 compatible) */\n")
	buf.Write(variables)
	buf.WriteString("\n")
	buf.Write(integration)

	return map[string][]byte{
		FileName(data.Options.Output): buf.Bytes(),
	}, nil
}

// themeData is the view rendered by the @theme template.
type themeData struct {
	css.TemplateData

	Names       []string
	ScaleValues []int
	ToneNames   []string
}

func (p *Plugin) renderTheme(data *output.ThemeData) ([]byte, error) {
	loader := tmplloader.New("tailwind", templates).WithLogger(p.logger)
	content, _, err := loader.Load(TemplateName)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(TemplateName).Funcs(output.TemplateFuncs()).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse Tailwind template: %w", err)
	}

	td := themeData{
		TemplateData: css.BuildData(data),
		ScaleValues:  colour.TailwindScale(),
	}
	for i := range data.Theme.Palette.Palettes {
		td.Names = append(td.Names, colour.HarmonyName(i))
	}
	for i := range colour.DefaultRampOptions().ToneSteps {
		td.ToneNames = append(td.ToneNames, "tone-"+strconv.Itoa(i+1))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, td); err != nil {
		return nil, fmt.Errorf("failed to execute Tailwind template: %w", err)
	}
	return buf.Bytes(), nil
}

// Templates exposes the embedded templates for listing and dumping.
func (p *Plugin) Templates() fs.FS {
	return templates
}
