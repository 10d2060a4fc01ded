// Package css provides the main stylesheet output plugin: shadcn variables,
// semantic tokens, Tailwind 50-950 colour scales and dark mode overrides.
package css

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"text/template"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/autotheme/internal/output"
	tmplloader "github.com/jmylchreest/autotheme/internal/output/template"
)

//go:embed *.tmpl
var templates embed.FS

// TemplateName is the embedded stylesheet template.
const TemplateName = "autotheme.css.tmpl"

// Plugin implements the output.Plugin interface for the main stylesheet.
type Plugin struct {
	outputDir string
	logger    hclog.Logger
}

// New creates a new CSS output plugin.
func New() *Plugin {
	return &Plugin{logger: hclog.NewNullLogger()}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "css"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Main stylesheet with shadcn variables, semantic tokens and OKLCH colour scales"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.outputDir, "css.output-dir", "", "Output directory (default: directory of --output)")
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

// Generate renders the stylesheet. The file is named after Options.Output.
func (p *Plugin) Generate(data *output.ThemeData) (map[string][]byte, error) {
	if data == nil || data.Theme == nil {
		return nil, output.ErrNilTheme
	}

	content, err := Render(data, p.logger)
	if err != nil {
		return nil, err
	}

	return map[string][]byte{
		filepath.Base(data.Options.Output): content,
	}, nil
}

// Render executes the stylesheet template, preferring a user override of
// TemplateName when one exists.
func Render(data *output.ThemeData, logger hclog.Logger) ([]byte, error) {
	if data == nil || data.Theme == nil {
		return nil, output.ErrNilTheme
	}

	loader := tmplloader.New("css", templates).WithLogger(logger)
	content, _, err := loader.Load(TemplateName)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(TemplateName).Funcs(output.TemplateFuncs()).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSS template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, BuildData(data)); err != nil {
		return nil, fmt.Errorf("failed to execute CSS template: %w", err)
	}

	return buf.Bytes(), nil
}

// Templates exposes the embedded templates for listing and dumping.
func (p *Plugin) Templates() fs.FS {
	return templates
}
