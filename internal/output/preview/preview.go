// Package preview provides an output plugin that writes an HTML page
// showing every variable of the generated stylesheet.
package preview

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/autotheme/internal/colour"
	"github.com/jmylchreest/autotheme/internal/output"
	tmplloader "github.com/jmylchreest/autotheme/internal/output/template"
)

//go:embed *.tmpl
var templates embed.FS

// TemplateName is the embedded page template.
const TemplateName = "preview.html.tmpl"

// Suffix replaces ".css" on the main output path to name the page.
const Suffix = ".preview.html"

var (
	tintScales  = []int{50, 100, 200, 300, 400}
	shadeScales = []int{600, 700, 800, 900, 950}
)

// Plugin implements the output.Plugin interface for the preview page.
type Plugin struct {
	outputDir string
	logger    hclog.Logger
}

// New creates a new preview output plugin.
func New() *Plugin {
	return &Plugin{logger: hclog.NewNullLogger()}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "preview"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "HTML page showing the colour scales, gradients, noise and type scale"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.outputDir, "preview.output-dir", "", "Output directory (default: directory of --output)")
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

// FileName derives the page name from the main output path:
// "autotheme.css" becomes "autotheme.preview.html".
func FileName(outputPath string) string {
	base := filepath.Base(outputPath)
	if strings.HasSuffix(base, ".css") {
		return strings.TrimSuffix(base, ".css") + Suffix
	}
	return base + Suffix
}

// PageData is the view the page template renders.
type PageData struct {
	Prefix     string
	Stylesheet string
	Harmony    string
	Primary    string
	Options    output.Options

	Colours     []string
	TintScales  []int
	ShadeScales []int
	Tones       []int
	Gradients   []string
	TextSizes   []string
}

// BuildData flattens a theme into page data. The stylesheet link is the base
// name of the main output, so the page works when written next to it.
func BuildData(data *output.ThemeData) PageData {
	theme := data.Theme
	opts := data.Options

	pd := PageData{
		Prefix:      opts.Prefix,
		Stylesheet:  filepath.Base(opts.Output),
		Harmony:     string(theme.Harmony),
		Primary:     theme.Primary.Hex(),
		Options:     opts,
		TintScales:  tintScales,
		ShadeScales: shadeScales,
		TextSizes:   output.TextSizeNames,
	}
	for i := range colour.DefaultRampOptions().ToneSteps {
		pd.Tones = append(pd.Tones, i+1)
	}
	for i := range theme.Palette.Palettes {
		name := colour.HarmonyName(i)
		pd.Colours = append(pd.Colours, name)
		if i > 0 {
			pd.Gradients = append(pd.Gradients, name)
		}
	}
	return pd
}

// Generate renders the preview page.
func (p *Plugin) Generate(data *output.ThemeData) (map[string][]byte, error) {
	if data == nil || data.Theme == nil {
		return nil, output.ErrNilTheme
	}

	loader := tmplloader.New("preview", templates).WithLogger(p.logger)
	content, _, err := loader.Load(TemplateName)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(TemplateName).Funcs(template.FuncMap(output.TemplateFuncs())).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse preview template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, BuildData(data)); err != nil {
		return nil, fmt.Errorf("failed to execute preview template: %w", err)
	}

	return map[string][]byte{
		FileName(data.Options.Output): buf.Bytes(),
	}, nil
}

// Templates exposes the embedded templates for listing and dumping.
func (p *Plugin) Templates() fs.FS {
	return templates
}
