// Package script provides an output plugin that writes a dark mode
// initialisation script. Loaded in the document head, it applies the "dark"
// class before first paint so the page never flashes the light theme.
package script

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/autotheme/internal/output"
	tmplloader "github.com/jmylchreest/autotheme/internal/output/template"
)

//go:embed *.tmpl
var templates embed.FS

const (
	// TemplateName is the embedded script template.
	TemplateName = "darkmode.js.tmpl"

	// FileName is the name of the generated script.
	FileName = "darkmode.js"

	// DefaultStorageKey is the localStorage key holding the user's choice.
	DefaultStorageKey = "darkMode"

	// DarkClass is the class the stylesheet keys its dark overrides on.
	DarkClass = "dark"
)

// Plugin implements the output.Plugin interface for the dark mode script.
type Plugin struct {
	outputDir  string
	storageKey string
	logger     hclog.Logger
}

// New creates a new dark mode script plugin.
func New() *Plugin {
	return &Plugin{
		storageKey: DefaultStorageKey,
		logger:     hclog.NewNullLogger(),
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "script"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "darkmode.js that follows the system preference and remembers the user's toggle"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.outputDir, "script.output-dir", "", "Output directory (default: directory of --output)")
	cmd.Flags().StringVar(&p.storageKey, "script.storage-key", DefaultStorageKey, "localStorage key that remembers the dark mode choice")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if p.storageKey == "" {
		return errors.New("script.storage-key cannot be empty")
	}
	if strings.ContainsAny(p.storageKey, "\"\\\n\r") {
		return fmt.Errorf("script.storage-key %q must not contain quotes, backslashes or newlines", p.storageKey)
	}
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

// scriptData is the view the script template renders.
type scriptData struct {
	StorageKey string
	DarkClass  string
}

// Generate renders darkmode.js. The script is the same for every theme.
func (p *Plugin) Generate(data *output.ThemeData) (map[string][]byte, error) {
	if data == nil || data.Theme == nil {
		return nil, output.ErrNilTheme
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	loader := tmplloader.New("script", templates).WithLogger(p.logger)
	content, _, err := loader.Load(TemplateName)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(TemplateName).Funcs(output.TemplateFuncs()).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse script template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, scriptData{StorageKey: p.storageKey, DarkClass: DarkClass}); err != nil {
		return nil, fmt.Errorf("failed to execute script template: %w", err)
	}

	return map[string][]byte{FileName: buf.Bytes()}, nil
}

// Templates exposes the embedded templates for listing and dumping.
func (p *Plugin) Templates() fs.FS {
	return templates
}
