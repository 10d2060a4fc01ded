// Package output provides the interface and base types for output plugins.
package output

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/autotheme/internal/colour"
)

// ErrNilTheme is returned by Generate when no theme is given.
var ErrNilTheme = errors.New("theme cannot be nil")

// Options are the generation settings shared by every plugin.
type Options struct {
	// Output is the path of the main stylesheet. Plugins without an output
	// directory of their own write alongside it.
	Output string

	Prefix   string
	Radius   string
	Scalar   float64
	FontSize float64

	Gradients bool
	Spacing   bool
	Noise     bool
	Shadcn    bool
	Utilities bool
}

// DefaultOptions mirrors the default configuration.
func DefaultOptions() Options {
	return Options{
		Output:    "./src/autotheme.css",
		Prefix:    "color",
		Radius:    "0.625rem",
		Scalar:    1.618,
		FontSize:  1,
		Gradients: true,
		Spacing:   true,
		Noise:     true,
		Shadcn:    true,
		Utilities: true,
	}
}

// ThemeData is what plugins render: a generated theme plus the options that
// shape its output.
type ThemeData struct {
	Theme   *colour.Theme
	Options Options
}

// NewThemeData bundles a theme with its options.
func NewThemeData(theme *colour.Theme, opts Options) *ThemeData {
	return &ThemeData{Theme: theme, Options: opts}
}

// Plugin represents an output plugin that generates files from a theme.
type Plugin interface {
	// Name returns the plugin's name (e.g., "css", "tailwind").
	Name() string

	// Description returns a human-readable description of the plugin.
	Description() string

	// Generate creates output file(s) from the given theme.
	// Returns map of filename -> content to support plugins that generate multiple files.
	Generate(data *ThemeData) (map[string][]byte, error)

	// RegisterFlags registers plugin-specific flags with cobra command.
	RegisterFlags(cmd *cobra.Command)

	// Validate checks if the plugin configuration is valid.
	Validate() error

	// DefaultOutputDir returns the directory the plugin writes to. Empty
	// means the directory of Options.Output.
	DefaultOutputDir() string
}

// TemplateProvider is implemented by plugins that render embedded templates
// which users can override.
type TemplateProvider interface {
	Templates() fs.FS
}

// LoggerSetter is implemented by plugins that log while generating.
type LoggerSetter interface {
	SetLogger(logger hclog.Logger)
}

// OutputDir returns where p's files go for the given options.
func OutputDir(p Plugin, opts Options) string {
	if dir := p.DefaultOutputDir(); dir != "" {
		return dir
	}
	return filepath.Dir(opts.Output)
}

// Registry holds all registered output plugins.
type Registry struct {
	plugins map[string]Plugin
}

// NewRegistry creates a new plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin to the registry.
func (r *Registry) Register(plugin Plugin) {
	r.plugins[plugin.Name()] = plugin
}

// Get retrieves a plugin by name.
func (r *Registry) Get(name string) (Plugin, bool) {
	plugin, ok := r.plugins[name]
	return plugin, ok
}

// List returns all registered plugin names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all registered plugins.
func (r *Registry) All() map[string]Plugin {
	// Return a copy to prevent external modification
	plugins := make(map[string]Plugin, len(r.plugins))
	for name, plugin := range r.plugins {
		plugins[name] = plugin
	}
	return plugins
}
