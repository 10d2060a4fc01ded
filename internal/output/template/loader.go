// Package template loads plugin templates with support for user overrides.
package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// ErrTemplateExists is returned by Dump when a custom template is already
// present and force is not set.
var ErrTemplateExists = errors.New("custom template already exists")

// Loader reads templates, preferring a user copy in
// ~/.config/autotheme/templates/{plugin}/ over the embedded default.
type Loader struct {
	pluginName string
	embedded   fs.FS
	customBase string
	logger     hclog.Logger
}

// DefaultCustomBase returns the directory that holds user templates.
func DefaultCustomBase() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(home, ".config", "autotheme", "templates")
}

// New creates a loader for pluginName backed by the embedded templates.
func New(pluginName string, embedded fs.FS) *Loader {
	return &Loader{
		pluginName: pluginName,
		embedded:   embedded,
		customBase: DefaultCustomBase(),
		logger:     hclog.NewNullLogger(),
	}
}

// WithCustomBase sets the base directory for custom templates.
func (l *Loader) WithCustomBase(customBase string) *Loader {
	l.customBase = customBase
	return l
}

// WithLogger sets the logger used to report which template was picked.
func (l *Loader) WithLogger(logger hclog.Logger) *Loader {
	if logger != nil {
		l.logger = logger
	}
	return l
}

// Load reads a template, checking for a custom override first. It reports
// whether the override was used.
func (l *Loader) Load(filename string) (content []byte, fromCustom bool, err error) {
	customPath := l.CustomPath(filename)
	if content, err := os.ReadFile(customPath); err == nil {
		l.logger.Debug("using custom template", "plugin", l.pluginName, "path", customPath)
		return content, true, nil
	}

	content, err = fs.ReadFile(l.embedded, filename)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load template %q: %w", filename, err)
	}
	l.logger.Trace("using embedded template", "plugin", l.pluginName, "name", filename)

	return content, false, nil
}

// PluginName returns the plugin the loader serves.
func (l *Loader) PluginName() string {
	return l.pluginName
}

// CustomPath returns the path where a custom template would be located.
func (l *Loader) CustomPath(filename string) string {
	return filepath.Join(l.customBase, l.pluginName, filename)
}

// CustomDir returns the directory holding this plugin's custom templates.
func (l *Loader) CustomDir() string {
	return filepath.Join(l.customBase, l.pluginName)
}

// List returns the embedded template names.
func (l *Loader) List() ([]string, error) {
	var names []string
	err := fs.WalkDir(l.embedded, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && path.Ext(p) == ".tmpl" {
			names = append(names, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded templates: %w", err)
	}
	return names, nil
}

// Dump copies an embedded template to the custom directory so it can be
// edited. Existing files are kept unless force is set.
func (l *Loader) Dump(filename string, force bool) (string, error) {
	content, err := fs.ReadFile(l.embedded, filename)
	if err != nil {
		return "", fmt.Errorf("failed to read embedded template %q: %w", filename, err)
	}

	out := l.CustomPath(filename)
	if !force {
		if _, err := os.Stat(out); err == nil {
			return out, fmt.Errorf("%w: %s (use --force to overwrite)", ErrTemplateExists, out)
		}
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %q: %w", filepath.Dir(out), err)
	}
	if err := os.WriteFile(out, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write template to %q: %w", out, err)
	}
	return out, nil
}

// DumpAll copies every embedded template. Templates that already exist are
// skipped and reported together in the returned error; other failures stop
// the dump.
func (l *Loader) DumpAll(force bool) ([]string, error) {
	names, err := l.List()
	if err != nil {
		return nil, err
	}

	var dumped []string
	var skipped []error
	for _, name := range names {
		out, err := l.Dump(name, force)
		if errors.Is(err, ErrTemplateExists) {
			skipped = append(skipped, err)
			continue
		}
		if err != nil {
			return dumped, err
		}
		dumped = append(dumped, out)
	}

	return dumped, errors.Join(skipped...)
}

// Info describes where a template would be loaded from.
type Info struct {
	Filename     string
	CustomPath   string
	UsingCustom  bool
	EmbeddedOnly bool
}

// Info reports whether filename is currently overridden.
func (l *Loader) Info(filename string) Info {
	custom := l.CustomPath(filename)
	_, err := os.Stat(custom)
	return Info{
		Filename:     filename,
		CustomPath:   custom,
		UsingCustom:  err == nil,
		EmbeddedOnly: err != nil,
	}
}
