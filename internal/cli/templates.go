package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/autotheme/internal/output"
	tmplloader "github.com/jmylchreest/autotheme/internal/output/template"
)

type templatesOptions struct {
	root     *rootOptions
	registry *output.Registry
	plugins  []string
	force    bool
	location string
}

func newTemplatesCmd(root *rootOptions) *cobra.Command {
	opts := &templatesOptions{
		root:     root,
		registry: newRegistry(),
	}

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage output plugin templates",
		Long: `Manage output plugin templates including listing and dumping embedded templates.

Templates can be customized by extracting them to ~/.config/autotheme/templates/{plugin-name}/
and modifying them. Custom templates will be used instead of embedded ones.

Examples:
  autotheme templates list
  autotheme templates dump -p css
  autotheme templates dump -p css,tailwind --force`,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available plugin templates",
		Long: `List all available templates from output plugins.

Shows which templates are embedded and which have custom overrides.`,
		Args: cobra.NoArgs,
		RunE: opts.runList,
	}

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump embedded templates to files",
		Long: `Extract embedded plugin templates to ~/.config/autotheme/templates/{plugin-name}/

Use -p/--plugins to choose plugins and -l/--location for another directory.`,
		Args: cobra.NoArgs,
		RunE: opts.runDump,
	}

	for _, c := range []*cobra.Command{listCmd, dumpCmd} {
		c.Flags().StringSliceVarP(&opts.plugins, "plugins", "p", nil, "comma-separated list of output plugins (default: all)")
		c.Flags().StringVarP(&opts.location, "location", "l", "", "template directory (default: ~/.config/autotheme/templates)")
	}
	dumpCmd.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite existing custom templates")

	cmd.AddCommand(listCmd, dumpCmd)
	return cmd
}

// loaders returns a template loader per selected plugin that has templates.
func (o *templatesOptions) loaders() ([]*tmplloader.Loader, error) {
	names := o.plugins
	if len(names) == 0 {
		names = o.registry.List()
	}

	base, err := expandHome(o.location)
	if err != nil {
		return nil, err
	}

	var loaders []*tmplloader.Loader
	for _, name := range names {
		plugin, ok := o.registry.Get(name)
		if !ok {
			return nil, fmt.Errorf("plugin %q not found (available: %s)", name, strings.Join(o.registry.List(), ", "))
		}
		provider, ok := plugin.(output.TemplateProvider)
		if !ok {
			continue
		}
		loader := tmplloader.New(name, provider.Templates())
		if base != "" {
			loader = loader.WithCustomBase(base)
		}
		loaders = append(loaders, loader)
	}
	return loaders, nil
}

func (o *templatesOptions) runList(cmd *cobra.Command, args []string) error {
	loaders, err := o.loaders()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(loaders) == 0 {
		fmt.Fprintln(out, "No plugin templates available")
		return nil
	}

	table := NewTable([]string{"Plugin", "Template", "Source", "Custom path"})
	for _, loader := range loaders {
		names, err := loader.List()
		if err != nil {
			return err
		}
		for _, name := range names {
			info := loader.Info(name)
			source := "embedded"
			if info.UsingCustom {
				source = "custom"
			}
			table.AddRow([]string{loader.PluginName(), name, source, info.CustomPath})
		}
	}
	fmt.Fprint(out, table.Render())
	return nil
}

func (o *templatesOptions) runDump(cmd *cobra.Command, args []string) error {
	logger := o.root.logger(cmd)

	loaders, err := o.loaders()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	total, skipped := 0, 0
	for _, loader := range loaders {
		dumped, err := loader.DumpAll(o.force)
		for _, path := range dumped {
			logger.Debug("dumped template", "plugin", loader.PluginName(), "path", path)
			fmt.Fprintf(out, "  %s\n", path)
		}
		total += len(dumped)

		if err == nil {
			continue
		}
		if !errors.Is(err, tmplloader.ErrTemplateExists) {
			return fmt.Errorf("failed to dump templates for %s: %w", loader.PluginName(), err)
		}
		names, _ := loader.List()
		for _, name := range names {
			if info := loader.Info(name); info.UsingCustom && !slices.Contains(dumped, info.CustomPath) {
				fmt.Fprintf(out, "  %s (already exists)\n", info.CustomPath)
				skipped++
			}
		}
	}

	switch {
	case total > 0:
		fmt.Fprintf(out, "Dumped %d %s\n", total, plural(total, "template", "templates"))
	case skipped > 0:
		fmt.Fprintln(out, "No templates were dumped. Use --force to overwrite existing templates.")
	default:
		fmt.Fprintln(out, "No templates were dumped.")
	}
	return nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}
