package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/autotheme/internal/security"
)

// Write writes files into dir and returns the written paths in sorted order.
// In dry-run mode nothing touches the disk; the paths that would have been
// written are logged and returned. File names must stay inside dir.
func Write(logger hclog.Logger, dir string, files map[string][]byte, dryRun bool) ([]string, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := security.ValidateFilePath(name, dir); err != nil {
			return nil, fmt.Errorf("invalid output file name: %w", err)
		}
	}

	paths := make([]string, 0, len(names))
	for _, name := range names {
		content := files[name]
		path := filepath.Join(dir, name)

		if dryRun {
			logger.Info("would write file", "path", path, "bytes", len(content))
			paths = append(paths, path)
			continue
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return paths, fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return paths, fmt.Errorf("failed to write %s: %w", path, err)
		}
		logger.Info("wrote file", "path", path, "bytes", len(content))
		paths = append(paths, path)
	}

	return paths, nil
}
