// Package security provides path validation for files autotheme writes.
package security

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateFilePath checks that filePath, a name relative to baseDir, cannot
// escape baseDir once joined.
func ValidateFilePath(filePath, baseDir string) error {
	if filePath == "" {
		return fmt.Errorf("empty file path")
	}

	if filepath.IsAbs(filePath) {
		return fmt.Errorf("absolute file paths are not allowed: %s", filePath)
	}

	for _, part := range strings.Split(filepath.ToSlash(filePath), "/") {
		if part == ".." {
			return fmt.Errorf("file path contains directory traversal (..): %s", filePath)
		}
	}

	cleanFinal := filepath.Clean(filepath.Join(baseDir, filePath))
	cleanBase := filepath.Clean(baseDir)
	if cleanFinal == cleanBase {
		return fmt.Errorf("file path resolves to the base directory: %s", filePath)
	}
	if cleanBase != "." && !strings.HasPrefix(cleanFinal, cleanBase+string(filepath.Separator)) {
		return fmt.Errorf("file path would escape base directory: %s", filePath)
	}

	return nil
}
