package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmylchreest/autotheme/internal/colour"
)

// DefaultFile is the file written by Init.
const DefaultFile = "autotheme.json"

// starterColour seeds configs written by Init.
const starterColour = "#6439ff"

// starter is the subset of Config written to a new config file.
type starter struct {
	Color    string `json:"color"`
	Harmony  string `json:"harmony"`
	Output   string `json:"output"`
	Tailwind bool   `json:"tailwind"`
}

// Init writes a starter config to path. An existing file is only replaced when
// force is set.
func Init(path string, force bool) error {
	if path == "" {
		path = DefaultFile
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
		}
	}

	d := Default()
	content, err := json.MarshalIndent(starter{
		Color:   starterColour,
		Harmony: string(colour.DefaultHarmony),
		Output:  d.Output,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	content = append(content, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}
