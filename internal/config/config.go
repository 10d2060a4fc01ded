// Package config loads and validates autotheme configuration.
//
// Values are layered with viper: built-in defaults, then a config file, then
// AUTOTHEME_* environment variables, then flags the user actually set.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/jmylchreest/autotheme/internal/colour"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// AUTOTHEME_HARMONY or AUTOTHEME_CONTRASTTARGET.
const EnvPrefix = "AUTOTHEME"

// FileNames are the config files searched for, in order, when no explicit
// path is given.
var FileNames = []string{"autotheme.json", ".autothemerc.json", ".autothemerc"}

// fileTypes are the extensions read in their own format.
var fileTypes = []string{"json", "yaml", "yml", "toml"}

// Config holds every setting that shapes a generated theme.
type Config struct {
	// Color is the primary colour: a string such as "#6439ff", or an object
	// with r/g/b or h/s/l fields. Empty means a random vibrant colour.
	Color any `mapstructure:"color" json:"color,omitempty"`

	// Image is a file, directory or URL the primary colour is extracted
	// from when Color is empty.
	Image string `mapstructure:"image" json:"image,omitempty"`

	// ImageTimeout bounds fetching Image when it is a URL.
	ImageTimeout time.Duration `mapstructure:"imageTimeout" json:"imageTimeout,omitempty"`

	Harmony string `mapstructure:"harmony" json:"harmony"`
	Output  string `mapstructure:"output" json:"output"`

	// Extra outputs.
	Preview        bool `mapstructure:"preview" json:"preview"`
	Tailwind       bool `mapstructure:"tailwind" json:"tailwind"`
	DarkModeScript bool `mapstructure:"darkModeScript" json:"darkModeScript"`
	JSON           bool `mapstructure:"json" json:"json"`
	Swatch         bool `mapstructure:"swatch" json:"swatch"`

	Scalar         float64 `mapstructure:"scalar" json:"scalar"`
	ContrastTarget float64 `mapstructure:"contrastTarget" json:"contrastTarget"`
	Radius         string  `mapstructure:"radius" json:"radius"`
	Prefix         string  `mapstructure:"prefix" json:"prefix"`
	FontSize       float64 `mapstructure:"fontSize" json:"fontSize"`

	// Feature toggles for the CSS output.
	Gradients bool `mapstructure:"gradients" json:"gradients"`
	Spacing   bool `mapstructure:"spacing" json:"spacing"`
	Noise     bool `mapstructure:"noise" json:"noise"`
	Shadcn    bool `mapstructure:"shadcn" json:"shadcn"`
	Utilities bool `mapstructure:"utilities" json:"utilities"`

	// File is the config file the values were read from, if any.
	File string `mapstructure:"-" json:"-"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Color:          "",
		Harmony:        string(colour.DefaultHarmony),
		Output:         "./src/autotheme.css",
		ImageTimeout:   10 * time.Second,
		Scalar:         1.618,
		ContrastTarget: colour.DefaultContrastTarget,
		Radius:         "0.625rem",
		Prefix:         "color",
		FontSize:       1,
		Gradients:      true,
		Spacing:        true,
		Noise:          true,
		Shadcn:         true,
		Utilities:      true,
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("color", d.Color)
	v.SetDefault("image", d.Image)
	v.SetDefault("imageTimeout", d.ImageTimeout)
	v.SetDefault("harmony", d.Harmony)
	v.SetDefault("output", d.Output)
	v.SetDefault("preview", d.Preview)
	v.SetDefault("tailwind", d.Tailwind)
	v.SetDefault("darkModeScript", d.DarkModeScript)
	v.SetDefault("json", d.JSON)
	v.SetDefault("swatch", d.Swatch)
	v.SetDefault("scalar", d.Scalar)
	v.SetDefault("contrastTarget", d.ContrastTarget)
	v.SetDefault("radius", d.Radius)
	v.SetDefault("prefix", d.Prefix)
	v.SetDefault("fontSize", d.FontSize)
	v.SetDefault("gradients", d.Gradients)
	v.SetDefault("spacing", d.Spacing)
	v.SetDefault("noise", d.Noise)
	v.SetDefault("shadcn", d.Shadcn)
	v.SetDefault("utilities", d.Utilities)
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"color":            "color",
	"image":            "image",
	"image-timeout":    "imageTimeout",
	"harmony":          "harmony",
	"output":           "output",
	"preview":          "preview",
	"tailwind":         "tailwind",
	"dark-mode-script": "darkModeScript",
	"json":             "json",
	"swatch":           "swatch",
	"scalar":           "scalar",
	"contrast-target":  "contrastTarget",
	"radius":           "radius",
	"prefix":           "prefix",
	"font-size":        "fontSize",
}

// negatedFlags are boolean flags that switch a feature off.
var negatedFlags = map[string]string{
	"no-gradients": "gradients",
	"no-spacing":   "spacing",
	"no-noise":     "noise",
	"no-shadcn":    "shadcn",
	"no-utilities": "utilities",
}

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// Path is an explicit config file. It must exist.
	Path string

	// Dir is searched for FileNames when Path is empty. Defaults to ".".
	Dir string

	// Flags, when set, overrides any value whose flag was changed.
	Flags *pflag.FlagSet
}

// Load resolves configuration from all layers. The result is not validated.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	file, err := findFile(opts)
	if err != nil {
		return nil, err
	}
	if file != "" {
		if err := readFile(v, file); err != nil {
			return nil, err
		}
	}

	if opts.Flags != nil {
		if err := bindFlags(v, opts.Flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.File = file

	return &cfg, nil
}

// findFile returns the config file to read, or "" when there is none.
func findFile(opts LoadOptions) (string, error) {
	if opts.Path != "" {
		if _, err := os.Stat(opts.Path); err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("config file not found: %s", opts.Path)
			}
			return "", fmt.Errorf("failed to access config file %s: %w", opts.Path, err)
		}
		return opts.Path, nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", nil
}

func readFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	// .autothemerc and other files without a known extension are JSON.
	if !slices.Contains(fileTypes, strings.TrimPrefix(filepath.Ext(path), ".")) {
		v.SetConfigType("json")
	}

	if err := v.ReadInConfig(); err != nil {
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return fmt.Errorf("invalid config file %s: %w", path, err)
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}

	var errs []error
	flags.Visit(func(f *pflag.Flag) {
		key, ok := negatedFlags[f.Name]
		if !ok {
			return
		}
		off, err := flags.GetBool(f.Name)
		if err != nil {
			errs = append(errs, err)
			return
		}
		if off {
			v.Set(key, false)
		}
	})
	return errors.Join(errs...)
}

var prefixPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error

	if !c.colorUnset() {
		if _, err := colour.ParseInput(c.Color); err != nil {
			errs = append(errs, fmt.Errorf("color: %w", err))
		}
	}
	if _, err := colour.ParseHarmony(c.Harmony); err != nil {
		errs = append(errs, fmt.Errorf("harmony: %w", err))
	}
	if strings.TrimSpace(c.Output) == "" {
		errs = append(errs, errors.New("output: must not be empty"))
	}
	if c.Scalar <= 0 {
		errs = append(errs, fmt.Errorf("scalar: must be positive, got %v", c.Scalar))
	}
	if c.ContrastTarget < 3 || c.ContrastTarget > 21 {
		errs = append(errs, fmt.Errorf("contrastTarget: must be between 3 and 21, got %v", c.ContrastTarget))
	}
	if !prefixPattern.MatchString(c.Prefix) {
		errs = append(errs, fmt.Errorf("prefix: %q must start with a letter and contain only letters, digits and hyphens", c.Prefix))
	}
	if c.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("fontSize: must be positive, got %v", c.FontSize))
	}
	if c.ImageTimeout < 0 {
		errs = append(errs, fmt.Errorf("imageTimeout: must not be negative, got %v", c.ImageTimeout))
	}

	return errors.Join(errs...)
}

func (c *Config) colorUnset() bool {
	if c.Color == nil {
		return true
	}
	s, ok := c.Color.(string)
	return ok && strings.TrimSpace(s) == ""
}

// Resolved is a validated configuration with typed primary colour and
// harmony.
type Resolved struct {
	Config

	Primary colour.Colour
	Harmony colour.Harmony

	// Random is true when no colour or image was configured and Primary was
	// picked at random.
	Random bool

	// FromImage is set when no colour was configured but an image was. The
	// caller extracts Primary from it.
	FromImage string
}

// Resolve validates c and converts its colour and harmony. A missing colour
// is replaced by colour.RandomColour unless an image is configured.
func (c *Config) Resolve() (*Resolved, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	r := &Resolved{Config: *c}
	switch {
	case !c.colorUnset():
		primary, err := colour.ParseInput(c.Color)
		if err != nil {
			return nil, err
		}
		r.Primary = primary
	case strings.TrimSpace(c.Image) != "":
		r.FromImage = strings.TrimSpace(c.Image)
	default:
		r.Primary = colour.RandomColour()
		r.Random = true
	}

	h, err := colour.ParseHarmony(c.Harmony)
	if err != nil {
		return nil, err
	}
	r.Harmony = h

	return r, nil
}
