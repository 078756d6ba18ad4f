// Package config loads ufmt settings from ufmt.toml or ufmt.yaml.
//
// Lookup order: an explicit path, then ufmt.toml / ufmt.yaml / ufmt.yml in
// the working directory or any parent, then ufmt/config.toml or
// ufmt/config.yaml under the XDG config directories. Command-line flags
// override whatever was loaded.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the full set of tunables.
type Config struct {
	Render RenderConfig `toml:"render" yaml:"render"`
	Dump   DumpConfig   `toml:"dump" yaml:"dump"`
	Trace  TraceConfig  `toml:"trace" yaml:"trace"`
	Color  string       `toml:"color" yaml:"color"`
}

// RenderConfig holds the field defaults used by int, float and debug.
type RenderConfig struct {
	Places int    `toml:"places" yaml:"places"`
	Align  string `toml:"align" yaml:"align"`
	Width  int    `toml:"width" yaml:"width"`
	Fill   string `toml:"fill" yaml:"fill"`
}

// DumpConfig holds settings for ufmt dump.
type DumpConfig struct {
	Template      string `toml:"template" yaml:"template"`
	FloatTemplate string `toml:"float_template" yaml:"float_template"`
	Jobs          int    `toml:"jobs" yaml:"jobs"`
	UI            string `toml:"ui" yaml:"ui"`
}

// TraceConfig mirrors the --trace* flags.
type TraceConfig struct {
	Level     string `toml:"level" yaml:"level"`
	Output    string `toml:"output" yaml:"output"`
	Mode      string `toml:"mode" yaml:"mode"`
	Format    string `toml:"format" yaml:"format"`
	Heartbeat string `toml:"heartbeat" yaml:"heartbeat"`
}

// DefaultTemplate renders a reading as its sensor name and value.
const DefaultTemplate = "{:<16} {:>24}"

// DefaultFloatTemplate is DefaultTemplate with the debug precision.
const DefaultFloatTemplate = "{:<16} {:>24.3}"

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Render: RenderConfig{
			Places: 3,
			Align:  "usual",
			Fill:   " ",
		},
		Dump: DumpConfig{
			Template:      DefaultTemplate,
			FloatTemplate: DefaultFloatTemplate,
			UI:            "auto",
		},
		Trace: TraceConfig{
			Level:  "off",
			Output: "-",
			Mode:   "stream",
			Format: "auto",
		},
		Color: "auto",
	}
}

// FileNames are the per-project config names, in lookup order.
var FileNames = []string{"ufmt.toml", "ufmt.yaml", "ufmt.yml"}

var xdgNames = []string{"ufmt/config.toml", "ufmt/config.yaml"}

// Find walks up from startDir looking for a project config, then falls back
// to the XDG config directories. ok is false when nothing was found.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	for _, rel := range xdgNames {
		if p, err := xdg.SearchConfigFile(rel); err == nil {
			return p, true, nil
		}
	}
	return "", false, nil
}

// Load reads the file at path on top of Defaults and validates the result.
// Unknown keys are errors.
func Load(path string) (Config, error) {
	cfg := Defaults()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%s: unsupported config format (want .toml, .yaml or .yml)", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads explicit when set, else whatever Find locates, else the
// defaults. The returned path is empty when defaults are used.
func Resolve(explicit, startDir string) (Config, string, error) {
	if explicit != "" {
		cfg, err := Load(explicit)
		return cfg, explicit, err
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return Defaults(), "", err
	}
	if !ok {
		return Defaults(), "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}
