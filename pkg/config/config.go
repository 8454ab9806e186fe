// Package config loads panruleorder settings from an optional TOML file
// layered over built-in defaults.
//
// Search order: $XDG_CONFIG_HOME/panruleorder/panruleorder.toml, then
// .panruleorder.toml and panruleorder.toml in the working directory. The
// first file found wins; a missing file is not an error.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kaydubbed/PanRuleOrder/pkg/errors"
	"github.com/kaydubbed/PanRuleOrder/pkg/logging"
)

// Config holds the resolved settings for one run.
type Config struct {
	Output OutputConfig `koanf:"output"`
	Target TargetConfig `koanf:"target"`
}

// OutputConfig controls document serialization.
type OutputConfig struct {
	// Indent re-indents the whole document with this many spaces when
	// greater than zero. Zero preserves the source formatting.
	Indent int `koanf:"indent"`
}

// TargetConfig supplies defaults for section selection.
type TargetConfig struct {
	// Default is the device-group used when no --target or --use-shared
	// flag is given. Empty means a flag is required.
	Default string `koanf:"default"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"output.indent":  0,
		"target.default": "",
	}
}

// Load builds the configuration from defaults plus the first config file
// found in the search path.
func Load() (*Config, error) {
	return LoadFrom(searchPaths())
}

// LoadFrom builds the configuration from defaults plus the first existing
// file in candidates. Exposed for tests.
func LoadFrom(candidates []string) (*Config, error) {
	log := logging.GetLogger("config")

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
		}
		log.Debug().Str("path", path).Msg("Loaded config file")
		break
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal config")
	}
	if cfg.Output.Indent < 0 {
		return nil, errors.Newf(errors.ErrConfigLoad, "output.indent must not be negative, got %d", cfg.Output.Indent)
	}
	return &cfg, nil
}

func searchPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, "panruleorder", "panruleorder.toml"),
		".panruleorder.toml",
		"panruleorder.toml",
	}
}
