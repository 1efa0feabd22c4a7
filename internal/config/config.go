// Package config loads the optional scanwrap.yaml project file. The file
// carries default scan settings plus named profiles; both use the same
// key=value vocabulary as the --set flag, so every configuration layer is
// merged the same way (see internal/settings).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/rkotas/scanwrap/pkg/scanwrap"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig is the parsed contents of scanwrap.yaml.
type ProjectConfig struct {
	// Defaults are applied to every scan before profiles and flags.
	Defaults map[string]string `yaml:"defaults"`
	// Profiles are named setting bundles selected with --profile.
	Profiles map[string]map[string]string `yaml:"profiles"`
}

const ConfigFileName = "scanwrap.yaml"

// Load reads scanwrap.yaml from dir. Returns ErrConfigNotFound when the
// file is absent; callers treat that as an empty configuration.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ConfigFileName, err)
	}
	return &cfg, nil
}

// Profile returns the settings of the named profile. An unknown name is a
// configuration error that lists the available profiles.
func (c *ProjectConfig) Profile(name string) (map[string]string, error) {
	if settings, ok := c.Profiles[name]; ok {
		return settings, nil
	}
	return nil, fmt.Errorf("unknown profile %q (available: %v): %w",
		name, c.ProfileNames(), scanwrap.ErrInvalidConfig)
}

// ProfileNames returns the defined profile names, sorted.
func (c *ProjectConfig) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
