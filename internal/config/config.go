package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultDataDir is where the links database lives unless overridden.
const DefaultDataDir = "~/.local/share/linkhoard"

// Settings holds the user-tunable configuration, read from
// ~/.config/linkhoard/config.yaml when present.
type Settings struct {
	// DataDir is the directory holding links.db
	DataDir string `yaml:"data_dir"`
	// DefaultTags are applied to every link ingested by drop or paste
	DefaultTags string `yaml:"default_tags"`
	// AutoTag derives tags (folder, extension) from the dropped target
	AutoTag bool `yaml:"auto_tag"`
}

func defaults() *Settings {
	return &Settings{
		DataDir: DefaultDataDir,
		AutoTag: true,
	}
}

// Load reads settings from the config file, falling back to defaults when
// the file is absent. The LINKHOARD_DATA env var overrides the data dir.
func Load() (*Settings, error) {
	s := defaults()

	path, err := configPath()
	if err == nil {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, s); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	if env := os.Getenv("LINKHOARD_DATA"); env != "" {
		s.DataDir = env
	}
	if s.DataDir == "" {
		s.DataDir = DefaultDataDir
	}
	return s, nil
}

func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "linkhoard", "config.yaml"), nil
}
