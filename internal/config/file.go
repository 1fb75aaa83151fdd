package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the flags that may be set from a config file.
type fileConfig struct {
	Source        string   `yaml:"source" toml:"source"`
	Options       []string `yaml:"options" toml:"options"`
	OptionsFile   string   `yaml:"options_file" toml:"options_file"`
	Custom        bool     `yaml:"custom" toml:"custom"`
	Initial       string   `yaml:"initial" toml:"initial"`
	Title         string   `yaml:"title" toml:"title"`
	Label         string   `yaml:"label" toml:"label"`
	Width         int      `yaml:"width" toml:"width"`
	MaxRows       int      `yaml:"max_rows" toml:"max_rows"`
	Submit        bool     `yaml:"submit" toml:"submit"`
	Copy          bool     `yaml:"copy" toml:"copy"`
	CreateSession bool     `yaml:"create_session" toml:"create_session"`
	Socket        string   `yaml:"socket" toml:"socket"`
	Accent        string   `yaml:"accent" toml:"accent"`
	HelpLine      bool     `yaml:"help_line" toml:"help_line"`
	Trace         bool     `yaml:"trace" toml:"trace"`
	LogFile       string   `yaml:"log_file" toml:"log_file"`
}

func defaultFile() fileConfig {
	return fileConfig{
		Source:   "static",
		Label:    "> ",
		Submit:   true,
		HelpLine: true,
	}
}

// loadFile decodes path over fc, picking the decoder from the extension.
// Keys missing from the file keep their current values.
func loadFile(path string, fc *fileConfig) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, fc); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, fc); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, ext)
	}
	return nil
}
