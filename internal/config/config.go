package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for xorkit. All fields
// are pointers so the CLI can tell "unset" from zero values when applying
// CLI > local > global precedence.
type FileConfig struct {
	// KeyFile is read as the key operand when the command line omits one.
	KeyFile *string `yaml:"key_file"`

	// In, KeyEnc and Out name codec encodings (raw|hex|base64) for the data
	// operand, the key operand and the result.
	In     *string `yaml:"in"`
	KeyEnc *string `yaml:"key_enc"`
	Out    *string `yaml:"out"`

	NoColor *bool `yaml:"no_color"`

	// Audit enables the transform audit log; AuditPath overrides its location.
	Audit     *bool   `yaml:"audit"`
	AuditPath *string `yaml:"audit_path"`

	NoUpdateCheck *bool `yaml:"no_update_check"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a directory-local config file in the given root.
// It supports .xorkit.yml/.yaml and xorkit.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".xorkit.yml", ".xorkit.yaml", "xorkit.yml", "xorkit.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "xorkit", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
