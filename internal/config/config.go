package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// File is the project configuration read from .pco.yaml. Zero values mean
// "not set" and fall through to defaults during resolution.
type File struct {
	VersionFile  string   `yaml:"version_file"`
	Exclude      []string `yaml:"exclude"`
	Format       string   `yaml:"format"`
	Theme        string   `yaml:"theme"`
	NoColor      *bool    `yaml:"no_color"`
	License      []string `yaml:"license"`
	Copyright    []string `yaml:"copyright"`
	AllowedTypes []string `yaml:"allowed_types"`
}

// Constants for default values.
const (
	DefaultFileName    = ".pco.yaml"
	DefaultVersionFile = "VERSION"
	DefaultFormat      = "auto"
	DefaultTheme       = "default"
)

// Load reads the configuration for the project at root. An explicit path must
// exist; the default .pco.yaml is optional. The returned string is the path
// actually read, or "" when defaults are used.
func Load(root, path string, logger *log.Logger) (*File, string, error) {
	if logger == nil {
		logger = log.Default()
	}
	explicit := path != ""
	if !explicit {
		path = filepath.Join(root, DefaultFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			logger.Debug("no config file, using defaults", "path", path)
			return &File{}, "", nil
		}
		return nil, "", fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, "", fmt.Errorf("config %s: %w", path, err)
	}
	logger.Debug("loaded config", "path", path)
	return cfg, path, nil
}

// Parse decodes a .pco.yaml document. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var cfg File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &cfg, nil
}
