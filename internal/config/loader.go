package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the predictor.
// Zero values mean "unspecified" and will be replaced by defaults in the CLI.
type Config struct {
	ChempropBin    string `json:"chemprop_bin" yaml:"chemprop_bin" toml:"chemprop_bin"`
	ModelsPath     string `json:"models_path" yaml:"models_path" toml:"models_path"`
	FeaturizerMode string `json:"featurizer_mode" yaml:"featurizer_mode" toml:"featurizer_mode"`
	Devices        int    `json:"devices" yaml:"devices" toml:"devices"`
	BatchSize      int    `json:"batch_size" yaml:"batch_size" toml:"batch_size"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
