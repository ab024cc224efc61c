package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional YAML document passed via --config. A non-empty
// CLI flag wins over a string value set here; strict_warnings is OR-ed with
// --strict-warnings, so the flag cannot turn it off.
type fileConfig struct {
	RoleFile       string `yaml:"role_file"`
	TableFile      string `yaml:"table_file"`
	Format         string `yaml:"format"`
	Output         string `yaml:"output"`
	StrictWarnings bool   `yaml:"strict_warnings"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	if path == "" {
		return &fileConfig{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// firstNonEmpty returns flag if it was set, else falls back to the value
// loaded from the config file.
func firstNonEmpty(flag, fromConfig string) string {
	if flag != "" {
		return flag
	}
	return fromConfig
}
