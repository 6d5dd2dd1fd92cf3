package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/routewise/router/pkg/observability"
)

// Parse parses the YAML rule tables at configPath and validates them.
// The returned config is a fresh value owned by the caller; Parse keeps no
// global state, so distinct engines can be built from distinct tables.
func Parse(configPath string) (*RouterConfig, error) {
	// Resolve symlinks to handle ConfigMap-style mounts
	resolved, _ := filepath.EvalSymlinks(configPath)
	if resolved == "" {
		resolved = configPath
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &RouterConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	observability.Infof("Loaded routing rules from %s: %d domain rules, %d tool rules, %d model rules",
		configPath, len(cfg.DomainRules), len(cfg.ToolRules), len(cfg.ModelRules))

	return cfg, nil
}
