package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadXonix loads the Xonix configuration and validates it.
// Search order: customPath -> ~/.xonix/configs/xonix.yaml ->
// ./configs/xonix.yaml -> embedded default.
func LoadXonix(customPath string) (XonixConfig, error) {
	var cfg XonixConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("xonix.yaml"), "configs/xonix.yaml"} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			continue
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(defaultXonixYAML, &cfg); err != nil {
		return DefaultXonixConfig(), nil // fall back to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty when
// the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".xonix", "configs", filename)
}
