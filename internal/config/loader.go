package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the physics tuning.
// Search order: customPath -> ~/.jumprunner/configs/tuning.yaml -> ./configs/tuning.yaml -> embedded default
func Load(customPath string) (Tuning, error) {
	var t Tuning

	// Try custom path first; a named file failing is an error, the fallback
	// chain only applies to the implicit locations.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return t, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &t); err != nil {
			return t, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := t.Validate(); err != nil {
			return t, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return t, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tuning.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &t); err == nil && t.Validate() == nil {
				return t, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/tuning.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &t); err == nil && t.Validate() == nil {
			return t, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTuningYAML, &t); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return t, nil
}

// userConfigPath returns the path to a config file in the user's config
// directory, or empty string if the home directory cannot be determined.
func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jumprunner", "configs", name)
}
