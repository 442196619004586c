package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadKolor loads Kolor configuration.
// Search order: customPath -> ~/.kolor/configs/kolor.yaml -> ./configs/kolor.yaml -> embedded default
// Keys missing from a file keep their default values.
func LoadKolor(customPath string) (KolorConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return KolorConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseKolor(data)
		if err != nil {
			return KolorConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("kolor.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseKolor(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/kolor.yaml"); err == nil {
		if cfg, err := parseKolor(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseKolor(defaultKolorYAML)
	if err != nil {
		return DefaultKolorConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseKolor decodes YAML over the defaults and validates the result.
func parseKolor(data []byte) (KolorConfig, error) {
	cfg := DefaultKolorConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return KolorConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return KolorConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir, err := DataDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// DataDir returns ~/.kolor, the home of configs, the database and logs.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, ".kolor"), nil
}
