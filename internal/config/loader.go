package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load reads a game config with the standard search order:
// customPath -> ~/.quarters/configs/<name> -> ./configs/<name> -> embedded default.
// A custom path that fails to read or parse is an error; the fallback paths
// are best-effort.
func load(customPath, filename string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	return yaml.Unmarshal(embedded, out)
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".quarters", "configs", filename)
}

// LoadBarrier loads the Barrier configuration.
func LoadBarrier(customPath string) (BarrierConfig, error) {
	var cfg BarrierConfig
	if err := load(customPath, "barrier.yaml", defaultBarrierYAML, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultBarrierConfig(), nil
	}
	return cfg, nil
}

// LoadBlockfall loads the Blockfall configuration.
func LoadBlockfall(customPath string) (BlockfallConfig, error) {
	var cfg BlockfallConfig
	if err := load(customPath, "blockfall.yaml", defaultBlockfallYAML, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultBlockfallConfig(), nil
	}
	return cfg, nil
}

// LoadGirders loads the Girders configuration.
func LoadGirders(customPath string) (GirdersConfig, error) {
	var cfg GirdersConfig
	if err := load(customPath, "girders.yaml", defaultGirdersYAML, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultGirdersConfig(), nil
	}
	return cfg, nil
}

// LoadMinigolf loads the Minigolf configuration.
func LoadMinigolf(customPath string) (MinigolfConfig, error) {
	var cfg MinigolfConfig
	if err := load(customPath, "minigolf.yaml", defaultMinigolfYAML, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultMinigolfConfig(), nil
	}
	return cfg, nil
}
