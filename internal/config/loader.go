package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the user and local config directories.
const configFile = "runner.yaml"

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files are decoded on top of the defaults, so partial files only override what they set.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseRunner(data)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseRunner(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parseRunner(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseRunner(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// presetOverride captures the keys that decide whether a file preset sets the ramp.
type presetOverride struct {
	Difficulty struct {
		Preset DifficultyPreset `yaml:"preset"`
	} `yaml:"difficulty"`
	Speed struct {
		Ramp *float64 `yaml:"ramp"`
	} `yaml:"speed"`
}

// parseRunner decodes YAML over the hardcoded defaults and validates the result.
// A difficulty preset in the file sets the ramp unless the file also sets speed.ramp.
func parseRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	var override presetOverride
	if err := yaml.Unmarshal(data, &override); err != nil {
		return cfg, err
	}
	if preset := override.Difficulty.Preset; preset != "" && override.Speed.Ramp == nil {
		if ParsePreset(string(preset)) == "" {
			return cfg, ValidationError{Field: "difficulty.preset", Message: fmt.Sprintf("unknown preset %q", preset)}
		}
		ApplyRunnerPreset(&cfg, preset)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
// Only the ramp changes; base and max stay so speed is always in [base, max].
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.Preset = preset
	cfg.Speed.Ramp = RampForPreset(preset)
}
