package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that points at a config file.
const EnvConfigPath = "SKIFREE_CONFIG"

// LoadSkiFree loads the SkiFree configuration.
// Search order: customPath -> $SKIFREE_CONFIG -> ~/.skifree/configs/skifree.yaml ->
// ./configs/skifree.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides the
// keys it sets. Only an explicitly requested file is required to exist.
func LoadSkiFree(customPath string) (SkiFreeConfig, error) {
	if customPath == "" {
		customPath = os.Getenv(EnvConfigPath)
	}

	// Explicit path: errors are fatal
	if customPath != "" {
		cfg := DefaultSkiFreeConfig()
		data, err := os.ReadFile(ExpandHome(customPath))
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	candidates := []string{
		userConfigPath("skifree.yaml"),
		filepath.Join("configs", "skifree.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := DefaultSkiFreeConfig()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	cfg := DefaultSkiFreeConfig()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		return DefaultSkiFreeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// normalize replaces unusable values with defaults.
func normalize(cfg SkiFreeConfig) SkiFreeConfig {
	def := DefaultSkiFreeConfig()
	if cfg.Display.CellWidth <= 0 {
		cfg.Display.CellWidth = def.Display.CellWidth
	}
	if cfg.Display.CellHeight <= 0 {
		cfg.Display.CellHeight = def.Display.CellHeight
	}
	if cfg.Input.ReleaseAfterTicks <= 0 {
		cfg.Input.ReleaseAfterTicks = def.Input.ReleaseAfterTicks
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
	if cfg.Scores.DB == "" {
		cfg.Scores.DB = def.Scores.DB
	}
	if cfg.Scores.Top <= 0 {
		cfg.Scores.Top = def.Scores.Top
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skifree", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
