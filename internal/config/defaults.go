package config

import (
	_ "embed"
)

//go:embed defaults/skifree.yaml
var defaultSkiFreeYAML []byte

// DefaultSkiFreeConfig returns the built-in configuration.
func DefaultSkiFreeConfig() SkiFreeConfig {
	return SkiFreeConfig{
		Display: DisplayConfig{
			CellWidth:  8,
			CellHeight: 16,
			ShowHUD:    true,
		},
		Input: InputConfig{
			ReleaseAfterTicks: 12,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "~/.skifree/skifree.log",
		},
		Scores: ScoresConfig{
			DB:  "~/.skifree/scores.db",
			Top: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSkiFreeYAML
}
