// Package config provides YAML-based configuration loading for the
// SkiFree platform: display scaling, input handling, logging and scores.
package config

// SkiFreeConfig contains all configuration for the SkiFree platform.
type SkiFreeConfig struct {
	Display DisplayConfig `yaml:"display"`
	Input   InputConfig   `yaml:"input"`
	Logging LoggingConfig `yaml:"logging"`
	Scores  ScoresConfig  `yaml:"scores"`
}

// DisplayConfig controls how the world is mapped onto terminal cells.
type DisplayConfig struct {
	CellWidth    float64 `yaml:"cell_width"`  // World units per column
	CellHeight   float64 `yaml:"cell_height"` // World units per row
	ShowHUD      bool    `yaml:"show_hud"`
	ShowHitboxes bool    `yaml:"show_hitboxes"`
}

// InputConfig controls key handling.
type InputConfig struct {
	// ReleaseAfterTicks is how long a steering key may go without a repeat
	// before it counts as released.
	ReleaseAfterTicks int `yaml:"release_after_ticks"`
}

// LoggingConfig controls the log level and destination.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Log file used while the TUI owns the terminal
}

// ScoresConfig controls the score database.
type ScoresConfig struct {
	DB  string `yaml:"db"`
	Top int    `yaml:"top"`
}
