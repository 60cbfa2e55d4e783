package model

import "runtime"

// DefaultMarker is the comment text that opts a unit out of measurement.
const DefaultMarker = "nocl"

// DefaultExcludes are skipped in every scan. Patterns match a path relative
// to the scanned root or its base name.
var DefaultExcludes = []string{".*", "venv", "site-packages", "node_modules", "__pycache__"}

// Config is the scan configuration threaded from the CLI into the workflow.
type Config struct {
	Thresholds Thresholds `yaml:"thresholds"`
	Marker     string     `yaml:"marker"`
	Excludes   []string   `yaml:"exclude"`
	Workers    int        `yaml:"workers"`
}

// DefaultConfig returns the configuration used when no file or override exists.
func DefaultConfig() Config {
	return Config{
		Thresholds: DefaultThresholds(),
		Marker:     DefaultMarker,
		Excludes:   append([]string(nil), DefaultExcludes...),
		Workers:    runtime.NumCPU(),
	}
}
