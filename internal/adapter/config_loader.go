package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/codelimit/internal/model"
)

// ConfigFile is the optional configuration file name below a codebase root.
const ConfigFile = ".codelimit.yaml"

// Environment variables overriding the configuration file.
const (
	EnvHardThreshold           = "CODELIMIT_HARD_THRESHOLD"
	EnvUnmaintainableThreshold = "CODELIMIT_UNMAINTAINABLE_THRESHOLD"
	EnvMarker                  = "CODELIMIT_MARKER"
	EnvWorkers                 = "CODELIMIT_WORKERS"
	EnvExclude                 = "CODELIMIT_EXCLUDE"
)

// ErrInvalidConfig is returned when the merged configuration is unusable.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigLoader resolves the scan configuration of a codebase.
type ConfigLoader interface {
	Load(root m.Path) (m.Config, error)
}

// LocalConfigLoader reads ConfigFile from the root and applies environment overrides.
type LocalConfigLoader struct {
	getenv func(string) string
}

// NewLocalConfigLoader constructs a loader reading the process environment.
func NewLocalConfigLoader() *LocalConfigLoader {
	return &LocalConfigLoader{getenv: os.Getenv}
}

// Load starts from m.DefaultConfig, merges the file and then the environment.
// Exclude patterns accumulate; every other field is replaced.
func (l *LocalConfigLoader) Load(root m.Path) (m.Config, error) {
	cfg := m.DefaultConfig()

	if err := l.mergeFile(&cfg, filepath.Join(string(root), ConfigFile)); err != nil {
		return cfg, err
	}

	if err := l.mergeEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := Validate(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (l *LocalConfigLoader) mergeFile(cfg *m.Config, path string) error {
	// #nosec G304 - path is derived from the codebase root
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var file m.Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	if file.Thresholds.HardToMaintain != 0 {
		cfg.Thresholds.HardToMaintain = file.Thresholds.HardToMaintain
	}

	if file.Thresholds.Unmaintainable != 0 {
		cfg.Thresholds.Unmaintainable = file.Thresholds.Unmaintainable
	}

	if file.Marker != "" {
		cfg.Marker = file.Marker
	}

	if file.Workers != 0 {
		cfg.Workers = file.Workers
	}

	cfg.Excludes = append(cfg.Excludes, file.Excludes...)

	return nil
}

func (l *LocalConfigLoader) mergeEnv(cfg *m.Config) error {
	ints := []struct {
		name  string
		field *int
	}{
		{EnvHardThreshold, &cfg.Thresholds.HardToMaintain},
		{EnvUnmaintainableThreshold, &cfg.Thresholds.Unmaintainable},
		{EnvWorkers, &cfg.Workers},
	}

	for _, v := range ints {
		raw := strings.TrimSpace(l.getenv(v.name))
		if raw == "" {
			continue
		}

		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, v.name, raw)
		}

		*v.field = n
	}

	if marker := strings.TrimSpace(l.getenv(EnvMarker)); marker != "" {
		cfg.Marker = marker
	}

	for _, pattern := range strings.Split(l.getenv(EnvExclude), ",") {
		if pattern = strings.TrimSpace(pattern); pattern != "" {
			cfg.Excludes = append(cfg.Excludes, pattern)
		}
	}

	return nil
}

// Validate checks the thresholds, the marker, the worker count and the
// exclude patterns of cfg.
func Validate(cfg m.Config) error {
	if !cfg.Thresholds.Valid() {
		return fmt.Errorf("%w: thresholds must satisfy 0 < hard-to-maintain (%d) < unmaintainable (%d)",
			ErrInvalidConfig, cfg.Thresholds.HardToMaintain, cfg.Thresholds.Unmaintainable)
	}

	if strings.TrimSpace(cfg.Marker) == "" {
		return fmt.Errorf("%w: empty suppression marker", ErrInvalidConfig)
	}

	if cfg.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, cfg.Workers)
	}

	for _, pattern := range cfg.Excludes {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: bad exclude pattern %q", ErrInvalidConfig, pattern)
		}
	}

	return nil
}
