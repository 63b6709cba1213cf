package lilt

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds package-wide engine defaults. Load one from YAML with
// LoadConfig or LoadConfigFile and apply it with Configure:
//
//	default_ease: outQuad
//	default_auto_kill: true
//	time_scale: 1
//	frame_duration: 0.0001
//	pool_prewarm: 64
//	debug: false
type Config struct {
	// DefaultEase is the ease of freshly acquired tweens.
	DefaultEase Ease `yaml:"default_ease"`
	// DefaultAutoKill is the autokill flag of freshly acquired tweens.
	DefaultAutoKill bool `yaml:"default_auto_kill"`
	// TimeScale is the initial time scale of new Runners.
	TimeScale float64 `yaml:"time_scale"`
	// FrameDuration is the near-zero cycle length of Frame driver tweens.
	FrameDuration float64 `yaml:"frame_duration"`
	// PoolPrewarm is the number of free slots Configure creates in each
	// built-in pool.
	PoolPrewarm int `yaml:"pool_prewarm"`
	// Debug enables per-tick runner diagnostics on the warning output.
	Debug bool `yaml:"debug"`
}

const defaultFrameDuration = 1e-4

// DefaultConfig returns the configuration lilt starts with.
func DefaultConfig() Config {
	return Config{
		DefaultEase:     EaseLinear,
		DefaultAutoKill: true,
		TimeScale:       1,
		FrameDuration:   defaultFrameDuration,
	}
}

// defaults is the active configuration.
var defaults = DefaultConfig()

// CurrentConfig returns the active configuration.
func CurrentConfig() Config {
	return defaults
}

// Configure applies cfg package-wide. Invalid fields fall back to their
// defaults with a warning. It affects tweens acquired and runners created
// afterwards.
func Configure(cfg Config) {
	if cfg.TimeScale < 0 {
		warnf("config: time_scale %v must be >= 0; using 1", cfg.TimeScale)
		cfg.TimeScale = 1
	}
	if cfg.FrameDuration <= 0 {
		warnf("config: frame_duration %v must be > 0; using %v", cfg.FrameDuration, defaultFrameDuration)
		cfg.FrameDuration = defaultFrameDuration
	}
	if cfg.PoolPrewarm < 0 {
		cfg.PoolPrewarm = 0
	}
	defaults = cfg
	globalDebug = cfg.Debug

	if n := cfg.PoolPrewarm; n > 0 {
		FloatPool.Prewarm(n)
		Vec2Pool.Prewarm(n)
		Vec3Pool.Prewarm(n)
		Vec4Pool.Prewarm(n)
		QuatPool.Prewarm(n)
		ColorPool.Prewarm(n)
		StringPool.Prewarm(n)
	}
}

// LoadConfig parses YAML into a Config. Keys missing from data keep their
// DefaultConfig values.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse lilt config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile reads and parses a YAML config file. A missing file yields
// DefaultConfig and no error.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("read lilt config: %w", err)
	}
	return LoadConfig(data)
}
