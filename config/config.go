// Package config loads runtime settings: asset locations, save files,
// logging and the random seed. Board size and frame rate are fixed in
// game/types and are not configurable.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Config struct {
	Assets  AssetsConfig  `yaml:"assets"`
	Storage StorageConfig `yaml:"storage"`
	History HistoryConfig `yaml:"history"`
	Log     LogConfig     `yaml:"log"`
	RNG     RNGConfig     `yaml:"rng"`
}

// AssetsConfig locates the sound files.
type AssetsConfig struct {
	Dir        string `yaml:"dir"`
	PointSound string `yaml:"point_sound"`
	LossSound  string `yaml:"loss_sound"`
}

// StorageConfig locates the high score.
type StorageConfig struct {
	Path          string `yaml:"path"`
	HighScoreSlot int    `yaml:"high_score_slot"`
}

// HistoryConfig locates the run log. An empty path disables it.
type HistoryConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

type RNGConfig struct {
	Seed uint64 `yaml:"seed"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if _, err := cfg.LogLevel(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}

func (a AssetsConfig) PointSoundPath() string {
	return filepath.Join(a.Dir, a.PointSound)
}

func (a AssetsConfig) LossSoundPath() string {
	return filepath.Join(a.Dir, a.LossSound)
}
