// Package config provides Viper-based configuration loading for the game
// binary.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// WindowConfig holds the ebiten window settings.
type WindowConfig struct {
	Title      string `mapstructure:"title"`
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Fullscreen bool   `mapstructure:"fullscreen"`
}

// GameConfig holds session settings.
type GameConfig struct {
	// StartLevel is loaded directly when the menu is skipped.
	StartLevel string `mapstructure:"start_level"`
	// SkipMenu starts StartLevel without showing the main menu.
	SkipMenu         bool    `mapstructure:"skip_menu"`
	MouseSensitivity float64 `mapstructure:"mouse_sensitivity"`
}

// PrefabsConfig points at the prefab directory read before the embedded
// copies.
type PrefabsConfig struct {
	Dir       string `mapstructure:"dir"`
	HotReload bool   `mapstructure:"hot_reload"`
}

type AudioConfig struct {
	// MasterVolume scales every cue, 0 to 1.
	MasterVolume float64 `mapstructure:"master_volume"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Window  WindowConfig  `mapstructure:"window"`
	Game    GameConfig    `mapstructure:"game"`
	Prefabs PrefabsConfig `mapstructure:"prefabs"`
	Audio   AudioConfig   `mapstructure:"audio"`
}

// Validate checks all configuration invariants and reports every violation.
func (c Config) Validate() error {
	return errors.Join(
		validateLogging(c.Logging),
		validateWindow(c.Window),
		validateGame(c.Game),
		validatePrefabs(c.Prefabs),
		validateAudio(c.Audio),
	)
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateWindow(w WindowConfig) error {
	var errs []string
	if w.Width < 320 {
		errs = append(errs, fmt.Sprintf("window.width must be >= 320, got %d", w.Width))
	}
	if w.Height < 240 {
		errs = append(errs, fmt.Sprintf("window.height must be >= 240, got %d", w.Height))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.SkipMenu && g.StartLevel == "" {
		errs = append(errs, "game.start_level must be set when game.skip_menu is true")
	}
	if g.MouseSensitivity <= 0 {
		errs = append(errs, fmt.Sprintf("game.mouse_sensitivity must be > 0, got %v", g.MouseSensitivity))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validatePrefabs(p PrefabsConfig) error {
	if p.HotReload && p.Dir == "" {
		return errors.New("prefabs.dir must be set when prefabs.hot_reload is true")
	}
	return nil
}

func validateAudio(a AudioConfig) error {
	if a.MasterVolume < 0 || a.MasterVolume > 1 {
		return fmt.Errorf("audio.master_volume must be 0-1, got %v", a.MasterVolume)
	}
	return nil
}

// Load reads configuration from path, applies MOOD_ environment overrides and
// validates the result. An empty path loads defaults and environment only.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetEnvPrefix("MOOD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default is the configuration used with no file and no environment.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	cfg, _ := LoadFromViper(v)
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("window.title", "MOOD")
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.fullscreen", false)

	v.SetDefault("game.start_level", "level1")
	v.SetDefault("game.skip_menu", false)
	v.SetDefault("game.mouse_sensitivity", 0.15)

	v.SetDefault("prefabs.dir", "prefabs")
	v.SetDefault("prefabs.hot_reload", true)

	v.SetDefault("audio.master_volume", 0.8)
}
