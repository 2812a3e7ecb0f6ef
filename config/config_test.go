package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Window:  WindowConfig{Title: "MOOD", Width: 1280, Height: 720},
		Game:    GameConfig{StartLevel: "level1", MouseSensitivity: 0.15},
		Prefabs: PrefabsConfig{Dir: "prefabs", HotReload: true},
		Audio:   AudioConfig{MasterVolume: 0.8},
	}
}

func TestValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestDefaultIsValid(t *testing.T) {
	assert.Equal(t, validConfig(), Default())
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "level1", cfg.Game.StartLevel)
	assert.Equal(t, 1280, cfg.Window.Width)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mood.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: debug
  format: json
window:
  width: 1920
  height: 1080
  fullscreen: true
game:
  start_level: level2
  skip_menu: true
audio:
  master_volume: 0.25
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 1920, cfg.Window.Width)
	assert.True(t, cfg.Window.Fullscreen)
	assert.Equal(t, "level2", cfg.Game.StartLevel)
	assert.True(t, cfg.Game.SkipMenu)
	assert.Equal(t, 0.25, cfg.Audio.MasterVolume)
	assert.Equal(t, "prefabs", cfg.Prefabs.Dir, "unset keys keep defaults")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("MOOD_GAME_START_LEVEL", "level2")
	t.Setenv("MOOD_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "level2", cfg.Game.StartLevel)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestValidateReportsEveryViolation(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	cfg.Window.Width = 10
	cfg.Game.MouseSensitivity = 0
	cfg.Audio.MasterVolume = 2

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"logging.level", "window.width", "game.mouse_sensitivity", "audio.master_volume"} {
		assert.ErrorContains(t, err, want)
	}
}

func TestValidateCrossFieldRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"skip menu without level", func(c *Config) { c.Game.SkipMenu = true; c.Game.StartLevel = "" }, "game.start_level"},
		{"hot reload without dir", func(c *Config) { c.Prefabs.Dir = "" }, "prefabs.dir"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"short window", func(c *Config) { c.Window.Height = 100 }, "window.height"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tc.want)
		})
	}
}

func TestMasterVolumeRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := validConfig()
		cfg.Audio.MasterVolume = rapid.Float64Range(-2, 3).Draw(t, "volume")
		err := cfg.Validate()
		inRange := cfg.Audio.MasterVolume >= 0 && cfg.Audio.MasterVolume <= 1
		if inRange != (err == nil) {
			t.Fatalf("volume %v: err=%v", cfg.Audio.MasterVolume, err)
		}
	})
}
