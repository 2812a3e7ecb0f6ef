package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/mood/config"
	"github.com/milk9111/mood/observability"
	"github.com/milk9111/mood/prefabs"
)

func main() {
	configPath := flag.String("config", "", "path to a config yaml (optional)")
	levelName := flag.String("level", "", "level name in prefabs/levels; skips the main menu")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *levelName != "" {
		cfg.Game.StartLevel = *levelName
		cfg.Game.SkipMenu = true
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	prefabs.Dir = cfg.Prefabs.Dir

	var watcher *prefabs.Watcher
	if cfg.Prefabs.HotReload {
		watcher, err = prefabs.NewWatcher(cfg.Prefabs.Dir)
		if err != nil {
			logger.Warn("prefab hot reload disabled", zap.String("dir", cfg.Prefabs.Dir), zap.Error(err))
			watcher = nil
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	game, err := NewGame(cfg, logger, watcher)
	if err != nil {
		logger.Fatal("start game", zap.Error(err))
	}
	defer func() { _ = game.Close() }()

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("run game", zap.Error(err))
	}
}
