package main

import (
	"go.uber.org/zap"

	"github.com/milk9111/mood/prefabs"
)

// pollReloads applies every prefab change the watcher has queued without
// blocking the frame.
func (g *Game) pollReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.applyReload(path)
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.logger.Warn("prefab watcher", zap.Error(err))
			}
		default:
			return
		}
	}
}

func (g *Game) applyReload(path string) {
	kind := prefabs.Classify(path)
	log := g.logger.With(zap.String("path", path))

	switch kind {
	case prefabs.ChangeShakes:
		spec, err := prefabs.LoadShakesSpec()
		if err != nil {
			log.Warn("reload shakes", zap.Error(err))
			return
		}
		g.shakeDefs = shakeDefs(spec)
		if g.session != nil {
			g.session.shakes.SetDefs(g.shakeDefs)
		}
	case prefabs.ChangeSounds:
		spec, err := prefabs.LoadSoundsSpec()
		if err != nil {
			log.Warn("reload sounds", zap.Error(err))
			return
		}
		g.sounds = g.loadSounds(spec)
		if g.session != nil {
			g.session.audio.SetSounds(g.sounds)
		}
	case prefabs.ChangeScript:
		if g.session != nil {
			g.session.ai.Reload()
		}
	case prefabs.ChangePlayer:
		if g.session == nil {
			return
		}
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			log.Warn("reload player", zap.Error(err))
			return
		}
		tuning, err := spec.Tuning()
		if err != nil {
			log.Warn("reload player", zap.Error(err))
			return
		}
		if p, ok := firstPlayer(g.session); ok {
			p.Character.SetTuning(tuning)
		}
	case prefabs.ChangeLevel, prefabs.ChangeMood, prefabs.ChangeWeapons, prefabs.ChangeEnemy:
		if g.session == nil {
			return
		}
		level, state := g.session.level, g.state
		if err := g.startLevel(level); err != nil {
			return
		}
		// a reload while paused stays paused
		g.setState(state)
	default:
		return
	}
	log.Info("prefab reloaded")
}
