package main

import (
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/milk9111/mood/assets"
	"github.com/milk9111/mood/config"
	"github.com/milk9111/mood/ecs"
	"github.com/milk9111/mood/ecs/component"
	"github.com/milk9111/mood/ecs/system"
	"github.com/milk9111/mood/prefabs"
)

var playerKind = component.PlayerComponent.Kind()

type screenState int

const (
	screenMenu screenState = iota
	screenPlaying
	screenPaused
)

type Game struct {
	cfg    config.Config
	logger *zap.Logger

	watcher   *prefabs.Watcher
	shakeDefs map[string]system.ShakeDef
	sounds    map[string]system.Sound

	session *session
	state   screenState

	mainMenu  *ebitenui.UI
	pauseMenu *ebitenui.UI
	quit      bool
}

func NewGame(cfg config.Config, logger *zap.Logger, watcher *prefabs.Watcher) (*Game, error) {
	g := &Game{cfg: cfg, logger: logger, watcher: watcher}

	shakes, err := prefabs.LoadShakesSpec()
	if err != nil {
		return nil, err
	}
	g.shakeDefs = shakeDefs(shakes)

	sounds, err := prefabs.LoadSoundsSpec()
	if err != nil {
		return nil, err
	}
	g.sounds = g.loadSounds(sounds)

	levels, err := prefabs.LevelNames()
	if err != nil {
		return nil, err
	}
	g.mainMenu = NewMainMenuUI(g, levels)
	g.pauseMenu = NewPauseUI(g)

	if cfg.Game.SkipMenu {
		if err := g.startLevel(cfg.Game.StartLevel); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func shakeDefs(spec prefabs.ShakesSpec) map[string]system.ShakeDef {
	defs := make(map[string]system.ShakeDef, len(spec.Shakes))
	for name, s := range spec.Shakes {
		defs[name] = system.ShakeDef{Amplitude: s.Amplitude, Frequency: s.Frequency, Duration: s.Duration, Fade: s.Fade}
	}
	return defs
}

// loadSounds decodes file cues and synthesizes the rest. A file that fails
// to load falls back to its tone.
func (g *Game) loadSounds(spec prefabs.SoundsSpec) map[string]system.Sound {
	sounds := make(map[string]system.Sound, len(spec.Sounds))
	for name, s := range spec.Sounds {
		if s.File != "" {
			p, err := assets.LoadAudioPlayer(s.File)
			if err == nil {
				vol := s.Volume
				if vol <= 0 {
					vol = 1
				}
				sounds[name] = system.Sound{Player: p, Volume: vol}
				continue
			}
			g.logger.Warn("sound file", zap.String("name", name), zap.Error(err))
		}
		tone := assets.Tone{Frequency: s.Frequency, Slide: s.Slide, Duration: s.Duration, Volume: s.Volume, Noise: s.Noise}
		sounds[name] = system.Sound{Player: assets.NewTonePlayer(tone), Volume: 1}
	}
	return sounds
}

func (g *Game) startLevel(level string) error {
	s, err := newSession(g, level)
	if err != nil {
		g.logger.Error("start level", zap.String("level", level), zap.Error(err))
		return err
	}
	g.session = s
	g.setState(screenPlaying)
	return nil
}

func (g *Game) setState(state screenState) {
	g.state = state
	if state == screenPlaying {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

func (g *Game) resume() {
	if g.session != nil {
		g.setState(screenPlaying)
	}
}

func (g *Game) toMenu() {
	g.session = nil
	g.setState(screenMenu)
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.pollReloads()

	switch g.state {
	case screenMenu:
		g.mainMenu.Update()
	case screenPaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.resume()
			return nil
		}
		g.pauseMenu.Update()
	case screenPlaying:
		g.stepSession()
	}
	return nil
}

func (g *Game) stepSession() {
	s := g.session
	if s == nil {
		g.setState(screenMenu)
		return
	}
	for _, ev := range s.step(1 / float64(ebiten.TPS())) {
		switch ev.Type {
		case ecs.EventPause:
			g.setState(screenPaused)
		case ecs.EventEnemyKilled:
			s.render.Kills++
		case ecs.EventPlayerDied:
			g.logger.Info("player died", zap.Int("kills", s.render.Kills))
		case ecs.EventInteract:
			g.logger.Debug("interact")
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.session != nil {
		g.session.render.Draw(g.session.world, screen)
	}
	switch g.state {
	case screenMenu:
		g.mainMenu.Draw(screen)
	case screenPaused:
		g.pauseMenu.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.cfg.Window.Width), float64(g.cfg.Window.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close stops the prefab watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
