package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/mood/common"
	"github.com/milk9111/mood/ecs"
	"github.com/milk9111/mood/ecs/component"
	"github.com/milk9111/mood/mood"
	"github.com/milk9111/mood/timescale"
)

// RenderSystem draws the level from above, centred on the player, with the
// HUD on top. World X runs right and world Y runs down the screen.
type RenderSystem struct {
	mode  *mood.GameMode
	clock *timescale.Clock
	face  ebtext.Face

	Zoom  float64
	Kills int
}

func NewRenderSystem(mode *mood.GameMode, clock *timescale.Clock) *RenderSystem {
	return &RenderSystem{
		mode:  mode,
		clock: clock,
		face:  ebtext.NewGoXFace(basicfont.Face7x13),
		Zoom:  0.35,
	}
}

type viewport struct {
	cx, cy float64
	zoom   float64
	w, h   float64
}

func (v viewport) project(p common.Vec3) (float32, float32) {
	return float32((p.X-v.cx)*v.zoom + v.w/2), float32((p.Y-v.cy)*v.zoom + v.h/2)
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(color.RGBA{R: 24, G: 22, B: 28, A: 255})

	b := screen.Bounds()
	vp := viewport{zoom: r.Zoom, w: float64(b.Dx()), h: float64(b.Dy())}
	player, hasPlayer := ecs.First(w, component.PlayerComponent.Kind())
	if hasPlayer {
		if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
			vp.cx, vp.cy = t.Location.X, t.Location.Y
		}
	}

	r.drawSolids(w, screen, vp)
	r.drawPickups(w, screen, vp)
	r.drawEnemies(w, screen, vp)
	r.drawTracers(w, screen, vp)
	if hasPlayer {
		r.drawPlayer(w, player, screen, vp)
	}

	if r.clock != nil && r.clock.Dilation() < 1 {
		vector.FillRect(screen, 0, 0, float32(vp.w), float32(vp.h), color.RGBA{R: 40, G: 60, B: 120, A: 60}, false)
	}
	r.drawHUD(w, player, hasPlayer, screen, vp)
}

func (r *RenderSystem) drawSolids(w *ecs.World, screen *ebiten.Image, vp viewport) {
	ecs.ForEach(w, component.SolidComponent.Kind(), func(_ ecs.Entity, s *component.Solid) {
		x0, y0 := vp.project(s.Min)
		x1, y1 := vp.project(s.Max)
		// taller geometry reads lighter
		shade := uint8(common.Clamp(60+s.Max.Z/4, 60, 180))
		fill := color.RGBA{R: shade, G: shade, B: shade + 10, A: 255}
		vector.FillRect(screen, x0, y0, x1-x0, y1-y0, fill, false)
		edge := colornames.Dimgray
		if s.Climbable {
			edge = colornames.Goldenrod
		}
		vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, edge, false)
	})
}

func (r *RenderSystem) drawPickups(w *ecs.World, screen *ebiten.Image, vp viewport) {
	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Pickup, t *component.Transform) {
		x, y := vp.project(t.Location)
		radius := p.Radius
		if radius <= 0 {
			radius = defaultPickupRadius
		}
		bob := 1 + 0.15*math.Sin(p.BobPhase)
		vector.FillCircle(screen, x, y, float32(radius*vp.zoom*bob), colornames.Limegreen, true)
	})
}

func (r *RenderSystem) drawEnemies(w *ecs.World, screen *ebiten.Image, vp viewport) {
	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(),
		func(e ecs.Entity, enemy *component.Enemy, t *component.Transform, c *component.Collider) {
			x, y := vp.project(t.Location)
			rad := float32(c.Radius * vp.zoom)
			vector.FillCircle(screen, x, y, rad, colornames.Crimson, true)

			facing := t.Rotation.FlatForward().Scale(c.Radius * 1.5)
			fx, fy := vp.project(t.Location.Add(facing))
			vector.StrokeLine(screen, x, y, fx, fy, 2, colornames.Lightpink, true)

			if enemy.Health != nil {
				pct := float32(enemy.Health.Percent())
				vector.FillRect(screen, x-rad, y-rad-6, 2*rad, 3, colornames.Darkred, false)
				vector.FillRect(screen, x-rad, y-rad-6, 2*rad*pct, 3, colornames.Orangered, false)
			}
			if ai, ok := ecs.Get(w, e, component.AIComponent.Kind()); ok && ai.State != "" {
				ebtext.Draw(screen, ai.State, r.face, textAt(float64(x+rad+2), float64(y-rad)))
			}
		})
}

func (r *RenderSystem) drawTracers(w *ecs.World, screen *ebiten.Image, vp viewport) {
	ecs.ForEach(w, component.TracerComponent.Kind(), func(_ ecs.Entity, tr *component.Tracer) {
		x0, y0 := vp.project(tr.From)
		x1, y1 := vp.project(tr.To)
		clr := colornames.Lightyellow
		if tr.Hit {
			clr = colornames.Orange
		}
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, clr, true)
	})
}

func (r *RenderSystem) drawPlayer(w *ecs.World, e ecs.Entity, screen *ebiten.Image, vp viewport) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	radius := 40.0
	if c, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok {
		radius = c.Radius
	}
	x, y := vp.project(t.Location)

	if view, ok := ecs.Get(w, e, component.ViewComponent.Kind()); ok {
		rot := view.Rotation.Add(view.ShakeOffset)
		reach := 600.0
		for _, off := range []float64{-view.FOV / 2, view.FOV / 2} {
			edge := common.Rotator{Yaw: rot.Yaw + off}.FlatForward().Scale(reach)
			ex, ey := vp.project(t.Location.Add(edge))
			vector.StrokeLine(screen, x, y, ex, ey, 1, color.RGBA{R: 200, G: 200, B: 255, A: 80}, true)
		}
		aim := rot.FlatForward().Scale(reach)
		ax, ay := vp.project(t.Location.Add(aim))
		vector.StrokeLine(screen, x, y, ax, ay, 1, colornames.Lightskyblue, true)
	}
	vector.FillCircle(screen, x, y, float32(radius*vp.zoom), colornames.Steelblue, true)
}

func (r *RenderSystem) drawHUD(w *ecs.World, e ecs.Entity, hasPlayer bool, screen *ebiten.Image, vp viewport) {
	var p *component.Player
	if hasPlayer {
		p, _ = ecs.Get(w, e, component.PlayerComponent.Kind())
	}

	y := 16.0
	line := func(s string) {
		ebtext.Draw(screen, s, r.face, textAt(12, y))
		y += 16
	}

	if p != nil && p.Health != nil {
		pct := float32(p.Health.Percent())
		vector.FillRect(screen, 12, float32(y)-12, 200, 10, colornames.Darkred, false)
		vector.FillRect(screen, 12, float32(y)-12, 200*pct, 10, colornames.Red, false)
		ebtext.Draw(screen, fmt.Sprintf("%d", p.Health.Current()), r.face, textAt(220, y-12))
		y += 8
	}
	if r.mode != nil {
		line(fmt.Sprintf("MOOD %d  [%s]", r.mode.Value(), r.mode.Tier()))
	}
	if p != nil && p.Weapons != nil {
		if wp := p.Weapons.Selected(); wp != nil {
			line(fmt.Sprintf("%s  %.1f/s", wp.Name, wp.FireRate()))
		}
	}
	line(fmt.Sprintf("KILLS %d", r.Kills))

	if p == nil || p.Character == nil {
		return
	}
	c := p.Character
	line(c.State().String())

	center := func(s string, dy float64) {
		x := vp.w/2 - float64(len(s))*7/2
		ebtext.Draw(screen, s, r.face, textAt(x, vp.h/2+dy))
	}
	switch {
	case c.IsDead() && !c.HasRespawned():
		center("YOU DIED - press ENTER", 0)
	case c.IsExecuting():
		center("EXECUTING", -60)
	case c.HasFoundExecutableEnemy():
		center("[F] EXECUTE", -60)
	}
}

func textAt(x, y float64) *ebtext.DrawOptions {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colornames.White)
	return op
}
