package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/milk9111/mood/character"
	"github.com/milk9111/mood/common"
	"github.com/milk9111/mood/ecs"
	"github.com/milk9111/mood/ecs/component"
)

// Shape categories. Climbable solids carry both catWorldStatic and
// catClimbable.
const (
	catWorldStatic uint = 1 << iota
	catClimbable
	catWorldDynamic
	catPawn
)

// stepHeight is how far below a pawn's feet geometry stops blocking it, so
// pawns walk along the tops of crates.
const stepHeight = 12.0

// shapeInfo is stored in cp.Shape.UserData. cp works in the XY plane; the
// vertical extent lives here.
type shapeInfo struct {
	entity     ecs.Entity
	minZ, maxZ float64
	min, max   common.Vec3
	pawn       bool
}

type pawnBody struct {
	body  *cp.Body
	shape *cp.Shape
	info  *shapeInfo
}

// PhysicsSystem mirrors solids and enemies into a Chipmunk space and answers
// the character's world queries against it.
type PhysicsSystem struct {
	space  *cp.Space
	logger *zap.Logger
	world  *ecs.World

	statics map[ecs.Entity]*cp.Shape
	pawns   map[ecs.Entity]*pawnBody
}

func NewPhysicsSystem(logger *zap.Logger) *PhysicsSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	space := cp.NewSpace()
	space.Iterations = 10
	return &PhysicsSystem{
		space:   space,
		logger:  logger.Named("physics"),
		statics: make(map[ecs.Entity]*cp.Shape),
		pawns:   make(map[ecs.Entity]*pawnBody),
	}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.Sync(w)
}

// Sync adds new geometry, moves enemy bodies to their transforms and drops
// shapes whose entities are gone.
func (ps *PhysicsSystem) Sync(w *ecs.World) {
	ps.world = w

	ecs.ForEach(w, component.SolidComponent.Kind(), func(e ecs.Entity, s *component.Solid) {
		if _, ok := ps.statics[e]; ok {
			return
		}
		ps.addSolid(e, s)
	})
	for e, shape := range ps.statics {
		if !ecs.Has(w, e, component.SolidComponent.Kind()) {
			ps.space.RemoveShape(shape)
			delete(ps.statics, e)
		}
	}

	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(),
		func(e ecs.Entity, enemy *component.Enemy, t *component.Transform, c *component.Collider) {
			if enemy.Dead {
				return
			}
			pb, ok := ps.pawns[e]
			if !ok {
				pb = ps.addPawn(e, c)
			}
			pb.body.SetPosition(cp.Vector{X: t.Location.X, Y: t.Location.Y})
			pb.info.minZ = t.Location.Z - c.HalfHeight
			pb.info.maxZ = t.Location.Z + c.HalfHeight
			ps.space.ReindexShapesForBody(pb.body)
		})
	for e, pb := range ps.pawns {
		enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
		if ok && !enemy.Dead {
			continue
		}
		ps.space.RemoveShape(pb.shape)
		ps.space.RemoveBody(pb.body)
		delete(ps.pawns, e)
	}
}

func (ps *PhysicsSystem) addSolid(e ecs.Entity, s *component.Solid) {
	bb := cp.BB{L: s.Min.X, B: s.Min.Y, R: s.Max.X, T: s.Max.Y}
	shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
	cats := catWorldStatic
	if s.Climbable {
		cats |= catClimbable
	}
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, cats, cp.ALL_CATEGORIES))
	shape.UserData = &shapeInfo{entity: e, minZ: s.Min.Z, maxZ: s.Max.Z, min: s.Min, max: s.Max}
	ps.space.AddShape(shape)
	ps.statics[e] = shape
}

func (ps *PhysicsSystem) addPawn(e ecs.Entity, c *component.Collider) *pawnBody {
	body := cp.NewKinematicBody()
	shape := cp.NewCircle(body, c.Radius, cp.Vector{})
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, catPawn, cp.ALL_CATEGORIES))
	info := &shapeInfo{entity: e, pawn: true}
	shape.UserData = info
	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	pb := &pawnBody{body: body, shape: shape, info: info}
	ps.pawns[e] = pb
	return pb
}

// sweepHit is the nearest shape along a query.
type sweepHit struct {
	info     *shapeInfo
	location common.Vec3
	alpha    float64
}

// sweep runs a segment query of the given radius in the XY plane and keeps
// hits whose vertical extent overlaps [z-below, z+above] at the point of
// contact.
func (ps *PhysicsSystem) sweep(start, end common.Vec3, radius, below, above float64, mask uint) (sweepHit, bool) {
	best := sweepHit{alpha: math.Inf(1)}
	found := false
	a := cp.Vector{X: start.X, Y: start.Y}
	b := cp.Vector{X: end.X, Y: end.Y}
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, mask)

	ps.space.SegmentQuery(a, b, radius, filter, func(shape *cp.Shape, point, normal cp.Vector, alpha float64, _ interface{}) {
		info, ok := shape.UserData.(*shapeInfo)
		if !ok || alpha >= best.alpha {
			return
		}
		z := start.Z + (end.Z-start.Z)*alpha
		if z+above < info.minZ || z-below > info.maxZ {
			return
		}
		best = sweepHit{info: info, location: common.Vec3{X: point.X, Y: point.Y, Z: z}, alpha: alpha}
		found = true
	}, nil)
	return best, found
}

func channelMask(ch character.Channel) uint {
	switch ch {
	case character.ChannelClimbable:
		return catClimbable
	case character.ChannelInterruptClimbing:
		return catWorldStatic | catPawn
	default:
		return 0
	}
}

func objectMask(objects character.ObjectType) uint {
	var mask uint
	if objects&character.ObjectWorldStatic != 0 {
		mask |= catWorldStatic
	}
	if objects&character.ObjectWorldDynamic != 0 {
		mask |= catWorldDynamic
	}
	if objects&character.ObjectPawn != 0 {
		mask |= catPawn
	}
	return mask
}

// LineTrace reports the first blocking shape on the channel between start
// and end.
func (ps *PhysicsSystem) LineTrace(start, end common.Vec3, channel character.Channel) character.Hit {
	mask := channelMask(channel)
	if ps == nil || mask == 0 {
		return character.Hit{}
	}
	h, ok := ps.sweep(start, end, 0, 0, 0, mask)
	if !ok {
		return character.Hit{}
	}
	return ps.toHit(h)
}

// CapsuleSweep moves an upright capsule from start to end against the given
// object types.
func (ps *PhysicsSystem) CapsuleSweep(start, end common.Vec3, radius, halfHeight float64, objects character.ObjectType) character.Hit {
	mask := objectMask(objects)
	if ps == nil || mask == 0 {
		return character.Hit{}
	}
	h, ok := ps.sweep(start, end, math.Max(radius, 0), halfHeight, halfHeight, mask)
	if !ok {
		return character.Hit{}
	}
	return ps.toHit(h)
}

func (ps *PhysicsSystem) toHit(h sweepHit) character.Hit {
	hit := character.Hit{Blocked: true, Location: h.location}
	if h.info.pawn {
		hit.Actor = &enemyActor{w: ps.world, e: h.info.entity}
	}
	return hit
}

// Blocked reports whether a pawn capsule moving from start to end runs into
// static geometry taller than a step.
func (ps *PhysicsSystem) Blocked(start, end common.Vec3, radius, halfHeight float64) bool {
	if ps == nil {
		return false
	}
	_, hit := ps.sweep(start, end, radius, halfHeight-stepHeight, halfHeight, catWorldStatic)
	return hit
}

// LineOfSight is true when no static geometry lies between two points.
func (ps *PhysicsSystem) LineOfSight(from, to common.Vec3) bool {
	if ps == nil {
		return true
	}
	_, hit := ps.sweep(from, to, 0, 0, 0, catWorldStatic)
	return !hit
}

// GroundHeight is the highest walkable surface under a capsule centred at
// loc. The level floor is at zero.
func (ps *PhysicsSystem) GroundHeight(loc common.Vec3, radius, halfHeight float64) float64 {
	ground := 0.0
	if ps == nil {
		return ground
	}
	feet := loc.Z - halfHeight
	bb := cp.BB{L: loc.X - radius, B: loc.Y - radius, R: loc.X + radius, T: loc.Y + radius}
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, catWorldStatic)
	ps.space.BBQuery(bb, filter, func(shape *cp.Shape, _ interface{}) {
		info, ok := shape.UserData.(*shapeInfo)
		if !ok || info.pawn {
			return
		}
		if info.maxZ <= feet+stepHeight && info.maxZ > ground {
			ground = info.maxZ
		}
	}, nil)
	return ground
}

// enemyActor is the character's view of an enemy hit by a trace.
type enemyActor struct {
	w *ecs.World
	e ecs.Entity
}

func (a *enemyActor) Location() common.Vec3 {
	t, ok := ecs.Get(a.w, a.e, component.TransformComponent.Kind())
	if !ok {
		return common.Vec3{}
	}
	return t.Location
}

func (a *enemyActor) Valid() bool {
	enemy, ok := ecs.Get(a.w, a.e, component.EnemyComponent.Kind())
	return ok && !enemy.Dead
}

func (a *enemyActor) TargetHealth() character.TargetHealth {
	enemy, ok := ecs.Get(a.w, a.e, component.EnemyComponent.Kind())
	if !ok || enemy.Health == nil {
		return nil
	}
	return enemy.Health
}

func (a *enemyActor) Entity() ecs.Entity { return a.e }
