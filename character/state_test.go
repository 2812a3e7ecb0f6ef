package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/milk9111/mood/common"
)

const frame = 1.0 / 60.0

func TestIdleToWalkingToIdle(t *testing.T) {
	r := newRig()
	var changes [][2]State
	r.c.SubscribeStateChanged(func(from, to State) {
		changes = append(changes, [2]State{from, to})
	})

	r.body.vel = common.Vec3{X: 300}
	r.c.Tick(frame)
	require.Equal(t, StateWalking, r.c.State())

	r.c.Tick(frame)
	assert.Equal(t, r.c.Tuning().WalkingSpeed, r.body.maxSpeed)

	r.body.vel = common.Vec3{X: 5}
	r.c.Tick(frame)
	assert.Equal(t, StateIdle, r.c.State())
	assert.Equal(t, [][2]State{{StateIdle, StateWalking}, {StateWalking, StateIdle}}, changes)
}

func TestSprintRequiresSpeed(t *testing.T) {
	r := newRig()

	r.c.Sprint()
	assert.Equal(t, StateIdle, r.c.State(), "standing still cannot sprint")

	r.body.vel = common.Vec3{X: 500}
	r.c.Sprint()
	require.Equal(t, StateSprinting, r.c.State())

	r.c.Tick(frame)
	assert.Equal(t, r.c.Tuning().SprintingSpeed, r.body.maxSpeed)
	assert.Greater(t, r.camera.fov, 90.0, "fov widens toward sprinting fov")

	r.c.StopSprinting()
	assert.Equal(t, StateWalking, r.c.State())
}

func TestSprintingSlowsToWalking(t *testing.T) {
	r := newRig()
	r.body.vel = common.Vec3{X: 500}
	r.c.Sprint()
	require.Equal(t, StateSprinting, r.c.State())

	r.body.vel = common.Vec3{}
	r.c.Tick(frame)
	assert.Equal(t, StateWalking, r.c.State())
}

func TestStopSprintingOnlyLeavesSprint(t *testing.T) {
	r := newRig()
	r.c.changeState(StateNoControl)

	r.c.StopSprinting()
	assert.Equal(t, StateNoControl, r.c.State())
}

func TestUnknownStateFallsBackToIdle(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	r := newRig()
	r.c.logger = zap.New(core)
	r.c.state = State(42)

	r.c.Tick(frame)

	assert.Equal(t, StateIdle, r.c.State())
	assert.Equal(t, 1, logs.FilterMessage("unknown player state, falling back to idle").Len())
}

func TestRollClearedWhenInControl(t *testing.T) {
	r := newRig()
	r.view.rot = common.Rotator{Yaw: 45, Roll: 12}

	r.c.Tick(frame)

	assert.Equal(t, common.Rotator{Yaw: 45}, r.view.rot)
}

func TestHeadBobOnlyOnGround(t *testing.T) {
	r := newRig()
	r.c.Tick(frame)
	assert.Equal(t, []string{"idle_bob"}, r.camera.shakes)

	r.camera.shakes = nil
	r.body.vel = common.Vec3{Z: -20}
	r.c.Tick(frame)
	assert.NotContains(t, r.camera.shakes, "idle_bob")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "climbing_ledge", StateClimbingLedge.String())
	assert.Equal(t, "state(9)", State(9).String())
}
