// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flight

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"github.com/adammhal/adammhal.github.io/anim"
	"github.com/adammhal/adammhal.github.io/asset"
	"github.com/adammhal/adammhal.github.io/prefs"
	"github.com/adammhal/adammhal.github.io/solar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = time.Second / 60

func boxModel(h float32) *asset.Model {
	ms := &asset.Mesh{Vertex: []float32{-h, -h, -h, h, h, h, h, -h, h}}
	ms.Complete()
	leaf := asset.NewNode("mesh")
	leaf.Mesh = ms
	root := asset.NewNode("scene")
	root.Children = append(root.Children, leaf)
	return &asset.Model{Root: root}
}

type fixture struct {
	sys   *solar.System
	sched *anim.Scheduler
	flags *prefs.Memory
	fc    *Controller
	loads int
	fail  bool
}

func newFixture(t *testing.T) *fixture {
	fx := &fixture{sched: &anim.Scheduler{}, flags: &prefs.Memory{}}
	fx.sys = solar.NewSystem(solar.DefaultBodies(), nil, rand.New(rand.NewPCG(1, 1)))
	require.NotNil(t, fx.sys.Attach("About Me & Skills", boxModel(1)))
	ld := asset.LoaderFunc(func(path string) (*asset.Model, error) {
		fx.loads++
		if fx.fail {
			return nil, errors.New("missing rocket")
		}
		return boxModel(0.05), nil
	})
	fx.fc = New(fx.sys, fx.sched, ld, fx.flags, rand.New(rand.NewPCG(2, 2)))
	return fx
}

// frames runs n frames with the given keys held.
func (fx *fixture) frames(n int, keys Keys) {
	for range n {
		fx.sched.Step(frame)
		fx.fc.Update(keys)
	}
}

// spawned waits for the model load and the scale in.
func (fx *fixture) spawned(t *testing.T) {
	require.True(t, fx.fc.Spawn())
	_, err := fx.fc.load.Wait(context.Background())
	require.NoError(t, err)
	fx.frames(70, Keys{})
	require.Equal(t, Active, fx.fc.State())
}

func rockets(sys *solar.System) int {
	n := 0
	for _, kid := range sys.Root.Children {
		if kid.Name == "rocket" {
			n++
		}
	}
	return n
}

func TestSpawn(t *testing.T) {
	fx := newFixture(t)
	var states []State
	fx.fc.OnStateChange = func(st State) { states = append(states, st) }
	fx.spawned(t)
	rk := fx.fc.Rocket()
	require.NotNil(t, rk)
	assert.Equal(t, math32.Vec3(15, 15, 15), rk.Node.Pose.Scale)
	assert.Equal(t, math32.Vec3(50, 0, 0), rk.Node.Pose.Pos)
	assert.True(t, rk.Hitbox.Hidden)
	assert.Len(t, rk.Exhaust.Particles, 100)
	assert.Equal(t, []State{Spawning, Active}, states)
	assert.Equal(t, 1, rockets(fx.sys))
}

func TestTransitionGuards(t *testing.T) {
	fx := newFixture(t)
	assert.False(t, fx.fc.Despawn(true))
	assert.False(t, fx.fc.Despawn(false))
	assert.Equal(t, Absent, fx.fc.State())

	require.True(t, fx.fc.Spawn())
	assert.False(t, fx.fc.Spawn())
	assert.False(t, fx.fc.Despawn(true))
	assert.False(t, fx.fc.Toggle())
	assert.Equal(t, Spawning, fx.fc.State())
}

func TestDoubleToggle(t *testing.T) {
	fx := newFixture(t)
	assert.True(t, fx.fc.Toggle())
	_, err := fx.fc.load.Wait(context.Background())
	require.NoError(t, err)
	fx.frames(10, Keys{})
	assert.False(t, fx.fc.Toggle())
	fx.frames(70, Keys{})
	assert.Equal(t, Active, fx.fc.State())
	assert.Equal(t, 1, fx.loads)
	assert.Equal(t, 1, rockets(fx.sys))
}

func TestDespawnAnimated(t *testing.T) {
	fx := newFixture(t)
	fx.spawned(t)
	fx.frames(20, Keys{Forward: true})
	require.True(t, fx.fc.Toggle())
	assert.Equal(t, Despawning, fx.fc.State())
	assert.Zero(t, fx.fc.Rocket().Velocity)
	assert.False(t, fx.fc.Despawn(true))
	assert.False(t, fx.fc.Despawn(false))
	assert.Equal(t, Despawning, fx.fc.State())
	assert.NotNil(t, fx.fc.Rocket())
	assert.False(t, fx.fc.Toggle())
	fx.frames(45, Keys{})
	assert.Equal(t, Absent, fx.fc.State())
	assert.Nil(t, fx.fc.Rocket())
	assert.Zero(t, rockets(fx.sys))
}

func TestLoadFailure(t *testing.T) {
	fx := newFixture(t)
	fx.fail = true
	require.True(t, fx.fc.Spawn())
	fx.fc.load.Wait(context.Background())
	fx.frames(1, Keys{})
	assert.Equal(t, Absent, fx.fc.State())
	assert.Zero(t, rockets(fx.sys))
}

func TestVelocityClamp(t *testing.T) {
	fx := newFixture(t)
	fx.spawned(t)
	rk := fx.fc.Rocket()
	rk.Node.Pose.Pos = math32.Vec3(500, 0, 0)
	for range 300 {
		fx.frames(1, Keys{Forward: true})
		assert.GreaterOrEqual(t, rk.Velocity, -fx.fc.MaxSpeed)
	}
	assert.Equal(t, -fx.fc.MaxSpeed, rk.Velocity)

	fx.frames(400, Keys{Back: true})
	assert.Equal(t, fx.fc.MaxSpeed, rk.Velocity)

	fx.frames(200, Keys{})
	assert.Zero(t, rk.Velocity)
}

func TestYawAndMove(t *testing.T) {
	fx := newFixture(t)
	fx.spawned(t)
	rk := fx.fc.Rocket()
	start := rk.Node.Pose.Pos
	fx.frames(10, Keys{Forward: true})
	// with yaw pi/2 the local -z axis points along world -x
	assert.Less(t, rk.Node.Pose.Pos.X, start.X)
	assert.InDelta(t, 0, rk.Node.Pose.Pos.Z, 1e-4)

	// turning left while coasting drifts toward +z
	fx.frames(30, Keys{Left: true})
	assert.Greater(t, rk.Node.Pose.Pos.Z, float32(0))
}

func TestFirstSpawnTutorial(t *testing.T) {
	fx := newFixture(t)
	shown := 0
	fx.fc.OnTutorial = func() { shown++ }
	fx.spawned(t)
	assert.True(t, fx.flags.Flag(prefs.RocketTutorialShown))
	assert.Equal(t, 1, shown)

	require.True(t, fx.fc.Despawn(false))
	fx.spawned(t)
	fx.frames(60, Keys{})
	assert.Equal(t, 1, shown)
}

func TestCollision(t *testing.T) {
	fx := newFixture(t)
	fx.spawned(t)
	assert.False(t, fx.fc.CheckCollision())

	body := fx.sys.BodyByName("About Me & Skills")
	fx.fc.Rocket().Node.Pose.Pos = body.WorldPos()
	fx.frames(1, Keys{})
	assert.Equal(t, Absent, fx.fc.State())
	assert.Nil(t, fx.fc.Rocket())
	require.Len(t, fx.fc.Explosions, 1)
	ex := fx.fc.Explosions[0]

	fx.frames(5, Keys{})
	assert.Len(t, fx.fc.Explosions, 1)
	assert.Greater(t, ex.Node.Pose.Scale.X, float32(0))
	assert.Less(t, ex.Opacity(), float32(1))

	fx.frames(60, Keys{})
	assert.Empty(t, fx.fc.Explosions)
	assert.NotContains(t, fx.sys.Root.Children, ex.Node)
}

func TestCollisionSeveralBodies(t *testing.T) {
	fx := newFixture(t)
	require.NotNil(t, fx.sys.Attach("Projects", boxModel(30)))
	fx.spawned(t)
	var states []State
	fx.fc.OnStateChange = func(st State) { states = append(states, st) }

	about := fx.sys.BodyByName("About Me & Skills")
	projects := fx.sys.BodyByName("Projects")
	pos := about.WorldPos()
	fx.fc.Rocket().Node.Pose.Pos = pos
	hb := fx.fc.Rocket().Hitbox.WorldBBox()
	require.True(t, hb.IntersectsBox(about.Bounds()))
	require.True(t, hb.IntersectsBox(projects.Bounds()))

	fx.frames(1, Keys{})
	require.Len(t, fx.fc.Explosions, 1)
	assert.InDelta(t, 0, fx.fc.Explosions[0].Node.Pose.Pos.Sub(pos).Length(), 1e-4)
	assert.Equal(t, []State{Despawning, Absent}, states)
	assert.False(t, fx.fc.CheckCollision())

	fx.frames(10, Keys{})
	assert.Len(t, fx.fc.Explosions, 1)
	assert.Len(t, states, 2)
}

func TestExhaust(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 7))
	ex := NewExhaust(100, rnd)
	for _, pt := range ex.Particles {
		assert.True(t, pt.Parked())
	}
	check := func() {
		for _, pt := range ex.Particles {
			assert.GreaterOrEqual(t, pt.Life, float32(0))
			assert.LessOrEqual(t, pt.Life, float32(1))
		}
	}

	// forward motion (negative velocity) emits at the nozzle
	for range 200 {
		ex.Step(-0.5, 0.5)
		check()
	}
	assert.True(t, ex.Visible)
	emitting := 0
	for _, pt := range ex.Particles {
		if !pt.Parked() {
			emitting++
			assert.LessOrEqual(t, math32.Abs(pt.Pos.X), float32(0.04))
		}
	}
	assert.Greater(t, emitting, 0)

	// positive velocity never emits, so every particle ends up parked
	for range 200 {
		ex.Step(0.5, 0.5)
		check()
	}
	for _, pt := range ex.Particles {
		assert.True(t, pt.Parked())
		assert.Less(t, pt.Pos.Z, float32(-900))
	}

	ex.Step(0.001, 0.5)
	assert.False(t, ex.Visible)
}

func TestExhaustZeroMaxSpeed(t *testing.T) {
	ex := NewExhaust(20, rand.New(rand.NewPCG(5, 5)))
	for range 100 {
		ex.Step(-0.5, 0)
	}
	assert.False(t, ex.Visible)
	for _, pt := range ex.Particles {
		assert.False(t, math32.IsNaN(pt.Life))
		assert.True(t, pt.Parked())
	}
}
