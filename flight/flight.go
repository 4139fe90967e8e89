// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flight implements the pilotable rocket: its spawn and despawn
// state machine, keyboard flight, exhaust particles and collisions with
// the orbiting bodies.
package flight

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/adammhal/adammhal.github.io/anim"
	"github.com/adammhal/adammhal.github.io/asset"
	"github.com/adammhal/adammhal.github.io/prefs"
	"github.com/adammhal/adammhal.github.io/solar"
)

// State is the rocket lifecycle state.
type State int32

const (
	// Absent means there is no rocket.
	Absent State = iota

	// Spawning means the rocket model is loading or scaling in.
	Spawning

	// Active means the rocket is under player control.
	Active

	// Despawning means the rocket is shrinking away.
	Despawning
)

var stateNames = [...]string{"Absent", "Spawning", "Active", "Despawning"}

func (st State) String() string {
	if st < 0 || int(st) >= len(stateNames) {
		return "State(?)"
	}
	return stateNames[st]
}

// Keys is the flight input held this frame.
type Keys struct {
	Forward, Back, Left, Right bool
}

// Params are the flight tunables.
type Params struct {

	// ModelPath is the rocket model, relative to the asset root.
	ModelPath string

	// MaxSpeed bounds the velocity magnitude, in units per frame.
	MaxSpeed float32

	// Accel is the velocity change per frame while thrusting.
	Accel float32

	// Decel is the velocity change per frame toward zero with no thrust.
	Decel float32

	// YawRate is the turn rate in radians per frame.
	YawRate float32

	// SpawnPos and SpawnYaw are the initial pose.
	SpawnPos math32.Vector3
	SpawnYaw float32

	// Scale is the fully spawned model scale.
	Scale float32

	// SpawnDuration and DespawnDuration are the scale effect lengths.
	SpawnDuration, DespawnDuration time.Duration

	// Hitbox is the local size of the collision box.
	Hitbox math32.Vector3

	// Particles is the exhaust pool size.
	Particles int

	// TutorialDelay is the wait after the first spawn before the rocket
	// tutorial appears.
	TutorialDelay time.Duration
}

// DefaultParams returns the standard flight tunables.
func DefaultParams() Params {
	return Params{
		ModelPath:       "rocket.glb",
		MaxSpeed:        0.5,
		Accel:           0.005,
		Decel:           0.006,
		YawRate:         0.03,
		SpawnPos:        math32.Vec3(50, 0, 0),
		SpawnYaw:        math.Pi / 2,
		Scale:           15,
		SpawnDuration:   time.Second,
		DespawnDuration: 700 * time.Millisecond,
		Hitbox:          math32.Vec3(0.1, 0.1, 0.2),
		Particles:       100,
		TutorialDelay:   time.Second,
	}
}

// Rocket is the spawned rocket.
type Rocket struct {

	// Node is the rocket root, carrying its world pose.
	Node *solar.Node

	// Hitbox is the hidden collision box.
	Hitbox *solar.Node

	// Exhaust is the particle pool, drawn by ExhaustNode.
	Exhaust     *Exhaust
	ExhaustNode *solar.Node

	// Velocity along the local z axis; negative is forward motion, the
	// only direction that emits exhaust.
	Velocity float32
}

// Controller is the rocket state machine. It belongs to the frame loop.
type Controller struct {
	Params

	// Scene receives the rocket and provides the bodies to collide with.
	Scene *solar.System

	// Anim runs the scale effects.
	Anim *anim.Scheduler

	// Loader loads the rocket model.
	Loader asset.Loader

	// Flags records whether the rocket tutorial was shown; may be nil.
	Flags prefs.Store

	// Rand drives the exhaust.
	Rand *rand.Rand

	// OnTutorial shows the rocket tutorial.
	OnTutorial func()

	// OnStateChange is called after every state transition.
	OnStateChange func(st State)

	// ShowHitbox draws the collision box.
	ShowHitbox bool

	// Explosions are the explosions in progress.
	Explosions []*Explosion

	state  State
	rocket *Rocket
	load   *asset.Future[*asset.Model]
}

// New returns a controller with [DefaultParams].
func New(sys *solar.System, sched *anim.Scheduler, ld asset.Loader, flags prefs.Store, rnd *rand.Rand) *Controller {
	return &Controller{Params: DefaultParams(), Scene: sys, Anim: sched, Loader: ld, Flags: flags, Rand: rnd}
}

// State returns the current state.
func (fc *Controller) State() State {
	return fc.state
}

// Rocket returns the rocket, or nil when there is none in the scene.
func (fc *Controller) Rocket() *Rocket {
	return fc.rocket
}

func (fc *Controller) setState(st State) {
	fc.state = st
	slog.Debug("flight: state", "state", st)
	if fc.OnStateChange != nil {
		fc.OnStateChange(st)
	}
}

// Spawn starts loading the rocket. It reports false, doing nothing,
// unless the state is Absent.
func (fc *Controller) Spawn() bool {
	if fc.state != Absent {
		return false
	}
	fc.load = asset.Load(fc.Loader, fc.ModelPath)
	fc.setState(Spawning)
	return true
}

// Despawn removes the rocket, shrinking it away if animated. It reports
// false, doing nothing, unless the state is Active.
func (fc *Controller) Despawn(animated bool) bool {
	if fc.state != Active {
		return false
	}
	fc.rocket.Velocity = 0
	fc.setState(Despawning)
	if !animated {
		fc.remove()
		return true
	}
	fc.Anim.Add(anim.Vector3(&fc.rocket.Node.Pose.Scale, math32.Vector3{}, fc.DespawnDuration, anim.Power2In)).OnDone(fc.remove)
	return true
}

// Toggle spawns an absent rocket and despawns an active one. Requests
// during a transition are ignored.
func (fc *Controller) Toggle() bool {
	switch fc.state {
	case Absent:
		return fc.Spawn()
	case Active:
		return fc.Despawn(true)
	}
	return false
}

func (fc *Controller) remove() {
	if fc.rocket != nil {
		fc.Scene.Root.Remove(fc.rocket.Node)
		fc.rocket = nil
	}
	fc.setState(Absent)
}

// place puts the loaded rocket in the scene and starts the scale in.
func (fc *Controller) place(md *asset.Model) {
	rk := &Rocket{Node: solar.NewNode("rocket")}
	rk.Node.Add(solar.FromModel(md))
	rk.Node.Pose.Pos = fc.SpawnPos
	rk.Node.Pose.SetAxisRotation(0, 1, 0, fc.SpawnYaw)
	rk.Node.Pose.Scale = math32.Vector3{}

	rk.Hitbox = rk.Node.Add(solar.NewNode("hitbox"))
	rk.Hitbox.Shape = &solar.Box{Size: fc.Hitbox}
	rk.Hitbox.Hidden = !fc.ShowHitbox

	rk.Exhaust = NewExhaust(fc.Particles, fc.Rand)
	rk.ExhaustNode = rk.Node.Add(solar.NewNode("exhaust"))
	rk.ExhaustNode.Shape = rk.Exhaust
	rk.ExhaustNode.Hidden = true

	fc.Scene.Root.Add(rk.Node)
	fc.rocket = rk

	s := fc.Scale
	fc.Anim.Add(anim.Vector3(&rk.Node.Pose.Scale, math32.Vec3(s, s, s), fc.SpawnDuration, anim.BackOut(1.7))).OnDone(func() {
		if fc.state == Spawning && fc.rocket == rk {
			fc.setState(Active)
		}
	})

	if fc.Flags != nil && !fc.Flags.Flag(prefs.RocketTutorialShown) {
		fc.Anim.Add(anim.After(fc.TutorialDelay, func() {
			if fc.OnTutorial != nil {
				fc.OnTutorial()
			}
			errors.Log(fc.Flags.SetFlag(prefs.RocketTutorialShown, true))
		}))
	}
}

// Update advances the rocket by one frame with the given input: it
// places a loaded rocket, then flies an active one and checks it for
// collisions.
func (fc *Controller) Update(keys Keys) {
	if fc.state == Spawning && fc.load != nil && fc.load.Ready() {
		md, err := fc.load.Result()
		fc.load = nil
		if err != nil || md == nil {
			fc.setState(Absent)
			return
		}
		fc.place(md)
	}
	if fc.state != Active {
		return
	}
	fc.fly(keys)
	fc.CheckCollision()
}

// fly integrates velocity and heading from the keys and moves the rocket.
func (fc *Controller) fly(keys Keys) {
	rk := fc.rocket
	switch {
	case keys.Forward:
		rk.Velocity = math32.Max(rk.Velocity-fc.Accel, -fc.MaxSpeed)
	case keys.Back:
		rk.Velocity = math32.Min(rk.Velocity+fc.Accel, fc.MaxSpeed)
	case rk.Velocity > 0:
		rk.Velocity = math32.Max(rk.Velocity-fc.Decel, 0)
	case rk.Velocity < 0:
		rk.Velocity = math32.Min(rk.Velocity+fc.Decel, 0)
	}
	if keys.Left {
		rk.Node.Pose.RotateOnAxis(0, 1, 0, fc.YawRate)
	}
	if keys.Right {
		rk.Node.Pose.RotateOnAxis(0, 1, 0, -fc.YawRate)
	}
	rk.Node.Pose.MoveOnAxis(0, 0, 1, rk.Velocity)

	rk.Exhaust.Step(rk.Velocity, fc.MaxSpeed)
	rk.ExhaustNode.Hidden = !rk.Exhaust.Visible
}

// CheckCollision tests the rocket hitbox against every body. On the
// first overlap it starts an explosion at the rocket and removes the
// rocket at once. It reports whether a collision happened.
func (fc *Controller) CheckCollision() bool {
	if fc.state != Active {
		return false
	}
	hb := fc.rocket.Hitbox.WorldBBox()
	for _, bd := range fc.Scene.Bodies() {
		if !hb.IntersectsBox(bd.Bounds()) {
			continue
		}
		slog.Info("flight: collision", "body", bd.Meta.Name)
		fc.explode(fc.rocket.Node.WorldPos())
		fc.Despawn(false)
		return true
	}
	return false
}
