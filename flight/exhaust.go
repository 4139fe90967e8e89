// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flight

import (
	"math/rand/v2"

	"cogentcore.org/core/math32"
)

// ParkedZ is the local z of particles that are not emitting, far
// outside any view of the scene.
const ParkedZ = -1000

// Particle is one exhaust particle, in rocket local coordinates.
type Particle struct {
	Pos math32.Vector3

	// Life is the remaining lifetime in [0, 1].
	Life float32
}

// Parked reports whether the particle is parked off screen.
func (pt *Particle) Parked() bool {
	return pt.Pos.Z <= ParkedZ/2
}

// Exhaust is a fixed pool of particles trailing the rocket.
type Exhaust struct {
	Particles []Particle

	// Visible is whether the exhaust is drawn.
	Visible bool

	// Dirty is set when particles move and cleared by the renderer.
	Dirty bool

	rand *rand.Rand
}

// NewExhaust returns n parked particles with random lifetimes.
func NewExhaust(n int, rnd *rand.Rand) *Exhaust {
	ex := &Exhaust{Particles: make([]Particle, n), rand: rnd}
	for i := range ex.Particles {
		ex.Particles[i] = Particle{Pos: math32.Vec3(0, 0, ParkedZ), Life: rnd.Float32()}
	}
	return ex
}

// Step ages every particle for one frame at velocity v. Expired
// particles are re-emitted only while moving forward (v negative), with probability
// equal to the speed ratio; otherwise they are parked.
func (ex *Exhaust) Step(v, maxSpeed float32) {
	var sf float32
	if maxSpeed > 0 {
		sf = math32.Min(math32.Abs(v)/maxSpeed, 1)
	}
	ex.Visible = sf > 0.01
	for i := range ex.Particles {
		pt := &ex.Particles[i]
		pt.Life -= 0.015 + sf*0.03
		if pt.Life > 0 {
			pt.Pos.Z += sf * 0.05
			continue
		}
		if v < 0 && ex.rand.Float32() < sf {
			pt.Pos = math32.Vec3((ex.rand.Float32()-0.5)*0.08, (ex.rand.Float32()-0.5)*0.08, 0.01)
			pt.Life = ex.rand.Float32()
		} else {
			pt.Pos.Z = ParkedZ
			pt.Life = 0
		}
	}
	ex.Dirty = true
}

func (ex *Exhaust) Bounds() math32.Box3 {
	return math32.B3(-0.04, -0.04, 0, 0.04, 0.04, 0.2)
}
