// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flight

import (
	"image/color"
	"slices"
	"time"

	"cogentcore.org/core/math32"
	"github.com/adammhal/adammhal.github.io/anim"
	"github.com/adammhal/adammhal.github.io/solar"
)

const (
	// ExplosionScale is the final scale of the explosion shell.
	ExplosionScale = 15

	// ExplosionDuration is the life of an explosion.
	ExplosionDuration = 700 * time.Millisecond
)

// Explosion is an expanding shell that fades out and removes itself.
type Explosion struct {
	Node *solar.Node

	// Time runs from 0 to 1 over the explosion.
	Time float32
}

// Opacity returns the current shell opacity.
func (ex *Explosion) Opacity() float32 {
	return 1 - ex.Time
}

// explode starts an explosion at the given world position.
func (fc *Controller) explode(pos math32.Vector3) *Explosion {
	ex := &Explosion{Node: solar.NewNode("explosion")}
	ex.Node.Shape = &solar.Sphere{Radius: 1, Segments: 32}
	ex.Node.Color = color.RGBA{255, 165, 0, 255}
	ex.Node.Emissive = true
	ex.Node.Pose.Pos = pos
	ex.Node.Pose.Scale = math32.Vector3{}
	fc.Scene.Root.Add(ex.Node)
	fc.Explosions = append(fc.Explosions, ex)

	fc.Anim.Add(anim.Vector3(&ex.Node.Pose.Scale, math32.Vec3(ExplosionScale, ExplosionScale, ExplosionScale), ExplosionDuration, anim.Power2Out))
	tk := anim.Float(&ex.Time, 1, ExplosionDuration, anim.Power2Out)
	apply := tk.Apply
	tk.Apply = func(t float32) {
		apply(t)
		ex.Node.Opacity = ex.Opacity()
	}
	fc.Anim.Add(tk).OnDone(func() {
		fc.Scene.Root.Remove(ex.Node)
		fc.Explosions = slices.DeleteFunc(fc.Explosions, func(e *Explosion) bool { return e == ex })
	})
	return ex
}
