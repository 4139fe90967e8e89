// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orbit implements an orbit style camera rig: a perspective
// camera that rotates, pans and zooms around a target point with
// damped motion, and that maps between world and screen coordinates.
package orbit

import (
	"image"
	"math"

	"cogentcore.org/core/math32"
)

// minPolar keeps the camera off the poles, where the basis degenerates.
const minPolar = 1e-6

// Rig is an orbit camera. Gesture methods only record motion; it is
// applied by [Rig.Update], once per frame.
type Rig struct {

	// Pos is the camera position.
	Pos math32.Vector3

	// Target is the point the camera looks at and orbits around.
	Target math32.Vector3

	// Up is the world up direction; orbiting assumes +Y.
	Up math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the viewport width over height.
	Aspect float32

	// Near and Far are the clipping distances.
	Near, Far float32

	// Enabled gates all user gestures.
	Enabled bool

	// EnableRotate, EnablePan and EnableZoom gate the individual gestures.
	EnableRotate, EnablePan, EnableZoom bool

	// Damping is the fraction of the remaining motion applied each
	// frame; 0 applies gestures immediately.
	Damping float32

	// MinDistance and MaxDistance bound the distance to the target.
	MinDistance, MaxDistance float32

	// AutoRotate orbits the target continuously; AutoRotateSpeed 1
	// completes a turn in a minute at 60 frames per second.
	AutoRotate      bool
	AutoRotateSpeed float32

	// RotateSpeed, PanSpeed and ZoomSpeed scale the gestures.
	RotateSpeed, PanSpeed, ZoomSpeed float32

	dTheta, dPhi float32
	panOffset    math32.Vector3
	scale        float32
}

// New returns a rig at the given position looking at the origin.
func New(pos math32.Vector3) *Rig {
	return &Rig{
		Pos:          pos,
		Up:           math32.Vec3(0, 1, 0),
		FOV:          60,
		Aspect:       1,
		Near:         0.1,
		Far:          1000,
		Enabled:      true,
		EnableRotate: true,
		EnablePan:    true,
		EnableZoom:   true,
		Damping:      0.05,
		MaxDistance:  math32.Inf(1),
		RotateSpeed:  1,
		PanSpeed:     1,
		ZoomSpeed:    1,
		scale:        1,
	}
}

// Orbit rotates by a pointer drag of dx, dy pixels in a viewport of
// the given height.
func (rg *Rig) Orbit(dx, dy, height float32) {
	if !rg.Enabled || !rg.EnableRotate || height <= 0 {
		return
	}
	rg.dTheta -= 2 * math.Pi * dx / height * rg.RotateSpeed
	rg.dPhi -= 2 * math.Pi * dy / height * rg.RotateSpeed
}

// Zoom moves toward the target for positive steps and away for negative.
func (rg *Rig) Zoom(steps float32) {
	if !rg.Enabled || !rg.EnableZoom {
		return
	}
	rg.scale *= math32.Pow(0.95, rg.ZoomSpeed*steps)
}

// Pan translates camera and target by a drag of dx, dy pixels in a
// viewport of the given height.
func (rg *Rig) Pan(dx, dy, height float32) {
	if !rg.Enabled || !rg.EnablePan || height <= 0 {
		return
	}
	dist := rg.Pos.Sub(rg.Target).Length() * math32.Tan(math32.DegToRad(rg.FOV/2))
	_, right, up := rg.Basis()
	left := right.MulScalar(-2 * dx * dist / height * rg.PanSpeed)
	upv := up.MulScalar(2 * dy * dist / height * rg.PanSpeed)
	rg.panOffset = rg.panOffset.Add(left).Add(upv)
}

// moving reports whether gestures or auto rotation have motion pending.
func (rg *Rig) moving() bool {
	return rg.AutoRotate || rg.dTheta != 0 || rg.dPhi != 0 || rg.scale != 1 || rg.panOffset != (math32.Vector3{})
}

// Update applies pending motion and the distance limits. It leaves the
// camera untouched when nothing is pending and it is within limits.
func (rg *Rig) Update() {
	offset := rg.Pos.Sub(rg.Target)
	radius := offset.Length()
	if !rg.moving() && radius >= rg.MinDistance && radius <= rg.MaxDistance {
		return
	}
	theta := math32.Atan2(offset.X, offset.Z)
	phi := float32(0)
	if radius > 0 {
		phi = math32.Acos(math32.Clamp(offset.Y/radius, -1, 1))
	}
	if rg.AutoRotate {
		rg.dTheta -= 2 * math.Pi / 60 / 60 * rg.AutoRotateSpeed
	}
	damp := rg.Damping
	if damp <= 0 {
		damp = 1
	}
	theta += rg.dTheta * damp
	phi = math32.Clamp(phi+rg.dPhi*damp, minPolar, math.Pi-minPolar)
	radius = math32.Clamp(radius*rg.scale, rg.MinDistance, rg.MaxDistance)
	rg.Target = rg.Target.Add(rg.panOffset.MulScalar(damp))

	sp := math32.Sin(phi)
	offset = math32.Vec3(radius*sp*math32.Sin(theta), radius*math32.Cos(phi), radius*sp*math32.Cos(theta))
	rg.Pos = rg.Target.Add(offset)

	rest := 1 - damp
	rg.dTheta *= rest
	rg.dPhi *= rest
	rg.panOffset = rg.panOffset.MulScalar(rest)
	if math32.Abs(rg.dTheta) < 1e-7 && math32.Abs(rg.dPhi) < 1e-7 {
		rg.dTheta, rg.dPhi = 0, 0
	}
	if rg.panOffset.Length() < 1e-7 {
		rg.panOffset = math32.Vector3{}
	}
	rg.scale = 1
}

// Basis returns the camera forward, right and up unit vectors.
func (rg *Rig) Basis() (fwd, right, up math32.Vector3) {
	fwd = rg.Target.Sub(rg.Pos).Normal()
	right = fwd.Cross(rg.Up)
	if right.Length() < 1e-6 {
		right = math32.Vec3(1, 0, 0)
	}
	right = right.Normal()
	up = right.Cross(fwd)
	return
}

// NDC maps a pixel position in a viewport of the given size to
// normalized device coordinates, x right and y up in [-1, 1].
func NDC(pt, size image.Point) math32.Vector2 {
	if size.X <= 0 || size.Y <= 0 {
		return math32.Vector2{}
	}
	return math32.Vec2(float32(pt.X)/float32(size.X)*2-1, -(float32(pt.Y)/float32(size.Y)*2 - 1))
}

// Ray returns the world ray from the camera through a point in
// normalized device coordinates.
func (rg *Rig) Ray(ndc math32.Vector2) math32.Ray {
	fwd, right, up := rg.Basis()
	th := math32.Tan(math32.DegToRad(rg.FOV / 2))
	dir := fwd.Add(right.MulScalar(ndc.X * th * rg.Aspect)).Add(up.MulScalar(ndc.Y * th))
	return math32.Ray{Origin: rg.Pos, Dir: dir.Normal()}
}

// Project maps a world point to normalized device coordinates. It
// returns false for points behind the camera.
func (rg *Rig) Project(p math32.Vector3) (math32.Vector2, bool) {
	fwd, right, up := rg.Basis()
	d := p.Sub(rg.Pos)
	z := d.Dot(fwd)
	if z <= 0 {
		return math32.Vector2{}, false
	}
	th := math32.Tan(math32.DegToRad(rg.FOV / 2))
	return math32.Vec2(d.Dot(right)/(z*th*rg.Aspect), d.Dot(up)/(z*th)), true
}
