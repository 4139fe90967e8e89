// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import "cogentcore.org/core/math32"

// Pose is the local transform of a [Node] relative to its parent:
// scale first, then rotation, then translation.
type Pose struct {

	// position relative to the parent
	Pos math32.Vector3

	// scale factor on each axis
	Scale math32.Vector3

	// rotation specified as a Quat
	Quat math32.Quat
}

// Defaults sets an identity scale and rotation where they are unset.
func (ps *Pose) Defaults() {
	if ps.Scale == (math32.Vector3{}) {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// Transform maps a point from local to parent coordinates.
func (ps *Pose) Transform(p math32.Vector3) math32.Vector3 {
	return p.Mul(ps.Scale).MulQuat(ps.Quat).Add(ps.Pos)
}

// SetScale sets a uniform scale.
func (ps *Pose) SetScale(s float32) {
	ps.Scale.Set(s, s, s)
}

// SetAxisRotation sets rotation from local axis and angle in radians.
func (ps *Pose) SetAxisRotation(x, y, z, angle float32) {
	ps.Quat.SetFromAxisAngle(math32.Vec3(x, y, z), angle)
}

// RotateOnAxis rotates around the specified local axis the specified angle in radians.
func (ps *Pose) RotateOnAxis(x, y, z, angle float32) {
	ps.Quat.SetMul(math32.NewQuatAxisAngle(math32.Vec3(x, y, z), angle))
}

// MoveOnAxis moves (translates) the specified distance on the specified local axis,
// relative to the current rotation orientation.
// The axis is normalized prior to applying the distance factor.
func (ps *Pose) MoveOnAxis(x, y, z, dist float32) {
	ps.Pos.SetAdd(math32.Vec3(x, y, z).Normal().MulQuat(ps.Quat).MulScalar(dist))
}
