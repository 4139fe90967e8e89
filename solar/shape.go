// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import "cogentcore.org/core/math32"

// Shape is procedural geometry, generated by the renderer from its
// parameters.
type Shape interface {

	// Bounds returns the local bounding box.
	Bounds() math32.Box3
}

// Sphere is a UV sphere centered at the origin.
type Sphere struct {
	Radius   float32
	Segments int
}

func (sp *Sphere) Bounds() math32.Box3 {
	r := sp.Radius
	return math32.B3(-r, -r, -r, r, r, r)
}

// Torus is a ring in the local XY plane.
type Torus struct {
	Radius   float32
	Tube     float32
	Segments int
}

func (tr *Torus) Bounds() math32.Box3 {
	r := tr.Radius + tr.Tube
	return math32.B3(-r, -r, -tr.Tube, r, r, tr.Tube)
}

// Box is an axis aligned box centered at the origin.
type Box struct {
	Size math32.Vector3
}

func (bx *Box) Bounds() math32.Box3 {
	h := bx.Size.MulScalar(0.5)
	return math32.B3(-h.X, -h.Y, -h.Z, h.X, h.Y, h.Z)
}
