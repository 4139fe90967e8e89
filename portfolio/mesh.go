// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package portfolio

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"github.com/adammhal/adammhal.github.io/asset"
	"github.com/adammhal/adammhal.github.io/flight"
	"github.com/adammhal/adammhal.github.io/solar"
	"github.com/lucasb-eyer/go-colorful"
)

// ExhaustSize is the size of an exhaust particle in rocket units.
const ExhaustSize = 0.1

// ExhaustColor is the color of a fresh exhaust particle; it fades to
// ExhaustFade as the particle ages.
var (
	ExhaustColor = colorful.Color{R: 1, G: 0.4, B: 0}
	ExhaustFade  = colorful.Color{R: 0.6, G: 0.1, B: 0}
)

// modelMesh wraps loaded geometry for xyz.
func modelMesh(name string, ms *asset.Mesh) *xyz.GenMesh {
	gm := &xyz.GenMesh{
		Vertex:   math32.ArrayF32(ms.Vertex),
		Normal:   math32.ArrayF32(ms.Normal),
		TexCoord: math32.ArrayF32(ms.TexCoord),
		Index:    math32.ArrayU32(ms.Index),
	}
	gm.Name = name
	return gm
}

type point struct {
	pos   math32.Vector3
	color colorful.Color
	alpha float32
}

// octahedron corner directions and faces, drawn for each point
var (
	octCorners = [6]math32.Vector3{
		{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
	}
	octFaces = [24]uint32{
		0, 2, 4, 2, 1, 4, 1, 3, 4, 3, 0, 4,
		2, 0, 5, 1, 2, 5, 3, 1, 5, 0, 3, 5,
	}
)

// pointMesh draws each point as a small octahedron of the given size
// in its own vertex color.
func pointMesh(name string, pts []point, size float32) *xyz.GenMesh {
	n := len(pts) * len(octCorners)
	gm := &xyz.GenMesh{
		Vertex:   make(math32.ArrayF32, 0, n*3),
		Normal:   make(math32.ArrayF32, 0, n*3),
		TexCoord: make(math32.ArrayF32, n*2),
		Color:    make(math32.ArrayF32, 0, n*4),
		Index:    make(math32.ArrayU32, 0, len(pts)*len(octFaces)),
	}
	gm.Name = name
	h := size / 2
	for i, pt := range pts {
		for _, c := range octCorners {
			v := pt.pos.Add(c.MulScalar(h))
			gm.Vertex = append(gm.Vertex, v.X, v.Y, v.Z)
			gm.Normal = append(gm.Normal, c.X, c.Y, c.Z)
			gm.Color = append(gm.Color, float32(pt.color.R), float32(pt.color.G), float32(pt.color.B), pt.alpha)
		}
		base := uint32(i * len(octCorners))
		for _, f := range octFaces {
			gm.Index = append(gm.Index, base+f)
		}
	}
	return gm
}

func starMesh(name string, sf *solar.StarField) *xyz.GenMesh {
	pts := make([]point, len(sf.Pos))
	for i, p := range sf.Pos {
		pts[i] = point{pos: p, color: sf.Color[i].Clamped(), alpha: 1}
	}
	return pointMesh(name, pts, sf.Size)
}

// exhaustMesh draws the live particles; parked ones are left out.
func exhaustMesh(name string, ex *flight.Exhaust) *xyz.GenMesh {
	pts := make([]point, 0, len(ex.Particles))
	for i := range ex.Particles {
		pt := &ex.Particles[i]
		if pt.Parked() {
			continue
		}
		life := math32.Clamp(pt.Life, 0, 1)
		pts = append(pts, point{
			pos:   pt.Pos,
			color: ExhaustFade.BlendRgb(ExhaustColor, float64(life)),
			alpha: life,
		})
	}
	return pointMesh(name, pts, ExhaustSize)
}
