// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import (
	"math"
	"math/rand/v2"

	"cogentcore.org/core/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// StarField is a cloud of colored points filling a ball around the
// origin, some of which pulse in brightness every frame.
type StarField struct {

	// Pos are the star positions.
	Pos []math32.Vector3

	// Base are the original star colors.
	Base []colorful.Color

	// Color are the current star colors.
	Color []colorful.Color

	// Radius of the ball.
	Radius float32

	// Size of each star point.
	Size float32

	// Dirty is set when Color changes and cleared by the renderer.
	Dirty bool

	rand *rand.Rand
}

// NewStarField returns n stars uniformly distributed in a ball of the
// given radius, with blue to violet hues.
func NewStarField(n int, radius float32, rnd *rand.Rand) *StarField {
	sf := &StarField{Radius: radius, Size: 0.5, rand: rnd}
	sf.Pos = make([]math32.Vector3, n)
	sf.Base = make([]colorful.Color, n)
	for i := range n {
		theta := 2 * math.Pi * rnd.Float64()
		phi := math.Acos(2*rnd.Float64() - 1)
		r := float64(radius) * math.Cbrt(rnd.Float64())
		sf.Pos[i] = math32.Vec3(
			float32(r*math.Sin(phi)*math.Cos(theta)),
			float32(r*math.Sin(phi)*math.Sin(theta)),
			float32(r*math.Cos(phi)))
		sf.Base[i] = colorful.Hsl((rnd.Float64()*0.2+0.5)*360, 0.8, rnd.Float64()*0.5+0.5)
	}
	sf.Color = append([]colorful.Color(nil), sf.Base...)
	sf.Dirty = true
	return sf
}

func (sf *StarField) Bounds() math32.Box3 {
	var bb math32.Box3
	bb.SetFromPoints(sf.Pos)
	return bb
}

// Twinkle sets count random stars to their base color scaled by a
// pulse of the elapsed time in seconds, returning the changed indexes.
func (sf *StarField) Twinkle(elapsed float64, count int) []int {
	if len(sf.Pos) == 0 {
		return nil
	}
	idx := make([]int, count)
	for i := range idx {
		si := sf.rand.IntN(len(sf.Pos))
		pulse := math.Sin(elapsed*2+float64(si))*0.5 + 0.5
		b := sf.Base[si]
		sf.Color[si] = colorful.Color{R: b.R * pulse, G: b.G * pulse, B: b.B * pulse}
		idx[i] = si
	}
	sf.Dirty = true
	return idx
}
