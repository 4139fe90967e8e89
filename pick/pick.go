// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pick routes pointer and tap events to the scene: a point on
// interface chrome is swallowed, otherwise a camera ray selects the
// nearest clickable body.
package pick

import (
	"image"
	"time"

	"cogentcore.org/core/math32"
	"github.com/adammhal/adammhal.github.io/orbit"
	"github.com/adammhal/adammhal.github.io/solar"
)

// Kind classifies a [Hit].
type Kind int32

const (
	// None means nothing was hit.
	None Kind = iota

	// Chrome means the point is on interface chrome.
	Chrome

	// Body means a body was hit.
	Body
)

// Hit is the result of a ray cast.
type Hit struct {
	Kind Kind

	// Body is the selected body, for Kind Body.
	Body *solar.Body

	// Node is the node the ray hit, for Kind Body.
	Node *solar.Node

	// Point is where the ray entered the node bounds.
	Point math32.Vector3
}

// Router casts pointer positions into the scene.
type Router struct {
	Rig   *orbit.Rig
	Scene *solar.System

	// Size is the viewport size in pixels.
	Size image.Point

	// Chrome returns the visible chrome rectangles, in viewport pixels.
	Chrome func() []image.Rectangle

	// Focus receives clicked bodies.
	Focus func(bd *solar.Body) bool
}

// inside reports whether pt lies in r, edges included.
func inside(pt image.Point, r image.Rectangle) bool {
	return pt.X >= r.Min.X && pt.X <= r.Max.X && pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}

// Cast classifies the pixel position pt.
func (rt *Router) Cast(pt image.Point) Hit {
	if rt.Chrome != nil {
		for _, r := range rt.Chrome() {
			if inside(pt, r) {
				return Hit{Kind: Chrome}
			}
		}
	}
	return rt.cast(pt)
}

// cast intersects the camera ray through pt with the world bounds of
// every node under each clickable target and resolves the nearest.
func (rt *Router) cast(pt image.Point) Hit {
	ray := rt.Rig.Ray(orbit.NDC(pt, rt.Size))
	var best Hit
	bestDist := math32.Inf(1)
	for _, target := range rt.Scene.Clickable {
		target.WalkDown(func(n *solar.Node) bool {
			wb := n.OwnWorldBBox()
			if wb.IsEmpty() {
				return true
			}
			p, ok := ray.IntersectBox(wb)
			if !ok {
				return true
			}
			if d := p.Sub(ray.Origin).Length(); d < bestDist {
				bestDist = d
				best = Hit{Kind: Body, Node: n, Point: p}
			}
			return true
		})
	}
	if best.Kind != Body {
		return Hit{}
	}
	best.Body = rt.Scene.Registry.Resolve(best.Node)
	if best.Body == nil {
		return Hit{}
	}
	return best
}

// Click selects the body under pt, if any.
func (rt *Router) Click(pt image.Point) Hit {
	h := rt.Cast(pt)
	if h.Kind == Body && rt.Focus != nil {
		rt.Focus(h.Body)
	}
	return h
}

// Hover reports whether a clickable body is under pt, ignoring chrome.
func (rt *Router) Hover(pt image.Point) bool {
	return rt.cast(pt).Kind == Body
}

// Tap classifies touch gestures: a touch that ends soon enough and
// close enough to where it started is a tap, anything else is a drag.
type Tap struct {
	MaxDuration time.Duration
	MaxDistance float32

	start  time.Time
	pos    image.Point
	active bool
}

// NewTap returns a classifier with the standard thresholds.
func NewTap() *Tap {
	return &Tap{MaxDuration: 250 * time.Millisecond, MaxDistance: 10}
}

// IsTap reports whether a gesture of the given length and travel is a tap.
func (tp *Tap) IsTap(d time.Duration, dist float32) bool {
	return d < tp.MaxDuration && dist < tp.MaxDistance
}

// Start records the start of a touch.
func (tp *Tap) Start(pos image.Point, at time.Time) {
	tp.start, tp.pos, tp.active = at, pos, true
}

// End finishes a touch and reports whether it was a tap.
func (tp *Tap) End(pos image.Point, at time.Time) bool {
	if !tp.active {
		return false
	}
	tp.active = false
	d := pos.Sub(tp.pos)
	dist := math32.Sqrt(float32(d.X*d.X + d.Y*d.Y))
	return tp.IsTap(at.Sub(tp.start), dist)
}

// TapEnd finishes a touch on the router, selecting the body under it
// when the gesture was a tap.
func (rt *Router) TapEnd(tp *Tap, pos image.Point, at time.Time) (Hit, bool) {
	if !tp.End(pos, at) {
		return Hit{}, false
	}
	return rt.Click(pos), true
}
