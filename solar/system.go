// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solar builds the solar system scene: a star field, a sun, the
// orbit guides and the orbiting bodies whose models load asynchronously.
// It is independent of any renderer; the GUI mirrors its [Node] graph.
package solar

import (
	"context"
	"image/color"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/adammhal/adammhal.github.io/asset"
)

const (
	// SunRadius is the radius of the sun at the origin.
	SunRadius = 3.5

	// StarCount is the number of stars in the field.
	StarCount = 1500

	// StarRadius is the radius of the ball the stars fill.
	StarRadius = 200

	// TwinklePerFrame is the number of stars pulsed every frame.
	TwinklePerFrame = 10

	// SpinSpeed is the spin of each model about its own axis, in radians per frame.
	SpinSpeed = 0.005

	// AtmosphereScale is the atmosphere shell scale relative to a unit sphere.
	AtmosphereScale = 1.15

	// OrbitTube is the thickness of the orbit guides.
	OrbitTube = 0.02

	// OrbitOpacity is the opacity of the orbit guides.
	OrbitOpacity = 0.3
)

// pendingLoad is a model load in flight for one body.
type pendingLoad struct {
	desc  *BodyDescriptor
	pivot *Node
	model *asset.Future[*asset.Model]
}

// System is the scene built from a list of body descriptors.
type System struct {

	// Root is the scene root.
	Root *Node

	// Sun is the sun sphere.
	Sun *Node

	// SunTime is the elapsed time in seconds, driving the sun surface.
	SunTime float32

	// Stars is the star field, drawn by StarNode.
	Stars    *StarField
	StarNode *Node

	// Orbits are the orbit guides, one per descriptor.
	Orbits []*Node

	// Pivots are the orbit groups, one per descriptor.
	Pivots []*Node

	// Clickable are the nodes eligible for ray cast selection, in the
	// order their models loaded. Entries are never removed.
	Clickable []*Node

	// Registry maps clickable nodes to their bodies.
	Registry Registry

	// OnBody is called when a body finishes loading and joins the scene.
	OnBody func(bd *Body)

	descs   []BodyDescriptor
	pending []*pendingLoad
	elapsed time.Duration
}

// NewSystem builds the synchronous parts of the scene and starts loading
// every body model with ld. A nil ld starts no loads; use [System.Attach].
func NewSystem(descs []BodyDescriptor, ld asset.Loader, rnd *rand.Rand) *System {
	sy := &System{Root: NewNode("solar-system"), descs: descs}
	sy.Stars = NewStarField(StarCount, StarRadius, rnd)
	sy.StarNode = sy.Root.Add(NewNode("stars"))
	sy.StarNode.Shape = sy.Stars

	sy.Sun = sy.Root.Add(NewNode("sun"))
	sy.Sun.Shape = &Sphere{Radius: SunRadius, Segments: 64}
	sy.Sun.Color = color.RGBA{255, 204, 51, 255}
	sy.Sun.Emissive = true

	for i := range sy.descs {
		desc := &sy.descs[i]
		pivot := sy.Root.Add(NewNode(desc.Name + "-pivot"))
		sy.Pivots = append(sy.Pivots, pivot)

		orbit := sy.Root.Add(NewNode(desc.Name + "-orbit"))
		orbit.Shape = &Torus{Radius: desc.OrbitRadius, Tube: OrbitTube, Segments: 100}
		orbit.Pose.SetAxisRotation(1, 0, 0, math.Pi/2)
		orbit.Color = color.RGBA{170, 170, 170, 255}
		orbit.Opacity = OrbitOpacity
		sy.Orbits = append(sy.Orbits, orbit)

		if ld != nil {
			sy.pending = append(sy.pending, &pendingLoad{desc: desc, pivot: pivot, model: asset.Load(ld, desc.ModelPath)})
		}
	}
	return sy
}

// Descriptors returns the body descriptors the system was built from.
func (sy *System) Descriptors() []BodyDescriptor {
	return sy.descs
}

// Pending returns the number of model loads still in flight.
func (sy *System) Pending() int {
	return len(sy.pending)
}

// Poll attaches every body whose model load has completed and returns
// them. Failed loads are dropped; those bodies never appear.
func (sy *System) Poll() []*Body {
	var added []*Body
	keep := sy.pending[:0]
	for _, pl := range sy.pending {
		if !pl.model.Ready() {
			keep = append(keep, pl)
			continue
		}
		md, err := pl.model.Result()
		if err != nil || md == nil {
			continue
		}
		added = append(added, sy.attach(pl.desc, pl.pivot, md))
	}
	clear(sy.pending[len(keep):])
	sy.pending = keep
	return added
}

// Wait blocks until every pending load completes or ctx is done, then polls.
func (sy *System) Wait(ctx context.Context) ([]*Body, error) {
	for _, pl := range sy.pending {
		if _, err := pl.model.Wait(ctx); err != nil && ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	return sy.Poll(), nil
}

// Attach places a loaded model for the descriptor with the given name,
// as [System.Poll] does for completed loads. It returns nil if there is
// no such descriptor.
func (sy *System) Attach(name string, md *asset.Model) *Body {
	for i := range sy.descs {
		if sy.descs[i].Name == name {
			return sy.attach(&sy.descs[i], sy.Pivots[i], md)
		}
	}
	return nil
}

func (sy *System) attach(desc *BodyDescriptor, pivot *Node, md *asset.Model) *Body {
	model := FromModel(md)
	model.Name = desc.Name
	model.Pose.SetScale(desc.Scale())
	model.Pose.Pos.X = desc.OrbitRadius

	target := model.FirstMesh()
	if target == nil {
		target = model
	}
	col := desc.RGBA()

	atmo := NewNode(desc.Name + "-atmosphere")
	atmo.Shape = &Sphere{Radius: 1, Segments: 32}
	atmo.Pose.SetScale(AtmosphereScale)
	atmo.Color = col
	atmo.Emissive = true
	atmo.Opacity = 0.25
	model.Add(atmo)
	pivot.Add(model)

	bd := &Body{
		Desc:       desc,
		Meta:       &BodyMetadata{Name: desc.Name, Summary: desc.Summary, Color: col, Link: desc.Link},
		Pivot:      pivot,
		Model:      model,
		Target:     target,
		Atmosphere: atmo,
	}
	sy.Registry.Tag(target, bd)
	sy.Clickable = append(sy.Clickable, target)
	slog.Info("solar: body loaded", "name", desc.Name, "path", desc.ModelPath)
	if sy.OnBody != nil {
		sy.OnBody(bd)
	}
	return bd
}

// Bodies returns the loaded bodies in load order.
func (sy *System) Bodies() []*Body {
	return sy.Registry.Bodies()
}

// BodyByName returns the loaded body with the given display name, or nil.
func (sy *System) BodyByName(name string) *Body {
	return sy.Registry.ByName(name)
}

// Update advances the scene by one frame of dt: it attaches newly loaded
// bodies, moves every body along its orbit, spins the models, advances
// the sun and twinkles the stars.
func (sy *System) Update(dt time.Duration) {
	sy.Poll()
	sy.elapsed += dt
	sy.SunTime = float32(sy.elapsed.Seconds())
	for _, bd := range sy.Bodies() {
		bd.Pivot.Pose.RotateOnAxis(0, 1, 0, bd.Desc.RotationSpeed)
		bd.Model.Pose.RotateOnAxis(0, 1, 0, SpinSpeed)
	}
	sy.Stars.Twinkle(sy.elapsed.Seconds(), TwinklePerFrame)
}
