// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import (
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// BodyDescriptor is the static description of one orbiting body.
type BodyDescriptor struct {

	// Name is the display name, unique among bodies.
	Name string `toml:"name"`

	// Summary is the info panel text.
	Summary string `toml:"summary"`

	// ModelPath is the model file, relative to the asset root.
	ModelPath string `toml:"model"`

	// OrbitRadius is the distance from the origin.
	OrbitRadius float32 `toml:"orbit_radius"`

	// Color is the atmosphere and accent color as a hex string.
	Color string `toml:"color"`

	// RotationSpeed is the orbital angle advanced per frame, in radians.
	RotationSpeed float32 `toml:"rotation_speed"`

	// Link is the detail page; empty or "#" means none.
	Link string `toml:"link"`

	// ModelScale is the uniform model scale; 0 means 1.
	ModelScale float32 `toml:"model_scale"`
}

// Scale returns the model scale, defaulting to 1.
func (bd *BodyDescriptor) Scale() float32 {
	if bd.ModelScale == 0 {
		return 1
	}
	return bd.ModelScale
}

// RGBA returns the parsed Color, white if it is invalid.
func (bd *BodyDescriptor) RGBA() color.RGBA {
	return ParseColor(bd.Color)
}

// ParseColor parses a hex color, logging and returning white on failure.
func ParseColor(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if errors.Log(err) != nil {
		return color.RGBA{255, 255, 255, 255}
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}

// BodyMetadata is what the UI shows about a body.
type BodyMetadata struct {
	Name    string
	Summary string
	Color   color.RGBA
	Link    string
}

// HasLink reports whether the body links to a detail page.
func (md *BodyMetadata) HasLink() bool {
	return md.Link != "" && md.Link != "#"
}

// Body is an orbiting body whose model has finished loading.
type Body struct {
	Desc *BodyDescriptor
	Meta *BodyMetadata

	// Pivot is the orbit group, rotated about Y each frame.
	Pivot *Node

	// Model is the loaded model placed at the orbit radius.
	Model *Node

	// Target is the clickable node carrying the metadata: the first mesh
	// of the model, or the model itself when it has no mesh.
	Target *Node

	// Atmosphere is the shell around the model.
	Atmosphere *Node
}

// WorldPos returns the world position of the clickable target.
func (bd *Body) WorldPos() math32.Vector3 {
	return bd.Target.WorldPos()
}

// Radius returns the bounding sphere radius of the clickable target.
func (bd *Body) Radius() float32 {
	return bd.Target.WorldBBox().GetBoundingSphere().Radius
}

// Bounds returns the world box of the whole model, atmosphere included.
func (bd *Body) Bounds() math32.Box3 {
	return bd.Model.WorldBBox()
}
