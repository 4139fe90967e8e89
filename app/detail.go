// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"image/color"
	"strings"
	"time"

	"cogentcore.org/core/math32"
	"github.com/adammhal/adammhal.github.io/anim"
	"github.com/adammhal/adammhal.github.io/asset"
	"github.com/adammhal/adammhal.github.io/orbit"
	"github.com/adammhal/adammhal.github.io/solar"
	"github.com/adammhal/adammhal.github.io/sound"
)

// DetailHelpDelay is the wait before the detail page help appears.
const DetailHelpDelay = 1500 * time.Millisecond

// BacklightOffset places the detail backlight relative to the camera.
var BacklightOffset = math32.Vec3(0, 0, -5)

// Detail is the single model viewer on a body's own page.
type Detail struct {
	Desc *solar.BodyDescriptor

	Anim *anim.Scheduler
	Rig  *orbit.Rig

	// Root holds the model once it has loaded.
	Root  *solar.Node
	Model *solar.Node

	// Backlight is the position of the light behind the model; it
	// follows the camera.
	Backlight math32.Vector3

	Touch bool
	Sound *sound.Player

	// Help is whether the help tooltip is visible.
	Help   bool
	OnHelp func(visible bool)

	// OnModel is called once the model is in Root.
	OnModel func(model *solar.Node)

	load *asset.Future[*asset.Model]
}

// NewDetail starts loading the model of desc with ld, which may be nil.
func NewDetail(desc *solar.BodyDescriptor, ld asset.Loader, touch bool) *Detail {
	rg := orbit.New(math32.Vec3(0, 0, 5))
	rg.FOV = 50
	rg.EnablePan = false
	rg.EnableZoom = false
	rg.AutoRotate = true
	rg.AutoRotateSpeed = 0.5
	dt := &Detail{
		Desc:      desc,
		Anim:      &anim.Scheduler{},
		Rig:       rg,
		Root:      solar.NewNode(desc.Name + "-detail"),
		Backlight: rg.Pos.Add(BacklightOffset),
		Touch:     touch,
	}
	if ld != nil && desc.ModelPath != "" {
		dt.load = asset.Load(ld, desc.ModelPath)
	}
	return dt
}

// Accent is the page accent color.
func (dt *Detail) Accent() color.RGBA {
	return dt.Desc.RGBA()
}

// Start schedules the help tooltip.
func (dt *Detail) Start() {
	dt.Anim.Add(anim.After(DetailHelpDelay, func() { dt.SetHelp(true) }))
}

// Update advances the viewer by one frame of d.
func (dt *Detail) Update(d time.Duration) {
	dt.Anim.Step(d)
	if dt.load != nil && dt.load.Ready() {
		md, err := dt.load.Result()
		dt.load = nil
		if err == nil && md != nil {
			dt.Model = dt.Root.Add(solar.FromModel(md))
			dt.Model.Pose.SetScale(dt.Desc.Scale())
			if dt.OnModel != nil {
				dt.OnModel(dt.Model)
			}
		}
	}
	dt.Rig.Update()
	dt.Backlight = dt.Rig.Pos.Add(BacklightOffset)
}

// KeyDown handles a key press: h toggles the help.
func (dt *Detail) KeyDown(key string) {
	if dt.Sound != nil {
		dt.Sound.StartMusic()
	}
	if strings.EqualFold(key, "h") {
		dt.SetHelp(!dt.Help)
	}
}

// SetHelp shows or hides the help tooltip.
func (dt *Detail) SetHelp(visible bool) {
	dt.Help = visible
	if dt.OnHelp != nil {
		dt.OnHelp(visible)
	}
}
