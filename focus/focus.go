// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package focus implements the camera focus state machine: the camera
// either shows the whole system from the overview point, or follows a
// single body with its info panel open.
package focus

import (
	"image/color"
	"log/slog"
	"time"

	"cogentcore.org/core/math32"
	"github.com/adammhal/adammhal.github.io/anim"
	"github.com/adammhal/adammhal.github.io/orbit"
	"github.com/adammhal/adammhal.github.io/solar"
)

// State is the focus state.
type State int32

const (
	// Overview shows the whole system with free camera orbiting.
	Overview State = iota

	// Focused follows one body.
	Focused
)

func (st State) String() string {
	if st == Focused {
		return "Focused"
	}
	return "Overview"
}

// Side is where the info panel is placed.
type Side int32

const (
	// SideDefault leaves placement to the layout, as on touch devices.
	SideDefault Side = iota
	SideLeft
	SideRight
)

// Info is the content of the info panel for a focused body.
type Info struct {
	*solar.BodyMetadata
	Side Side
}

// Panel is the user interface driven by focus changes.
type Panel interface {

	// ShowInfo opens the info panel.
	ShowInfo(info Info)

	// HideInfo closes the info panel.
	HideInfo()

	// Highlight marks the navigation entry with the given name in the
	// given color; an empty name clears the highlight.
	Highlight(name string, c color.RGBA)

	// DismissOverlays hides the help tooltip and the tutorial.
	DismissOverlays()
}

// Controller is the focus state machine. It belongs to the frame loop.
type Controller struct {

	// Rig is the camera being moved.
	Rig *orbit.Rig

	// Anim runs the camera tweens.
	Anim *anim.Scheduler

	// Panel receives the interface updates; it may be nil.
	Panel Panel

	// Touch selects the touch layout: a wider camera offset and no
	// info panel side placement.
	Touch bool

	// Duration of the eased camera moves.
	Duration time.Duration

	// TrackRate is the fraction of the remaining distance the camera
	// closes per frame while following a body.
	TrackRate float32

	// OverviewPos and OverviewTarget are the camera rest pose.
	OverviewPos, OverviewTarget math32.Vector3

	body *solar.Body
}

// New returns a controller in the Overview state with the standard
// timing and overview pose.
func New(rig *orbit.Rig, sched *anim.Scheduler, panel Panel, touch bool) *Controller {
	return &Controller{
		Rig:         rig,
		Anim:        sched,
		Panel:       panel,
		Touch:       touch,
		Duration:    1500 * time.Millisecond,
		TrackRate:   0.04,
		OverviewPos: math32.Vec3(0, 60, 0.1),
	}
}

// DesiredOffset is the camera position relative to a focused body of
// the given bounding radius: behind and above it.
func DesiredOffset(radius float32, touch bool) math32.Vector3 {
	m := float32(5)
	if touch {
		m = 8
	}
	return math32.Vec3(-radius*m, 2*radius, 0)
}

// State returns the current state.
func (fc *Controller) State() State {
	if fc.body != nil {
		return Focused
	}
	return Overview
}

// Focused returns the focused body, or nil in the Overview state.
func (fc *Controller) Focused() *solar.Body {
	return fc.body
}

// desired returns the camera position and target for the focused body
// where it is now.
func (fc *Controller) desired() (pos, target math32.Vector3) {
	target = fc.body.WorldPos()
	return target.Add(DesiredOffset(fc.body.Radius(), fc.Touch)), target
}

// Focus moves the camera to bd and opens its info panel, replacing any
// previous focus. It reports false, doing nothing, when bd is nil.
func (fc *Controller) Focus(bd *solar.Body) bool {
	if bd == nil {
		return false
	}
	prev := fc.body
	fc.body = bd
	if prev == nil {
		fc.Rig.Enabled = false
	}
	pos, target := fc.desired()
	fc.Anim.Add(anim.Vector3(&fc.Rig.Pos, pos, fc.Duration, anim.Power2InOut))
	fc.Anim.Add(anim.Vector3(&fc.Rig.Target, target, fc.Duration, anim.Power2InOut))
	slog.Debug("focus: body", "name", bd.Meta.Name)

	if fc.Panel == nil {
		return true
	}
	info := Info{BodyMetadata: bd.Meta}
	if !fc.Touch {
		info.Side = SideLeft
		if ndc, ok := fc.Rig.Project(target); ok && ndc.X < -0.2 {
			info.Side = SideRight
		}
	}
	fc.Panel.ShowInfo(info)
	fc.Panel.Highlight(bd.Meta.Name, bd.Meta.Color)
	fc.Panel.DismissOverlays()
	return true
}

// Reset returns to the Overview state from any state, easing the camera
// back to the overview pose.
func (fc *Controller) Reset() {
	fc.body = nil
	fc.Rig.Enabled = true
	fc.Anim.Add(anim.Vector3(&fc.Rig.Pos, fc.OverviewPos, fc.Duration, anim.Power2InOut))
	fc.Anim.Add(anim.Vector3(&fc.Rig.Target, fc.OverviewTarget, fc.Duration, anim.Power2InOut))
	if fc.Panel != nil {
		fc.Panel.HideInfo()
		fc.Panel.Highlight("", color.RGBA{255, 255, 255, 255})
	}
}

// Update pulls the camera toward the moving focused body. It does
// nothing in the Overview state.
func (fc *Controller) Update() {
	if fc.body == nil {
		return
	}
	pos, target := fc.desired()
	fc.Rig.Pos = fc.Rig.Pos.Lerp(pos, fc.TrackRate)
	fc.Rig.Target = fc.Rig.Target.Lerp(target, fc.TrackRate)
}
