// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app holds the state of the solar system view and routes
// frames and input to its controllers. It has no user interface of its
// own; the interface is reached through [Overlay].
package app

import (
	"image"
	"image/color"
	"math/rand/v2"
	"strings"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/adammhal/adammhal.github.io/anim"
	"github.com/adammhal/adammhal.github.io/asset"
	"github.com/adammhal/adammhal.github.io/flight"
	"github.com/adammhal/adammhal.github.io/focus"
	"github.com/adammhal/adammhal.github.io/orbit"
	"github.com/adammhal/adammhal.github.io/pick"
	"github.com/adammhal/adammhal.github.io/prefs"
	"github.com/adammhal/adammhal.github.io/solar"
	"github.com/adammhal/adammhal.github.io/sound"
)

const (
	// HelpDelay is the wait before the help tooltip appears.
	HelpDelay = 100 * time.Millisecond

	// TutorialDelay is the wait before the tutorial appears on a first visit.
	TutorialDelay = time.Second
)

// Overlay is the user interface around the scene.
type Overlay interface {
	focus.Panel

	// SetHelp shows or hides the help tooltip.
	SetHelp(visible bool)

	// ShowTutorial and HideTutorial toggle the tutorial overlay.
	ShowTutorial()
	HideTutorial()

	// ShowRocketTutorial opens the rocket tutorial panel.
	ShowRocketTutorial()

	// SetPointer switches between the pointer and default cursor.
	SetPointer(on bool)

	// RocketState reflects the rocket state on the toggle button.
	RocketState(st flight.State)
}

// Deps are the external services of an [App]. Only Loader is required.
type Deps struct {
	Loader asset.Loader
	Flags  prefs.Store
	Sound  *sound.Player
	UI     Overlay
	Rand   *rand.Rand
	Bodies []solar.BodyDescriptor
}

// App is the solar system view. All of its methods belong to the frame
// loop goroutine.
type App struct {
	Config *Config

	// Touch selects the touch layout.
	Touch bool

	Anim   *anim.Scheduler
	Rig    *orbit.Rig
	System *solar.System
	Focus  *focus.Controller
	Rocket *flight.Controller
	Router *pick.Router
	Tap    *pick.Tap

	Flags prefs.Store
	Sound *sound.Player
	UI    Overlay

	// Keys is the flight input currently held.
	Keys flight.Keys

	// Help is whether the help tooltip is visible.
	Help bool
}

// New builds the view for a window of the given width. Bodies default to
// [solar.DefaultBodies], Flags to memory and Rand to a time seeded source.
func New(cfg *Config, width int, deps Deps) *App {
	if deps.Flags == nil {
		deps.Flags = &prefs.Memory{}
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if deps.Bodies == nil {
		deps.Bodies = solar.DefaultBodies()
	}
	a := &App{
		Config: cfg,
		Touch:  cfg.IsTouch(width),
		Anim:   &anim.Scheduler{},
		Flags:  deps.Flags,
		Sound:  deps.Sound,
		UI:     deps.UI,
		Tap:    pick.NewTap(),
	}
	a.System = solar.NewSystem(deps.Bodies, deps.Loader, deps.Rand)
	a.Rig = orbit.New(math32.Vec3(0, cfg.Focus.Height, 0.1))
	cfg.applyRig(a.Rig)
	a.Focus = focus.New(a.Rig, a.Anim, a.UI, a.Touch)
	cfg.applyFocus(a.Focus)

	a.Rocket = flight.New(a.System, a.Anim, deps.Loader, a.Flags, deps.Rand)
	cfg.applyRocket(&a.Rocket.Params)
	a.Rocket.ShowHitbox = cfg.Debug
	a.Rocket.OnTutorial = func() {
		if a.UI != nil {
			a.UI.ShowRocketTutorial()
		}
	}
	a.Rocket.OnStateChange = func(st flight.State) {
		if a.UI != nil {
			a.UI.RocketState(st)
		}
	}

	a.Router = &pick.Router{Rig: a.Rig, Scene: a.System, Focus: a.Focus.Focus}
	if a.Sound != nil {
		cfg.applySound(a.Sound)
	}
	return a
}

// SetUI connects the user interface once it exists.
func (a *App) SetUI(ui Overlay) {
	a.UI = ui
	a.Focus.Panel = ui
}

// Start schedules the help tooltip and, on a first visit, the tutorial.
func (a *App) Start() {
	a.Anim.Add(anim.After(HelpDelay, func() { a.SetHelp(true) }))
	if !a.Flags.Flag(prefs.TutorialShown) {
		a.Anim.Add(anim.After(TutorialDelay, a.ShowTutorial))
	}
}

// Update advances every controller by one frame of dt.
func (a *App) Update(dt time.Duration) {
	a.Anim.Step(dt)
	a.System.Update(dt)
	a.Focus.Update()
	a.Rocket.Update(a.Keys)
	a.Rig.Update()
}

// Resize follows a change of the scene viewport size.
func (a *App) Resize(size image.Point) {
	a.Router.Size = size
	if size.X > 0 && size.Y > 0 {
		a.Rig.Aspect = float32(size.X) / float32(size.Y)
	}
}

func (a *App) startMusic() {
	if a.Sound != nil {
		a.Sound.StartMusic()
	}
}

// KeyDown handles a key press, named as by the browser (case is ignored).
func (a *App) KeyDown(key string) {
	a.startMusic()
	switch strings.ToLower(key) {
	case "r":
		a.Focus.Reset()
	case "h":
		a.SetHelp(!a.Help)
	case "t":
		a.ShowTutorial()
	default:
		a.setKey(key, true)
	}
}

// KeyUp handles a key release.
func (a *App) KeyUp(key string) {
	a.setKey(key, false)
}

func (a *App) setKey(key string, down bool) {
	switch strings.ToLower(key) {
	case "w":
		a.Keys.Forward = down
	case "s":
		a.Keys.Back = down
	case "a":
		a.Keys.Left = down
	case "d":
		a.Keys.Right = down
	}
}

// Click handles a primary click at pt in the viewport.
func (a *App) Click(pt image.Point) pick.Hit {
	a.startMusic()
	return a.Router.Click(pt)
}

// Hover updates the cursor for a pointer at pt; touch layouts ignore it.
func (a *App) Hover(pt image.Point) bool {
	if a.Touch {
		return false
	}
	on := a.Router.Hover(pt)
	if a.UI != nil {
		a.UI.SetPointer(on)
	}
	return on
}

// TouchStart and TouchEnd classify a touch as a tap, which selects like a click.
func (a *App) TouchStart(pt image.Point, at time.Time) {
	a.startMusic()
	a.Tap.Start(pt, at)
}

func (a *App) TouchEnd(pt image.Point, at time.Time) (pick.Hit, bool) {
	return a.Router.TapEnd(a.Tap, pt, at)
}

// SelectByName focuses the body with the given display name, as the
// navigation bar does. It reports false when that body is not loaded.
func (a *App) SelectByName(name string) bool {
	return a.Focus.Focus(a.System.BodyByName(name))
}

// Reset returns to the overview.
func (a *App) Reset() {
	a.Focus.Reset()
}

// ToggleRocket spawns or removes the rocket.
func (a *App) ToggleRocket() bool {
	return a.Rocket.Toggle()
}

// SetHelp shows or hides the help tooltip.
func (a *App) SetHelp(visible bool) {
	a.Help = visible
	if a.UI != nil {
		a.UI.SetHelp(visible)
	}
}

// ShowTutorial opens the tutorial overlay.
func (a *App) ShowTutorial() {
	if a.UI != nil {
		a.UI.ShowTutorial()
	}
}

// QuitTutorial closes the tutorial for good.
func (a *App) QuitTutorial() {
	if a.UI != nil {
		a.UI.HideTutorial()
	}
	errors.Log(a.Flags.SetFlag(prefs.TutorialShown, true))
}

// ControlHover plays the hover cue for interface controls.
func (a *App) ControlHover() {
	if !a.Touch && a.Sound != nil {
		a.Sound.Hover()
	}
}

// ControlClick plays the click cue for interface controls.
func (a *App) ControlClick() {
	if a.Sound != nil {
		a.Sound.Click()
	}
}

// Accent returns the color of the focused body, or white.
func (a *App) Accent() color.RGBA {
	if bd := a.Focus.Focused(); bd != nil {
		return bd.Meta.Color
	}
	return color.RGBA{255, 255, 255, 255}
}
