// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"context"
	"image"
	"image/color"
	"math/rand/v2"
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"github.com/adammhal/adammhal.github.io/asset"
	"github.com/adammhal/adammhal.github.io/flight"
	"github.com/adammhal/adammhal.github.io/focus"
	"github.com/adammhal/adammhal.github.io/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type overlay struct {
	help      bool
	tutorial  int
	hidden    int
	rocketTut int
	pointer   bool
	states    []flight.State
	shown     []focus.Info
	highlight string
}

func (ov *overlay) ShowInfo(info focus.Info)            { ov.shown = append(ov.shown, info) }
func (ov *overlay) HideInfo()                           {}
func (ov *overlay) Highlight(name string, c color.RGBA) { ov.highlight = name }
func (ov *overlay) DismissOverlays()                    { ov.help = false }
func (ov *overlay) SetHelp(visible bool)                { ov.help = visible }
func (ov *overlay) ShowTutorial()                       { ov.tutorial++ }
func (ov *overlay) HideTutorial()                       { ov.hidden++ }
func (ov *overlay) ShowRocketTutorial()                 { ov.rocketTut++ }
func (ov *overlay) SetPointer(on bool)                  { ov.pointer = on }
func (ov *overlay) RocketState(st flight.State)         { ov.states = append(ov.states, st) }

func sphereModel() *asset.Model {
	ms := &asset.Mesh{Vertex: []float32{-1, -1, -1, 1, 1, 1, 1, -1, 1}}
	ms.Complete()
	leaf := asset.NewNode("mesh")
	leaf.Mesh = ms
	root := asset.NewNode("scene")
	root.Children = append(root.Children, leaf)
	return &asset.Model{Root: root}
}

var loader = asset.LoaderFunc(func(path string) (*asset.Model, error) {
	return sphereModel(), nil
})

func newApp(t *testing.T, flags prefs.Store) (*App, *overlay) {
	ov := &overlay{}
	a := New(NewConfig(), 1280, Deps{Loader: loader, Flags: flags, UI: ov, Rand: rand.New(rand.NewPCG(1, 1))})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := a.System.Wait(ctx)
	require.NoError(t, err)
	return a, ov
}

func frames(a *App, d time.Duration) {
	for step := time.Second / 60; d > 0; d -= step {
		a.Update(step)
	}
}

func TestConfig(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, "assets", cfg.Assets)
	assert.Equal(t, 768, cfg.TouchWidth)
	assert.Equal(t, float32(0.5), cfg.Rocket.MaxSpeed)
	assert.Equal(t, float32(5), cfg.Focus.MinDistance)
	assert.Equal(t, float32(150), cfg.Focus.MaxDistance)
	assert.Equal(t, "1903340", cfg.Widget.GameID)
	assert.True(t, cfg.IsTouch(768))
	assert.False(t, cfg.IsTouch(769))
	assert.NotNil(t, cfg.Poller())

	cfg.Widget.URL = ""
	assert.Nil(t, cfg.Poller())
}

func TestRocketConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Rocket.MaxSpeed = 1
	cfg.Rocket.Accel = 0.01
	p := flight.DefaultParams()
	cfg.applyRocket(&p)
	assert.Equal(t, float32(1), p.MaxSpeed)
	assert.Equal(t, float32(0.01), p.Accel)

	cfg.Rocket.MaxSpeed = 0
	cfg.Rocket.Decel = -1
	p = flight.DefaultParams()
	cfg.applyRocket(&p)
	assert.Equal(t, float32(0.5), p.MaxSpeed)
	assert.Equal(t, float32(0.006), p.Decel)
	assert.Equal(t, float32(0.01), p.Accel)
}

func TestZoomLimits(t *testing.T) {
	a, _ := newApp(t, nil)
	assert.Equal(t, float32(5), a.Rig.MinDistance)
	assert.Equal(t, float32(150), a.Rig.MaxDistance)

	for range 200 {
		a.Rig.Zoom(1)
		frames(a, time.Second/60)
	}
	assert.InDelta(t, 5, a.Rig.Pos.Sub(a.Rig.Target).Length(), 1e-3)

	for range 400 {
		a.Rig.Zoom(-1)
		frames(a, time.Second/60)
	}
	assert.InDelta(t, 150, a.Rig.Pos.Sub(a.Rig.Target).Length(), 1e-2)
}

func TestStart(t *testing.T) {
	a, ov := newApp(t, nil)
	a.Start()
	frames(a, 200*time.Millisecond)
	assert.True(t, ov.help)
	assert.Equal(t, 0, ov.tutorial)
	frames(a, time.Second)
	assert.Equal(t, 1, ov.tutorial)

	a.QuitTutorial()
	assert.Equal(t, 1, ov.hidden)
	assert.True(t, a.Flags.Flag(prefs.TutorialShown))

	b, ov2 := newApp(t, a.Flags)
	b.Start()
	frames(b, 2*time.Second)
	assert.Equal(t, 0, ov2.tutorial)
}

func TestKeys(t *testing.T) {
	a, ov := newApp(t, nil)
	a.KeyDown("W")
	a.KeyDown("a")
	assert.Equal(t, flight.Keys{Forward: true, Left: true}, a.Keys)
	a.KeyUp("w")
	assert.Equal(t, flight.Keys{Left: true}, a.Keys)

	a.KeyDown("h")
	assert.True(t, ov.help)
	a.KeyDown("H")
	assert.False(t, ov.help)

	a.KeyDown("t")
	assert.Equal(t, 1, ov.tutorial)

	require.True(t, a.SelectByName("Projects"))
	assert.Equal(t, focus.Focused, a.Focus.State())
	a.KeyDown("r")
	assert.Equal(t, focus.Overview, a.Focus.State())
}

func TestSelectByName(t *testing.T) {
	a, ov := newApp(t, nil)
	assert.False(t, a.SelectByName("Nowhere"))
	assert.Empty(t, ov.shown)

	require.True(t, a.SelectByName("Contact"))
	require.Len(t, ov.shown, 1)
	assert.Equal(t, "Contact", ov.shown[0].Name)
	assert.Equal(t, "Contact", ov.highlight)
	assert.Equal(t, a.System.BodyByName("Contact").Meta.Color, a.Accent())

	frames(a, 2*time.Second)
	a.Reset()
	frames(a, 2*time.Second)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, a.Accent())
	assert.Equal(t, math32.Vec3(0, 60, 0.1), a.Rig.Pos)
}

func TestToggleRocket(t *testing.T) {
	a, ov := newApp(t, nil)
	require.True(t, a.ToggleRocket())
	assert.False(t, a.ToggleRocket())
	for i := 0; i < 600 && a.Rocket.State() != flight.Active; i++ {
		a.Update(time.Second / 60)
		time.Sleep(time.Millisecond)
	}
	require.Equal(t, flight.Active, a.Rocket.State())
	assert.Equal(t, []flight.State{flight.Spawning, flight.Active}, ov.states)
	frames(a, 1100*time.Millisecond)
	assert.Equal(t, 1, ov.rocketTut)
	assert.True(t, a.Flags.Flag(prefs.RocketTutorialShown))
}

func TestResizeAndTouch(t *testing.T) {
	a, ov := newApp(t, nil)
	a.Resize(image.Pt(800, 400))
	assert.Equal(t, float32(2), a.Rig.Aspect)
	assert.Equal(t, image.Pt(800, 400), a.Router.Size)

	a.Hover(image.Pt(400, 200))
	a.Touch = true
	ov.pointer = true
	assert.False(t, a.Hover(image.Pt(400, 200)))
	assert.True(t, ov.pointer)

	tc := New(NewConfig(), 500, Deps{Loader: loader})
	assert.True(t, tc.Touch)
	assert.True(t, tc.Focus.Touch)
}

func TestHelpContent(t *testing.T) {
	assert.Len(t, Controls(true), 3)
	assert.Len(t, Controls(false), 6)
	assert.True(t, TutorialFor(false).Footer)
	assert.False(t, TutorialFor(true).Footer)
	assert.Len(t, TutorialFor(true).Steps, 2)
	assert.Len(t, DetailControls(true), 1)
}

func TestDetail(t *testing.T) {
	a, _ := newApp(t, nil)
	desc := &a.System.Descriptors()[1]
	dt := NewDetail(desc, loader, false)
	helps := 0
	dt.OnHelp = func(bool) { helps++ }
	dt.Start()
	assert.Equal(t, math32.Vec3(0, 0, 0), dt.Backlight)

	for i := 0; i < 600 && dt.Model == nil; i++ {
		dt.Update(time.Second / 60)
		time.Sleep(time.Millisecond)
	}
	require.NotNil(t, dt.Model)
	for d := time.Duration(0); d < 2*time.Second; d += time.Second / 60 {
		dt.Update(time.Second / 60)
	}
	assert.True(t, dt.Help)
	assert.Equal(t, 1, helps)
	assert.NotEqual(t, float32(0), dt.Rig.Pos.X)
	assert.InDelta(t, 5, dt.Rig.Pos.Length(), 1e-3)
	assert.Equal(t, dt.Rig.Pos.Add(BacklightOffset), dt.Backlight)
	assert.Equal(t, desc.RGBA(), dt.Accent())

	dt.KeyDown("h")
	assert.False(t, dt.Help)
}
