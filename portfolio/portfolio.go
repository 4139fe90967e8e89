// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package portfolio is the graphical interface of the solar system
// portfolio: the 3D scene, its navigation bar and overlays, the
// sidebar widget and the per-body detail windows.
package portfolio

import (
	"image"
	"image/color"
	"io/fs"
	"strconv"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/cursors"
	"cogentcore.org/core/events"
	"cogentcore.org/core/events/key"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"
	"github.com/adammhal/adammhal.github.io/app"
	"github.com/adammhal/adammhal.github.io/asset"
	"github.com/adammhal/adammhal.github.io/flight"
	"github.com/adammhal/adammhal.github.io/focus"
)

// Portfolio is the main window. It implements [app.Overlay].
type Portfolio struct {
	App *app.App

	// Assets holds the models, sounds and pages.
	Assets fs.FS

	// Loader loads the detail page models.
	Loader asset.Loader

	body   *core.Body
	scene  *xyzcore.Scene
	view   *View
	nav    *core.Frame
	info   [2]*core.Frame
	help   *core.Frame
	rocket *core.Button
	widget *widget

	// tutorial is the open tutorial dialog, if any.
	tutorial *core.Body

	infoVisible bool
	infoSide    focus.Side
	infoData    focus.Info
	highlight   string
	hlColor     color.RGBA
	helpVisible bool
	rocketState flight.State
}

// Build adds the window content to b.
func (pf *Portfolio) Build(b *core.Body) {
	pf.body = b
	b.Styler(func(s *styles.Style) {
		s.Background = colors.Uniform(color.Black)
		s.Color = colors.Uniform(color.White)
	})
	pf.makeNav(b)

	main := core.NewFrame(b)
	main.Styler(func(s *styles.Style) {
		s.Direction = styles.Row
		s.Grow.Set(1, 1)
	})
	pf.info[0] = pf.makeInfo(main, focus.SideLeft)
	pf.makeScene(main)
	pf.info[1] = pf.makeInfo(main, focus.SideRight)
	if wd := pf.App.Config.Poller(); wd != nil {
		pf.widget = newWidget(main, wd)
	}

	bottom := core.NewFrame(b)
	bottom.Styler(func(s *styles.Style) {
		s.Direction = styles.Row
		s.Align.Items = styles.End
	})
	pf.makeHelp(bottom)
	core.NewStretch(bottom)
	pf.rocket = pf.button(bottom, "", icons.RocketLaunch, func() {
		pf.App.ToggleRocket()
	})
	pf.rocket.Updater(func() {
		switch pf.rocketState {
		case flight.Absent:
			pf.rocket.SetText("Launch rocket")
		case flight.Active:
			pf.rocket.SetText("Land rocket")
		default:
			pf.rocket.SetText("...")
		}
	})
	if pf.App.Touch {
		pf.rocket.Styler(func(s *styles.Style) {
			s.Display = styles.DisplayNone
		})
	}
}

// button adds a button that plays the interface cues.
func (pf *Portfolio) button(parent core.Widget, text string, ic icons.Icon, f func()) *core.Button {
	bt := core.NewButton(parent).SetText(text).SetIcon(ic)
	bt.On(events.MouseEnter, func(e events.Event) {
		pf.App.ControlHover()
	})
	bt.OnClick(func(e events.Event) {
		pf.App.ControlClick()
		f()
	})
	return bt
}

func (pf *Portfolio) makeNav(b *core.Body) {
	pf.nav = core.NewFrame(b)
	pf.nav.Styler(func(s *styles.Style) {
		s.Direction = styles.Row
		s.Wrap = true
		s.Justify.Content = styles.Center
		s.Gap.Set(units.Em(0.5))
	})
	for _, desc := range pf.App.System.Descriptors() {
		name := desc.Name
		bt := pf.button(pf.nav, name, icons.None, func() {
			pf.App.SelectByName(name)
		})
		bt.SetType(core.ButtonText)
		bt.Styler(func(s *styles.Style) {
			if pf.highlight == name {
				s.Color = colors.Uniform(pf.hlColor)
			}
		})
	}
	pf.button(pf.nav, "Reset view", icons.Home, pf.App.Reset).SetType(core.ButtonText)
}

func (pf *Portfolio) makeInfo(parent core.Widget, side focus.Side) *core.Frame {
	fr := core.NewFrame(parent)
	fr.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Min.X.Em(18)
		s.Max.X.Em(24)
		s.Padding.Set(units.Em(1))
		s.Gap.Set(units.Em(0.5))
		s.Border.Radius = styles.BorderRadiusLarge
		s.Border.Width.Set(units.Dp(2))
		s.Border.Color.Set(colors.Uniform(pf.accent()))
		s.Background = colors.Uniform(color.RGBA{20, 20, 30, 220})
		if !pf.infoVisible || pf.placement() != side {
			s.Display = styles.DisplayNone
		}
	})
	title := core.NewText(fr).SetType(core.TextHeadlineSmall)
	title.Updater(func() {
		title.SetText(pf.infoName())
	})
	title.Styler(func(s *styles.Style) {
		s.Color = colors.Uniform(pf.accent())
	})
	summary := core.NewText(fr)
	summary.Updater(func() {
		summary.SetText(pf.infoSummary())
	})

	row := core.NewFrame(fr)
	row.Styler(func(s *styles.Style) {
		s.Direction = styles.Row
	})
	more := pf.button(row, "Learn more", icons.OpenInNew, func() {
		if pf.infoData.BodyMetadata != nil {
			pf.OpenDetail(pf.infoData.Name)
		}
	})
	more.Styler(func(s *styles.Style) {
		if pf.infoData.BodyMetadata == nil || !pf.infoData.HasLink() {
			s.Display = styles.DisplayNone
		}
	})
	pf.button(row, "Close", icons.Close, pf.App.Reset).SetType(core.ButtonText)
	return fr
}

func (pf *Portfolio) accent() color.RGBA {
	if pf.infoData.BodyMetadata == nil {
		return color.RGBA{255, 255, 255, 255}
	}
	return pf.infoData.Color
}

func (pf *Portfolio) infoName() string {
	if pf.infoData.BodyMetadata == nil {
		return ""
	}
	return pf.infoData.Name
}

func (pf *Portfolio) infoSummary() string {
	if pf.infoData.BodyMetadata == nil {
		return ""
	}
	return pf.infoData.Summary
}

// placement is the side the info panel is drawn on; touch layouts
// use the left slot.
func (pf *Portfolio) placement() focus.Side {
	if pf.infoSide == focus.SideRight {
		return focus.SideRight
	}
	return focus.SideLeft
}

func (pf *Portfolio) makeHelp(parent core.Widget) {
	pf.help = core.NewFrame(parent)
	pf.help.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Padding.Set(units.Em(0.75))
		s.Border.Radius = styles.BorderRadiusMedium
		s.Background = colors.Uniform(color.RGBA{20, 20, 30, 200})
		if !pf.helpVisible {
			s.Display = styles.DisplayNone
		}
	})
	core.NewText(pf.help).SetText("Controls").SetType(core.TextTitleSmall)
	for _, c := range app.Controls(pf.App.Touch) {
		core.NewText(pf.help).SetText("<b>" + c.Action + ":</b> " + c.Input)
	}
	pf.button(pf.help, "Close", icons.Close, func() {
		pf.App.SetHelp(false)
	}).SetType(core.ButtonText)
}

func (pf *Portfolio) makeScene(parent core.Widget) {
	pf.scene = xyzcore.NewScene(parent)
	pf.scene.SelectionMode = xyzcore.NotSelectable
	sc := pf.scene.XYZ
	sc.Background = colors.Uniform(color.Black)
	xyz.NewAmbient(sc, "ambient", 0.5, xyz.DirectSun)
	dir := xyz.NewDirectional(sc, "sun", 2, xyz.DirectSun)
	dir.Pos.Set(5, 5, 5)
	pf.view = NewView(sc)
	pf.App.Router.Chrome = pf.chrome

	pf.scene.On(events.MouseMove, func(e events.Event) {
		pf.App.Hover(pf.local(e))
	})
	pf.scene.OnClick(func(e events.Event) {
		if !pf.App.Touch {
			pf.App.Click(pf.local(e))
		}
		e.SetHandled()
	})
	pf.scene.On(events.MouseDown, func(e events.Event) {
		pf.scene.SetFocus()
		if pf.App.Touch {
			pf.App.TouchStart(pf.local(e), e.Time())
		}
	})
	pf.scene.On(events.MouseUp, func(e events.Event) {
		if pf.App.Touch {
			pf.App.TouchEnd(pf.local(e), e.Time())
		}
	})
	pf.scene.On(events.SlideMove, func(e events.Event) {
		d := e.PrevDelta()
		h := float32(pf.scene.Geom.ContentBBox.Dy())
		if e.MouseButton() == events.Right || e.HasAnyModifier(key.Shift) {
			pf.App.Rig.Pan(float32(d.X), float32(d.Y), h)
		} else {
			pf.App.Rig.Orbit(float32(d.X), float32(d.Y), h)
		}
		e.SetHandled()
	})
	pf.scene.On(events.Scroll, func(e events.Event) {
		if se, ok := e.(*events.MouseScroll); ok {
			switch {
			case se.Delta.Y < 0:
				pf.App.Rig.Zoom(1)
			case se.Delta.Y > 0:
				pf.App.Rig.Zoom(-1)
			}
		}
		e.SetHandled()
	})
	pf.scene.On(events.KeyDown, func(e events.Event) {
		pf.App.KeyDown(string(e.KeyRune()))
	})
	pf.scene.On(events.KeyUp, func(e events.Event) {
		pf.App.KeyUp(string(e.KeyRune()))
	})

	pf.scene.Animate(func(a *core.Animation) {
		pf.App.Resize(pf.scene.Geom.ContentBBox.Size())
		pf.App.Update(frameTime(a))
		if pf.view.Sync(pf.App.System.Root) {
			sc.SetNeedsUpdate()
		}
		SyncCamera(sc, pf.App.Rig)
		sc.SetNeedsRender()
		pf.scene.NeedsRender()
	})
}

// local converts an event position to scene viewport pixels.
func (pf *Portfolio) local(e events.Event) image.Point {
	return e.Pos().Sub(pf.scene.Geom.ContentBBox.Min)
}

// chrome returns the visible overlay rectangles in viewport pixels.
func (pf *Portfolio) chrome() []image.Rectangle {
	vp := pf.scene.Geom.ContentBBox
	var rs []image.Rectangle
	for _, w := range []core.Widget{pf.nav, pf.info[0], pf.info[1], pf.help, pf.rocket} {
		wb := w.AsWidget()
		if !wb.IsDisplayable() {
			continue
		}
		r := wb.Geom.TotalBBox.Intersect(vp)
		if !r.Empty() {
			rs = append(rs, r.Sub(vp.Min))
		}
	}
	return rs
}

// Overlay

func (pf *Portfolio) ShowInfo(info focus.Info) {
	pf.infoData = info
	pf.infoSide = info.Side
	pf.infoVisible = true
	pf.info[0].Update()
	pf.info[1].Update()
}

func (pf *Portfolio) HideInfo() {
	pf.infoVisible = false
	pf.info[0].Update()
	pf.info[1].Update()
}

func (pf *Portfolio) Highlight(name string, c color.RGBA) {
	pf.highlight, pf.hlColor = name, c
	pf.nav.Update()
}

func (pf *Portfolio) DismissOverlays() {
	pf.App.SetHelp(false)
	pf.HideTutorial()
}

func (pf *Portfolio) SetHelp(visible bool) {
	pf.helpVisible = visible
	pf.help.Update()
}

func (pf *Portfolio) ShowTutorial() {
	if pf.tutorial != nil {
		return
	}
	tut := app.TutorialFor(pf.App.Touch)
	d := core.NewBody("Welcome to my portfolio!")
	core.NewText(d).SetText(tut.Intro)
	for i, st := range tut.Steps {
		core.NewText(d).SetText(strconv.Itoa(i+1) + ". " + st)
	}
	d.AddBottomBar(func(bar *core.Frame) {
		d.AddOK(bar).SetText("Got it").OnClick(func(e events.Event) {
			pf.tutorial = nil
		})
		if tut.Footer {
			core.NewButton(bar).SetText("Don't show again").OnClick(func(e events.Event) {
				pf.App.QuitTutorial()
			})
		}
	})
	pf.tutorial = d
	d.RunDialog(pf.scene)
}

func (pf *Portfolio) HideTutorial() {
	if pf.tutorial == nil {
		return
	}
	d := pf.tutorial
	pf.tutorial = nil
	d.Close()
}

func (pf *Portfolio) ShowRocketTutorial() {
	d := core.NewBody("Rocket controls")
	for _, c := range app.RocketControls {
		core.NewText(d).SetText("<b>" + c.Action + ":</b> " + c.Input)
	}
	d.AddOKOnly().RunDialog(pf.scene)
}

func (pf *Portfolio) SetPointer(on bool) {
	if on {
		pf.scene.Styles.Cursor = cursors.Pointer
	} else {
		pf.scene.Styles.Cursor = cursors.Arrow
	}
}

func (pf *Portfolio) RocketState(st flight.State) {
	pf.rocketState = st
	pf.rocket.Update()
}
