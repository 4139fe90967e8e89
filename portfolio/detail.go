// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package portfolio

import (
	"image/color"
	"io/fs"
	"log/slog"
	"path"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/htmlcore"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"
	"github.com/adammhal/adammhal.github.io/app"
	"github.com/adammhal/adammhal.github.io/solar"
)

// OpenDetail opens the detail page of the body with the given name in
// a new window.
func (pf *Portfolio) OpenDetail(name string) {
	descs := pf.App.System.Descriptors()
	for i := range descs {
		if descs[i].Name == name {
			pf.openDetail(&descs[i])
			return
		}
	}
	slog.Error("portfolio: no body", "name", name)
}

func (pf *Portfolio) openDetail(desc *solar.BodyDescriptor) {
	dt := app.NewDetail(desc, pf.Loader, pf.App.Touch)
	dt.Sound = pf.App.Sound
	accent := colors.Uniform(dt.Accent())

	b := core.NewBody(desc.Name)
	b.Styler(func(s *styles.Style) {
		s.Background = colors.Uniform(color.Black)
		s.Color = colors.Uniform(color.White)
	})
	top := core.NewFrame(b)
	top.Styler(func(s *styles.Style) {
		s.Direction = styles.Row
		s.Align.Items = styles.Center
	})
	pf.button(top, "Back", icons.ArrowBack, b.Close).SetType(core.ButtonText)
	title := core.NewText(top).SetText(desc.Name).SetType(core.TextHeadlineMedium)
	title.Styler(func(s *styles.Style) {
		s.Color = accent
	})

	main := core.NewFrame(b)
	main.Styler(func(s *styles.Style) {
		s.Direction = styles.Row
		s.Grow.Set(1, 1)
	})
	scene := xyzcore.NewScene(main)
	scene.SelectionMode = xyzcore.NotSelectable
	scene.Styler(func(s *styles.Style) {
		s.Min.X.Em(20)
		s.Grow.Set(1, 1)
	})
	sc := scene.XYZ
	sc.Background = colors.Uniform(color.Black)
	xyz.NewAmbient(sc, "ambient", 0.5, xyz.DirectSun)
	key := xyz.NewDirectional(sc, "key", 2, xyz.DirectSun)
	key.Pos.Set(5, 5, 5)
	back := xyz.NewDirectional(sc, "back", 1, xyz.DirectSun)
	view := NewView(sc)

	page := core.NewFrame(main)
	page.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Grow.Set(1, 1)
		s.Max.X.Em(40)
		s.Padding.Set(units.Em(1))
		s.Overflow.Y = styles.OverflowAuto
	})
	pf.readPage(page, desc.Link)

	help := core.NewFrame(b)
	help.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Padding.Set(units.Em(0.75))
		s.Border.Radius = styles.BorderRadiusMedium
		s.Background = colors.Uniform(color.RGBA{20, 20, 30, 200})
		if !dt.Help {
			s.Display = styles.DisplayNone
		}
	})
	for _, c := range app.DetailControls(dt.Touch) {
		core.NewText(help).SetText("<b>" + c.Action + ":</b> " + c.Input)
	}
	dt.OnHelp = func(visible bool) { help.Update() }

	scene.On(events.MouseDown, func(e events.Event) {
		scene.SetFocus()
	})
	scene.On(events.SlideMove, func(e events.Event) {
		d := e.PrevDelta()
		dt.Rig.Orbit(float32(d.X), float32(d.Y), float32(scene.Geom.ContentBBox.Dy()))
		e.SetHandled()
	})
	scene.On(events.KeyDown, func(e events.Event) {
		dt.KeyDown(string(e.KeyRune()))
	})
	scene.Animate(func(a *core.Animation) {
		if sz := scene.Geom.ContentBBox.Size(); sz.X > 0 && sz.Y > 0 {
			dt.Rig.Aspect = float32(sz.X) / float32(sz.Y)
		}
		dt.Update(frameTime(a))
		back.Pos = dt.Backlight
		if view.Sync(dt.Root) {
			sc.SetNeedsUpdate()
		}
		SyncCamera(sc, dt.Rig)
		sc.SetNeedsRender()
		scene.NeedsRender()
	})
	dt.Start()
	b.RunWindow()
}

// readPage renders the Markdown page pages/<link> of the assets.
func (pf *Portfolio) readPage(parent core.Widget, link string) {
	if link == "" || link == "#" || pf.Assets == nil {
		return
	}
	data, err := fs.ReadFile(pf.Assets, path.Join("pages", link))
	if err != nil {
		slog.Error("portfolio: page not loaded", "link", link, "err", err)
		core.NewText(parent).SetText("This page could not be loaded.")
		return
	}
	errors.Log(htmlcore.ReadMD(htmlcore.NewContext(), parent, data))
}
