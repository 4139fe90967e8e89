// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package portfolio

import (
	"context"
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/htmlcore"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
	"github.com/adammhal/adammhal.github.io/nowplaying"
)

// widget is the sidebar showing what is playing.
type widget struct {
	frame  *core.Frame
	poller *nowplaying.Poller
}

func newWidget(parent core.Widget, pl *nowplaying.Poller) *widget {
	wd := &widget{poller: pl}
	wd.frame = core.NewFrame(parent)
	wd.frame.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Min.X.Em(16)
		s.Max.X.Em(20)
		s.Padding.Set(units.Em(0.75))
		s.Gap.Set(units.Em(0.25))
		s.Overflow.Y = styles.OverflowAuto
		s.Background = colors.Uniform(color.RGBA{20, 20, 30, 200})
	})
	core.NewText(wd.frame).SetText("Loading...")
	return wd
}

// set replaces the content of the sidebar. It is called from the
// poller goroutine.
func (wd *widget) set(f func()) {
	wd.frame.AsyncLock()
	defer wd.frame.AsyncUnlock()
	wd.frame.DeleteChildren()
	f()
	wd.frame.Update()
}

func (wd *widget) show(sn *nowplaying.Snapshot) {
	wd.set(func() {
		errors.Log(htmlcore.ReadMDString(htmlcore.NewContext(), wd.frame, sn.Markdown()))
	})
}

func (wd *widget) fail(err error) {
	wd.set(func() {
		core.NewText(wd.frame).SetText(nowplaying.FailureMessage)
	})
}

// run polls until ctx is done.
func (wd *widget) run(ctx context.Context) {
	wd.poller.OnUpdate = wd.show
	wd.poller.OnError = wd.fail
	wd.poller.Run(ctx)
}
