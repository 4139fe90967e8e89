// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package portfolio

import (
	"context"
	"os"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/system"
	"github.com/adammhal/adammhal.github.io/app"
	"github.com/adammhal/adammhal.github.io/asset"
	"github.com/adammhal/adammhal.github.io/sound"
)

// Run opens the main window and blocks until it is closed.
func Run(cfg *app.Config) error { //cli:cmd -root
	assets := os.DirFS(cfg.Assets)
	loader := &asset.FSLoader{FS: assets}

	var player *sound.Player
	if !cfg.Sound.Mute {
		pl, err := sound.OpenSpeaker()
		if errors.Log(err) == nil {
			pl.LoadFS(assets)
			player = pl
		}
	}

	b := core.NewBody("Adam Mhal")
	width := screenWidth()
	pf := &Portfolio{Assets: assets, Loader: loader}
	pf.App = app.New(cfg, width, app.Deps{
		Loader: loader,
		Flags:  cfg.OpenPrefs(),
		Sound:  player,
	})
	pf.Build(b)
	pf.App.SetUI(pf)
	pf.App.Start()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if pf.widget != nil {
		go pf.widget.run(ctx)
	}
	b.RunMainWindow()
	return nil
}

// screenWidth is the logical width of the main screen; mobile platforms
// always report zero so that they get the touch layout.
func screenWidth() int {
	if system.TheApp.Platform().IsMobile() {
		return 0
	}
	if scr := system.TheApp.Screen(0); scr != nil && scr.Geometry.Dx() > 0 {
		return scr.Geometry.Dx()
	}
	return 1280
}

// frameTime is the time since the previous frame.
func frameTime(a *core.Animation) time.Duration {
	return time.Duration(a.Dt * float32(time.Millisecond))
}
