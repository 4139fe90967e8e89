// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/math32"
	"github.com/adammhal/adammhal.github.io/flight"
	"github.com/adammhal/adammhal.github.io/focus"
	"github.com/adammhal/adammhal.github.io/nowplaying"
	"github.com/adammhal/adammhal.github.io/orbit"
	"github.com/adammhal/adammhal.github.io/prefs"
	"github.com/adammhal/adammhal.github.io/sound"
)

// Config is the application configuration.
type Config struct {

	// Assets is the directory holding the models, sounds and pages.
	Assets string `default:"assets"`

	// Prefs is the preferences file. Empty uses the user config directory.
	Prefs string

	// Touch forces the touch layout. Otherwise it is chosen from the
	// window width.
	Touch bool

	// TouchWidth is the window width in pixels at or below which the
	// touch layout is used.
	TouchWidth int `default:"768"`

	// Debug draws the rocket hitbox.
	Debug bool

	Focus  FocusConfig
	Rocket RocketConfig
	Widget WidgetConfig
	Sound  SoundConfig
}

// FocusConfig tunes the camera moves.
type FocusConfig struct {

	// Duration of the eased camera moves, in seconds.
	Duration float32 `default:"1.5"`

	// TrackRate is the per-frame approach rate while following a body.
	TrackRate float32 `default:"0.04"`

	// Height of the overview camera above the sun.
	Height float32 `default:"60"`

	// MinDistance and MaxDistance bound the zoom of the overview camera.
	MinDistance float32 `default:"5"`
	MaxDistance float32 `default:"150"`
}

// RocketConfig tunes the rocket.
type RocketConfig struct {
	MaxSpeed  float32 `default:"0.5"`
	Accel     float32 `default:"0.005"`
	Decel     float32 `default:"0.006"`
	YawRate   float32 `default:"0.03"`
	Scale     float32 `default:"15"`
	Particles int     `default:"100"`
}

// WidgetConfig configures the sidebar widget.
type WidgetConfig struct {

	// URL is the widget backend. Empty disables the widget.
	URL string `default:"https://spotify-api-production-4a82.up.railway.app"`

	// GameID is the store id of the game being played. Empty hides it.
	GameID string `default:"1903340"`

	// Interval between fetches, in seconds.
	Interval float32 `default:"60"`
}

// SoundConfig sets the cue volumes.
type SoundConfig struct {
	Mute  bool
	Hover float64 `default:"0.2"`
	Click float64 `default:"0.3"`
	Music float64 `default:"0.5"`
}

// NewConfig returns a configuration holding the defaults. The command
// line fills one in through cli.Run, which also reads portfolio.toml.
func NewConfig() *Config {
	cfg := &Config{}
	errors.Log(cli.SetFromDefaults(cfg))
	return cfg
}

// IsTouch reports whether a window of the given width uses the touch layout.
func (cfg *Config) IsTouch(width int) bool {
	return cfg.Touch || width <= cfg.TouchWidth
}

// OpenPrefs opens the preferences file, falling back to memory when it
// cannot be read.
func (cfg *Config) OpenPrefs() prefs.Store {
	path := cfg.Prefs
	if path == "" {
		dir, err := os.UserConfigDir()
		if errors.Log(err) != nil {
			return &prefs.Memory{}
		}
		path = filepath.Join(dir, "adammhal-portfolio", "prefs.toml")
	}
	f, err := prefs.Open(path)
	if errors.Log(err) != nil {
		return &prefs.Memory{}
	}
	return f
}

func seconds(s float32) time.Duration {
	return time.Duration(float64(s) * float64(time.Second))
}

func (cfg *Config) applyFocus(fc *focus.Controller) {
	fc.Duration = seconds(cfg.Focus.Duration)
	fc.TrackRate = cfg.Focus.TrackRate
	fc.OverviewPos = math32.Vec3(0, cfg.Focus.Height, 0.1)
}

func (cfg *Config) applyRig(rg *orbit.Rig) {
	fc := &cfg.Focus
	if fc.MinDistance < 0 || fc.MaxDistance < fc.MinDistance {
		slog.Error("app: invalid camera distance limits", "min", fc.MinDistance, "max", fc.MaxDistance)
		return
	}
	rg.MinDistance = fc.MinDistance
	rg.MaxDistance = fc.MaxDistance
}

// applyRocket copies the rocket settings into p. Values that must be
// positive are logged and left at the values already in p otherwise.
func (cfg *Config) applyRocket(p *flight.Params) {
	rc := &cfg.Rocket
	positive := func(name string, v float32, dst *float32) {
		if v <= 0 {
			slog.Error("app: rocket setting must be positive", "setting", name, "value", v)
			return
		}
		*dst = v
	}
	positive("MaxSpeed", rc.MaxSpeed, &p.MaxSpeed)
	positive("Accel", rc.Accel, &p.Accel)
	positive("Decel", rc.Decel, &p.Decel)
	positive("Scale", rc.Scale, &p.Scale)
	p.YawRate = rc.YawRate
	if rc.Particles >= 0 {
		p.Particles = rc.Particles
	}
}

func (cfg *Config) applySound(pl *sound.Player) {
	pl.Mute = cfg.Sound.Mute
	pl.Volume[sound.Hover] = cfg.Sound.Hover
	pl.Volume[sound.Click] = cfg.Sound.Click
	pl.Volume[sound.Music] = cfg.Sound.Music
}

// Poller returns the sidebar widget poller, or nil when the widget is
// disabled.
func (cfg *Config) Poller() *nowplaying.Poller {
	if cfg.Widget.URL == "" {
		return nil
	}
	iv := seconds(cfg.Widget.Interval)
	if iv <= 0 {
		iv = time.Minute
	}
	return &nowplaying.Poller{
		Client:   &nowplaying.Client{BaseURL: cfg.Widget.URL, GameID: cfg.Widget.GameID},
		Interval: iv,
	}
}
