// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sound plays the interface cues and the background music.
package sound

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"sync"
	"time"

	"cogentcore.org/core/base/errors"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// Cue names a sound.
type Cue int32

const (
	Hover Cue = iota
	Click
	Music
	cueN
)

var cueFiles = [cueN]string{"hover.wav", "click.wav", "music.wav"}

func (c Cue) String() string {
	if c < 0 || c >= cueN {
		return fmt.Sprintf("Cue(%d)", int32(c))
	}
	return cueFiles[c]
}

// clip is a decoded sound held in memory.
type clip struct {
	buf    *beep.Buffer
	format beep.Format
}

// Player plays decoded clips through an output function. Missing clips
// are silently skipped.
type Player struct {

	// Format is the output format; clips are resampled to it.
	Format beep.Format

	// Volume per cue, as a linear gain.
	Volume [cueN]float64

	// ClickRate is the playback rate of the click cue.
	ClickRate float64

	// Mute silences everything.
	Mute bool

	mu      sync.Mutex
	clips   [cueN]*clip
	out     func(s beep.Streamer)
	started bool
}

// NewPlayer returns a player that hands streams to out, with the
// standard cue volumes.
func NewPlayer(format beep.Format, out func(s beep.Streamer)) *Player {
	pl := &Player{Format: format, ClickRate: 2, out: out}
	pl.Volume[Hover] = 0.2
	pl.Volume[Click] = 0.3
	pl.Volume[Music] = 0.5
	return pl
}

// DefaultFormat is the speaker output format.
var DefaultFormat = beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}

// OpenSpeaker initializes the system speaker and returns a player on it.
func OpenSpeaker() (*Player, error) {
	if err := speaker.Init(DefaultFormat.SampleRate, DefaultFormat.SampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return NewPlayer(DefaultFormat, func(s beep.Streamer) { speaker.Play(s) }), nil
}

// Load decodes a WAV clip for the cue.
func (pl *Player) Load(c Cue, r io.Reader) error {
	st, format, err := wav.Decode(r)
	if err != nil {
		return fmt.Errorf("sound: %v: %w", c, err)
	}
	defer st.Close()
	buf := beep.NewBuffer(format)
	buf.Append(st)
	pl.mu.Lock()
	pl.clips[c] = &clip{buf: buf, format: format}
	pl.mu.Unlock()
	return nil
}

// LoadFS loads every cue file present in fsys; missing files are
// logged and skipped.
func (pl *Player) LoadFS(fsys fs.FS) {
	for c := Cue(0); c < cueN; c++ {
		f, err := fsys.Open(cueFiles[c])
		if err != nil {
			slog.Info("sound: cue not loaded", "cue", c, "err", err)
			continue
		}
		errors.Log(pl.Load(c, f))
		f.Close()
	}
}

// Loaded reports whether a clip is loaded for the cue.
func (pl *Player) Loaded(c Cue) bool {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return pl.clips[c] != nil
}

// stream returns the output stream for the cue, played at rate and
// looped if loop, or nil if the cue is not loaded.
func (pl *Player) stream(c Cue, rate float64, loop bool) beep.Streamer {
	cl := pl.clips[c]
	if cl == nil {
		return nil
	}
	var s beep.Streamer = cl.buf.Streamer(0, cl.buf.Len())
	if loop {
		s = beep.Loop(-1, cl.buf.Streamer(0, cl.buf.Len()))
	}
	if cl.format.SampleRate != pl.Format.SampleRate {
		rate *= float64(cl.format.SampleRate) / float64(pl.Format.SampleRate)
	}
	if rate != 1 {
		s = beep.ResampleRatio(4, rate, s)
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(pl.Volume[c]), Silent: pl.Volume[c] <= 0}
}

func (pl *Player) play(c Cue, rate float64, loop bool) bool {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	if pl.Mute || pl.out == nil {
		return false
	}
	s := pl.stream(c, rate, loop)
	if s == nil {
		return false
	}
	pl.out(s)
	return true
}

// Hover plays the hover cue from the start.
func (pl *Player) Hover() bool {
	return pl.play(Hover, 1, false)
}

// Click plays the click cue from the start at [Player.ClickRate].
func (pl *Player) Click() bool {
	return pl.play(Click, pl.ClickRate, false)
}

// StartMusic starts looping the background music. Only the first call
// that finds the music loaded has any effect.
func (pl *Player) StartMusic() bool {
	pl.mu.Lock()
	started := pl.started
	pl.mu.Unlock()
	if started || !pl.play(Music, 1, true) {
		return false
	}
	pl.mu.Lock()
	pl.started = true
	pl.mu.Unlock()
	slog.Info("sound: music started")
	return true
}
