// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prefs stores persistent boolean flags, such as whether a
// tutorial has already been shown.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Flag names.
const (
	TutorialShown       = "tutorialShown"
	RocketTutorialShown = "rocketTutorialShown"
)

// Store is a set of named boolean flags. Unknown flags are false.
type Store interface {
	Flag(name string) bool
	SetFlag(name string, value bool) error
}

// Memory is a [Store] that is not persisted. The zero value is ready to use.
type Memory struct {
	mu    sync.Mutex
	flags map[string]bool
}

func (m *Memory) Flag(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flags[name]
}

func (m *Memory) SetFlag(name string, value bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.flags == nil {
		m.flags = make(map[string]bool)
	}
	m.flags[name] = value
	return nil
}

// fileData is the TOML layout of a [File].
type fileData struct {
	Flags map[string]bool `toml:"flags"`
}

// File is a [Store] saved as a TOML file after every change.
type File struct {
	Path string

	mu    sync.Mutex
	flags map[string]bool
}

// Open reads the flags file at path. A missing file is an empty store.
func Open(path string) (*File, error) {
	f := &File{Path: path, flags: make(map[string]bool)}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return f, err
	}
	var fd fileData
	if err := toml.Unmarshal(b, &fd); err != nil {
		return f, fmt.Errorf("prefs: %s: %w", path, err)
	}
	for k, v := range fd.Flags {
		f.flags[k] = v
	}
	return f, nil
}

func (f *File) Flag(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.flags[name]
}

func (f *File) SetFlag(name string, value bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.flags == nil {
		f.flags = make(map[string]bool)
	}
	f.flags[name] = value
	b, err := toml.Marshal(fileData{Flags: f.flags})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(f.Path, b, 0o644); err != nil {
		return err
	}
	slog.Debug("prefs: saved", "path", f.Path, "flag", name, "value", value)
	return nil
}
