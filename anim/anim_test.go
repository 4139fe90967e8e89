// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

const frame = time.Second / 60

func TestFloat(t *testing.T) {
	var sc Scheduler
	v := float32(2)
	done := 0
	sc.Add(Float(&v, 4, time.Second, Linear)).OnDone(func() { done++ })

	sc.Step(500 * time.Millisecond)
	assert.InDelta(t, 3, v, 1e-5)
	assert.Equal(t, 1, sc.Len())

	sc.Step(500 * time.Millisecond)
	assert.Equal(t, float32(4), v)
	assert.Equal(t, 0, sc.Len())
	assert.Equal(t, 1, done)

	sc.Step(time.Second)
	assert.Equal(t, 1, done)
}

func TestRetarget(t *testing.T) {
	var sc Scheduler
	var v math32.Vector3
	first := 0
	sc.Add(Vector3(&v, math32.Vec3(10, 0, 0), time.Second, Linear)).OnDone(func() { first++ })
	sc.Step(500 * time.Millisecond)
	assert.InDelta(t, 5, v.X, 1e-4)

	// the new task starts from the current value and replaces the old one
	sc.Add(Vector3(&v, math32.Vec3(5, 10, 0), time.Second, Linear))
	assert.Equal(t, 1, sc.Len())
	sc.Step(500 * time.Millisecond)
	assert.InDelta(t, 5, v.X, 1e-4)
	assert.InDelta(t, 5, v.Y, 1e-4)
	sc.Step(time.Second)
	assert.Equal(t, math32.Vec3(5, 10, 0), v)
	assert.Equal(t, 0, first)
}

func TestAfter(t *testing.T) {
	var sc Scheduler
	fired := false
	sc.Add(After(100*time.Millisecond, func() { fired = true }))
	sc.Step(50 * time.Millisecond)
	assert.False(t, fired)
	sc.Step(50 * time.Millisecond)
	assert.True(t, fired)
	assert.Equal(t, 0, sc.Len())
}

func TestDoneSchedulesSameKey(t *testing.T) {
	var sc Scheduler
	v := float32(0)
	sc.Add(Float(&v, 1, frame, Linear)).OnDone(func() {
		sc.Add(Float(&v, 0, frame, Linear))
	})
	sc.Step(frame)
	assert.Equal(t, float32(1), v)
	assert.True(t, sc.Active(&v))
	sc.Step(frame)
	assert.Equal(t, float32(0), v)
	assert.False(t, sc.Active(&v))
}

func TestCancel(t *testing.T) {
	var sc Scheduler
	v := float32(0)
	called := false
	sc.Add(Float(&v, 1, time.Second, Linear)).OnDone(func() { called = true })
	assert.True(t, sc.Cancel(&v))
	assert.False(t, sc.Cancel(&v))
	sc.Step(2 * time.Second)
	assert.False(t, called)
	assert.Equal(t, float32(0), v)
}

func TestEasingEndpoints(t *testing.T) {
	for name, e := range map[string]Easing{
		"linear":    Linear,
		"in":        Power2In,
		"out":       Power2Out,
		"inout":     Power2InOut,
		"back1.7":   BackOut(1.7),
		"back-zero": BackOut(0),
	} {
		assert.InDelta(t, 0, e(0), 1e-6, name)
		assert.InDelta(t, 1, e(1), 1e-6, name)
	}
	assert.InDelta(t, 0.5, Power2InOut(0.5), 1e-6)
	assert.Greater(t, BackOut(1.7)(0.8), float32(1))
}
