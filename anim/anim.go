// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim provides a small scheduler of timed, eased interpolation
// tasks (tweens) that is advanced once per frame by the render loop.
//
// Tasks may be keyed by the property they animate (typically a pointer
// to it). Adding a task with the key of a task that is still running
// replaces the running one, so a new camera move simply redirects the
// previous move starting from wherever the property currently is.
package anim

import (
	"slices"
	"time"

	"cogentcore.org/core/math32"
)

// Task is one timed interpolation. The zero Duration completes on the
// first step after Delay has elapsed.
type Task struct {

	// Key identifies the animated property. Tasks with a nil Key never
	// replace each other.
	Key any

	// Delay is waited before the task starts.
	Delay time.Duration

	// Duration is the length of the interpolation after Delay.
	Duration time.Duration

	// Ease maps linear progress to eased progress; Linear if nil.
	Ease Easing

	// Start is called once, on the first step after Delay, and is where
	// start values are captured.
	Start func()

	// Apply receives the eased progress, in [0, 1] for most curves.
	// It is exactly 1 on the final step.
	Apply func(t float32)

	// Done is called once when the task completes. It is not called for
	// a task that is replaced or canceled.
	Done func()

	elapsed   time.Duration
	started   bool
	finished  bool
	cancelled bool
}

// advance steps the task by dt and reports whether it finished.
func (tk *Task) advance(dt time.Duration) bool {
	tk.elapsed += dt
	if tk.elapsed < tk.Delay {
		return false
	}
	if !tk.started {
		tk.started = true
		if tk.Start != nil {
			tk.Start()
		}
	}
	p := float32(1)
	if tk.Duration > 0 {
		p = math32.Min(float32(tk.elapsed-tk.Delay)/float32(tk.Duration), 1)
	}
	ease := tk.Ease
	if ease == nil {
		ease = Linear
	}
	e := ease(p)
	if p >= 1 {
		e = 1
	}
	if tk.Apply != nil {
		tk.Apply(e)
	}
	if p >= 1 {
		tk.finished = true
	}
	return tk.finished
}

// Scheduler holds the active tasks. The zero value is ready to use.
// It is not safe for concurrent use; it belongs to the frame loop.
type Scheduler struct {
	tasks []*Task
}

// Add schedules the task, replacing any active task with the same
// non-nil Key, and returns it.
func (sc *Scheduler) Add(tk *Task) *Task {
	if tk.Key != nil {
		sc.Cancel(tk.Key)
	}
	sc.tasks = append(sc.tasks, tk)
	return tk
}

// Cancel removes the active task with the given key without calling
// its Done function. It reports whether a task was removed.
func (sc *Scheduler) Cancel(key any) bool {
	found := false
	sc.tasks = slices.DeleteFunc(sc.tasks, func(tk *Task) bool {
		if tk.Key != nil && tk.Key == key {
			tk.cancelled = true
			found = true
			return true
		}
		return false
	})
	return found
}

// Active reports whether a task with the given key is scheduled.
func (sc *Scheduler) Active(key any) bool {
	for _, tk := range sc.tasks {
		if tk.Key != nil && tk.Key == key {
			return true
		}
	}
	return false
}

// Len returns the number of scheduled tasks.
func (sc *Scheduler) Len() int {
	return len(sc.tasks)
}

// Step advances every task by dt. Completed tasks are removed before
// their Done functions run, so Done may schedule new tasks, including
// ones with the same key.
func (sc *Scheduler) Step(dt time.Duration) {
	var done []*Task
	for _, tk := range slices.Clone(sc.tasks) {
		if tk.cancelled {
			continue
		}
		if tk.advance(dt) {
			done = append(done, tk)
		}
	}
	sc.tasks = slices.DeleteFunc(sc.tasks, func(tk *Task) bool {
		return tk.finished || tk.cancelled
	})
	for _, tk := range done {
		if tk.Done != nil {
			tk.Done()
		}
	}
}

// Float returns a task animating *v to the given value, keyed by v.
func Float(v *float32, to float32, d time.Duration, ease Easing) *Task {
	var from float32
	return &Task{
		Key:      v,
		Duration: d,
		Ease:     ease,
		Start:    func() { from = *v },
		Apply: func(t float32) {
			if t == 1 {
				*v = to
				return
			}
			*v = math32.Lerp(from, to, t)
		},
	}
}

// Vector3 returns a task animating *v to the given value, keyed by v.
func Vector3(v *math32.Vector3, to math32.Vector3, d time.Duration, ease Easing) *Task {
	var from math32.Vector3
	return &Task{
		Key:      v,
		Duration: d,
		Ease:     ease,
		Start:    func() { from = *v },
		Apply: func(t float32) {
			if t == 1 {
				*v = to
				return
			}
			*v = from.Lerp(to, t)
		},
	}
}

// After returns a task that calls f once d has elapsed.
func After(d time.Duration, f func()) *Task {
	return &Task{Delay: d, Done: f}
}

// OnDone sets the Done function and returns the task, for chaining.
func (tk *Task) OnDone(f func()) *Task {
	tk.Done = f
	return tk
}
