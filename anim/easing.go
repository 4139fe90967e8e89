// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float32) float32

// Linear is the identity curve.
func Linear(t float32) float32 { return t }

// Power2In is a cubic ease-in.
func Power2In(t float32) float32 { return t * t * t }

// Power2Out is a cubic ease-out.
func Power2Out(t float32) float32 {
	u := 1 - t
	return 1 - u*u*u
}

// Power2InOut is a cubic ease-in-out.
func Power2InOut(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// BackOut returns an ease-out curve that overshoots the end value by an
// amount controlled by s (1.70158 is the conventional default) and
// settles back onto it.
func BackOut(s float32) Easing {
	return func(t float32) float32 {
		u := t - 1
		return 1 + (s+1)*u*u*u + s*u*u
	}
}
