// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

// Control is one line of the help tooltip.
type Control struct {
	Action, Input string
}

// Controls returns the help tooltip lines for the layout.
func Controls(touch bool) []Control {
	if touch {
		return []Control{
			{"Rotate", "One Finger Drag"},
			{"Pan", "Two Finger Drag"},
			{"Zoom", "Pinch In/Out"},
		}
	}
	return []Control{
		{"Drag", "Left-Click + Move"},
		{"Pan", "Right-Click + Move"},
		{"Zoom", "Scroll Wheel"},
		{"Reset View", "'R' Key"},
		{"Toggle Help", "'H' Key"},
		{"Show Tutorial", "'T' Key"},
	}
}

// DetailControls returns the help tooltip lines of the detail page.
func DetailControls(touch bool) []Control {
	if touch {
		return []Control{{"Drag", "One finger to rotate."}}
	}
	return []Control{
		{"Drag", "Left-Click + Move to rotate."},
		{"Toggle Help", "'H' Key"},
	}
}

// RocketControls are the lines of the rocket tutorial.
var RocketControls = []Control{
	{"Forward", "'W' Key"},
	{"Backward", "'S' Key"},
	{"Turn", "'A' and 'D' Keys"},
}

// Tutorial is the first visit overlay content.
type Tutorial struct {
	Intro string
	Steps []string

	// Footer shows the don't-show-again button.
	Footer bool
}

// TutorialFor returns the tutorial content for the layout.
func TutorialFor(touch bool) Tutorial {
	const hello = "I'm Adam Mhal, and this is my interactive portfolio. Think of it as a solar system of my work. "
	if touch {
		return Tutorial{
			Intro: hello + "Here's a quick guide for your mobile device:",
			Steps: []string{
				"Explore by dragging with one finger to rotate, two to pan, and pinching to zoom.",
				"Tap on any planet (or use the top navigation) to learn more about a section.",
			},
		}
	}
	return Tutorial{
		Intro: hello + "Here's a quick guide to get you started:",
		Steps: []string{
			"Explore the system by dragging, panning, and zooming.",
			"Click on any planet (or use the top navigation) to learn more about a section.",
			"Press 'R' at any time to return to this main view.",
			"If you're bored, try pressing the rocket button in the bottom right!",
		},
		Footer: true,
	}
}
