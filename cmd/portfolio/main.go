// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command portfolio runs the solar system portfolio.
package main

import (
	"cogentcore.org/core/cli"
	"github.com/adammhal/adammhal.github.io/app"
	"github.com/adammhal/adammhal.github.io/portfolio"
)

func main() {
	opts := cli.DefaultOptions("portfolio", "An interactive solar system portfolio.")
	opts.DefaultFiles = []string{"portfolio.toml"}
	cli.Run(opts, &app.Config{}, portfolio.Run)
}
