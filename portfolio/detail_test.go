// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package portfolio

import (
	"testing"
	"testing/fstest"

	"cogentcore.org/core/core"
	"github.com/stretchr/testify/assert"
)

func TestReadPage(t *testing.T) {
	pf := &Portfolio{Assets: fstest.MapFS{
		"pages/about.md": {Data: []byte("# About\n\nHello.\n")},
	}}

	b := core.NewBody()
	pf.readPage(b, "#")
	pf.readPage(b, "")
	assert.Equal(t, 0, b.NumChildren())

	pf.readPage(b, "missing.md")
	assert.Equal(t, 1, b.NumChildren())

	b = core.NewBody()
	pf.readPage(b, "about.md")
	assert.Greater(t, b.NumChildren(), 0)
}
