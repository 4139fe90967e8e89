// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"bytes"

	"github.com/h2non/filetype"
)

// Format is a model file format.
type Format int32

const (
	FormatUnknown Format = iota
	FormatGLB
	FormatGLTF
)

var glbType = filetype.NewType("glb", "model/gltf-binary")

func init() {
	filetype.AddMatcher(glbType, func(buf []byte) bool {
		return len(buf) >= 12 && string(buf[:4]) == "glTF"
	})
}

// Sniff detects the model format from file contents.
func Sniff(data []byte) Format {
	kind, err := filetype.Match(data)
	if err == nil && kind.Extension == glbType.Extension {
		return FormatGLB
	}
	trim := bytes.TrimSpace(data)
	if len(trim) > 0 && trim[0] == '{' && bytes.Contains(trim, []byte(`"asset"`)) {
		return FormatGLTF
	}
	return FormatUnknown
}
