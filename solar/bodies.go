// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import (
	_ "embed"

	"cogentcore.org/core/base/iox/tomlx"
)

//go:embed bodies.toml
var bodiesTOML []byte

// bodyList is the TOML document layout of a body list.
type bodyList struct {
	Body []BodyDescriptor `toml:"body"`
}

// ReadBodies decodes a TOML list of [[body]] tables.
func ReadBodies(data []byte) ([]BodyDescriptor, error) {
	var bl bodyList
	if err := tomlx.ReadBytes(&bl, data); err != nil {
		return nil, err
	}
	return bl.Body, nil
}

// DefaultBodies returns the five built in bodies.
func DefaultBodies() []BodyDescriptor {
	bds, err := ReadBodies(bodiesTOML)
	if err != nil {
		panic(err)
	}
	return bds
}
