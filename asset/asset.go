// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asset loads 3D models into a renderer-independent hierarchy
// of transforms and triangle meshes. Loads run off the frame loop and
// are delivered as [Future] values that the frame loop polls.
package asset

import (
	"fmt"
	"image/color"
	"io/fs"
	"log/slog"
	"path"

	"cogentcore.org/core/math32"
)

// Mesh is indexed triangle geometry. Vertex and Normal hold 3 floats
// per vertex and TexCoord holds 2.
type Mesh struct {
	Name     string
	Vertex   []float32
	Normal   []float32
	TexCoord []float32
	Index    []uint32

	// Color is the material base color; zero when the source had none.
	Color color.RGBA

	// Bounds is the local bounding box of Vertex.
	Bounds math32.Box3
}

// NumVertex returns the number of vertices.
func (ms *Mesh) NumVertex() int {
	return len(ms.Vertex) / 3
}

// UpdateBounds recomputes Bounds from Vertex.
func (ms *Mesh) UpdateBounds() {
	ms.Bounds.SetEmpty()
	for i := 0; i+2 < len(ms.Vertex); i += 3 {
		ms.Bounds.ExpandByPoint(math32.Vec3(ms.Vertex[i], ms.Vertex[i+1], ms.Vertex[i+2]))
	}
}

// Complete fills in sequential indexes, smooth normals and zero
// texture coordinates when the source did not provide them.
func (ms *Mesh) Complete() {
	nv := ms.NumVertex()
	if len(ms.Index) == 0 {
		ms.Index = make([]uint32, nv)
		for i := range ms.Index {
			ms.Index[i] = uint32(i)
		}
	}
	if len(ms.Normal) != nv*3 {
		ms.computeNormals()
	}
	if len(ms.TexCoord) != nv*2 {
		ms.TexCoord = make([]float32, nv*2)
	}
	ms.UpdateBounds()
}

func (ms *Mesh) vertex(i uint32) math32.Vector3 {
	return math32.Vec3(ms.Vertex[3*i], ms.Vertex[3*i+1], ms.Vertex[3*i+2])
}

// computeNormals accumulates area-weighted face normals per vertex.
func (ms *Mesh) computeNormals() {
	nv := ms.NumVertex()
	acc := make([]math32.Vector3, nv)
	for i := 0; i+2 < len(ms.Index); i += 3 {
		a, b, c := ms.Index[i], ms.Index[i+1], ms.Index[i+2]
		if int(a) >= nv || int(b) >= nv || int(c) >= nv {
			continue
		}
		va := ms.vertex(a)
		n := ms.vertex(b).Sub(va).Cross(ms.vertex(c).Sub(va))
		acc[a] = acc[a].Add(n)
		acc[b] = acc[b].Add(n)
		acc[c] = acc[c].Add(n)
	}
	ms.Normal = make([]float32, nv*3)
	for i, n := range acc {
		if n.Length() > 0 {
			n = n.Normal()
		}
		ms.Normal[3*i], ms.Normal[3*i+1], ms.Normal[3*i+2] = n.X, n.Y, n.Z
	}
}

// Node is one transform in a model hierarchy, optionally carrying a mesh.
type Node struct {
	Name  string
	Pos   math32.Vector3
	Scale math32.Vector3
	Quat  math32.Quat
	Mesh  *Mesh

	Children []*Node
}

// NewNode returns a node with identity transform.
func NewNode(name string) *Node {
	return &Node{Name: name, Scale: math32.Vec3(1, 1, 1), Quat: math32.Quat{W: 1}}
}

// WalkDown calls f on the node and its descendants depth first,
// stopping at the first call that returns false.
func (nd *Node) WalkDown(f func(n *Node) bool) bool {
	if !f(nd) {
		return false
	}
	for _, kid := range nd.Children {
		if !kid.WalkDown(f) {
			return false
		}
	}
	return true
}

// Model is a loaded model file.
type Model struct {
	Path string
	Root *Node
}

// FirstMesh returns the first node carrying a mesh in depth-first order,
// or nil if there is none.
func (md *Model) FirstMesh() *Node {
	var found *Node
	md.Root.WalkDown(func(n *Node) bool {
		if n.Mesh != nil {
			found = n
			return false
		}
		return true
	})
	return found
}

// Loader loads a model synchronously; use [Load] for the asynchronous form.
type Loader interface {
	Load(path string) (*Model, error)
}

// LoaderFunc adapts a function to a [Loader].
type LoaderFunc func(path string) (*Model, error)

func (lf LoaderFunc) Load(path string) (*Model, error) {
	return lf(path)
}

// Load starts loading the given path on its own goroutine.
func Load(ld Loader, path string) *Future[*Model] {
	return Go(func() (*Model, error) {
		md, err := ld.Load(path)
		if err != nil {
			slog.Error("asset: load failed", "path", path, "err", err)
		}
		return md, err
	})
}

// FSLoader loads glTF models (binary .glb or JSON .gltf with embedded
// buffers) from a filesystem.
type FSLoader struct {
	FS fs.FS
}

func (fl *FSLoader) Load(name string) (*Model, error) {
	data, err := fs.ReadFile(fl.FS, path.Clean(name))
	if err != nil {
		return nil, err
	}
	switch Sniff(data) {
	case FormatGLB, FormatGLTF:
		return DecodeGLTF(name, data)
	}
	return nil, fmt.Errorf("asset: %s: unsupported model format", name)
}
