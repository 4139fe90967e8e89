// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"bytes"
	"fmt"
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// DecodeGLTF decodes a self-contained glTF document (GLB, or JSON with
// embedded buffers). Node matrices are ignored in favor of TRS values;
// only triangle primitives are kept, merged per glTF mesh.
func DecodeGLTF(name string, data []byte) (*Model, error) {
	doc := &gltf.Document{}
	if err := gltf.NewDecoder(bytes.NewReader(data)).Decode(doc); err != nil {
		return nil, fmt.Errorf("asset: %s: %w", name, err)
	}
	meshes := make([]*Mesh, len(doc.Meshes))
	for i, gm := range doc.Meshes {
		ms, err := decodeMesh(doc, gm)
		if err != nil {
			return nil, fmt.Errorf("asset: %s: mesh %d: %w", name, i, err)
		}
		meshes[i] = ms
	}

	root := NewNode(name)
	var visit func(idx int, parent *Node, depth int)
	visit = func(idx int, parent *Node, depth int) {
		if idx < 0 || idx >= len(doc.Nodes) || depth > 64 {
			return
		}
		gn := doc.Nodes[idx]
		nd := NewNode(gn.Name)
		nd.Pos = math32.Vec3(float32(gn.Translation[0]), float32(gn.Translation[1]), float32(gn.Translation[2]))
		if gn.Scale != [3]float64{} {
			nd.Scale = math32.Vec3(float32(gn.Scale[0]), float32(gn.Scale[1]), float32(gn.Scale[2]))
		}
		if gn.Rotation != [4]float64{} {
			nd.Quat = math32.Quat{X: float32(gn.Rotation[0]), Y: float32(gn.Rotation[1]), Z: float32(gn.Rotation[2]), W: float32(gn.Rotation[3])}
		}
		if gn.Mesh != nil && int(*gn.Mesh) < len(meshes) {
			nd.Mesh = meshes[int(*gn.Mesh)]
		}
		parent.Children = append(parent.Children, nd)
		for _, kid := range gn.Children {
			visit(int(kid), nd, depth+1)
		}
	}
	for _, idx := range sceneRoots(doc) {
		visit(idx, root, 0)
	}
	return &Model{Path: name, Root: root}, nil
}

// sceneRoots returns the root node indexes of the default scene.
func sceneRoots(doc *gltf.Document) []int {
	var roots []int
	switch {
	case doc.Scene != nil && int(*doc.Scene) < len(doc.Scenes):
		for _, n := range doc.Scenes[int(*doc.Scene)].Nodes {
			roots = append(roots, int(n))
		}
	case len(doc.Scenes) > 0:
		for _, n := range doc.Scenes[0].Nodes {
			roots = append(roots, int(n))
		}
	default:
		child := make(map[int]bool)
		for _, gn := range doc.Nodes {
			for _, kid := range gn.Children {
				child[int(kid)] = true
			}
		}
		for i := range doc.Nodes {
			if !child[i] {
				roots = append(roots, i)
			}
		}
	}
	return roots
}

func decodeMesh(doc *gltf.Document, gm *gltf.Mesh) (*Mesh, error) {
	ms := &Mesh{Name: gm.Name}
	for _, prim := range gm.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			continue
		}
		pi, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		pos, err := modeler.ReadPosition(doc, doc.Accessors[pi], nil)
		if err != nil {
			return nil, err
		}
		base := uint32(ms.NumVertex())
		for _, p := range pos {
			ms.Vertex = append(ms.Vertex, p[0], p[1], p[2])
		}
		if ni, ok := prim.Attributes[gltf.NORMAL]; ok {
			nrm, err := modeler.ReadNormal(doc, doc.Accessors[ni], nil)
			if err == nil && len(nrm) == len(pos) {
				for _, n := range nrm {
					ms.Normal = append(ms.Normal, n[0], n[1], n[2])
				}
			}
		}
		if ti, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
			uv, err := modeler.ReadTextureCoord(doc, doc.Accessors[ti], nil)
			if err == nil && len(uv) == len(pos) {
				for _, t := range uv {
					ms.TexCoord = append(ms.TexCoord, t[0], t[1])
				}
			}
		}
		if ms.Color == (color.RGBA{}) && prim.Material != nil {
			ms.Color = baseColor(doc, int(*prim.Material))
		}
		if prim.Indices != nil {
			idx, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return nil, err
			}
			for _, ix := range idx {
				ms.Index = append(ms.Index, base+ix)
			}
		} else {
			for i := range pos {
				ms.Index = append(ms.Index, base+uint32(i))
			}
		}
	}
	ms.Complete()
	return ms, nil
}

// baseColor returns the base color factor of a material, or zero if
// it has none.
func baseColor(doc *gltf.Document, idx int) color.RGBA {
	if idx < 0 || idx >= len(doc.Materials) {
		return color.RGBA{}
	}
	pbr := doc.Materials[idx].PBRMetallicRoughness
	if pbr == nil || pbr.BaseColorFactor == nil {
		return color.RGBA{}
	}
	f := *pbr.BaseColorFactor
	c8 := func(v float64) uint8 {
		return uint8(min(max(v, 0), 1)*255 + 0.5)
	}
	return color.RGBA{c8(f[0]), c8(f[1]), c8(f[2]), c8(f[3])}
}
