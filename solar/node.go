// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import (
	"image/color"
	"slices"
	"sync/atomic"

	"cogentcore.org/core/math32"
	"github.com/adammhal/adammhal.github.io/asset"
)

// NodeID is the identity of a [Node], unique for the life of the process.
type NodeID uint64

var lastID atomic.Uint64

// Node is an element of the renderer-independent scene graph. A node
// draws either a loaded [asset.Mesh] or a procedural [Shape], or nothing
// when it is only a transform.
type Node struct {
	ID   NodeID
	Name string
	Pose Pose

	// Mesh is loaded model geometry.
	Mesh *asset.Mesh

	// Shape is procedural geometry, used when Mesh is nil.
	Shape Shape

	// Color is the base material color; zero means the mesh default.
	Color color.RGBA

	// Emissive makes the material glow in its Color.
	Emissive bool

	// Opacity is the material opacity in [0, 1].
	Opacity float32

	// Hidden nodes are not drawn but still have bounds.
	Hidden bool

	Parent   *Node
	Children []*Node
}

// NewNode returns a node with identity pose and a new ID.
func NewNode(name string) *Node {
	nd := &Node{ID: NodeID(lastID.Add(1)), Name: name, Opacity: 1}
	nd.Pose.Defaults()
	return nd
}

// Add makes kid a child of the node, removing it from any previous parent.
func (nd *Node) Add(kid *Node) *Node {
	if kid.Parent != nil {
		kid.Parent.Remove(kid)
	}
	kid.Parent = nd
	nd.Children = append(nd.Children, kid)
	return kid
}

// Remove detaches kid, reporting whether it was a child of the node.
func (nd *Node) Remove(kid *Node) bool {
	i := slices.Index(nd.Children, kid)
	if i < 0 {
		return false
	}
	nd.Children = slices.Delete(nd.Children, i, i+1)
	kid.Parent = nil
	return true
}

// ToWorld maps a point in the node's local coordinates to world coordinates.
func (nd *Node) ToWorld(p math32.Vector3) math32.Vector3 {
	for n := nd; n != nil; n = n.Parent {
		p = n.Pose.Transform(p)
	}
	return p
}

// WorldPos returns the world position of the node's origin.
func (nd *Node) WorldPos() math32.Vector3 {
	return nd.ToWorld(math32.Vector3{})
}

// LocalBBox returns the bounds of the node's own geometry, which is
// empty when the node draws nothing.
func (nd *Node) LocalBBox() math32.Box3 {
	switch {
	case nd.Mesh != nil:
		return nd.Mesh.Bounds
	case nd.Shape != nil:
		return nd.Shape.Bounds()
	}
	return math32.B3Empty()
}

// OwnWorldBBox returns the world axis-aligned box of the node's own
// geometry, which is empty when the node draws nothing.
func (nd *Node) OwnWorldBBox() math32.Box3 {
	bb := math32.B3Empty()
	lb := nd.LocalBBox()
	if lb.IsEmpty() {
		return bb
	}
	for i := 0; i < 8; i++ {
		c := lb.Min
		if i&1 != 0 {
			c.X = lb.Max.X
		}
		if i&2 != 0 {
			c.Y = lb.Max.Y
		}
		if i&4 != 0 {
			c.Z = lb.Max.Z
		}
		bb.ExpandByPoint(nd.ToWorld(c))
	}
	return bb
}

// WorldBBox returns the world axis-aligned box enclosing the geometry
// of the node and all of its descendants, hidden ones included.
func (nd *Node) WorldBBox() math32.Box3 {
	bb := math32.B3Empty()
	nd.WalkDown(func(n *Node) bool {
		if ob := n.OwnWorldBBox(); !ob.IsEmpty() {
			bb.ExpandByBox(ob)
		}
		return true
	})
	return bb
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

// FirstMesh returns the first node carrying a mesh in depth-first order,
// or nil if there is none.
func (nd *Node) FirstMesh() *Node {
	var found *Node
	nd.WalkDown(func(n *Node) bool {
		if n.Mesh != nil {
			found = n
			return false
		}
		return true
	})
	return found
}

// FromModel builds a scene subtree mirroring a loaded model. Meshes are
// shared with the model.
func FromModel(md *asset.Model) *Node {
	return fromAsset(md.Root)
}

func fromAsset(an *asset.Node) *Node {
	nd := NewNode(an.Name)
	nd.Pose.Pos = an.Pos
	nd.Pose.Scale = an.Scale
	nd.Pose.Quat = an.Quat
	nd.Mesh = an.Mesh
	for _, kid := range an.Children {
		nd.Add(fromAsset(kid))
	}
	return nd
}
