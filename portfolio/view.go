// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package portfolio

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"github.com/adammhal/adammhal.github.io/flight"
	"github.com/adammhal/adammhal.github.io/orbit"
	"github.com/adammhal/adammhal.github.io/solar"
)

// View mirrors a solar scene graph into an xyz scene. Every solar
// node becomes a group carrying its pose, and nodes that draw
// something get a solid child.
type View struct {
	Scene *xyz.Scene

	nodes  map[solar.NodeID]*viewNode
	meshes map[any]string
	seen   map[solar.NodeID]bool
}

type viewNode struct {
	group  *xyz.Group
	solid  *xyz.Solid
	parent solar.NodeID
}

// NewView returns a view rendering into sc.
func NewView(sc *xyz.Scene) *View {
	return &View{
		Scene:  sc,
		nodes:  make(map[solar.NodeID]*viewNode),
		meshes: make(map[any]string),
		seen:   make(map[solar.NodeID]bool),
	}
}

// Sync updates the xyz scene from root. It reports whether nodes were
// added or removed, which needs a scene update rather than a render.
func (vw *View) Sync(root *solar.Node) bool {
	clear(vw.seen)
	changed := vw.syncNode(root, vw.Scene, 0)
	for id, vn := range vw.nodes {
		if vw.seen[id] {
			continue
		}
		// deleting the topmost removed group takes its subtree with it
		if vw.seen[vn.parent] {
			vn.group.Delete()
		}
		delete(vw.nodes, id)
		changed = true
	}
	return changed
}

func (vw *View) syncNode(nd *solar.Node, parent tree.Node, pid solar.NodeID) bool {
	changed := false
	vn := vw.nodes[nd.ID]
	if vn == nil {
		vn = &viewNode{group: xyz.NewGroup(parent), parent: pid}
		vn.group.SetName(fmt.Sprintf("%s-%d", nd.Name, nd.ID))
		vw.nodes[nd.ID] = vn
		changed = true
	}
	vw.seen[nd.ID] = true
	gp := vn.group
	gp.Pose.Pos = nd.Pose.Pos
	gp.Pose.Scale = nd.Pose.Scale
	gp.Pose.Quat = nd.Pose.Quat

	mesh := ""
	if !nd.Hidden {
		mesh = vw.mesh(nd)
	}
	switch {
	case mesh == "" && vn.solid != nil:
		vn.solid.Delete()
		vn.solid = nil
		changed = true
	case mesh != "":
		if vn.solid == nil {
			vn.solid = xyz.NewSolid(gp)
			vn.solid.SetName(gp.Name + "-solid")
			changed = true
		}
		if string(vn.solid.MeshName) != mesh {
			errors.Log(vn.solid.SetMeshName(mesh))
		}
		setMaterial(&vn.solid.Material, nd)
	}
	for _, kid := range nd.Children {
		if vw.syncNode(kid, gp, nd.ID) {
			changed = true
		}
	}
	return changed
}

// mesh returns the name of the xyz mesh drawing nd, creating or
// refreshing it as needed, or "" when nd draws nothing. Procedural
// shapes with equal parameters share one mesh.
func (vw *View) mesh(nd *solar.Node) string {
	if nd.Mesh != nil {
		name, ok := vw.meshes[nd.Mesh]
		if !ok {
			name = fmt.Sprintf("model-%d", len(vw.meshes))
			vw.Scene.SetMesh(modelMesh(name, nd.Mesh))
			vw.meshes[nd.Mesh] = name
		}
		return name
	}
	var key any
	switch sh := nd.Shape.(type) {
	case *solar.Sphere:
		key = *sh
	case *solar.Torus:
		key = *sh
	case *solar.Box:
		key = *sh
	case *solar.StarField, *flight.Exhaust:
		key = sh
	default:
		return ""
	}
	name, ok := vw.meshes[key]
	if !ok {
		name = fmt.Sprintf("shape-%d", len(vw.meshes))
		vw.meshes[key] = name
	}
	switch sh := nd.Shape.(type) {
	case *solar.Sphere:
		if !ok {
			xyz.NewSphere(vw.Scene, name, sh.Radius, sh.Segments)
		}
	case *solar.Torus:
		if !ok {
			xyz.NewTorus(vw.Scene, name, sh.Radius, sh.Tube, sh.Segments)
		}
	case *solar.Box:
		if !ok {
			xyz.NewBox(vw.Scene, name, sh.Size.X, sh.Size.Y, sh.Size.Z)
		}
	case *solar.StarField:
		if !ok || sh.Dirty {
			vw.Scene.SetMesh(starMesh(name, sh))
			sh.Dirty = false
		}
	case *flight.Exhaust:
		if !ok || sh.Dirty {
			vw.Scene.SetMesh(exhaustMesh(name, sh))
			sh.Dirty = false
		}
	}
	return name
}

var defaultColor = color.RGBA{200, 200, 200, 255}

func setMaterial(mt *xyz.Material, nd *solar.Node) {
	c := nd.Color
	if c == (color.RGBA{}) && nd.Mesh != nil {
		c = nd.Mesh.Color
	}
	if c == (color.RGBA{}) {
		c = defaultColor
	}
	c.A = uint8(min(max(nd.Opacity, 0), 1)*255 + 0.5)
	mt.Color = c
	if nd.Emissive {
		mt.Emissive = color.RGBA{c.R, c.G, c.B, 255}
	} else {
		mt.Emissive = color.RGBA{}
	}
}

// SyncCamera points the xyz camera as the rig does.
func SyncCamera(sc *xyz.Scene, rg *orbit.Rig) {
	sc.Camera.FOV = rg.FOV
	sc.Camera.Near = rg.Near
	sc.Camera.Far = rg.Far
	sc.Camera.Pose.Pos = rg.Pos
	sc.Camera.LookAt(rg.Target, rg.Up)
}
