// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"github.com/adammhal/adammhal.github.io/asset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cubeModel returns a model whose only mesh is a cube of half size h.
func cubeModel(h float32) *asset.Model {
	ms := &asset.Mesh{Name: "cube"}
	for i := 0; i < 8; i++ {
		x, y, z := -h, -h, -h
		if i&1 != 0 {
			x = h
		}
		if i&2 != 0 {
			y = h
		}
		if i&4 != 0 {
			z = h
		}
		ms.Vertex = append(ms.Vertex, x, y, z)
	}
	ms.Complete()
	root := asset.NewNode("scene")
	leaf := asset.NewNode("mesh")
	leaf.Mesh = ms
	root.Children = append(root.Children, leaf)
	return &asset.Model{Root: root}
}

func testSystem(t *testing.T, ld asset.Loader) *System {
	sy := NewSystem(DefaultBodies(), ld, rand.New(rand.NewPCG(1, 1)))
	require.Len(t, sy.Orbits, 5)
	return sy
}

func TestDefaultBodies(t *testing.T) {
	bds := DefaultBodies()
	require.Len(t, bds, 5)
	radii := []float32{10, 16, 22, 29, 36}
	for i, bd := range bds {
		assert.Equal(t, radii[i], bd.OrbitRadius)
		assert.Equal(t, float32(1), bd.Scale())
		assert.NotEmpty(t, bd.Name)
	}
	assert.Equal(t, "Projects", bds[1].Name)
	assert.InDelta(t, 0.0018, bds[1].RotationSpeed, 1e-7)
}

func TestParseColor(t *testing.T) {
	c := ParseColor("#8A2BE2")
	assert.Equal(t, uint8(0x8a), c.R)
	assert.Equal(t, uint8(0x2b), c.G)
	assert.Equal(t, uint8(0xe2), c.B)
	assert.Equal(t, uint8(255), ParseColor("bogus").G)
}

func TestPose(t *testing.T) {
	nd := NewNode("rocket")
	nd.Pose.SetAxisRotation(0, 1, 0, math.Pi/2)
	nd.Pose.MoveOnAxis(0, 0, 1, 2)
	assert.InDelta(t, 2, nd.Pose.Pos.X, 1e-5)
	assert.InDelta(t, 0, nd.Pose.Pos.Z, 1e-5)

	parent := NewNode("parent")
	parent.Pose.Pos.Set(10, 0, 0)
	parent.Pose.SetScale(2)
	kid := parent.Add(NewNode("kid"))
	kid.Pose.Pos.Set(1, 0, 0)
	p := kid.WorldPos()
	assert.InDelta(t, 12, p.X, 1e-5)
}

func TestNodeTree(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	c := a.Add(NewNode("c"))
	assert.NotEqual(t, a.ID, b.ID)
	b.Add(c)
	assert.Empty(t, a.Children)
	assert.Same(t, b, c.Parent)
	assert.True(t, b.Remove(c))
	assert.False(t, b.Remove(c))
	assert.Nil(t, c.Parent)
}

func TestWorldBBox(t *testing.T) {
	root := NewNode("root")
	root.Pose.Pos.Set(5, 0, 0)
	root.Pose.SetScale(2)
	hb := root.Add(NewNode("hitbox"))
	hb.Shape = &Box{Size: math32.Vec3(1, 1, 2)}
	hb.Hidden = true
	bb := root.WorldBBox()
	assert.InDelta(t, 4, bb.Min.X, 1e-5)
	assert.InDelta(t, 6, bb.Max.X, 1e-5)
	assert.InDelta(t, -2, bb.Min.Z, 1e-5)
	assert.InDelta(t, 2, bb.Max.Z, 1e-5)

	assert.True(t, NewNode("empty").WorldBBox().IsEmpty())
}

func TestAttach(t *testing.T) {
	sy := testSystem(t, nil)
	assert.Empty(t, sy.Bodies())

	var notified []string
	sy.OnBody = func(bd *Body) { notified = append(notified, bd.Meta.Name) }
	bd := sy.Attach("Projects", cubeModel(1))
	require.NotNil(t, bd)
	assert.Nil(t, sy.Attach("Pluto", cubeModel(1)))
	assert.Equal(t, []string{"Projects"}, notified)

	wp := bd.WorldPos()
	assert.InDelta(t, 16, wp.X, 1e-5)
	assert.InDelta(t, math.Sqrt(3), bd.Radius(), 1e-4)
	assert.InDelta(t, 1.15, bd.Bounds().Max.Y, 1e-4)

	assert.Equal(t, []*Node{bd.Target}, sy.Clickable)
	assert.Same(t, bd, sy.Registry.Resolve(bd.Target))
	assert.Nil(t, sy.Registry.Resolve(bd.Atmosphere))
	assert.Same(t, bd, sy.BodyByName("Projects"))
	assert.Equal(t, "mesh", bd.Target.Name)
	assert.True(t, bd.Meta.HasLink())
}

func TestAttachWithoutMesh(t *testing.T) {
	sy := testSystem(t, nil)
	bd := sy.Attach("Contact", &asset.Model{Root: asset.NewNode("empty")})
	require.NotNil(t, bd)
	assert.Same(t, bd.Model, bd.Target)
	assert.Same(t, bd, sy.Registry.Resolve(bd.Atmosphere))
}

func TestLoadFailureLeavesOthers(t *testing.T) {
	ld := asset.LoaderFunc(func(path string) (*asset.Model, error) {
		if path == "red_planet.glb" {
			return nil, errors.New("missing")
		}
		return cubeModel(1), nil
	})
	sy := testSystem(t, ld)
	added, err := sy.Wait(context.Background())
	require.NoError(t, err)
	assert.Len(t, added, 4)
	assert.Zero(t, sy.Pending())
	assert.Nil(t, sy.BodyByName("Achievements"))
	assert.Len(t, sy.Clickable, 4)
	assert.Len(t, sy.Orbits, 5)
}

func TestUpdateOrbits(t *testing.T) {
	sy := testSystem(t, nil)
	bd := sy.Attach("About Me & Skills", cubeModel(1))
	start := bd.WorldPos()
	for range 100 {
		sy.Update(time.Second / 60)
	}
	p := bd.WorldPos()
	assert.InDelta(t, 10, p.Length(), 1e-3)
	assert.NotEqual(t, start, p)
	assert.InDelta(t, 100.0/60, sy.SunTime, 1e-3)
}

func TestStarField(t *testing.T) {
	sf := NewStarField(200, 50, rand.New(rand.NewPCG(3, 3)))
	require.Len(t, sf.Pos, 200)
	for _, p := range sf.Pos {
		assert.LessOrEqual(t, p.Length(), float32(50.001))
	}
	for _, c := range sf.Base {
		h, s, _ := c.Hsl()
		assert.InDelta(t, 0.8, s, 1e-3)
		assert.GreaterOrEqual(t, h, 179.9)
		assert.Less(t, h, 252.1)
	}
	idx := sf.Twinkle(1.5, 10)
	assert.Len(t, idx, 10)
	for _, i := range idx {
		assert.LessOrEqual(t, sf.Color[i].R, sf.Base[i].R+1e-9)
	}
}
