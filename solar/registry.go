// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import "cogentcore.org/core/base/keylist"

// Registry maps node identity to the body it selects. Tagged nodes are
// never untagged: bodies stay clickable once loaded.
type Registry struct {
	byID   map[NodeID]*Body
	byName keylist.List[string, *Body]
}

// Tag registers nd as the clickable target of body.
func (rg *Registry) Tag(nd *Node, body *Body) {
	if rg.byID == nil {
		rg.byID = make(map[NodeID]*Body)
	}
	rg.byID[nd.ID] = body
	if _, has := rg.byName.AtTry(body.Meta.Name); !has {
		rg.byName.Add(body.Meta.Name, body)
	}
}

// Lookup returns the body tagged on exactly this node.
func (rg *Registry) Lookup(id NodeID) (*Body, bool) {
	bd, ok := rg.byID[id]
	return bd, ok
}

// Resolve returns the body for a hit node, checking the node and then
// each of its ancestors.
func (rg *Registry) Resolve(nd *Node) *Body {
	for n := nd; n != nil; n = n.Parent {
		if bd, ok := rg.byID[n.ID]; ok {
			return bd
		}
	}
	return nil
}

// ByName returns the body with the given display name, or nil.
func (rg *Registry) ByName(name string) *Body {
	bd, _ := rg.byName.AtTry(name)
	return bd
}

// Bodies returns the tagged bodies in the order they were loaded.
func (rg *Registry) Bodies() []*Body {
	return rg.byName.Values
}

// Len returns the number of tagged bodies.
func (rg *Registry) Len() int {
	return rg.byName.Len()
}
