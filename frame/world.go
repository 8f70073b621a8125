// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import "github.com/go-gl/mathgl/mgl64"

// World returns the transform from the frame with the given id to the
// world, memoized until the next [Graph.Reset]. Only the chain of
// dynamic anchors is walked; static runs between them come from the
// static cached transforms.
func (g *Graph) World(id ID) Transform {
	if !g.valid(id) {
		return Identity()
	}
	n := &g.nodes[id]
	if n.cached {
		return n.world
	}
	var w Transform
	switch {
	case n.anchor == NoID:
		w = n.static
	case n.anchor == id:
		if n.parent == NoID {
			w = n.local
		} else {
			w = g.World(n.parent).Mul(n.local)
		}
	default:
		w = g.World(n.anchor).Mul(n.static)
	}
	n.world = w
	n.cached = true
	return w
}

// ToAncestor returns the transform from the frame with the given id
// to the target frame by walking the parent chain and composing local
// transforms, without using any cache. The walk stops at the target,
// at the world (NoID) or at a frame with no parent.
func (g *Graph) ToAncestor(id, target ID) Transform {
	t := Identity()
	for g.valid(id) && id != target {
		n := &g.nodes[id]
		t = n.local.Mul(t)
		id = n.parent
	}
	return t
}

// isAncestor returns whether anc is id or one of its ancestors.
func (g *Graph) isAncestor(anc, id ID) bool {
	for g.valid(id) {
		if id == anc {
			return true
		}
		id = g.nodes[id].parent
	}
	return false
}

// World returns the cached transform from the frame to the world.
func (f Frame) World() Transform {
	if !f.IsValid() {
		return Identity()
	}
	return f.g.World(f.id)
}

// ToWorld returns the given local point in world coordinates.
func (f Frame) ToWorld(p mgl64.Vec3) mgl64.Vec3 {
	return f.World().Apply(p)
}

// TransformToAncestor returns the transform from f to the target by
// walking the full parent chain; the zero Frame target is the world.
func (f Frame) TransformToAncestor(target Frame) Transform {
	if !f.IsValid() {
		return Identity()
	}
	return f.g.ToAncestor(f.id, target.ID())
}

// TransformToWorld returns the given point of f expressed in the space
// of target, or in world space when target is the zero Frame.
// Targets that are not ancestors of f go through the world.
func (f Frame) TransformToWorld(p mgl64.Vec3, target Frame) mgl64.Vec3 {
	if !f.IsValid() {
		return p
	}
	if !target.IsValid() || target.g != f.g {
		return f.ToWorld(p)
	}
	if f.g.isAncestor(target.id, f.id) {
		return f.g.ToAncestor(f.id, target.id).Apply(p)
	}
	return target.World().Inverse().Mul(f.World()).Apply(p)
}
