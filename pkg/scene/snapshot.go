package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/esunalp/JSGHXParser-sub003/pkg/core"
	"github.com/esunalp/JSGHXParser-sub003/pkg/geometry"
	"github.com/esunalp/JSGHXParser-sub003/pkg/material"
)

// StaticGeometrySnapshot is an immutable capture of every mesh reachable
// from a scene root, flattened into world space with a BVH over the meshes.
// Ray queries run against the snapshot only, so later edits to the live
// graph never affect an in-flight trace pass.
type StaticGeometrySnapshot struct {
	meshes []geometry.Shape
	bvh    *geometry.BVH
	bounds core.AABB
}

var defaultSnapshotMaterial = material.NewDiffuse(core.NewVec3(0.7, 0.7, 0.7))

// Capture walks the graph from root and bakes each mesh into world space.
// A nil or geometry-free root yields an empty snapshot with invalid bounds;
// callers fall back to their default box.
func Capture(root *Node) *StaticGeometrySnapshot {
	snap := &StaticGeometrySnapshot{}
	if root != nil {
		root.Walk(func(node *Node, world mgl64.Mat4) {
			if node.Mesh == nil || len(node.Mesh.Faces) == 0 {
				return
			}
			mat := node.Mesh.Material
			if mat == nil {
				mat = defaultSnapshotMaterial
			}
			var opts *geometry.MeshOptions
			if node.Mesh.Normals != nil {
				opts = &geometry.MeshOptions{Normals: node.Mesh.Normals}
			}
			mesh := geometry.NewTriangleMesh(node.Mesh.Vertices, node.Mesh.Faces, world, mat, opts)
			snap.meshes = append(snap.meshes, mesh)
		})
	}

	snap.bvh = geometry.NewBVH(snap.meshes)
	if len(snap.meshes) > 0 {
		snap.bounds = snap.meshes[0].BoundingBox()
		for _, m := range snap.meshes[1:] {
			snap.bounds = snap.bounds.Union(m.BoundingBox())
		}
	} else {
		// Invalid marker bounds; consumers substitute their default box
		snap.bounds = core.NewAABB(core.NewVec3(1, 1, 1), core.NewVec3(-1, -1, -1))
	}
	return snap
}

// Hit reports the nearest intersection against the captured geometry
func (s *StaticGeometrySnapshot) Hit(ray core.Ray, tMin, tMax float64, hit *geometry.HitRecord) bool {
	if s == nil || s.bvh == nil {
		return false
	}
	return s.bvh.Hit(ray, tMin, tMax, hit)
}

// Bounds returns the world-space bounds of the captured geometry. Invalid
// when the snapshot is empty.
func (s *StaticGeometrySnapshot) Bounds() core.AABB {
	return s.bounds
}

// MeshCount returns the number of captured meshes
func (s *StaticGeometrySnapshot) MeshCount() int {
	return len(s.meshes)
}
