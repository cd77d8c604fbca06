package geometry

import (
	"github.com/esunalp/JSGHXParser-sub003/pkg/core"
	"github.com/esunalp/JSGHXParser-sub003/pkg/material"
)

// Triangle is a single world-space triangle with a precomputed normal and
// bounding box. Vertices are already transformed; meshes apply their
// object-to-world matrix before constructing triangles.
type Triangle struct {
	V0       core.Vec3
	Material material.Material
	edge1    core.Vec3 // V1 - V0, cached for intersection
	edge2    core.Vec3 // V2 - V0, cached for intersection
	normal   core.Vec3
	bbox     core.AABB
}

// NewTriangle creates a triangle from three vertices; the geometric normal
// is derived from the winding order.
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	e1 := v1.Subtract(v0)
	e2 := v2.Subtract(v0)
	return &Triangle{
		V0:       v0,
		Material: mat,
		edge1:    e1,
		edge2:    e2,
		normal:   e1.Cross(e2).Normalize(),
		bbox:     core.NewAABBFromPoints(v0, v1, v2),
	}
}

// NewTriangleWithNormal creates a triangle with an explicit shading normal
// (e.g. a vertex normal transformed by the mesh's normal matrix).
func NewTriangleWithNormal(v0, v1, v2, normal core.Vec3, mat material.Material) *Triangle {
	t := NewTriangle(v0, v1, v2, mat)
	if n := normal.Normalize(); n.LengthSquared() > 0 {
		t.normal = n
	}
	return t
}

// Hit tests ray-triangle intersection using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64, hit *HitRecord) bool {
	const epsilon = 1e-8

	h := ray.Direction.Cross(t.edge2)
	det := t.edge1.Dot(h)

	// Near-zero determinant: ray parallel to the triangle plane
	if det > -epsilon && det < epsilon {
		return false
	}

	invDet := 1.0 / det
	s := ray.Origin.Subtract(t.V0)
	u := invDet * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return false
	}

	q := s.Cross(t.edge1)
	v := invDet * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return false
	}

	tParam := invDet * t.edge2.Dot(q)
	if tParam < tMin || tParam > tMax {
		return false
	}

	hit.T = tParam
	hit.Point = ray.At(tParam)
	hit.Material = t.Material
	hit.Object = t
	hit.SetFaceNormal(ray, t.normal)
	return true
}

// BoundingBox returns the triangle's axis-aligned bounding box
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Normal returns the triangle's shading normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}
