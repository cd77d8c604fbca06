package geometry

import (
	"github.com/esunalp/JSGHXParser-sub003/pkg/core"
	"github.com/esunalp/JSGHXParser-sub003/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit tests the ray against the shape in (tMin, tMax) and fills the
	// hit record with the nearest intersection. Returns false on a miss,
	// leaving the record untouched.
	Hit(ray core.Ray, tMin, tMax float64, hit *HitRecord) bool
	BoundingBox() core.AABB
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3         // Point of intersection
	Normal    core.Vec3         // World-space surface normal at intersection
	T         float64           // Parameter t along the ray
	FrontFace bool              // Whether the ray hit the front face
	Material  material.Material // Material of the hit surface
	Object    Shape             // Top-level object the hit belongs to (mesh, not triangle)
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}
