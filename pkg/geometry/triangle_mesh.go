package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/esunalp/JSGHXParser-sub003/pkg/core"
	"github.com/esunalp/JSGHXParser-sub003/pkg/material"
)

// TriangleMesh is an indexed triangle mesh instanced into world space.
// Vertices are given in object space together with an object-to-world
// transform; construction bakes the transform into the triangles and uses
// the inverse-transpose of the matrix for any supplied shading normals, so
// ray queries and normals are world-space from then on. An internal BVH
// accelerates intersection.
type TriangleMesh struct {
	triangles []Shape
	bvh       *BVH
	bbox      core.AABB
	transform mgl64.Mat4
	material  material.Material
}

// MeshOptions contains optional parameters for mesh creation
type MeshOptions struct {
	Normals   []core.Vec3         // Optional per-triangle shading normals (object space)
	Materials []material.Material // Optional per-triangle materials
}

// NewTriangleMesh creates a mesh from object-space vertices, face indices
// (groups of three), an object-to-world transform and a default material.
// The first entry of options.Materials acts as the fallback when a triangle
// has no material of its own and no default is given.
func NewTriangleMesh(vertices []core.Vec3, faces []int, transform mgl64.Mat4, mat material.Material, options *MeshOptions) *TriangleMesh {
	if len(faces)%3 != 0 {
		panic("geometry: face indices must be a multiple of 3")
	}

	numTriangles := len(faces) / 3
	if options != nil {
		if options.Normals != nil && len(options.Normals) != numTriangles {
			panic("geometry: number of normals must match number of triangles")
		}
		if options.Materials != nil && len(options.Materials) != numTriangles {
			panic("geometry: number of materials must match number of triangles")
		}
	}
	if mat == nil && options != nil && len(options.Materials) > 0 {
		mat = options.Materials[0]
	}

	// Bake the transform into the vertices; shading normals use the
	// inverse-transpose so non-uniform scales stay correct.
	world := make([]core.Vec3, len(vertices))
	for i, v := range vertices {
		world[i] = fromMgl(mgl64.TransformCoordinate(toMgl(v), transform))
	}
	normalMat := transform.Inv().Transpose().Mat3()

	mesh := &TriangleMesh{
		triangles: make([]Shape, 0, numTriangles),
		transform: transform,
		material:  mat,
	}

	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]
		if i0 < 0 || i1 < 0 || i2 < 0 || i0 >= len(world) || i1 >= len(world) || i2 >= len(world) {
			panic("geometry: face index out of bounds")
		}

		triMat := mat
		if options != nil && options.Materials != nil && options.Materials[i] != nil {
			triMat = options.Materials[i]
		}

		var tri *Triangle
		if options != nil && options.Normals != nil {
			n := fromMgl(normalMat.Mul3x1(toMgl(options.Normals[i]))).Normalize()
			tri = NewTriangleWithNormal(world[i0], world[i1], world[i2], n, triMat)
		} else {
			tri = NewTriangle(world[i0], world[i1], world[i2], triMat)
		}
		mesh.triangles = append(mesh.triangles, tri)
	}

	mesh.bvh = NewBVH(mesh.triangles)
	mesh.bbox = mesh.bvh.BoundingBox()
	return mesh
}

// Hit tests the ray against the mesh, reporting the nearest triangle hit.
// The hit record's Object is the mesh itself so occlusion tests can tell
// self-hits apart from hits on other objects.
func (m *TriangleMesh) Hit(ray core.Ray, tMin, tMax float64, hit *HitRecord) bool {
	if !m.bvh.Hit(ray, tMin, tMax, hit) {
		return false
	}
	hit.Object = m
	if hit.Material == nil {
		hit.Material = m.material
	}
	return true
}

// BoundingBox returns the world-space bounding box of the mesh
func (m *TriangleMesh) BoundingBox() core.AABB {
	return m.bbox
}

// Transform returns the object-to-world matrix the mesh was built with
func (m *TriangleMesh) Transform() mgl64.Mat4 {
	return m.transform
}

// Material returns the mesh's default material
func (m *TriangleMesh) Material() material.Material {
	return m.material
}

// TriangleCount returns the number of triangles in the mesh
func (m *TriangleMesh) TriangleCount() int {
	return len(m.triangles)
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) core.Vec3 {
	return core.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
