package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/esunalp/JSGHXParser-sub003/pkg/core"
	"github.com/esunalp/JSGHXParser-sub003/pkg/lights"
	"github.com/esunalp/JSGHXParser-sub003/pkg/material"
)

// NewQuadMesh builds a two-triangle quad from a corner and two edge
// vectors. The normal follows u × v.
func NewQuadMesh(corner, u, v core.Vec3, mat material.Material) *MeshData {
	return &MeshData{
		Vertices: []core.Vec3{
			corner,
			corner.Add(u),
			corner.Add(u).Add(v),
			corner.Add(v),
		},
		Faces:    []int{0, 1, 2, 0, 2, 3},
		Material: mat,
	}
}

// NewBoxMesh builds a 12-triangle axis-aligned box between min and max,
// faces wound outward.
func NewBoxMesh(min, max core.Vec3, mat material.Material) *MeshData {
	v := []core.Vec3{
		{X: min.X, Y: min.Y, Z: min.Z}, // 0
		{X: max.X, Y: min.Y, Z: min.Z}, // 1
		{X: max.X, Y: max.Y, Z: min.Z}, // 2
		{X: min.X, Y: max.Y, Z: min.Z}, // 3
		{X: min.X, Y: min.Y, Z: max.Z}, // 4
		{X: max.X, Y: min.Y, Z: max.Z}, // 5
		{X: max.X, Y: max.Y, Z: max.Z}, // 6
		{X: min.X, Y: max.Y, Z: max.Z}, // 7
	}
	faces := []int{
		4, 5, 6, 4, 6, 7, // top (+Z)
		1, 0, 3, 1, 3, 2, // bottom (-Z)
		0, 1, 5, 0, 5, 4, // -Y
		2, 3, 7, 2, 7, 6, // +Y
		3, 0, 4, 3, 4, 7, // -X
		1, 2, 6, 1, 6, 5, // +X
	}
	return &MeshData{Vertices: v, Faces: faces, Material: mat}
}

// NewDemoScene builds a small Z-up interior: a checkered floor, a back
// wall, a box in the middle of the room, a sun, a point light and a
// hemisphere fill. Used by the demo CLI and as a fixture in tests.
func NewDemoScene() *Node {
	root := NewNode("root")

	floorMat := material.NewTexturedDiffuse(material.NewCheckerColor(
		core.NewVec3(0.80, 0.80, 0.80),
		core.NewVec3(0.35, 0.35, 0.35),
		1.0,
	))
	floor := NewNode("floor")
	floor.Mesh = NewQuadMesh(
		core.NewVec3(-5, -5, 0),
		core.NewVec3(10, 0, 0),
		core.NewVec3(0, 10, 0),
		floorMat,
	)

	wall := NewNode("back-wall")
	wall.Mesh = NewQuadMesh(
		core.NewVec3(-5, 5, 0),
		core.NewVec3(10, 0, 0),
		core.NewVec3(0, 0, 4),
		material.NewDiffuse(core.NewVec3(0.65, 0.25, 0.22)),
	)

	box := NewNode("box")
	box.Mesh = NewBoxMesh(
		core.NewVec3(-0.75, -0.75, 0),
		core.NewVec3(0.75, 0.75, 1.5),
		material.NewDiffuse(core.NewVec3(0.30, 0.45, 0.70)),
	)
	box.Transform = mgl64.Translate3D(0.5, 1.0, 0)

	sun := NewNode("sun")
	sunLight := lights.NewDirectional(
		core.NewVec3(-0.4, 0.3, -0.85),
		core.NewVec3(1.0, 0.96, 0.88),
		1.2,
	)
	sun.Light = &sunLight

	lamp := NewNode("lamp")
	lampLight := lights.NewPoint(
		core.NewVec3(0, 0, 2.5),
		core.NewVec3(1.0, 0.85, 0.6),
		2.0,
		8.0,
		1.0,
	)
	lamp.Light = &lampLight
	lamp.Transform = mgl64.Translate3D(-2.0, -2.0, 0)

	sky := NewNode("sky")
	sky.Hemisphere = &lights.Hemisphere{
		SkyColor:    core.NewVec3(0.45, 0.60, 0.85),
		GroundColor: core.NewVec3(0.20, 0.17, 0.13),
		Intensity:   0.4,
	}

	return root.Add(floor, wall, box, sun, lamp, sky)
}
