package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/esunalp/JSGHXParser-sub003/pkg/core"
	"github.com/esunalp/JSGHXParser-sub003/pkg/lights"
	"github.com/esunalp/JSGHXParser-sub003/pkg/material"
)

// MeshData is the object-space geometry attached to a node: indexed
// triangles plus an optional material and per-triangle normals.
type MeshData struct {
	Vertices []core.Vec3
	Faces    []int
	Normals  []core.Vec3 // optional, one per triangle
	Material material.Material
}

// Node is one element of the scene graph. Transforms compose parent-first;
// meshes and point lights are placed by the node's world matrix.
type Node struct {
	Name       string
	Transform  mgl64.Mat4
	Mesh       *MeshData
	Light      *lights.LightSource
	Hemisphere *lights.Hemisphere
	Children   []*Node
}

// NewNode creates a named node with an identity transform
func NewNode(name string) *Node {
	return &Node{Name: name, Transform: mgl64.Ident4()}
}

// Add appends children to the node and returns it for chaining
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Walk visits the node and all descendants depth-first, passing each node's
// composed world transform.
func (n *Node) Walk(visit func(node *Node, world mgl64.Mat4)) {
	n.walk(mgl64.Ident4(), visit)
}

func (n *Node) walk(parent mgl64.Mat4, visit func(node *Node, world mgl64.Mat4)) {
	world := parent.Mul4(n.Transform)
	visit(n, world)
	for _, child := range n.Children {
		child.walk(world, visit)
	}
}

// CollectLights gathers the directional and point lights reachable from
// root, plus the first hemisphere light found. Point light positions are
// placed by their node's world transform; directional lights are treated as
// world-space data.
func CollectLights(root *Node) (directional, point []lights.LightSource, hemi *lights.Hemisphere) {
	if root == nil {
		return nil, nil, nil
	}
	root.Walk(func(node *Node, world mgl64.Mat4) {
		if node.Light != nil {
			l := *node.Light
			switch l.Kind {
			case lights.KindDirectional:
				directional = append(directional, l)
			case lights.KindPoint:
				p := mgl64.TransformCoordinate(mgl64.Vec3{l.Position.X, l.Position.Y, l.Position.Z}, world)
				l.Position = core.NewVec3(p[0], p[1], p[2])
				point = append(point, l)
			}
		}
		if node.Hemisphere != nil && hemi == nil {
			h := *node.Hemisphere
			hemi = &h
		}
	})
	return directional, point, hemi
}
