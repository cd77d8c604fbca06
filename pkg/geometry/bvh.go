package geometry

import "github.com/esunalp/JSGHXParser-sub003/pkg/core"

// BVH is a bounding volume hierarchy over a set of shapes, built with fast
// median splits along the longest axis.
type BVH struct {
	root *bvhNode
}

type bvhNode struct {
	bbox   core.AABB
	left   *bvhNode
	right  *bvhNode
	shapes []Shape // leaf payload, nil for internal nodes
}

// Leaf threshold: nodes with this many or fewer shapes become leaves
const leafThreshold = 4

// NewBVH constructs a BVH from a slice of shapes. The slice is copied so
// concurrent builds over the same input are safe.
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}
	owned := make([]Shape, len(shapes))
	copy(owned, shapes)
	return &BVH{root: buildBVHNode(owned)}
}

func buildBVHNode(shapes []Shape) *bvhNode {
	bbox := shapes[0].BoundingBox()
	for _, s := range shapes[1:] {
		bbox = bbox.Union(s.BoundingBox())
	}

	if len(shapes) <= leafThreshold {
		return &bvhNode{bbox: bbox, shapes: shapes}
	}

	axis := bbox.LongestAxis()
	splitPos := axisValue(bbox.Center(), axis)

	var left, right []Shape
	for _, s := range shapes {
		if axisValue(s.BoundingBox().Center(), axis) < splitPos {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}

	// Degenerate split (all centers on one side): fall back to a leaf
	if len(left) == 0 || len(right) == 0 {
		return &bvhNode{bbox: bbox, shapes: shapes}
	}

	return &bvhNode{
		bbox:  bbox,
		left:  buildBVHNode(left),
		right: buildBVHNode(right),
	}
}

func axisValue(v core.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Hit tests the ray against all shapes in the hierarchy, reporting the
// nearest intersection in (tMin, tMax).
func (b *BVH) Hit(ray core.Ray, tMin, tMax float64, hit *HitRecord) bool {
	if b.root == nil {
		return false
	}
	return b.root.hit(ray, tMin, tMax, hit)
}

func (n *bvhNode) hit(ray core.Ray, tMin, tMax float64, hit *HitRecord) bool {
	if !n.bbox.Hit(ray, tMin, tMax) {
		return false
	}

	if n.shapes != nil {
		hitAnything := false
		closest := tMax
		for _, s := range n.shapes {
			if s.Hit(ray, tMin, closest, hit) {
				hitAnything = true
				closest = hit.T
			}
		}
		return hitAnything
	}

	hitAnything := false
	closest := tMax
	if n.left != nil && n.left.hit(ray, tMin, closest, hit) {
		hitAnything = true
		closest = hit.T
	}
	if n.right != nil && n.right.hit(ray, tMin, closest, hit) {
		hitAnything = true
	}
	return hitAnything
}

// BoundingBox returns the overall bounding box of the hierarchy
func (b *BVH) BoundingBox() core.AABB {
	if b.root == nil {
		return core.AABB{}
	}
	return b.root.bbox
}
