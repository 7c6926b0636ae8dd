package scene

import (
	"sort"

	"github.com/df07/sphere-pathtracer/pkg/core"
)

// Leaf threshold: if we have this many or fewer spheres, store them in a leaf node
const leafThreshold = 8

// BVHNode represents a node in the bounding volume hierarchy over a scene's
// spheres. Leaves hold sphere indices in ascending order.
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Indices     []int // Sphere indices for leaf nodes (nil for internal nodes)
}

// IsLeaf reports whether the node stores spheres directly
func (n *BVHNode) IsLeaf() bool {
	return n.Indices != nil
}

// buildBVH builds the hierarchy using a median split along the longest axis
func buildBVH(spheres []Sphere) *BVHNode {
	if len(spheres) == 0 {
		return nil
	}

	indices := make([]int, len(spheres))
	for i := range indices {
		indices[i] = i
	}

	return buildNode(spheres, indices)
}

func buildNode(spheres []Sphere, indices []int) *BVHNode {
	boundingBox := spheres[indices[0]].BoundingBox()
	for _, i := range indices[1:] {
		boundingBox = core.SurroundingBox(boundingBox, spheres[i].BoundingBox())
	}

	// Base case: few spheres - a leaf searched linearly
	if len(indices) <= leafThreshold {
		leaf := append([]int(nil), indices...)
		sort.Ints(leaf)
		return &BVHNode{BoundingBox: boundingBox, Indices: leaf}
	}

	axis := longestAxis(boundingBox)
	sort.SliceStable(indices, func(a, b int) bool {
		return axisValue(spheres[indices[a]].Center, axis) < axisValue(spheres[indices[b]].Center, axis)
	})

	// Split in the middle
	mid := len(indices) / 2

	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildNode(spheres, indices[:mid]),
		Right:       buildNode(spheres, indices[mid:]),
	}
}

func longestAxis(box core.AABB) int {
	size := box.Size()
	switch {
	case size.X >= size.Y && size.X >= size.Z:
		return 0
	case size.Y >= size.Z:
		return 1
	default:
		return 2
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
