package geometry

import (
	"github.com/df07/sphere-pathtracer/pkg/core"
	"github.com/df07/sphere-pathtracer/pkg/scene"
)

// closest tracks the best hit found so far during traversal
type closest struct {
	t     float64
	index int
}

// closer orders hits by distance, then by sphere index so that equal
// distances resolve to the earlier sphere regardless of traversal order.
func (c *closest) closer(t float64, index int) bool {
	return c.index < 0 || t < c.t || (t == c.t && index < c.index)
}

// ClosestHit returns the nearest sphere intersection in [tMin, tMax].
// On equal distances the earlier sphere wins.
func ClosestHit(ray core.Ray, s *scene.Scene, tMin, tMax float64) (HitRecord, bool) {
	root := s.BVH()
	if root == nil {
		return HitRecord{}, false
	}

	best := closest{t: tMax, index: -1}
	hitNode(root, ray, s.Spheres, tMin, &best)

	if best.index < 0 {
		return HitRecord{}, false
	}

	return newHitRecord(ray, s.Spheres[best.index], best.t, best.index), true
}

// hitNode recursively tests ray intersection with BVH nodes
func hitNode(node *scene.BVHNode, ray core.Ray, spheres []scene.Sphere, tMin float64, best *closest) {
	// First check if ray hits the bounding box
	if !node.BoundingBox.Hit(ray, tMin, best.t) {
		return
	}

	// Leaf: linear search, indices are ascending
	if node.IsLeaf() {
		for _, i := range node.Indices {
			if t, ok := HitSphere(ray, spheres[i], tMin, best.t); ok && best.closer(t, i) {
				best.t = t
				best.index = i
			}
		}
		return
	}

	hitNode(node.Left, ray, spheres, tMin, best)
	hitNode(node.Right, ray, spheres, tMin, best)
}
