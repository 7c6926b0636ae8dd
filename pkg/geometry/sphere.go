package geometry

import (
	"math"

	"github.com/df07/sphere-pathtracer/pkg/core"
	"github.com/df07/sphere-pathtracer/pkg/scene"
)

// SurfaceOffset is how far a hit position is pushed off the surface along the normal
// so the next bounce does not re-intersect the same surface (shadow acne).
const SurfaceOffset = 1e-4

// HitRecord contains information about a ray-sphere intersection
type HitRecord struct {
	T           float64   // Parameter t along the ray
	Point       core.Vec3 // Hit point nudged along Normal by SurfaceOffset
	Normal      core.Vec3 // Unit surface normal, always opposing the incoming ray
	FrontFace   bool      // Whether the ray hit the outside of the surface
	ObjectIndex int       // Index of the sphere in the scene
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// HitSphere returns the nearest root of the ray-sphere quadratic within [tMin, tMax]
func HitSphere(ray core.Ray, sphere scene.Sphere, tMin, tMax float64) (float64, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(sphere.Center)

	// Half-b form of at² + 2ht + c = 0
	a := ray.Direction.LengthSquared()
	if a == 0 {
		return 0, false
	}
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - sphere.Radius*sphere.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return 0, false
		}
	}

	return root, true
}

// newHitRecord fills in the surface details for an accepted root
func newHitRecord(ray core.Ray, sphere scene.Sphere, t float64, objectIndex int) HitRecord {
	point := ray.At(t)
	outwardNormal := point.Subtract(sphere.Center).Multiply(1.0 / sphere.Radius)

	hit := HitRecord{T: t, ObjectIndex: objectIndex}
	hit.SetFaceNormal(ray, outwardNormal)
	hit.Point = point.Add(hit.Normal.Multiply(SurfaceOffset))

	return hit
}
