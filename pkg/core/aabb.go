package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// SphereBounds returns the box enclosing a sphere
func SphereBounds(center Vec3, radius float64) AABB {
	r := NewVec3(radius, radius, radius)
	return AABB{Min: center.Subtract(r), Max: center.Add(r)}
}

// SurroundingBox returns an AABB that bounds both boxes
func SurroundingBox(a, b AABB) AABB {
	return AABB{
		Min: Vec3{
			X: math.Min(a.Min.X, b.Min.X),
			Y: math.Min(a.Min.Y, b.Min.Y),
			Z: math.Min(a.Min.Z, b.Min.Z),
		},
		Max: Vec3{
			X: math.Max(a.Max.X, b.Max.X),
			Y: math.Max(a.Max.Y, b.Max.Y),
			Z: math.Max(a.Max.Z, b.Max.Z),
		},
	}
}

// Hit tests if a ray intersects with this AABB within (tMin, tMax) using the slab method
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	axes := [3][4]float64{
		{aabb.Min.X, aabb.Max.X, ray.Origin.X, ray.Direction.X},
		{aabb.Min.Y, aabb.Max.Y, ray.Origin.Y, ray.Direction.Y},
		{aabb.Min.Z, aabb.Max.Z, ray.Origin.Z, ray.Direction.Z},
	}

	for _, axis := range axes {
		lo, hi, origin, direction := axis[0], axis[1], axis[2], axis[3]

		// Ray parallel to this slab
		if math.Abs(direction) < 1e-8 {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t0 := (lo - origin) * invDirection
		t1 := (hi - origin) * invDirection
		if invDirection < 0 {
			t0, t1 = t1, t0
		}

		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMax < tMin {
			return false
		}
	}

	return true
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
