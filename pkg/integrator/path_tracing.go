package integrator

import (
	"github.com/df07/sphere-pathtracer/pkg/core"
	"github.com/df07/sphere-pathtracer/pkg/geometry"
	"github.com/df07/sphere-pathtracer/pkg/material"
	"github.com/df07/sphere-pathtracer/pkg/scene"
)

// PathTracingIntegrator follows one scatter direction per bounce until the
// ray escapes to the sky, is absorbed, or the bounce budget runs out.
type PathTracingIntegrator struct {
	MaxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &PathTracingIntegrator{MaxDepth: maxDepth}
}

// RayColor computes the color for a primary ray. It is the loop form of Radiance.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for depth := pt.MaxDepth; depth > 0; depth-- {
		hit, isHit := geometry.ClosestHit(ray, s, TMin, TMax)
		if !isHit {
			return throughput.MultiplyVec(SkyColor(ray))
		}

		scatter, didScatter := material.Scatter(s.MaterialOf(hit.ObjectIndex), ray, hit, sampler)
		if !didScatter {
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Bounce budget exhausted
	return core.Vec3{}
}

// Radiance returns the light arriving along ray with depth bounces remaining
func (pt *PathTracingIntegrator) Radiance(ray core.Ray, s *scene.Scene, depth int, sampler core.Sampler) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := geometry.ClosestHit(ray, s, TMin, TMax)
	if !isHit {
		return SkyColor(ray)
	}

	scatter, didScatter := material.Scatter(s.MaterialOf(hit.ObjectIndex), ray, hit, sampler)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(pt.Radiance(scatter.Scattered, s, depth-1, sampler))
}
