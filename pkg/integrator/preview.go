package integrator

import (
	"math"

	"github.com/df07/sphere-pathtracer/pkg/core"
	"github.com/df07/sphere-pathtracer/pkg/geometry"
	"github.com/df07/sphere-pathtracer/pkg/scene"
)

// PreviewIntegrator shades each bounce with a single directional light and
// halves the contribution of every further bounce. It is cheaper than the
// path tracer and never refracts.
type PreviewIntegrator struct {
	Bounces  int
	LightDir core.Vec3 // Direction the light travels in (unit length)
}

// NewPreviewIntegrator creates a preview integrator lit from the upper right front
func NewPreviewIntegrator(bounces int) *PreviewIntegrator {
	if bounces <= 0 {
		bounces = DefaultPreviewBounces
	}
	return &PreviewIntegrator{
		Bounces:  bounces,
		LightDir: core.NewVec3(-1, -1, -1).Normalize(),
	}
}

// RayColor accumulates direct light over a fixed number of mirror-ish bounces
func (p *PreviewIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Vec3 {
	color := core.Vec3{}
	multiplier := 1.0

	for bounce := 0; bounce < p.Bounces; bounce++ {
		hit, isHit := geometry.ClosestHit(ray, s, TMin, TMax)
		if !isHit {
			return color.Add(SkyColor(ray).Multiply(multiplier))
		}

		albedo, roughness := surface(s.MaterialOf(hit.ObjectIndex))

		// cos(angle) between the normal and the direction towards the light
		lightIntensity := math.Max(hit.Normal.Dot(p.LightDir.Negate()), 0)
		color = color.Add(albedo.Multiply(lightIntensity * multiplier))

		multiplier *= 0.5

		perturbed := hit.Normal.Add(core.RandomVec3Range(sampler, -0.5, 0.5).Multiply(roughness))
		ray = core.NewRay(hit.Point, core.Reflect(ray.Direction, perturbed))
	}

	return color
}

// surface maps a material onto the preview's albedo/roughness model
func surface(m scene.Material) (core.Vec3, float64) {
	switch m := m.(type) {
	case scene.Diffuse:
		return m.Albedo, 1.0
	case scene.Metal:
		return m.Albedo, m.Roughness
	case scene.Dielectric:
		return core.NewVec3(1, 1, 1), 0.0
	default:
		return core.Vec3{}, 1.0
	}
}
