package material

import (
	"github.com/df07/sphere-pathtracer/pkg/core"
	"github.com/df07/sphere-pathtracer/pkg/geometry"
)

// scatterRough reflects the incoming ray about a normal perturbed by roughness.
// Roughness 0 is a mirror; 1 spreads reflections widely enough to read as diffuse.
func scatterRough(albedo core.Vec3, roughness float64, rayIn core.Ray, hit geometry.HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	perturbed := hit.Normal.Add(core.RandomVec3Range(sampler, -0.5, 0.5).Multiply(roughness))
	direction := core.Reflect(rayIn.Direction.Normalize(), perturbed)

	// Degenerate direction falls back to the surface normal
	if direction.NearZero() {
		direction = hit.Normal
	}

	scattered := core.NewRay(hit.Point, direction)

	// Only scatter if the ray leaves the surface (not absorbed)
	scatters := direction.Dot(hit.Normal) > 0

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: albedo,
	}, scatters
}
