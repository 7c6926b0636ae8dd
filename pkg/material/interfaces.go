package material

import (
	"fmt"

	"github.com/df07/sphere-pathtracer/pkg/core"
	"github.com/df07/sphere-pathtracer/pkg/geometry"
	"github.com/df07/sphere-pathtracer/pkg/scene"
)

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// Scatter produces an attenuation and a new ray for a ray hitting a surface.
// It returns false when the surface absorbs the ray.
func Scatter(m scene.Material, rayIn core.Ray, hit geometry.HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m := m.(type) {
	case scene.Diffuse:
		return scatterRough(m.Albedo, 1.0, rayIn, hit, sampler)
	case scene.Metal:
		return scatterRough(m.Albedo, m.Roughness, rayIn, hit, sampler)
	case scene.Dielectric:
		return scatterDielectric(m.RefractionIndex, rayIn, hit, sampler)
	default:
		panic(fmt.Sprintf("material: unsupported material %T", m))
	}
}
