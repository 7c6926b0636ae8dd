package material

import (
	"math"

	"github.com/df07/sphere-pathtracer/pkg/core"
	"github.com/df07/sphere-pathtracer/pkg/geometry"
)

// scatterDielectric either reflects or refracts, choosing reflection with Schlick probability
func scatterDielectric(refractiveIndex float64, rayIn core.Ray, hit geometry.HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Dielectrics always attenuate by 1.0 (no color absorption for clear glass)
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	// Determine if we're entering or exiting the material
	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / refractiveIndex
	} else {
		refractionRatio = refractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()

	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	// Check for total internal reflection
	cannotRefract := refractionRatio*sinTheta > 1.0

	var scattered core.Ray
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		scattered = core.NewRay(hit.Point, core.Reflect(unitDirection, hit.Normal))
	} else {
		// hit.Point sits on the incoming side; start the transmitted ray just past the surface
		origin := hit.Point.Subtract(hit.Normal.Multiply(2 * geometry.SurfaceOffset))
		scattered = core.NewRay(origin, core.Refract(unitDirection, hit.Normal, refractionRatio))
	}

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: attenuation,
	}, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation.
// Matched indices (ratio 1) have no boundary and never reflect.
func Reflectance(cosine, refractionRatio float64) float64 {
	if refractionRatio == 1 {
		return 0
	}
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
