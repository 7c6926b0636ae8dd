package scene

import (
	"fmt"

	"github.com/df07/sphere-pathtracer/pkg/core"
)

// Material is a closed set of surface descriptions: Diffuse, Metal or Dielectric.
// Scattering dispatches on the concrete type.
type Material interface {
	// Name returns the material kind as used in scene files
	Name() string

	validate() error
}

// Diffuse is a matte surface. It scatters like a metal with roughness 1.
type Diffuse struct {
	Albedo core.Vec3
}

// Metal is a reflective surface whose roughness perturbs the mirror direction.
// Roughness 0 is a perfect mirror, 1 behaves as diffuse.
type Metal struct {
	Albedo    core.Vec3
	Roughness float64
}

// Dielectric is a clear refractive surface such as glass or water
type Dielectric struct {
	RefractionIndex float64
}

// NewDiffuse creates a diffuse material
func NewDiffuse(albedo core.Vec3) Diffuse {
	return Diffuse{Albedo: albedo}
}

// NewMetal creates a metal material
func NewMetal(albedo core.Vec3, roughness float64) Metal {
	return Metal{Albedo: albedo, Roughness: roughness}
}

// NewDielectric creates a dielectric material
func NewDielectric(refractionIndex float64) Dielectric {
	return Dielectric{RefractionIndex: refractionIndex}
}

func (Diffuse) Name() string    { return "diffuse" }
func (Metal) Name() string      { return "metal" }
func (Dielectric) Name() string { return "dielectric" }

func (d Diffuse) validate() error { return nil }

func (m Metal) validate() error {
	if m.Roughness < 0 || m.Roughness > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidRoughness, m.Roughness)
	}
	return nil
}

func (d Dielectric) validate() error {
	if d.RefractionIndex < 1 {
		return fmt.Errorf("%w: %v", ErrInvalidRefractionIndex, d.RefractionIndex)
	}
	return nil
}
