package scene

import (
	"github.com/df07/sphere-pathtracer/pkg/core"
)

// NewDefaultScene creates a single sphere resting on a large ground sphere
func NewDefaultScene() (*Scene, error) {
	b := NewBuilder()

	red := b.Material(NewDiffuse(core.NewVec3(0.8, 0.3, 0.3)))
	ground := b.Material(NewMetal(core.NewVec3(0.8, 0.8, 0.0), 0.9))

	b.Sphere(core.NewVec3(0, 0, -1), 0.5, red)
	b.Sphere(core.NewVec3(0, -100.5, -1), 100, ground)

	return b.Build()
}

// NewSingleSphereScene creates one diffuse sphere in front of the camera and nothing else
func NewSingleSphereScene() (*Scene, error) {
	b := NewBuilder()

	red := b.Material(NewDiffuse(core.NewVec3(0.8, 0.3, 0.3)))
	b.Sphere(core.NewVec3(0, 0, -1), 0.5, red)

	return b.Build()
}

// NewShowcaseScene creates one sphere of each material variety on a ground sphere
func NewShowcaseScene() (*Scene, error) {
	b := NewBuilder().Camera(CameraConfig{
		LookFrom:  core.NewVec3(0, 0.75, 2),
		LookAt:    core.NewVec3(0, 0, -1),
		Up:        core.NewVec3(0, 1, 0),
		VFov:      40,
		FocusDist: 3,
	})

	ground := b.Material(NewDiffuse(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6)))
	blue := b.Material(NewDiffuse(core.NewVec3(0.1, 0.2, 0.5)))
	silver := b.Material(NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0))
	gold := b.Material(NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3))
	glass := b.Material(NewDielectric(1.5))

	b.Sphere(core.NewVec3(0, -100.5, -1), 100, ground)
	b.Sphere(core.NewVec3(0, 0, -1), 0.5, blue)
	b.Sphere(core.NewVec3(-1, 0, -1), 0.5, glass)
	b.Sphere(core.NewVec3(1, 0, -1), 0.5, gold)
	b.Sphere(core.NewVec3(0.4, -0.3, -0.3), 0.2, silver)
	b.Sphere(core.NewVec3(-0.45, -0.35, -0.2), 0.15, glass)

	return b.Build()
}
