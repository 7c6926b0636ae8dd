package scene

import (
	"fmt"

	"github.com/df07/sphere-pathtracer/pkg/core"
)

// CameraConfig describes where a scene is viewed from
type CameraConfig struct {
	LookFrom  core.Vec3 // Eye position
	LookAt    core.Vec3 // Point the camera aims at
	Up        core.Vec3 // World up direction
	VFov      float64   // Vertical field of view in degrees
	Aperture  float64   // Lens aperture; accepted but not modeled (no depth of field)
	FocusDist float64   // Distance from the eye to the image plane
}

// DefaultCameraConfig looks down -z from the origin with a 90 degree field of view
// and the image plane one unit away.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:  core.NewVec3(0, 0, 0),
		LookAt:    core.NewVec3(0, 0, -1),
		Up:        core.NewVec3(0, 1, 0),
		VFov:      90,
		FocusDist: 1,
	}
}

// Validate rejects placements that leave no view frame: an eye on its own
// look-at point, or an up vector that is zero or parallel to the view direction.
func (c CameraConfig) Validate() error {
	view := c.LookFrom.Subtract(c.LookAt)
	if view.NearZero() {
		return fmt.Errorf("%w: look_from equals look_at %v", ErrDegenerateCamera, c.LookAt)
	}
	if c.Up.Normalize().Cross(view.Normalize()).NearZero() {
		return fmt.Errorf("%w: up %v is parallel to the view direction", ErrDegenerateCamera, c.Up)
	}
	return nil
}

// Sphere references its material by index into the owning scene's material list
type Sphere struct {
	Center        core.Vec3
	Radius        float64
	MaterialIndex int
}

// NewSphere creates a sphere, rejecting nonpositive radii
func NewSphere(center core.Vec3, radius float64, materialIndex int) (Sphere, error) {
	if !(radius > 0) {
		return Sphere{}, fmt.Errorf("%w: %v", ErrInvalidRadius, radius)
	}
	return Sphere{Center: center, Radius: radius, MaterialIndex: materialIndex}, nil
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s Sphere) BoundingBox() core.AABB {
	return core.SphereBounds(s.Center, s.Radius)
}

// Scene is an ordered list of spheres and the materials they index into.
// A Scene is immutable once built and safe for concurrent reads.
type Scene struct {
	Spheres   []Sphere
	Materials []Material
	Camera    CameraConfig

	bvh *BVHNode
}

// New validates spheres and materials and returns a ready-to-render scene
func New(spheres []Sphere, materials []Material, camera CameraConfig) (*Scene, error) {
	for i, m := range materials {
		if m == nil {
			return nil, fmt.Errorf("material %d: %w", i, ErrNilMaterial)
		}
		if err := m.validate(); err != nil {
			return nil, fmt.Errorf("material %d: %w", i, err)
		}
	}

	for i, s := range spheres {
		if !(s.Radius > 0) {
			return nil, fmt.Errorf("sphere %d: %w: %v", i, ErrInvalidRadius, s.Radius)
		}
		if s.MaterialIndex < 0 || s.MaterialIndex >= len(materials) {
			return nil, fmt.Errorf("sphere %d: %w: %d of %d", i, ErrMaterialIndex, s.MaterialIndex, len(materials))
		}
	}

	spheres = append([]Sphere(nil), spheres...)

	return &Scene{
		Spheres:   spheres,
		Materials: append([]Material(nil), materials...),
		Camera:    camera,
		bvh:       buildBVH(spheres),
	}, nil
}

// MaterialOf returns the material of the sphere at index i
func (s *Scene) MaterialOf(i int) Material {
	return s.Materials[s.Spheres[i].MaterialIndex]
}

// Bounds returns the box enclosing every sphere. It is the zero box for an empty scene.
func (s *Scene) Bounds() core.AABB {
	if s.bvh == nil {
		return core.AABB{}
	}
	return s.bvh.BoundingBox
}

// BVH returns the root of the sphere hierarchy, or nil for an empty scene
func (s *Scene) BVH() *BVHNode {
	return s.bvh
}

// Empty reports whether the scene has no spheres
func (s *Scene) Empty() bool {
	return len(s.Spheres) == 0
}

// Builder assembles a scene incrementally, handing out material indices as they are added
type Builder struct {
	spheres   []Sphere
	materials []Material
	camera    CameraConfig
	err       error
}

// NewBuilder starts an empty scene with the default camera
func NewBuilder() *Builder {
	return &Builder{camera: DefaultCameraConfig()}
}

// Camera sets the scene's camera
func (b *Builder) Camera(config CameraConfig) *Builder {
	b.camera = config
	return b
}

// Material adds a material and returns its index
func (b *Builder) Material(m Material) int {
	b.materials = append(b.materials, m)
	return len(b.materials) - 1
}

// Sphere adds a sphere. The first construction error is reported by Build.
func (b *Builder) Sphere(center core.Vec3, radius float64, materialIndex int) *Builder {
	sphere, err := NewSphere(center, radius, materialIndex)
	if err != nil {
		if b.err == nil {
			b.err = fmt.Errorf("sphere %d: %w", len(b.spheres), err)
		}
		return b
	}
	b.spheres = append(b.spheres, sphere)
	return b
}

// Build validates and returns the scene
func (b *Builder) Build() (*Scene, error) {
	if b.err != nil {
		return nil, b.err
	}
	return New(b.spheres, b.materials, b.camera)
}
