package integrator

import (
	"math"

	"github.com/df07/sphere-pathtracer/pkg/core"
	"github.com/df07/sphere-pathtracer/pkg/scene"
)

const (
	// DefaultMaxDepth is the bounce budget for the path tracer
	DefaultMaxDepth = 50

	// DefaultPreviewBounces is the bounce budget for the preview integrator
	DefaultPreviewBounces = 5

	// TMin ignores intersections closer than this along a ray
	TMin = 0.001
)

// TMax is the far limit for intersections
var TMax = math.Inf(1)

var (
	skyBottom = core.NewVec3(1.0, 1.0, 1.0)
	skyTop    = core.NewVec3(0.5, 0.7, 1.0)
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the linear radiance arriving along ray
	RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Vec3
}

// New returns the integrator registered under name ("path" or "preview")
func New(name string, maxDepth int) (Integrator, bool) {
	switch name {
	case "path", "":
		return NewPathTracingIntegrator(maxDepth), true
	case "preview":
		return NewPreviewIntegrator(min(maxDepth, DefaultPreviewBounces)), true
	default:
		return nil, false
	}
}

// SkyColor blends from white (looking straight down) to light blue (straight up)
func SkyColor(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return skyBottom.Lerp(skyTop, t)
}
