package renderer

import (
	"math"

	"github.com/df07/sphere-pathtracer/pkg/core"
	"github.com/df07/sphere-pathtracer/pkg/scene"
)

// Camera generates rays for rendering. The viewport frame is derived from the
// look-from/look-at configuration and the current resolution and must be
// recomputed (via Resize, LookAt or MoveTo) whenever either changes.
type Camera struct {
	config        scene.CameraConfig
	width, height int

	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
}

// NewCamera creates a camera sized for width x height pixels. Zero-valued
// config fields fall back to the defaults of scene.DefaultCameraConfig.
func NewCamera(config scene.CameraConfig, width, height int) *Camera {
	defaults := scene.DefaultCameraConfig()
	if config.LookFrom == config.LookAt {
		config.LookFrom, config.LookAt = defaults.LookFrom, defaults.LookAt
	}
	if config.Up.NearZero() {
		config.Up = defaults.Up
	}
	if config.VFov <= 0 {
		config.VFov = defaults.VFov
	}
	if config.FocusDist <= 0 {
		config.FocusDist = defaults.FocusDist
	}
	if config.Validate() != nil {
		config.Up = fallbackUp(config.LookFrom.Subtract(config.LookAt))
	}

	c := &Camera{config: config}
	c.Resize(width, height)
	return c
}

// Resize recomputes the viewport for a new resolution. Non-positive sizes are ignored.
func (c *Camera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width, c.height = width, height
	c.update()
}

// LookAt re-aims the camera. A placement without a view frame is rejected
// and leaves the camera unchanged.
func (c *Camera) LookAt(from, at, up core.Vec3) error {
	config := c.config
	config.LookFrom, config.LookAt, config.Up = from, at, up
	if err := config.Validate(); err != nil {
		return err
	}
	c.config = config
	c.update()
	return nil
}

// fallbackUp returns the world axis least aligned with the view direction
func fallbackUp(view core.Vec3) core.Vec3 {
	view = view.Normalize()
	ax, ay, az := math.Abs(view.X), math.Abs(view.Y), math.Abs(view.Z)
	switch {
	case ay <= ax && ay <= az:
		return core.NewVec3(0, 1, 0)
	case az <= ax:
		return core.NewVec3(0, 0, -1)
	default:
		return core.NewVec3(1, 0, 0)
	}
}

// MoveTo moves the eye to (x, y) in its current z plane, keeping the view direction
func (c *Camera) MoveTo(x, y float64) {
	delta := core.NewVec3(x-c.config.LookFrom.X, y-c.config.LookFrom.Y, 0)
	c.config.LookFrom = c.config.LookFrom.Add(delta)
	c.config.LookAt = c.config.LookAt.Add(delta)
	c.update()
}

// Config returns the camera placement currently in effect
func (c *Camera) Config() scene.CameraConfig {
	return c.config
}

// Width returns the horizontal resolution the viewport was computed for
func (c *Camera) Width() int {
	return c.width
}

// Height returns the vertical resolution the viewport was computed for
func (c *Camera) Height() int {
	return c.height
}

// Origin returns the eye point
func (c *Camera) Origin() core.Vec3 {
	return c.origin
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// (0,0) is the bottom-left corner of the viewport.
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}

func (c *Camera) update() {
	aspectRatio := float64(c.width) / float64(c.height)

	theta := c.config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := aspectRatio * viewportHeight

	c.w = c.config.LookFrom.Subtract(c.config.LookAt).Normalize()
	c.u = c.config.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	focus := c.config.FocusDist
	c.origin = c.config.LookFrom
	c.horizontal = c.u.Multiply(focus * viewportWidth)
	c.vertical = c.v.Multiply(focus * viewportHeight)
	c.lowerLeftCorner = c.origin.Subtract(c.horizontal.Multiply(0.5)).
		Subtract(c.vertical.Multiply(0.5)).
		Subtract(c.w.Multiply(focus))
}
