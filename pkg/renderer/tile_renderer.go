package renderer

import (
	"image"

	"github.com/df07/sphere-pathtracer/pkg/core"
	"github.com/df07/sphere-pathtracer/pkg/integrator"
	"github.com/df07/sphere-pathtracer/pkg/scene"
)

// TileRenderer renders individual tiles using an integrator
type TileRenderer struct {
	integrator integrator.Integrator
}

// NewTileRenderer creates a new tile renderer with the given integrator
func NewTileRenderer(integratorInst integrator.Integrator) *TileRenderer {
	return &TileRenderer{integrator: integratorInst}
}

// RenderTileBounds takes one jittered sample for every pixel within bounds and
// adds it to the accumulation buffer. Returns the number of samples taken.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, camera *Camera, s *scene.Scene, buffer *AccumulationBuffer, sampler core.Sampler) int {
	width := float64(camera.Width())
	height := float64(camera.Height())

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			// Convert pixel coordinates to normalized coordinates with jitter
			u := (float64(i) + sampler.Get1D()) / width
			v := (float64(j) + sampler.Get1D()) / height

			ray := camera.GetRay(u, v)
			buffer.Add(i, j, tr.integrator.RayColor(ray, s, sampler))
		}
	}

	return bounds.Dx() * bounds.Dy()
}
