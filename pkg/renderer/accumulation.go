package renderer

import (
	"image/color"
	"math"

	"github.com/df07/sphere-pathtracer/pkg/core"
)

// AccumulationBuffer holds the running per-pixel radiance sums of all frames
// rendered since the last resize. Pixel (x, y) lives at index y*width+x with
// y = 0 being the bottom row.
type AccumulationBuffer struct {
	width, height int
	sums          []core.Vec3
	frames        int
}

// NewAccumulationBuffer creates a zeroed buffer for width x height pixels
func NewAccumulationBuffer(width, height int) *AccumulationBuffer {
	ab := &AccumulationBuffer{}
	ab.Resize(width, height)
	return ab
}

// Resize reallocates the buffer and resets the frame count
func (ab *AccumulationBuffer) Resize(width, height int) {
	ab.width, ab.height = max(width, 0), max(height, 0)
	ab.sums = make([]core.Vec3, ab.width*ab.height)
	ab.frames = 0
}

// Add accumulates a radiance sample into pixel (x, y).
// Concurrent callers must write to disjoint pixels.
func (ab *AccumulationBuffer) Add(x, y int, radiance core.Vec3) {
	i := y*ab.width + x
	ab.sums[i] = ab.sums[i].Add(radiance)
}

// CompleteFrame marks one more frame as fully accumulated
func (ab *AccumulationBuffer) CompleteFrame() {
	ab.frames++
}

// Frames returns the number of completed frames
func (ab *AccumulationBuffer) Frames() int {
	return ab.frames
}

// Sum returns the raw accumulated radiance of pixel (x, y)
func (ab *AccumulationBuffer) Sum(x, y int) core.Vec3 {
	return ab.sums[y*ab.width+x]
}

// Average returns the mean radiance of pixel (x, y) over all completed frames
func (ab *AccumulationBuffer) Average(x, y int) core.Vec3 {
	if ab.frames == 0 {
		return core.Vec3{}
	}
	return ab.Sum(x, y).Multiply(1.0 / float64(ab.frames))
}

// Resolve tone maps every pixel average into dst as packed RGBA
func (ab *AccumulationBuffer) Resolve(dst []uint32) {
	if ab.frames == 0 {
		for i := range dst {
			dst[i] = PackRGBA(color.RGBA{A: 255})
		}
		return
	}

	scale := 1.0 / float64(ab.frames)
	for i, sum := range ab.sums {
		dst[i] = PackRGBA(ToneMap(sum.Multiply(scale)))
	}
}

// ToneMap converts linear radiance to display color: clamp to [0,1], then a
// square-root gamma.
func ToneMap(radiance core.Vec3) color.RGBA {
	c := radiance.Clamp(0.0, 1.0).Sqrt()

	return color.RGBA{
		R: toByte(c.X),
		G: toByte(c.Y),
		B: toByte(c.Z),
		A: 255,
	}
}

func toByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Min(255.999*v, 255))
}

// PackRGBA packs a color as r | g<<8 | b<<16 | a<<24
func PackRGBA(c color.RGBA) uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}

// UnpackRGBA is the inverse of PackRGBA
func UnpackRGBA(p uint32) color.RGBA {
	return color.RGBA{
		R: uint8(p),
		G: uint8(p >> 8),
		B: uint8(p >> 16),
		A: uint8(p >> 24),
	}
}
