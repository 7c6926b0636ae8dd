package renderer

import (
	"fmt"
	"image"
	"time"

	"github.com/df07/sphere-pathtracer/pkg/integrator"
	"github.com/df07/sphere-pathtracer/pkg/log"
	"github.com/df07/sphere-pathtracer/pkg/scene"
)

// Options configures a Renderer
type Options struct {
	Workers    int                   // Number of parallel workers (0 = use CPU count)
	TileSize   int                   // Edge length of a tile in pixels (0 = DefaultTileSize)
	Seed       int64                 // Base seed for the per-tile samplers
	Integrator integrator.Integrator // Light transport (nil = path tracer)
}

// Renderer progressively refines an image: every call to Render adds one
// sample per pixel to the accumulation buffer and re-resolves the packed
// display pixels. Render, Resize and Close must not be called concurrently.
type Renderer struct {
	options Options
	logger  log.Logger

	width, height int
	tiles         []*Tile
	buffer        *AccumulationBuffer
	pixels        []uint32

	pool   *WorkerPool
	closed bool
}

// NewRenderer creates a renderer and starts its worker pool. The renderer has
// no resolution until Resize is called.
func NewRenderer(options Options, logger log.Logger) *Renderer {
	if options.Integrator == nil {
		options.Integrator = integrator.NewPathTracingIntegrator(integrator.DefaultMaxDepth)
	}
	if options.TileSize <= 0 {
		options.TileSize = DefaultTileSize
	}
	if logger == nil {
		logger = log.New("renderer")
	}

	pool := NewWorkerPool(options.Integrator, options.Workers)
	pool.Start()

	return &Renderer{
		options: options,
		logger:  logger,
		buffer:  NewAccumulationBuffer(0, 0),
		pool:    pool,
	}
}

// Resize sets the render target resolution and discards all accumulated
// frames. Calling it twice with the same size is the same as calling it once.
func (r *Renderer) Resize(width, height int) error {
	if r.closed {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidResolution, width, height)
	}

	r.width, r.height = width, height
	r.buffer.Resize(width, height)
	r.pixels = make([]uint32, width*height)
	r.tiles = NewTileGrid(width, height, r.options.TileSize, r.options.Seed)

	r.logger.Infof("resized to %dx%d (%d tiles of %dpx)", width, height, len(r.tiles), r.options.TileSize)
	return nil
}

// Render adds one frame (one sample per pixel) to the accumulation buffer and
// resolves the display pixels. The camera must have been sized to the same
// resolution as the renderer.
func (r *Renderer) Render(camera *Camera, s *scene.Scene) (RenderStats, error) {
	switch {
	case r.closed:
		return RenderStats{}, ErrClosed
	case r.width == 0 || r.height == 0:
		return RenderStats{}, ErrNotSized
	case s == nil:
		return RenderStats{}, ErrNilScene
	case camera.Width() != r.width || camera.Height() != r.height:
		return RenderStats{}, fmt.Errorf("%w: camera %dx%d, target %dx%d",
			ErrCameraSize, camera.Width(), camera.Height(), r.width, r.height)
	}

	start := time.Now()

	results := r.pool.RenderTiles(r.tiles, camera, s, r.buffer)

	// Only count the frame once every worker has finished with it
	r.buffer.CompleteFrame()
	r.buffer.Resolve(r.pixels)

	stats := newFrameStats(r.buffer.Frames(), r.width*r.height, r.pool.GetNumWorkers(), results, time.Since(start))
	r.logger.Debugf("frame %d rendered in %v (%d tiles, slowest %v)",
		stats.Frame, stats.Duration, stats.Tiles, stats.SlowestTile)

	return stats, nil
}

// Frames returns the number of frames accumulated since the last resize
func (r *Renderer) Frames() int {
	return r.buffer.Frames()
}

// Width returns the render target width
func (r *Renderer) Width() int {
	return r.width
}

// Height returns the render target height
func (r *Renderer) Height() int {
	return r.height
}

// Buffer exposes the accumulation buffer
func (r *Renderer) Buffer() *AccumulationBuffer {
	return r.buffer
}

// Pixels returns the packed display pixels, bottom row first. The slice is
// owned by the renderer and is replaced on Resize.
func (r *Renderer) Pixels() []uint32 {
	return r.pixels
}

// Image returns a copy of the display pixels as an RGBA image with the usual
// top-left origin.
func (r *Renderer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))

	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			img.SetRGBA(x, r.height-1-y, UnpackRGBA(r.pixels[y*r.width+x]))
		}
	}

	return img
}

// Close stops the worker pool. The renderer cannot be used afterwards.
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.pool.Stop()
}
