package renderer

import (
	"context"
	"image"

	"github.com/df07/sphere-pathtracer/pkg/scene"
)

// PassResult contains the result of a single frame
type PassResult struct {
	Frame  int
	Image  *image.RGBA // Snapshot of the display pixels after this frame (top-left origin)
	Stats  RenderStats
	IsLast bool
}

// ProgressiveOptions configures a progressive render
type ProgressiveOptions struct {
	Frames    int  // Number of frames to accumulate (<= 0 = until cancelled)
	Snapshots bool // Whether each PassResult carries an image snapshot
}

// RenderProgressive renders frames on a background goroutine and reports each
// one on the returned channel. Cancellation is checked between frames, so a
// cancelled render always leaves a fully accumulated buffer behind. The error
// channel receives at most one error (ctx.Err() when cancelled).
func (r *Renderer) RenderProgressive(ctx context.Context, camera *Camera, s *scene.Scene, options ProgressiveOptions) (<-chan PassResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(passChan)
		defer close(errChan)

		r.logger.Debugf("starting progressive render of %d frames", options.Frames)

		for frame := 1; options.Frames <= 0 || frame <= options.Frames; frame++ {
			// Check for cancellation before starting this frame
			select {
			case <-ctx.Done():
				r.logger.Infof("render cancelled after %d frames", r.Frames())
				errChan <- ctx.Err()
				return
			default:
			}

			stats, err := r.Render(camera, s)
			if err != nil {
				errChan <- err
				return
			}

			result := PassResult{
				Frame:  stats.Frame,
				Stats:  stats,
				IsLast: frame == options.Frames,
			}
			if options.Snapshots {
				result.Image = r.Image()
			}

			select {
			case passChan <- result:
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}
		}
	}()

	return passChan, errChan
}
