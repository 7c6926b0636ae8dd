package renderer

import (
	"image"
	"time"

	"github.com/df07/sphere-pathtracer/pkg/core"
)

// RenderStats contains statistics about one rendered frame
type RenderStats struct {
	Frame          int           // Frames accumulated so far, including this one
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Samples taken during this frame
	AverageSamples float64       // Average accumulated samples per pixel
	Tiles          int           // Number of tiles rendered
	Workers        int           // Number of workers used
	Duration       time.Duration // Wall time of the frame
	SlowestTile    time.Duration // Longest single tile render
}

// SamplesPerSecond returns the frame's sampling throughput
func (rs RenderStats) SamplesPerSecond() float64 {
	if rs.Duration <= 0 {
		return 0
	}
	return float64(rs.TotalSamples) / rs.Duration.Seconds()
}

// newFrameStats summarizes the tile results of a finished frame
func newFrameStats(frame, pixels, workers int, results []TileResult, elapsed time.Duration) RenderStats {
	stats := RenderStats{
		Frame:          frame,
		TotalPixels:    pixels,
		AverageSamples: float64(frame),
		Tiles:          len(results),
		Workers:        workers,
		Duration:       elapsed,
	}

	for _, r := range results {
		stats.TotalSamples += r.Samples
		stats.SlowestTile = max(stats.SlowestTile, r.Duration)
	}

	return stats
}

// CalculateAverageLuminance returns the mean luminance of an image,
// with each channel taken as a [0,1] display value.
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			c := core.NewVec3(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff)
			total += c.Luminance()
		}
	}

	return total / float64(pixels)
}
