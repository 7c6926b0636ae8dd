package renderer

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/df07/sphere-pathtracer/pkg/core"
)

func randomFrame(random *rand.Rand, n int) []core.Vec3 {
	frame := make([]core.Vec3, n)
	for i := range frame {
		frame[i] = core.NewVec3(random.Float64()*2, random.Float64(), random.Float64()*0.5)
	}
	return frame
}

func addFrame(ab *AccumulationBuffer, width int, frame []core.Vec3) {
	for i, c := range frame {
		ab.Add(i%width, i/width, c)
	}
	ab.CompleteFrame()
}

func TestAccumulationOrderIndependent(t *testing.T) {
	const width, height = 4, 3
	random := rand.New(rand.NewSource(42))
	a := randomFrame(random, width*height)
	b := randomFrame(random, width*height)

	ab := NewAccumulationBuffer(width, height)
	addFrame(ab, width, a)
	addFrame(ab, width, b)

	ba := NewAccumulationBuffer(width, height)
	addFrame(ba, width, b)
	addFrame(ba, width, a)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ab.Average(x, y) != ba.Average(x, y) {
				t.Errorf("(%d,%d): %v != %v", x, y, ab.Average(x, y), ba.Average(x, y))
			}
		}
	}
}

func TestAccumulationAverage(t *testing.T) {
	ab := NewAccumulationBuffer(2, 1)

	if got := ab.Average(0, 0); got != (core.Vec3{}) {
		t.Errorf("Expected black before any frame, got %v", got)
	}

	ab.Add(1, 0, core.NewVec3(1, 2, 3))
	ab.CompleteFrame()
	ab.Add(1, 0, core.NewVec3(3, 2, 1))
	ab.CompleteFrame()

	if ab.Frames() != 2 {
		t.Errorf("Expected 2 frames, got %d", ab.Frames())
	}
	if got := ab.Average(1, 0); got != core.NewVec3(2, 2, 2) {
		t.Errorf("Expected average (2,2,2), got %v", got)
	}
	if got := ab.Sum(1, 0); got != core.NewVec3(4, 4, 4) {
		t.Errorf("Expected sum (4,4,4), got %v", got)
	}
}

func TestAccumulationResizeResets(t *testing.T) {
	ab := NewAccumulationBuffer(2, 2)
	ab.Add(1, 1, core.NewVec3(1, 1, 1))
	ab.CompleteFrame()

	ab.Resize(3, 1)
	if ab.Frames() != 0 {
		t.Errorf("Expected frame count reset, got %d", ab.Frames())
	}
	for x := 0; x < 3; x++ {
		if got := ab.Sum(x, 0); got != (core.Vec3{}) {
			t.Errorf("Expected zeroed sum at %d, got %v", x, got)
		}
	}
}

func TestResolvePacksToneMappedPixels(t *testing.T) {
	ab := NewAccumulationBuffer(2, 1)
	ab.Add(0, 0, core.NewVec3(1, 0.25, 0))
	ab.Add(1, 0, core.NewVec3(4, -1, 0))
	ab.CompleteFrame()

	dst := make([]uint32, 2)
	ab.Resolve(dst)

	// sqrt(0.25) = 0.5 -> 127
	if want := uint32(255) | 127<<8 | 0<<16 | 255<<24; dst[0] != want {
		t.Errorf("Expected %#08x, got %#08x", want, dst[0])
	}
	// Out of range values clamp before gamma
	if want := uint32(255) | 255<<24; dst[1] != want {
		t.Errorf("Expected %#08x, got %#08x", want, dst[1])
	}
}

func TestResolveWithoutFramesIsOpaqueBlack(t *testing.T) {
	ab := NewAccumulationBuffer(2, 2)
	dst := make([]uint32, 4)
	ab.Resolve(dst)

	for i, p := range dst {
		if p != 0xff000000 {
			t.Errorf("pixel %d: expected opaque black, got %#08x", i, p)
		}
	}
}

func TestToneMap(t *testing.T) {
	tests := []struct {
		name     string
		radiance core.Vec3
		expected color.RGBA
	}{
		{"black", core.NewVec3(0, 0, 0), color.RGBA{0, 0, 0, 255}},
		{"white", core.NewVec3(1, 1, 1), color.RGBA{255, 255, 255, 255}},
		{"quarter is half after gamma", core.NewVec3(0.25, 0.25, 0.25), color.RGBA{127, 127, 127, 255}},
		{"clamped", core.NewVec3(7, -3, 0.01), color.RGBA{255, 0, 25, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToneMap(tt.radiance); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPackRGBA(t *testing.T) {
	c := color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}

	if got := PackRGBA(c); got != 0xff332211 {
		t.Errorf("Expected 0xff332211, got %#08x", got)
	}
	if got := UnpackRGBA(PackRGBA(c)); got != c {
		t.Errorf("Expected %v back, got %v", c, got)
	}
}
