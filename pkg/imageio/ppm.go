package imageio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WritePPM writes packed pixels (bottom row first, as produced by the
// renderer) as a plain-text P3 PPM with rows from top to bottom. Alpha is
// dropped.
func WritePPM(w io.Writer, pixels []uint32, width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidSize
	}
	if len(pixels) != width*height {
		return fmt.Errorf("%w: %d pixels for %dx%d", ErrPixelCount, len(pixels), width, height)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height)

	for y := height - 1; y >= 0; y-- {
		for _, p := range pixels[y*width : (y+1)*width] {
			fmt.Fprintf(bw, "%d %d %d\n", uint8(p), uint8(p>>8), uint8(p>>16))
		}
	}

	return bw.Flush()
}

// SavePPM writes a PPM file, creating parent directories as needed
func SavePPM(path string, pixels []uint32, width, height int) error {
	return writeFile(path, func(w io.Writer) error {
		return WritePPM(w, pixels, width, height)
	})
}

func writeFile(path string, encode func(w io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := encode(file); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return file.Close()
}
