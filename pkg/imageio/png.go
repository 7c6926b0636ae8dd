package imageio

import (
	"image"
	"image/png"
	"io"

	"github.com/nfnt/resize"
)

// SavePNG writes img as a PNG file, creating parent directories as needed
func SavePNG(path string, img image.Image) error {
	return writeFile(path, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}

// Thumbnail downscales img to the given width, preserving the aspect ratio.
// Images already narrower than width are returned unchanged.
func Thumbnail(img image.Image, width int) image.Image {
	if width <= 0 || img.Bounds().Dx() <= width {
		return img
	}
	return resize.Resize(uint(width), 0, img, resize.Bilinear)
}

// SaveThumbnail writes a downscaled PNG preview of img
func SaveThumbnail(path string, img image.Image, width int) error {
	return SavePNG(path, Thumbnail(img, width))
}
