package imageio

import "errors"

var (
	ErrPixelCount         = errors.New("imageio: pixel count does not match dimensions")
	ErrInvalidSize        = errors.New("imageio: width and height must be positive")
	ErrMissingBucket      = errors.New("imageio: upload bucket is not set")
	ErrMissingCredentials = errors.New("imageio: upload credentials are not set")
)
