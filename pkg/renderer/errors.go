package renderer

import "errors"

var (
	ErrInvalidResolution = errors.New("renderer: width and height must be positive")
	ErrNotSized          = errors.New("renderer: render called before resize")
	ErrClosed            = errors.New("renderer: renderer is closed")
	ErrNilScene          = errors.New("renderer: nil scene")
	ErrCameraSize        = errors.New("renderer: camera resolution does not match the render target")
)
