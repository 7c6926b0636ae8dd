package config

import "errors"

var (
	ErrInvalidSize       = errors.New("config: width and height must be positive")
	ErrInvalidFrames     = errors.New("config: frames must be positive")
	ErrInvalidDepth      = errors.New("config: max_depth must be positive")
	ErrInvalidWorkers    = errors.New("config: workers must not be negative")
	ErrInvalidTileSize   = errors.New("config: tile_size must not be negative")
	ErrUnknownIntegrator = errors.New("config: unknown integrator")
	ErrUnknownFormat     = errors.New("config: unknown output format")
	ErrMissingBucket     = errors.New("config: upload enabled without a bucket")
)
