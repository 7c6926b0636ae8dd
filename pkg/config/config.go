package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// DefaultRegion is the upload region used when neither the config file nor
// S3_REGION names one
const DefaultRegion = "us-east-1"

// Config represents the main configuration
type Config struct {
	LogLevel string       `yaml:"log_level"` // debug, info, notice, warning, error
	Render   RenderConfig `yaml:"render"`
	Output   OutputConfig `yaml:"output"`
	Upload   UploadConfig `yaml:"upload"`
}

// RenderConfig contains renderer configuration
type RenderConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Frames     int    `yaml:"frames"` // Samples per pixel, one per frame
	MaxDepth   int    `yaml:"max_depth"`
	Workers    int    `yaml:"workers"` // 0 = CPU count
	TileSize   int    `yaml:"tile_size"`
	Seed       int64  `yaml:"seed"`
	Integrator string `yaml:"integrator"` // path, preview
	Scene      string `yaml:"scene"`      // Built-in scene name or YAML scene file
}

// OutputConfig contains output file configuration
type OutputConfig struct {
	Path           string `yaml:"path"`   // Empty = output/<scene>/render_<timestamp>.<format>
	Format         string `yaml:"format"` // ppm, png
	ThumbnailWidth int    `yaml:"thumbnail_width"`
}

// UploadConfig contains S3 upload configuration. Credentials never come from
// the config file, only from the environment (see LoadEnv).
type UploadConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Bucket   string `yaml:"bucket"`
	Region   string `yaml:"region"` // Empty = S3_REGION, then DefaultRegion
	Endpoint string `yaml:"endpoint"`
	Prefix   string `yaml:"prefix"`

	AccessKey string `yaml:"-"`
	SecretKey string `yaml:"-"`
}

// Default creates a default configuration
func Default() *Config {
	return &Config{
		LogLevel: "notice",
		Render: RenderConfig{
			Width:      400,
			Height:     225, // 16:9 aspect ratio
			Frames:     100,
			MaxDepth:   50,
			Workers:    0,
			TileSize:   32,
			Seed:       0,
			Integrator: "path",
			Scene:      "default",
		},
		Output: OutputConfig{
			Path:           "",
			Format:         "ppm",
			ThumbnailWidth: 0,
		},
		Upload: UploadConfig{
			Enabled: false,
		},
	}
}

// Load loads the configuration from a file. A missing file yields the defaults.
func Load(filePath string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(filePath)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML on top of the defaults
func Parse(data []byte) (*Config, error) {
	config := Default()

	if err := yaml.UnmarshalStrict(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return config, nil
}

// Save saves the configuration to a file
func Save(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// LoadEnv reads upload settings from the environment, first loading envFile
// (typically ".env") if it exists. Values already set in the config file
// take precedence over S3_BUCKET, S3_REGION and S3_ENDPOINT.
func (c *Config) LoadEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("error loading %s: %w", envFile, err)
		}
	}

	c.Upload.AccessKey = os.Getenv("S3_ACCESS_KEY")
	c.Upload.SecretKey = os.Getenv("S3_SECRET_KEY")

	if c.Upload.Bucket == "" {
		c.Upload.Bucket = os.Getenv("S3_BUCKET")
	}
	if c.Upload.Region == "" {
		c.Upload.Region = os.Getenv("S3_REGION")
	}
	if c.Upload.Region == "" {
		c.Upload.Region = DefaultRegion
	}
	if c.Upload.Endpoint == "" {
		c.Upload.Endpoint = os.Getenv("S3_ENDPOINT")
	}

	return nil
}

// Validate checks the configuration for values the renderer cannot use
func (c *Config) Validate() error {
	r := c.Render

	switch {
	case r.Width <= 0 || r.Height <= 0:
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, r.Width, r.Height)
	case r.Frames <= 0:
		return fmt.Errorf("%w: got %d", ErrInvalidFrames, r.Frames)
	case r.MaxDepth <= 0:
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, r.MaxDepth)
	case r.Workers < 0:
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, r.Workers)
	case r.TileSize < 0:
		return fmt.Errorf("%w: got %d", ErrInvalidTileSize, r.TileSize)
	}

	switch r.Integrator {
	case "path", "preview":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownIntegrator, r.Integrator)
	}

	switch c.Output.Format {
	case "ppm", "png":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Output.Format)
	}

	if c.Upload.Enabled && c.Upload.Bucket == "" {
		return ErrMissingBucket
	}

	return nil
}
