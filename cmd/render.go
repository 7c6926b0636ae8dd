package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/sphere-pathtracer/pkg/config"
	"github.com/df07/sphere-pathtracer/pkg/imageio"
	"github.com/df07/sphere-pathtracer/pkg/integrator"
	"github.com/df07/sphere-pathtracer/pkg/log"
	"github.com/df07/sphere-pathtracer/pkg/renderer"
	"github.com/df07/sphere-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

var errNoFrames = errors.New("no frames were rendered")

// renderResult is a finished (possibly time-limited) render
type renderResult struct {
	SceneName string
	Width     int
	Height    int
	Pixels    []uint32 // Packed, bottom row first
	Image     *image.RGBA
	Frames    []renderer.RenderStats // Frames reported while rendering
	Samples   int                    // Samples per pixel in the image
	Workers   int
	Elapsed   time.Duration
	Host      hostInfo
}

// Render a scene progressively and write the result to disk.
func Render(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	setupLogging(ctx, cfg.LogLevel)

	runCtx := context.Background()
	if timeout := ctx.Duration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(runCtx, timeout)
		defer cancel()
	}

	result, err := renderScene(runCtx, cfg)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	displayRenderStats(result)

	// Outputs are written even when the time limit cut the render short
	files, err := writeOutputs(context.Background(), cfg, result, time.Now())
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	for _, f := range files {
		logger.Noticef("saved %s", f)
	}

	return nil
}

// loadConfig reads the config file, applies command line overrides and
// environment credentials, then validates the result.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return nil, err
	}

	applyFlags(ctx, cfg)
	if ctx.NArg() > 0 {
		cfg.Render.Scene = ctx.Args().First()
	}

	if err := cfg.LoadEnv(ctx.String("env")); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyFlags(ctx *cli.Context, cfg *config.Config) {
	if ctx.IsSet("width") {
		cfg.Render.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Render.Height = ctx.Int("height")
	}
	if ctx.IsSet("frames") {
		cfg.Render.Frames = ctx.Int("frames")
	}
	if ctx.IsSet("max-depth") {
		cfg.Render.MaxDepth = ctx.Int("max-depth")
	}
	if ctx.IsSet("workers") {
		cfg.Render.Workers = ctx.Int("workers")
	}
	if ctx.IsSet("tile-size") {
		cfg.Render.TileSize = ctx.Int("tile-size")
	}
	if ctx.IsSet("seed") {
		cfg.Render.Seed = ctx.Int64("seed")
	}
	if ctx.IsSet("integrator") {
		cfg.Render.Integrator = ctx.String("integrator")
	}
	if ctx.IsSet("out") {
		cfg.Output.Path = ctx.String("out")
	}
	if ctx.IsSet("format") {
		cfg.Output.Format = ctx.String("format")
	}
	if ctx.IsSet("thumbnail") {
		cfg.Output.ThumbnailWidth = ctx.Int("thumbnail")
	}
	if ctx.IsSet("upload") {
		cfg.Upload.Enabled = ctx.Bool("upload")
	}
}

// renderScene accumulates the configured number of frames, stopping early
// (but keeping what was rendered) when ctx hits its deadline.
func renderScene(ctx context.Context, cfg *config.Config) (*renderResult, error) {
	sc, err := scene.Resolve(cfg.Render.Scene)
	if err != nil {
		return nil, err
	}
	logger.Noticef("rendering scene %q at %dx%d, %d frames", cfg.Render.Scene, cfg.Render.Width, cfg.Render.Height, cfg.Render.Frames)

	host := getHostInfo()
	if err := checkMemory(host, cfg.Render.Width, cfg.Render.Height); err != nil {
		return nil, err
	}

	workers := cfg.Render.Workers
	if workers == 0 {
		workers = host.LogicalCores
	}

	integ, ok := integrator.New(cfg.Render.Integrator, cfg.Render.MaxDepth)
	if !ok {
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownIntegrator, cfg.Render.Integrator)
	}

	r := renderer.NewRenderer(renderer.Options{
		Workers:    workers,
		TileSize:   cfg.Render.TileSize,
		Seed:       cfg.Render.Seed,
		Integrator: integ,
	}, log.New("renderer"))
	defer r.Close()

	if err := r.Resize(cfg.Render.Width, cfg.Render.Height); err != nil {
		return nil, err
	}
	camera := renderer.NewCamera(sc.Camera, cfg.Render.Width, cfg.Render.Height)

	start := time.Now()
	result := &renderResult{
		SceneName: sceneName(cfg.Render.Scene),
		Width:     cfg.Render.Width,
		Height:    cfg.Render.Height,
		Workers:   workers,
		Host:      host,
	}

	passChan, errChan := r.RenderProgressive(ctx, camera, sc, renderer.ProgressiveOptions{Frames: cfg.Render.Frames})
	for pass := range passChan {
		logger.Infof("frame %d/%d completed in %v", pass.Frame, cfg.Render.Frames, pass.Stats.Duration)
		result.Frames = append(result.Frames, pass.Stats)
	}

	if err := <-errChan; err != nil {
		if !errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		logger.Warningf("time limit reached after %d of %d frames", r.Frames(), cfg.Render.Frames)
	}
	if r.Frames() == 0 {
		return nil, errNoFrames
	}

	result.Elapsed = time.Since(start)
	// A frame finished as the deadline hit is in the image but may be unreported
	result.Samples = r.Frames()
	result.Pixels = append([]uint32(nil), r.Pixels()...)
	result.Image = r.Image()

	return result, nil
}

// sceneName turns a built-in name or scene file path into an output directory name
func sceneName(nameOrPath string) string {
	base := filepath.Base(nameOrPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// outputPath returns the configured output path or
// output/<scene>/render_<timestamp>.<format>
func outputPath(cfg *config.Config, sceneDir string, now time.Time) string {
	if cfg.Output.Path != "" {
		return cfg.Output.Path
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneDir, fmt.Sprintf("render_%s.%s", timestamp, cfg.Output.Format))
}

// writeOutputs saves the image, the optional thumbnail, and uploads them if
// enabled. Returns the local files written.
func writeOutputs(ctx context.Context, cfg *config.Config, result *renderResult, now time.Time) ([]string, error) {
	path := outputPath(cfg, result.SceneName, now)

	var err error
	switch cfg.Output.Format {
	case "png":
		err = imageio.SavePNG(path, result.Image)
	default:
		err = imageio.SavePPM(path, result.Pixels, result.Width, result.Height)
	}
	if err != nil {
		return nil, err
	}
	files := []string{path}

	if cfg.Output.ThumbnailWidth > 0 {
		thumbPath := strings.TrimSuffix(path, filepath.Ext(path)) + "_thumb.png"
		if err := imageio.SaveThumbnail(thumbPath, result.Image, cfg.Output.ThumbnailWidth); err != nil {
			return files, err
		}
		files = append(files, thumbPath)
	}

	if cfg.Upload.Enabled {
		uploader, err := imageio.NewS3Uploader(imageio.S3Config{
			Bucket:    cfg.Upload.Bucket,
			Region:    cfg.Upload.Region,
			Endpoint:  cfg.Upload.Endpoint,
			Prefix:    filepath.ToSlash(filepath.Join(cfg.Upload.Prefix, result.SceneName)),
			AccessKey: cfg.Upload.AccessKey,
			SecretKey: cfg.Upload.SecretKey,
		})
		if err != nil {
			return files, err
		}

		for _, f := range files {
			key, err := uploader.Upload(ctx, f, filepath.Base(f))
			if err != nil {
				return files, err
			}
			logger.Noticef("uploaded %s to s3://%s/%s", f, cfg.Upload.Bucket, key)
		}
	}

	return files, nil
}

func displayRenderStats(result *renderResult) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frame", "Render time", "Slowest tile", "Samples/sec"})

	var total time.Duration
	var samples int
	for _, stat := range result.Frames {
		table.Append([]string{
			fmt.Sprintf("%d", stat.Frame),
			stat.Duration.Round(time.Microsecond).String(),
			stat.SlowestTile.Round(time.Microsecond).String(),
			fmt.Sprintf("%.0f", stat.SamplesPerSecond()),
		})
		total += stat.Duration
		samples += stat.TotalSamples
	}

	throughput := 0.0
	if total > 0 {
		throughput = float64(samples) / total.Seconds()
	}
	table.SetFooter([]string{
		"TOTAL",
		total.Round(time.Millisecond).String(),
		"",
		fmt.Sprintf("%.0f", throughput),
	})

	table.Render()
	logger.Infof("frame statistics\n%s", buf.String())
	logger.Noticef("render summary\n%s", renderSummary(result))
}

func renderSummary(result *renderResult) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.Append([]string{"Scene", result.SceneName})
	table.Append([]string{"Resolution", fmt.Sprintf("%dx%d", result.Width, result.Height)})
	table.Append([]string{"Samples per pixel", fmt.Sprintf("%d", result.Samples)})
	table.Append([]string{"Workers", fmt.Sprintf("%d of %d cores", result.Workers, result.Host.LogicalCores)})
	table.Append([]string{"CPU", result.Host.CPUModel})
	table.Append([]string{"Memory", fmt.Sprintf("%s free of %s", formatBytes(result.Host.FreeMemory), formatBytes(result.Host.TotalMemory))})
	table.Append([]string{"Elapsed", result.Elapsed.Round(time.Millisecond).String()})
	if result.Image != nil {
		table.Append([]string{"Mean luminance", fmt.Sprintf("%.3f", renderer.CalculateAverageLuminance(result.Image))})
	}

	table.Render()
	return buf.String()
}
