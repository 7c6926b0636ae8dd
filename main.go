package main

import (
	"os"

	"github.com/df07/sphere-pathtracer/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "sphere-pathtracer"
	app.Usage = "progressively render sphere scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene and save the image",
			Description: `
Render a built-in scene or a YAML scene file by accumulating one sample per
pixel per frame. Settings come from the config file (if any) and are
overridden by the flags below.

Upload credentials are read from S3_ACCESS_KEY and S3_SECRET_KEY, optionally
loaded from a .env file.`,
			ArgsUsage: "[scene name or scene.yaml]",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "config, c",
					Value: "render.yaml",
					Usage: "config file; missing files fall back to the defaults",
				},
				cli.StringFlag{
					Name:  "env",
					Value: ".env",
					Usage: "dotenv file with upload credentials",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 400,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 225,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "frames, spp",
					Value: 100,
					Usage: "frames to accumulate (one sample per pixel each)",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Value: 50,
					Usage: "maximum number of bounces per path",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "parallel workers (0 = number of CPU cores)",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: 32,
					Usage: "tile edge length in pixels",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 0,
					Usage: "random seed",
				},
				cli.StringFlag{
					Name:  "integrator",
					Value: "path",
					Usage: "light transport: path or preview",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output file (default output/<scene>/render_<timestamp>.<format>)",
				},
				cli.StringFlag{
					Name:  "format",
					Value: "ppm",
					Usage: "output format: ppm or png",
				},
				cli.IntFlag{
					Name:  "thumbnail",
					Value: 0,
					Usage: "also write a PNG thumbnail of this width (0 = disabled)",
				},
				cli.BoolFlag{
					Name:  "upload",
					Usage: "upload the results to the configured S3 bucket",
				},
				cli.DurationFlag{
					Name:  "timeout",
					Usage: "stop after the frame that is running when this much time has passed",
				},
			},
			Action: cmd.Render,
		},
		{
			Name:  "scenes",
			Usage: "list built-in scenes and YAML scene files",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "dir",
					Value: "scenes",
					Usage: "directory to search for YAML scene files",
				},
			},
			Action: cmd.ListScenes,
		},
		{
			Name:      "init-config",
			Usage:     "write a config file with the default settings",
			ArgsUsage: "[render.yaml]",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "force",
					Usage: "overwrite an existing file",
				},
			},
			Action: cmd.InitConfig,
		},
	}

	return app
}

func main() {
	newApp().Run(os.Args)
}
