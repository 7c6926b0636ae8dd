package cmd

import (
	"bytes"
	"errors"
	"os"

	"github.com/df07/sphere-pathtracer/pkg/config"
	"github.com/df07/sphere-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List built-in scenes and YAML scene files.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx, "")

	scenes, err := scene.ListScenes(ctx.String("dir"))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	logger.Noticef("available scenes\n%s", sceneTable(scenes))
	return nil
}

func sceneTable(scenes []scene.SceneInfo) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Type", "Description", "File"})
	for _, info := range scenes {
		table.Append([]string{info.ID, info.Type, info.Description, info.FilePath})
	}
	table.Render()
	return buf.String()
}

// Write a config file populated with the default settings.
func InitConfig(ctx *cli.Context) error {
	setupLogging(ctx, "")

	path := ctx.Args().First()
	if path == "" {
		path = "render.yaml"
	}

	if err := writeDefaultConfig(path, ctx.Bool("force")); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	logger.Noticef("wrote default config to %s", path)
	return nil
}

func writeDefaultConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.New(path + " already exists (use --force to overwrite)")
	}
	return config.Save(config.Default(), path)
}
