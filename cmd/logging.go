package cmd

import (
	"github.com/df07/sphere-pathtracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("pathtracer")

// setupLogging applies the config file level first so -v/-vv can raise it
func setupLogging(ctx *cli.Context, configLevel string) {
	if configLevel != "" {
		log.SetLevel(log.ParseLevel(configLevel))
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
