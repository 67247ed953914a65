package cmd

import (
	"github.com/urfave/cli"

	"github.com/WilliamC07/graphics-final/log"
)

var logger = log.New("graphics")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
