package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/WilliamC07/graphics-final/cmd"
)

func main() {
	app := cli.NewApp()
	app.Name = "graphics-final"
	app.Usage = "render sphere scenes with a path tracer or a scanline previewer"
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
			Usage: "path trace a scene to an image",
			Description: `
Render a scene with the Monte Carlo path tracer. The scene is either one of
the built-in scenes (see the scenes command) or a .lisp scene script. Flags
left at zero keep whatever the scene itself specifies.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width in pixels (0 = scene setting)",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height in pixels (0 = scene setting)",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel (0 = scene setting)",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum ray bounces (0 = scene setting)",
				},
				cli.Float64Flag{
					Name:  "fov",
					Usage: "vertical field of view in degrees (0 = scene setting)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "sampler seed (0 = scene setting)",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render workers (0 = one per cpu)",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: 64,
					Usage: "square tile edge in pixels",
				},
				cli.StringFlag{
					Name:  "scene",
					Value: "default",
					Usage: "built-in scene name or path to a .lisp scene script",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.png",
					Usage: "output image file (.ppm for plain PPM, anything else for PNG)",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:  "raster",
			Usage: "rasterize a quick scanline preview of a scene",
			Description: `
Draw the scene with the z-buffered Phong rasterizer instead of the path
tracer. Previews are noiseless and take milliseconds, which makes them handy
for checking composition before a long render.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width in pixels (0 = scene setting)",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height in pixels (0 = scene setting)",
				},
				cli.Float64Flag{
					Name:  "fov",
					Usage: "vertical field of view in degrees (0 = scene setting)",
				},
				cli.StringFlag{
					Name:  "scene",
					Value: "default",
					Usage: "built-in scene name or path to a .lisp scene script",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "preview.png",
					Usage: "output image file (.ppm for plain PPM, anything else for PNG)",
				},
			},
			Action: cmd.RasterScene,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
