package cmd

import (
	"github.com/urfave/cli"

	"github.com/WilliamC07/graphics-final/pkg/canvas"
	"github.com/WilliamC07/graphics-final/pkg/raster"
)

// RasterScene draws a scanline preview of a scene. It reuses the scene's
// camera but swaps the path tracer for the z-buffered Phong rasterizer, so
// it finishes in a fraction of the time.
func RasterScene(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := loadScene(ctx.String("scene"), cameraOverrides(ctx))
	if err != nil {
		return err
	}

	frame := canvas.NewCanvas(sc.CameraConfig.Width, sc.CameraConfig.Height)

	r := raster.NewRasterizer(raster.Config{Camera: sc.CameraConfig})
	if err := r.Render(sc.Spheres, sc.Lights, frame); err != nil {
		return err
	}

	return writeImage(frame, ctx.String("out"))
}
