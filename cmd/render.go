package cmd

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/WilliamC07/graphics-final/pkg/canvas"
	"github.com/WilliamC07/graphics-final/pkg/renderer"
)

// RenderScene path traces a scene and writes the result to an image file.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := loadScene(ctx.String("scene"), cameraOverrides(ctx))
	if err != nil {
		return err
	}

	config := renderer.Config{
		Camera: sc.CameraConfig,
		Sampling: renderer.MergeSamplingConfig(sc.SamplingConfig, renderer.SamplingConfig{
			SamplesPerPixel: ctx.Int("spp"),
			MaxDepth:        ctx.Int("depth"),
			Seed:            ctx.Int64("seed"),
		}),
		TileSize:   ctx.Int("tile-size"),
		NumWorkers: ctx.Int("workers"),
	}

	frame := canvas.NewCanvas(config.Camera.Width, config.Camera.Height)

	stats, err := renderer.NewRaytracer(sc, config).Render(frame)
	if err != nil {
		return err
	}
	displayRenderStats(stats)

	return writeImage(frame, ctx.String("out"))
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Tiles", "Pixels", "Samples", "Busy time"})

	totalTiles := 0
	for _, ws := range stats.Workers {
		totalTiles += ws.Tiles
		table.Append([]string{
			fmt.Sprintf("%d", ws.WorkerID),
			fmt.Sprintf("%d", ws.Tiles),
			fmt.Sprintf("%d", ws.Pixels),
			fmt.Sprintf("%d", ws.Samples),
			fmt.Sprintf("%v", ws.BusyTime.Round(time.Millisecond)),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", totalTiles),
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%v", stats.Elapsed.Round(time.Millisecond)),
	})

	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
	logger.Noticef("traced %.2fM primary rays/sec", stats.SamplesPerSecond()/1e6)
}
