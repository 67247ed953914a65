package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/WilliamC07/graphics-final/pkg/canvas"
	"github.com/WilliamC07/graphics-final/pkg/renderer"
	"github.com/WilliamC07/graphics-final/pkg/scene"
	"github.com/WilliamC07/graphics-final/pkg/scenescript"
)

// cameraOverrides collects the camera flags the render and raster commands
// share. Zero values mean the scene's own settings win.
func cameraOverrides(ctx *cli.Context) renderer.CameraConfig {
	return renderer.CameraConfig{
		Width:  ctx.Int("width"),
		Height: ctx.Int("height"),
		VFov:   ctx.Float64("fov"),
	}
}

// loadScene resolves a scene argument: the name of a built-in scene, or a
// path to a .lisp scene script.
func loadScene(name string, cameraOverride renderer.CameraConfig) (*scene.Scene, error) {
	if name == "" {
		return nil, errors.New("no scene specified")
	}

	if strings.HasSuffix(name, ".lisp") {
		sc, err := scenescript.NewEngine().EvaluateFile(name)
		if err != nil {
			return nil, err
		}
		sc.CameraConfig = renderer.MergeCameraConfig(sc.CameraConfig, cameraOverride)
		return sc, nil
	}

	return scene.NewBuiltinScene(name, cameraOverride)
}

// writeImage persists a rendered frame, picking the format from the file
// extension: .ppm gets plain PPM, everything else gets PNG.
func writeImage(frame *canvas.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if strings.HasSuffix(strings.ToLower(path), ".ppm") {
		err = frame.WritePPM(f)
	} else {
		err = frame.WritePNG(f)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	logger.Noticef("wrote %s", path)
	return nil
}
