package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/WilliamC07/graphics-final/pkg/canvas"
	"github.com/WilliamC07/graphics-final/pkg/renderer"
)

func TestLoadScene(t *testing.T) {
	scriptPath := filepath.Join(t.TempDir(), "one-sphere.lisp")
	script := `(sphere :center (vec3 0 0 -2) :radius 0.5 :material (lambertian))`
	if err := os.WriteFile(scriptPath, []byte(script), 0o644); err != nil {
		t.Fatalf("writing script: %v", err)
	}

	tests := []struct {
		name        string
		scene       string
		expectError bool
		primitives  int
	}{
		{"default scene", "default", false, 5},
		{"gray sphere scene", "gray-sphere", false, 1},
		{"glass trio scene", "glass-trio", false, 7},
		{"scene script", scriptPath, false, 1},
		{"unknown scene", "nonexistent", true, 0},
		{"missing script", "no-such-file.lisp", true, 0},
		{"empty name", "", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := loadScene(tt.scene, renderer.CameraConfig{})

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene %q, but got none", tt.scene)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for scene %q: %v", tt.scene, err)
			}
			if sc.GetPrimitiveCount() != tt.primitives {
				t.Errorf("Expected %d primitives, got %d", tt.primitives, sc.GetPrimitiveCount())
			}
			if sc.CameraConfig.Width <= 0 || sc.CameraConfig.Height <= 0 {
				t.Errorf("Scene camera dimensions should be positive, got %dx%d",
					sc.CameraConfig.Width, sc.CameraConfig.Height)
			}
		})
	}
}

func TestLoadSceneCameraOverrides(t *testing.T) {
	sc, err := loadScene("gray-sphere", renderer.CameraConfig{Width: 64, Height: 48})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sc.CameraConfig.Width != 64 || sc.CameraConfig.Height != 48 {
		t.Errorf("Expected 64x48 override, got %dx%d", sc.CameraConfig.Width, sc.CameraConfig.Height)
	}
	if sc.CameraConfig.VFov != renderer.DefaultVFov {
		t.Errorf("Expected fov to keep the scene default %v, got %v", renderer.DefaultVFov, sc.CameraConfig.VFov)
	}

	scriptPath := filepath.Join(t.TempDir(), "scripted.lisp")
	script := `
(camera :fov 60)
(sphere :center (vec3 0 0 -2) :radius 0.5 :material (metal))
`
	if err := os.WriteFile(scriptPath, []byte(script), 0o644); err != nil {
		t.Fatalf("writing script: %v", err)
	}

	sc, err = loadScene(scriptPath, renderer.CameraConfig{Width: 80, Height: 60})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sc.CameraConfig.Width != 80 || sc.CameraConfig.Height != 60 {
		t.Errorf("Expected 80x60 override, got %dx%d", sc.CameraConfig.Width, sc.CameraConfig.Height)
	}
	if sc.CameraConfig.VFov != 60 {
		t.Errorf("Expected script fov 60 to survive, got %v", sc.CameraConfig.VFov)
	}
}

func TestWriteImage(t *testing.T) {
	frame := canvas.NewCanvas(2, 2)
	frame.SetPixel(0, 0, canvas.RGB8{R: 255})

	dir := t.TempDir()

	ppmPath := filepath.Join(dir, "out.ppm")
	if err := writeImage(frame, ppmPath); err != nil {
		t.Fatalf("writing ppm: %v", err)
	}
	data, err := os.ReadFile(ppmPath)
	if err != nil {
		t.Fatalf("reading ppm: %v", err)
	}
	if !strings.HasPrefix(string(data), "P3\n") {
		t.Errorf("Expected PPM header, got %q", string(data[:min(len(data), 8)]))
	}

	pngPath := filepath.Join(dir, "out.png")
	if err := writeImage(frame, pngPath); err != nil {
		t.Fatalf("writing png: %v", err)
	}
	data, err = os.ReadFile(pngPath)
	if err != nil {
		t.Fatalf("reading png: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Errorf("Expected PNG signature, got % x", data[:min(len(data), 8)])
	}
}
