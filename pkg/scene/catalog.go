package scene

import (
	"fmt"
	"strings"

	"github.com/WilliamC07/graphics-final/pkg/core"
	"github.com/WilliamC07/graphics-final/pkg/geometry"
	"github.com/WilliamC07/graphics-final/pkg/material"
	"github.com/WilliamC07/graphics-final/pkg/raster"
	"github.com/WilliamC07/graphics-final/pkg/renderer"
)

// SceneInfo describes one built-in scene
type SceneInfo struct {
	Name        string
	Description string
}

// Builtins lists the built-in scenes in display order
func Builtins() []SceneInfo {
	return []SceneInfo{
		{Name: "default", Description: "Lambertian, metal and glass spheres on a ground sphere"},
		{Name: "gray-sphere", Description: "Single gray diffuse sphere against the sky gradient"},
		{Name: "glass-trio", Description: "Water, glass and diamond spheres over colored backdrops"},
	}
}

// NewBuiltinScene builds a built-in scene by name
func NewBuiltinScene(name string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	switch name {
	case "default":
		return NewDefaultScene(cameraOverrides...), nil
	case "gray-sphere":
		return NewGraySphereScene(cameraOverrides...), nil
	case "glass-trio":
		return NewGlassTrioScene(cameraOverrides...), nil
	default:
		names := make([]string, 0, len(Builtins()))
		for _, info := range Builtins() {
			names = append(names, info.Name)
		}
		return nil, fmt.Errorf("unknown scene %q (built-in scenes: %s)", name, strings.Join(names, ", "))
	}
}

// NewDefaultScene creates the default scene: a diffuse, a metal and a
// hollow glass sphere resting on a large ground sphere
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	s := newSceneWithCamera(cameraOverrides)

	// Create materials
	lambertianGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	materialGlass := material.NewDielectric(1.5)

	// The ground is a very large sphere whose top surface sits at y=-0.5,
	// so the unit spheres rest on it
	s.AddSphere(geometry.NewSphere(core.NewVec3(0, -100.5, -4), 100, lambertianGround))

	s.AddSphere(geometry.NewSphere(core.NewVec3(0, 0, -4), 0.5, lambertianBlue))
	s.AddSphere(geometry.NewSphere(core.NewVec3(1.05, 0, -4), 0.5, metalGold))

	// Hollow glass sphere: the negative-radius inner shell flips its
	// normals so the wall has glass on both sides
	s.AddSphere(geometry.NewSphere(core.NewVec3(-1.05, 0, -4), 0.5, materialGlass))
	s.AddSphere(geometry.NewSphere(core.NewVec3(-1.05, 0, -4), -0.45, materialGlass))

	s.AddLight(raster.NewPointLight(core.NewVec3(2, 4, 0), core.NewVec3(1, 1, 1)))
	s.AddLight(raster.NewPointLight(core.NewVec3(-3, 2, 1), core.NewVec3(0.3, 0.3, 0.4)))

	return s
}

// NewGraySphereScene creates a single 50% gray diffuse sphere directly in
// front of the camera
func NewGraySphereScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	s := newSceneWithCamera(cameraOverrides)

	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.AddSphere(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray))

	s.AddLight(raster.NewPointLight(core.NewVec3(0, 2, 0), core.NewVec3(1, 1, 1)))

	return s
}

// NewGlassTrioScene creates three dielectric spheres with increasing
// refractive indices, each in front of a colored diffuse backdrop
func NewGlassTrioScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	s := newSceneWithCamera(cameraOverrides)
	s.SamplingConfig.SamplesPerPixel = 300
	s.SetBackground(core.NewVec3(0.65, 0.8, 1.0), core.NewVec3(0.95, 0.95, 1.0))

	lambertianGray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.AddSphere(geometry.NewSphere(core.NewVec3(0, -100.5, -4), 100, lambertianGray))

	// Water, crown glass, diamond
	water := material.NewDielectric(1.33)
	glass := material.NewDielectric(1.5)
	diamond := material.NewDielectric(2.42)
	s.AddSphere(geometry.NewSphere(core.NewVec3(-1.05, 0, -4), 0.5, water))
	s.AddSphere(geometry.NewSphere(core.NewVec3(0, 0, -4), 0.5, glass))
	s.AddSphere(geometry.NewSphere(core.NewVec3(1.05, 0, -4), 0.5, diamond))

	// Colored backdrops seen through the glass
	s.AddSphere(geometry.NewSphere(core.NewVec3(-1.4, 0.25, -6.5), 0.75, material.NewLambertian(core.NewVec3(0.8, 0.2, 0.2))))
	s.AddSphere(geometry.NewSphere(core.NewVec3(0, 0.25, -6.5), 0.75, material.NewLambertian(core.NewVec3(0.2, 0.8, 0.2))))
	s.AddSphere(geometry.NewSphere(core.NewVec3(1.4, 0.25, -6.5), 0.75, material.NewLambertian(core.NewVec3(0.2, 0.2, 0.8))))

	s.AddLight(raster.NewPointLight(core.NewVec3(3, 5, 2), core.NewVec3(1, 1, 1)))

	return s
}

func newSceneWithCamera(cameraOverrides []renderer.CameraConfig) *Scene {
	cameraConfig := renderer.CameraConfig{}
	if len(cameraOverrides) > 0 {
		cameraConfig = cameraOverrides[0]
	}
	return NewScene(cameraConfig)
}
