package scene

import (
	"github.com/WilliamC07/graphics-final/pkg/core"
	"github.com/WilliamC07/graphics-final/pkg/geometry"
	"github.com/WilliamC07/graphics-final/pkg/raster"
	"github.com/WilliamC07/graphics-final/pkg/renderer"
)

// Scene contains all the elements needed for rendering. The path tracer
// traverses World; the rasterizer uses the typed sphere list and the
// point lights. Scenes are built once and read-only while rendering.
type Scene struct {
	World          *geometry.HittableList
	Spheres        []*geometry.Sphere  // Typed access for the rasterizer
	Lights         []raster.PointLight // Point lights for the rasterizer
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
	TopColor       core.Vec3 // Sky gradient at the zenith
	BottomColor    core.Vec3 // Sky gradient at the nadir
}

// NewScene creates an empty scene with the default sky gradient and
// sampling configuration. Zero-valued camera dimensions fall back to a
// 400x225 viewport.
func NewScene(cameraConfig renderer.CameraConfig) *Scene {
	cameraConfig = renderer.MergeCameraConfig(renderer.CameraConfig{
		Width:  400,
		Height: 225,
		VFov:   renderer.DefaultVFov,
	}, cameraConfig)

	return &Scene{
		World:          geometry.NewHittableList(),
		CameraConfig:   cameraConfig,
		SamplingConfig: renderer.DefaultSamplingConfig(),
		TopColor:       core.NewVec3(0.5, 0.7, 1.0),
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0),
	}
}

// AddSphere adds a sphere to the path-traced world and the typed list
func (s *Scene) AddSphere(sphere *geometry.Sphere) {
	s.Spheres = append(s.Spheres, sphere)
	s.World.Add(sphere)
}

// AddLight adds a point light for the rasterizer
func (s *Scene) AddLight(light raster.PointLight) {
	s.Lights = append(s.Lights, light)
}

// SetBackground overrides the sky gradient colors
func (s *Scene) SetBackground(topColor, bottomColor core.Vec3) {
	s.TopColor = topColor
	s.BottomColor = bottomColor
}

// GetWorld returns the root of the path-traced geometry
func (s *Scene) GetWorld() core.Hittable {
	return s.World
}

// GetBackgroundColors returns the sky gradient colors
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetPrimitiveCount returns the number of objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.World.Objects)
}
