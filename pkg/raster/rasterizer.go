package raster

import (
	"fmt"
	"math"
	"time"

	"github.com/WilliamC07/graphics-final/log"
	"github.com/WilliamC07/graphics-final/pkg/core"
	"github.com/WilliamC07/graphics-final/pkg/geometry"
	"github.com/WilliamC07/graphics-final/pkg/renderer"
)

// Config describes a scanline render pass
type Config struct {
	Camera  renderer.CameraConfig
	Stacks  int       // Sphere tessellation: latitude bands
	Slices  int       // Sphere tessellation: longitude segments
	Ambient core.Vec3 // Ambient light color
}

// DefaultConfig returns the default rasterizer configuration
func DefaultConfig() Config {
	return Config{
		Camera:  renderer.CameraConfig{VFov: renderer.DefaultVFov},
		Stacks:  32,
		Slices:  64,
		Ambient: DefaultAmbient,
	}
}

// Rasterizer draws Phong-shaded triangle meshes through the same pinhole
// camera as the path tracer, resolving visibility with a z-buffer instead
// of ray casts. It is the fast preview counterpart to the path tracer and
// shares its PixelWriter output contract.
type Rasterizer struct {
	camera  *renderer.Camera
	width   int
	height  int
	stacks  int
	slices  int
	ambient core.Vec3
	depth   []float64
	logger  log.Logger
}

// NewRasterizer creates a rasterizer with a cleared depth buffer
func NewRasterizer(config Config) *Rasterizer {
	stacks := config.Stacks
	if stacks <= 0 {
		stacks = 32
	}
	slices := config.Slices
	if slices <= 0 {
		slices = 64
	}
	ambient := config.Ambient
	if ambient == (core.Vec3{}) {
		ambient = DefaultAmbient
	}

	r := &Rasterizer{
		camera:  renderer.NewCamera(config.Camera),
		width:   config.Camera.Width,
		height:  config.Camera.Height,
		stacks:  stacks,
		slices:  slices,
		ambient: ambient,
		depth:   make([]float64, config.Camera.Width*config.Camera.Height),
		logger:  log.New("raster"),
	}
	r.ClearDepth()

	return r
}

// ClearDepth resets the z-buffer so every pixel is infinitely far away
func (r *Rasterizer) ClearDepth() {
	for i := range r.depth {
		r.depth[i] = math.Inf(1)
	}
}

// Render tessellates each sphere and fills its triangles against the
// shared z-buffer, emitting shaded pixels through the writer. Pixels no
// triangle covers are left untouched.
func (r *Rasterizer) Render(spheres []*geometry.Sphere, lights []PointLight, writer renderer.PixelWriter) error {
	if r.width < 2 || r.height < 2 {
		return fmt.Errorf("image dimensions must be at least 2x2, got %dx%d", r.width, r.height)
	}
	if writer == nil {
		return fmt.Errorf("pixel writer is required")
	}

	start := time.Now()
	r.ClearDepth()

	triangles := 0
	for _, sphere := range spheres {
		mesh := TessellateSphere(sphere.Center, sphere.Radius, r.stacks, r.slices)
		appearance := AppearanceFor(sphere.Material)

		for _, tri := range mesh.Triangles {
			r.DrawTriangle(tri, appearance, lights, writer)
		}
		triangles += len(mesh.Triangles)
	}

	r.logger.Noticef("Rasterized %d spheres (%d triangles, %d lights) at %dx%d in %v",
		len(spheres), triangles, len(lights), r.width, r.height, time.Since(start))

	return nil
}

// DrawTriangle projects one triangle and fills it by scanning the pixels
// of its screen bounding box, testing each against the triangle's
// barycentric coordinates and the z-buffer. Position and normal are
// interpolated from the vertices and shaded per pixel. Triangles with a
// vertex at or behind the camera plane are dropped rather than clipped.
func (r *Rasterizer) DrawTriangle(tri Triangle, appearance Appearance, lights []PointLight, writer renderer.PixelWriter) {
	uv0, d0, ok0 := r.camera.Project(tri.V0.Position)
	uv1, d1, ok1 := r.camera.Project(tri.V1.Position)
	uv2, d2, ok2 := r.camera.Project(tri.V2.Position)
	if !ok0 || !ok1 || !ok2 {
		return
	}

	// Screen coordinates on the same pixel lattice the path tracer
	// samples: u maps to [0, width-1] left to right, v to [height-1, 0]
	// because canvas row 0 is the top of the image
	x0, y0 := r.toScreen(uv0)
	x1, y1 := r.toScreen(uv1)
	x2, y2 := r.toScreen(uv2)

	minX := max(int(math.Floor(min(x0, x1, x2))), 0)
	maxX := min(int(math.Ceil(max(x0, x1, x2))), r.width-1)
	minY := max(int(math.Floor(min(y0, y1, y2))), 0)
	maxY := min(int(math.Ceil(max(y0, y1, y2))), r.height-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0, w1, w2, ok := barycentric(x0, y0, x1, y1, x2, y2, float64(x), float64(y))
			if !ok {
				// Degenerate triangle with no screen area
				return
			}
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			depth := w0*d0 + w1*d1 + w2*d2
			idx := y*r.width + x
			if depth >= r.depth[idx] {
				continue
			}
			r.depth[idx] = depth

			position := tri.V0.Position.Multiply(w0).
				Add(tri.V1.Position.Multiply(w1)).
				Add(tri.V2.Position.Multiply(w2))
			normal := tri.V0.Normal.Multiply(w0).
				Add(tri.V1.Normal.Multiply(w1)).
				Add(tri.V2.Normal.Multiply(w2)).
				Normalize()

			shaded := Shade(position, normal, appearance, lights, r.ambient)
			writer.SetPixel(x, y, renderer.ColorToRGB8(shaded))
		}
	}
}

func (r *Rasterizer) toScreen(uv core.Vec2) (x, y float64) {
	return uv.X * float64(r.width-1), (1 - uv.Y) * float64(r.height-1)
}

// barycentric returns the weights of point (px, py) relative to the 2D
// triangle (x0,y0) (x1,y1) (x2,y2). All three weights are non-negative
// exactly when the point is inside the triangle. Reports ok=false for a
// degenerate triangle with (near) zero area.
func barycentric(x0, y0, x1, y1, x2, y2, px, py float64) (w0, w1, w2 float64, ok bool) {
	denom := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if math.Abs(denom) < 1e-12 {
		return 0, 0, 0, false
	}

	w0 = ((y1-y2)*(px-x2) + (x2-x1)*(py-y2)) / denom
	w1 = ((y2-y0)*(px-x2) + (x0-x2)*(py-y2)) / denom
	w2 = 1 - w0 - w1

	return w0, w1, w2, true
}
