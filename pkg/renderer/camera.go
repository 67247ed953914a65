package renderer

import (
	"math"

	"github.com/WilliamC07/graphics-final/pkg/core"
)

// DefaultVFov is the vertical field of view, in degrees, used when a
// configuration does not specify one.
const DefaultVFov = 25.0

// CameraConfig describes the fixed pinhole camera
type CameraConfig struct {
	Width  int     // Image width in pixels
	Height int     // Image height in pixels
	VFov   float64 // Vertical field of view in degrees
}

// MergeCameraConfig overlays the non-zero fields of override onto base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	if override.Width > 0 {
		base.Width = override.Width
	}
	if override.Height > 0 {
		base.Height = override.Height
	}
	if override.VFov > 0 {
		base.VFov = override.VFov
	}
	return base
}

// Camera sits at the world origin and looks down the negative Z axis.
// The viewport hangs one focal length in front of it, with height
// 2·tan(fov/2) and width scaled by the image aspect ratio.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	viewportWidth   float64
	viewportHeight  float64
}

// NewCamera creates a camera from image dimensions and field of view
func NewCamera(config CameraConfig) *Camera {
	vfov := config.VFov
	if vfov <= 0 {
		vfov = DefaultVFov
	}

	aspectRatio := float64(config.Width) / float64(config.Height)
	theta := vfov * math.Pi / 180
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := aspectRatio * viewportHeight
	focalLength := 1.0

	origin := core.NewVec3(0, 0, 0)
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, viewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(core.NewVec3(0, 0, focalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
		viewportWidth:   viewportWidth,
		viewportHeight:  viewportHeight,
	}
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// s runs left to right, t bottom to top.
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}

// Project is the inverse of GetRay: it maps a world point to the screen
// coordinates whose ray passes through it, plus the view depth along -Z.
// Points at or behind the camera plane report ok=false.
func (c *Camera) Project(point core.Vec3) (uv core.Vec2, depth float64, ok bool) {
	depth = -point.Z
	if depth <= 0 {
		return core.Vec2{}, depth, false
	}

	// Perspective divide onto the viewport plane, then shift so the
	// lower-left corner is (0,0)
	u := point.X/(depth*c.viewportWidth) + 0.5
	v := point.Y/(depth*c.viewportHeight) + 0.5

	return core.NewVec2(u, v), depth, true
}
