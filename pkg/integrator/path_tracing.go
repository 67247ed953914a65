package integrator

import (
	"math"

	"github.com/WilliamC07/graphics-final/pkg/core"
)

// PathTracingIntegrator estimates the radiance arriving along camera
// rays by following each ray through scatter events until it escapes to
// the background, is absorbed, or exhausts its bounce budget.
type PathTracingIntegrator struct {
	MaxDepth    int       // Maximum number of material bounces per ray
	TopColor    core.Vec3 // Background color straight up
	BottomColor core.Vec3 // Background color straight down
}

// NewPathTracingIntegrator creates a path tracer with the default sky gradient
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxDepth:    maxDepth,
		TopColor:    core.NewVec3(0.5, 0.7, 1.0), // Light blue sky
		BottomColor: core.NewVec3(1.0, 1.0, 1.0), // White horizon
	}
}

// RayColor computes the color for a single ray.
//
// The bounce chain is walked iteratively: throughput accumulates the
// attenuation of every surface the ray has scattered off so far, and
// whatever light the ray finally sees is scaled by it. Rays that are
// absorbed or that never escape within MaxDepth bounces contribute
// black, exactly as if the recursion had bottomed out.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world core.Hittable, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for depth := 0; depth < pt.MaxDepth; depth++ {
		hit, isHit := world.Hit(ray, 0, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(pt.backgroundGradient(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			// Material absorbed the ray
			return core.Vec3{X: 0, Y: 0, Z: 0}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Bounce limit reached without seeing any light
	return core.Vec3{X: 0, Y: 0, Z: 0}
}

// backgroundGradient returns a gradient color based on ray direction
func (pt *PathTracingIntegrator) backgroundGradient(r core.Ray) core.Vec3 {
	// Normalize the ray direction to get consistent results
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return pt.BottomColor.Multiply(1.0 - t).Add(pt.TopColor.Multiply(t))
}
