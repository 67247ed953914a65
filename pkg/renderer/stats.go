package renderer

import (
	"time"

	"github.com/WilliamC07/graphics-final/pkg/core"
)

// PixelStats accumulates color samples for a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for the final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// WorkerStats aggregates the work one worker performed during a render
type WorkerStats struct {
	WorkerID int
	Tiles    int
	Pixels   int
	Samples  int
	BusyTime time.Duration
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of primary rays traced
	AverageSamples float64       // Average samples per pixel
	Elapsed        time.Duration // Wall-clock render time
	Workers        []WorkerStats // Per-worker breakdown, ordered by worker ID
}

// SamplesPerSecond returns the overall primary ray throughput
func (rs RenderStats) SamplesPerSecond() float64 {
	if rs.Elapsed <= 0 {
		return 0
	}
	return float64(rs.TotalSamples) / rs.Elapsed.Seconds()
}
