package renderer

import (
	"fmt"
	"sort"
	"time"

	"github.com/WilliamC07/graphics-final/log"
	"github.com/WilliamC07/graphics-final/pkg/canvas"
	"github.com/WilliamC07/graphics-final/pkg/core"
	"github.com/WilliamC07/graphics-final/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Base seed for the per-tile random streams
	Jitter          bool  // Jitter primary rays within each pixel
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 200,
		MaxDepth:        50,
		Seed:            42,
		Jitter:          true,
	}
}

// MergeSamplingConfig overlays the non-zero fields of override onto base.
// Jitter always comes from base since false is a meaningful setting.
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	if override.SamplesPerPixel > 0 {
		base.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth > 0 {
		base.MaxDepth = override.MaxDepth
	}
	if override.Seed != 0 {
		base.Seed = override.Seed
	}
	return base
}

// Config collects everything that shapes a render
type Config struct {
	Camera     CameraConfig
	Sampling   SamplingConfig
	TileSize   int // Square tile edge in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns a render configuration with the standard
// sampling parameters. Camera dimensions must still be set by the caller.
func DefaultConfig() Config {
	return Config{
		Camera:     CameraConfig{VFov: DefaultVFov},
		Sampling:   DefaultSamplingConfig(),
		TileSize:   64,
		NumWorkers: 0,
	}
}

// Scene provides the world geometry and backdrop for rendering
type Scene interface {
	GetWorld() core.Hittable
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
}

// PixelWriter receives finished 8-bit pixels. Implementations must
// tolerate concurrent calls for distinct coordinates.
type PixelWriter interface {
	SetPixel(x, y int, pixel canvas.RGB8)
}

// Raytracer renders a scene by distributing image tiles across a
// worker pool and path tracing every pixel.
type Raytracer struct {
	scene  Scene
	config Config
	logger log.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, config Config) *Raytracer {
	return &Raytracer{
		scene:  scene,
		config: config,
		logger: log.New("renderer"),
	}
}

// frame carries the shared read-only state for a render in flight
type frame struct {
	camera     *Camera
	world      core.Hittable
	integrator *integrator.PathTracingIntegrator
	config     SamplingConfig
	width      int
	height     int
	writer     PixelWriter
}

// Render draws the full frame into writer and returns render statistics
func (rt *Raytracer) Render(writer PixelWriter) (RenderStats, error) {
	width, height := rt.config.Camera.Width, rt.config.Camera.Height
	if width < 2 || height < 2 {
		return RenderStats{}, fmt.Errorf("image dimensions must be at least 2x2, got %dx%d", width, height)
	}
	if rt.config.Sampling.SamplesPerPixel < 1 {
		return RenderStats{}, fmt.Errorf("samples per pixel must be at least 1, got %d", rt.config.Sampling.SamplesPerPixel)
	}
	if writer == nil {
		return RenderStats{}, fmt.Errorf("pixel writer is required")
	}

	tileSize := rt.config.TileSize
	if tileSize <= 0 {
		tileSize = 64
	}

	pt := integrator.NewPathTracingIntegrator(rt.config.Sampling.MaxDepth)
	pt.TopColor, pt.BottomColor = rt.scene.GetBackgroundColors()

	f := &frame{
		camera:     NewCamera(rt.config.Camera),
		world:      rt.scene.GetWorld(),
		integrator: pt,
		config:     rt.config.Sampling,
		width:      width,
		height:     height,
		writer:     writer,
	}

	tiles := NewTileGrid(width, height, tileSize, rt.config.Sampling.Seed)
	pool := NewWorkerPool(f, len(tiles), rt.config.NumWorkers)

	rt.logger.Infof("rendering %dx%d at %d samples/pixel, depth %d: %d tiles on %d workers",
		width, height, rt.config.Sampling.SamplesPerPixel, rt.config.Sampling.MaxDepth,
		len(tiles), pool.GetNumWorkers())

	start := time.Now()
	pool.Start()

	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}

	stats := RenderStats{}
	perWorker := make(map[int]*WorkerStats)

	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			return stats, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			return stats, fmt.Errorf("rendering tile %d: %w", result.TaskID, result.Error)
		}

		stats.TotalPixels += result.Pixels
		stats.TotalSamples += result.Samples

		ws, exists := perWorker[result.WorkerID]
		if !exists {
			ws = &WorkerStats{WorkerID: result.WorkerID}
			perWorker[result.WorkerID] = ws
		}
		ws.Tiles++
		ws.Pixels += result.Pixels
		ws.Samples += result.Samples
		ws.BusyTime += result.Elapsed
	}

	pool.Stop()
	stats.Elapsed = time.Since(start)

	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	for _, ws := range perWorker {
		stats.Workers = append(stats.Workers, *ws)
	}
	sort.Slice(stats.Workers, func(i, j int) bool {
		return stats.Workers[i].WorkerID < stats.Workers[j].WorkerID
	})

	rt.logger.Noticef("render finished in %s (%.0f rays/sec)",
		stats.Elapsed.Round(time.Millisecond), stats.SamplesPerSecond())

	return stats, nil
}

// renderTile path traces every pixel in the tile and emits the finished
// colors. Pixel rows run top to bottom in image space while camera t
// runs bottom to top, hence the row flip.
func (f *frame) renderTile(tile *Tile) (pixels, samples int) {
	sampler := core.NewRandomSampler(tile.Random)

	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		row := f.height - 1 - y

		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			pixel := PixelStats{}

			for s := 0; s < f.config.SamplesPerPixel; s++ {
				var jitter core.Vec2
				if f.config.Jitter {
					jitter = sampler.Get2D()
				}

				u := (float64(x) + jitter.X) / float64(f.width-1)
				v := (float64(row) + jitter.Y) / float64(f.height-1)

				ray := f.camera.GetRay(u, v)
				pixel.AddSample(f.integrator.RayColor(ray, f.world, sampler))
			}

			f.writer.SetPixel(x, y, ColorToRGB8(pixel.GetColor()))
			pixels++
			samples += pixel.SampleCount
		}
	}

	return pixels, samples
}

// ColorToRGB8 converts a radiance value to an 8-bit pixel: gamma 2
// correction, clamp to [0, 0.999], scale by 256 and floor. Both renderers
// push their pixels through this same conversion.
func ColorToRGB8(colorVec core.Vec3) canvas.RGB8 {
	corrected := colorVec.GammaCorrect(2.0).Clamp(0.0, 0.999)

	return canvas.RGB8{
		R: uint8(256 * corrected.X),
		G: uint8(256 * corrected.Y),
		B: uint8(256 * corrected.Z),
	}
}
