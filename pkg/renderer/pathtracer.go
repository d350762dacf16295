package renderer

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"github.com/mixedlight/pathtracer/pkg/core"
	"github.com/mixedlight/pathtracer/pkg/geometry"
	"github.com/mixedlight/pathtracer/pkg/lights"
	"github.com/mixedlight/pathtracer/pkg/material"
	"github.com/mixedlight/pathtracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config controls path termination and parallelism
type Config struct {
	MaxPathLength int   // Hard bounce cap per path
	NumWorkers    int   // Parallel workers (0 = CPU count)
	Seed          int64 // Base seed for the per-worker random streams
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxPathLength: 100,
		NumWorkers:    0,
		Seed:          1,
	}
}

// PathTracer estimates per-pixel radiance by tracing light paths with
// importance-sampled continuation and next-event estimation at every bounce.
type PathTracer struct {
	scene  *scene.Scene
	camera *Camera
	frame  *Framebuffer
	config Config
	logger core.Logger
}

// NewPathTracer creates a path tracer for the given scene and camera
func NewPathTracer(sc *scene.Scene, camera *Camera, config Config, logger core.Logger) *PathTracer {
	if config.MaxPathLength <= 0 {
		config.MaxPathLength = DefaultConfig().MaxPathLength
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	width, height := camera.ViewSize()
	return &PathTracer{
		scene:  sc,
		camera: camera,
		frame:  NewFramebuffer(width, height),
		config: config,
		logger: logger,
	}
}

// Framebuffer returns the accumulation buffer
func (pt *PathTracer) Framebuffer() *Framebuffer {
	return pt.frame
}

// Iterate renders one full-frame pass, accumulating one sample per pixel.
// The first iteration samples pixel centers; later iterations jitter.
// Rows are split into bands across workers, each with its own seeded random
// stream, so framebuffer writes stay pixel-disjoint.
func (pt *PathTracer) Iterate(iterNum int) {
	width, height := pt.camera.ViewSize()

	numWorkers := pt.config.NumWorkers
	if numWorkers > height {
		numWorkers = height
	}
	rowsPerWorker := (height + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for worker := 0; worker < numWorkers; worker++ {
		yMin := worker * rowsPerWorker
		yMax := min(yMin+rowsPerWorker, height)
		if yMin >= yMax {
			continue
		}

		wg.Add(1)
		go func(yMin, yMax, worker int) {
			defer wg.Done()
			seed := pt.config.Seed + int64(iterNum)*7919 + int64(worker)
			sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
			for y := yMin; y < yMax; y++ {
				for x := 0; x < width; x++ {
					sample := core.NewVec2(float64(x)+0.5, float64(y)+0.5)
					if iterNum > 0 {
						jitter := sampler.Get2D()
						sample = core.NewVec2(float64(x)+jitter.X, float64(y)+jitter.Y)
					}
					ray := pt.camera.RayFromScreen(sample)
					pt.frame.AddColor(x, y, pt.TracePath(ray, sampler))
				}
			}
		}(yMin, yMax, worker)
	}
	wg.Wait()

	if pt.logger != nil {
		pt.logger.Printf("iteration %d complete (%dx%d, %d workers)\n",
			iterNum, width, height, numWorkers)
	}
}

// TracePath estimates the radiance arriving along one primary ray
func (pt *PathTracer) TracePath(ray core.Ray, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)
	color := core.Vec3{}
	pathLength := 0

	for {
		hit, found := pt.scene.NearestIntersection(ray)
		if !found {
			// The environment contributes only on miss; it is excluded from
			// next-event estimation to avoid counting it twice
			if bg := pt.scene.BackgroundLight(); bg != nil {
				if rad, ok := bg.Radiance(ray); ok {
					color = color.Add(throughput.MultiplyVec(rad.Emission))
				}
			}
			break
		}

		if hit.Surface.Kind == geometry.SurfaceLight {
			// Emissive hits count only on the first bounce; later bounces
			// are already covered by next-event estimation
			if pathLength == 0 {
				if rad, ok := pt.scene.Light(hit.Surface.ID).Radiance(ray); ok {
					color = rad.Emission
				}
			}
			break
		}

		brdf, ok := material.NewBRDF(ray.Direction, hit.Normal, pt.scene.Material(hit.Surface.ID))
		if !ok {
			break
		}

		color = color.Add(pt.directLighting(brdf, hit.Point, throughput, sampler))

		sample, ok := brdf.Sample(sampler.Get3D())
		if !ok {
			break
		}
		throughput = throughput.MultiplyVec(sample.Weight)
		ray = core.NewRay(
			hit.Point.Add(sample.Direction.Multiply(core.EpsRay)),
			sample.Direction)

		if pathLength > pt.config.MaxPathLength {
			break
		}

		var terminated bool
		throughput, terminated = pt.ApplyRussianRoulette(throughput, sampler.Get1D())
		if terminated {
			break
		}

		pathLength++
	}

	return color
}

// ApplyRussianRoulette decides stochastic termination for the path. Survival
// probability is min(1, |throughput|); survivors are rescaled by its inverse
// so the estimator stays unbiased. A throughput of magnitude 1 or more never
// terminates.
func (pt *PathTracer) ApplyRussianRoulette(throughput core.Vec3, u float64) (core.Vec3, bool) {
	norm := throughput.Length()
	if norm < u {
		return throughput, true
	}
	if norm < 1.0 {
		throughput = throughput.Multiply(1.0 / norm)
	}
	return throughput, false
}

// directLighting performs next-event estimation against every finite light
func (pt *PathTracer) directLighting(brdf *material.BRDF, point core.Vec3, throughput core.Vec3, sampler core.Sampler) core.Vec3 {
	contribution := core.Vec3{}

	for i := 0; i < pt.scene.LightCount(); i++ {
		light := pt.scene.Light(i)
		illum := light.Illuminate(point, sampler.Get2D())
		// Covers both a zero pdf and the -Inf "never select" sentinel
		if illum.PDF <= 0 {
			continue
		}

		eval, ok := brdf.Evaluate(illum.Direction)
		if !ok {
			continue
		}

		if pt.occluded(point, illum, i) {
			continue
		}

		contribution = contribution.Add(
			illum.Emission.
				MultiplyVec(throughput).
				MultiplyVec(eval.Value).
				Multiply(1.0 / illum.PDF))
	}

	return contribution
}

// occluded casts a shadow ray toward the light sample. The path is occluded
// only when something other than the sampled light sits strictly between the
// shading point and the light.
func (pt *PathTracer) occluded(point core.Vec3, illum lights.Illumination, lightID int) bool {
	shadowRay := core.NewRay(point, illum.Direction)
	hit, found := pt.scene.NearestIntersection(shadowRay)
	if !found || hit.T >= illum.Distance {
		return false
	}
	return hit.Surface.Kind != geometry.SurfaceLight || hit.Surface.ID != lightID
}
