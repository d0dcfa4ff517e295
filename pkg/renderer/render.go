package renderer

import (
	"context"
	"runtime"
	"sync"

	"prism/pkg/camera"
	"prism/pkg/canvas"
)

// DefaultMaxDepth bounds the reflection/refraction recursion per primary ray.
const DefaultMaxDepth = 4

// defaultBandHeight is the number of raster rows in one work unit.
const defaultBandHeight = 16

// Options tune the render loop. The zero value picks sensible defaults.
type Options struct {
	// Workers is the number of goroutines tracing rays. Defaults to
	// runtime.NumCPU().
	Workers int
	// MaxDepth bounds the secondary-ray recursion. Defaults to
	// DefaultMaxDepth.
	MaxDepth int
	// BandHeight is the number of rows per work unit.
	BandHeight int
	// Progress, when set, is called after each finished band with its row
	// range. It may be called from several workers concurrently.
	Progress func(y0, y1 int)
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.BandHeight <= 0 {
		o.BandHeight = defaultBandHeight
	}
	return o
}

// Render traces the whole raster for cam against sc and returns it. On
// cancellation the canvas holds every pixel finished so far alongside the
// context's error.
func Render(ctx context.Context, cam *camera.Camera, sc *Scene) (*canvas.Canvas, error) {
	cv := canvas.New(cam.HSize, cam.VSize)
	err := RenderTo(ctx, cam, sc, cv, Options{})
	return cv, err
}

// RenderTo traces into a caller-provided canvas. Rows are partitioned into
// bands fanned out over a worker pool; every worker writes only its own
// rows, so the only synchronization is the final join. The result is
// identical for any worker count.
func RenderTo(ctx context.Context, cam *camera.Camera, sc *Scene, cv *canvas.Canvas, opts Options) error {
	opts = opts.withDefaults()

	type band struct{ y0, y1 int }
	jobs := make(chan band, (cam.VSize+opts.BandHeight-1)/opts.BandHeight)
	for y := 0; y < cam.VSize; y += opts.BandHeight {
		y1 := y + opts.BandHeight
		if y1 > cam.VSize {
			y1 = cam.VSize
		}
		jobs <- band{y, y1}
	}
	close(jobs)

	var wg sync.WaitGroup
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range jobs {
				// Cancellation is observed between bands and between rows;
				// a finished row is always a valid row.
				if ctx.Err() != nil {
					return
				}
				for y := b.y0; y < b.y1; y++ {
					if ctx.Err() != nil {
						return
					}
					for x := 0; x < cam.HSize; x++ {
						r := cam.RayForPixel(x, y)
						cv.Set(x, y, sc.ColorAt(r, opts.MaxDepth))
					}
				}
				if opts.Progress != nil {
					opts.Progress(b.y0, b.y1)
				}
			}
		}()
	}
	wg.Wait()

	return ctx.Err()
}
