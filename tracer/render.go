package tracer

import (
	"image"
	"math"
	"runtime"
	"sync"
)

// Tracer drives the parallel render loop over a Scene, matching the
// teacher's ray.Tracer chunked worker-pool shape (ray/tracer.go) but
// implementing the spec's per-pixel sampling, NaN/Inf-safe accumulation, and
// gamma correction instead of the teacher's single-sample-per-pixel shortcut.
type Tracer struct {
	Width, Height int
	Samples       int
	MaxDepth      int
	Gamma         float64
	NumWorkers    int // <= 0 defaults to GOMAXPROCS
	Seed          uint64
	ProgressFunc  func(delta int)

	imageData *image.RGBA
}

// NewTracer builds a Tracer for the given pixel dimensions, filling in
// defaults for zero-valued fields per the CLI's own defaults (§6).
func NewTracer(width, height int) *Tracer {
	return &Tracer{
		Width:     width,
		Height:    height,
		Samples:   100,
		MaxDepth:  100,
		Gamma:     2.0,
		imageData: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Render runs the parallel render loop against scene and returns the final,
// vertically-flipped RGBA image (§4.9).
func (t *Tracer) Render(scene *Scene) *image.RGBA {
	if t.Samples <= 0 {
		t.Samples = 100
	}
	if t.MaxDepth <= 0 {
		t.MaxDepth = 100
	}
	if t.Gamma <= 0 {
		t.Gamma = 2.0
	}
	if t.NumWorkers <= 0 {
		t.NumWorkers = runtime.GOMAXPROCS(0)
	}
	scene.Camera.Initialize(t.Width, t.Height)

	var wg sync.WaitGroup
	if t.NumWorkers == 1 {
		// Special case: a single worker renders the whole image, preserving
		// one deterministic RNG sequence end to end.
		t.renderLines(0, 0, t.Height, scene)
	} else {
		chunkSize := max(4, t.Height/(t.NumWorkers*4))
		type workChunk struct{ startY, endY int }
		numChunks := (t.Height + chunkSize - 1) / chunkSize
		workQueue := make(chan workChunk, numChunks)
		for y := 0; y < t.Height; y += chunkSize {
			workQueue <- workChunk{y, min(y+chunkSize, t.Height)}
		}
		close(workQueue)

		for range t.NumWorkers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for chunk := range workQueue {
					t.renderLines(chunk.startY, chunk.startY, chunk.endY, scene)
				}
			}()
		}
		wg.Wait()
	}

	return flipVertical(t.imageData)
}

// renderLines renders rows [yStart,yEnd) using a Rand seeded from idx and
// t.Seed (a zero Seed draws a fresh random source instead), per §5's
// "independent RNG instance per thread, never shared" requirement.
func (t *Tracer) renderLines(idx, yStart, yEnd int, scene *Scene) {
	rng := NewRandSeed(idx, t.Seed)
	if t.Seed == 0 {
		rng = NewRandomSource()
	}
	invGamma := 1.0 / t.Gamma
	pix := t.imageData.Pix
	for y := yStart; y < yEnd; y++ {
		if t.ProgressFunc != nil {
			t.ProgressFunc(t.Width)
		}
		for x := range t.Width {
			accum := ColorF{}
			counted := 0
			for range t.Samples {
				offsetX, offsetY := rng.Float64()-0.5, rng.Float64()-0.5
				// Buffer row y holds camera row Height-1-y (bottom-left origin);
				// flipVertical turns it back into top-left order.
				ray := scene.Camera.GetRay(rng, float64(x), float64(t.Height-1-y), offsetX, offsetY)
				color := Colorize(ray, scene, 0, t.MaxDepth, rng)
				counted++
				if Finite(color) {
					accum = Add(accum, color)
				}
			}
			if counted == 0 {
				counted = 1
			}
			avg := SDiv(accum, float64(counted))
			c := gammaCorrect(avg, invGamma)
			off := t.imageData.PixOffset(x, y)
			s := pix[off : off+4 : off+4]
			s[0], s[1], s[2], s[3] = c[0], c[1], c[2], 255
		}
	}
}

// gammaCorrect applies c_out = clamp(c_in^(1/gamma), 0, 1) * 255 per channel.
func gammaCorrect(c ColorF, invGamma float64) [3]uint8 {
	var out [3]uint8
	for i := range 3 {
		v := c[i]
		if v < 0 {
			v = 0
		}
		v = math.Pow(v, invGamma)
		v = ZeroOne.Clamp(v)
		out[i] = uint8(v*255 + 0.5)
	}
	return out
}

// flipVertical returns a new image with rows reversed, translating the
// tracer's bottom-left-origin convention into the top-left-origin convention
// expected of PNG output.
func flipVertical(src *image.RGBA) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	h := bounds.Dy()
	for y := 0; y < h; y++ {
		srcOff := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		dstOff := dst.PixOffset(bounds.Min.X, bounds.Min.Y+h-1-y)
		rowLen := bounds.Dx() * 4
		copy(dst.Pix[dstOff:dstOff+rowLen], src.Pix[srcOff:srcOff+rowLen])
	}
	return dst
}
