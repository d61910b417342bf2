// Command benchmark is a profiling-oriented batch entry point: no terminal
// preview, no JSON scene file, just a built-in preset (chosen with -preset,
// default cornell) rendered end to end for
// timing and CPU-profiling runs, adapted from the teacher's
// benchmark/benchmark.go.
package main

import (
	"flag"
	"image"
	"image/png"
	"os"
	"runtime/pprof"

	"fortio.org/cli"
	"fortio.org/log"
	"fortio.org/progressbar"

	"fortio.org/raytracer/scene"
	"fortio.org/raytracer/tracer"
)

func main() {
	os.Exit(Main())
}

func saveImage(img image.Image, fname string) error {
	pngFile, err := os.Create(fname)
	if err != nil {
		return &tracer.IOError{Path: fname, Err: err}
	}
	defer pngFile.Close()
	if err := png.Encode(pngFile, img); err != nil {
		return &tracer.IOError{Path: fname, Err: err}
	}
	return nil
}

func Main() int {
	fSamples := flag.Int("samples", 10, "Samples per pixel")
	fMaxDepth := flag.Int("max-depth", 20, "Maximum ray bounce depth")
	fWorkers := flag.Int("workers", 1, "Number of parallel workers (0 = GOMAXPROCS)")
	fCPUProfile := flag.String("profile-cpu", "", "Write CPU profile to file")
	fSave := flag.String("save", "out.png", "Save the rendered image to the specified PNG file")
	fSeed := flag.Uint64("seed", 7, "RNG seed (0 randomizes each run)")
	// Matches https://github.com/RayTracing/raytracing.github.io/blob/release/src/InOneWeekend/main.cc#L66-L67
	fWidth := flag.Int("width", 1200, "Image width in pixels")
	fHeight := flag.Int("height", 675, "Image height in pixels")
	fPreset := flag.String("preset", "cornell", "Built-in preset scene to render")
	cli.Main()

	if *fCPUProfile != "" {
		f, err := os.Create(*fCPUProfile)
		if err != nil {
			return log.FErrf("Could not create CPU profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return log.FErrf("Could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	sc, err := scene.Preset(*fPreset)
	if err != nil {
		return log.FErrf("could not build preset %q: %v", *fPreset, err)
	}

	log.Infof("Rendering preset %q at %dx%d with %d samples/pixel, max depth %d, %d workers, seed %d",
		*fPreset, *fWidth, *fHeight, *fSamples, *fMaxDepth, *fWorkers, *fSeed)

	t := tracer.NewTracer(*fWidth, *fHeight)
	t.Samples = *fSamples
	t.MaxDepth = *fMaxDepth
	t.NumWorkers = *fWorkers
	t.Seed = *fSeed

	pb := progressbar.NewBar()
	pb.Prefix = "Rendering "
	total := t.Width * t.Height
	p := progressbar.NewAutoProgress(pb, int64(total))
	t.ProgressFunc = func(n int) { p.Update(n) }

	img := t.Render(sc)
	pb.End()

	if *fSave != "" {
		if err := saveImage(img, *fSave); err != nil {
			return log.FErrf("could not save image to %q: %v", *fSave, err)
		}
		log.Infof("Saved rendered image to %q", *fSave)
	}
	return 0
}
