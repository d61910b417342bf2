package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	"fortio.org/cli"
	"fortio.org/log"
	"fortio.org/progressbar"
	"fortio.org/terminal/ansipixels"
	"golang.org/x/image/draw"
	"golang.org/x/term"

	"fortio.org/raytracer/scene"
	"fortio.org/raytracer/tracer"
)

func main() {
	os.Exit(Main())
}

// SaveImage PNG-encodes img to fname, creating any missing parent directory
// first (§6 "Default output is renders/<unix-timestamp>.png (directory
// created if absent)").
func SaveImage(img image.Image, fname string) error {
	if dir := filepath.Dir(fname); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &tracer.IOError{Path: dir, Err: err}
		}
	}
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

// Main implements the spec's CLI surface (§6):
// --input PATH --output PATH? --width N=1024 --height N=1024 --samples N=100
// --max-depth N=100 --gamma F=2.0 [--gui], plus the teacher's own
// --workers/--profile-cpu flags for parity with fortio-tray's CLI idiom.
func Main() int { //nolint:funlen // mirrors the teacher's linear CLI wiring.
	fInput := flag.String("input", "", "Path to a scene JSON file, or the name of a built-in "+
		"preset (default, random, two-noise-spheres, simple-light, cornell, cornell-glass)")
	fOutput := flag.String("output", "", "Path to the output PNG (default renders/<unix-timestamp>.png)")
	fWidth := flag.Int("width", 1024, "Image width in pixels")
	fHeight := flag.Int("height", 1024, "Image height in pixels")
	fSamples := flag.Int("samples", 100, "Samples per pixel")
	fMaxDepth := flag.Int("max-depth", 100, "Maximum ray bounce depth")
	fGamma := flag.Float64("gamma", 2.0, "Gamma correction exponent")
	fGUI := flag.Bool("gui", false, "Show the finished image in the terminal after rendering")
	fWorkers := flag.Int("workers", 0, "Number of parallel workers (0 = GOMAXPROCS)")
	fCPUProfile := flag.String("profile-cpu", "", "Write a CPU profile to this file")
	fSeed := flag.Uint64("seed", 0, "RNG seed (0 randomizes each run)")
	cli.Main()

	if *fCPUProfile != "" {
		f, err := os.Create(*fCPUProfile)
		if err != nil {
			return log.FErrf("could not create CPU profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return log.FErrf("could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	if *fInput == "" {
		return log.FErrf("-input is required (a scene JSON path or a built-in preset name)")
	}

	sc, err := loadScene(*fInput)
	if err != nil {
		return log.FErrf("could not load scene: %v", err)
	}

	t := tracer.NewTracer(*fWidth, *fHeight)
	t.Samples = *fSamples
	t.MaxDepth = *fMaxDepth
	t.Gamma = *fGamma
	t.NumWorkers = *fWorkers
	t.Seed = *fSeed

	output := *fOutput
	if output == "" {
		output = filepath.Join("renders", fmt.Sprintf("%d.png", time.Now().Unix()))
	}

	if *fGUI {
		return renderWithPreview(t, sc, output)
	}

	pb := progressbar.NewBar()
	pb.Prefix = "Rendering "
	total := t.Width * t.Height
	p := progressbar.NewAutoProgress(pb, int64(total))
	t.ProgressFunc = func(n int) { p.Update(n) }

	img := t.Render(sc)
	pb.End()

	if err := SaveImage(img, output); err != nil {
		return log.FErrf("could not save image: %v", err)
	}
	log.Infof("Saved rendered image to %q", output)
	return 0
}

// loadScene resolves the -input value to a scene, trying it as a JSON file
// path first and falling back to a built-in preset name, mirroring
// df07-go-progressive-raytracer/main.go's tryLoadPBRTScene-then-
// builtin-switch dispatch.
func loadScene(input string) (*tracer.Scene, error) {
	if _, err := os.Stat(input); err == nil {
		return scene.Load(input)
	}
	return scene.Preset(input)
}

// renderWithPreview runs the same render loop, saves the image, then scales
// it to the terminal and shows it once through ansipixels, adapted from the
// teacher's main.go OnResize closure (§4.14/§6). The preview is not updated
// while rendering and is not redrawn afterwards.
func renderWithPreview(t *tracer.Tracer, sc *tracer.Scene, output string) int {
	var ap *ansipixels.AnsiPixels
	if term.IsTerminal(int(os.Stdout.Fd())) {
		ap = ansipixels.NewAnsiPixels(60)
		if err := ap.Open(); err != nil {
			return 1 // error already logged
		}
		defer ap.Restore()
		ap.SyncBackgroundColor()
	} else {
		ap = ansipixels.NewAnsiPixels(0)
		ap.W, ap.H = 80, 24
	}

	pb := progressbar.NewBar()
	pb.Prefix = "Rendering "
	pb.ScreenWriter = ap.Logger
	total := t.Width * t.Height
	p := progressbar.NewAutoProgress(pb, int64(total))
	t.ProgressFunc = func(n int) { p.Update(n) }

	img := t.Render(sc)
	pb.End()

	if err := SaveImage(img, output); err != nil {
		return log.FErrf("could not save image: %v", err)
	}
	log.Infof("Saved rendered image to %q", output)

	resized := img
	if ap.W > 0 && ap.H > 0 {
		origBounds := img.Bounds()
		target := image.NewRGBA(image.Rect(0, 0, ap.W, ap.H*2))
		if ap.W < origBounds.Dx() {
			draw.BiLinear.Scale(target, target.Bounds(), img, origBounds, draw.Over, nil)
		} else {
			draw.NearestNeighbor.Scale(target, target.Bounds(), img, origBounds, draw.Over, nil)
		}
		resized = target
	}
	_ = ap.ShowScaledImage(resized)
	return 0
}
