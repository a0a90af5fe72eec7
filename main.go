package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"
	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/imagewriter"
	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/renderer"
	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/scene"
)

// renderOptions override the scene's recommended settings. Zero values keep the scene's choice.
type renderOptions struct {
	Width    int
	Height   int
	Samples  int
	Adaptive bool
	MaxLevel int
	Threads  int
	Progress float64
	Output   string
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "basic", "Built-in scene ID (see -list)")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	height := flag.Int("height", 0, "Image height in pixels (0 = scene default)")
	samples := flag.Int("samples", 0, "Rays per pixel, a perfect square (0 = scene default)")
	adaptive := flag.Bool("adaptive", false, "Force adaptive anti-aliasing on")
	maxLevel := flag.Int("level", 0, "Adaptive subdivision depth (0 = default)")
	threads := flag.Int("threads", renderer.ThreadsAuto, "Workers: 0 sequential, -1 bulk, -2 auto, n>0 fixed pool")
	progress := flag.Float64("progress", 10, "Percent between progress reports (0 disables)")
	output := flag.String("output", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	list := flag.Bool("list", false, "List built-in scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Phong Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		printScenes()
		return
	}
	if *list {
		printScenes()
		return
	}

	opts := renderOptions{
		Width:    *width,
		Height:   *height,
		Samples:  *samples,
		Adaptive: *adaptive,
		MaxLevel: *maxLevel,
		Threads:  *threads,
		Progress: *progress,
		Output:   *output,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *sceneType, opts, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run renders one built-in scene to a PNG file
func run(ctx context.Context, sceneType string, opts renderOptions, logger core.Logger) error {
	s, err := createScene(sceneType)
	if err != nil {
		return err
	}
	logger.Printf("Using %s scene (%d shapes, %d lights)...\n", s.Name, s.GetPrimitiveCount(), len(s.Lights))

	camera, rt, err := setupRender(s, opts)
	if err != nil {
		return err
	}

	sampling := applyOverrides(s.Sampling, opts)
	path := opts.Output
	if path == "" {
		path = filepath.Join(createOutputDir(sceneType), fmt.Sprintf("render_%s.png", time.Now().Format("20060102_150405")))
	}

	image, err := imagewriter.NewImageWriter(path, sampling.Width, sampling.Height)
	if err != nil {
		return err
	}

	stats, err := camera.Render(ctx, rt, image, logger)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", sceneType, err)
	}
	logger.Printf("Samples per pixel: %.1f (range %d - %d)\n",
		stats.AverageSamples, stats.MinSamples, stats.MaxSamplesUsed)

	if s.Grid.Interval > 0 {
		if err := camera.PrintGrid(image, s.Grid.Interval, s.Grid.Color); err != nil {
			logger.Printf("Skipping grid: %v\n", err)
		}
	}

	if err := image.Save(); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", image.Path())
	return nil
}

// createScene builds a built-in scene by ID
func createScene(sceneType string) (*scene.Scene, error) {
	return scene.NewBuiltinScene(sceneType)
}

// createOutputDir returns the directory renders of a scene are saved under
func createOutputDir(sceneType string) string {
	if sceneType == "" {
		sceneType = "scene"
	}
	return filepath.Join("output", filepath.Base(sceneType))
}

// applyOverrides merges command line overrides into the scene's sampling settings
func applyOverrides(sampling scene.SamplingConfig, opts renderOptions) scene.SamplingConfig {
	if opts.Width > 0 {
		sampling.Width = opts.Width
	}
	if opts.Height > 0 {
		sampling.Height = opts.Height
	}
	if opts.Samples > 0 {
		sampling.SamplesPerPixel = opts.Samples
	}
	if opts.Adaptive {
		sampling.AdaptiveSampling = true
	}
	return sampling
}

// setupRender builds the camera and ray tracer for a scene
func setupRender(s *scene.Scene, opts renderOptions) (*renderer.Camera, *renderer.RayTracer, error) {
	sampling := applyOverrides(s.Sampling, opts)

	cfg := renderer.CameraConfigFromView(s.View, sampling)
	cfg.Threads = opts.Threads
	cfg.ProgressInterval = opts.Progress

	camera, err := renderer.NewCamera(cfg)
	if err != nil {
		return nil, nil, err
	}

	rt := renderer.NewRayTracer(s)
	samplingConfig := rt.GetSamplingConfig()
	samplingConfig.AdaptiveSampling = sampling.AdaptiveSampling
	if opts.MaxLevel > 0 {
		samplingConfig.AdaptiveMaxLevel = opts.MaxLevel
	}
	rt.SetSamplingConfig(samplingConfig)

	return camera, rt, nil
}

func printScenes() {
	fmt.Println("Available scenes:")
	for _, info := range scene.ListBuiltinScenes() {
		fmt.Printf("  %-20s %s\n", info.ID, info.Description)
	}
}
