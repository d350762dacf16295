package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/mixedlight/pathtracer/pkg/core"
	"github.com/mixedlight/pathtracer/pkg/renderer"
	"github.com/mixedlight/pathtracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "cornell", "Scene type: 'cornell' or 'sky'")
	iterations := flag.Int("iterations", 64, "Number of progressive iterations")
	outputDir := flag.String("output", "output", "Output directory")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Mixed-lobe path tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  cornell - Cornell-style box with a triangle area light and glossy sphere")
		fmt.Println("  sky     - Diffuse sphere under a uniform environment light")
		return
	}

	var selectedScene *scene.Scene
	var width, height int

	switch *sceneType {
	case "cornell":
		selectedScene = scene.NewCornellScene()
		width, height = 400, 400
	case "sky":
		selectedScene = scene.NewSphereSkyScene()
		width, height = 400, 225
	default:
		fmt.Printf("Unknown scene type: %s. Using cornell scene.\n", *sceneType)
		selectedScene = scene.NewCornellScene()
		width, height = 400, 400
		*sceneType = "cornell"
	}

	camera := cameraForScene(*sceneType, width, height)
	logger := renderer.NewDefaultLogger()
	tracer := renderer.NewPathTracer(selectedScene, camera, renderer.DefaultConfig(), logger)

	fmt.Printf("Rendering %s scene (%dx%d, %d iterations)...\n",
		*sceneType, width, height, *iterations)
	start := time.Now()
	for iter := 0; iter < *iterations; iter++ {
		tracer.Iterate(iter)
	}
	fmt.Printf("Render completed in %v\n", time.Since(start))

	if err := saveImage(tracer, *iterations, *outputDir, *sceneType); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving image: %v\n", err)
		os.Exit(1)
	}
}

// cameraForScene positions the camera for the built-in scenes
func cameraForScene(sceneType string, width, height int) *renderer.Camera {
	config := renderer.CameraConfig{
		Up:     core.NewVec3(0, 1, 0),
		Width:  width,
		Height: height,
	}
	switch sceneType {
	case "cornell":
		config.Center = core.NewVec3(278, 278, -800)
		config.LookAt = core.NewVec3(278, 278, 0)
		config.VFov = 40.0
	default:
		config.Center = core.NewVec3(0, 0, 0)
		config.LookAt = core.NewVec3(0, 0, -1)
		config.VFov = 60.0
	}
	return renderer.NewCamera(config)
}

// saveImage writes the accumulated framebuffer as a PNG
func saveImage(tracer *renderer.PathTracer, iterations int, outputDir, sceneType string) error {
	dir := filepath.Join(outputDir, sceneType)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	filename := filepath.Join(dir, fmt.Sprintf("render_%s.png", time.Now().Format("20060102_150405")))
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	img := tracer.Framebuffer().ToImage(iterations, 2.2)
	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}

	fmt.Printf("Image saved to %s\n", filename)
	return nil
}
