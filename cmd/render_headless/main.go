package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"prism/pkg/canvas"
	"prism/pkg/loader"
	"prism/pkg/renderer"
)

func main() {
	scenePath := flag.String("scene", "", "path to the scene JSON file")
	outPath := flag.String("out", "render.ppm", "output PPM path")
	workers := flag.Int("workers", 0, "render workers (0 = all CPUs)")
	depth := flag.Int("depth", renderer.DefaultMaxDepth, "reflection/refraction recursion depth")
	flag.Parse()

	if *scenePath == "" {
		fmt.Println("Usage: render_headless -scene=<path_to_scene.json> [-out=render.ppm]")
		os.Exit(1)
	}

	scene, cam, err := loader.LoadScene(*scenePath)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Rendering %dx%d...\n", cam.HSize, cam.VSize)
	start := time.Now()

	cv := canvas.New(cam.HSize, cam.VSize)
	err = renderer.RenderTo(ctx, cam, scene, cv, renderer.Options{Workers: *workers, MaxDepth: *depth})
	if err != nil {
		// A canceled render still holds every finished pixel.
		fmt.Printf("Render stopped: %v (writing partial image)\n", err)
	} else {
		fmt.Printf("Render complete in %v.\n", time.Since(start).Round(time.Millisecond))
	}

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Printf("Failed to create %s: %v\n", *outPath, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := cv.WritePPM(f); err != nil {
		fmt.Printf("Failed to write PPM: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved to %s\n", *outPath)
}
