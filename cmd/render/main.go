package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"prism/pkg/canvas"
	"prism/pkg/loader"
	"prism/pkg/renderer"
)

// Game holds the Ebitengine preview state: the master image the render
// workers blit finished bands into.
type Game struct {
	Width, Height int
	MasterImage   *image.RGBA
	mu            *sync.Mutex
}

// Update proceeds the game state. The preview has none.
func (g *Game) Update() error {
	return nil
}

// Draw copies the master image to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.MasterImage != nil {
		screen.WritePixels(g.MasterImage.Pix)
	}
}

// Layout returns the logical screen size, which matches the raster.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width, g.Height
}

const sampleScene = `{
  "camera": {
    "width": 512, "height": 512, "fov": 60,
    "from": [0, 1.5, -5], "to": [0, 1, 0], "up": [0, 1, 0]
  },
  "light": {"at": [-10, 10, -10], "intensity": [1, 1, 1]},
  "shapes": [
    {"type": "plane", "material": {"pattern": {
      "type": "checkered", "colors": [[0.8, 0.8, 0.8], [0.3, 0.3, 0.3]]
    }}},
    {"type": "sphere", "transform": [{"op": "translate", "args": [-0.5, 1, 0.5]}],
     "material": {"color": [0.1, 1, 0.5], "diffuse": 0.7, "specular": 0.3, "reflective": 0.1}},
    {"type": "sphere", "radius": 0.5,
     "transform": [{"op": "translate", "args": [1.5, 0.5, -0.5]}],
     "material": {"preset": "glass"}}
  ]
}`

func main() {
	scenePath := flag.String("scene", "", "path to the scene JSON file")
	outPath := flag.String("out", "render.png", "output image path")
	workers := flag.Int("workers", 0, "render workers (0 = all CPUs)")
	depth := flag.Int("depth", renderer.DefaultMaxDepth, "reflection/refraction recursion depth")
	fb := flag.Bool("fb", false, "show a live preview window")
	flag.Parse()

	if *scenePath == "" {
		fmt.Println("Error: scene file not provided.")
		fmt.Println("Usage: render -scene=<path_to_scene.json> [-out=render.png] [-fb]")
		fmt.Println("\nSample scene JSON:")
		fmt.Println(sampleScene)
		os.Exit(1)
	}

	scene, cam, err := loader.LoadScene(*scenePath)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	width, height := cam.HSize, cam.VSize
	cv := canvas.New(width, height)
	master := image.NewRGBA(image.Rect(0, 0, width, height))
	var mu sync.Mutex

	opts := renderer.Options{
		Workers:  *workers,
		MaxDepth: *depth,
		Progress: func(y0, y1 int) {
			mu.Lock()
			cv.CopyRowsRGBA(master, y0, y1)
			mu.Unlock()
		},
	}

	saveImage := func() {
		mu.Lock()
		defer mu.Unlock()

		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", *outPath, err)
		}
		defer f.Close()
		if err := png.Encode(f, cv.RGBA()); err != nil {
			log.Fatalf("Failed to encode PNG: %v", err)
		}
		fmt.Printf("Saved to %s\n", *outPath)
	}

	fmt.Printf("Rendering %dx%d...\n", width, height)
	start := time.Now()

	done := make(chan error, 1)
	go func() {
		done <- renderer.RenderTo(ctx, cam, scene, cv, opts)
	}()

	if *fb {
		// Save in the background when the render finishes; the window stays
		// open until closed.
		go func() {
			if err := <-done; err != nil {
				fmt.Printf("Render stopped: %v\n", err)
			} else {
				fmt.Printf("Render complete in %v.\n", time.Since(start).Round(time.Millisecond))
			}
			saveImage()
		}()

		game := &Game{Width: width, Height: height, MasterImage: master, mu: &mu}
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("Prism Live Preview")
		if err := ebiten.RunGame(game); err != nil {
			log.Fatalf("Ebitengine error: %v", err)
		}
		return
	}

	if err := <-done; err != nil {
		fmt.Printf("Render stopped: %v (saving partial image)\n", err)
	} else {
		fmt.Printf("Render complete in %v.\n", time.Since(start).Round(time.Millisecond))
	}
	saveImage()
}
