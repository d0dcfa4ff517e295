package main

import (
	"flag"
	"fmt"
	"os"

	"prism/pkg/geometry"
	"prism/pkg/loader"
)

func main() {
	meshPath := flag.String("mesh", "", "path to a JSON mesh file ({vertices, faces})")
	outPath := flag.String("out", "mesh.bin", "output baked mesh file")
	flag.Parse()

	if *meshPath == "" {
		fmt.Println("Usage: bake -mesh=<path_to_mesh.json> [-out=mesh.bin]")
		os.Exit(1)
	}

	mesh, err := loader.LoadMeshFile(*meshPath)
	if err != nil {
		fmt.Printf("Error loading mesh: %v\n", err)
		os.Exit(1)
	}

	group, err := mesh.Group()
	if err != nil {
		fmt.Printf("Error triangulating mesh: %v\n", err)
		os.Exit(1)
	}

	tris := len(geometry.Triangles(group))
	fmt.Printf("Baking %d faces (%d triangles) to %s\n", len(mesh.Faces), tris, *outPath)

	if err := loader.BakeMesh(group, *outPath); err != nil {
		fmt.Printf("Error during bake: %v\n", err)
		os.Exit(1)
	}

	// Read the file back through the mmap path before declaring success.
	loaded, err := loader.LoadBakedMesh(*outPath)
	if err != nil {
		fmt.Printf("Error verifying bake: %v\n", err)
		os.Exit(1)
	}
	if got := len(geometry.Triangles(loaded)); got != tris {
		fmt.Printf("Bake verification failed: %d triangles in, %d out\n", tris, got)
		os.Exit(1)
	}

	fmt.Println("Bake completed successfully.")
}
