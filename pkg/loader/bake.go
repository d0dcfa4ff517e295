package loader

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/mmap"

	"prism/pkg/geometry"
	"prism/pkg/math"
)

// Baked mesh cache: a fixed header followed by raw triangle records. Baking
// skips JSON decoding and fan triangulation on every load of a large mesh;
// the reader maps the file instead of slurping it.

var meshMagic = [4]byte{'P', 'M', 'S', 'H'}

const meshVersion uint32 = 1

type meshHeader struct {
	Magic         [4]byte
	Version       uint32
	TriangleCount uint64
}

type meshTriangle struct {
	P1, P2, P3 [3]float64
}

func packPoint(p math.Point3) [3]float64 {
	return [3]float64{p.X, p.Y, p.Z}
}

func unpackPoint(v [3]float64) math.Point3 {
	return math.Point3{X: v[0], Y: v[1], Z: v[2]}
}

// BakeMesh writes every triangle reachable from g to a binary cache file.
func BakeMesh(g *geometry.Group, path string) error {
	tris := geometry.Triangles(g)
	if len(tris) == 0 {
		return fmt.Errorf("bake: group holds no triangles")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bake: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	hdr := meshHeader{
		Magic:         meshMagic,
		Version:       meshVersion,
		TriangleCount: uint64(len(tris)),
	}
	if err := binary.Write(bw, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("bake: %w", err)
	}
	for _, tri := range tris {
		rec := meshTriangle{
			P1: packPoint(tri.P1),
			P2: packPoint(tri.P2),
			P3: packPoint(tri.P3),
		}
		if err := binary.Write(bw, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("bake: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("bake: %w", err)
	}
	return f.Close()
}

// LoadBakedMesh maps a baked cache file and rebuilds its triangles as a flat
// group. Callers subdivide the result as they see fit.
func LoadBakedMesh(path string) (*geometry.Group, error) {
	ra, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("baked mesh %s: %w", path, err)
	}
	defer ra.Close()

	sr := io.NewSectionReader(ra, 0, int64(ra.Len()))

	var hdr meshHeader
	if err := binary.Read(sr, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("baked mesh %s: header: %w", path, err)
	}
	if hdr.Magic != meshMagic {
		return nil, fmt.Errorf("baked mesh %s: bad magic %q", path, hdr.Magic)
	}
	if hdr.Version != meshVersion {
		return nil, fmt.Errorf("baked mesh %s: unsupported version %d", path, hdr.Version)
	}

	recSize := uint64(binary.Size(meshTriangle{}))
	hdrSize := uint64(binary.Size(meshHeader{}))
	if want := hdrSize + hdr.TriangleCount*recSize; uint64(ra.Len()) < want {
		return nil, fmt.Errorf("baked mesh %s: truncated, %d bytes for %d triangles", path, ra.Len(), hdr.TriangleCount)
	}

	g := geometry.NewGroup()
	for i := uint64(0); i < hdr.TriangleCount; i++ {
		var rec meshTriangle
		if err := binary.Read(sr, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("baked mesh %s: triangle %d: %w", path, i, err)
		}
		g.AddChild(geometry.NewTriangle(
			unpackPoint(rec.P1),
			unpackPoint(rec.P2),
			unpackPoint(rec.P3),
		))
	}
	return g, nil
}

// LoadMeshFile reads a standalone JSON mesh definition ({"vertices", "faces"}),
// the input format cmd/bake converts into the binary cache.
func LoadMeshFile(path string) (*geometry.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh file: %w", err)
	}
	defer f.Close()

	var cfg struct {
		Vertices []Vec3  `json:"vertices"`
		Faces    [][]int `json:"faces"`
	}
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("mesh file %s: %w", path, err)
	}
	if len(cfg.Vertices) == 0 || len(cfg.Faces) == 0 {
		return nil, fmt.Errorf("mesh file %s: needs vertices and faces", path)
	}

	mesh := &geometry.Mesh{Faces: cfg.Faces}
	for _, v := range cfg.Vertices {
		mesh.Vertices = append(mesh.Vertices, v.point())
	}
	return mesh, nil
}
