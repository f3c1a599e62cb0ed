// Command meshdemo builds a mesh, either a polyhedron given in Conway
// notation or a Delaunay triangulation of random points, prints its
// counts and saves a wireframe image.
package main

import (
	"flag"
	"image/png"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/gogpu/halfedge"
	"github.com/gogpu/halfedge/conway"
	"github.com/gogpu/halfedge/delaunay"
	"github.com/gogpu/halfedge/internal/plot"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/spatial/r2"
)

func main() {
	var (
		notation = flag.String("notation", "C", "Conway notation ending in a seed letter T, C, O, D or I, e.g. \"tkC\"")
		points   = flag.Int("points", 0, "triangulate this many random points instead of using a polyhedron")
		seed     = flag.Uint64("rand-seed", 1, "random seed for -points")
		width    = flag.Int("width", 800, "image width")
		height   = flag.Int("height", 600, "image height")
		output   = flag.String("output", "mesh.png", "output file")
		verbose  = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	if *verbose {
		halfedge.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var (
		m       *halfedge.Mesh
		caption string
		err     error
	)
	if *points > 0 {
		m, err = triangulate(*points, *seed)
		caption = "delaunay"
	} else {
		m, err = conway.Build(*notation)
		caption = *notation
	}
	if err != nil {
		log.Fatalf("Failed to build mesh: %v", err)
	}

	p := message.NewPrinter(language.English)
	p.Printf("%s: %d vertices, %d edges, %d faces (Euler characteristic %d)\n",
		caption, m.NumVertices(), m.NumEdges(), m.NumFaces(), m.Euler())

	opts := plot.DefaultOptions()
	opts.Width, opts.Height = *width, *height
	opts.Caption = caption
	if *points > 0 {
		opts.Yaw, opts.Pitch = 0, 0
	}
	img, err := plot.Wireframe(m, opts)
	if err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		log.Fatalf("Failed to save: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Mesh saved to %s (%dx%d)\n", *output, *width, *height)
}

func triangulate(n int, seed uint64) (*halfedge.Mesh, error) {
	rng := rand.New(rand.NewPCG(seed, seed))
	pts := make([]r2.Vec, n)
	for i := range pts {
		pts[i] = r2.Vec{X: rng.Float64(), Y: rng.Float64()}
	}
	return delaunay.TriangulateMesh(pts, delaunay.WithRand(rng))
}
