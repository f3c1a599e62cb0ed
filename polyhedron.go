package halfedge

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"
)

// FromPolyhedron returns the platonic solid with the given number of faces
// (4, 6, 8, 12 or 20), centered on the origin, with every face wound
// counter-clockwise seen from outside.
func FromPolyhedron(faces int) (*Mesh, error) {
	var (
		vertices []r3.Vec
		cycles   [][]int
	)
	switch faces {
	case 4:
		vertices = []r3.Vec{{X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1}}
		cycles = [][]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}
	case 6:
		vertices = []r3.Vec{
			{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
		}
		cycles = [][]int{
			{0, 1, 2, 3}, {4, 5, 6, 7}, {0, 1, 5, 4},
			{1, 2, 6, 5}, {2, 3, 7, 6}, {3, 0, 4, 7},
		}
	case 8:
		vertices = []r3.Vec{
			{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
		}
		for _, x := range []int{0, 1} {
			for _, y := range []int{2, 3} {
				for _, z := range []int{4, 5} {
					cycles = append(cycles, []int{x, y, z})
				}
			}
		}
	case 20:
		vertices, cycles = icosahedron()
	case 12:
		ico, err := FromPolyhedron(20)
		if err != nil {
			return nil, err
		}
		vertices, cycles, err = dualCycles(ico)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %d faces", ErrUnsupportedPolyhedron, faces)
	}
	orientOutward(vertices, cycles, r3.Vec{})
	return FromVerticesAndFaces(vertices, cycles)
}

// icosahedron returns the 12 vertices (0, ±1, ±φ) and cyclic permutations,
// with faces found as the triples of mutually adjacent vertices.
func icosahedron() ([]r3.Vec, [][]int) {
	phi := (1 + math.Sqrt(5)) / 2
	var vertices []r3.Vec
	for _, a := range []float64{-1, 1} {
		for _, b := range []float64{-phi, phi} {
			vertices = append(vertices,
				r3.Vec{X: 0, Y: a, Z: b},
				r3.Vec{X: a, Y: b, Z: 0},
				r3.Vec{X: b, Y: 0, Z: a},
			)
		}
	}
	// Edge length is 2.
	adjacent := func(i, j int) bool {
		d := r3.Norm2(r3.Sub(vertices[i], vertices[j]))
		return math.Abs(d-4) < 1e-9
	}
	var cycles [][]int
	n := len(vertices)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !adjacent(i, j) {
				continue
			}
			for k := j + 1; k < n; k++ {
				if adjacent(i, k) && adjacent(j, k) {
					cycles = append(cycles, []int{i, j, k})
				}
			}
		}
	}
	return vertices, cycles
}

// dualCycles places a vertex at every face centroid of m and returns one
// cycle per vertex of m, built from its ordered fan.
func dualCycles(m *Mesh) ([]r3.Vec, [][]int, error) {
	index := make(map[FaceKey]int, m.NumFaces())
	vertices := make([]r3.Vec, 0, m.NumFaces())
	for f := range m.Faces() {
		c, err := m.FaceCentroid(f)
		if err != nil {
			return nil, nil, err
		}
		index[f] = len(vertices)
		vertices = append(vertices, c)
	}
	var cycles [][]int
	for v := range m.Vertices() {
		fan, err := m.VertexFaces(v, true)
		if err != nil {
			return nil, nil, err
		}
		cycle := make([]int, len(fan))
		for i, f := range fan {
			cycle[i] = index[f]
		}
		cycles = append(cycles, cycle)
	}
	return vertices, cycles, nil
}

// orientOutward reverses every cycle whose normal points toward center.
// Only valid for convex solids around center.
func orientOutward(vertices []r3.Vec, cycles [][]int, center r3.Vec) {
	for _, cycle := range cycles {
		var normal, centroid r3.Vec
		for i, a := range cycle {
			b := cycle[(i+1)%len(cycle)]
			normal = r3.Add(normal, r3.Cross(vertices[a], vertices[b]))
			centroid = r3.Add(centroid, vertices[a])
		}
		centroid = r3.Scale(1/float64(len(cycle)), centroid)
		if r3.Dot(normal, r3.Sub(centroid, center)) < 0 {
			slices.Reverse(cycle)
		}
	}
}
