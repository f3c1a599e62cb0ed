package delaunay

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/gogpu/halfedge"
	"github.com/gogpu/halfedge/geom"
	"gonum.org/v1/gonum/spatial/r2"
)

func randomPoints(n int, seed uint64) []r2.Vec {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	points := make([]r2.Vec, n)
	for i := range points {
		points[i] = r2.Vec{X: 10 * rng.Float64(), Y: 10 * rng.Float64()}
	}
	return points
}

func triangleCoordinates(t *testing.T, m *halfedge.Mesh, f halfedge.FaceKey) [3]r2.Vec {
	t.Helper()
	pts, err := m.FaceCoordinates(f)
	if err != nil {
		t.Fatalf("FaceCoordinates(%d) = %v", f, err)
	}
	if len(pts) != 3 {
		t.Fatalf("face %d has %d vertices, want 3", f, len(pts))
	}
	return [3]r2.Vec{geom.XY(pts[0]), geom.XY(pts[1]), geom.XY(pts[2])}
}

func TestTriangulateEmptyCircumcircle(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3} {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			points := randomPoints(40, seed)
			m, err := TriangulateMesh(points)
			if err != nil {
				t.Fatalf("TriangulateMesh() = %v", err)
			}
			if err := m.Validate(); err != nil {
				t.Fatalf("Validate() = %v", err)
			}
			for f := range m.Faces() {
				tri := triangleCoordinates(t, m, f)
				circle, ok := geom.CircleFromPoints(tri[0], tri[1], tri[2])
				if !ok {
					t.Fatalf("face %d is degenerate", f)
				}
				// Shrink slightly so points on the circle are not reported.
				circle.Radius *= 1 - 1e-9
				for v := range m.Vertices() {
					p, _ := m.Vertex(v)
					if geom.IsPointInCircle(geom.XY(p), circle) {
						t.Errorf("vertex %d lies inside the circumcircle of face %d", v, f)
					}
				}
			}
		})
	}
}

func TestTriangulateCounts(t *testing.T) {
	configs := []struct {
		name string
		opts []Option
	}{
		{"default", nil},
		{"wide super triangle", []Option{WithSuperTriangleScale(1e4)}},
	}
	for _, cfg := range configs {
		for _, seed := range []uint64{7, 11, 13} {
			t.Run(fmt.Sprintf("%s/seed=%d", cfg.name, seed), func(t *testing.T) {
				const n = 20
				points := randomPoints(n, seed)
				m, err := TriangulateMesh(points, cfg.opts...)
				if err != nil {
					t.Fatalf("TriangulateMesh() = %v", err)
				}
				b := len(geom.ConvexHullXY(points, true))
				if got, want := m.NumFaces(), 2*n-2-b; got != want {
					t.Errorf("NumFaces() = %d, want %d (hull size %d)", got, want, b)
				}
				if got, want := m.NumEdges(), 3*n-3-b; got != want {
					t.Errorf("NumEdges() = %d, want %d (hull size %d)", got, want, b)
				}
				if m.NumVertices() != n {
					t.Errorf("NumVertices() = %d, want %d", m.NumVertices(), n)
				}
			})
		}
	}
}

func TestTriangulateCounterClockwise(t *testing.T) {
	m, err := TriangulateMesh(randomPoints(30, 5))
	if err != nil {
		t.Fatalf("TriangulateMesh() = %v", err)
	}
	for f := range m.Faces() {
		tri := triangleCoordinates(t, m, f)
		if geom.Orient(tri[0], tri[1], tri[2]) <= 0 {
			t.Errorf("face %d is not counter-clockwise", f)
		}
	}
}

func TestTriangulateCocircular(t *testing.T) {
	const n = 12
	points := make([]r2.Vec, n)
	for i := range points {
		a := 2 * math.Pi * float64(i) / n
		points[i] = r2.Vec{X: math.Cos(a), Y: math.Sin(a)}
	}
	tris, err := Triangulate(points)
	if err != nil {
		t.Fatalf("Triangulate() = %v", err)
	}
	if len(tris) != n-2 {
		t.Errorf("len(tris) = %d, want %d", len(tris), n-2)
	}
}

func TestTriangulateIndices(t *testing.T) {
	points := []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	tris, err := Triangulate(points)
	if err != nil {
		t.Fatalf("Triangulate() = %v", err)
	}
	if len(tris) != 1 {
		t.Fatalf("len(tris) = %d, want 1", len(tris))
	}
	got := tris[0][:]
	slices.Sort(got)
	if !slices.Equal(got, []int{0, 1, 2}) {
		t.Errorf("triangle = %v, want the three input points", tris[0])
	}
}

func TestTriangulateReproducible(t *testing.T) {
	points := randomPoints(25, 42)
	first, err := Triangulate(points)
	if err != nil {
		t.Fatalf("Triangulate() = %v", err)
	}
	second, err := Triangulate(points)
	if err != nil {
		t.Fatalf("Triangulate() = %v", err)
	}
	if !slices.Equal(first, second) {
		t.Error("two runs with the default random source differ")
	}

	seeded := func() *rand.Rand { return rand.New(rand.NewPCG(9, 9)) }
	a, err := Triangulate(points, WithRand(seeded()))
	if err != nil {
		t.Fatalf("Triangulate(WithRand) = %v", err)
	}
	b, err := Triangulate(points, WithRand(seeded()))
	if err != nil {
		t.Fatalf("Triangulate(WithRand) = %v", err)
	}
	if !slices.Equal(a, b) {
		t.Error("two runs with equally seeded sources differ")
	}
}

func TestTriangulateBoundaryAndHoles(t *testing.T) {
	points := randomPoints(60, 17)
	boundary := []r2.Vec{{X: 1, Y: 1}, {X: 9, Y: 1}, {X: 9, Y: 9}, {X: 1, Y: 9}}
	hole := []r2.Vec{{X: 4, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 6}, {X: 4, Y: 6}}
	points = append(points, boundary...)
	points = append(points, hole...)

	full, err := TriangulateMesh(points)
	if err != nil {
		t.Fatalf("TriangulateMesh() = %v", err)
	}
	m, err := TriangulateMesh(points, WithBoundary(boundary), WithHoles(hole))
	if err != nil {
		t.Fatalf("TriangulateMesh(WithBoundary, WithHoles) = %v", err)
	}
	if m.NumFaces() >= full.NumFaces() {
		t.Errorf("trimmed NumFaces() = %d, want fewer than %d", m.NumFaces(), full.NumFaces())
	}
	if m.NumFaces() == 0 {
		t.Fatal("trimming removed every triangle")
	}
	if m.NumVertices() != len(points) {
		t.Errorf("NumVertices() = %d, want %d", m.NumVertices(), len(points))
	}
	for f := range m.Faces() {
		c, err := m.FaceCentroid(f)
		if err != nil {
			t.Fatalf("FaceCentroid(%d) = %v", f, err)
		}
		if !geom.IsPointInPolygon(geom.XY(c), boundary) {
			t.Errorf("face %d centroid %v lies outside the boundary", f, c)
		}
		if geom.IsPointInPolygon(geom.XY(c), hole) {
			t.Errorf("face %d centroid %v lies inside the hole", f, c)
		}
	}
}

func TestTriangulateErrors(t *testing.T) {
	square := []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	bowtie := []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	tests := []struct {
		name   string
		points []r2.Vec
		opts   []Option
		want   error
	}{
		{name: "no points", want: ErrTooFewPoints},
		{name: "two points", points: square[:2], want: ErrTooFewPoints},
		{
			name:   "coincident points",
			points: []r2.Vec{{X: 3, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 3}},
			opts:   []Option{WithTolerance(0)},
			want:   ErrZeroExtent,
		},
		{name: "short boundary", points: square, opts: []Option{WithBoundary(square[:2])}, want: ErrInvalidPolygon},
		{name: "self-intersecting boundary", points: square, opts: []Option{WithBoundary(bowtie)}, want: ErrInvalidPolygon},
		{name: "self-intersecting hole", points: square, opts: []Option{WithHoles(square, bowtie)}, want: ErrInvalidPolygon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Triangulate(tt.points, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("Triangulate() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTriangulateMaxFlips(t *testing.T) {
	points := randomPoints(50, 3)
	_, err := Triangulate(points, WithMaxFlips(1))
	if !errors.Is(err, ErrDegenerateInput) {
		t.Fatalf("Triangulate(WithMaxFlips(1)) error = %v, want ErrDegenerateInput", err)
	}
	var degenerate *DegenerateInputError
	if !errors.As(err, &degenerate) {
		t.Fatalf("error %T is not a *DegenerateInputError", err)
	}
	if degenerate.Index < 0 || degenerate.Index >= len(points) {
		t.Fatalf("Index = %d out of range", degenerate.Index)
	}
	if degenerate.Point != points[degenerate.Index] {
		t.Errorf("Point = %v, want input point %v", degenerate.Point, points[degenerate.Index])
	}
	if degenerate.Flips != 1 {
		t.Errorf("Flips = %d, want 1", degenerate.Flips)
	}
}

func ExampleTriangulate() {
	points := []r2.Vec{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 0, Y: 3}, {X: 2, Y: 1},
	}
	tris, err := Triangulate(points)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(tris), "triangles")
	// Output: 4 triangles
}

func BenchmarkTriangulate(b *testing.B) {
	for _, n := range []int{100, 500} {
		points := randomPoints(n, 1)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Triangulate(points); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
