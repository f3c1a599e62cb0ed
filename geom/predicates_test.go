package geom

import (
	"math"
	"slices"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestIsCCW(t *testing.T) {
	tests := []struct {
		name     string
		a, b, c  r2.Vec
		colinear bool
		want     bool
	}{
		{"counter-clockwise", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 1, Y: 0}, r2.Vec{X: 0, Y: 1}, false, true},
		{"clockwise", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 0, Y: 1}, r2.Vec{X: 1, Y: 0}, false, false},
		{"colinear excluded", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 1, Y: 1}, r2.Vec{X: 2, Y: 2}, false, false},
		{"colinear included", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 1, Y: 1}, r2.Vec{X: 2, Y: 2}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCCW(tt.a, tt.b, tt.c, tt.colinear); got != tt.want {
				t.Errorf("IsCCW() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsPointInTriangle(t *testing.T) {
	ccw := [3]r2.Vec{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}}
	cw := [3]r2.Vec{ccw[0], ccw[2], ccw[1]}
	tests := []struct {
		name     string
		p        r2.Vec
		colinear bool
		want     bool
	}{
		{"inside", r2.Vec{X: 1, Y: 1}, false, true},
		{"outside", r2.Vec{X: 3, Y: 3}, false, false},
		{"on edge excluded", r2.Vec{X: 2, Y: 0}, false, false},
		{"on edge included", r2.Vec{X: 2, Y: 0}, true, true},
		{"vertex included", r2.Vec{X: 4, Y: 0}, true, true},
		{"beyond vertex", r2.Vec{X: 5, Y: 0}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPointInTriangle(tt.p, ccw, tt.colinear); got != tt.want {
				t.Errorf("IsPointInTriangle(ccw) = %v, want %v", got, tt.want)
			}
			if got := IsPointInTriangle(tt.p, cw, tt.colinear); got != tt.want {
				t.Errorf("IsPointInTriangle(cw) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCircleFromPoints(t *testing.T) {
	c, ok := CircleFromPoints(r2.Vec{X: 1, Y: 0}, r2.Vec{X: 0, Y: 1}, r2.Vec{X: -1, Y: 0})
	if !ok {
		t.Fatal("CircleFromPoints() reported colinear points")
	}
	if r2.Norm(c.Center) > 1e-12 || math.Abs(c.Radius-1) > 1e-12 {
		t.Errorf("CircleFromPoints() = %+v, want unit circle", c)
	}

	c, ok = CircleFromPoints(r2.Vec{X: 2, Y: 3}, r2.Vec{X: 6, Y: 3}, r2.Vec{X: 2, Y: 6})
	if !ok {
		t.Fatal("CircleFromPoints() reported colinear points")
	}
	if want := (r2.Vec{X: 4, Y: 4.5}); r2.Norm(r2.Sub(c.Center, want)) > 1e-12 || math.Abs(c.Radius-2.5) > 1e-12 {
		t.Errorf("CircleFromPoints() = %+v, want center %v radius 2.5", c, want)
	}

	if _, ok := CircleFromPoints(r2.Vec{}, r2.Vec{X: 1, Y: 1}, r2.Vec{X: 3, Y: 3}); ok {
		t.Error("CircleFromPoints() accepted colinear points")
	}
}

func TestIsPointInCircle(t *testing.T) {
	c := Circle{Center: r2.Vec{X: 1, Y: 1}, Radius: 2}
	tests := []struct {
		name string
		p    r2.Vec
		want bool
	}{
		{"center", r2.Vec{X: 1, Y: 1}, true},
		{"inside", r2.Vec{X: 2, Y: 2}, true},
		{"on circle", r2.Vec{X: 3, Y: 1}, false},
		{"outside", r2.Vec{X: 4, Y: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPointInCircle(tt.p, c); got != tt.want {
				t.Errorf("IsPointInCircle(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestIsIntersectionSegmentSegment(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c, d r2.Vec
		want       bool
	}{
		{"crossing", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 2, Y: 2}, r2.Vec{X: 0, Y: 2}, r2.Vec{X: 2, Y: 0}, true},
		{"disjoint", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 1, Y: 0}, r2.Vec{X: 0, Y: 1}, r2.Vec{X: 1, Y: 1}, false},
		{"shared endpoint", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 1, Y: 0}, r2.Vec{X: 1, Y: 0}, r2.Vec{X: 1, Y: 1}, false},
		{"t junction", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 2, Y: 0}, r2.Vec{X: 1, Y: 0}, r2.Vec{X: 1, Y: 1}, false},
		{"colinear overlap", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 2, Y: 0}, r2.Vec{X: 1, Y: 0}, r2.Vec{X: 3, Y: 0}, false},
		{"apart on lines that cross", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 1, Y: 1}, r2.Vec{X: 3, Y: 0}, r2.Vec{X: 2, Y: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsIntersectionSegmentSegment(tt.a, tt.b, tt.c, tt.d); got != tt.want {
				t.Errorf("IsIntersectionSegmentSegment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolygons(t *testing.T) {
	square := []r2.Vec{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	clockwise := slices.Clone(square)
	slices.Reverse(clockwise)
	bowtie := []r2.Vec{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2}}

	if got := PolygonArea(square); got != 4 {
		t.Errorf("PolygonArea(square) = %v, want 4", got)
	}
	if got := PolygonArea(clockwise); got != -4 {
		t.Errorf("PolygonArea(clockwise) = %v, want -4", got)
	}

	for _, poly := range [][]r2.Vec{square, clockwise} {
		if !IsPointInPolygon(r2.Vec{X: 1, Y: 1}, poly) {
			t.Error("center not inside square")
		}
		if IsPointInPolygon(r2.Vec{X: 3, Y: 1}, poly) {
			t.Error("outside point reported inside")
		}
	}
	if w := Winding(r2.Vec{X: 1, Y: 1}, square); w != 1 {
		t.Errorf("Winding(ccw) = %d, want 1", w)
	}
	if w := Winding(r2.Vec{X: 1, Y: 1}, clockwise); w != -1 {
		t.Errorf("Winding(cw) = %d, want -1", w)
	}

	if !IsPolygonSimple(square) || !IsPolygonSimple(clockwise) {
		t.Error("square reported as not simple")
	}
	if IsPolygonSimple(bowtie) {
		t.Error("bow-tie reported as simple")
	}
	if IsPolygonSimple(square[:2]) {
		t.Error("two-point polygon reported as simple")
	}
}

func TestPoints(t *testing.T) {
	points := []r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 4, Y: 0, Z: 1}, {X: 4, Y: 3, Z: -1}, {X: 0, Y: 3, Z: 0}}
	if got, want := Centroid(points), (r3.Vec{X: 2, Y: 1.5}); got != want {
		t.Errorf("Centroid() = %v, want %v", got, want)
	}
	if got := Centroid(nil); got != (r3.Vec{}) {
		t.Errorf("Centroid(nil) = %v, want zero", got)
	}

	box := BoundingBox(append(points, r3.Vec{X: math.NaN()}))
	if want := (Box{Min: r3.Vec{Z: -1}, Max: r3.Vec{X: 4, Y: 3, Z: 1}}); box != want {
		t.Errorf("BoundingBox() = %+v, want %+v", box, want)
	}
	if d := box.DiagonalXY(); d != 5 {
		t.Errorf("DiagonalXY() = %v, want 5", d)
	}
	corners := box.Corners()
	if corners[0] != box.Min || corners[6] != box.Max {
		t.Errorf("Corners() = %v", corners)
	}
	if got := BoundingBox(nil); got != (Box{}) {
		t.Errorf("BoundingBox(nil) = %+v, want zero", got)
	}
}

func TestConvexHullXY(t *testing.T) {
	points := []r2.Vec{
		{X: 1, Y: 1}, // interior
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 1, Y: 0}, // colinear on the bottom edge
		{X: 2, Y: 2},
		{X: 0, Y: 2},
	}
	hull := ConvexHullXY(points, false)
	if want := []int{1, 2, 4, 5}; !slices.Equal(hull, want) {
		t.Errorf("ConvexHullXY() = %v, want %v", hull, want)
	}
	poly := make([]r2.Vec, len(hull))
	for i, j := range hull {
		poly[i] = points[j]
	}
	if PolygonArea(poly) <= 0 {
		t.Error("hull is not counter-clockwise")
	}
	if got := ConvexHullXY(points[:2], false); !slices.Equal(got, []int{0, 1}) {
		t.Errorf("ConvexHullXY(2 points) = %v", got)
	}
	if got, want := ConvexHullXY(points, true), []int{1, 3, 2, 4, 5}; !slices.Equal(got, want) {
		t.Errorf("ConvexHullXY(colinear) = %v, want %v", got, want)
	}
}

func TestConvexHullXYGrid(t *testing.T) {
	var grid []r2.Vec
	for x := range 5 {
		for y := range 5 {
			grid = append(grid, r2.Vec{X: float64(x), Y: float64(y)})
		}
	}
	if got := len(ConvexHullXY(grid, false)); got != 4 {
		t.Errorf("corners = %d, want 4", got)
	}
	hull := ConvexHullXY(grid, true)
	if len(hull) != 16 {
		t.Fatalf("boundary points = %d, want 16", len(hull))
	}
	poly := make([]r2.Vec, len(hull))
	for i, j := range hull {
		poly[i] = grid[j]
	}
	if got := PolygonArea(poly); got != 16 {
		t.Errorf("PolygonArea(boundary) = %v, want 16", got)
	}
	for i := range poly {
		a, b := poly[i], poly[(i+1)%len(poly)]
		if d := r2.Norm(r2.Sub(b, a)); d != 1 {
			t.Errorf("boundary step %v -> %v has length %v, want 1", a, b, d)
		}
	}
}

func TestConvexHullXYColinearInput(t *testing.T) {
	line := []r2.Vec{{X: 2}, {X: 0}, {X: 3}, {X: 1}}
	if got, want := ConvexHullXY(line, true), []int{1, 3, 0, 2}; !slices.Equal(got, want) {
		t.Errorf("ConvexHullXY(line) = %v, want %v", got, want)
	}
}
