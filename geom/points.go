package geom

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Centroid returns the arithmetic mean of points, or the zero vector for
// an empty slice.
func Centroid(points []r3.Vec) r3.Vec {
	if len(points) == 0 {
		return r3.Vec{}
	}
	var sum r3.Vec
	for _, p := range points {
		sum = r3.Add(sum, p)
	}
	return r3.Scale(1/float64(len(points)), sum)
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max r3.Vec
}

// BoundingBox returns the smallest box containing points. Non-finite
// coordinates are ignored; an empty input yields the zero Box.
func BoundingBox(points []r3.Vec) Box {
	box := Box{
		Min: r3.Vec{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: r3.Vec{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
	empty := true
	for _, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) || !isFinite(p.Z) {
			continue
		}
		empty = false
		box.Min = r3.Vec{X: min(box.Min.X, p.X), Y: min(box.Min.Y, p.Y), Z: min(box.Min.Z, p.Z)}
		box.Max = r3.Vec{X: max(box.Max.X, p.X), Y: max(box.Max.Y, p.Y), Z: max(box.Max.Z, p.Z)}
	}
	if empty {
		return Box{}
	}
	return box
}

// Corners returns the eight corners of the box: the bottom rectangle
// (Z = Min.Z) counter-clockwise from Min, then the top rectangle.
func (b Box) Corners() [8]r3.Vec {
	lo, hi := b.Min, b.Max
	return [8]r3.Vec{
		{X: lo.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: lo.Y, Z: hi.Z},
		{X: hi.X, Y: lo.Y, Z: hi.Z},
		{X: hi.X, Y: hi.Y, Z: hi.Z},
		{X: lo.X, Y: hi.Y, Z: hi.Z},
	}
}

// DiagonalXY returns the length of the box diagonal in the XY plane.
func (b Box) DiagonalXY() float64 {
	return r2.Norm(r2.Sub(XY(b.Max), XY(b.Min)))
}

// ConvexHullXY returns the indices of the convex hull vertices of points in
// counter-clockwise order (Andrew's monotone chain). With colinear set,
// points lying strictly inside hull edges are included in order along the
// edge, so the result counts every point on the hull boundary; otherwise
// only the corners are returned.
func ConvexHullXY(points []r2.Vec, colinear bool) []int {
	hull := hullCorners(points)
	if !colinear || len(hull) < 2 {
		return hull
	}
	edges := len(hull)
	if edges == 2 {
		// All points on one line: walk it once.
		edges = 1
	}
	out := make([]int, 0, len(points))
	for k, i := range hull {
		out = append(out, i)
		if k < edges {
			out = append(out, pointsOnSegment(points, points[i], points[hull[(k+1)%len(hull)]])...)
		}
	}
	return out
}

// pointsOnSegment returns the indices of points strictly between a and b,
// sorted by distance from a.
func pointsOnSegment(points []r2.Vec, a, b r2.Vec) []int {
	var on []int
	for i, p := range points {
		if p == a || p == b || Orient(a, b, p) != 0 {
			continue
		}
		if r2.Dot(r2.Sub(p, a), r2.Sub(b, p)) > 0 {
			on = append(on, i)
		}
	}
	slices.SortFunc(on, func(i, j int) int {
		return cmp.Compare(r2.Norm2(r2.Sub(points[i], a)), r2.Norm2(r2.Sub(points[j], a)))
	})
	return on
}

func hullCorners(points []r2.Vec) []int {
	n := len(points)
	if n < 3 {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(i, j int) int {
		a, b := points[i], points[j]
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		case a.Y < b.Y:
			return -1
		case a.Y > b.Y:
			return 1
		}
		return 0
	})

	hull := make([]int, 0, 2*n)
	for _, i := range order {
		for len(hull) >= 2 && Orient(points[hull[len(hull)-2]], points[hull[len(hull)-1]], points[i]) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, i)
	}
	lower := len(hull) + 1
	for k := n - 2; k >= 0; k-- {
		i := order[k]
		for len(hull) >= lower && Orient(points[hull[len(hull)-2]], points[hull[len(hull)-1]], points[i]) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, i)
	}
	return hull[:len(hull)-1]
}
