package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// XY projects p onto the XY plane.
func XY(p r3.Vec) r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// Orient returns twice the signed area of triangle abc: positive when the
// turn a->b->c is counter-clockwise, negative when clockwise, zero when
// the points are colinear.
func Orient(a, b, c r2.Vec) float64 {
	return r2.Cross(r2.Sub(b, a), r2.Sub(c, a))
}

// IsCCW reports whether a->b->c turns counter-clockwise. With colinear set,
// colinear points count as counter-clockwise.
func IsCCW(a, b, c r2.Vec, colinear bool) bool {
	if colinear {
		return Orient(a, b, c) >= 0
	}
	return Orient(a, b, c) > 0
}

// IsPointInTriangle reports whether p lies inside triangle abc, of either
// winding. With colinear set, points on the edges count as inside.
func IsPointInTriangle(p r2.Vec, tri [3]r2.Vec, colinear bool) bool {
	a, b, c := tri[0], tri[1], tri[2]
	o1, o2, o3 := Orient(a, b, p), Orient(b, c, p), Orient(c, a, p)
	if colinear {
		return (o1 >= 0 && o2 >= 0 && o3 >= 0) || (o1 <= 0 && o2 <= 0 && o3 <= 0)
	}
	return (o1 > 0 && o2 > 0 && o3 > 0) || (o1 < 0 && o2 < 0 && o3 < 0)
}

// Circle is a circle in the XY plane.
type Circle struct {
	Center r2.Vec
	Radius float64
}

// CircleFromPoints returns the circle through a, b and c. The boolean is
// false when the points are colinear.
func CircleFromPoints(a, b, c r2.Vec) (Circle, bool) {
	ab := r2.Sub(b, a)
	ac := r2.Sub(c, a)
	e := ab.X*(a.X+b.X) + ab.Y*(a.Y+b.Y)
	f := ac.X*(a.X+c.X) + ac.Y*(a.Y+c.Y)
	g := 2 * (ab.X*(c.Y-b.Y) - ab.Y*(c.X-b.X))
	if g == 0 {
		return Circle{}, false
	}
	center := r2.Vec{
		X: (ac.Y*e - ab.Y*f) / g,
		Y: (ab.X*f - ac.X*e) / g,
	}
	return Circle{Center: center, Radius: r2.Norm(r2.Sub(a, center))}, true
}

// IsPointInCircle reports whether p lies strictly inside c. Points on the
// circle are outside, so cocircular configurations never trigger a flip.
func IsPointInCircle(p r2.Vec, c Circle) bool {
	return r2.Norm(r2.Sub(p, c.Center)) < c.Radius
}

// IsIntersectionSegmentSegment reports whether segments ab and cd cross.
// Touching at an endpoint or overlapping colinearly is not a crossing.
func IsIntersectionSegmentSegment(a, b, c, d r2.Vec) bool {
	return IsCCW(a, c, d, false) != IsCCW(b, c, d, false) &&
		IsCCW(a, b, c, false) != IsCCW(a, b, d, false) &&
		Orient(a, c, d) != 0 && Orient(b, c, d) != 0 &&
		Orient(a, b, c) != 0 && Orient(a, b, d) != 0
}

// IsPointInPolygon reports whether p lies inside polygon using the
// nonzero winding rule. The polygon is implicitly closed.
func IsPointInPolygon(p r2.Vec, polygon []r2.Vec) bool {
	return Winding(p, polygon) != 0
}

// Winding returns the winding number of polygon around p.
func Winding(p r2.Vec, polygon []r2.Vec) int {
	var winding int
	n := len(polygon)
	for i, a := range polygon {
		winding += lineWinding(a, polygon[(i+1)%n], p)
	}
	return winding
}

// lineWinding computes the winding contribution of a line segment.
func lineWinding(p0, p1, pt r2.Vec) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		// Upward crossing
		if Orient(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		// Downward crossing
		if Orient(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// IsPolygonSimple reports whether polygon has at least three vertices and
// no two non-adjacent edges cross.
func IsPolygonSimple(polygon []r2.Vec) bool {
	n := len(polygon)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a, b := polygon[i], polygon[(i+1)%n]
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			if IsIntersectionSegmentSegment(a, b, polygon[j], polygon[(j+1)%n]) {
				return false
			}
		}
	}
	return true
}

// PolygonArea returns the signed area of polygon, positive when it winds
// counter-clockwise.
func PolygonArea(polygon []r2.Vec) float64 {
	var area float64
	n := len(polygon)
	for i, a := range polygon {
		area += r2.Cross(a, polygon[(i+1)%n])
	}
	return area / 2
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
