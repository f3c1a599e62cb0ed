package halfedge

import (
	"fmt"
	"math"

	geor3 "github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
	"gonum.org/v1/gonum/spatial/r3"
)

const hullEpsilon = 1e-10

// FromPoints returns the convex hull of a 3D point cloud as a closed
// triangle mesh. Points strictly inside the hull are dropped. Coplanar
// point sets have no volume and are rejected with ErrDegenerate.
func FromPoints(points []r3.Vec) (*Mesh, error) {
	if len(points) < 4 {
		return nil, fmt.Errorf("%w: %d points, need at least 4", ErrDegenerate, len(points))
	}
	if !spansVolume(points) {
		return nil, fmt.Errorf("%w: points are coplanar", ErrDegenerate)
	}
	cloud := make([]geor3.Vector, len(points))
	for i, p := range points {
		cloud[i] = geor3.Vector{X: p.X, Y: p.Y, Z: p.Z}
	}
	hull := new(quickhull.QuickHull).ConvexHull(cloud, true, false, hullEpsilon)
	if len(hull.Indices) < 12 || len(hull.Indices)%3 != 0 {
		return nil, fmt.Errorf("%w: hull has no volume", ErrDegenerate)
	}

	vertices := make([]r3.Vec, len(hull.Vertices))
	var center r3.Vec
	for i, v := range hull.Vertices {
		vertices[i] = r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
		center = r3.Add(center, vertices[i])
	}
	center = r3.Scale(1/float64(len(vertices)), center)

	cycles := make([][]int, 0, len(hull.Indices)/3)
	for i := 0; i < len(hull.Indices); i += 3 {
		cycles = append(cycles, []int{hull.Indices[i], hull.Indices[i+1], hull.Indices[i+2]})
	}
	orientOutward(vertices, cycles, center)

	m, err := FromVerticesAndFaces(vertices, cycles)
	if err != nil {
		return nil, fmt.Errorf("convex hull: %w", err)
	}
	m.CullVertices()
	Logger().Debug("halfedge: convex hull",
		"points", len(points), "vertices", m.NumVertices(), "faces", m.NumFaces())
	return m, nil
}

// spansVolume reports whether points are not all on one plane, relative
// to the spread of the point set.
func spansVolume(points []r3.Vec) bool {
	a, b := points[0], points[0]
	for _, p := range points {
		if r3.Norm2(r3.Sub(p, a)) > r3.Norm2(r3.Sub(b, a)) {
			b = p
		}
	}
	ab := r3.Sub(b, a)
	tol := hullEpsilon * r3.Norm(ab)
	if tol == 0 {
		return false
	}

	var normal r3.Vec
	for _, p := range points {
		if n := r3.Cross(ab, r3.Sub(p, a)); r3.Norm(n) > r3.Norm(normal) {
			normal = n
		}
	}
	if r3.Norm(normal) <= tol*r3.Norm(ab) {
		return false
	}
	normal = r3.Unit(normal)
	for _, p := range points {
		if math.Abs(r3.Dot(normal, r3.Sub(p, a))) > tol {
			return true
		}
	}
	return false
}
