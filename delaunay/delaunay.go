// Package delaunay computes Delaunay triangulations of planar point sets by
// incremental insertion into a half-edge mesh with local edge flipping.
//
// Points are jittered by a tiny random amount to break exact cocircular
// configurations, inserted one at a time into a super-triangle enclosing
// them all, and the Delaunay condition is restored around each new point
// by flipping edges whose opposite vertex falls inside the circumcircle.
// Finally the super-triangle is removed and, optionally, triangles outside
// a boundary polygon or inside hole polygons are dropped.
package delaunay

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/gogpu/halfedge"
	"github.com/gogpu/halfedge/geom"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangulate returns the Delaunay triangles of points as triples of point
// indices, wound counter-clockwise.
func Triangulate(points []r2.Vec, opts ...Option) ([][3]int, error) {
	m, err := TriangulateMesh(points, opts...)
	if err != nil {
		return nil, err
	}
	tris := make([][3]int, 0, m.NumFaces())
	for f := range m.Faces() {
		vs, err := m.FaceVertices(f)
		if err != nil {
			return nil, err
		}
		tris = append(tris, [3]int{int(vs[0]), int(vs[1]), int(vs[2])})
	}
	return tris, nil
}

// TriangulateMesh is Triangulate returning the mesh itself. Vertex i of
// the mesh is input point i, placed at its jittered position with Z = 0.
// Points left without triangles by boundary or hole trimming remain as
// isolated vertices.
func TriangulateMesh(points []r2.Vec, opts ...Option) (*halfedge.Mesh, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}
	if o.boundary != nil && !geom.IsPolygonSimple(o.boundary) {
		return nil, fmt.Errorf("%w: boundary", ErrInvalidPolygon)
	}
	for i, hole := range o.holes {
		if !geom.IsPolygonSimple(hole) {
			return nil, fmt.Errorf("%w: hole %d", ErrInvalidPolygon, i)
		}
	}
	rng := o.rng
	if rng == nil {
		rng = rand.New(rand.NewPCG(defaultSeed, defaultSeed))
	}

	n := len(points)
	t := &triangulator{
		mesh:     halfedge.New(),
		points:   make([]r2.Vec, n),
		maxFlips: o.maxFlips,
	}
	if t.maxFlips <= 0 {
		t.maxFlips = 3 * (n + 3)
	}
	for i, p := range points {
		t.points[i] = r2.Vec{
			X: p.X + (2*rng.Float64()-1)*o.tolerance,
			Y: p.Y + (2*rng.Float64()-1)*o.tolerance,
		}
	}

	if err := t.addSuperTriangle(o.scale); err != nil {
		return nil, err
	}
	for i := range t.points {
		if err := t.insert(i); err != nil {
			var degenerate *DegenerateInputError
			if errors.As(err, &degenerate) {
				degenerate.Point = points[i]
			}
			return nil, err
		}
	}
	for k := range 3 {
		t.mesh.DeleteVertex(halfedge.VertexKey(n + k))
	}

	trimmed := 0
	if o.boundary != nil {
		trimmed += t.trim(func(c r2.Vec) bool { return !geom.IsPointInPolygon(c, o.boundary) })
	}
	for _, hole := range o.holes {
		trimmed += t.trim(func(c r2.Vec) bool { return geom.IsPointInPolygon(c, hole) })
	}

	halfedge.Logger().Debug("delaunay: triangulated",
		"points", n, "triangles", t.mesh.NumFaces(), "flips", t.flips, "trimmed", trimmed)
	return t.mesh, nil
}

type triangulator struct {
	mesh     *halfedge.Mesh
	points   []r2.Vec // jittered input
	maxFlips int
	flips    int
}

// addSuperTriangle registers vertices n, n+1, n+2 forming a triangle
// centered on the centroid of the points and scale times larger than
// their bounding box diagonal.
func (t *triangulator) addSuperTriangle(scale float64) error {
	pts := make([]r3.Vec, len(t.points))
	for i, p := range t.points {
		pts[i] = r3.Vec{X: p.X, Y: p.Y}
	}
	c := geom.Centroid(pts)
	d := geom.BoundingBox(pts).DiagonalXY() * scale
	if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return ErrZeroExtent
	}

	// Equilateral around c; the lower corners sit at -d, the apex at 2d.
	const sqrt3 = 1.7320508075688772
	corners := [3]r3.Vec{
		{X: c.X, Y: c.Y + 2*d},
		{X: c.X + sqrt3*d, Y: c.Y - d},
		{X: c.X - sqrt3*d, Y: c.Y - d},
	}
	n := halfedge.VertexKey(len(t.points))
	for k, p := range corners {
		if err := t.mesh.AddVertexKey(n+halfedge.VertexKey(k), p); err != nil {
			return err
		}
	}
	_, err := t.mesh.AddFace([]halfedge.VertexKey{n, n + 2, n + 1})
	return err
}

// insert adds point i and flips edges until every triangle around it is
// locally Delaunay again.
func (t *triangulator) insert(i int) error {
	p := t.points[i]
	f, ok := t.locate(p)
	if !ok {
		return fmt.Errorf("%w: point %d (%g, %g) lies in no triangle", halfedge.ErrTopology, i, p.X, p.Y)
	}
	key := halfedge.VertexKey(i)
	stack, err := t.mesh.InsertVertexKey(f, key, r3.Vec{X: p.X, Y: p.Y})
	if err != nil {
		return err
	}

	flips := 0
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !t.mesh.HasFace(f) {
			continue
		}
		// f is (key, u, v); the edge to check is u->v.
		u, err := t.mesh.FaceVertexDescendant(f, key)
		if err != nil {
			return err
		}
		v, err := t.mesh.FaceVertexDescendant(f, u)
		if err != nil {
			return err
		}
		g, ok := t.mesh.Halfedge(v, u)
		if !ok {
			continue
		}
		opp, err := t.mesh.FaceCoordinates(g)
		if err != nil {
			return err
		}
		circle, ok := geom.CircleFromPoints(geom.XY(opp[0]), geom.XY(opp[1]), geom.XY(opp[2]))
		if !ok || !geom.IsPointInCircle(p, circle) {
			continue
		}
		if flips >= t.maxFlips {
			return &DegenerateInputError{Index: i, Point: p, Flips: flips}
		}
		a, b, err := t.mesh.SwapEdge(u, v)
		if errors.Is(err, halfedge.ErrTopology) {
			halfedge.Logger().Warn("delaunay: skipped flip", "point", i, "u", u, "v", v, "err", err)
			continue
		}
		if err != nil {
			return err
		}
		flips++
		stack = append(stack, a, b)
	}
	t.flips += flips
	return nil
}

// locate returns the first triangle containing p, edges included, by a
// linear scan over the faces.
func (t *triangulator) locate(p r2.Vec) (halfedge.FaceKey, bool) {
	for f := range t.mesh.Faces() {
		pts, err := t.mesh.FaceCoordinates(f)
		if err != nil || len(pts) != 3 {
			continue
		}
		tri := [3]r2.Vec{geom.XY(pts[0]), geom.XY(pts[1]), geom.XY(pts[2])}
		if geom.IsPointInTriangle(p, tri, true) {
			return f, true
		}
	}
	return halfedge.NoFace, false
}

// trim deletes the faces whose centroid satisfies drop and returns how
// many were deleted.
func (t *triangulator) trim(drop func(centroid r2.Vec) bool) int {
	var doomed []halfedge.FaceKey
	for f := range t.mesh.Faces() {
		c, err := t.mesh.FaceCentroid(f)
		if err != nil {
			continue
		}
		if drop(geom.XY(c)) {
			doomed = append(doomed, f)
		}
	}
	for _, f := range doomed {
		t.mesh.DeleteFace(f)
	}
	return len(doomed)
}
