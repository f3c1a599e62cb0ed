package conway

import (
	"fmt"

	"github.com/gogpu/halfedge"
	"gonum.org/v1/gonum/spatial/r3"
)

// GyroEdgeParameter is where Gyro places its two points on every edge,
// measured from the nearer end.
const GyroEdgeParameter = 0.33

// builder accumulates the vertices and face cycles of an operator result.
// Index maps are materialized once per call and never depend on iterating
// the seed twice.
type builder struct {
	name   string
	points []r3.Vec
	faces  [][]int
}

func (b *builder) add(p r3.Vec) int {
	b.points = append(b.points, p)
	return len(b.points) - 1
}

func (b *builder) vertices(m halfedge.Topology, keep func(halfedge.VertexKey) bool) (map[halfedge.VertexKey]int, error) {
	index := make(map[halfedge.VertexKey]int, m.NumVertices())
	for v := range m.Vertices() {
		if keep != nil && !keep(v) {
			continue
		}
		p, err := m.Vertex(v)
		if err != nil {
			return nil, err
		}
		index[v] = b.add(p)
	}
	return index, nil
}

func (b *builder) centroids(m halfedge.Topology, keep func(halfedge.FaceKey) bool) (map[halfedge.FaceKey]int, error) {
	index := make(map[halfedge.FaceKey]int, m.NumFaces())
	for f := range m.Faces() {
		if keep != nil && !keep(f) {
			continue
		}
		c, err := m.FaceCentroid(f)
		if err != nil {
			return nil, err
		}
		index[f] = b.add(c)
	}
	return index, nil
}

func (b *builder) mesh() (*halfedge.Mesh, error) {
	m, err := halfedge.FromVerticesAndFaces(b.points, b.faces)
	if err != nil {
		return nil, fmt.Errorf("conway: %s: %w", b.name, err)
	}
	halfedge.Logger().Debug("conway: "+b.name,
		"vertices", m.NumVertices(), "edges", m.NumEdges(), "faces", m.NumFaces())
	return m, nil
}

func wrap(name string, err error) error {
	return fmt.Errorf("conway: %s: %w", name, err)
}

// Dual places a vertex at the centroid of every face and builds a face
// around every interior vertex, from its reversed rotational fan. Boundary
// and isolated vertices produce no face.
//
// Count law for closed seeds: (V, E, F) -> (F, E, V).
func Dual(m halfedge.Topology) (*halfedge.Mesh, error) {
	b := &builder{name: "dual"}
	faceVertex, err := b.centroids(m, nil)
	if err != nil {
		return nil, wrap(b.name, err)
	}
	for v := range m.Vertices() {
		boundary, err := m.IsVertexOnBoundary(v)
		if err != nil {
			return nil, wrap(b.name, err)
		}
		if boundary {
			continue
		}
		fan, err := m.VertexFaces(v, true)
		if err != nil {
			return nil, wrap(b.name, err)
		}
		if len(fan) == 0 {
			continue
		}
		cycle := make([]int, len(fan))
		for i, f := range fan {
			cycle[len(fan)-1-i] = faceVertex[f]
		}
		b.faces = append(b.faces, cycle)
	}
	return b.mesh()
}

// Join keeps the vertices, adds one per face centroid and replaces every
// interior edge u->v by the quad [u, right face, v, left face].
//
// Boundary edges produce nothing, and vertices or faces not touched by
// any interior edge are left out instead of being culled afterwards.
//
// Count law for closed seeds: (V, E, F) -> (V+F, 2E, E).
func Join(m halfedge.Topology) (*halfedge.Mesh, error) {
	b := &builder{name: "join"}

	type quad struct {
		u, v        halfedge.VertexKey
		left, right halfedge.FaceKey
	}
	var quads []quad
	usedVertex := make(map[halfedge.VertexKey]bool)
	usedFace := make(map[halfedge.FaceKey]bool)
	for e := range m.Edges() {
		left, lok := m.Halfedge(e.U, e.V)
		right, rok := m.Halfedge(e.V, e.U)
		if !lok || !rok {
			continue
		}
		quads = append(quads, quad{u: e.U, v: e.V, left: left, right: right})
		usedVertex[e.U], usedVertex[e.V] = true, true
		usedFace[left], usedFace[right] = true, true
	}

	vertexIndex, err := b.vertices(m, func(v halfedge.VertexKey) bool { return usedVertex[v] })
	if err != nil {
		return nil, wrap(b.name, err)
	}
	faceVertex, err := b.centroids(m, func(f halfedge.FaceKey) bool { return usedFace[f] })
	if err != nil {
		return nil, wrap(b.name, err)
	}
	for _, q := range quads {
		b.faces = append(b.faces, []int{
			vertexIndex[q.u], faceVertex[q.right], vertexIndex[q.v], faceVertex[q.left],
		})
	}
	return b.mesh()
}

// Kis raises a pyramid on every face: each face edge u->v becomes the
// triangle [u, v, centroid].
//
// Count law for closed seeds: (V, E, F) -> (V+F, 3E, 2E).
func Kis(m halfedge.Topology) (*halfedge.Mesh, error) {
	b := &builder{name: "kis"}
	vertexIndex, err := b.vertices(m, nil)
	if err != nil {
		return nil, wrap(b.name, err)
	}
	faceVertex, err := b.centroids(m, nil)
	if err != nil {
		return nil, wrap(b.name, err)
	}
	for f := range m.Faces() {
		edges, err := m.FaceHalfedges(f)
		if err != nil {
			return nil, wrap(b.name, err)
		}
		for _, e := range edges {
			b.faces = append(b.faces, []int{vertexIndex[e.U], vertexIndex[e.V], faceVertex[f]})
		}
	}
	return b.mesh()
}

// Gyro adds a vertex per face centroid and two per edge, one near each
// end, then replaces every face edge u->v of face f by the pentagon
// [p(u,v), p(v,u), v, p(v,w), centroid(f)] where w follows v in f.
//
// Count law for closed seeds: (V, E, F) -> (V+F+2E, 5E, 2E).
func Gyro(m halfedge.Topology) (*halfedge.Mesh, error) {
	b := &builder{name: "gyro"}
	vertexIndex, err := b.vertices(m, nil)
	if err != nil {
		return nil, wrap(b.name, err)
	}
	faceVertex, err := b.centroids(m, nil)
	if err != nil {
		return nil, wrap(b.name, err)
	}
	edgeVertex := make(map[halfedge.Edge]int, 2*m.NumEdges())
	for e := range m.Edges() {
		for _, d := range []halfedge.Edge{e, e.Reversed()} {
			p, err := m.EdgePoint(d.U, d.V, GyroEdgeParameter)
			if err != nil {
				return nil, wrap(b.name, err)
			}
			edgeVertex[d] = b.add(p)
		}
	}
	for f := range m.Faces() {
		edges, err := m.FaceHalfedges(f)
		if err != nil {
			return nil, wrap(b.name, err)
		}
		for i, e := range edges {
			next := edges[(i+1)%len(edges)]
			b.faces = append(b.faces, []int{
				edgeVertex[e],
				edgeVertex[e.Reversed()],
				vertexIndex[e.V],
				edgeVertex[next],
				faceVertex[f],
			})
		}
	}
	return b.mesh()
}
