package halfedge

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"
)

// Topology queries: vertex fans, face cycles, edge incidence and boundary
// tests. None of them mutate the mesh.

// Halfedge returns the face to the left of the directed edge u->v. The
// boolean is false when no face lies on that side, including when the
// edge does not exist.
func (m *Mesh) Halfedge(u, v VertexKey) (FaceKey, bool) {
	i, ok := m.vindex[u]
	if !ok {
		return NoFace, false
	}
	f, _ := m.vertices[i].out.get(v)
	return f, f != NoFace
}

// HasEdge reports whether u and v are joined by an edge.
func (m *Mesh) HasEdge(u, v VertexKey) bool {
	i, ok := m.vindex[u]
	if !ok {
		return false
	}
	return m.vertices[i].out.find(v) >= 0
}

// EdgeFaces returns the faces on the left and right of u->v. Either may be
// NoFace.
func (m *Mesh) EdgeFaces(u, v VertexKey) (left, right FaceKey, err error) {
	if !m.HasEdge(u, v) {
		return NoFace, NoFace, edgeNotFound(u, v)
	}
	left, _ = m.out(u).get(v)
	right, _ = m.out(v).get(u)
	return left, right, nil
}

// EdgePoint returns the point at parameter t along u->v.
func (m *Mesh) EdgePoint(u, v VertexKey, t float64) (r3.Vec, error) {
	if !m.HasEdge(u, v) {
		return r3.Vec{}, edgeNotFound(u, v)
	}
	a := m.vertices[m.vindex[u]].pos
	b := m.vertices[m.vindex[v]].pos
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a))), nil
}

// VertexDegree returns the number of distinct neighbors of a vertex.
func (m *Mesh) VertexDegree(key VertexKey) (int, error) {
	s, err := m.vertexSlot(key)
	if err != nil {
		return 0, err
	}
	return len(s.out), nil
}

// VertexNeighbors returns the vertices sharing an edge with key.
//
// Unordered neighbors come in edge insertion order. Ordered neighbors are
// sorted rotationally so that consecutive entries share a face with key;
// for a boundary vertex the walk starts at the neighbor across the open
// edge. A fan that does not reach every neighbor, which happens around
// non-manifold vertices, is reported as ErrTopology.
func (m *Mesh) VertexNeighbors(key VertexKey, ordered bool) ([]VertexKey, error) {
	s, err := m.vertexSlot(key)
	if err != nil {
		return nil, err
	}
	if !ordered || len(s.out) < 2 {
		nbrs := make([]VertexKey, len(s.out))
		for i, e := range s.out {
			nbrs[i] = e.to
		}
		return nbrs, nil
	}
	return m.orderedNeighbors(key, s.out)
}

func (m *Mesh) orderedNeighbors(key VertexKey, out adjacency) ([]VertexKey, error) {
	start := out[0].to
	for _, e := range out {
		if e.face == NoFace {
			start = e.to
			break
		}
	}

	nbrs := make([]VertexKey, 0, len(out))
	nbrs = append(nbrs, start)
	f, _ := m.out(start).get(key)
	for f != NoFace {
		nbr, err := m.FaceVertexDescendant(f, key)
		if err != nil {
			return nil, err
		}
		if nbr == start {
			break
		}
		if len(nbrs) == len(out) {
			return nil, fmt.Errorf("%w: fan around vertex %d does not close", ErrTopology, key)
		}
		nbrs = append(nbrs, nbr)
		f, _ = m.out(nbr).get(key)
	}
	if len(nbrs) != len(out) {
		return nil, fmt.Errorf("%w: fan around vertex %d reaches %d of %d neighbors",
			ErrTopology, key, len(nbrs), len(out))
	}
	return nbrs, nil
}

// VertexFaces returns the faces incident to key. The ordered variant
// follows the rotational order of VertexNeighbors.
func (m *Mesh) VertexFaces(key VertexKey, ordered bool) ([]FaceKey, error) {
	nbrs, err := m.VertexNeighbors(key, ordered)
	if err != nil {
		return nil, err
	}
	out := *m.out(key)
	faces := make([]FaceKey, 0, len(nbrs))
	for _, n := range nbrs {
		if f, _ := out.get(n); f != NoFace {
			faces = append(faces, f)
		}
	}
	return faces, nil
}

// IsVertexOnBoundary reports whether some edge at key lacks a face on
// either side.
func (m *Mesh) IsVertexOnBoundary(key VertexKey) (bool, error) {
	s, err := m.vertexSlot(key)
	if err != nil {
		return false, err
	}
	for _, e := range s.out {
		if e.face == NoFace {
			return true, nil
		}
		if f, _ := m.out(e.to).get(key); f == NoFace {
			return true, nil
		}
	}
	return false, nil
}

// IsEdgeOnBoundary reports whether the edge {u, v} has a face on one side
// only.
func (m *Mesh) IsEdgeOnBoundary(u, v VertexKey) (bool, error) {
	left, right, err := m.EdgeFaces(u, v)
	if err != nil {
		return false, err
	}
	return left == NoFace || right == NoFace, nil
}

// IsClosed reports whether the mesh has no boundary edges.
func (m *Mesh) IsClosed() bool {
	for i := range m.vertices {
		for _, e := range m.vertices[i].out {
			if e.face == NoFace {
				return false
			}
		}
	}
	return true
}

// IsManifold reports whether the faces around every vertex form a single
// fan. Edges can never carry more than two faces by construction.
func (m *Mesh) IsManifold() bool {
	for key := range m.Vertices() {
		if _, err := m.VertexNeighbors(key, true); err != nil {
			return false
		}
	}
	return true
}

// FaceVertices returns a copy of the boundary cycle of a face.
func (m *Mesh) FaceVertices(f FaceKey) ([]VertexKey, error) {
	s, err := m.faceSlot(f)
	if err != nil {
		return nil, err
	}
	return slices.Clone(s.verts), nil
}

// FaceDegree returns the number of vertices of a face.
func (m *Mesh) FaceDegree(f FaceKey) (int, error) {
	s, err := m.faceSlot(f)
	if err != nil {
		return 0, err
	}
	return len(s.verts), nil
}

// FaceHalfedges returns the consecutive directed edges of a face cycle.
func (m *Mesh) FaceHalfedges(f FaceKey) ([]Edge, error) {
	s, err := m.faceSlot(f)
	if err != nil {
		return nil, err
	}
	n := len(s.verts)
	edges := make([]Edge, n)
	for i, u := range s.verts {
		edges[i] = Edge{U: u, V: s.verts[(i+1)%n]}
	}
	return edges, nil
}

// FaceVertexDescendant returns the vertex following v in the cycle of f.
func (m *Mesh) FaceVertexDescendant(f FaceKey, v VertexKey) (VertexKey, error) {
	return m.faceVertexOffset(f, v, 1)
}

// FaceVertexAncestor returns the vertex preceding v in the cycle of f.
func (m *Mesh) FaceVertexAncestor(f FaceKey, v VertexKey) (VertexKey, error) {
	return m.faceVertexOffset(f, v, -1)
}

func (m *Mesh) faceVertexOffset(f FaceKey, v VertexKey, step int) (VertexKey, error) {
	s, err := m.faceSlot(f)
	if err != nil {
		return 0, err
	}
	i := slices.Index(s.verts, v)
	if i < 0 {
		return 0, fmt.Errorf("%w: vertex %d is not on face %d", ErrKeyNotFound, v, f)
	}
	n := len(s.verts)
	return s.verts[(i+step+n)%n], nil
}

// FaceCentroid returns the mean of the vertex coordinates of a face.
func (m *Mesh) FaceCentroid(f FaceKey) (r3.Vec, error) {
	s, err := m.faceSlot(f)
	if err != nil {
		return r3.Vec{}, err
	}
	var sum r3.Vec
	for _, v := range s.verts {
		sum = r3.Add(sum, m.vertices[m.vindex[v]].pos)
	}
	return r3.Scale(1/float64(len(s.verts)), sum), nil
}

// FaceCoordinates returns the vertex coordinates of a face in cycle order.
func (m *Mesh) FaceCoordinates(f FaceKey) ([]r3.Vec, error) {
	s, err := m.faceSlot(f)
	if err != nil {
		return nil, err
	}
	pts := make([]r3.Vec, len(s.verts))
	for i, v := range s.verts {
		pts[i] = m.vertices[m.vindex[v]].pos
	}
	return pts, nil
}

// FaceNeighbors returns the faces sharing an edge with f, in cycle order.
func (m *Mesh) FaceNeighbors(f FaceKey) ([]FaceKey, error) {
	edges, err := m.FaceHalfedges(f)
	if err != nil {
		return nil, err
	}
	var nbrs []FaceKey
	for _, e := range edges {
		if g, ok := m.Halfedge(e.V, e.U); ok {
			nbrs = append(nbrs, g)
		}
	}
	return nbrs, nil
}
