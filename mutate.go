package halfedge

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// InsertVertex splits face f into a fan of triangles around a new vertex
// at p, one triangle per edge of f. The original face is deleted. It
// returns the new vertex and the new faces in the cycle order of f.
func (m *Mesh) InsertVertex(f FaceKey, p r3.Vec) (VertexKey, []FaceKey, error) {
	if !m.HasFace(f) {
		return 0, nil, faceNotFound(f)
	}
	key := m.nextVertex
	faces, err := m.InsertVertexKey(f, key, p)
	if err != nil {
		return 0, nil, err
	}
	return key, faces, nil
}

// InsertVertexAtCentroid is InsertVertex with the new vertex placed at the
// centroid of f.
func (m *Mesh) InsertVertexAtCentroid(f FaceKey) (VertexKey, []FaceKey, error) {
	c, err := m.FaceCentroid(f)
	if err != nil {
		return 0, nil, err
	}
	return m.InsertVertex(f, c)
}

// InsertVertexKey is InsertVertex with an explicit key for the new vertex.
func (m *Mesh) InsertVertexKey(f FaceKey, key VertexKey, p r3.Vec) ([]FaceKey, error) {
	edges, err := m.FaceHalfedges(f)
	if err != nil {
		return nil, err
	}
	if err := m.AddVertexKey(key, p); err != nil {
		return nil, err
	}
	m.DeleteFace(f)
	faces := make([]FaceKey, 0, len(edges))
	for _, e := range edges {
		nf, err := m.AddFace([]VertexKey{e.U, e.V, key})
		if err != nil {
			return nil, fmt.Errorf("split face %d: %w", f, err)
		}
		faces = append(faces, nf)
	}
	return faces, nil
}

// SwapEdge flips the diagonal shared by the two triangles on either side
// of u->v. The faces are replaced by two new triangles over the other
// diagonal, returned as (left, right) of the new edge.
//
// Boundary edges, non-triangular faces, triangles sharing their third
// vertex and flips that would duplicate an existing edge are refused with
// ErrTopology; the mesh is left unchanged.
func (m *Mesh) SwapEdge(u, v VertexKey) (FaceKey, FaceKey, error) {
	fuv, fvu, err := m.EdgeFaces(u, v)
	if err != nil {
		return NoFace, NoFace, err
	}
	if fuv == NoFace || fvu == NoFace {
		return NoFace, NoFace, fmt.Errorf("%w: cannot swap boundary edge (%d, %d)", ErrTopology, u, v)
	}
	for _, f := range []FaceKey{fuv, fvu} {
		if n, _ := m.FaceDegree(f); n != 3 {
			return NoFace, NoFace, fmt.Errorf("%w: face %d is not a triangle", ErrTopology, f)
		}
	}
	a, _ := m.FaceVertexDescendant(fuv, v)
	b, _ := m.FaceVertexDescendant(fvu, u)
	if a == b {
		return NoFace, NoFace, fmt.Errorf("%w: faces %d and %d share apex %d across (%d, %d)", ErrTopology, fuv, fvu, a, u, v)
	}
	if m.HasEdge(a, b) {
		return NoFace, NoFace, fmt.Errorf("%w: swapping (%d, %d) would duplicate edge (%d, %d)", ErrTopology, u, v, a, b)
	}

	m.DeleteFace(fuv)
	m.DeleteFace(fvu)
	left, err := m.AddFace([]VertexKey{a, b, v})
	if err != nil {
		return NoFace, NoFace, err
	}
	right, err := m.AddFace([]VertexKey{b, a, u})
	if err != nil {
		return NoFace, NoFace, err
	}
	return left, right, nil
}

// Validate checks the half-edge invariants and returns the first
// violation wrapped in ErrTopology:
//   - every directed edge of every face cycle maps back to that face
//   - every half-edge entry has a reciprocal entry
//   - no edge is face-less on both sides
//   - every face referenced from the half-edge map exists and contains the
//     directed edge
func (m *Mesh) Validate() error {
	for i := range m.faces {
		f := &m.faces[i]
		if f.dead {
			continue
		}
		n := len(f.verts)
		for j, u := range f.verts {
			v := f.verts[(j+1)%n]
			if g, _ := m.out(u).get(v); g != f.key {
				return fmt.Errorf("%w: half-edge (%d, %d) maps to %d, want face %d", ErrTopology, u, v, g, f.key)
			}
		}
	}
	for i := range m.vertices {
		s := &m.vertices[i]
		if s.dead {
			continue
		}
		for _, e := range s.out {
			if !m.HasVertex(e.to) {
				return fmt.Errorf("%w: half-edge (%d, %d) points to a deleted vertex", ErrTopology, s.key, e.to)
			}
			back, ok := m.out(e.to).get(s.key)
			if !ok {
				return fmt.Errorf("%w: half-edge (%d, %d) has no reciprocal", ErrTopology, s.key, e.to)
			}
			if e.face == NoFace && back == NoFace {
				return fmt.Errorf("%w: edge (%d, %d) has no face", ErrTopology, s.key, e.to)
			}
			if e.face == NoFace {
				continue
			}
			next, err := m.FaceVertexDescendant(e.face, s.key)
			if err != nil || next != e.to {
				return fmt.Errorf("%w: face %d does not contain half-edge (%d, %d)", ErrTopology, e.face, s.key, e.to)
			}
		}
	}
	return nil
}
