package halfedge

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// FromVerticesAndFaces builds a mesh from a vertex list and faces given as
// cycles of indices into that list. Vertex i gets key i and face j gets
// key j.
func FromVerticesAndFaces(vertices []r3.Vec, faces [][]int) (*Mesh, error) {
	m := New()
	for _, p := range vertices {
		m.AddVertex(p)
	}
	cycle := make([]VertexKey, 0, 8)
	for j, face := range faces {
		cycle = cycle[:0]
		for _, i := range face {
			cycle = append(cycle, VertexKey(i))
		}
		if _, err := m.AddFace(cycle); err != nil {
			return nil, fmt.Errorf("face %d: %w", j, err)
		}
	}
	return m, nil
}

// ToVerticesAndFaces flattens the mesh into a vertex list and faces as
// index cycles. Vertices are numbered densely in insertion order, so the
// result round-trips through FromVerticesAndFaces.
func (m *Mesh) ToVerticesAndFaces() ([]r3.Vec, [][]int) {
	index := make(map[VertexKey]int, m.NumVertices())
	vertices := make([]r3.Vec, 0, m.NumVertices())
	for key := range m.Vertices() {
		index[key] = len(vertices)
		vertices = append(vertices, m.vertices[m.vindex[key]].pos)
	}
	faces := make([][]int, 0, m.NumFaces())
	for f := range m.Faces() {
		verts := m.faces[m.findex[f]].verts
		face := make([]int, len(verts))
		for i, v := range verts {
			face[i] = index[v]
		}
		faces = append(faces, face)
	}
	return vertices, faces
}
