package halfedge

import (
	"iter"

	"gonum.org/v1/gonum/spatial/r3"
)

// Topology is the read-only view of a polygon mesh that mesh rewriting
// code (such as the conway package) works against. *Mesh implements it;
// any other manifold mesh implementation exposing the same queries can be
// substituted.
type Topology interface {
	Vertices() iter.Seq[VertexKey]
	Faces() iter.Seq[FaceKey]
	Edges() iter.Seq[Edge]

	NumVertices() int
	NumFaces() int
	NumEdges() int

	Vertex(key VertexKey) (r3.Vec, error)
	VertexFaces(key VertexKey, ordered bool) ([]FaceKey, error)
	IsVertexOnBoundary(key VertexKey) (bool, error)

	FaceHalfedges(f FaceKey) ([]Edge, error)
	FaceVertexDescendant(f FaceKey, v VertexKey) (VertexKey, error)
	FaceCentroid(f FaceKey) (r3.Vec, error)

	Halfedge(u, v VertexKey) (FaceKey, bool)
	IsEdgeOnBoundary(u, v VertexKey) (bool, error)
	EdgePoint(u, v VertexKey, t float64) (r3.Vec, error)
}

var _ Topology = (*Mesh)(nil)
