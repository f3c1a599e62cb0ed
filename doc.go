// Package halfedge provides a half-edge mesh for polygonal surfaces.
//
// # Overview
//
// A [Mesh] stores vertices, faces and the half-edge relation between them:
// for every directed pair of adjacent vertices (u, v) it records the face
// lying to the left of u->v, or [NoFace] on the open side of a boundary
// edge. Queries walk that relation (ordered vertex fans, face cycles,
// boundary tests) and mutations keep it consistent (face insertion and
// deletion, vertex insertion with re-triangulation, edge flips, vertex
// culling).
//
// # Quick Start
//
//	m, err := halfedge.FromPolyhedron(6) // cube
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(m.NumVertices(), m.NumEdges(), m.NumFaces()) // 8 12 6
//
// # Related packages
//
//   - conway: Conway polyhedron operators (dual, ambo, kis, gyro, ...)
//   - delaunay: incremental Delaunay triangulation on top of Mesh
//   - geom: the XY predicates both of them rely on
//
// # Errors
//
// Every failure wraps one of the sentinel errors in errors.go. Missing keys
// report [ErrKeyNotFound]; operations that would break manifoldness report
// [ErrTopology] and leave the mesh untouched.
//
// # Concurrency
//
// A Mesh assumes a single writer. Concurrent readers are fine as long as
// nothing mutates the mesh meanwhile.
package halfedge
