package halfedge

import (
	"errors"
	"fmt"
)

// Sentinel errors for the halfedge package. Errors returned by mesh
// operations wrap one of these; test with errors.Is.
var (
	// ErrKeyNotFound is returned when a vertex, face or edge key is not
	// present in the mesh.
	ErrKeyNotFound = errors.New("halfedge: key not found")

	// ErrDuplicateKey is returned when an explicit key is already in use.
	ErrDuplicateKey = errors.New("halfedge: duplicate key")

	// ErrInvalidKey is returned for negative explicit keys.
	ErrInvalidKey = errors.New("halfedge: invalid key")

	// ErrInvalidFace is returned for malformed face cycles: fewer than
	// three vertices or a vertex repeated inside the cycle.
	ErrInvalidFace = errors.New("halfedge: invalid face")

	// ErrTopology is returned when an operation encounters, or would
	// produce, a non-manifold configuration.
	ErrTopology = errors.New("halfedge: topology error")

	// ErrNonManifoldEdge is returned by AddFace when a directed edge of the
	// new face is already owned by another face. It wraps ErrTopology.
	ErrNonManifoldEdge = fmt.Errorf("%w: directed edge already has a face", ErrTopology)

	// ErrDegenerate is returned when a point set cannot span a surface.
	ErrDegenerate = errors.New("halfedge: degenerate point set")

	// ErrUnsupportedPolyhedron is returned by FromPolyhedron for face
	// counts other than 4, 6, 8, 12 and 20.
	ErrUnsupportedPolyhedron = errors.New("halfedge: unsupported polyhedron")
)

func vertexNotFound(key VertexKey) error {
	return fmt.Errorf("%w: vertex %d", ErrKeyNotFound, key)
}

func faceNotFound(key FaceKey) error {
	return fmt.Errorf("%w: face %d", ErrKeyNotFound, key)
}

func edgeNotFound(u, v VertexKey) error {
	return fmt.Errorf("%w: edge (%d, %d)", ErrKeyNotFound, u, v)
}
