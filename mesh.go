package halfedge

import (
	"fmt"
	"iter"

	"gonum.org/v1/gonum/spatial/r3"
)

// VertexKey identifies a vertex. Generated keys increase monotonically and
// are never reused, even after the vertex is deleted.
type VertexKey int

// FaceKey identifies a face. Generated keys follow the same rules as
// VertexKey.
type FaceKey int

// NoFace marks the side of an edge that has no face. It is what the
// half-edge map stores for the outer side of a boundary edge.
const NoFace FaceKey = -1

// Edge is a directed pair of vertices.
type Edge struct {
	U, V VertexKey
}

// Reversed returns the edge pointing the other way.
func (e Edge) Reversed() Edge {
	return Edge{U: e.V, V: e.U}
}

// halfedgeEntry is one outgoing half-edge: the face to the left of
// owner->to, or NoFace.
type halfedgeEntry struct {
	to   VertexKey
	face FaceKey
}

// adjacency is the outgoing half-edge list of a vertex in insertion order.
type adjacency []halfedgeEntry

func (a adjacency) find(v VertexKey) int {
	for i := range a {
		if a[i].to == v {
			return i
		}
	}
	return -1
}

func (a adjacency) get(v VertexKey) (FaceKey, bool) {
	if i := a.find(v); i >= 0 {
		return a[i].face, true
	}
	return NoFace, false
}

func (a *adjacency) set(v VertexKey, f FaceKey) {
	if i := a.find(v); i >= 0 {
		(*a)[i].face = f
		return
	}
	*a = append(*a, halfedgeEntry{to: v, face: f})
}

// setDefault records v with NoFace unless an entry already exists.
func (a *adjacency) setDefault(v VertexKey) {
	if a.find(v) < 0 {
		*a = append(*a, halfedgeEntry{to: v, face: NoFace})
	}
}

func (a *adjacency) remove(v VertexKey) {
	if i := a.find(v); i >= 0 {
		*a = append((*a)[:i], (*a)[i+1:]...)
	}
}

type vertexSlot struct {
	key  VertexKey
	pos  r3.Vec
	out  adjacency
	dead bool
}

type faceSlot struct {
	key   FaceKey
	verts []VertexKey
	dead  bool
}

// Mesh is a half-edge mesh of polygonal faces.
//
// Vertices and faces live in arenas in insertion order; deletion leaves a
// tombstone instead of compacting, so iteration stays stable while an
// algorithm mutates the mesh. The half-edge relation is stored per vertex:
// for every directed pair (u, v) bounding a face on its left the entry
// u->v holds that face, and the reciprocal entry v->u always exists,
// holding NoFace when the edge is on the boundary.
//
// A Mesh is not safe for concurrent mutation. Concurrent read-only queries
// are safe while no mutation is in flight.
type Mesh struct {
	vertices []vertexSlot
	faces    []faceSlot
	vindex   map[VertexKey]int
	findex   map[FaceKey]int

	nextVertex VertexKey
	nextFace   FaceKey
}

// New returns an empty mesh.
func New() *Mesh {
	return &Mesh{
		vindex: make(map[VertexKey]int),
		findex: make(map[FaceKey]int),
	}
}

func (m *Mesh) vertexSlot(key VertexKey) (*vertexSlot, error) {
	i, ok := m.vindex[key]
	if !ok {
		return nil, vertexNotFound(key)
	}
	return &m.vertices[i], nil
}

func (m *Mesh) faceSlot(key FaceKey) (*faceSlot, error) {
	i, ok := m.findex[key]
	if !ok {
		return nil, faceNotFound(key)
	}
	return &m.faces[i], nil
}

// out returns the outgoing half-edges of a vertex known to exist.
func (m *Mesh) out(key VertexKey) *adjacency {
	return &m.vertices[m.vindex[key]].out
}

// AddVertex inserts a vertex at p under a freshly generated key.
func (m *Mesh) AddVertex(p r3.Vec) VertexKey {
	key := m.nextVertex
	m.insertVertex(key, p)
	return key
}

// AddVertexKey inserts a vertex under an explicit key. Use SetVertex to
// move an existing vertex.
func (m *Mesh) AddVertexKey(key VertexKey, p r3.Vec) error {
	if key < 0 {
		return fmt.Errorf("%w: vertex %d", ErrInvalidKey, key)
	}
	if _, ok := m.vindex[key]; ok {
		return fmt.Errorf("%w: vertex %d", ErrDuplicateKey, key)
	}
	m.insertVertex(key, p)
	return nil
}

func (m *Mesh) insertVertex(key VertexKey, p r3.Vec) {
	m.vindex[key] = len(m.vertices)
	m.vertices = append(m.vertices, vertexSlot{key: key, pos: p})
	if key >= m.nextVertex {
		m.nextVertex = key + 1
	}
}

// Vertex returns the coordinates of a vertex.
func (m *Mesh) Vertex(key VertexKey) (r3.Vec, error) {
	s, err := m.vertexSlot(key)
	if err != nil {
		return r3.Vec{}, err
	}
	return s.pos, nil
}

// SetVertex moves an existing vertex.
func (m *Mesh) SetVertex(key VertexKey, p r3.Vec) error {
	s, err := m.vertexSlot(key)
	if err != nil {
		return err
	}
	s.pos = p
	return nil
}

// HasVertex reports whether key is a vertex of the mesh.
func (m *Mesh) HasVertex(key VertexKey) bool {
	_, ok := m.vindex[key]
	return ok
}

// HasFace reports whether key is a face of the mesh.
func (m *Mesh) HasFace(key FaceKey) bool {
	_, ok := m.findex[key]
	return ok
}

// AddFace registers a face with the given boundary cycle under a freshly
// generated key. A trailing vertex equal to the first one is dropped.
//
// The mesh is left unchanged when an error is returned.
func (m *Mesh) AddFace(vs []VertexKey) (FaceKey, error) {
	key := m.nextFace
	if err := m.addFace(key, vs); err != nil {
		return NoFace, err
	}
	return key, nil
}

// AddFaceKey is AddFace with an explicit face key.
func (m *Mesh) AddFaceKey(key FaceKey, vs []VertexKey) error {
	if key < 0 {
		return fmt.Errorf("%w: face %d", ErrInvalidKey, key)
	}
	if _, ok := m.findex[key]; ok {
		return fmt.Errorf("%w: face %d", ErrDuplicateKey, key)
	}
	return m.addFace(key, vs)
}

func (m *Mesh) addFace(key FaceKey, vs []VertexKey) error {
	cycle, err := m.faceCycle(vs)
	if err != nil {
		return err
	}
	n := len(cycle)
	for i, u := range cycle {
		v := cycle[(i+1)%n]
		if f, ok := m.out(u).get(v); ok && f != NoFace {
			return fmt.Errorf("%w: (%d, %d) belongs to face %d", ErrNonManifoldEdge, u, v, f)
		}
	}

	m.findex[key] = len(m.faces)
	m.faces = append(m.faces, faceSlot{key: key, verts: cycle})
	if key >= m.nextFace {
		m.nextFace = key + 1
	}
	for i, u := range cycle {
		v := cycle[(i+1)%n]
		m.out(u).set(v, key)
		m.out(v).setDefault(u)
	}
	return nil
}

// faceCycle validates a face cycle and returns a private copy of it.
func (m *Mesh) faceCycle(vs []VertexKey) ([]VertexKey, error) {
	if len(vs) > 1 && vs[0] == vs[len(vs)-1] {
		vs = vs[:len(vs)-1]
	}
	if len(vs) < 3 {
		return nil, fmt.Errorf("%w: %d vertices, need at least 3", ErrInvalidFace, len(vs))
	}
	cycle := make([]VertexKey, len(vs))
	for i, v := range vs {
		if !m.HasVertex(v) {
			return nil, vertexNotFound(v)
		}
		for _, w := range cycle[:i] {
			if w == v {
				return nil, fmt.Errorf("%w: vertex %d repeated", ErrInvalidFace, v)
			}
		}
		cycle[i] = v
	}
	return cycle, nil
}

// DeleteFace removes a face and clears the half-edges it owns. An edge
// left without a face on either side disappears. Deleting an absent face
// is a no-op.
func (m *Mesh) DeleteFace(key FaceKey) {
	i, ok := m.findex[key]
	if !ok {
		return
	}
	cycle := m.faces[i].verts
	n := len(cycle)
	for j, u := range cycle {
		v := cycle[(j+1)%n]
		uv, vu := m.out(u), m.out(v)
		if f, _ := uv.get(v); f != key {
			continue
		}
		uv.set(v, NoFace)
		if back, ok := vu.get(u); !ok || back == NoFace {
			uv.remove(v)
			vu.remove(u)
		}
	}
	m.faces[i] = faceSlot{key: key, dead: true}
	delete(m.findex, key)
}

// DeleteVertex removes a vertex together with every face incident to it.
// Deleting an absent vertex is a no-op.
func (m *Mesh) DeleteVertex(key VertexKey) {
	i, ok := m.vindex[key]
	if !ok {
		return
	}
	var faces []FaceKey
	for _, e := range m.vertices[i].out {
		if e.face != NoFace {
			faces = append(faces, e.face)
		}
		if f, _ := m.out(e.to).get(key); f != NoFace {
			faces = append(faces, f)
		}
	}
	for _, f := range faces {
		m.DeleteFace(f)
	}
	// Only face-less edges can remain; scrub their reciprocal entries.
	for _, e := range m.vertices[i].out {
		m.out(e.to).remove(key)
	}
	m.vertices[i] = vertexSlot{key: key, dead: true}
	delete(m.vindex, key)
}

// CullVertices removes every vertex without incident faces and returns
// how many were removed.
func (m *Mesh) CullVertices() int {
	var culled []VertexKey
	for i := range m.vertices {
		s := &m.vertices[i]
		if !s.dead && len(s.out) == 0 {
			culled = append(culled, s.key)
		}
	}
	for _, key := range culled {
		m.DeleteVertex(key)
	}
	return len(culled)
}

// Vertices iterates over vertex keys in insertion order.
func (m *Mesh) Vertices() iter.Seq[VertexKey] {
	return func(yield func(VertexKey) bool) {
		for i := 0; i < len(m.vertices); i++ {
			if m.vertices[i].dead {
				continue
			}
			if !yield(m.vertices[i].key) {
				return
			}
		}
	}
}

// Faces iterates over face keys in insertion order. Faces added while
// iterating are visited; deleted ones are skipped.
func (m *Mesh) Faces() iter.Seq[FaceKey] {
	return func(yield func(FaceKey) bool) {
		for i := 0; i < len(m.faces); i++ {
			if m.faces[i].dead {
				continue
			}
			if !yield(m.faces[i].key) {
				return
			}
		}
	}
}

// Edges iterates over undirected edges, once each. An edge is reported in
// the direction that has a face on its left.
func (m *Mesh) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for i := 0; i < len(m.vertices); i++ {
			s := &m.vertices[i]
			if s.dead {
				continue
			}
			for _, e := range s.out {
				if e.to < s.key {
					continue
				}
				edge := Edge{U: s.key, V: e.to}
				if e.face == NoFace {
					edge = edge.Reversed()
				}
				if !yield(edge) {
					return
				}
			}
		}
	}
}

// NumVertices returns the number of live vertices.
func (m *Mesh) NumVertices() int { return len(m.vindex) }

// NumFaces returns the number of live faces.
func (m *Mesh) NumFaces() int { return len(m.findex) }

// NumEdges returns the number of undirected edges.
func (m *Mesh) NumEdges() int {
	n := 0
	for i := range m.vertices {
		n += len(m.vertices[i].out)
	}
	return n / 2
}

// Euler returns V - E + F.
func (m *Mesh) Euler() int {
	return m.NumVertices() - m.NumEdges() + m.NumFaces()
}

// Copy returns a deep copy. Keys and key generation state are preserved.
func (m *Mesh) Copy() *Mesh {
	c := &Mesh{
		vertices:   make([]vertexSlot, len(m.vertices)),
		faces:      make([]faceSlot, len(m.faces)),
		vindex:     make(map[VertexKey]int, len(m.vindex)),
		findex:     make(map[FaceKey]int, len(m.findex)),
		nextVertex: m.nextVertex,
		nextFace:   m.nextFace,
	}
	for i, s := range m.vertices {
		s.out = append(adjacency(nil), s.out...)
		c.vertices[i] = s
	}
	for i, f := range m.faces {
		f.verts = append([]VertexKey(nil), f.verts...)
		c.faces[i] = f
	}
	for k, v := range m.vindex {
		c.vindex[k] = v
	}
	for k, v := range m.findex {
		c.findex[k] = v
	}
	return c
}
