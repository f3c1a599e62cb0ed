package conway

import (
	"fmt"
	"strings"

	"github.com/gogpu/halfedge"
	"github.com/gogpu/halfedge/internal/cache"
)

// seeds maps the notation's seed letters to platonic face counts.
var seeds = map[byte]int{
	'T': 4,
	'C': 6,
	'O': 8,
	'D': 12,
	'I': 20,
}

// Build evaluates full Conway notation: operator letters followed by one
// seed letter, T, C, O, D or I for the platonic solids. "tC" is the
// truncated cube and "C" the cube itself.
func Build(notation string) (*halfedge.Mesh, error) {
	ops, faces, err := parse(notation)
	if err != nil {
		return nil, err
	}
	seed, err := halfedge.FromPolyhedron(faces)
	if err != nil {
		return nil, err
	}
	if ops == "" {
		return seed, nil
	}
	return Apply(seed, ops)
}

// parse splits notation into its operator letters and seed face count.
func parse(notation string) (string, int, error) {
	notation = strings.TrimSpace(notation)
	if notation == "" {
		return "", 0, fmt.Errorf("%w: empty notation", ErrUnknownSeed)
	}
	last := len(notation) - 1
	faces, ok := seeds[notation[last]]
	if !ok {
		return "", 0, fmt.Errorf("%w: %q", ErrUnknownSeed, notation[last:])
	}
	ops := notation[:last]
	for i := range ops {
		if _, err := Lookup(ops[i : i+1]); err != nil {
			return "", 0, err
		}
	}
	return ops, faces, nil
}

// Cache memoizes Build. Each call returns a private copy, so callers may
// mutate the result freely. A Cache is safe for concurrent use.
type Cache struct {
	meshes *cache.Cache[string, *halfedge.Mesh]
}

// NewCache returns a cache holding up to capacity built meshes.
// A non-positive capacity selects a small default.
func NewCache(capacity int) *Cache {
	return &Cache{meshes: cache.New[string, *halfedge.Mesh](capacity)}
}

// Build is like the package-level Build but reuses earlier results.
func (c *Cache) Build(notation string) (*halfedge.Mesh, error) {
	key := strings.TrimSpace(notation)
	m, err := c.meshes.GetOrCreate(key, func() (*halfedge.Mesh, error) {
		return Build(key)
	})
	if err != nil {
		return nil, err
	}
	return m.Copy(), nil
}

// CacheStats reports how a Cache has been used.
type CacheStats = cache.Stats

// Stats reports cache hits, misses and evictions.
func (c *Cache) Stats() CacheStats {
	return c.meshes.Stats()
}
