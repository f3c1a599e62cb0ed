package delaunay

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"
)

// Option configures a triangulation run.
//
// Example:
//
//	tris, err := delaunay.Triangulate(points,
//	    delaunay.WithRand(rand.New(rand.NewPCG(1, 2))),
//	    delaunay.WithBoundary(outline),
//	)
type Option func(*options)

const (
	// DefaultTolerance is the default jitter magnitude.
	DefaultTolerance = 1e-12

	// DefaultSuperTriangleScale is the default size of the super-triangle
	// relative to the XY diagonal of the input bounding box.
	DefaultSuperTriangleScale = 300

	defaultSeed = 0x5eed
)

type options struct {
	tolerance float64
	rng       *rand.Rand
	boundary  []r2.Vec
	holes     [][]r2.Vec
	maxFlips  int
	scale     float64
}

func defaultOptions() options {
	return options{
		tolerance: DefaultTolerance,
		scale:     DefaultSuperTriangleScale,
	}
}

// WithTolerance sets the magnitude of the random jitter added to every
// input coordinate. Zero disables jitter.
func WithTolerance(tiny float64) Option {
	return func(o *options) {
		o.tolerance = tiny
	}
}

// WithRand sets the random source used for jitter. Without it a source
// with a fixed seed is used, so runs are reproducible.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithBoundary drops every triangle whose centroid lies outside polygon.
func WithBoundary(polygon []r2.Vec) Option {
	return func(o *options) {
		o.boundary = polygon
	}
}

// WithHoles drops every triangle whose centroid lies inside one of the
// polygons.
func WithHoles(polygons ...[]r2.Vec) Option {
	return func(o *options) {
		o.holes = append(o.holes, polygons...)
	}
}

// WithMaxFlips caps the edge flips spent on a single inserted point.
// Zero selects the default of 3*(n+3) for n input points.
func WithMaxFlips(n int) Option {
	return func(o *options) {
		o.maxFlips = n
	}
}

// WithSuperTriangleScale sets the size of the enclosing super-triangle
// relative to the XY diagonal of the input bounding box.
func WithSuperTriangleScale(s float64) Option {
	return func(o *options) {
		o.scale = s
	}
}
