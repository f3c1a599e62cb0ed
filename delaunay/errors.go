package delaunay

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors for the delaunay package.
var (
	// ErrTooFewPoints is returned for fewer than three input points.
	ErrTooFewPoints = errors.New("delaunay: at least 3 points are required")

	// ErrInvalidPolygon is returned when a boundary or hole polygon has
	// fewer than three vertices or crosses itself.
	ErrInvalidPolygon = errors.New("delaunay: invalid polygon")

	// ErrZeroExtent is returned when all points coincide, so no
	// super-triangle can enclose them.
	ErrZeroExtent = errors.New("delaunay: points have zero extent")

	// ErrDegenerateInput is wrapped by DegenerateInputError.
	ErrDegenerateInput = errors.New("delaunay: degenerate input")
)

// DegenerateInputError is returned when restoring the Delaunay condition
// around an inserted point needs more edge flips than allowed, which
// happens for exactly cocircular input that the jitter failed to break.
type DegenerateInputError struct {
	Index int    // index of the offending input point
	Point r2.Vec // the point as given by the caller
	Flips int    // flips performed before giving up
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("delaunay: point %d (%g, %g): no Delaunay configuration after %d flips",
		e.Index, e.Point.X, e.Point.Y, e.Flips)
}

func (e *DegenerateInputError) Unwrap() error {
	return ErrDegenerateInput
}
