// Package plot renders meshes as anti-aliased wireframe images.
package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/gogpu/halfedge"
	"golang.org/x/image/colornames"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrInvalidSize is returned for a non-positive image size.
var ErrInvalidSize = errors.New("plot: invalid image size")

// Options controls Wireframe.
type Options struct {
	Width, Height int

	// Yaw rotates the mesh around Z, then Pitch around X, both in radians,
	// before it is projected onto the XY plane.
	Yaw, Pitch float64

	LineWidth float64 // pixels
	Margin    float64 // fraction of the image left empty on each side

	// Caption is drawn in the bottom-left corner when not empty.
	Caption string

	Background, Edge, Vertex color.Color
}

// DefaultOptions returns a 512x512 plot with a slight tilt.
func DefaultOptions() Options {
	return Options{
		Width:      512,
		Height:     512,
		Yaw:        math.Pi / 7,
		Pitch:      -math.Pi / 5,
		LineWidth:  1.5,
		Margin:     0.08,
		Background: colornames.White,
		Edge:       colornames.Steelblue,
		Vertex:     colornames.Darkslategray,
	}
}

// Wireframe draws every edge of m as a line and every vertex as a dot.
func Wireframe(m *halfedge.Mesh, opts Options) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}
	fillDefaults(&opts)

	dst := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, xdraw.Src)

	screen, err := project(m, opts)
	if err != nil {
		return nil, err
	}

	z := vector.NewRasterizer(opts.Width, opts.Height)
	half := opts.LineWidth / 2
	for e := range m.Edges() {
		addSegment(z, screen[e.U], screen[e.V], half)
	}
	z.Draw(dst, dst.Bounds(), image.NewUniform(opts.Edge), image.Point{})

	z.Reset(opts.Width, opts.Height)
	for _, p := range screen {
		addDot(z, p, 1.5*opts.LineWidth)
	}
	z.Draw(dst, dst.Bounds(), image.NewUniform(opts.Vertex), image.Point{})

	if opts.Caption != "" {
		if err := drawCaption(dst, opts); err != nil {
			return nil, err
		}
	}
	halfedge.Logger().Debug("plot: wireframe",
		"width", opts.Width, "height", opts.Height, "vertices", len(screen), "edges", m.NumEdges())
	return dst, nil
}

func fillDefaults(opts *Options) {
	def := DefaultOptions()
	if opts.LineWidth <= 0 {
		opts.LineWidth = def.LineWidth
	}
	if opts.Margin <= 0 || opts.Margin >= 0.5 {
		opts.Margin = def.Margin
	}
	if opts.Background == nil {
		opts.Background = def.Background
	}
	if opts.Edge == nil {
		opts.Edge = def.Edge
	}
	if opts.Vertex == nil {
		opts.Vertex = def.Vertex
	}
}

// project rotates every vertex, drops Z and fits the result into the
// image, flipping Y so that up is up.
func project(m *halfedge.Mesh, opts Options) (map[halfedge.VertexKey]r2.Vec, error) {
	yaw := r3.NewRotation(opts.Yaw, r3.Vec{Z: 1})
	pitch := r3.NewRotation(opts.Pitch, r3.Vec{X: 1})

	flat := make(map[halfedge.VertexKey]r2.Vec, m.NumVertices())
	lo := r2.Vec{X: math.Inf(1), Y: math.Inf(1)}
	hi := r2.Vec{X: math.Inf(-1), Y: math.Inf(-1)}
	for v := range m.Vertices() {
		p, err := m.Vertex(v)
		if err != nil {
			return nil, err
		}
		p = pitch.Rotate(yaw.Rotate(p))
		q := r2.Vec{X: p.X, Y: p.Y}
		flat[v] = q
		lo = r2.Vec{X: min(lo.X, q.X), Y: min(lo.Y, q.Y)}
		hi = r2.Vec{X: max(hi.X, q.X), Y: max(hi.Y, q.Y)}
	}
	if len(flat) == 0 {
		return flat, nil
	}

	w, h := float64(opts.Width), float64(opts.Height)
	size := r2.Sub(hi, lo)
	scale := math.Min(w*(1-2*opts.Margin)/size.X, h*(1-2*opts.Margin)/size.Y)
	if math.IsInf(scale, 0) || math.IsNaN(scale) {
		scale = 1
	}
	mid := r2.Scale(0.5, r2.Add(lo, hi))
	for v, q := range flat {
		d := r2.Scale(scale, r2.Sub(q, mid))
		flat[v] = r2.Vec{X: w/2 + d.X, Y: h/2 - d.Y}
	}
	return flat, nil
}

// addSegment adds the rectangle around ab. Every rectangle is wound the
// same way so overlapping lines do not cancel out.
func addSegment(z *vector.Rasterizer, a, b r2.Vec, half float64) {
	d := r2.Sub(b, a)
	length := r2.Norm(d)
	if length == 0 {
		return
	}
	n := r2.Scale(half/length, r2.Vec{X: -d.Y, Y: d.X})
	corners := [4]r2.Vec{r2.Add(a, n), r2.Add(b, n), r2.Sub(b, n), r2.Sub(a, n)}
	z.MoveTo(float32(corners[0].X), float32(corners[0].Y))
	for _, c := range corners[1:] {
		z.LineTo(float32(c.X), float32(c.Y))
	}
	z.ClosePath()
}

// addDot adds an octagon of radius r around p.
func addDot(z *vector.Rasterizer, p r2.Vec, r float64) {
	const sides = 8
	for i := range sides {
		a := 2 * math.Pi * float64(i) / sides
		x, y := float32(p.X+r*math.Cos(a)), float32(p.Y+r*math.Sin(a))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}

var regular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

func drawCaption(dst *image.RGBA, opts Options) error {
	f, err := regular()
	if err != nil {
		return fmt.Errorf("plot: failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 13, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return fmt.Errorf("plot: failed to create face: %w", err)
	}
	defer face.Close()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(opts.Vertex),
		Face: face,
		Dot:  fixed.P(8, opts.Height-8),
	}
	d.DrawString(opts.Caption)
	return nil
}
