// Package raster implements aurora.Context2D in software on a premultiplied
// image.RGBA. Transforms and colours are gg types; gradients, coverage and
// compositing are done here because gg's software fill only paints solid
// patterns and has no additive mode.
package raster

import (
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/iburimskiy/aurora-lab/internal/aurora"
)

// latticeStep is the spacing, in device pixels, at which gradients are
// sampled. Pixels in between are bilinearly interpolated.
const latticeStep = 4

var _ aurora.Context2D = (*Canvas)(nil)

// Canvas is a software 2D context.
type Canvas struct {
	img    *image.RGBA
	matrix gg.Matrix
	mode   aurora.Composite
	fill   *gradient

	inv     gg.Matrix
	lattice []sample
}

// sample is a lattice point; ok is false where the gradient paints nothing.
type sample struct {
	c  premul
	ok bool
}

// New returns a canvas with a width x height backing buffer.
func New(width, height int) *Canvas {
	c := &Canvas{matrix: gg.Identity()}
	c.SetBufferSize(width, height)
	return c
}

// Image returns the live backing buffer.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Snapshot returns a copy of the backing buffer.
func (c *Canvas) Snapshot() *image.RGBA {
	out := image.NewRGBA(c.img.Rect)
	copy(out.Pix, c.img.Pix)
	return out
}

// SetBufferSize reallocates the backing buffer when the size changes.
// Negative sizes are treated as zero.
func (c *Canvas) SetBufferSize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if c.img != nil && c.img.Rect.Dx() == width && c.img.Rect.Dy() == height {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

func (c *Canvas) BufferSize() (int, int) {
	return c.img.Rect.Dx(), c.img.Rect.Dy()
}

func (c *Canvas) ResetTransform() { c.matrix = gg.Identity() }

func (c *Canvas) Scale(sx, sy float64) {
	c.matrix = c.matrix.Multiply(gg.Scale(sx, sy))
}

func (c *Canvas) Transform() gg.Matrix { return c.matrix }

// Composite is the mode the next fill will use.
func (c *Canvas) Composite() aurora.Composite { return c.mode }

func (c *Canvas) SetComposite(mode aurora.Composite) { c.mode = mode }

func (c *Canvas) SetFillGradient(g aurora.RadialGradient) {
	c.fill = newGradient(g)
}

// ClearRect sets every pixel whose centre lies in the rectangle to
// transparent black.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	r := c.deviceRect(x, y, w, h)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		row := c.img.Pix[c.img.PixOffset(r.Min.X, py):c.img.PixOffset(r.Max.X, py)]
		clear(row)
	}
}

func (c *Canvas) FillRect(x, y, w, h float64) {
	if c.fill == nil {
		return
	}
	r := c.deviceRect(x, y, w, h)
	c.shade(r, func(int, int) float64 { return 1 })
}

func (c *Canvas) FillCircle(cx, cy, radius float64) {
	if c.fill == nil || radius <= 0 {
		return
	}
	center := c.matrix.TransformPoint(gg.Pt(cx, cy))
	rd := radius * math.Sqrt(math.Abs(c.matrix.A*c.matrix.E-c.matrix.B*c.matrix.D))

	r := image.Rect(
		int(math.Floor(center.X-rd-1)), int(math.Floor(center.Y-rd-1)),
		int(math.Ceil(center.X+rd+1)), int(math.Ceil(center.Y+rd+1)),
	).Intersect(c.img.Rect)

	c.shade(r, func(px, py int) float64 {
		dx := float64(px) + 0.5 - center.X
		dy := float64(py) + 0.5 - center.Y
		return clamp01(rd - math.Hypot(dx, dy) + 0.5)
	})
}

// deviceRect maps a user-space rectangle to the buffer pixels whose centres
// it contains.
func (c *Canvas) deviceRect(x, y, w, h float64) image.Rectangle {
	p0 := c.matrix.TransformPoint(gg.Pt(x, y))
	p1 := c.matrix.TransformPoint(gg.Pt(x+w, y+h))
	minX, maxX := math.Min(p0.X, p1.X), math.Max(p0.X, p1.X)
	minY, maxY := math.Min(p0.Y, p1.Y), math.Max(p0.Y, p1.Y)

	return image.Rect(
		int(math.Ceil(minX-0.5)), int(math.Ceil(minY-0.5)),
		int(math.Ceil(maxX-0.5)), int(math.Ceil(maxY-0.5)),
	).Intersect(c.img.Rect)
}

// shade composites the current gradient over r, weighting each pixel by
// coverage. Cells whose corners are all painted are interpolated; the rest
// are evaluated per pixel so the gradient keeps a sharp edge.
func (c *Canvas) shade(r image.Rectangle, coverage func(px, py int) float64) {
	if r.Empty() {
		return
	}
	c.inv = c.matrix.Invert()
	cols := (r.Dx()-1)/latticeStep + 2
	rows := (r.Dy()-1)/latticeStep + 2
	c.sampleLattice(r, cols, rows)

	for py := r.Min.Y; py < r.Max.Y; py++ {
		ly := (py - r.Min.Y) / latticeStep
		fy := float64((py-r.Min.Y)%latticeStep) / latticeStep

		for px := r.Min.X; px < r.Max.X; px++ {
			k := coverage(px, py)
			if k <= 0 {
				continue
			}
			lx := (px - r.Min.X) / latticeStep
			fx := float64((px-r.Min.X)%latticeStep) / latticeStep

			var src premul
			s00, s10 := c.lattice[ly*cols+lx], c.lattice[ly*cols+lx+1]
			s01, s11 := c.lattice[(ly+1)*cols+lx], c.lattice[(ly+1)*cols+lx+1]
			if s00.ok && s10.ok && s01.ok && s11.ok {
				src = lerp(lerp(s00.c, s10.c, fx), lerp(s01.c, s11.c, fx), fy)
			} else {
				p, ok := c.sampleAt(float64(px)+0.5, float64(py)+0.5)
				if !ok {
					continue
				}
				src = p
			}
			src = src.scale(k)

			pix := c.img.Pix[c.img.PixOffset(px, py):]
			store(pix, blend(c.mode, src, load(pix)))
		}
	}
}

func (c *Canvas) sampleLattice(r image.Rectangle, cols, rows int) {
	if cap(c.lattice) < cols*rows {
		c.lattice = make([]sample, cols*rows)
	}
	c.lattice = c.lattice[:cols*rows]

	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			p, ok := c.sampleAt(
				float64(r.Min.X+i*latticeStep)+0.5,
				float64(r.Min.Y+j*latticeStep)+0.5,
			)
			c.lattice[j*cols+i] = sample{c: p, ok: ok}
		}
	}
}

// sampleAt evaluates the fill at a device-space point.
func (c *Canvas) sampleAt(x, y float64) (premul, bool) {
	user := c.inv.TransformPoint(gg.Pt(x, y))
	return c.fill.at(user.X, user.Y)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
