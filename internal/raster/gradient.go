package raster

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/iburimskiy/aurora-lab/internal/aurora"
)

// gradient is a two-circle radial gradient. For a point P it finds the
// largest ω whose circle, centred at c0 + ω(c1-c0) with radius
// r0 + ω(r1-r0) >= 0, passes through P. Points no such circle reaches are
// not painted. Stops are interpolated in premultiplied sRGB and padded
// outside [0, 1].
type gradient struct {
	x0, y0, r0 float64
	dx, dy, dr float64

	from, to gg.RGBA
}

func newGradient(g aurora.RadialGradient) *gradient {
	return &gradient{
		x0:   g.X0,
		y0:   g.Y0,
		r0:   g.R0,
		dx:   g.X1 - g.X0,
		dy:   g.Y1 - g.Y0,
		dr:   g.R1 - g.R0,
		from: g.From.Premultiply(),
		to:   g.To.Premultiply(),
	}
}

// at returns the colour at user-space (x, y), and false where the gradient
// leaves the pixel untouched.
func (g *gradient) at(x, y float64) (premul, bool) {
	w, ok := g.omega(x, y)
	if !ok {
		return premul{}, false
	}
	c := g.from.Lerp(g.to, clamp01(w))
	return premul{r: c.R, g: c.G, b: c.B, a: c.A}, true
}

// omega solves |P - c(ω)| = r(ω), i.e. a·ω² - 2b·ω + c = 0.
func (g *gradient) omega(x, y float64) (float64, bool) {
	qx, qy := x-g.x0, y-g.y0
	a := g.dx*g.dx + g.dy*g.dy - g.dr*g.dr
	b := qx*g.dx + qy*g.dy + g.r0*g.dr
	c := qx*qx + qy*qy - g.r0*g.r0

	if a == 0 {
		if b == 0 {
			return 0, false
		}
		w := c / (2 * b)
		return w, g.radius(w) >= 0
	}

	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	hi, lo := (b+sq)/a, (b-sq)/a
	if hi < lo {
		hi, lo = lo, hi
	}
	if g.radius(hi) >= 0 {
		return hi, true
	}
	if g.radius(lo) >= 0 {
		return lo, true
	}
	return 0, false
}

func (g *gradient) radius(w float64) float64 {
	return g.r0 + w*g.dr
}
