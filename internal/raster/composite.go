package raster

import (
	"math"

	"github.com/iburimskiy/aurora-lab/internal/aurora"
)

// premul is a colour with alpha already multiplied in, channels in [0, 1].
type premul struct {
	r, g, b, a float64
}

func (p premul) scale(k float64) premul {
	return premul{r: p.r * k, g: p.g * k, b: p.b * k, a: p.a * k}
}

func lerp(a, b premul, t float64) premul {
	return premul{
		r: a.r + (b.r-a.r)*t,
		g: a.g + (b.g-a.g)*t,
		b: a.b + (b.b-a.b)*t,
		a: a.a + (b.a-a.a)*t,
	}
}

// blend composites src onto dst. With premultiplied channels screen reduces
// to s + d - s*d on every channel, alpha included.
func blend(mode aurora.Composite, s, d premul) premul {
	switch mode {
	case aurora.CompositeScreen:
		return premul{
			r: s.r + d.r - s.r*d.r,
			g: s.g + d.g - s.g*d.g,
			b: s.b + d.b - s.b*d.b,
			a: s.a + d.a - s.a*d.a,
		}
	case aurora.CompositeLighter:
		return premul{
			r: math.Min(1, s.r+d.r),
			g: math.Min(1, s.g+d.g),
			b: math.Min(1, s.b+d.b),
			a: math.Min(1, s.a+d.a),
		}
	default:
		k := 1 - s.a
		return premul{
			r: s.r + d.r*k,
			g: s.g + d.g*k,
			b: s.b + d.b*k,
			a: s.a + d.a*k,
		}
	}
}

func load(pix []uint8) premul {
	return premul{
		r: float64(pix[0]) / 255,
		g: float64(pix[1]) / 255,
		b: float64(pix[2]) / 255,
		a: float64(pix[3]) / 255,
	}
}

// store writes p back as 8-bit premultiplied RGBA, keeping colour <= alpha.
func store(pix []uint8, p premul) {
	a := to8(p.a)
	pix[0] = min(to8(p.r), a)
	pix[1] = min(to8(p.g), a)
	pix[2] = min(to8(p.b), a)
	pix[3] = a
}

func to8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
