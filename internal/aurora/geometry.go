package aurora

import (
	"math"

	"github.com/gogpu/gg"
)

// Palette is the colour pair of one aurora band.
type Palette struct {
	Start gg.RGBA
	End   gg.RGBA
}

// OrbitBody is a soft glow circling the surface centre.
type OrbitBody struct {
	Radius       float64
	AngularSpeed float64 // radians per tick, sign is direction
	XOffset      float64
	YOffset      float64
}

var (
	glowCore = gg.RGBA2(1, 1, 1, 0.35)
	glowEdge = gg.RGBA2(1, 1, 1, 0)
)

// WashGradient returns the gradient of palette i at the given tick on a
// w x h surface.
func WashGradient(p Palette, i int, tick uint64, w, h float64) RadialGradient {
	t := float64(tick)
	fi := float64(i)
	return RadialGradient{
		X0: w * (0.2 + math.Sin(t*0.0006+fi)*0.2),
		Y0: h * (0.3 + math.Cos(t*0.0004+fi)*0.2),
		R0: 0,
		X1: w * (0.5 + math.Sin(t*0.0002+fi)*0.4),
		Y1: h * (0.6 + math.Sin(t*0.0003+fi*2)*0.3),
		R1: w * 0.8,

		From: p.Start,
		To:   p.End,
	}
}

// OrbitCenter returns where body i sits at the given tick.
func OrbitCenter(b OrbitBody, i int, tick uint64, w, h float64) (x, y float64) {
	angle := float64(tick) * b.AngularSpeed
	fi := float64(i)
	x = w/2 + b.XOffset + math.Sin(angle+fi)*(b.Radius+60)
	y = h/2 + b.YOffset + math.Cos(angle-fi)*(b.Radius+100)
	return x, y
}

// GlowGradient fades from translucent white at (x, y) to nothing at the
// body's radius.
func GlowGradient(b OrbitBody, x, y float64) RadialGradient {
	return RadialGradient{
		X0: x, Y0: y, R0: 0,
		X1: x, Y1: y, R1: b.Radius,

		From: glowCore,
		To:   glowEdge,
	}
}
