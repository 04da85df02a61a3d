package aurora

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

var testPalettes = []Palette{
	{Start: gg.RGBA2(0.42, 0.27, 0.76, 0.55), End: gg.RGBA2(0.18, 0.77, 0.99, 0.45)},
	{Start: gg.RGBA2(1, 0.44, 0.57, 0.55), End: gg.RGBA2(1, 0.8, 0.44, 0.45)},
}

var testBodies = []OrbitBody{
	{Radius: 140, AngularSpeed: 0.0008, XOffset: 240, YOffset: -120},
	{Radius: 70, AngularSpeed: -0.0014, XOffset: -160, YOffset: 80},
}

func TestWashGradientAtTickZero(t *testing.T) {
	const w, h = 800.0, 600.0
	for i, p := range testPalettes {
		fi := float64(i)
		g := WashGradient(p, i, 0, w, h)

		want := RadialGradient{
			X0: w * (0.2 + math.Sin(fi)*0.2),
			Y0: h * (0.3 + math.Cos(fi)*0.2),
			X1: w * (0.5 + math.Sin(fi)*0.4),
			Y1: h * (0.6 + math.Sin(2*fi)*0.3),
			R1: w * 0.8,

			From: p.Start,
			To:   p.End,
		}
		if g != want {
			t.Fatalf("palette %d: got %+v, want %+v", i, g, want)
		}
	}

	g := WashGradient(testPalettes[0], 0, 0, w, h)
	if g.X0 != 160 || g.Y0 != 300 || g.X1 != 400 || g.Y1 != 360 || g.R1 != 640 {
		t.Fatalf("palette 0 at tick 0: got %+v", g)
	}
}

func TestWashGradientDeterministic(t *testing.T) {
	for _, tick := range []uint64{1, 17, 1000, 1 << 20} {
		a := WashGradient(testPalettes[1], 1, tick, 1280, 720)
		b := WashGradient(testPalettes[1], 1, tick, 1280, 720)
		if a != b {
			t.Fatalf("tick %d: %+v != %+v", tick, a, b)
		}
	}
}

func TestOrbitCenterAtTickZero(t *testing.T) {
	const w, h = 800.0, 600.0

	x, y := OrbitCenter(testBodies[0], 0, 0, w, h)
	if x != 640 || y != 420 {
		t.Fatalf("body 0: got (%v, %v), want (640, 420)", x, y)
	}

	x, y = OrbitCenter(testBodies[1], 1, 0, w, h)
	wantX := w/2 - 160 + math.Sin(1)*130
	wantY := h/2 + 80 + math.Cos(-1)*170
	if x != wantX || y != wantY {
		t.Fatalf("body 1: got (%v, %v), want (%v, %v)", x, y, wantX, wantY)
	}
}

func TestOrbitCenterFollowsSpeedSign(t *testing.T) {
	fwd := OrbitBody{Radius: 50, AngularSpeed: 0.01}
	rev := OrbitBody{Radius: 50, AngularSpeed: -0.01}

	xf, _ := OrbitCenter(fwd, 0, 100, 400, 400)
	xr, _ := OrbitCenter(rev, 0, 100, 400, 400)
	if xf <= 200 || xr >= 200 {
		t.Fatalf("expected opposite sides of centre, got %v and %v", xf, xr)
	}
}

func TestGlowGradientFadesToTransparent(t *testing.T) {
	g := GlowGradient(testBodies[1], 12, 34)
	if g.X0 != 12 || g.X1 != 12 || g.Y0 != 34 || g.Y1 != 34 {
		t.Fatalf("glow not centred: %+v", g)
	}
	if g.R0 != 0 || g.R1 != 70 {
		t.Fatalf("glow radii: %v -> %v", g.R0, g.R1)
	}
	if g.From.A != 0.35 || g.To.A != 0 {
		t.Fatalf("glow alpha: %v -> %v", g.From.A, g.To.A)
	}
}
