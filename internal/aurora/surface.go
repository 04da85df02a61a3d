package aurora

import "github.com/gogpu/gg"

// Composite selects how a fill is combined with what is already on the surface.
type Composite uint8

const (
	// CompositeSourceOver is plain alpha overwrite, the resting mode.
	CompositeSourceOver Composite = iota
	// CompositeScreen lightens: the result is never darker than either input.
	CompositeScreen
	// CompositeLighter adds source and destination.
	CompositeLighter
)

func (c Composite) String() string {
	switch c {
	case CompositeScreen:
		return "screen"
	case CompositeLighter:
		return "lighter"
	default:
		return "source-over"
	}
}

// RadialGradient is a two-circle gradient: colour From at the inner circle
// (X0, Y0, R0) blending to To at the outer circle (X1, Y1, R1).
type RadialGradient struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	From, To   gg.RGBA
}

// Context2D is the drawing context a Surface hands out.
// Coordinates passed to the drawing calls are in display units; the current
// transform maps them onto the backing buffer.
type Context2D interface {
	SetBufferSize(width, height int)
	BufferSize() (width, height int)
	ResetTransform()
	Scale(sx, sy float64)
	Transform() gg.Matrix

	SetComposite(mode Composite)
	SetFillGradient(g RadialGradient)
	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)
	FillCircle(cx, cy, r float64)
}

// Surface is the host element the renderer paints on.
type Surface interface {
	// DisplaySize is the laid-out size in display units.
	DisplaySize() (width, height float64)
	// DeviceScale is the physical/logical pixel ratio, or <= 0 when unknown.
	DeviceScale() float64
	// Context2D returns nil when the surface cannot provide a 2D context.
	Context2D() Context2D
	// ObserveResize registers fn for size or density changes and returns
	// the matching unsubscribe func.
	ObserveResize(fn func()) (unsubscribe func())
}

// FrameHandle identifies one pending frame request.
type FrameHandle uint64

// Scheduler runs callbacks before the host's next repaint.
type Scheduler interface {
	RequestFrame(fn func()) FrameHandle
	CancelFrame(h FrameHandle)
}
