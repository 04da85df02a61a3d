package aurora

import (
	"github.com/gogpu/gg"
)

type call struct {
	op   string
	mode Composite
	grad RadialGradient
	args [4]float64
}

// recorder is a Context2D that only logs what it is asked to do.
type recorder struct {
	bw, bh int
	matrix gg.Matrix
	calls  []call
	onFill func()
}

func newRecorder() *recorder {
	return &recorder{matrix: gg.Identity()}
}

func (c *recorder) SetBufferSize(w, h int) {
	c.bw, c.bh = w, h
}

func (c *recorder) BufferSize() (int, int) {
	return c.bw, c.bh
}

func (c *recorder) ResetTransform() {
	c.matrix = gg.Identity()
}

func (c *recorder) Scale(sx, sy float64) {
	c.matrix = c.matrix.Multiply(gg.Scale(sx, sy))
}

func (c *recorder) Transform() gg.Matrix {
	return c.matrix
}

func (c *recorder) SetComposite(mode Composite) {
	c.calls = append(c.calls, call{op: "composite", mode: mode})
}

func (c *recorder) SetFillGradient(g RadialGradient) {
	c.calls = append(c.calls, call{op: "gradient", grad: g})
}

func (c *recorder) ClearRect(x, y, w, h float64) {
	c.calls = append(c.calls, call{op: "clear", args: [4]float64{x, y, w, h}})
}

func (c *recorder) FillRect(x, y, w, h float64) {
	c.calls = append(c.calls, call{op: "rect", args: [4]float64{x, y, w, h}})
	if c.onFill != nil {
		c.onFill()
	}
}

func (c *recorder) FillCircle(cx, cy, r float64) {
	c.calls = append(c.calls, call{op: "circle", args: [4]float64{cx, cy, r}})
	if c.onFill != nil {
		c.onFill()
	}
}

func (c *recorder) count(op string) int {
	n := 0
	for _, cl := range c.calls {
		if cl.op == op {
			n++
		}
	}
	return n
}

type fakeSurface struct {
	w, h      float64
	scale     float64
	ctx       *recorder
	observers map[int]func()
	nextID    int
}

func newSurface(w, h, scale float64) *fakeSurface {
	return &fakeSurface{w: w, h: h, scale: scale, ctx: newRecorder(), observers: map[int]func(){}}
}

func (s *fakeSurface) DisplaySize() (float64, float64) {
	return s.w, s.h
}

func (s *fakeSurface) DeviceScale() float64 {
	return s.scale
}

func (s *fakeSurface) Context2D() Context2D {
	if s.ctx == nil {
		return nil
	}
	return s.ctx
}

func (s *fakeSurface) ObserveResize(fn func()) func() {
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	return func() { delete(s.observers, id) }
}

func (s *fakeSurface) resize(w, h float64) {
	s.w, s.h = w, h
	for _, fn := range s.observers {
		fn()
	}
}

// manualScheduler queues frames until the test runs them.
type manualScheduler struct {
	next      FrameHandle
	pending   map[FrameHandle]func()
	requested int
	cancelled int
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{pending: map[FrameHandle]func(){}}
}

func (m *manualScheduler) RequestFrame(fn func()) FrameHandle {
	m.next++
	m.requested++
	m.pending[m.next] = fn
	return m.next
}

func (m *manualScheduler) CancelFrame(h FrameHandle) {
	if _, ok := m.pending[h]; ok {
		m.cancelled++
		delete(m.pending, h)
	}
}

// step runs every frame pending right now and reports how many ran.
func (m *manualScheduler) step() int {
	batch := m.pending
	m.pending = map[FrameHandle]func(){}
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}
