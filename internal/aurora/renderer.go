// Package aurora paints the drifting gradient wash and orbiting glows behind
// the hero section.
//
// A Renderer owns one Surface. It keeps the surface's backing buffer sized to
// its displayed size times the device scale, and repaints once per frame
// through a Scheduler until Stop is called. Everything runs on the host's
// single UI goroutine; the renderer holds no locks.
package aurora

import (
	"github.com/rs/zerolog"
)

// Options carries the fixed scene for one renderer.
type Options struct {
	Palettes []Palette
	Bodies   []OrbitBody
	Logger   zerolog.Logger
}

// Renderer is the aurora animation loop bound to one surface.
type Renderer struct {
	surface Surface
	ctx     Context2D
	sched   Scheduler
	log     zerolog.Logger

	palettes []Palette
	bodies   []OrbitBody

	tick      uint64
	frame     FrameHandle
	pending   bool
	active    bool
	unobserve func()
}

// Start binds a renderer to surface and schedules its first frame.
// If the surface has no 2D context the returned renderer is inactive and
// has neither drawn nor scheduled anything.
func Start(surface Surface, sched Scheduler, opts Options) *Renderer {
	r := &Renderer{
		surface:  surface,
		sched:    sched,
		log:      opts.Logger,
		palettes: append([]Palette(nil), opts.Palettes...),
		bodies:   append([]OrbitBody(nil), opts.Bodies...),
	}

	ctx := surface.Context2D()
	if ctx == nil {
		return r
	}
	r.ctx = ctx
	r.active = true

	r.Sync()
	r.unobserve = surface.ObserveResize(r.Sync)

	r.frame = sched.RequestFrame(r.paint)
	r.pending = true

	bw, bh := ctx.BufferSize()
	r.log.Debug().
		Int("palettes", len(r.palettes)).
		Int("bodies", len(r.bodies)).
		Int("buffer_w", bw).
		Int("buffer_h", bh).
		Msg("aurora started")
	return r
}

// Active reports whether the renderer is painting.
func (r *Renderer) Active() bool { return r.active }

// Tick is the number of frames painted so far.
func (r *Renderer) Tick() uint64 { return r.tick }

// Sync matches the backing buffer to the displayed size and device scale and
// resets the transform so drawing stays in display units. Calling it again
// without a size change leaves buffer and transform as they were.
func (r *Renderer) Sync() {
	if r.ctx == nil {
		return
	}
	w, h := r.surface.DisplaySize()
	s := densityScale(r.surface.DeviceScale())

	bw, bh := int(w*s), int(h*s)
	if cw, ch := r.ctx.BufferSize(); cw != bw || ch != bh {
		r.log.Debug().Int("buffer_w", bw).Int("buffer_h", bh).Float64("scale", s).Msg("aurora resized")
	}
	r.ctx.SetBufferSize(bw, bh)
	r.ctx.ResetTransform()
	r.ctx.Scale(s, s)
}

// Stop cancels the pending frame and drops the resize subscription.
// It is safe to call more than once.
func (r *Renderer) Stop() {
	if !r.active {
		return
	}
	r.active = false

	if r.pending {
		r.sched.CancelFrame(r.frame)
		r.pending = false
	}
	if r.unobserve != nil {
		r.unobserve()
		r.unobserve = nil
	}
	r.log.Debug().Uint64("tick", r.tick).Msg("aurora stopped")
}

func (r *Renderer) paint() {
	r.pending = false

	w, h := r.surface.DisplaySize()
	r.ctx.ClearRect(0, 0, w, h)
	r.tick++

	r.ctx.SetComposite(CompositeScreen)
	for i, p := range r.palettes {
		r.ctx.SetFillGradient(WashGradient(p, i, r.tick, w, h))
		r.ctx.FillRect(0, 0, w, h)
	}

	r.ctx.SetComposite(CompositeLighter)
	for i, b := range r.bodies {
		x, y := OrbitCenter(b, i, r.tick, w, h)
		r.ctx.SetFillGradient(GlowGradient(b, x, y))
		r.ctx.FillCircle(x, y, b.Radius)
	}

	r.ctx.SetComposite(CompositeSourceOver)

	// Stop may have run from a callback sharing this frame.
	if !r.active {
		return
	}
	r.frame = r.sched.RequestFrame(r.paint)
	r.pending = true
}

func densityScale(s float64) float64 {
	if s <= 0 {
		return 1
	}
	return s
}
