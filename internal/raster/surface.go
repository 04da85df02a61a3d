package raster

import (
	"github.com/iburimskiy/aurora-lab/internal/aurora"
)

var _ aurora.Surface = (*Surface)(nil)

// Surface is a host element backed by a Canvas. Hosts call Resize when their
// layout or pixel density changes; observers run synchronously on the
// caller's goroutine.
type Surface struct {
	canvas *Canvas

	width, height float64
	scale         float64

	observers []observer
	nextID    int
}

type observer struct {
	id int
	fn func()
}

// NewSurface returns a surface of the given display size. A nil canvas makes
// a surface without a 2D context.
func NewSurface(canvas *Canvas, width, height, scale float64) *Surface {
	return &Surface{canvas: canvas, width: width, height: height, scale: scale}
}

func (s *Surface) DisplaySize() (float64, float64) { return s.width, s.height }

func (s *Surface) DeviceScale() float64 { return s.scale }

func (s *Surface) Canvas() *Canvas { return s.canvas }

func (s *Surface) Context2D() aurora.Context2D {
	if s.canvas == nil {
		return nil
	}
	return s.canvas
}

func (s *Surface) ObserveResize(fn func()) func() {
	id := s.nextID
	s.nextID++
	s.observers = append(s.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// Resize updates the display size and scale and notifies observers when
// either changed. It reports whether anything changed.
func (s *Surface) Resize(width, height, scale float64) bool {
	if width == s.width && height == s.height && scale == s.scale {
		return false
	}
	s.width, s.height, s.scale = width, height, scale

	observers := append([]observer(nil), s.observers...)
	for _, o := range observers {
		o.fn()
	}
	return true
}
