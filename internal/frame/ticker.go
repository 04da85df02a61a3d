package frame

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultFPS is the fallback refresh rate.
const DefaultFPS = 60

// Ticker flushes a Queue at a fixed rate on a single loop goroutine.
// Work posted with Post runs on that same goroutine, between frames, so
// resize and input handling never race a paint.
type Ticker struct {
	*Queue

	interval time.Duration
	log      zerolog.Logger

	posts    chan func()
	stopChan chan struct{}
	stopOnce sync.Once
	frames   uint64
}

// NewTicker returns a ticker running at fps frames per second. Values
// outside [1, 240] fall back to DefaultFPS.
func NewTicker(fps int, logger zerolog.Logger) *Ticker {
	if fps < 1 || fps > 240 {
		fps = DefaultFPS
	}
	return &Ticker{
		Queue:    NewQueue(),
		interval: time.Second / time.Duration(fps),
		log:      logger,
		posts:    make(chan func(), 64),
		stopChan: make(chan struct{}),
	}
}

// Interval is the time between flushes.
func (t *Ticker) Interval() time.Duration { return t.interval }

// Post schedules fn to run on the loop goroutine. It reports false once the
// ticker has stopped.
func (t *Ticker) Post(fn func()) bool {
	select {
	case <-t.stopChan:
		return false
	default:
	}
	select {
	case t.posts <- fn:
		return true
	case <-t.stopChan:
		return false
	}
}

// Run drives the loop until ctx is done or Stop is called. It returns
// ctx.Err() in the first case and nil in the second.
func (t *Ticker) Run(ctx context.Context) error {
	tick := time.NewTicker(t.interval)
	defer tick.Stop()

	t.log.Debug().Dur("interval", t.interval).Msg("frame loop started")
	defer func() {
		t.log.Debug().Uint64("frames", t.frames).Msg("frame loop stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.stopChan:
			return nil
		case fn := <-t.posts:
			fn()
		case <-tick.C:
			if t.Flush() > 0 {
				t.frames++
			}
		}
	}
}

// Stop ends Run. Pending callbacks are not run. Safe to call repeatedly.
func (t *Ticker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopChan)
	})
}
