package game

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/aurora-lab/internal/config"
)

const chimeLength = 600 * time.Millisecond

// Chime plays a short decaying tone when an idea is shuffled. The speaker is
// opened on first use; if that fails the chime turns itself off.
type Chime struct {
	enabled  bool
	initDone bool
	rate     beep.SampleRate
	log      zerolog.Logger
}

func NewChime(enabled bool, logger zerolog.Logger) *Chime {
	return &Chime{
		enabled: enabled,
		rate:    beep.SampleRate(config.ChimeSampleRate),
		log:     logger,
	}
}

func (c *Chime) Enabled() bool { return c.enabled }

func (c *Chime) Play() {
	if !c.enabled {
		return
	}
	if !c.initDone {
		if err := speaker.Init(c.rate, c.rate.N(time.Second/20)); err != nil {
			c.log.Warn().Err(err).Msg("audio unavailable, chime disabled")
			c.enabled = false
			return
		}
		c.initDone = true
	}
	speaker.Play(tone(c.rate, config.ChimeFrequency, config.ChimeDecay, config.ChimeVolume, chimeLength))
}

// tone is a sine at freq with an exponential decay envelope, cut to length.
func tone(sr beep.SampleRate, freq, decay, volume float64, length time.Duration) beep.Streamer {
	pos := 0
	return beep.Take(sr.N(length), beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			t := float64(pos) / float64(sr)
			v := volume * math.Exp(-decay*t) * math.Sin(2*math.Pi*freq*t)
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	}))
}
