package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ToneGenerator produces a sine tone with a short linear fade in and out
type ToneGenerator struct {
	sr    beep.SampleRate
	freq  float64
	total int
	pos   int
}

// NewTone creates a tone of the given frequency and length
func NewTone(sr beep.SampleRate, freq float64, d time.Duration) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq, total: sr.N(d)}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	fade := g.sr.N(5 * time.Millisecond)
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		sample := 0.2 * math.Sin(2*math.Pi*g.freq*t)

		// Envelope to avoid clicks at either end
		if fade > 0 {
			if g.pos < fade {
				sample *= float64(g.pos) / float64(fade)
			} else if left := g.total - g.pos; left < fade {
				sample *= float64(left) / float64(fade)
			}
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
