package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone is a finite sine oscillator with a linear fade-out so the bell
// does not click when it ends.
type tone struct {
	freq     float64
	phase    float64
	duration int // total samples
	position int
	rate     beep.SampleRate
}

// NewTone creates a sine streamer at freq for the given duration.
func NewTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := math.Sin(2 * math.Pi * o.phase)

		// Fade over the final quarter.
		fadeStart := o.duration * 3 / 4
		if o.position >= fadeStart && o.duration > fadeStart {
			remain := float64(o.duration-o.position) / float64(o.duration-fadeStart)
			val *= remain
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		if o.phase >= 1.0 {
			o.phase -= 1.0
		}
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error {
	return nil
}
