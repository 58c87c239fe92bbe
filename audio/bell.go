// Package audio provides the shell's audible bell.
//
// Engines request a bell through an engine event; the shell forwards it
// here. Audio is best-effort: if the speaker cannot be initialized the
// bell stays silent and the shell keeps running.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

const (
	bellFreq     = 880.0
	bellDuration = 90 * time.Millisecond
)

// Bell owns the speaker and a mixer that bell tones are added to.
type Bell struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewBell creates an uninitialized bell.
func NewBell() *Bell {
	return &Bell{mixer: &beep.Mixer{}}
}

// Init opens the speaker. Returns the speaker error on failure; the bell
// remains usable (silently) either way.
func (b *Bell) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Ring plays a short tone. No-op when the speaker is not initialized.
func (b *Bell) Ring() {
	b.mu.Lock()
	initialized := b.initialized
	b.mu.Unlock()
	if !initialized {
		return
	}

	tone := NewTone(bellFreq, bellDuration, sampleRate)
	speaker.Lock()
	b.mixer.Add(tone)
	speaker.Unlock()
}

// Close stops playback and releases the speaker.
func (b *Bell) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	b.initialized = false
}
