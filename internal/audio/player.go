package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays cues through the system speaker. A nil *Player is valid
// and silent, so callers never need to check whether sound is enabled.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
}

// speakerOnce guards speaker.Init, which may only run once per process.
var (
	speakerOnce sync.Once
	speakerErr  error
)

// NewPlayer initializes the speaker. volume is a linear factor in [0, 1].
func NewPlayer(volume float64) (*Player, error) {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond))
	})
	if speakerErr != nil {
		return nil, fmt.Errorf("audio: cannot initialize speaker: %w", speakerErr)
	}

	p := &Player{mixer: &beep.Mixer{}, volume: volume}
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues a cue. It never blocks on playback.
func (p *Player) Play(c Cue) {
	if p == nil {
		return
	}
	p.mu.Lock()
	vol := p.volume
	p.mu.Unlock()

	s := c.Streamer(sampleRate, vol)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// SetVolume changes the volume of cues played from now on.
func (p *Player) SetVolume(volume float64) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.volume = volume
	p.mu.Unlock()
}

// Close silences anything still playing.
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}
