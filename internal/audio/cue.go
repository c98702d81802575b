package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue identifies a game sound.
type Cue int

const (
	CueJump Cue = iota // Rising blip on take-off
	CueCrash           // Low buzz when a run ends
	CueBest            // Two-note chime when passing the high score
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueCrash:
		return "crash"
	case CueBest:
		return "best"
	default:
		return "unknown"
	}
}

const (
	jumpLength  = 90 * time.Millisecond
	crashLength = 260 * time.Millisecond
	noteLength  = 110 * time.Millisecond
	attack      = 5 * time.Millisecond
)

// Streamer builds a fresh streamer for the cue, scaled by volume.
// Unknown cues return nil.
func (c Cue) Streamer(rate beep.SampleRate, volume float64) beep.Streamer {
	switch c {
	case CueJump:
		s := NewFade(NewSweep(440, 880, jumpLength, rate), jumpLength, attack, 40*time.Millisecond, rate)
		return withVolume(s, volume*0.5)

	case CueCrash:
		low := NewFade(NewTone(110, crashLength, WaveSaw, rate), crashLength, attack, 180*time.Millisecond, rate)
		sub := NewFade(NewTone(55, crashLength, WaveSquare, rate), crashLength, attack, 180*time.Millisecond, rate)
		return withVolume(beep.Mix(withVolume(low, 0.6), withVolume(sub, 0.3)), volume*0.5)

	case CueBest:
		n1 := NewFade(NewTone(987.77, noteLength, WaveSquare, rate), noteLength, attack, 60*time.Millisecond, rate)
		n2 := NewFade(NewTone(1318.51, 2*noteLength, WaveSquare, rate), 2*noteLength, attack, 150*time.Millisecond, rate)
		return withVolume(beep.Seq(n1, n2), volume*0.3)

	default:
		return nil
	}
}

// Length returns how long the cue plays.
func (c Cue) Length() time.Duration {
	switch c {
	case CueJump:
		return jumpLength
	case CueCrash:
		return crashLength
	case CueBest:
		return 3 * noteLength
	default:
		return 0
	}
}
