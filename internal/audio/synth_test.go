package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

// drain streams s to completion and returns the sample count.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if math.Abs(buf[j][0]) > 1.0001 || math.Abs(buf[j][1]) > 1.0001 {
				t.Fatalf("sample %d out of range: %v", total+j, buf[j])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never drained")
	return 0
}

func TestToneLength(t *testing.T) {
	waves := []Wave{WaveSine, WaveSquare, WaveSaw}
	for _, w := range waves {
		got := drain(t, NewTone(440, 50*time.Millisecond, w, testRate))
		if want := testRate.N(50 * time.Millisecond); got != want {
			t.Errorf("wave %d: streamed %d samples, expected %d", w, got, want)
		}
	}
}

func TestToneSquareValues(t *testing.T) {
	s := NewTone(220, 10*time.Millisecond, WaveSquare, testRate)
	buf := make([][2]float64, 100)
	n, ok := s.Stream(buf)
	if !ok || n != 100 {
		t.Fatalf("Stream() = %d, %v", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 1 && v != -1 {
			t.Fatalf("square sample %d = %v", i, v)
		}
	}
}

func TestSweepLength(t *testing.T) {
	got := drain(t, NewSweep(200, 800, 30*time.Millisecond, testRate))
	if want := testRate.N(30 * time.Millisecond); got != want {
		t.Errorf("streamed %d samples, expected %d", got, want)
	}
}

func TestFadeEnvelope(t *testing.T) {
	d := 100 * time.Millisecond
	s := NewFade(NewTone(0, d, WaveSquare, testRate), d, 10*time.Millisecond, 10*time.Millisecond, testRate)

	total := testRate.N(d)
	buf := make([][2]float64, total)
	n, _ := s.Stream(buf)
	if n != total {
		t.Fatalf("streamed %d, expected %d", n, total)
	}

	// A zero-frequency square wave is a constant 1, so the output is the envelope
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, expected silence", buf[0][0])
	}
	if mid := buf[total/2][0]; mid != 1 {
		t.Errorf("sustain sample = %v, expected 1", mid)
	}
	if last := buf[total-1][0]; last <= 0 || last > 0.01 {
		t.Errorf("last sample = %v, expected near silence", last)
	}
}

func TestCueStreamers(t *testing.T) {
	tests := []struct {
		cue  Cue
		name string
	}{
		{CueJump, "jump"},
		{CueCrash, "crash"},
		{CueBest, "best"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.cue.String() != tc.name {
				t.Errorf("String() = %q", tc.cue.String())
			}
			s := tc.cue.Streamer(testRate, 1)
			if s == nil {
				t.Fatal("Streamer() returned nil")
			}
			got := drain(t, s)
			want := testRate.N(tc.cue.Length())
			if got < want-2 || got > want+2 {
				t.Errorf("cue streamed %d samples, expected about %d", got, want)
			}
		})
	}

	if Cue(99).Streamer(testRate, 1) != nil {
		t.Error("unknown cue should have no streamer")
	}
}

func TestNilPlayerIsSilent(t *testing.T) {
	var p *Player
	p.Play(CueJump)
	p.SetVolume(0.5)
	p.Close()
}
