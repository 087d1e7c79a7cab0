package pitch

import (
	"math"
	"testing"
)

// sine generates secs seconds of a sine tone at the given amplitude,
// normalized to [-1, 1] like the mixdown the analyzer feeds in.
func sine(freq float64, secs float64, rate int, amp float64) []float64 {
	n := int(secs * float64(rate))
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = amp * math.Sin(2*math.Pi*freq*float64(i)/float64(rate))
	}
	return samples
}

func TestTrackSineTone(t *testing.T) {
	tests := []struct {
		name string
		freq float64
	}{
		{"concert A", 440},
		{"low voice", 220},
		{"high tone", 1000},
	}

	cfg := DefaultConfig()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := sine(tt.freq, 1.0, 44100, 0.9)
			got := Track(samples, 44100, cfg)
			if math.Abs(got-tt.freq) > 40 {
				t.Errorf("Track(%gHz sine) = %.1f Hz, want within 40 Hz", tt.freq, got)
			}
		})
	}
}

func TestTrackSilence(t *testing.T) {
	samples := make([]float64, 44100)
	if got := Track(samples, 44100, DefaultConfig()); got != 0 {
		t.Errorf("Track(silence) = %v, want 0", got)
	}
}

func TestTrackSubThresholdSignal(t *testing.T) {
	// A signal too quiet to clear the magnitude threshold yields no
	// candidates, so the estimate is 0 rather than a noisy guess.
	samples := sine(440, 1.0, 44100, 1e-8)
	if got := Track(samples, 44100, DefaultConfig()); got != 0 {
		t.Errorf("Track(quiet sine) = %v, want 0", got)
	}
}

func TestTrackShortInput(t *testing.T) {
	// Inputs shorter than one analysis window are zero-padded, not skipped.
	samples := sine(440, 0.002, 44100, 0.9)
	got := Track(samples, 44100, DefaultConfig())
	if got < 0 {
		t.Errorf("Track(short input) = %v, want >= 0", got)
	}
}

func TestTrackEmptyInput(t *testing.T) {
	if got := Track(nil, 44100, DefaultConfig()); got != 0 {
		t.Errorf("Track(nil) = %v, want 0", got)
	}
	if got := Track(sine(440, 1.0, 44100, 0.9), 0, DefaultConfig()); got != 0 {
		t.Errorf("Track with zero sample rate = %v, want 0", got)
	}
}
