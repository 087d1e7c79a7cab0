// Package pitch estimates per-clip fundamental pitch and flags clips whose
// tone diverges from the rest of the batch.
package pitch

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/window"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat"
)

// Config holds the frame-wise tracking parameters.
type Config struct {
	WindowSize   int     // STFT frame length in samples
	HopSize      int     // hop between frames in samples
	MinFreq      float64 // lowest candidate frequency in Hz
	MaxFreq      float64 // highest candidate frequency in Hz
	MagThreshold float64 // minimum spectral magnitude for a candidate
}

// DefaultConfig returns the tracking parameters used by the analyzer.
// MinFreq sits below mains hum (50/60 Hz) so hum pickup shows up in the
// estimate instead of being silently filtered.
func DefaultConfig() Config {
	return Config{
		WindowSize:   2048,
		HopSize:      512,
		MinFreq:      40.0,
		MaxFreq:      4000.0,
		MagThreshold: 0.1,
	}
}

// Track estimates the fundamental pitch of samples in Hz.
//
// Each analysis frame is Hann-windowed and transformed; spectral peaks
// inside [MinFreq, MaxFreq] whose magnitude exceeds MagThreshold become
// pitch candidates, refined by parabolic interpolation. The result is the
// arithmetic mean of all retained candidates across frames, or 0 when no
// frame produced a confident candidate.
func Track(samples []float64, sampleRate int, cfg Config) float64 {
	if sampleRate <= 0 || len(samples) == 0 {
		return 0
	}

	n := cfg.WindowSize
	if len(samples) < n {
		padded := make([]float64, n)
		copy(padded, samples)
		samples = padded
	}

	win := window.Hann(n)
	fft := fourier.NewFFT(n)
	frame := make([]float64, n)
	coeffs := make([]complex128, n/2+1)
	mags := make([]float64, n/2+1)

	binHz := float64(sampleRate) / float64(n)
	minBin := max(1, int(cfg.MinFreq/binHz))
	maxBin := min(len(mags)-2, int(cfg.MaxFreq/binHz))
	if maxBin < minBin {
		return 0
	}

	var candidates []float64
	for start := 0; start+n <= len(samples); start += cfg.HopSize {
		for i := range frame {
			frame[i] = samples[start+i] * win[i]
		}
		fft.Coefficients(coeffs, frame)
		for i := range coeffs {
			mags[i] = cmplx.Abs(coeffs[i])
		}

		for b := minBin; b <= maxBin; b++ {
			if mags[b] <= cfg.MagThreshold {
				continue
			}
			// Local maximum only.
			if mags[b] <= mags[b-1] || mags[b] < mags[b+1] {
				continue
			}
			candidates = append(candidates, (float64(b)+peakShift(mags[b-1], mags[b], mags[b+1]))*binHz)
		}
	}

	if len(candidates) == 0 {
		return 0
	}
	return stat.Mean(candidates, nil)
}

// peakShift refines a peak bin position by fitting a parabola through the
// peak and its neighbours. The returned shift is in bins, within (-0.5, 0.5).
func peakShift(l, c, r float64) float64 {
	den := l - 2*c + r
	if den == 0 {
		return 0
	}
	return 0.5 * (l - r) / den
}
