// Package combine implements the batch concatenation pipeline.
package combine

import (
	"fmt"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/go-audio/audio"

	"github.com/HisDataisRafa/silencios/internal/clip"
	"github.com/HisDataisRafa/silencios/internal/scratch"
	"github.com/HisDataisRafa/silencios/internal/wave"
)

// SilenceGap is the fixed silence inserted after every clip, the last one
// included.
const SilenceGap = 1500 * time.Millisecond

// Combiner concatenates clips with silence gaps. It memoizes the most
// recent result keyed by the content fingerprint of the clip list: an
// identical upload list returns the cached bytes, any change in content or
// order recomputes.
type Combiner struct {
	provider scratch.Provider

	mu      sync.Mutex
	lastFP  string
	lastOut []byte
}

// New returns a Combiner using the given scratch provider.
func New(p scratch.Provider) *Combiner {
	return &Combiner{provider: p}
}

// Combine decodes every clip in upload order and appends it to the output
// followed by the silence gap, then encodes the whole buffer as WAV. The
// first clip fixes the output sample rate and channel count; later clips
// are converted to match. Any decode or encode failure aborts the whole
// operation: no partial output is ever returned.
func (cb *Combiner) Combine(clips []clip.Clip) ([]byte, error) {
	if len(clips) == 0 {
		return nil, fmt.Errorf("no clips to combine")
	}

	fp := clip.Fingerprint(clips)
	cb.mu.Lock()
	if fp == cb.lastFP && cb.lastOut != nil {
		// Callers own the returned bytes; hand out a copy so they
		// cannot mutate the cache.
		out := slices.Clone(cb.lastOut)
		cb.mu.Unlock()
		return out, nil
	}
	cb.mu.Unlock()

	out, err := cb.concatenate(clips)
	if err != nil {
		return nil, err
	}

	cb.mu.Lock()
	cb.lastFP, cb.lastOut = fp, slices.Clone(out)
	cb.mu.Unlock()
	return out, nil
}

func (cb *Combiner) concatenate(clips []clip.Clip) ([]byte, error) {
	dir, err := cb.provider.Acquire()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire scratch storage: %w", err)
	}
	defer dir.Release()

	var combined, silence *audio.IntBuffer
	for _, c := range clips {
		buf, err := decodeClip(dir, c)
		if err != nil {
			return nil, err
		}
		if combined == nil {
			combined = wave.NewBuffer(buf.Format)
			silence = wave.Silence(SilenceGap, buf.Format)
		}
		combined = wave.Append(combined, buf)
		combined = wave.Append(combined, silence)
	}

	outPath := dir.Entry(".wav")
	f, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	if err := wave.Encode(f, combined); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to encode combined audio: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish output file: %w", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read combined audio: %w", err)
	}
	return data, nil
}

// decodeClip stages one clip in the scratch directory and decodes it. The
// staged entry is removed as soon as the decode finishes; the directory
// itself is released by the caller.
func decodeClip(dir *scratch.Dir, c clip.Clip) (*audio.IntBuffer, error) {
	path := dir.Entry(".wav")
	if err := os.WriteFile(path, c.Data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to stage %s: %w", c.Name, err)
	}
	defer os.Remove(path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open staged %s: %w", c.Name, err)
	}
	defer f.Close()

	buf, err := wave.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", c.Name, err)
	}
	return buf, nil
}
