// Package analyzer drives the pitch outlier pipeline.
package analyzer

import (
	"fmt"
	"os"

	"github.com/HisDataisRafa/silencios/internal/clip"
	"github.com/HisDataisRafa/silencios/internal/pitch"
	"github.com/HisDataisRafa/silencios/internal/scratch"
	"github.com/HisDataisRafa/silencios/internal/wave"
)

// Events receives per-clip progress callbacks from Analyze. Either field
// may be nil.
type Events struct {
	OnStart func(index int, name string)
	OnDone  func(index int, rec pitch.Record, err error)
}

// EstimatePitch estimates the fundamental pitch of one clip in Hz. The clip
// bytes are staged in scratch storage for decoding at their native sample
// rate; the scratch directory is released before returning on every path.
func EstimatePitch(p scratch.Provider, c clip.Clip, cfg pitch.Config) (float64, error) {
	dir, err := p.Acquire()
	if err != nil {
		return 0, fmt.Errorf("failed to acquire scratch storage: %w", err)
	}
	defer dir.Release()

	path := dir.Entry(".wav")
	if err := os.WriteFile(path, c.Data, 0o644); err != nil {
		return 0, fmt.Errorf("failed to stage %s: %w", c.Name, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open staged %s: %w", c.Name, err)
	}
	defer f.Close()

	buf, err := wave.Decode(f)
	if err != nil {
		return 0, fmt.Errorf("failed to decode %s: %w", c.Name, err)
	}

	return pitch.Track(wave.Mono(buf), buf.Format.SampleRate, cfg), nil
}

// Analyze runs EstimatePitch over every clip in upload order and returns
// one record per clip. A clip that fails to decode is reported through the
// events and recorded with pitch 0; the remaining clips still run.
func Analyze(p scratch.Provider, clips []clip.Clip, cfg pitch.Config, ev Events) []pitch.Record {
	records := make([]pitch.Record, 0, len(clips))
	for i, c := range clips {
		if ev.OnStart != nil {
			ev.OnStart(i, c.Name)
		}

		hz, err := EstimatePitch(p, c, cfg)
		if err != nil {
			hz = 0
		}

		rec := pitch.Record{Name: c.Name, Pitch: hz}
		records = append(records, rec)
		if ev.OnDone != nil {
			ev.OnDone(i, rec, err)
		}
	}
	return records
}
