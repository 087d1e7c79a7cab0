// Package wave provides WAV decode/encode and the buffer editing
// primitives used by the concatenation pipeline.
package wave

import (
	"fmt"
	"io"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// BitDepth is the working sample depth. Decoded buffers are normalized to
// this depth so buffers from differently-sourced files can be appended.
const BitDepth = 16

// Decode reads a whole WAV stream into a PCM buffer at its native sample
// rate, normalized to 16-bit sample values.
func Decode(r io.ReadSeeker) (*audio.IntBuffer, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, fmt.Errorf("not a decodable WAV stream")
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode WAV data: %w", err)
	}
	if buf.Format == nil || buf.Format.SampleRate <= 0 || buf.Format.NumChannels <= 0 {
		return nil, fmt.Errorf("WAV stream has no usable format")
	}
	if buf.SourceBitDepth == 0 {
		buf.SourceBitDepth = int(d.BitDepth)
	}
	return normalize16(buf), nil
}

// Encode writes buf as 16-bit PCM WAV.
func Encode(w io.WriteSeeker, buf *audio.IntBuffer) error {
	if buf == nil || buf.Format == nil {
		return fmt.Errorf("nothing to encode")
	}
	e := wav.NewEncoder(w, buf.Format.SampleRate, BitDepth, buf.Format.NumChannels, 1)
	if err := e.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := e.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return nil
}

// NewBuffer returns an empty accumulator in the given format.
func NewBuffer(format *audio.Format) *audio.IntBuffer {
	return &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: format.NumChannels, SampleRate: format.SampleRate},
		SourceBitDepth: BitDepth,
	}
}

// Silence returns a buffer of zero samples lasting d in the given format.
func Silence(d time.Duration, format *audio.Format) *audio.IntBuffer {
	frames := int(d.Nanoseconds() * int64(format.SampleRate) / int64(time.Second))
	buf := NewBuffer(format)
	buf.Data = make([]int, frames*format.NumChannels)
	return buf
}

// Append appends src to dst, converting channel count and sample rate to
// dst's format first. Returns the grown dst.
func Append(dst, src *audio.IntBuffer) *audio.IntBuffer {
	conv := Convert(src, dst.Format)
	dst.Data = append(dst.Data, conv.Data...)
	return dst
}

// Convert returns src reshaped to the channel count and sample rate of
// format. When the formats already match, src is returned unchanged.
// Channel conversion averages down and replicates up; rate conversion is a
// linear resample.
func Convert(src *audio.IntBuffer, format *audio.Format) *audio.IntBuffer {
	if src.Format.NumChannels == format.NumChannels && src.Format.SampleRate == format.SampleRate {
		return src
	}

	data := src.Data
	if src.Format.NumChannels != format.NumChannels {
		data = remapChannels(data, src.Format.NumChannels, format.NumChannels)
	}
	if src.Format.SampleRate != format.SampleRate {
		data = resample(data, format.NumChannels, src.Format.SampleRate, format.SampleRate)
	}

	return &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: format.NumChannels, SampleRate: format.SampleRate},
		Data:           data,
		SourceBitDepth: src.SourceBitDepth,
	}
}

// Mono mixes buf down to one channel and normalizes samples to [-1, 1] for
// analysis.
func Mono(buf *audio.IntBuffer) []float64 {
	ch := buf.Format.NumChannels
	frames := len(buf.Data) / ch
	depth := buf.SourceBitDepth
	if depth == 0 {
		depth = BitDepth
	}
	scale := 1.0 / float64(int(1)<<uint(depth-1))

	out := make([]float64, frames)
	for f := 0; f < frames; f++ {
		sum := 0
		for c := 0; c < ch; c++ {
			sum += buf.Data[f*ch+c]
		}
		out[f] = float64(sum) / float64(ch) * scale
	}
	return out
}

// Duration returns the playing time of buf.
func Duration(buf *audio.IntBuffer) time.Duration {
	frames := len(buf.Data) / buf.Format.NumChannels
	return time.Duration(frames) * time.Second / time.Duration(buf.Format.SampleRate)
}

// Frames returns the per-channel sample count of buf.
func Frames(buf *audio.IntBuffer) int {
	return len(buf.Data) / buf.Format.NumChannels
}

// normalize16 rescales sample values from the source bit depth to 16-bit.
func normalize16(buf *audio.IntBuffer) *audio.IntBuffer {
	depth := buf.SourceBitDepth
	if depth == 0 || depth == BitDepth {
		buf.SourceBitDepth = BitDepth
		return buf
	}
	if depth > BitDepth {
		shift := uint(depth - BitDepth)
		for i, s := range buf.Data {
			buf.Data[i] = s >> shift
		}
	} else {
		shift := uint(BitDepth - depth)
		for i, s := range buf.Data {
			buf.Data[i] = s << shift
		}
	}
	buf.SourceBitDepth = BitDepth
	return buf
}

// remapChannels converts interleaved frames from in channels to out
// channels: all input channels are averaged, then the mix is replicated
// across the output channels.
func remapChannels(data []int, in, out int) []int {
	frames := len(data) / in
	next := make([]int, frames*out)
	for f := 0; f < frames; f++ {
		sum := 0
		for c := 0; c < in; c++ {
			sum += data[f*in+c]
		}
		avg := sum / in
		for c := 0; c < out; c++ {
			next[f*out+c] = avg
		}
	}
	return next
}

// resample converts interleaved frames from srcRate to dstRate by linear
// interpolation between neighbouring source frames.
func resample(data []int, ch, srcRate, dstRate int) []int {
	frames := len(data) / ch
	outFrames := int(int64(frames) * int64(dstRate) / int64(srcRate))
	next := make([]int, outFrames*ch)
	ratio := float64(srcRate) / float64(dstRate)

	for f := 0; f < outFrames; f++ {
		pos := float64(f) * ratio
		i0 := int(pos)
		i1 := i0 + 1
		if i1 >= frames {
			i1 = frames - 1
		}
		frac := pos - float64(i0)
		for c := 0; c < ch; c++ {
			s0 := float64(data[i0*ch+c])
			s1 := float64(data[i1*ch+c])
			next[f*ch+c] = int(s0 + (s1-s0)*frac)
		}
	}
	return next
}
