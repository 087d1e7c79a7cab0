package analyzer

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

// sineWAV renders a mono 16-bit WAV byte stream holding a sine tone, the
// shape of clip an upload would carry.
func sineWAV(t *testing.T, freq float64, secs float64, sampleRate int) []byte {
	t.Helper()

	total := int(secs * float64(sampleRate))
	samples := make([]int16, total)
	for i := range samples {
		v := 0.5 * math.Sin(2.0*math.Pi*freq*float64(i)/float64(sampleRate))
		samples[i] = int16(v * float64(math.MaxInt16))
	}
	return wavBytes(t, samples, sampleRate)
}

// silenceWAV renders a mono 16-bit WAV byte stream of zero samples.
func silenceWAV(t *testing.T, secs float64, sampleRate int) []byte {
	t.Helper()
	return wavBytes(t, make([]int16, int(secs*float64(sampleRate))), sampleRate)
}

// wavBytes writes a minimal mono 16-bit PCM WAV stream.
func wavBytes(t *testing.T, samples []int16, sampleRate int) []byte {
	t.Helper()

	const (
		numChannels   = 1
		bitsPerSample = 16
	)

	byteRate := sampleRate * numChannels * bitsPerSample / 8
	blockAlign := numChannels * bitsPerSample / 8
	dataSize := len(samples) * 2
	fileSize := 36 + dataSize

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(fileSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(numChannels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	binary.Write(&buf, binary.LittleEndian, samples)

	return buf.Bytes()
}
