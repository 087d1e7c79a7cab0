package combine

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// constWAV renders a mono 16-bit WAV byte stream where every sample holds
// value. Distinct values make clip boundaries visible in the combined
// output.
func constWAV(t *testing.T, value int16, frames, sampleRate int) []byte {
	t.Helper()

	samples := make([]int16, frames)
	for i := range samples {
		samples[i] = value
	}
	return wavBytes(t, samples, sampleRate)
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
