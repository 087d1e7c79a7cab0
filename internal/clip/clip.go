// Package clip holds the uploaded audio clips shared by both pipelines.
package clip

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// Clip is one uploaded audio file: its display name and raw bytes.
// Identity is positional; names are not required to be unique.
type Clip struct {
	Name string
	Data []byte
}

// Load reads the given files into memory, preserving argument order.
func Load(paths []string) ([]Clip, error) {
	clips := make([]Clip, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		clips = append(clips, Clip{Name: filepath.Base(path), Data: data})
	}
	return clips, nil
}

// Fingerprint returns a content hash over the ordered clip list. Two lists
// with the same names and bytes in the same order share a fingerprint; any
// change in content or order produces a new one.
func Fingerprint(clips []Clip) string {
	h := sha256.New()
	for _, c := range clips {
		// Length prefixes keep (ab, c) distinct from (a, bc).
		binary.Write(h, binary.LittleEndian, uint64(len(c.Name)))
		h.Write([]byte(c.Name))
		binary.Write(h, binary.LittleEndian, uint64(len(c.Data)))
		h.Write(c.Data)
	}
	return hex.EncodeToString(h.Sum(nil))
}
