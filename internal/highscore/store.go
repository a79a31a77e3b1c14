// Package highscore keeps the best score in a flat file holding one
// 4-byte little-endian integer.
package highscore

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
)

const DefaultFile = "highscore.dat"

// recordSize is the width of the stored integer.
const recordSize = 4

// Store reads and writes the high score file at Path.
type Store struct {
	Path string
}

func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFile
	}
	return &Store{Path: path}
}

// Load returns the stored score. A missing file is a score of zero.
func (s *Store) Load() (int, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read high score: %w", err)
	}
	if len(data) < recordSize {
		return 0, fmt.Errorf("read high score %s: %d bytes, want %d", s.Path, len(data), recordSize)
	}
	return int(int32(binary.LittleEndian.Uint32(data))), nil
}

// Save overwrites the file with score.
func (s *Store) Save(score int) error {
	if score < 0 || score > math.MaxInt32 {
		return fmt.Errorf("save high score: %d out of range", score)
	}
	var buf [recordSize]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(score))
	if err := os.WriteFile(s.Path, buf[:], 0644); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	return nil
}
