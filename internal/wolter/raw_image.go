package wolter

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// SaveRaw writes the histogram as little-endian int32 resolution followed by Res*Res float64 counts.
func (s *SensorImage) SaveRaw(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if exp := s.Res * s.Res; len(s.Buf) != exp {
		return fmt.Errorf("Buf length mismatch: got %d, expected %d (Res*Res)", len(s.Buf), exp)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, int32(s.Res)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, s.Buf); err != nil {
		return err
	}
	return w.Flush()
}

// LoadRaw reads a histogram written by SaveRaw.
func LoadRaw(path string) (*SensorImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := bufio.NewReader(f)
	var res int32
	if err := binary.Read(r, binary.LittleEndian, &res); err != nil {
		return nil, err
	}
	img, err := NewSensorImage(int(res))
	if err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, img.Buf); err != nil {
		return nil, err
	}
	return img, nil
}
