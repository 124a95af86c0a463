// internal/buffer/slice_buffer.go
package buffer

import (
	"errors"
	"fmt"
	"os"
)

// SliceBuffer keeps the whole file in a single byte slice.
type SliceBuffer struct {
	data     []byte
	filePath string
	modified bool
}

// NewSliceBuffer creates a buffer holding a copy of data. Empty data becomes a single zero byte.
func NewSliceBuffer(data []byte) *SliceBuffer {
	sb := &SliceBuffer{}
	sb.reset(data)
	return sb
}

func (sb *SliceBuffer) reset(data []byte) {
	if len(data) == 0 {
		sb.data = []byte{0}
	} else {
		sb.data = append([]byte(nil), data...)
	}
	sb.modified = false
}

// Load reads a file into the buffer, replacing existing content.
// A missing file starts a new one-byte buffer bound to filePath.
func (sb *SliceBuffer) Load(filePath string) error {
	if filePath == "" {
		sb.reset(nil)
		sb.filePath = ""
		return nil
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sb.reset(nil)
			sb.filePath = filePath
			return nil
		}
		return fmt.Errorf("failed to read file '%s': %w", filePath, err)
	}
	sb.reset(data)
	sb.filePath = filePath
	return nil
}

func (sb *SliceBuffer) Len() int {
	return len(sb.data)
}

// Bytes returns the underlying content. Callers must not modify it.
func (sb *SliceBuffer) Bytes() []byte {
	return sb.data
}

func (sb *SliceBuffer) At(index int) byte {
	return sb.data[index]
}

// Slice returns a copy of [start, end).
func (sb *SliceBuffer) Slice(start, end int) []byte {
	out := make([]byte, end-start)
	copy(out, sb.data[start:end])
	return out
}

// Set overwrites bytes starting at start and returns the previous values.
func (sb *SliceBuffer) Set(start int, values []byte) []byte {
	old := sb.Slice(start, start+len(values))
	copy(sb.data[start:], values)
	sb.modified = true
	return old
}

// Insert places values before offset at. at may equal Len to append.
func (sb *SliceBuffer) Insert(at int, values []byte) {
	if len(values) == 0 {
		return
	}
	grown := make([]byte, 0, len(sb.data)+len(values))
	grown = append(grown, sb.data[:at]...)
	grown = append(grown, values...)
	grown = append(grown, sb.data[at:]...)
	sb.data = grown
	sb.modified = true
}

// Delete removes [start, end) and returns the removed bytes.
// The buffer may be left empty; the caller restores the one-byte minimum.
func (sb *SliceBuffer) Delete(start, end int) []byte {
	removed := sb.Slice(start, end)
	sb.data = append(sb.data[:start], sb.data[end:]...)
	sb.modified = true
	return removed
}

// Save writes the buffer content to filePath, or to the stored path when filePath is empty.
// On failure the buffer, its path and its modified flag are left unchanged.
func (sb *SliceBuffer) Save(filePath string) error {
	path := sb.filePath
	if filePath != "" {
		path = filePath
	}
	if path == "" {
		return ErrNoPath
	}

	if err := os.WriteFile(path, sb.data, 0o644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}

	sb.filePath = path
	sb.modified = false
	return nil
}

// IsModified returns true if the buffer has unsaved changes.
func (sb *SliceBuffer) IsModified() bool {
	return sb.modified
}

func (sb *SliceBuffer) FilePath() string {
	return sb.filePath
}
