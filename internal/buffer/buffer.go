// internal/buffer/buffer.go
package buffer

import "errors"

// ErrNoPath is returned by Save when neither the buffer nor the caller supplies a path.
var ErrNoPath = errors.New("no file path specified for saving")

// Buffer defines the byte storage operations the editor relies on.
// Implementations keep at least one byte at all times after Load.
type Buffer interface {
	Load(filePath string) error
	Len() int
	Bytes() []byte
	At(index int) byte
	Slice(start, end int) []byte
	Set(start int, values []byte) []byte
	Insert(at int, values []byte)
	Delete(start, end int) []byte
	Save(filePath string) error
	FilePath() string
	IsModified() bool
}
