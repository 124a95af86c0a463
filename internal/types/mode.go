// internal/types/mode.go
package types

import (
	"fmt"
	"strings"
)

// Mode is the editing mode of a session.
type Mode int

const (
	ModeNormal Mode = iota
	ModeVisual
	ModeReplace
	ModeInsert
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeVisual:
		return "VISUAL"
	case ModeReplace:
		return "REPLACE"
	case ModeInsert:
		return "INSERT"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Endian selects the byte order used for multi-byte reads.
type Endian int

const (
	BigEndian Endian = iota
	LittleEndian
)

// ParseEndian accepts "big", "b", "little" and "l" (case-insensitive).
func ParseEndian(s string) (Endian, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "big", "b":
		return BigEndian, nil
	case "little", "l":
		return LittleEndian, nil
	default:
		return BigEndian, fmt.Errorf("invalid endian %q: want \"big\" or \"little\"", s)
	}
}

// Toggle returns the other byte order.
func (e Endian) Toggle() Endian {
	if e == BigEndian {
		return LittleEndian
	}
	return BigEndian
}

func (e Endian) String() string {
	if e == LittleEndian {
		return "little"
	}
	return "big"
}
