package core

import (
	"github.com/bethropolis/lazyhex/internal/logger"
	"github.com/bethropolis/lazyhex/internal/types"
)

// hexValue returns the value of a hex digit rune, or -1.
func hexValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	default:
		return -1
	}
}

// PendingNibble returns the first typed nibble of an unfinished byte.
func (e *Editor) PendingNibble() (byte, bool) {
	if e.pending < 0 {
		return 0, false
	}
	return byte(e.pending), true
}

// Input feeds one typed character in Replace or Insert mode.
// The first hex digit is held; the second composes a byte that is written
// over the selection before the cursor advances. It reports whether r was used.
func (e *Editor) Input(r rune) bool {
	if e.mode != types.ModeReplace && e.mode != types.ModeInsert {
		return false
	}
	v := hexValue(r)
	if v < 0 {
		return false
	}
	if e.pending < 0 {
		e.pending = v
		return true
	}

	b := byte(e.pending<<4 | v)
	e.pending = -1
	logger.DebugTagf("input", "Editor: composed byte %#02x in %v", b, e.mode)

	switch e.mode {
	case types.ModeReplace:
		wasRange := e.selection.IsVisual()
		e.Set(b)
		if wasRange {
			e.SetMode(types.ModeNormal)
		} else {
			e.Move(1)
		}
	case types.ModeInsert:
		e.Set(b)
		e.Insert(e.selection.Current + 1)
	}
	return true
}
