// Package history provides the reversible command set and the undo stack.
package history

import (
	"fmt"

	"github.com/bethropolis/lazyhex/internal/highlight"
	"github.com/bethropolis/lazyhex/internal/types"
)

// Kind tags the variant held by a Command.
type Kind int

const (
	KindMove Kind = iota
	KindGoto
	KindSet
	KindInsert
	KindDelete
	KindMode
	KindMark
)

func (k Kind) String() string {
	switch k {
	case KindMove:
		return "Move"
	case KindGoto:
		return "Goto"
	case KindSet:
		return "Set"
	case KindInsert:
		return "Insert"
	case KindDelete:
		return "Delete"
	case KindMode:
		return "Mode"
	case KindMark:
		return "Mark"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Command is a single reversible editing operation.
// Only the fields belonging to Kind are meaningful; the unexported fields
// are captured on execution so the command can be undone exactly.
type Command struct {
	Kind Kind

	Offset   int        // Move
	Position int        // Goto
	Values   []byte     // Set: one value broadcasts, otherwise one per selected byte
	At       int        // Insert
	Mode     types.Mode // Mode
	After    bool       // Mode: entering Insert places the new byte after the cursor

	prevSelection types.Selection
	prevMode      types.Mode
	start         int    // Set/Delete/Insert offset actually used
	old           []byte // Set: overwritten bytes; Delete: removed bytes
	placeholder   bool   // Delete emptied the buffer and appended a byte
	inserted      bool   // Mode: entering Insert added a byte
	highlights    highlight.Snapshot // Delete/Mark: highlights before execution
}

// Move shifts the active edge of the selection by offset.
func Move(offset int) Command {
	return Command{Kind: KindMove, Offset: offset}
}

// Goto jumps the active edge of the selection to position.
func Goto(position int) Command {
	return Command{Kind: KindGoto, Position: position}
}

// Set writes values over the selected range.
func Set(values ...byte) Command {
	return Command{Kind: KindSet, Values: values}
}

// Insert adds one fill byte before offset at.
func Insert(at int) Command {
	return Command{Kind: KindInsert, At: at}
}

// Delete removes the selected range.
func Delete() Command {
	return Command{Kind: KindDelete}
}

// SetMode switches to mode.
func SetMode(mode types.Mode) Command {
	return Command{Kind: KindMode, Mode: mode}
}

// EnterInsert switches to Insert mode, adding a byte at or after the cursor.
func EnterInsert(after bool) Command {
	return Command{Kind: KindMode, Mode: types.ModeInsert, After: after}
}

// Mark toggles a manual highlight over the selected range.
func Mark() Command {
	return Command{Kind: KindMark}
}

// ChangesContent reports whether the command kind may modify buffer bytes.
func (c *Command) ChangesContent() bool {
	switch c.Kind {
	case KindSet, KindInsert, KindDelete:
		return true
	case KindMode:
		return c.inserted
	default:
		return false
	}
}
