// internal/input/action.go
package input

// Action represents a command or operation to be performed by the editor.
type Action int

const (
	ActionUnknown Action = iota
	ActionQuit
	ActionCancel

	// Movement
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionPageUp
	ActionPageDown
	ActionGotoStart
	ActionGotoEnd
	ActionNextChange

	// Modes
	ActionVisual
	ActionReplace
	ActionInsert
	ActionAppend

	// Editing
	ActionHexDigit // Requires Rune
	ActionDelete
	ActionUndo
	ActionToggleMark
	ActionYank

	// Session
	ActionWrite
	ActionWriteAs
	ActionToggleEndian

	// Prompt editing
	ActionRune // Requires Rune
	ActionConfirm
	ActionBackspace
)

var actionNames = map[Action]string{
	ActionUnknown:      "unknown",
	ActionQuit:         "quit",
	ActionCancel:       "cancel",
	ActionMoveLeft:     "move-left",
	ActionMoveRight:    "move-right",
	ActionMoveUp:       "move-up",
	ActionMoveDown:     "move-down",
	ActionPageUp:       "page-up",
	ActionPageDown:     "page-down",
	ActionGotoStart:    "goto-start",
	ActionGotoEnd:      "goto-end",
	ActionNextChange:   "next-change",
	ActionVisual:       "visual",
	ActionReplace:      "replace",
	ActionInsert:       "insert",
	ActionAppend:       "append",
	ActionHexDigit:     "hex-digit",
	ActionDelete:       "delete",
	ActionUndo:         "undo",
	ActionToggleMark:   "toggle-mark",
	ActionYank:         "yank",
	ActionWrite:        "write",
	ActionWriteAs:      "write-as",
	ActionToggleEndian: "toggle-endian",
	ActionRune:         "rune",
	ActionConfirm:      "confirm",
	ActionBackspace:    "backspace",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// IsMovement reports whether the action only moves the cursor.
func (a Action) IsMovement() bool {
	return a >= ActionMoveLeft && a <= ActionNextChange
}

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionHexDigit and ActionRune
}
