// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys to editor actions.
type Keymap map[tcell.Key]Action

// RuneKeymap maps plain runes to editor actions.
type RuneKeymap map[rune]Action

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyPgUp] = ActionPageUp
	p.keymap[tcell.KeyPgDn] = ActionPageDown
	p.keymap[tcell.KeyCtrlU] = ActionPageUp
	p.keymap[tcell.KeyCtrlD] = ActionPageDown
	p.keymap[tcell.KeyHome] = ActionGotoStart
	p.keymap[tcell.KeyEnd] = ActionGotoEnd
	p.keymap[tcell.KeyDelete] = ActionDelete
	p.keymap[tcell.KeyEscape] = ActionCancel
	p.keymap[tcell.KeyCtrlC] = ActionQuit
	p.keymap[tcell.KeyEnter] = ActionConfirm
	p.keymap[tcell.KeyBackspace] = ActionBackspace
	p.keymap[tcell.KeyBackspace2] = ActionBackspace

	p.runeKeymap['h'] = ActionMoveLeft
	p.runeKeymap['l'] = ActionMoveRight
	p.runeKeymap['k'] = ActionMoveUp
	p.runeKeymap['j'] = ActionMoveDown
	p.runeKeymap['g'] = ActionGotoStart
	p.runeKeymap['G'] = ActionGotoEnd
	p.runeKeymap['n'] = ActionNextChange
	p.runeKeymap['v'] = ActionVisual
	p.runeKeymap['r'] = ActionReplace
	p.runeKeymap['i'] = ActionInsert
	p.runeKeymap['a'] = ActionAppend
	p.runeKeymap['d'] = ActionDelete
	p.runeKeymap['u'] = ActionUndo
	p.runeKeymap['m'] = ActionToggleMark
	p.runeKeymap['y'] = ActionYank
	p.runeKeymap['w'] = ActionWrite
	p.runeKeymap['W'] = ActionWriteAs
	p.runeKeymap['e'] = ActionToggleEndian
	p.runeKeymap['q'] = ActionQuit
}

// IsHexDigit reports whether r is 0-9, a-f or A-F.
func IsHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
// With hexEntry set, hex digit runes become ActionHexDigit before any binding
// is consulted, and 'q' is the only rune command left.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey, hexEntry bool) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	runeVal := ev.Rune()

	if key != tcell.KeyRune {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
		return ActionEvent{Action: ActionUnknown}
	}

	if mod&(tcell.ModCtrl|tcell.ModAlt) != 0 {
		return ActionEvent{Action: ActionUnknown}
	}

	if hexEntry {
		if IsHexDigit(runeVal) {
			return ActionEvent{Action: ActionHexDigit, Rune: runeVal}
		}
		if p.runeKeymap[runeVal] == ActionQuit {
			return ActionEvent{Action: ActionQuit, Rune: runeVal}
		}
		return ActionEvent{Action: ActionRune, Rune: runeVal}
	}

	if action, ok := p.runeKeymap[runeVal]; ok {
		return ActionEvent{Action: action, Rune: runeVal}
	}
	return ActionEvent{Action: ActionRune, Rune: runeVal}
}
