// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/lazyhex/internal/theme"
	"github.com/bethropolis/lazyhex/internal/tui"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleMode      tcell.Style
	StyleModified  tcell.Style
	StyleMessage   tcell.Style
	StyleError     tcell.Style
	StyleDialog    tcell.Style
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return ConfigFromTheme(&theme.HexDark, 4*time.Second)
}

// ConfigFromTheme takes the status bar styles from th.
func ConfigFromTheme(th *theme.Theme, timeout time.Duration) Config {
	return Config{
		StyleDefault:   th.GetStyle(theme.StyleStatusBar),
		StyleMode:      th.GetStyle(theme.StyleStatusBarMode),
		StyleModified:  th.GetStyle(theme.StyleStatusBarModified),
		StyleMessage:   th.GetStyle(theme.StyleStatusBarMessage),
		StyleError:     th.GetStyle(theme.StyleStatusBarError),
		StyleDialog:    th.GetStyle(theme.StyleDialog),
		MessageTimeout: timeout,
	}
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	filePath   string
	isModified bool
	editorMode string
	endian     string
	offset     int
	length     int
	selection  int
	pending    int

	tempMessage     string
	tempMessageTime time.Time

	notice    Notice
	hasNotice bool
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config, pending: -1}
}

// SetConfig replaces the styles, used when the theme changes.
func (sb *StatusBar) SetConfig(config Config) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.config = config
}

// SetFileInfo updates the file path shown in the status bar.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the cursor offset, buffer length and selection size.
func (sb *StatusBar) SetCursorInfo(offset, length, selected int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.offset = offset
	sb.length = length
	sb.selection = selected
}

// SetEditorMode updates the displayed editor mode.
func (sb *StatusBar) SetEditorMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.editorMode = mode
}

// SetEndian updates the displayed byte order.
func (sb *StatusBar) SetEndian(endian string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.endian = endian
}

// SetPendingNibble shows the first typed hex digit, or hides it when n < 0.
func (sb *StatusBar) SetPendingNibble(n int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.pending = n
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = time.Now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// ShowNotice fills the notice slot, replacing whatever was pending.
func (sb *StatusBar) ShowNotice(n Notice) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.notice = n
	sb.hasNotice = true
}

// Notice returns the pending notice, if any.
func (sb *StatusBar) Notice() (Notice, bool) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.notice, sb.hasNotice
}

// ClearNotice empties the notice slot.
func (sb *StatusBar) ClearNotice() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.notice = Notice{}
	sb.hasNotice = false
}

// EditPrompt applies fn to the prompt input. It does nothing unless a prompt is pending.
func (sb *StatusBar) EditPrompt(fn func(string) string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	if sb.hasNotice && sb.notice.Kind == NoticePrompt {
		sb.notice.Input = fn(sb.notice.Input)
	}
}

// getDefaultDisplayText builds the left and right parts of the status line.
// Caller holds the lock.
func (sb *StatusBar) getDefaultDisplayText() (mode, left, right string) {
	fPath := sb.filePath
	if fPath == "" {
		fPath = "[No Name]"
	}
	modifiedIndicator := ""
	if sb.isModified {
		modifiedIndicator = " [+]"
	}
	mode = fmt.Sprintf(" %s ", sb.editorMode)
	left = fmt.Sprintf(" %s%s", fPath, modifiedIndicator)

	pending := ""
	if sb.pending >= 0 {
		pending = fmt.Sprintf("%x_  ", sb.pending)
	}
	sel := ""
	if sb.selection > 1 {
		sel = fmt.Sprintf("(%d) ", sb.selection)
	}
	right = fmt.Sprintf("%s%s%#x/%#x  %s ", pending, sel, sb.offset, sb.length, sb.endian)
	return mode, left, right
}

// Draw renders the status bar onto the last screen line.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.Lock()
	isTempMsgActive := !sb.tempMessageTime.IsZero() && time.Since(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !isTempMsgActive {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	cfg := sb.config
	var style tcell.Style
	var text, mode, right string
	switch {
	case sb.hasNotice:
		text = sb.notice.Text()
		switch {
		case sb.notice.IsDialog():
			style = cfg.StyleDialog
		case sb.notice.Kind == NoticeError:
			style = cfg.StyleError
		default:
			style = cfg.StyleMessage
		}
	case isTempMsgActive:
		text = sb.tempMessage
		style = cfg.StyleMessage
	default:
		mode, text, right = sb.getDefaultDisplayText()
		style = cfg.StyleDefault
		if sb.isModified {
			style = cfg.StyleModified
		}
	}
	sb.mu.Unlock()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, cfg.StyleDefault)
	}

	x := 0
	if mode != "" {
		x = tui.DrawText(screen, x, y, width, mode, cfg.StyleMode)
	}
	x = tui.DrawText(screen, x, y, width, text, style)
	if right != "" && width-tui.TextWidth(right) > x {
		tui.DrawTextRight(screen, x, y, width, right, cfg.StyleDefault)
	}
}
