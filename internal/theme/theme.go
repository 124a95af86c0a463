// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/lazyhex/internal/logger"
)

// Style names looked up by the renderer.
const (
	StyleDefault           = "Default"
	StyleHex               = "Hex"
	StyleHexZero           = "Hex.zero"
	StyleASCII             = "Ascii"
	StyleASCIIControl      = "Ascii.control"
	StyleIndex             = "Index"
	StyleCursor            = "Cursor"
	StyleSelection         = "Selection"
	StylePadding           = "Padding"
	StyleBorder            = "Border"
	StyleInfoKey           = "Info.key"
	StyleInfoValue         = "Info.value"
	StyleStatusBar         = "StatusBar"
	StyleStatusBarMode     = "StatusBar.mode"
	StyleStatusBarModified = "StatusBar.modified"
	StyleStatusBarMessage  = "StatusBar.message"
	StyleStatusBarError    = "StatusBar.error"
	StyleDialog            = "Dialog"
	StyleDiffAdded         = "Diff.added"
	StyleDiffDeleted       = "Diff.deleted"
	StyleDiffReplaced      = "Diff.replaced"
	StyleBitChanged        = "Bit.changed"
)

// Theme maps style names to tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle resolves name, falling back to the part before the first dot,
// then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// HexDark is the built-in theme.
var HexDark Theme

func init() {
	background := tcell.NewHexColor(0x2a2f38)
	foreground := tcell.NewHexColor(0xc5cdd9)
	muted := tcell.NewHexColor(0x5c6370)
	orange := tcell.NewHexColor(0xd19a66)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	red := tcell.NewHexColor(0xe06c75)
	cyan := tcell.NewHexColor(0x56b6c2)
	blue := tcell.NewHexColor(0x61afef)

	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(foreground)
	bar := tcell.StyleDefault.Background(background).Foreground(foreground)

	HexDark = Theme{
		Name:   "Hex Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:      baseStyle,
			StyleHex:          baseStyle,
			StyleHexZero:      baseStyle.Foreground(muted),
			StyleASCII:        baseStyle.Foreground(green),
			StyleASCIIControl: baseStyle.Foreground(muted),
			StyleIndex:        baseStyle.Foreground(cyan),
			StyleCursor:       baseStyle.Reverse(true).Bold(true),
			StyleSelection:    tcell.StyleDefault.Background(tcell.NewHexColor(0x3e4451)).Foreground(foreground),
			StylePadding:      baseStyle.Foreground(muted).Dim(true),
			StyleBorder:       baseStyle.Foreground(muted),
			StyleInfoKey:      baseStyle.Foreground(blue),
			StyleInfoValue:    baseStyle.Foreground(orange),

			StyleStatusBar:         bar,
			StyleStatusBarMode:     bar.Foreground(blue).Bold(true),
			StyleStatusBarModified: bar.Foreground(yellow),
			StyleStatusBarMessage:  bar.Bold(true),
			StyleStatusBarError:    bar.Foreground(red).Bold(true),
			StyleDialog:            tcell.StyleDefault.Background(tcell.NewHexColor(0x3e4451)).Foreground(yellow).Bold(true),

			StyleDiffAdded:    baseStyle.Foreground(green),
			StyleDiffDeleted:  baseStyle.Foreground(red),
			StyleDiffReplaced: baseStyle.Foreground(yellow),
			StyleBitChanged:   baseStyle.Foreground(red).Bold(true),
		},
	}
}
