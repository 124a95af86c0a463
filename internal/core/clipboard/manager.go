package clipboard

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/bethropolis/lazyhex/internal/logger"
)

// Manager holds the yank register and mirrors it to the system clipboard.
type Manager struct {
	register  []byte
	useSystem bool
	writeAll  func(string) error
}

// NewManager creates a clipboard manager. useSystem enables the system clipboard.
func NewManager(useSystem bool) *Manager {
	return &Manager{
		useSystem: useSystem,
		writeAll:  clipboard.WriteAll,
	}
}

// FormatHex renders data as space separated hex pairs.
func FormatHex(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	enc := hex.EncodeToString(data)
	var sb strings.Builder
	sb.Grow(len(enc) + len(data))
	for i := 0; i < len(enc); i += 2 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(enc[i : i+2])
	}
	return sb.String()
}

// Yank stores data in the register and returns its hex text.
// A system clipboard failure is returned but the register is still updated.
func (m *Manager) Yank(data []byte) (string, error) {
	m.register = append(m.register[:0], data...)
	text := FormatHex(data)
	logger.DebugTagf("clipboard", "Clipboard: yanked %d bytes", len(data))

	if !m.useSystem {
		return text, nil
	}
	if clipboard.Unsupported {
		return text, fmt.Errorf("system clipboard unsupported")
	}
	if err := m.writeAll(text); err != nil {
		return text, fmt.Errorf("system clipboard: %w", err)
	}
	return text, nil
}

// Register returns a copy of the last yanked bytes.
func (m *Manager) Register() []byte {
	return append([]byte(nil), m.register...)
}
