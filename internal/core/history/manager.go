package history

import (
	"sync"

	"github.com/bethropolis/lazyhex/internal/buffer"
	"github.com/bethropolis/lazyhex/internal/highlight"
	"github.com/bethropolis/lazyhex/internal/logger"
	"github.com/bethropolis/lazyhex/internal/types"
)

// DefaultMaxHistory bounds the undo stack; the oldest entries are evicted first.
const DefaultMaxHistory = 4096

// Target is the editing state commands operate on.
type Target interface {
	Buffer() buffer.Buffer
	Selection() types.Selection
	SetSelection(types.Selection)
	Mode() types.Mode
	SetMode(types.Mode)
	FillValue() byte
	// ContentChanged is told about byte edits, in the order they were applied.
	ContentChanged(edits ...types.EditInfo)
	ToggleMark(types.Range) bool
	// SnapshotHighlights and RestoreHighlights let a command put back
	// highlights that a deletion dropped or clamped.
	SnapshotHighlights() highlight.Snapshot
	RestoreHighlights(highlight.Snapshot)
}

// Manager executes commands and keeps the undo stack. There is no redo.
type Manager struct {
	target     Target
	changes    []*Command
	maxHistory int
	mutex      sync.Mutex
}

// NewManager creates a history manager.
func NewManager(target Target, maxHistory int) *Manager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager{
		target:     target,
		changes:    make([]*Command, 0, 64),
		maxHistory: maxHistory,
	}
}

// Execute applies cmd and records it. It reports whether anything was recorded.
func (m *Manager) Execute(cmd Command) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	c := &cmd
	if !apply(m.target, c) {
		logger.DebugTagf("history", "History: %v was a no-op, not recorded", c.Kind)
		return false
	}

	m.changes = append(m.changes, c)
	if len(m.changes) > m.maxHistory {
		m.changes = m.changes[len(m.changes)-m.maxHistory:]
	}
	logger.DebugTagf("history", "History: Recorded %v. Count: %d", c.Kind, len(m.changes))
	return true
}

// Undo reverts the most recent command. It returns false when the stack is empty.
func (m *Manager) Undo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if len(m.changes) == 0 {
		logger.DebugTagf("history", "History: Nothing to undo.")
		return false
	}

	last := m.changes[len(m.changes)-1]
	m.changes[len(m.changes)-1] = nil
	m.changes = m.changes[:len(m.changes)-1]

	revert(m.target, last)
	logger.DebugTagf("history", "History: Undid %v. Count: %d", last.Kind, len(m.changes))
	return true
}

// Len returns the number of recorded commands.
func (m *Manager) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.changes)
}
