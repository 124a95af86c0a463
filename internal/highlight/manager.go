// internal/highlight/manager.go
package highlight

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/lazyhex/internal/logger"
	"github.com/bethropolis/lazyhex/internal/types"
)

// Policy decides how script highlights follow content changes.
type Policy int

const (
	// PolicyReload recomputes script highlights after every content change.
	PolicyReload Policy = iota
	// PolicyUpdate shifts existing script highlights instead of recomputing.
	PolicyUpdate
)

// ParsePolicy accepts "reload" and "update".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reload":
		return PolicyReload, nil
	case "update":
		return PolicyUpdate, nil
	default:
		return PolicyReload, fmt.Errorf("invalid on_delete %q: want \"update\" or \"reload\"", s)
	}
}

func (p Policy) String() string {
	if p == PolicyUpdate {
		return "update"
	}
	return "reload"
}

// Source computes a fresh highlight set for the given content.
type Source interface {
	Highlight(ctx context.Context, data []byte) (*Set, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, data []byte) (*Set, error)

func (f SourceFunc) Highlight(ctx context.Context, data []byte) (*Set, error) {
	return f(ctx, data)
}

// MarkLabel labels manual marks. Spans are shown next to it when drawn.
const MarkLabel = "mark"

// markPalette is cycled through for manual marks.
var markPalette = [][2]tcell.Color{
	{tcell.ColorRed, tcell.ColorWhite},
	{tcell.ColorGreen, tcell.ColorWhite},
	{tcell.ColorYellow, tcell.ColorBlack},
	{tcell.ColorBlue, tcell.ColorWhite},
}

// Manager owns the script-computed layer and the manual mark layer.
type Manager struct {
	mu        sync.RWMutex
	policy    Policy
	source    Source
	script    *Set
	marks     *Set
	nextColor int
}

// NewManager creates a manager. source may be nil when no script is configured.
func NewManager(policy Policy, source Source) *Manager {
	return &Manager{
		policy: policy,
		source: source,
		script: NewSet(),
		marks:  NewSet(),
	}
}

func (m *Manager) Policy() Policy {
	return m.policy
}

// Snapshot is a copy of both layers, taken before an edit that Rebase
// cannot reverse.
type Snapshot struct {
	Script []Highlight
	Marks  []Highlight
}

// Snapshot copies the current layers.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{Script: m.script.All(), Marks: m.marks.All()}
}

// Restore puts back the layers of snap. Under PolicyReload the script layer
// is left alone since it is recomputed from content.
func (m *Manager) Restore(snap Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.marks = NewSet(snap.Marks...)
	if m.policy == PolicyUpdate {
		m.script = NewSet(snap.Script...)
	}
}

// Reload discards the script layer and recomputes it from data.
// On failure the layer is left empty and the error is returned.
func (m *Manager) Reload(ctx context.Context, data []byte) error {
	if m.source == nil {
		return nil
	}
	set, err := m.source.Highlight(ctx, data)
	if err != nil {
		set = NewSet()
		logger.Warnf("Highlight: recompute failed: %v", err)
	}
	m.mu.Lock()
	m.script = set
	m.mu.Unlock()
	logger.DebugTagf("highlight", "Highlight: recomputed %d highlights", set.Len())
	return err
}

// ApplyEdits keeps both layers consistent with content changes applied in order.
// Marks always shift; the script layer shifts or is reloaded once, by policy.
func (m *Manager) ApplyEdits(ctx context.Context, data []byte, edits ...types.EditInfo) error {
	m.mu.Lock()
	for _, edit := range edits {
		m.marks.Rebase(edit)
		if m.policy == PolicyUpdate {
			m.script.Rebase(edit)
		}
	}
	m.mu.Unlock()
	if m.policy == PolicyUpdate {
		return nil
	}
	return m.Reload(ctx, data)
}

// ToggleMark adds a mark over r, or removes the mark covering exactly r.
// It reports whether a mark was added.
func (m *Manager) ToggleMark(r types.Range) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	colors := markPalette[m.nextColor%len(markPalette)]
	added := m.marks.Toggle(Highlight{
		Start:      r.Start,
		End:        r.End - 1,
		Background: colors[0],
		Foreground: colors[1],
		Label:      MarkLabel,
	})
	if added {
		m.nextColor++
	}
	return added
}

// At returns script highlights then marks covering offset p.
func (m *Manager) At(p int) []Highlight {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append(m.script.At(p), m.marks.At(p)...)
}

// All returns every highlight, script layer first.
func (m *Manager) All() []Highlight {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append(m.script.All(), m.marks.All()...)
}

// Script returns a copy of the script layer.
func (m *Manager) Script() *Set {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return NewSet(m.script.items...)
}
