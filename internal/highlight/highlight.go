// internal/highlight/highlight.go
package highlight

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/lazyhex/internal/types"
)

// Highlight annotates the inclusive byte span [Start, End].
// tcell.ColorDefault means the color is not set.
type Highlight struct {
	Start      int
	End        int
	Background tcell.Color
	Foreground tcell.Color
	Label      string
}

// Contains reports whether offset p is covered.
func (h Highlight) Contains(p int) bool {
	return p >= h.Start && p <= h.End
}

// Style applies the highlight colors on top of base.
func (h Highlight) Style(base tcell.Style) tcell.Style {
	if h.Background != tcell.ColorDefault {
		base = base.Background(h.Background)
	}
	if h.Foreground != tcell.ColorDefault {
		base = base.Foreground(h.Foreground)
	}
	return base
}

// ParseColor accepts tcell color names and "#rrggbb". An empty name is unset.
func ParseColor(name string) (tcell.Color, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return tcell.ColorDefault, nil
	}
	c := tcell.GetColor(strings.ToLower(name))
	if c == tcell.ColorDefault && !strings.EqualFold(name, "default") {
		return tcell.ColorDefault, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}

// Set is an ordered collection of highlights.
type Set struct {
	items []Highlight
}

// NewSet returns a set holding items in order.
func NewSet(items ...Highlight) *Set {
	return &Set{items: append([]Highlight(nil), items...)}
}

// Add appends h.
func (s *Set) Add(h Highlight) {
	s.items = append(s.items, h)
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// All returns a copy of the highlights.
func (s *Set) All() []Highlight {
	if s == nil {
		return nil
	}
	return append([]Highlight(nil), s.items...)
}

// At returns the highlights covering offset p, in insertion order.
func (s *Set) At(p int) []Highlight {
	if s == nil {
		return nil
	}
	var out []Highlight
	for _, h := range s.items {
		if h.Contains(p) {
			out = append(out, h)
		}
	}
	return out
}

// Toggle removes the highlight covering exactly [start, end], or adds h when none does.
// It reports whether h was added.
func (s *Set) Toggle(h Highlight) bool {
	for i, existing := range s.items {
		if existing.Start == h.Start && existing.End == h.End {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return false
		}
	}
	s.items = append(s.items, h)
	return true
}

// Rebase shifts highlights after an insertion or deletion.
//
// For an insertion of k bytes at p, any bound at or after p moves by k.
// For a deletion of [a, b), highlights lying wholly inside are dropped,
// bounds inside the span clamp to its edges and bounds after it move back.
func (s *Set) Rebase(edit types.EditInfo) {
	switch {
	case edit.IsInsert():
		p, k := edit.Start, edit.Delta()
		for i := range s.items {
			if s.items[i].Start >= p {
				s.items[i].Start += k
			}
			if s.items[i].End >= p {
				s.items[i].End += k
			}
		}
	case edit.IsDelete():
		a, b := edit.Start, edit.OldEnd
		k := -edit.Delta()
		kept := s.items[:0]
		for _, h := range s.items {
			if h.Start >= a && h.End < b {
				continue
			}
			switch {
			case h.Start >= b:
				h.Start -= k
			case h.Start >= a:
				h.Start = a
			}
			switch {
			case h.End >= b:
				h.End -= k
			case h.End >= a:
				h.End = a - 1
			}
			kept = append(kept, h)
		}
		s.items = kept
	}
}

// Sorted returns the highlights ordered by start offset.
func (s *Set) Sorted() []Highlight {
	out := s.All()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}
