// internal/types/selection.go
package types

// SelectionKind tells a single cursor apart from a visual range.
type SelectionKind int

const (
	SingleSelection SelectionKind = iota
	VisualSelection
)

// Selection is either a single cursor or a visual range anchored at Center.
// For a single cursor Center equals Current.
type Selection struct {
	Kind    SelectionKind
	Current int
	Center  int
}

// Single returns a single-cursor selection at p.
func Single(p int) Selection {
	return Selection{Kind: SingleSelection, Current: p, Center: p}
}

// Visual returns a range selection with the active edge at current.
func Visual(current, center int) Selection {
	return Selection{Kind: VisualSelection, Current: current, Center: center}
}

// IsVisual reports whether the selection spans a range.
func (s Selection) IsVisual() bool {
	return s.Kind == VisualSelection
}

// Range returns the covered bytes. A single cursor covers one byte.
func (s Selection) Range() Range {
	if s.Kind == SingleSelection {
		return Range{Start: s.Current, End: s.Current + 1}
	}
	lo, hi := s.Current, s.Center
	if lo > hi {
		lo, hi = hi, lo
	}
	return Range{Start: lo, End: hi + 1}
}

// Collapse returns a single cursor at the active edge.
func (s Selection) Collapse() Selection {
	return Single(s.Current)
}

// MoveTo sets the active edge to p, keeping the center of a visual range.
func (s Selection) MoveTo(p int) Selection {
	if s.Kind == SingleSelection {
		return Single(p)
	}
	return Visual(p, s.Center)
}

// Clamp keeps both edges inside [0, length-1].
func (s Selection) Clamp(length int) Selection {
	s.Current = ClampIndex(s.Current, length)
	s.Center = ClampIndex(s.Center, length)
	if s.Kind == SingleSelection {
		s.Center = s.Current
	}
	return s
}

// ClampIndex limits p to [0, length-1].
func ClampIndex(p, length int) int {
	if p >= length {
		p = length - 1
	}
	if p < 0 {
		p = 0
	}
	return p
}
