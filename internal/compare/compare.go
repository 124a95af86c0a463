// Package compare aligns two byte sequences and classifies their differences.
package compare

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"znkr.io/diff"

	"github.com/bethropolis/lazyhex/internal/highlight"
	"github.com/bethropolis/lazyhex/internal/logger"
	"github.com/bethropolis/lazyhex/internal/types"
)

// Cell is one aligned position. Present is false for padding.
type Cell struct {
	Value   byte
	Present bool
}

// OpKind classifies a region of the edit script.
type OpKind int

const (
	OpEqual OpKind = iota
	OpDelete
	OpInsert
	OpReplace
)

func (k OpKind) String() string {
	switch k {
	case OpEqual:
		return "equal"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	case OpReplace:
		return "replace"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one region of the edit script in original (unpadded) offsets.
type Op struct {
	Kind OpKind
	Old  types.Range
	New  types.Range
}

// Counters summarize a comparison.
type Counters struct {
	Added    int
	Deleted  int
	Replaced int // aligned positions changed by replace ops
}

// Result is an immutable comparison of two sequences.
// Old and New always have equal length.
type Result struct {
	Old           []Cell
	New           []Cell
	OldHighlights *highlight.Set
	NewHighlights *highlight.Set
	Ops           []Op
	Counters
}

var (
	deletedColors  = [2]tcell.Color{tcell.ColorRed, tcell.ColorWhite}
	insertedColors = [2]tcell.Color{tcell.ColorGreen, tcell.ColorWhite}
	replacedColors = [2]tcell.Color{tcell.ColorYellow, tcell.ColorBlack}
)

// Diff returns the ordered edit script turning old into new.
// A deletion run adjacent to an insertion run becomes one replace op.
func Diff(old, new []byte) []Op {
	edits := diff.Edits(old, new)

	var ops []Op
	i, j := 0, 0
	oldStart, newStart := 0, 0
	dels, ins := 0, 0
	equal := 0

	flushEqual := func() {
		if equal > 0 {
			ops = append(ops, Op{
				Kind: OpEqual,
				Old:  types.Range{Start: i - equal, End: i},
				New:  types.Range{Start: j - equal, End: j},
			})
			equal = 0
		}
	}
	flushChange := func() {
		if dels == 0 && ins == 0 {
			return
		}
		op := Op{
			Old: types.Range{Start: oldStart, End: oldStart + dels},
			New: types.Range{Start: newStart, End: newStart + ins},
		}
		switch {
		case dels > 0 && ins > 0:
			op.Kind = OpReplace
		case dels > 0:
			op.Kind = OpDelete
		default:
			op.Kind = OpInsert
		}
		ops = append(ops, op)
		dels, ins = 0, 0
	}

	for _, e := range edits {
		switch e.Op {
		case diff.Match:
			flushChange()
			equal++
			i++
			j++
		case diff.Delete:
			if dels == 0 && ins == 0 {
				flushEqual()
				oldStart, newStart = i, j
			}
			dels++
			i++
		case diff.Insert:
			if dels == 0 && ins == 0 {
				flushEqual()
				oldStart, newStart = i, j
			}
			ins++
			j++
		}
	}
	flushChange()
	flushEqual()
	return ops
}

// New compares old and new.
func New(old, new []byte) *Result {
	r := &Result{
		OldHighlights: highlight.NewSet(),
		NewHighlights: highlight.NewSet(),
	}
	r.Ops = Diff(old, new)

	mark := func(set *highlight.Set, at, n int, colors [2]tcell.Color, label string) {
		if n == 0 {
			return
		}
		set.Add(highlight.Highlight{
			Start:      at,
			End:        at + n - 1,
			Background: colors[0],
			Foreground: colors[1],
			Label:      label,
		})
	}

	for _, op := range r.Ops {
		at := len(r.Old)
		oldLen, newLen := op.Old.Len(), op.New.Len()
		switch op.Kind {
		case OpEqual:
			r.Old = appendCells(r.Old, old[op.Old.Start:op.Old.End])
			r.New = appendCells(r.New, new[op.New.Start:op.New.End])
		case OpDelete:
			r.Old = appendCells(r.Old, old[op.Old.Start:op.Old.End])
			r.New = appendPadding(r.New, oldLen)
			mark(r.OldHighlights, at, oldLen, deletedColors, "deleted")
			r.Deleted += oldLen
		case OpInsert:
			r.Old = appendPadding(r.Old, newLen)
			r.New = appendCells(r.New, new[op.New.Start:op.New.End])
			mark(r.NewHighlights, at, newLen, insertedColors, "added")
			r.Added += newLen
		case OpReplace:
			width := max(oldLen, newLen)
			r.Old = appendPadding(appendCells(r.Old, old[op.Old.Start:op.Old.End]), width-oldLen)
			r.New = appendPadding(appendCells(r.New, new[op.New.Start:op.New.End]), width-newLen)
			mark(r.OldHighlights, at, oldLen, replacedColors, "replaced")
			mark(r.NewHighlights, at, newLen, replacedColors, "replaced")
			r.Replaced += width
		}
	}

	logger.Debugf("Compare: %d ops, +%d -%d ~%d over %d aligned cells",
		len(r.Ops), r.Added, r.Deleted, r.Replaced, len(r.Old))
	return r
}

func appendCells(dst []Cell, data []byte) []Cell {
	for _, b := range data {
		dst = append(dst, Cell{Value: b, Present: true})
	}
	return dst
}

func appendPadding(dst []Cell, n int) []Cell {
	for ; n > 0; n-- {
		dst = append(dst, Cell{})
	}
	return dst
}

// Len returns the aligned length.
func (r *Result) Len() int {
	return len(r.Old)
}

// Identical reports whether the inputs were equal.
func (r *Result) Identical() bool {
	return r.Added == 0 && r.Deleted == 0 && r.Replaced == 0
}

// Summary is a one-line description of the counters.
func (r *Result) Summary() string {
	return fmt.Sprintf("+%d added, -%d deleted, ~%d replaced", r.Added, r.Deleted, r.Replaced)
}
