package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/lazyhex/internal/types"
)

func values(cells []Cell) []int {
	out := make([]int, len(cells))
	for i, c := range cells {
		if c.Present {
			out[i] = int(c.Value)
		} else {
			out[i] = -1
		}
	}
	return out
}

func TestIdentity(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	r := New(data, data)
	assert.True(t, r.Identical())
	assert.Zero(t, r.OldHighlights.Len())
	assert.Zero(t, r.NewHighlights.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, values(r.Old))
	assert.Equal(t, values(r.Old), values(r.New))
	require.Len(t, r.Ops, 1)
	assert.Equal(t, OpEqual, r.Ops[0].Kind)
}

func TestAppendedByte(t *testing.T) {
	r := New([]byte{1, 2, 3}, []byte{1, 2, 3, 4})
	assert.Equal(t, []int{1, 2, 3, -1}, values(r.Old))
	assert.Equal(t, []int{1, 2, 3, 4}, values(r.New))
	assert.Equal(t, Counters{Added: 1}, r.Counters)

	hl := r.NewHighlights.All()
	require.Len(t, hl, 1)
	assert.Equal(t, 3, hl[0].Start)
	assert.Equal(t, 3, hl[0].End)
	assert.Zero(t, r.OldHighlights.Len())
}

func TestDeletedRun(t *testing.T) {
	r := New([]byte{1, 2, 3, 4}, []byte{1, 4})
	assert.Equal(t, []int{1, 2, 3, 4}, values(r.Old))
	assert.Equal(t, []int{1, -1, -1, 4}, values(r.New))
	assert.Equal(t, 2, r.Deleted)

	hl := r.OldHighlights.All()
	require.Len(t, hl, 1)
	assert.Equal(t, 1, hl[0].Start)
	assert.Equal(t, 2, hl[0].End)
	assert.Equal(t, "deleted", hl[0].Label)
}

func TestReplacePadsShorterSide(t *testing.T) {
	r := New([]byte{0, 9, 0}, []byte{0, 7, 8, 0})
	require.Len(t, r.Ops, 3)
	assert.Equal(t, OpReplace, r.Ops[1].Kind)
	assert.Equal(t, types.Range{Start: 1, End: 2}, r.Ops[1].Old)
	assert.Equal(t, types.Range{Start: 1, End: 3}, r.Ops[1].New)

	assert.Equal(t, []int{0, 9, -1, 0}, values(r.Old))
	assert.Equal(t, []int{0, 7, 8, 0}, values(r.New))
	assert.Equal(t, 2, r.Replaced)
	assert.Len(t, r.Old, len(r.New))

	oldHL := r.OldHighlights.All()
	require.Len(t, oldHL, 1)
	assert.Equal(t, [2]int{1, 1}, [2]int{oldHL[0].Start, oldHL[0].End})
	newHL := r.NewHighlights.All()
	require.Len(t, newHL, 1)
	assert.Equal(t, [2]int{1, 2}, [2]int{newHL[0].Start, newHL[0].End})
}

func TestEqualLengthReplaceIsCounted(t *testing.T) {
	r := New([]byte{1, 2, 3}, []byte{1, 5, 3})
	assert.Equal(t, 1, r.Replaced)
	assert.False(t, r.Identical())
}

func TestAlignedLengthsMatch(t *testing.T) {
	cases := [][2][]byte{
		{{1}, {2, 3, 4}},
		{{1, 2, 3, 4, 5}, {5, 4, 3, 2, 1}},
		{{0, 0, 0}, {}},
		{{}, {7}},
	}
	for _, c := range cases {
		r := New(c[0], c[1])
		assert.Len(t, r.Old, len(r.New))

		var oldVals, newVals []byte
		for i := range r.Old {
			if r.Old[i].Present {
				oldVals = append(oldVals, r.Old[i].Value)
			}
			if r.New[i].Present {
				newVals = append(newVals, r.New[i].Value)
			}
		}
		assert.Equal(t, len(c[0]), len(oldVals))
		assert.Equal(t, len(c[1]), len(newVals))
		if len(c[0]) > 0 {
			assert.Equal(t, c[0], oldVals)
		}
		if len(c[1]) > 0 {
			assert.Equal(t, c[1], newVals)
		}
	}
}

func TestCompareCells(t *testing.T) {
	d := CompareCells(Cell{Value: 0b1010_0000, Present: true}, Cell{Value: 0b0010_0001, Present: true})
	assert.Equal(t, "10100000", d.Old)
	assert.Equal(t, "00100001", d.New)
	assert.Equal(t, "0      1", d.Marker())
	assert.Equal(t, OpReplace, d.Kind)

	assert.Equal(t, " ++++++ ", CompareCells(Cell{}, Cell{Value: 1, Present: true}).Marker())
	assert.Equal(t, " ------ ", CompareCells(Cell{Value: 1, Present: true}, Cell{}).Marker())
	assert.Equal(t, OpEqual, CompareCells(Cell{Value: 3, Present: true}, Cell{Value: 3, Present: true}).Kind)
}

func TestView(t *testing.T) {
	r := New([]byte{1, 2, 3, 4, 5, 6}, []byte{1, 2, 9, 4, 5, 6, 7})
	v := NewView(r, "a.bin", "b.bin", 4, 0)
	v.SetViewSize(2)

	v.Move(-3)
	assert.Equal(t, 0, v.Position())
	v.PageDown()
	assert.Equal(t, 4, v.Position())
	v.GotoEnd()
	assert.Equal(t, r.Len()-1, v.Position())

	oldCell, newCell := v.Current()
	assert.False(t, oldCell.Present)
	assert.Equal(t, byte(7), newCell.Value)
	assert.NotEmpty(t, v.HighlightsAt())

	v.Goto(0)
	require.True(t, v.NextChange())
	assert.Equal(t, 2, v.Position())
	require.True(t, v.NextChange())
	assert.Equal(t, 6, v.Position())
	assert.False(t, v.NextChange())
}

func TestSummary(t *testing.T) {
	r := New([]byte{1, 2}, []byte{1, 2, 3})
	assert.Equal(t, "+1 added, -0 deleted, ~0 replaced", r.Summary())
}
