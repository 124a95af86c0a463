package compare

import "fmt"

// BitState classifies one bit of an aligned pair.
type BitState int

const (
	BitSame    BitState = iota
	BitSet              // 0 in old, 1 in new
	BitCleared          // 1 in old, 0 in new
)

// BitDiff describes an aligned pair of cells bit by bit.
type BitDiff struct {
	Old  string      // old value in binary, or empty for padding
	New  string      // new value in binary, or empty for padding
	Bits [8]BitState // most significant bit first
	Kind OpKind      // OpEqual, OpInsert, OpDelete or OpReplace for a changed byte
}

// CompareCells classifies the bits of old against new.
func CompareCells(old, new Cell) BitDiff {
	var d BitDiff
	if old.Present {
		d.Old = fmt.Sprintf("%08b", old.Value)
	}
	if new.Present {
		d.New = fmt.Sprintf("%08b", new.Value)
	}
	switch {
	case !old.Present && !new.Present:
		d.Kind = OpEqual
	case !old.Present:
		d.Kind = OpInsert
	case !new.Present:
		d.Kind = OpDelete
	default:
		x := old.Value ^ new.Value
		for i := 0; i < 8; i++ {
			bit := byte(1) << (7 - i)
			if x&bit == 0 {
				continue
			}
			if new.Value&bit != 0 {
				d.Bits[i] = BitSet
			} else {
				d.Bits[i] = BitCleared
			}
		}
		if x == 0 {
			d.Kind = OpEqual
		} else {
			d.Kind = OpReplace
		}
	}
	return d
}

// Marker renders the middle line of the bit panel.
func (d BitDiff) Marker() string {
	switch d.Kind {
	case OpInsert:
		return " ++++++ "
	case OpDelete:
		return " ------ "
	}
	out := make([]byte, 8)
	for i, s := range d.Bits {
		switch s {
		case BitSet:
			out[i] = '1'
		case BitCleared:
			out[i] = '0'
		default:
			out[i] = ' '
		}
	}
	return string(out)
}
