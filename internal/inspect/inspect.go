// Package inspect interprets the bytes under the cursor as numbers and text.
package inspect

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/bethropolis/lazyhex/internal/types"
)

// MaxStringRunes bounds the decoded selection text.
const MaxStringRunes = 20

// Row is one labelled interpretation.
type Row struct {
	Name  string
	Value string
}

// readN copies up to n bytes from data[pos:] into a zero-padded buffer.
func readN(data []byte, pos, n int) []byte {
	out := make([]byte, n)
	if pos < len(data) {
		copy(out, data[pos:])
	}
	return out
}

func order(e types.Endian) binary.ByteOrder {
	if e == types.LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// Table returns the interpretations of data at pos. sel supplies the range
// decoded as text when it is visual. Short reads at the end are zero-padded.
func Table(data []byte, pos int, sel types.Selection, endian types.Endian) []Row {
	if pos < 0 || pos >= len(data) {
		return nil
	}
	bo := order(endian)
	b := data[pos]
	u16 := bo.Uint16(readN(data, pos, 2))
	u32 := bo.Uint32(readN(data, pos, 4))
	u64 := bo.Uint64(readN(data, pos, 8))

	return []Row{
		{"hex", fmt.Sprintf("0x%02x", b)},
		{"binary", fmt.Sprintf("0b%08b", b)},
		{"octal", fmt.Sprintf("0o%o", b)},
		{"u8", strconv.FormatUint(uint64(b), 10)},
		{"i8", strconv.FormatInt(int64(int8(b)), 10)},
		{"char", strconv.QuoteRune(rune(b))},
		{"u16", strconv.FormatUint(uint64(u16), 10)},
		{"i16", strconv.FormatInt(int64(int16(u16)), 10)},
		{"u32", strconv.FormatUint(uint64(u32), 10)},
		{"i32", strconv.FormatInt(int64(int32(u32)), 10)},
		{"u64", strconv.FormatUint(u64, 10)},
		{"i64", strconv.FormatInt(int64(u64), 10)},
		{"f32", strconv.FormatFloat(float64(math.Float32frombits(u32)), 'e', 5, 32)},
		{"f64", strconv.FormatFloat(math.Float64frombits(u64), 'e', 5, 64)},
		{"string", strconv.Quote(selectionText(data, sel))},
	}
}

// selectionText decodes a visual range as UTF-8, or the single byte as a character.
func selectionText(data []byte, sel types.Selection) string {
	if !sel.IsVisual() {
		return string(rune(data[sel.Current]))
	}
	r := sel.Range()
	if r.End > len(data) {
		r.End = len(data)
	}
	chunk := data[r.Start:r.End]
	if !utf8.Valid(chunk) {
		return "* not utf8 *"
	}
	s := string(chunk)
	if utf8.RuneCountInString(s) > MaxStringRunes {
		s = string([]rune(s)[:MaxStringRunes])
	}
	return s
}
