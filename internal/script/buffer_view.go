package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/bethropolis/lazyhex/internal/highlight"
)

// bufferView is the capability object handed to the highlight callback.
// It reads from a snapshot and records highlights; it cannot mutate the buffer.
type bufferView struct {
	data  []byte
	out   *highlight.Set
	self  *lua.LTable
	valid bool
}

func newBufferView(data []byte) *bufferView {
	return &bufferView{data: data, out: highlight.NewSet(), valid: true}
}

func (v *bufferView) invalidate() {
	v.valid = false
	v.data = nil
}

// table builds the Lua table exposing the view's functions.
func (v *bufferView) table(L *lua.LState) *lua.LTable {
	tbl := L.NewTable()
	v.self = tbl
	L.SetField(tbl, "len", L.NewFunction(v.luaLen))
	L.SetField(tbl, "read", L.NewFunction(v.luaRead))
	L.SetField(tbl, "read_be", L.NewFunction(v.luaReadBE))
	L.SetField(tbl, "read_le", L.NewFunction(v.luaReadLE))
	L.SetField(tbl, "register", L.NewFunction(v.luaRegister))
	return tbl
}

// base returns the index of the first real argument, so that both
// buf.read(a, b) and buf:read(a, b) work.
func (v *bufferView) base(L *lua.LState) int {
	if L.GetTop() >= 1 && L.Get(1) == v.self {
		return 2
	}
	return 1
}

func (v *bufferView) check(L *lua.LState) {
	if !v.valid {
		L.RaiseError("buffer view used outside of the highlight callback")
	}
}

// bounds reads start and an optional end (default start+defEnd).
func (v *bufferView) bounds(L *lua.LState, defEnd int) (int, int, int) {
	b := v.base(L)
	start := L.CheckInt(b)
	end := L.OptInt(b+1, start+defEnd)
	if start < 0 || start > end || end > len(v.data) {
		L.RaiseError("%v: [%d, %d) with length %d", ErrOutOfRange, start, end, len(v.data))
	}
	return b, start, end
}

func (v *bufferView) luaLen(L *lua.LState) int {
	v.check(L)
	L.Push(lua.LNumber(len(v.data)))
	return 1
}

// read(start, end) returns the raw bytes of [start, end) as a string.
func (v *bufferView) luaRead(L *lua.LState) int {
	v.check(L)
	b := v.base(L)
	start := L.CheckInt(b)
	end := L.CheckInt(b + 1)
	if start < 0 || start > end || end > len(v.data) {
		L.RaiseError("%v: [%d, %d) with length %d", ErrOutOfRange, start, end, len(v.data))
	}
	L.Push(lua.LString(v.data[start:end]))
	return 1
}

func (v *bufferView) luaReadBE(L *lua.LState) int {
	return v.readInt(L, true)
}

func (v *bufferView) luaReadLE(L *lua.LState) int {
	return v.readInt(L, false)
}

// readInt decodes 1..8 bytes as an unsigned integer.
func (v *bufferView) readInt(L *lua.LState, bigEndian bool) int {
	v.check(L)
	_, start, end := v.bounds(L, 1)
	n := end - start
	if n < 1 || n > 8 {
		L.RaiseError("integer read needs 1 to 8 bytes, got %d", n)
	}
	var value uint64
	if bigEndian {
		for _, c := range v.data[start:end] {
			value = value<<8 | uint64(c)
		}
	} else {
		for i := end - 1; i >= start; i-- {
			value = value<<8 | uint64(v.data[i])
		}
	}
	L.Push(lua.LNumber(value))
	return 1
}

// register(start, end?, bg?, fg?, label?) records the inclusive span [start, end].
func (v *bufferView) luaRegister(L *lua.LState) int {
	v.check(L)
	b := v.base(L)
	start := L.CheckInt(b)
	end := L.OptInt(b+1, start)
	if start < 0 || start > end || end >= len(v.data) {
		L.RaiseError("%v: [%d, %d] with length %d", ErrOutOfRange, start, end, len(v.data))
	}
	bg, err := highlight.ParseColor(L.OptString(b+2, ""))
	if err != nil {
		L.RaiseError("register: %v", err)
	}
	fg, err := highlight.ParseColor(L.OptString(b+3, ""))
	if err != nil {
		L.RaiseError("register: %v", err)
	}
	label := L.OptString(b+4, fmt.Sprintf("%#x-%#x", start, end))

	v.out.Add(highlight.Highlight{
		Start:      start,
		End:        end,
		Background: bg,
		Foreground: fg,
		Label:      label,
	})
	return 0
}
