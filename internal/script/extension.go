// Package script runs the user's Lua extension that computes highlights.
package script

import (
	"context"
	"fmt"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/bethropolis/lazyhex/internal/highlight"
	"github.com/bethropolis/lazyhex/internal/logger"
)

// DefaultTimeout bounds a single highlight pass.
const DefaultTimeout = 2 * time.Second

// Settings holds scalar values returned by the script's config table.
// Nil fields were not present.
type Settings struct {
	Page       *int
	Endian     *string
	EmptyValue *int
	OnDelete   *string
}

// Extension wraps a sandboxed Lua state holding the highlight callback.
//
// gopher-lua states are not goroutine-safe; the mutex serializes calls.
type Extension struct {
	L *lua.LState

	mu       sync.Mutex
	callback *lua.LFunction
	settings Settings
	timeout  time.Duration
	closed   bool
}

// Option configures an Extension.
type Option func(*Extension)

// WithTimeout sets the per-pass execution timeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Extension) {
		e.timeout = d
	}
}

func newExtension(opts ...Option) *Extension {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)

	e := &Extension{L: L, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// openSafeLibraries opens base, table, string and math, then strips loaders.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// LoadFile runs the script at path and captures its configuration.
func LoadFile(path string, opts ...Option) (*Extension, error) {
	e := newExtension(opts...)
	fn, err := e.L.LoadFile(path)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("load script '%s': %w", path, err)
	}
	if err := e.init(fn); err != nil {
		e.Close()
		return nil, fmt.Errorf("run script '%s': %w", path, err)
	}
	logger.Infof("Script: loaded %s (callback: %v)", path, e.callback != nil)
	return e, nil
}

// LoadString runs code as a script named name.
func LoadString(code, name string, opts ...Option) (*Extension, error) {
	e := newExtension(opts...)
	fn, err := e.L.LoadString(code)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("load script '%s': %w", name, err)
	}
	if err := e.init(fn); err != nil {
		e.Close()
		return nil, fmt.Errorf("run script '%s': %w", name, err)
	}
	return e, nil
}

// init executes the chunk once. A returned table supplies settings and
// the highlight function; otherwise a global "highlight" is used.
func (e *Extension) init(chunk *lua.LFunction) error {
	L := e.L
	err := e.doWithRecovery(func() error {
		L.Push(chunk)
		return L.PCall(0, 1, nil)
	})
	if err != nil {
		return err
	}
	ret := L.Get(-1)
	L.Pop(1)

	if tbl, ok := ret.(*lua.LTable); ok {
		if err := e.readSettings(tbl); err != nil {
			return err
		}
		if fn, ok := tbl.RawGetString("highlight").(*lua.LFunction); ok {
			e.callback = fn
		}
	}
	if e.callback == nil {
		if fn, ok := L.GetGlobal("highlight").(*lua.LFunction); ok {
			e.callback = fn
		}
	}
	return nil
}

func (e *Extension) readSettings(tbl *lua.LTable) error {
	intField := func(key string) (*int, error) {
		switch v := tbl.RawGetString(key).(type) {
		case *lua.LNilType:
			return nil, nil
		case lua.LNumber:
			n := int(v)
			if float64(n) != float64(v) {
				return nil, fmt.Errorf("%s must be an integer, got %v", key, v)
			}
			return &n, nil
		default:
			return nil, fmt.Errorf("%s must be a number, got %s", key, v.Type())
		}
	}
	strField := func(key string) (*string, error) {
		switch v := tbl.RawGetString(key).(type) {
		case *lua.LNilType:
			return nil, nil
		case lua.LString:
			s := string(v)
			return &s, nil
		default:
			return nil, fmt.Errorf("%s must be a string, got %s", key, v.Type())
		}
	}

	var err error
	if e.settings.Page, err = intField("page"); err != nil {
		return err
	}
	if e.settings.EmptyValue, err = intField("empty_value"); err != nil {
		return err
	}
	if e.settings.Endian, err = strField("endian"); err != nil {
		return err
	}
	if e.settings.OnDelete, err = strField("on_delete"); err != nil {
		return err
	}
	return nil
}

// Settings returns the scalar overrides found in the script's table.
func (e *Extension) Settings() Settings {
	return e.settings
}

// HasCallback reports whether a highlight function was found.
func (e *Extension) HasCallback() bool {
	return e.callback != nil
}

// Highlight runs the callback against data and collects registered highlights.
// Any failure yields an empty set together with the error.
func (e *Extension) Highlight(ctx context.Context, data []byte) (*highlight.Set, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return highlight.NewSet(), ErrClosed
	}
	if e.callback == nil {
		return highlight.NewSet(), ErrNoCallback
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}
	e.L.SetContext(ctx)
	defer e.L.RemoveContext()

	view := newBufferView(data)
	tbl := view.table(e.L)
	defer view.invalidate()

	top := e.L.GetTop()
	err := e.doWithRecovery(func() error {
		e.L.Push(e.callback)
		e.L.Push(tbl)
		return e.L.PCall(1, 0, nil)
	})
	e.L.SetTop(top)
	if err != nil {
		return highlight.NewSet(), fmt.Errorf("highlight callback: %w", err)
	}

	logger.DebugTagf("script", "Script: callback registered %d highlights", view.out.Len())
	return view.out, nil
}

// Close releases the Lua state.
func (e *Extension) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.L.Close()
}

func (e *Extension) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}
