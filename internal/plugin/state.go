package plugin

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// state wraps a sandboxed gopher-lua LState. LStates are not
// goroutine-safe; a state belongs to the Host that created it.
type state struct {
	L      *lua.LState
	closed bool
}

// newState creates a Lua state with only safe standard libraries opened.
// io, os, debug and package stay closed: plugins compute decorations and
// element descriptions, nothing more.
func newState() *state {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	return &state{L: L}
}

// doString executes a chunk of Lua source.
func (s *state) doString(src string) error {
	if s.closed {
		return ErrStateClosed
	}
	return s.L.DoString(src)
}

// hasFunction reports whether the script defined the named global
// function.
func (s *state) hasFunction(name string) bool {
	if s.closed {
		return false
	}
	_, ok := s.L.GetGlobal(name).(*lua.LFunction)
	return ok
}

// call invokes a global Lua function with the given arguments and
// returns its single result.
func (s *state) call(name string, args ...lua.LValue) (lua.LValue, error) {
	if s.closed {
		return lua.LNil, ErrStateClosed
	}
	fn, ok := s.L.GetGlobal(name).(*lua.LFunction)
	if !ok {
		return lua.LNil, fmt.Errorf("global %q is not a function", name)
	}
	if err := s.L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, args...); err != nil {
		return lua.LNil, err
	}
	ret := s.L.Get(-1)
	s.L.Pop(1)
	return ret, nil
}

// close releases the Lua state.
func (s *state) close() {
	if !s.closed {
		s.closed = true
		s.L.Close()
	}
}
