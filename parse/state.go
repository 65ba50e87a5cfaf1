// Package parse provides the token plumbing underneath the resolver: a
// single-pass scan state over heterogeneous tokens and shell-style splitting
// of command strings.
package parse

import (
	"github.com/ef-ds/deque"
)

// State is a single-pass cursor over a token list. Tokens are untyped so
// non-string values (numbers, slices, maps) travel through the scan intact.
// A token leaves the pending queue exactly once, either by Advance or by
// Take, so a consumed option argument can never be visited again.
type State interface {
	Advance() bool             // Move the cursor to the next pending token
	Current() interface{}      // Token under the cursor
	Peek() (interface{}, bool) // Next pending token without consuming it
	Take() (interface{}, bool) // Consume the next pending token out of band
	Drain() []interface{}      // Consume every pending token after the cursor
	Pos() int                  // Zero-based position of the cursor in the original list
	Len() int                  // Length of the original token list
}

// DefaultState is the default implementation of the State interface.
type DefaultState struct {
	pending *deque.Deque
	current interface{}
	pos     int
	length  int
}

// NewState creates a new State over the given token list.
func NewState(tokens []interface{}) State {
	pending := deque.New()
	for _, token := range tokens {
		pending.PushBack(token)
	}

	return &DefaultState{
		pending: pending,
		pos:     -1,
		length:  len(tokens),
	}
}

// Advance moves the cursor to the next pending token, returning false once
// the list is exhausted.
func (s *DefaultState) Advance() bool {
	token, ok := s.pending.PopFront()
	if !ok {
		s.current = nil
		return false
	}
	s.current = token
	s.pos++

	return true
}

// Current returns the token under the cursor. It is only meaningful after a
// successful Advance.
func (s *DefaultState) Current() interface{} {
	return s.current
}

// Peek returns the next pending token without consuming it.
func (s *DefaultState) Peek() (interface{}, bool) {
	return s.pending.Front()
}

// Take consumes the next pending token without placing the cursor on it.
// Used when a token is swallowed as the argument of the option before it.
func (s *DefaultState) Take() (interface{}, bool) {
	token, ok := s.pending.PopFront()
	if !ok {
		return nil, false
	}
	s.pos++

	return token, true
}

// Drain consumes and returns every pending token after the cursor, in order.
func (s *DefaultState) Drain() []interface{} {
	rest := make([]interface{}, 0, s.pending.Len())
	for {
		token, ok := s.pending.PopFront()
		if !ok {
			break
		}
		rest = append(rest, token)
		s.pos++
	}

	return rest
}

// Pos returns the zero-based position of the cursor, counting consumed tokens.
func (s *DefaultState) Pos() int {
	return s.pos
}

// Len returns the length of the original token list.
func (s *DefaultState) Len() int {
	return s.length
}
