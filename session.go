package forth

import (
	"context"
	"io"
	"sync"

	"github.com/jcorbin/easyforth/internal/panicerr"
)

// Session serializes access to an Interpreter for hosts that share it across
// goroutines. Any panic raised during a call is returned as an error rather
// than crashing the host.
type Session struct {
	mu sync.Mutex
	in *Interpreter
}

// NewSession creates a session around a new Interpreter.
func NewSession(opts ...Option) *Session {
	return &Session{in: New(opts...)}
}

func (s *Session) do(name string, f func(in *Interpreter) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return panicerr.Recover(name, func() error { return f(s.in) })
}

// ExecuteLine calls Interpreter.ExecuteLine while holding the session lock.
func (s *Session) ExecuteLine(text string) error {
	return s.do("ExecuteLine", func(in *Interpreter) error { return in.ExecuteLine(text) })
}

// Execute calls Interpreter.Execute while holding the session lock.
func (s *Session) Execute(text string) error {
	return s.do("Execute", func(in *Interpreter) error { return in.Execute(text) })
}

// Run calls Interpreter.Run while holding the session lock.
func (s *Session) Run(ctx context.Context, inputs ...io.Reader) error {
	return s.do("Run", func(in *Interpreter) error { return in.Run(ctx, inputs...) })
}

// Pop calls Interpreter.Pop while holding the session lock.
func (s *Session) Pop() (val Literal, err error) {
	err = s.do("Pop", func(in *Interpreter) (err error) {
		val, err = in.Pop()
		return err
	})
	return val, err
}

// ClearState calls Interpreter.ClearState while holding the session lock.
func (s *Session) ClearState() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.in.ClearState()
}

// Snapshot holds copies of all interpreter state.
type Snapshot struct {
	Stack       []Literal
	Vars        []Variable
	Consts      map[string]Literal
	NativeWords []string
	UserWords   map[string]Body
}

// Snapshot returns copies of all interpreter state, taken atomically.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Stack:       s.in.StackDump(),
		Vars:        s.in.VarsDump(),
		Consts:      s.in.ConstsDump(),
		NativeWords: s.in.NativeWordsDump(),
		UserWords:   s.in.UserWordsDump(),
	}
}

// Dump calls Interpreter.Dump while holding the session lock.
func (s *Session) Dump(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.in.Dump(w)
}
