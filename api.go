package forth

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/jcorbin/easyforth/internal/fileinput"
)

// New creates an interpreter with the standard native words, and an empty
// stack, variable store, constant table and user word table.
func New(opts ...Option) *Interpreter {
	var in Interpreter
	in.reset()
	in.defineNatives(standardWords()...)
	defaults.apply(&in)
	Options(opts...).apply(&in)
	return &in
}

// ExecuteLine parses exactly one line of source, then executes it. A line
// that fails to parse is not executed at all; a line that fails during
// execution keeps any effects applied before the failure. Any buffered
// output is flushed before returning.
func (in *Interpreter) ExecuteLine(text string) (rerr error) {
	defer func() {
		if ferr := in.flush(); rerr == nil {
			rerr = ferr
		}
		if rerr != nil {
			in.logf("!", "%v", rerr)
		}
	}()
	in.logf(">", "%v", text)
	line, err := Parse(text)
	if err != nil {
		return err
	}
	return line.Execute(in)
}

// Execute executes each newline-separated line of text in order, stopping at
// the first failure.
func (in *Interpreter) Execute(text string) error {
	for _, line := range strings.Split(text, "\n") {
		if err := in.ExecuteLine(strings.TrimSuffix(line, "\r")); err != nil {
			return err
		}
	}
	return nil
}

// Run executes every line read from the given inputs, in order, stopping at
// the first failure, which is returned as a *LineError. The context is only
// checked between lines. Inputs that implement io.Closer are closed.
func (in *Interpreter) Run(ctx context.Context, inputs ...io.Reader) (rerr error) {
	src := fileinput.New(inputs...)
	defer func() {
		if cerr := src.Close(); rerr == nil {
			rerr = cerr
		}
	}()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		text, loc, err := src.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		if err := in.ExecuteLine(text); err != nil {
			return &LineError{loc, text, err}
		}
	}
}

// Pop removes and returns the top of the stack.
func (in *Interpreter) Pop() (Literal, error) { return in.pop() }

// Peek returns the top of the stack without removing it.
func (in *Interpreter) Peek() (Literal, error) { return in.peek() }

// Push pushes values onto the stack, as if by literals.
func (in *Interpreter) Push(vals ...Literal) { in.push(vals...) }

// StackDump returns a copy of the stack, bottom first.
func (in *Interpreter) StackDump() []Literal {
	dump := make([]Literal, len(in.stack))
	for i, val := range in.stack {
		dump[i] = cloneLiteral(val)
	}
	return dump
}

// VarsDump returns a copy of the variable store, in address order.
func (in *Interpreter) VarsDump() []Variable { return in.vars.dump() }

// ConstsDump returns a copy of the constant table.
func (in *Interpreter) ConstsDump() map[string]Literal {
	dump := make(map[string]Literal, len(in.consts))
	for name, val := range in.consts {
		dump[name] = val
	}
	return dump
}

// NativeWordsDump returns the sorted names of all native words.
func (in *Interpreter) NativeWordsDump() []string { return in.nativeNames() }

// UserWordsDump returns a copy of the user word table.
func (in *Interpreter) UserWordsDump() map[string]Body {
	dump := make(map[string]Body, len(in.words))
	for name, body := range in.words {
		dump[name] = body
	}
	return dump
}

// ClearState empties the stack, variable store, constant table and user word
// table; native words and options are unchanged.
func (in *Interpreter) ClearState() {
	in.logf("#", "clear state")
	in.reset()
}
