package forth

import (
	"sort"
)

// NativeWord implements a built-in word against the interpreter's state.
type NativeWord func(in *Interpreter) error

// Interpreter executes parsed lines against a data stack, a variable store,
// and tables of constants, native words and user-defined words.
//
// An Interpreter is not safe for concurrent use; see Session.
type Interpreter struct {
	logging
	ioCore

	stack   []Literal
	vars    variables
	consts  map[string]Literal
	natives map[string]NativeWord
	words   map[string]Body

	depth    int
	maxDepth int
	memLimit int
}

func (in *Interpreter) push(vals ...Literal) {
	in.stack = append(in.stack, vals...)
}

func (in *Interpreter) pop() (Literal, error) {
	i := len(in.stack) - 1
	if i < 0 {
		return nil, ErrStackUnderflow
	}
	val := in.stack[i]
	in.stack[i] = nil
	in.stack = in.stack[:i]
	return val, nil
}

// popN pops the top n values, returning them in stack order; nothing is
// popped unless all n values are present.
func (in *Interpreter) popN(n int) ([]Literal, error) {
	i := len(in.stack) - n
	if i < 0 {
		return nil, ErrStackUnderflow
	}
	vals := make([]Literal, n)
	copy(vals, in.stack[i:])
	for j := i; j < len(in.stack); j++ {
		in.stack[j] = nil
	}
	in.stack = in.stack[:i]
	return vals, nil
}

func (in *Interpreter) peek() (Literal, error) {
	i := len(in.stack) - 1
	if i < 0 {
		return nil, ErrStackUnderflow
	}
	return in.stack[i], nil
}

func (in *Interpreter) popInt() (Integer, error) {
	val, err := in.pop()
	if err != nil {
		return 0, err
	}
	n, ok := val.(Integer)
	if !ok {
		return 0, operandError{"integer", val}
	}
	return n, nil
}

// popInts pops two integers, returning them in stack order.
func (in *Interpreter) popInts() (a, b Integer, err error) {
	vals, err := in.popN(2)
	if err != nil {
		return 0, 0, err
	}
	a, aok := vals[0].(Integer)
	b, bok := vals[1].(Integer)
	if !aok || !bok {
		return 0, 0, operandsError{vals[0], vals[1]}
	}
	return a, b, nil
}

func (in *Interpreter) popPointer() (Pointer, error) {
	val, err := in.pop()
	if err != nil {
		return Pointer{}, err
	}
	ptr, ok := val.(Pointer)
	if !ok {
		return Pointer{}, operandError{"pointer", val}
	}
	return ptr, nil
}

func (in *Interpreter) defineNatives(words ...namedWord) {
	if in.natives == nil {
		in.natives = make(map[string]NativeWord, len(words))
	}
	for _, w := range words {
		in.natives[w.name] = w.fn
	}
}

func (in *Interpreter) nativeNames() []string {
	names := make([]string, 0, len(in.natives))
	for name := range in.natives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (in *Interpreter) reset() {
	in.stack = nil
	in.vars = variables{}
	in.consts = make(map[string]Literal)
	in.words = make(map[string]Body)
	in.depth = 0
}
