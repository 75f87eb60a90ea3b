package forth

import (
	"fmt"

	"github.com/jcorbin/easyforth/internal/mem"
)

// cellSize is the number of offset units per cell.
const cellSize = 1

func otherWords() []namedWord {
	return []namedWord{
		{"!", store},
		{"+!", addStore},
		{"cells", unaryInt(func(n Integer) Integer { return n * cellSize })},
		{"allot", allot},
	}
}

// store ( value ptr -- ) writes the cell named by a pointer.
func store(in *Interpreter) error {
	ptr, err := in.popPointer()
	if err != nil {
		return err
	}
	val, err := in.pop()
	if err != nil {
		return err
	}
	return in.vars.stor(ptr, val)
}

// addStore ( n ptr -- ) adds to the cell named by a pointer.
func addStore(in *Interpreter) error {
	ptr, err := in.popPointer()
	if err != nil {
		return err
	}
	n, err := in.pop()
	if err != nil {
		return err
	}
	val, err := in.vars.load(ptr)
	if err != nil {
		return err
	}
	sum, err := addLiterals(val, n)
	if err != nil {
		return err
	}
	return in.vars.stor(ptr, sum)
}

// allot ( n -- ) replaces the value of the most recently defined variable
// with an array of n+1 cells.
func allot(in *Interpreter) error {
	n, err := in.popInt()
	if err != nil {
		return err
	}
	if n < 0 {
		return operandError{"non-negative cell count", n}
	}
	v, err := in.vars.last()
	if err != nil {
		return err
	}
	capacity := int64(n) + 1
	if capacity <= 0 {
		return operandError{"representable cell count", n}
	}
	if lim := int64(in.memLimit); lim > 0 && capacity > lim {
		return fmt.Errorf("allot %v cells: %w", capacity,
			mem.LimitError{Addr: uint(capacity - 1), Limit: uint(lim), Op: "allot"})
	}
	v.Value = NewArray(int(capacity))
	in.logf("#", "allot %v[%v]", v.Name, capacity)
	return nil
}
