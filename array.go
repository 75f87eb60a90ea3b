package forth

import (
	"strings"

	"github.com/jcorbin/easyforth/internal/mem"
)

// Array is a fixed capacity sequence of values, as reserved by allot.
// Cells that have never been stored read as Integer(0).
type Array struct {
	capacity int
	size     int
	cells    mem.Cells[Literal]
}

// NewArray creates an array able to hold capacity values.
func NewArray(capacity int) *Array {
	if capacity < 0 {
		capacity = 0
	}
	arr := &Array{capacity: capacity}
	arr.cells.PageSize = mem.DefaultPageSize
	if capacity > 0 && capacity < mem.DefaultPageSize {
		arr.cells.PageSize = uint(capacity)
	}
	arr.cells.Limit = uint(capacity)
	return arr
}

// Capacity returns the number of cells in the array.
func (arr *Array) Capacity() int { return arr.capacity }

// Len returns the number of values appended by Push.
func (arr *Array) Len() int { return arr.size }

// Push appends a value after the last one pushed, failing once the array
// holds capacity values. Set does not change where Push appends.
func (arr *Array) Push(val Literal) error {
	if arr.size >= arr.capacity {
		return IndexError{arr.size, arr.capacity}
	}
	if err := arr.cells.Stor(uint(arr.size), val); err != nil {
		return err
	}
	arr.size++
	return nil
}

// Get returns the value at index i.
func (arr *Array) Get(i int) (Literal, error) {
	if i < 0 || i >= arr.capacity {
		return nil, IndexError{i, arr.capacity}
	}
	val, err := arr.cells.Load(uint(i))
	if err != nil {
		return nil, err
	}
	if val == nil {
		return Integer(0), nil
	}
	return val, nil
}

// Set stores a value at index i.
func (arr *Array) Set(i int, val Literal) error {
	if i < 0 || i >= arr.capacity {
		return IndexError{i, arr.capacity}
	}
	return arr.cells.Stor(uint(i), val)
}

// Values returns a copy of all values in the array.
func (arr *Array) Values() []Literal {
	vals := make([]Literal, arr.capacity)
	for i := range vals {
		vals[i] = Integer(0)
	}
	arr.cells.Each(func(addr uint, val Literal) bool {
		if int(addr) >= len(vals) {
			return false
		}
		if val != nil {
			vals[addr] = val
		}
		return true
	})
	return vals
}

// Clone returns a deep copy of the array.
func (arr *Array) Clone() *Array {
	return &Array{
		capacity: arr.capacity,
		size:     arr.size,
		cells:    *arr.cells.Clone(),
	}
}

// Equal returns true if other has the same capacity and equal values.
func (arr *Array) Equal(other *Array) bool {
	if arr.capacity != other.capacity {
		return false
	}
	av, bv := arr.Values(), other.Values()
	for i := range av {
		if eq, err := Equal(av[i], bv[i]); err != nil || !eq {
			return false
		}
	}
	return true
}

func (arr *Array) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, val := range arr.Values() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(val.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
