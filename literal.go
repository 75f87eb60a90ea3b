package forth

import (
	"fmt"
	"strconv"
	"strings"
)

// Literal is a runtime value: one of Integer, String, Pointer, *Array or
// Unknown. Equality and ordering are only defined between values of the same
// type; see Equal and Compare.
type Literal interface {
	fmt.Stringer
	literal()
}

// Integer is a 64-bit signed cell value.
type Integer int64

// String is an owned text value.
type String string

// Pointer names a cell within the variable store: Address is the index of a
// variable slot, and Offset a cell within that variable's value. Pointers
// never alias or own memory; they are resolved at each use.
type Pointer struct {
	Address int
	Offset  int
}

// Unknown is a value of no known type; it compares to nothing.
type Unknown struct{}

func (Integer) literal() {}
func (String) literal()  {}
func (Pointer) literal() {}
func (*Array) literal()  {}
func (Unknown) literal() {}

// True and False are the canonical boolean results of logic words.
const (
	True  = Integer(-1)
	False = Integer(0)
)

func boolean(b bool) Integer {
	if b {
		return True
	}
	return False
}

func (n Integer) String() string { return strconv.FormatInt(int64(n), 10) }
func (s String) String() string  { return `"` + string(s) + `"` }
func (p Pointer) String() string { return fmt.Sprintf("@%d+%d", p.Address, p.Offset) }
func (Unknown) String() string   { return "unknown" }

// display returns the form that a value is printed as by words like ".";
// strings are shown without quotes.
func display(lit Literal) string {
	switch v := lit.(type) {
	case String:
		return string(v)
	case nil:
		return "unset"
	default:
		return v.String()
	}
}

// Truth coerces a branch condition to a boolean: only True (-1) is true
// among integers, and strings are always true. Arrays, pointers and unknown
// values have no truth value.
func Truth(lit Literal) (bool, error) {
	switch v := lit.(type) {
	case Integer:
		return v == True, nil
	case String:
		return true, nil
	default:
		return false, operandError{"integer or string", lit}
	}
}

// Equal returns true if a and b are of the same type and hold equal values.
// Comparing values of different types, or unknown values, is an error.
func Equal(a, b Literal) (bool, error) {
	switch av := a.(type) {
	case Integer, String, Pointer:
		if !sameType(a, b) {
			return false, operandsError{a, b}
		}
		return a == b, nil
	case *Array:
		bv, ok := b.(*Array)
		if !ok {
			return false, operandsError{a, b}
		}
		return av.Equal(bv), nil
	default:
		return false, operandsError{a, b}
	}
}

// Compare orders a and b, returning a negative, zero or positive integer.
// Integers and strings order naturally, and pointers order by address then
// offset. Arrays and unknown values are unordered.
func Compare(a, b Literal) (int, error) {
	if !sameType(a, b) {
		return 0, operandsError{a, b}
	}
	switch av := a.(type) {
	case Integer:
		return compareInts(int64(av), int64(b.(Integer))), nil
	case String:
		return strings.Compare(string(av), string(b.(String))), nil
	case Pointer:
		bv := b.(Pointer)
		if c := compareInts(int64(av.Address), int64(bv.Address)); c != 0 {
			return c, nil
		}
		return compareInts(int64(av.Offset), int64(bv.Offset)), nil
	default:
		return 0, operandsError{a, b}
	}
}

func compareInts(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func sameType(a, b Literal) bool {
	switch a.(type) {
	case Integer:
		_, ok := b.(Integer)
		return ok
	case String:
		_, ok := b.(String)
		return ok
	case Pointer:
		_, ok := b.(Pointer)
		return ok
	case *Array:
		_, ok := b.(*Array)
		return ok
	case Unknown:
		_, ok := b.(Unknown)
		return ok
	}
	return false
}

// cloneLiteral returns a copy of lit that shares no mutable state.
func cloneLiteral(lit Literal) Literal {
	if arr, ok := lit.(*Array); ok {
		return arr.Clone()
	}
	return lit
}
