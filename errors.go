package forth

import (
	"errors"
	"fmt"

	"github.com/jcorbin/easyforth/internal/fileinput"
)

// Sentinel errors, one per error kind; use errors.Is, or KindOf, to classify
// errors returned by the Interpreter.
var (
	ErrStackUnderflow    = errors.New("stack underflow")
	ErrInvalidOperands   = errors.New("invalid operands")
	ErrVariableNotExist  = errors.New("variable does not exist")
	ErrIndexOutOfBound   = errors.New("index out of bound")
	ErrUnknownIdentifier = errors.New("unknown identifier")
	ErrCallDepth         = errors.New("return stack overflow")
)

// ErrorKind classifies interpreter errors.
type ErrorKind int

// Error kinds.
const (
	NoError ErrorKind = iota
	StackUnderflow
	InvalidOperands
	VariableNotExist
	IndexOutOfBound
	UnknownIdentifier
	ParseFailure
	OtherError
)

var errorKindNames = [...]string{
	NoError:           "NoError",
	StackUnderflow:    "StackUnderflow",
	InvalidOperands:   "InvalidOperands",
	VariableNotExist:  "VariableNotExist",
	IndexOutOfBound:   "IndexOutOfBound",
	UnknownIdentifier: "UnknownIdentifier",
	ParseFailure:      "ParseError",
	OtherError:        "OtherError",
}

func (kind ErrorKind) String() string {
	if kind >= 0 && int(kind) < len(errorKindNames) {
		return errorKindNames[kind]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(kind))
}

// KindOf classifies any error returned by the Interpreter.
func KindOf(err error) ErrorKind {
	var pe *ParseError
	switch {
	case err == nil:
		return NoError
	case errors.As(err, &pe):
		return ParseFailure
	case errors.Is(err, ErrStackUnderflow):
		return StackUnderflow
	case errors.Is(err, ErrInvalidOperands):
		return InvalidOperands
	case errors.Is(err, ErrVariableNotExist):
		return VariableNotExist
	case errors.Is(err, ErrIndexOutOfBound):
		return IndexOutOfBound
	case errors.Is(err, ErrUnknownIdentifier):
		return UnknownIdentifier
	default:
		return OtherError
	}
}

// wordError annotates a failure with the name of the word that raised it.
type wordError struct {
	name string
	err  error
}

func (err wordError) Error() string { return fmt.Sprintf("%v: %v", err.name, err.err) }
func (err wordError) Unwrap() error { return err.err }

// IndexError reports an access past the bounds of an array, or a non-zero
// offset into a scalar variable.
type IndexError struct {
	Index    int
	Capacity int
}

func (err IndexError) Error() string {
	return fmt.Sprintf("%v: %v not in [0, %v)", ErrIndexOutOfBound, err.Index, err.Capacity)
}
func (err IndexError) Unwrap() error { return ErrIndexOutOfBound }

type operandError struct {
	want string
	got  Literal
}

func (err operandError) Error() string {
	return fmt.Sprintf("%v: expected %v, got %v", ErrInvalidOperands, err.want, err.got)
}
func (err operandError) Unwrap() error { return ErrInvalidOperands }

type operandsError struct{ a, b Literal }

func (err operandsError) Error() string {
	return fmt.Sprintf("%v: %v and %v", ErrInvalidOperands, err.a, err.b)
}
func (err operandsError) Unwrap() error { return ErrInvalidOperands }

type addressError int

func (addr addressError) Error() string {
	return fmt.Sprintf("%v @%v", ErrVariableNotExist, int(addr))
}
func (addr addressError) Unwrap() error { return ErrVariableNotExist }

// ParseError reports source text that could not be parsed, or whose parse
// tree could not be built into executable form. No part of a line that fails
// to parse is executed.
type ParseError struct {
	Production string
	Pos        int
	Message    string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("parse error in %v at offset %v: %v", err.Production, err.Pos, err.Message)
}

// LineError locates a failure within a program being Run.
type LineError struct {
	fileinput.Location
	Line string
	Err  error
}

func (err *LineError) Error() string {
	return fmt.Sprintf("%v: %v (in %q)", err.Location, err.Err, err.Line)
}
func (err *LineError) Unwrap() error { return err.Err }
