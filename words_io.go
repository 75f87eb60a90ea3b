package forth

import (
	"strconv"
	"unicode/utf8"

	"github.com/jcorbin/easyforth/internal/runeio"
)

func ioWords() []namedWord {
	return []namedWord{
		{".", printTop},
		{"emit", emit},
		{"cr", func(in *Interpreter) error { return in.writeRune('\n') }},
		{"key", key},
		{"word", word},
		{".s", printStack},
		{"?", printCell},
	}
}

// printTop writes the top value, followed by a space, without popping it.
func printTop(in *Interpreter) error {
	val, err := in.peek()
	if err != nil {
		return err
	}
	return in.writeString(display(val) + " ")
}

// emit pops an integer, writing it as a unicode code point.
func emit(in *Interpreter) error {
	n, err := in.popInt()
	if err != nil {
		return err
	}
	if n < 0 || n > utf8.MaxRune || !utf8.ValidRune(rune(n)) {
		return operandError{"code point", n}
	}
	return in.writeRune(rune(n))
}

// key reads one character of input, pushing its code point.
func key(in *Interpreter) error {
	r, err := in.readRune()
	if err != nil {
		return err
	}
	in.push(Integer(r))
	return nil
}

// word ( ptr delim -- count ) skips any leading delimiter characters, then
// stores input characters into consecutive cells starting at ptr until the
// next delimiter, or end of input, pushing the number of cells stored.
func word(in *Interpreter) error {
	delim, err := in.popInt()
	if err != nil {
		return err
	}
	ptr, err := in.popPointer()
	if err != nil {
		return err
	}
	if err := in.flush(); err != nil {
		return err
	}
	n, err := runeio.ScanDelimited(in.in, rune(delim), func(r rune) error {
		if err := in.vars.stor(ptr, Integer(r)); err != nil {
			return err
		}
		ptr.Offset++
		return nil
	})
	if err != nil {
		return err
	}
	in.push(Integer(n))
	return nil
}

// printStack writes the depth and contents of the stack, like "<2> 1 2 ".
func printStack(in *Interpreter) error {
	buf := make([]byte, 0, 16*len(in.stack))
	buf = append(buf, '<')
	buf = strconv.AppendInt(buf, int64(len(in.stack)), 10)
	buf = append(buf, "> "...)
	for _, val := range in.stack {
		buf = append(buf, display(val)...)
		buf = append(buf, ' ')
	}
	return in.writeString(string(buf))
}

// printCell pops a pointer, printing the value that it points to.
func printCell(in *Interpreter) error {
	ptr, err := in.popPointer()
	if err != nil {
		return err
	}
	val, err := in.vars.load(ptr)
	if err != nil {
		return err
	}
	return in.writeString(display(val) + " ")
}
