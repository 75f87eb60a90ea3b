package forth

type namedWord struct {
	name string
	fn   NativeWord
}

// standardWords composes every native word set into one table.
func standardWords() []namedWord {
	var words []namedWord
	words = append(words, mathWords()...)
	words = append(words, ioWords()...)
	words = append(words, logicWords()...)
	words = append(words, stackWords()...)
	words = append(words, otherWords()...)
	return words
}

// binaryInt adapts an integer operation into a ( a b -- c ) word.
func binaryInt(op func(a, b Integer) (Integer, error)) NativeWord {
	return func(in *Interpreter) error {
		a, b, err := in.popInts()
		if err != nil {
			return err
		}
		c, err := op(a, b)
		if err != nil {
			return err
		}
		in.push(c)
		return nil
	}
}

// unaryInt adapts an integer operation into a ( a -- b ) word.
func unaryInt(op func(a Integer) Integer) NativeWord {
	return func(in *Interpreter) error {
		a, err := in.popInt()
		if err != nil {
			return err
		}
		in.push(op(a))
		return nil
	}
}
