package forth

func logicWords() []namedWord {
	return []namedWord{
		{"=", compareWord(func(c int) bool { return c == 0 }, true)},
		{"<", compareWord(func(c int) bool { return c < 0 }, false)},
		{">", compareWord(func(c int) bool { return c > 0 }, false)},
		{"not", unaryInt(func(a Integer) Integer { return boolean(a == 0) })},
		{"invert", unaryInt(func(a Integer) Integer { return boolean(a == 0) })},
		{"and", binaryInt(func(a, b Integer) (Integer, error) { return boolean(a != 0 && b != 0), nil })},
		{"or", binaryInt(func(a, b Integer) (Integer, error) { return boolean(a != 0 || b != 0), nil })},
	}
}

// compareWord builds a ( a b -- flag ) word; equality words may also compare
// arrays, which have no order.
func compareWord(test func(c int) bool, equality bool) NativeWord {
	return func(in *Interpreter) error {
		vals, err := in.popN(2)
		if err != nil {
			return err
		}
		a, b := vals[0], vals[1]
		var c int
		if equality {
			eq, err := Equal(a, b)
			if err != nil {
				return err
			}
			if !eq {
				c = 1
			}
		} else if c, err = Compare(a, b); err != nil {
			return err
		}
		in.push(boolean(test(c)))
		return nil
	}
}
