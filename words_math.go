package forth

func mathWords() []namedWord {
	return []namedWord{
		{"+", add},
		{"-", binaryInt(func(a, b Integer) (Integer, error) { return a - b, nil })},
		{"*", binaryInt(func(a, b Integer) (Integer, error) { return a * b, nil })},
		{"/", binaryInt(func(a, b Integer) (Integer, error) {
			if b == 0 {
				return 0, operandsError{a, b}
			}
			return a / b, nil
		})},
		{"mod", binaryInt(func(a, b Integer) (Integer, error) {
			if b == 0 {
				return 0, operandsError{a, b}
			}
			return a % b, nil
		})},
		{"negate", unaryInt(func(a Integer) Integer { return -a })},
		{"abs", unaryInt(func(a Integer) Integer {
			if a < 0 {
				return -a
			}
			return a
		})},
		{"max", binaryInt(func(a, b Integer) (Integer, error) {
			if b > a {
				return b, nil
			}
			return a, nil
		})},
		{"min", binaryInt(func(a, b Integer) (Integer, error) {
			if b < a {
				return b, nil
			}
			return a, nil
		})},
	}
}

// add sums two integers, or advances a pointer's offset by an integer.
func add(in *Interpreter) error {
	vals, err := in.popN(2)
	if err != nil {
		return err
	}
	sum, err := addLiterals(vals[0], vals[1])
	if err != nil {
		return err
	}
	in.push(sum)
	return nil
}

func addLiterals(a, b Literal) (Literal, error) {
	switch av := a.(type) {
	case Integer:
		switch bv := b.(type) {
		case Integer:
			return av + bv, nil
		case Pointer:
			return offsetPointer(bv, av)
		}
	case Pointer:
		if bv, ok := b.(Integer); ok {
			return offsetPointer(av, bv)
		}
	}
	return nil, operandsError{a, b}
}

func offsetPointer(ptr Pointer, n Integer) (Literal, error) {
	offset := int64(ptr.Offset) + int64(n)
	if offset < 0 {
		return nil, operandsError{ptr, n}
	}
	ptr.Offset = int(offset)
	return ptr, nil
}
