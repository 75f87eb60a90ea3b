package forth

func stackWords() []namedWord {
	return []namedWord{
		{"dup", dup},
		{"drop", drop},
		{"swap", swap},
		{"over", over},
		{"rot", rot},
		{"@", fetch},
	}
}

func dup(in *Interpreter) error {
	val, err := in.peek()
	if err != nil {
		return err
	}
	in.push(val)
	return nil
}

func drop(in *Interpreter) error {
	_, err := in.pop()
	return err
}

func swap(in *Interpreter) error {
	vals, err := in.popN(2)
	if err != nil {
		return err
	}
	in.push(vals[1], vals[0])
	return nil
}

func over(in *Interpreter) error {
	vals, err := in.popN(2)
	if err != nil {
		return err
	}
	in.push(vals[0], vals[1], vals[0])
	return nil
}

// rot moves the third value to the top: ( a b c -- b c a ).
func rot(in *Interpreter) error {
	vals, err := in.popN(3)
	if err != nil {
		return err
	}
	in.push(vals[1], vals[2], vals[0])
	return nil
}

// fetch ( ptr -- value ) reads the cell named by a pointer.
func fetch(in *Interpreter) error {
	ptr, err := in.popPointer()
	if err != nil {
		return err
	}
	val, err := in.vars.load(ptr)
	if err != nil {
		return err
	}
	in.push(val)
	return nil
}
