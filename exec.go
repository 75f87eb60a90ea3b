package forth

import "errors"

// Execute pushes the literal value.
func (node LiteralNode) Execute(in *Interpreter) error {
	in.push(node.Value)
	return nil
}

// Execute resolves the name, in priority order, as a variable (pushing a
// pointer to it), a constant (pushing its value), a native word, or a user
// word; names are looked up anew on every execution.
func (node IdentNode) Execute(in *Interpreter) error {
	name := node.Name
	if addr, defined := in.vars.lookup(name); defined {
		in.push(Pointer{Address: addr})
		return nil
	}
	if val, defined := in.consts[name]; defined {
		in.push(val)
		return nil
	}
	if fn, defined := in.natives[name]; defined {
		if err := fn(in); err != nil {
			return wordError{name, err}
		}
		return nil
	}
	if body, defined := in.words[name]; defined {
		return in.call(name, body)
	}
	return wordError{name, ErrUnknownIdentifier}
}

func (in *Interpreter) call(name string, body Body) error {
	if in.maxDepth > 0 && in.depth >= in.maxDepth {
		return wordError{name, ErrCallDepth}
	}
	in.depth++
	defer func() { in.depth-- }()

	if in.logfn != nil {
		in.logf("@", "%v", name)
		defer in.withLogPrefix("  ")()
	}

	if err := body.Execute(in); err != nil {
		if errors.Is(err, ErrCallDepth) {
			return err
		}
		return wordError{name, err}
	}
	return nil
}

// Execute writes the text to output.
func (node PrintStringNode) Execute(in *Interpreter) error {
	return in.writeString(node.Text)
}

// Execute executes each element in order, stopping at the first failure.
func (expr *Expression) Execute(in *Interpreter) error {
	for _, elem := range expr.Elements {
		if err := elem.Execute(in); err != nil {
			return err
		}
	}
	return nil
}

// Execute executes each element in order, stopping at the first failure.
func (body Body) Execute(in *Interpreter) error {
	for _, elem := range body {
		if err := elem.Execute(in); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) popCondition() (bool, error) {
	val, err := in.pop()
	if err != nil {
		return false, err
	}
	return Truth(val)
}

// Execute pops the condition, executing the branch only when it is true.
func (stmt IfThen) Execute(in *Interpreter) error {
	cond, err := in.popCondition()
	if err != nil {
		return wordError{"if", err}
	}
	if cond {
		return stmt.Then.Execute(in)
	}
	return nil
}

// Execute pops the condition, then executes one of the two branches.
func (stmt IfElseThen) Execute(in *Interpreter) error {
	cond, err := in.popCondition()
	if err != nil {
		return wordError{"if", err}
	}
	if cond {
		return stmt.Then.Execute(in)
	}
	return stmt.Else.Execute(in)
}

// Execute pops the start index, then the limit; the counter variable is
// (re)bound after each pass through the body, being defined if needed.
func (stmt DoLoop) Execute(in *Interpreter) error {
	vals, err := in.popN(2)
	if err != nil {
		return wordError{"do", err}
	}
	limit, lok := vals[0].(Integer)
	start, sok := vals[1].(Integer)
	if !lok || !sok {
		return wordError{"do", operandsError{vals[0], vals[1]}}
	}
	for i := start; i < limit; i++ {
		if err := stmt.Body.Execute(in); err != nil {
			return err
		}
		addr, defined := in.vars.lookup(stmt.Counter)
		if !defined {
			addr = in.vars.define(stmt.Counter)
		}
		in.vars.slots[addr].Value = i
	}
	return nil
}

// Execute appends a new, unset variable slot.
func (def VariableDefinition) Execute(in *Interpreter) error {
	addr := in.vars.define(def.Name)
	in.logf(":", "variable %v @%v", def.Name, addr)
	return nil
}

// Execute binds the constant, replacing any prior value.
func (def ConstantDefinition) Execute(in *Interpreter) error {
	in.consts[def.Name] = def.Value
	in.logf(":", "constant %v = %v", def.Name, def.Value)
	return nil
}

// Execute binds the word's body, replacing any prior definition.
func (def WordDefinition) Execute(in *Interpreter) error {
	in.words[def.Name] = def.Body
	in.logf(":", "%v", def)
	return nil
}

// Execute executes the line's definition or expression.
func (line Line) Execute(in *Interpreter) error {
	switch {
	case line.Definition != nil:
		return line.Definition.Execute(in)
	case line.Expression != nil:
		return line.Expression.Execute(in)
	default:
		return errors.New("empty line")
	}
}
